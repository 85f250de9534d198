package models

// GuildConfig representa la configuración de moderación de un servidor.
// Se crea de forma implícita la primera vez que el bot tiene contacto con el servidor.
type GuildConfig struct {
	GuildID         string `bson:"guildId" json:"guildId"`
	ModRoleID       string `bson:"modRoleId,omitempty" json:"modRoleId,omitempty"`
	AdminRoleID     string `bson:"adminRoleId,omitempty" json:"adminRoleId,omitempty"`
	ModLogChannelID string `bson:"modLogChannelId,omitempty" json:"modLogChannelId,omitempty"`
}
