package models

import "time"

// Warning representa una advertencia individual en la colección "warnings".
// A diferencia de ModLog no lleva número de caso: es un registro ligero,
// solo se añade y se consulta en orden cronológico inverso.
type Warning struct {
	ID          string    `bson:"id" json:"id"`
	GuildID     string    `bson:"guildId" json:"guildId"`
	UserID      string    `bson:"userId" json:"userId"`
	ModeratorID string    `bson:"moderatorId" json:"moderatorId"`
	Reason      string    `bson:"reason" json:"reason"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}
