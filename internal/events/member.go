// Package events provides event handlers for member events
package events

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// RegisterMemberEvents registers all member-related event handlers
func RegisterMemberEvents(client *discord.ExtendedClient) {
	client.Session.AddHandler(onGuildMemberAdd)
	client.Session.AddHandler(onGuildMemberRemove)
}

// onGuildMemberAdd is called when a new member joins the server
func onGuildMemberAdd(s *discordgo.Session, m *discordgo.GuildMemberAdd) {
	logger.Info(fmt.Sprintf("👋 Nuevo miembro: %s en servidor %s", m.User.Username, m.GuildID), "Member")

	postMemberNotice(s, m.GuildID, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("📥 <@%s> (`%s`) se ha unido al servidor.", m.User.ID, m.User.ID),
		Color:       0x57F287,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

// onGuildMemberRemove is called when a member leaves the server
func onGuildMemberRemove(s *discordgo.Session, m *discordgo.GuildMemberRemove) {
	logger.Info(fmt.Sprintf("👋 Adiós: %s salió del servidor %s", m.User.Username, m.GuildID), "Member")

	postMemberNotice(s, m.GuildID, &discordgo.MessageEmbed{
		Description: fmt.Sprintf("📤 **%s** (`%s`) ha salido del servidor.", m.User.Username, m.User.ID),
		Color:       0xED4245,
		Timestamp:   time.Now().Format(time.RFC3339),
	})
}

// postMemberNotice sends a join/leave notice to the moderation log channel,
// when the guild has one configured.
func postMemberNotice(s *discordgo.Session, guildID string, embed *discordgo.MessageEmbed) {
	cfg, err := database.GetGuildConfig(guildID)
	if err != nil || cfg == nil || cfg.ModLogChannelID == "" {
		return
	}

	if _, err := s.ChannelMessageSendEmbed(cfg.ModLogChannelID, embed); err != nil {
		logger.Debug(fmt.Sprintf("No se pudo publicar el aviso de miembro en %s: %v", cfg.ModLogChannelID, err), "Member")
	}
}
