package moderation

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// PolicyStore exposes the per-guild moderation configuration.
type PolicyStore interface {
	Get(guildID string) (*models.GuildConfig, error)
}

// CaseStore persists moderation cases and allocates case numbers.
type CaseStore interface {
	NextCaseNumber(guildID string) (int, error)
	Insert(entry *models.ModLog) error
	Query(guildID string, filter models.ModLogFilter, limit int64) ([]*models.ModLog, error)
}

// WarningStore persists lightweight warning records.
type WarningStore interface {
	Insert(warning *models.Warning) error
	Query(guildID, userID string) ([]*models.Warning, error)
}

// Messenger delivers the notification side effects of a moderation case.
// The real implementation talks to Discord; tests swap in fakes.
type Messenger interface {
	PostToChannel(channelID string, embed *discordgo.MessageEmbed) error
	SendDirect(userID string, embed *discordgo.MessageEmbed) error
}
