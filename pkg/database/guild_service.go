package database

import (
	"errors"

	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"go.mongodb.org/mongo-driver/bson"
)

var ErrGuildManagerNotInitialized = errors.New("guild data manager not initialized")

// GetGuildConfig returns the moderation configuration of a guild,
// or nil if the guild has no entry yet.
func GetGuildConfig(guildID string) (*models.GuildConfig, error) {
	if GlobalGuildDM == nil {
		return nil, ErrGuildManagerNotInitialized
	}
	return GlobalGuildDM.Get(bson.M{"guildId": guildID})
}

// EnsureGuildConfig creates the guild entry if it does not exist yet.
// Called on first contact with a guild (guildCreate event). Existing
// configuration values are preserved.
func EnsureGuildConfig(guildID string) (*models.GuildConfig, error) {
	if GlobalGuildDM == nil {
		return nil, ErrGuildManagerNotInitialized
	}
	return GlobalGuildDM.Set(bson.M{"guildId": guildID}, models.GuildConfig{GuildID: guildID})
}

// UpdateGuildConfig persists the given configuration values for a guild.
func UpdateGuildConfig(cfg *models.GuildConfig) (*models.GuildConfig, error) {
	if GlobalGuildDM == nil {
		return nil, ErrGuildManagerNotInitialized
	}
	return GlobalGuildDM.Set(bson.M{"guildId": cfg.GuildID}, cfg)
}

// GuildConfigService adapts the guilds collection to the policy-store
// interface consumed by pkg/moderation.
type GuildConfigService struct{}

// Get implements moderation.PolicyStore
func (GuildConfigService) Get(guildID string) (*models.GuildConfig, error) {
	return GetGuildConfig(guildID)
}
