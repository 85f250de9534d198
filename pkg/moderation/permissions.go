// Package moderation implements the moderation core of the bot: the
// permission/role-hierarchy resolver and the case-numbered moderation ledger.
// It only depends on abstract stores and a messenger, so commands stay glue.
package moderation

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/bwmarrin/discordgo"
)

// PermissionLevel is the tiered permission model of the bot.
// Higher levels include everything the lower levels may do.
type PermissionLevel int

const (
	LevelUser PermissionLevel = iota
	LevelModerator
	LevelAdministrator
)

// String returns the string representation of the permission level
func (l PermissionLevel) String() string {
	switch l {
	case LevelAdministrator:
		return "Administrator"
	case LevelModerator:
		return "Moderator"
	case LevelUser:
		return "User"
	default:
		return "Unknown"
	}
}

// Reason strings returned by CanModerate. The commands show them verbatim,
// so they must stay stable.
const (
	ReasonSelfTarget       = "No puedes realizar esta acción sobre ti mismo."
	ReasonBotTarget        = "No puedes realizar esta acción sobre un bot."
	ReasonNoPermission     = "No tienes permisos para realizar esta acción."
	ReasonRoleHierarchy    = "No puedes realizar esta acción sobre un usuario con un rol igual o superior al tuyo."
	ReasonBotRoleHierarchy = "No puedo realizar esta acción sobre un usuario con un rol igual o superior al mío."
)

// Member is the read-only view of a guild member that the resolver needs.
type Member struct {
	ID      string
	Bot     bool
	Admin   bool // native administrator permission
	Owner   bool // guild owner
	Roles   []string
	RolePos int // position of the member's highest role
}

// CheckResult is the outcome of a moderation eligibility check.
// A rejection is a value, never an error.
type CheckResult struct {
	Allowed bool
	Reason  string
}

// MemberFromState builds a resolver Member from discordgo state.
func MemberFromState(guild *discordgo.Guild, m *discordgo.Member) Member {
	member := Member{
		ID:    m.User.ID,
		Bot:   m.User.Bot,
		Roles: m.Roles,
	}

	if guild != nil {
		member.Owner = guild.OwnerID == m.User.ID

		// Highest role position. The @everyone role sits at position 0.
		for _, role := range guild.Roles {
			for _, id := range m.Roles {
				if role.ID == id && role.Position > member.RolePos {
					member.RolePos = role.Position
				}
			}
		}
	}

	member.Admin = member.Owner || (m.Permissions&discordgo.PermissionAdministrator != 0)

	return member
}

// HasRole reports whether the member holds the given role.
func (m Member) HasRole(roleID string) bool {
	for _, id := range m.Roles {
		if id == roleID {
			return true
		}
	}
	return false
}

// Resolver decides whether a member may perform a moderation action.
type Resolver struct {
	policies PolicyStore
}

// NewResolver creates a Resolver backed by the given policy store.
func NewResolver(policies PolicyStore) *Resolver {
	return &Resolver{policies: policies}
}

// PermissionLevel derives the tiered permission level of a member.
// The cascade is strict: native administrator wins, then the configured
// admin role, then the configured mod role. If the guild configuration
// cannot be read the member is treated as a plain user, so a transient
// storage error never grants elevated privilege.
func (r *Resolver) PermissionLevel(guildID string, member Member) PermissionLevel {
	if member.Admin {
		return LevelAdministrator
	}

	cfg, err := r.policies.Get(guildID)
	if err != nil {
		logger.Error(fmt.Sprintf("No se pudo leer la configuración del servidor %s: %v", guildID, err), "Permissions")
		return LevelUser
	}

	if cfg != nil {
		if cfg.AdminRoleID != "" && member.HasRole(cfg.AdminRoleID) {
			return LevelAdministrator
		}
		if cfg.ModRoleID != "" && member.HasRole(cfg.ModRoleID) {
			return LevelModerator
		}
	}

	return LevelUser
}

// HasPermission reports whether the member meets the required level.
func (r *Resolver) HasPermission(guildID string, member Member, required PermissionLevel) bool {
	return r.PermissionLevel(guildID, member) >= required
}

// CheckRoleHierarchy reports whether the executor outranks the target.
// The guild owner always passes; everyone else needs a strictly higher
// role position (equal positions fail).
func CheckRoleHierarchy(executor, target Member) bool {
	if executor.Owner {
		return true
	}
	return executor.RolePos > target.RolePos
}

// BotCanActOn reports whether the bot itself can act on the target.
// The guild owner is immune to the bot no matter the role positions.
func BotCanActOn(bot, target Member) bool {
	if target.Owner {
		return false
	}
	return bot.RolePos > target.RolePos
}

// CanModerate combines every eligibility check for a moderation action, in a
// fixed order: self-target, bot-target, permission level, executor hierarchy
// and finally the bot's own hierarchy. The first failing check wins.
func (r *Resolver) CanModerate(guildID string, executor, target, bot Member, required PermissionLevel) CheckResult {
	if executor.ID == target.ID {
		return CheckResult{Allowed: false, Reason: ReasonSelfTarget}
	}

	// Applies to every action type, even where acting on a bot could be
	// intentional (banning a rogue integration). Kept as literal behavior.
	if target.Bot {
		return CheckResult{Allowed: false, Reason: ReasonBotTarget}
	}

	if !r.HasPermission(guildID, executor, required) {
		return CheckResult{Allowed: false, Reason: ReasonNoPermission}
	}

	if !CheckRoleHierarchy(executor, target) {
		return CheckResult{Allowed: false, Reason: ReasonRoleHierarchy}
	}

	if !BotCanActOn(bot, target) {
		return CheckResult{Allowed: false, Reason: ReasonBotRoleHierarchy}
	}

	return CheckResult{Allowed: true}
}
