// Package settings - /config modrole and /config adminrole
package settings

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// requireAdmin gates configuration changes to administrators.
func requireAdmin(ctx *discord.CommandContext) bool {
	executor := moderation.MemberFromState(ctx.Guild(), ctx.Member())
	if !moderation.Get().HasPermission(ctx.Interaction.GuildID, executor, moderation.LevelAdministrator) {
		ctx.ReplyEphemeral("❌ " + moderation.ReasonNoPermission)
		return false
	}
	return true
}

// updateConfig loads the guild configuration, applies the mutation and
// persists it, creating the entry if the guild has none yet.
func updateConfig(guildID string, mutate func(cfg *models.GuildConfig)) error {
	cfg, err := database.GetGuildConfig(guildID)
	if err != nil {
		return err
	}
	if cfg == nil {
		cfg = &models.GuildConfig{GuildID: guildID}
	}

	mutate(cfg)

	_, err = database.UpdateGuildConfig(cfg)
	return err
}

// createModRoleCommand creates the /config modrole subcommand
func createModRoleCommand() *discord.Command {
	return discord.NewCommand(
		"modrole",
		"Establece el rol de moderador",
		"config",
		modRoleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol que otorga nivel de moderador",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer).
		RequiresDatabase()
}

func modRoleHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireAdmin(ctx) {
			return
		}

		role := ctx.GetRoleOption("rol")
		if role == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un rol.")
			return
		}

		err := updateConfig(ctx.Interaction.GuildID, func(cfg *models.GuildConfig) {
			cfg.ModRoleID = role.ID
		})
		if err != nil {
			logger.Error(fmt.Sprintf("Error guardando modrole: %v", err), "CMD-Config")
			ctx.ReplyEphemeral("❌ Error al guardar la configuración.")
			return
		}

		ctx.Reply(fmt.Sprintf("✅ Rol de moderador establecido: <@&%s>", role.ID))
	}()
	return nil
}

// createAdminRoleCommand creates the /config adminrole subcommand
func createAdminRoleCommand() *discord.Command {
	return discord.NewCommand(
		"adminrole",
		"Establece el rol de administrador",
		"config",
		adminRoleHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionRole,
			Name:        "rol",
			Description: "Rol que otorga nivel de administrador",
			Required:    true,
		},
	).WithUserPermissions(discordgo.PermissionManageServer).
		RequiresDatabase()
}

func adminRoleHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireAdmin(ctx) {
			return
		}

		role := ctx.GetRoleOption("rol")
		if role == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un rol.")
			return
		}

		err := updateConfig(ctx.Interaction.GuildID, func(cfg *models.GuildConfig) {
			cfg.AdminRoleID = role.ID
		})
		if err != nil {
			logger.Error(fmt.Sprintf("Error guardando adminrole: %v", err), "CMD-Config")
			ctx.ReplyEphemeral("❌ Error al guardar la configuración.")
			return
		}

		ctx.Reply(fmt.Sprintf("✅ Rol de administrador establecido: <@&%s>", role.ID))
	}()
	return nil
}
