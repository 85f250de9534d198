// Package mod - /mod unban command
package mod

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createUnbanCommand creates the /mod unban subcommand
func createUnbanCommand() *discord.Command {
	return discord.NewCommand(
		"unban",
		"Retira el ban de un usuario",
		"mod",
		unbanHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "usuario",
			Description: "ID del usuario baneado",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del unban",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers).
		RequiresDatabase()
}

// unbanHandler handles the /mod unban command. The target is given by ID
// because banned users are no longer guild members.
func unbanHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		userID := ctx.GetStringOption("usuario")
		if userID == "" {
			ctx.ReplyEphemeral("❌ Debes especificar la ID del usuario.")
			return
		}

		if !requireLevel(ctx, moderation.LevelModerator) {
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			reason = "Sin razón especificada"
		}

		ban, err := ctx.Session.GuildBan(ctx.Interaction.GuildID, userID)
		if err != nil {
			ctx.ReplyEphemeral("❌ Ese usuario no está baneado en este servidor.")
			return
		}

		targetTag := userID
		if ban.User != nil {
			targetTag = userTag(ban.User)
		}

		if err := ctx.Session.GuildBanDelete(ctx.Interaction.GuildID, userID); err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al retirar el ban: %v", err))
			return
		}

		caseNumber, err := recordCase(ctx, moderation.ModLogOptions{
			Type:      models.ActionUnban,
			TargetID:  userID,
			TargetTag: targetTag,
			Reason:    reason,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo registrar el unban de %s: %v", userID, err), "CMD-Unban")
			ctx.Reply(fmt.Sprintf("🔓 El ban de **%s** ha sido retirado, pero el caso no pudo registrarse.", targetTag))
			return
		}

		ctx.Reply(fmt.Sprintf("🔓 El ban de **%s** ha sido retirado. (Caso #%d)\n**Razón:** %s", targetTag, caseNumber, reason))
	}()
	return nil
}
