// Package mod - /mod kick command
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

// createKickCommand creates the /mod kick subcommand
func createKickCommand() *discord.Command {
	return discord.NewCommand(
		"kick",
		"Expulsa a un usuario del servidor",
		"mod",
		kickHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a expulsar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la expulsión",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "evidencia",
			Description: "Enlace o referencia de evidencia",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionKickMembers).
		WithBotPermissions(discordgo.PermissionKickMembers).
		RequiresDatabase()
}

// kickHandler handles the /mod kick command
func kickHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		if !authorize(ctx, user, moderation.LevelModerator) {
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			reason = "Sin razón especificada"
		}

		err := ctx.Session.GuildMemberDeleteWithReason(ctx.Interaction.GuildID, user.ID, reason)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al expulsar: %v", err))
			return
		}

		caseNumber, err := recordCase(ctx, moderation.ModLogOptions{
			Type:      models.ActionKick,
			TargetID:  user.ID,
			TargetTag: userTag(user),
			Reason:    reason,
			Evidence:  ctx.GetStringOption("evidencia"),
		})
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo registrar el kick de %s: %v", user.ID, err), "CMD-Kick")
			ctx.Reply(fmt.Sprintf("👢 **%s** ha sido expulsado, pero el caso no pudo registrarse.\n**Razón:** %s", user.Username, reason))
			return
		}

		ctx.Reply(fmt.Sprintf("👢 **%s** ha sido expulsado. (Caso #%d)\n**Razón:** %s", user.Username, caseNumber, reason))
	}()
	return nil
}
