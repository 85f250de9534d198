// Package mod - /mod warn command
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

// createWarnCommand creates the /mod warn subcommand
func createWarnCommand() *discord.Command {
	return discord.NewCommand(
		"warn",
		"Advierte a un usuario",
		"mod",
		warnHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a advertir",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón de la advertencia",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "evidencia",
			Description: "Enlace o referencia de evidencia",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// warnHandler handles the /mod warn command. A warning writes both a
// lightweight warning record and a numbered case in the ledger.
func warnHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			ctx.ReplyEphemeral("❌ Debes especificar una razón.")
			return
		}
		if len(reason) > moderation.MaxReasonLength {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ La razón no puede superar los %d caracteres.", moderation.MaxReasonLength))
			return
		}

		if !authorize(ctx, user, moderation.LevelModerator) {
			return
		}

		warning, err := moderation.Get().AddWarning(ctx.Interaction.GuildID, user.ID, ctx.User().ID, reason)
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo guardar la advertencia de %s: %v", user.ID, err), "CMD-Warn")
			ctx.ReplyEphemeral("❌ Error al guardar la advertencia.")
			return
		}

		caseNumber, err := recordCase(ctx, moderation.ModLogOptions{
			Type:      models.ActionWarn,
			TargetID:  user.ID,
			TargetTag: userTag(user),
			Reason:    reason,
			Evidence:  ctx.GetStringOption("evidencia"),
		})
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo registrar el warn de %s: %v", user.ID, err), "CMD-Warn")
			ctx.Reply(fmt.Sprintf("⚠️ **%s** ha sido advertido, pero el caso no pudo registrarse.\n**Razón:** %s", user.Username, reason))
			return
		}

		ctx.Reply(fmt.Sprintf("⚠️ **%s** ha sido advertido. (Caso #%d)\n**Razón:** %s\n**ID de advertencia:** `%s`",
			user.Username, caseNumber, reason, warning.ID))
	}()
	return nil
}
