// Package mod - /mod unmute command
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

// createUnmuteCommand creates the /mod unmute subcommand
func createUnmuteCommand() *discord.Command {
	return discord.NewCommand(
		"unmute",
		"Retira el silencio de un usuario",
		"mod",
		unmuteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a des-silenciar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// unmuteHandler handles the /mod unmute command
func unmuteHandler(ctx *discord.CommandContext) error {
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

		if err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, nil); err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al retirar el silencio: %v", err))
			return
		}

		caseNumber, err := recordCase(ctx, moderation.ModLogOptions{
			Type:      models.ActionUnmute,
			TargetID:  user.ID,
			TargetTag: userTag(user),
			Reason:    reason,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo registrar el unmute de %s: %v", user.ID, err), "CMD-Unmute")
			ctx.Reply(fmt.Sprintf("🔊 **%s** ya no está silenciado, pero el caso no pudo registrarse.", user.Username))
			return
		}

		ctx.Reply(fmt.Sprintf("🔊 **%s** ya no está silenciado. (Caso #%d)", user.Username, caseNumber))
	}()
	return nil
}
