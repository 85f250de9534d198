// Package mod - /mod ban command
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

// createBanCommand creates the /mod ban subcommand
func createBanCommand() *discord.Command {
	return discord.NewCommand(
		"ban",
		"Banea a un usuario del servidor",
		"mod",
		banHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a banear",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del ban",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "dias",
			Description: "Días de mensajes a eliminar (0-7)",
			Required:    false,
			MinValue:    func() *float64 { v := 0.0; return &v }(),
			MaxValue:    7,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "evidencia",
			Description: "Enlace o referencia de evidencia",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionBanMembers).
		WithBotPermissions(discordgo.PermissionBanMembers).
		RequiresDatabase()
}

// banHandler handles the /mod ban command
func banHandler(ctx *discord.CommandContext) error {
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
		days := int(ctx.GetIntOption("dias"))

		err := ctx.Session.GuildBanCreateWithReason(
			ctx.Interaction.GuildID,
			user.ID,
			reason,
			days,
		)
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al banear: %v", err))
			return
		}

		caseNumber, err := recordCase(ctx, moderation.ModLogOptions{
			Type:      models.ActionBan,
			TargetID:  user.ID,
			TargetTag: userTag(user),
			Reason:    reason,
			Evidence:  ctx.GetStringOption("evidencia"),
		})
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo registrar el ban de %s: %v", user.ID, err), "CMD-Ban")
			ctx.Reply(fmt.Sprintf("🔨 **%s** ha sido baneado, pero el caso no pudo registrarse.\n**Razón:** %s", user.Username, reason))
			return
		}

		ctx.Reply(fmt.Sprintf("🔨 **%s** ha sido baneado. (Caso #%d)\n**Razón:** %s", user.Username, caseNumber, reason))
	}()
	return nil
}
