// Package mod - /mod mute command (Discord timeout)
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// createMuteCommand creates the /mod mute subcommand
func createMuteCommand() *discord.Command {
	return discord.NewCommand(
		"mute",
		"Silencia temporalmente a un usuario",
		"mod",
		muteHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Usuario a silenciar",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "duracion",
			Description: "Duración del silencio (ej: 30s, 10m, 2h, 7d)",
			Required:    true,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "razon",
			Description: "Razón del silencio",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "evidencia",
			Description: "Enlace o referencia de evidencia",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		WithBotPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// muteHandler handles the /mod mute command
func muteHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		user := ctx.GetUserOption("usuario")
		if user == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un usuario.")
			return
		}

		duration, err := moderation.ParseDuration(ctx.GetStringOption("duracion"))
		if err != nil {
			ctx.ReplyEphemeral("❌ Duración inválida. Usa un número seguido de `s`, `m`, `h`, `d` o `w` (ej: `10m`, `2h`).")
			return
		}
		if duration <= 0 {
			ctx.ReplyEphemeral("❌ La duración debe ser mayor que cero.")
			return
		}
		if duration > moderation.MaxMuteDuration {
			ctx.ReplyEphemeral("❌ La duración máxima de un silencio es de 28 días.")
			return
		}

		if !authorize(ctx, user, moderation.LevelModerator) {
			return
		}

		if m := fetchMember(ctx, user.ID); m != nil &&
			m.CommunicationDisabledUntil != nil && m.CommunicationDisabledUntil.After(time.Now()) {
			ctx.ReplyEphemeral("❌ Ese usuario ya está silenciado.")
			return
		}

		reason := ctx.GetStringOption("razon")
		if reason == "" {
			reason = "Sin razón especificada"
		}

		until := time.Now().Add(duration)
		if err := ctx.Session.GuildMemberTimeout(ctx.Interaction.GuildID, user.ID, &until); err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al silenciar: %v", err))
			return
		}

		seconds := int64(duration.Seconds())
		caseNumber, err := recordCase(ctx, moderation.ModLogOptions{
			Type:      models.ActionMute,
			TargetID:  user.ID,
			TargetTag: userTag(user),
			Reason:    reason,
			Duration:  seconds,
			Evidence:  ctx.GetStringOption("evidencia"),
		})
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo registrar el mute de %s: %v", user.ID, err), "CMD-Mute")
			ctx.Reply(fmt.Sprintf("🔇 **%s** ha sido silenciado por **%s**, pero el caso no pudo registrarse.", user.Username, moderation.FormatDuration(seconds)))
			return
		}

		ctx.Reply(fmt.Sprintf("🔇 **%s** ha sido silenciado por **%s**. (Caso #%d)\n**Razón:** %s",
			user.Username, moderation.FormatDuration(seconds), caseNumber, reason))
	}()
	return nil
}
