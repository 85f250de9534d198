// Package mod - /mod purge command
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

// bulkDeleteWindow: Discord rejects bulk deletion of messages older than this.
const bulkDeleteWindow = 14 * 24 * time.Hour

// createPurgeCommand creates the /mod purge subcommand
func createPurgeCommand() *discord.Command {
	return discord.NewCommand(
		"purge",
		"Elimina mensajes recientes del canal",
		"mod",
		purgeHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "cantidad",
			Description: "Cantidad de mensajes a eliminar (1-100)",
			Required:    true,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
			MaxValue:    100,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Eliminar solo mensajes de este usuario",
			Required:    false,
		},
	).WithUserPermissions(discordgo.PermissionManageMessages).
		WithBotPermissions(discordgo.PermissionManageMessages).
		RequiresDatabase()
}

// purgeHandler handles the /mod purge command
func purgeHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		amount := int(ctx.GetIntOption("cantidad"))
		if amount < moderation.MinPurgeMessages || amount > moderation.MaxPurgeMessages {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ La cantidad debe estar entre %d y %d.", moderation.MinPurgeMessages, moderation.MaxPurgeMessages))
			return
		}

		if !requireLevel(ctx, moderation.LevelModerator) {
			return
		}

		filterUser := ctx.GetUserOption("usuario")

		messages, err := ctx.Session.ChannelMessages(ctx.Interaction.ChannelID, amount, "", "", "")
		if err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al obtener mensajes: %v", err))
			return
		}

		cutoff := time.Now().Add(-bulkDeleteWindow)
		var ids []string
		for _, msg := range messages {
			if msg.Timestamp.Before(cutoff) {
				continue
			}
			if filterUser != nil && (msg.Author == nil || msg.Author.ID != filterUser.ID) {
				continue
			}
			ids = append(ids, msg.ID)
		}

		if len(ids) == 0 {
			ctx.ReplyEphemeral("❌ No hay mensajes elegibles para eliminar (solo mensajes de menos de 14 días).")
			return
		}

		if err := ctx.Session.ChannelMessagesBulkDelete(ctx.Interaction.ChannelID, ids); err != nil {
			ctx.ReplyEphemeral(fmt.Sprintf("❌ Error al eliminar mensajes: %v", err))
			return
		}

		targetID := ctx.User().ID
		targetTag := userTag(ctx.User())
		reason := fmt.Sprintf("Purga de %d mensajes en <#%s>", len(ids), ctx.Interaction.ChannelID)
		if filterUser != nil {
			targetID = filterUser.ID
			targetTag = userTag(filterUser)
			reason = fmt.Sprintf("Purga de %d mensajes de %s en <#%s>", len(ids), targetTag, ctx.Interaction.ChannelID)
		}

		caseNumber, err := recordCase(ctx, moderation.ModLogOptions{
			Type:      models.ActionPurge,
			TargetID:  targetID,
			TargetTag: targetTag,
			Reason:    reason,
		})
		if err != nil {
			logger.Error(fmt.Sprintf("No se pudo registrar la purga: %v", err), "CMD-Purge")
			ctx.ReplyEphemeral(fmt.Sprintf("🧹 Se eliminaron **%d** mensajes, pero el caso no pudo registrarse.", len(ids)))
			return
		}

		ctx.ReplyEphemeral(fmt.Sprintf("🧹 Se eliminaron **%d** mensajes. (Caso #%d)", len(ids), caseNumber))
	}()
	return nil
}
