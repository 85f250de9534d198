// Package mod - /mod modlogs command
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

// createModLogsCommand creates the /mod modlogs subcommand
func createModLogsCommand() *discord.Command {
	return discord.NewCommand(
		"modlogs",
		"Consulta el historial de moderación",
		"mod",
		modLogsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "Filtrar por usuario sancionado",
			Required:    false,
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionString,
			Name:        "tipo",
			Description: "Filtrar por tipo de sanción",
			Required:    false,
			Choices: []*discordgo.ApplicationCommandOptionChoice{
				{Name: "Advertencia", Value: models.ActionWarn},
				{Name: "Expulsión", Value: models.ActionKick},
				{Name: "Baneo", Value: models.ActionBan},
				{Name: "Desbaneo", Value: models.ActionUnban},
				{Name: "Silenciamiento", Value: models.ActionMute},
				{Name: "Fin del silenciamiento", Value: models.ActionUnmute},
				{Name: "Purga", Value: models.ActionPurge},
			},
		},
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "caso",
			Description: "Consultar un caso concreto",
			Required:    false,
			MinValue:    func() *float64 { v := 1.0; return &v }(),
		},
	).WithUserPermissions(discordgo.PermissionModerateMembers).
		RequiresDatabase()
}

// modLogsHandler handles the /mod modlogs command
func modLogsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireLevel(ctx, moderation.LevelModerator) {
			return
		}

		filter := models.ModLogFilter{
			Type:       ctx.GetStringOption("tipo"),
			CaseNumber: int(ctx.GetIntOption("caso")),
		}
		if user := ctx.GetUserOption("usuario"); user != nil {
			filter.TargetID = user.ID
		}

		entries, err := moderation.Get().GetModLogs(ctx.Interaction.GuildID, filter)
		if err != nil {
			logger.Error(fmt.Sprintf("Error DB ModLogs: %v", err), "CMD-ModLogs")
			ctx.ReplyEphemeral("❌ Error al consultar el historial de moderación.")
			return
		}

		if len(entries) == 0 {
			ctx.ReplyEphemeral("🔎 No se encontraron casos con esos filtros.")
			return
		}

		var description string
		for _, entry := range entries {
			line := fmt.Sprintf("> **Caso #%d** · `%s` · <t:%d:d>\n> **Usuario:** <@%s> | **Moderador:** <@%s>\n> **Razón:** %s\n",
				entry.CaseNumber, entry.Type, entry.Timestamp.Unix(), entry.TargetID, entry.ModeratorID, entry.Reason)
			if entry.Duration > 0 {
				line += fmt.Sprintf("> **Duración:** %s\n", moderation.FormatDuration(entry.Duration))
			}
			if entry.Evidence != "" {
				line += fmt.Sprintf("> **Evidencia:** %s\n", entry.Evidence)
			}
			description += line + "\n"
		}

		ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
			Title:       "📋 Historial de moderación",
			Color:       0x5865F2,
			Description: description,
			Footer: &discordgo.MessageEmbedFooter{
				Text: fmt.Sprintf("%d caso(s)", len(entries)),
			},
		})
	}()
	return nil
}
