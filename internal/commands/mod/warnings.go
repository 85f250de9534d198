// Package mod - /mod warnings command
package mod

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/moderation"
	"github.com/bwmarrin/discordgo"
)

// maxWarningsShown limits the embed, not the query: the count shown is
// always the real total.
const maxWarningsShown = 10

// createWarningsCommand creates the /mod warnings subcommand
func createWarningsCommand() *discord.Command {
	return discord.NewCommand(
		"warnings",
		"Lista de advertencias de un usuario",
		"mod",
		warningsHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionUser,
			Name:        "usuario",
			Description: "[STAFF] Usuario a buscar (opcional)",
			Required:    false,
		},
	).RequiresDatabase()
}

func warningsHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		svc := moderation.Get()
		targetUser := ctx.GetUserOption("usuario")
		isSelf := false

		if targetUser == nil {
			targetUser = ctx.User()
			isSelf = true
		}

		executor := moderation.MemberFromState(ctx.Guild(), ctx.Member())
		isModerator := svc.HasPermission(ctx.Interaction.GuildID, executor, moderation.LevelModerator)

		// Anyone may see their own warnings; staff may see anyone's
		if !isSelf && !isModerator {
			ctx.ReplyEphemeral("❌ No tienes permisos para ver la lista de advertencias de otro usuario.")
			return
		}

		warnings, err := svc.GetWarnings(ctx.Interaction.GuildID, targetUser.ID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error DB Warnings: %v", err), "CMD-Warnings")
			ctx.ReplyEphemeral("❌ Error al consultar la base de datos.")
			return
		}

		if len(warnings) == 0 {
			ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
				Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s", targetUser.Username),
				Color:       0x57F287,
				Description: fmt.Sprintf("No se han encontrado advertencias del usuario en este servidor\n\n> 💫 - **Cantidad de advertencias:** 0\n> 🕒 - **Fecha de consulta:** <t:%d>", time.Now().Unix()),
			})
			return
		}

		var description string
		shown := warnings
		if len(shown) > maxWarningsShown {
			shown = shown[:maxWarningsShown]
		}

		for _, warn := range shown {
			modName := "Oculto"
			if isModerator {
				modName = warn.ModeratorID
				if modUser, err := ctx.Session.User(warn.ModeratorID); err == nil {
					modName = userTag(modUser)
				}
			}

			description += fmt.Sprintf("> **Advertencia:** %s \n> **Moderador:** %s \n> **ID:** `%s` \n> **Fecha:** <t:%d>\n\n",
				warn.Reason, modName, warn.ID, warn.Timestamp.Unix())
		}

		if len(warnings) > maxWarningsShown {
			description += fmt.Sprintf("*...y %d advertencias más.*\n\n", len(warnings)-maxWarningsShown)
		}
		description += fmt.Sprintf("> 💫 - **Cantidad de advertencias:** %d \n> 🕒 - **Fecha de consulta:** <t:%d>", len(warnings), time.Now().Unix())

		ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
			Title:       fmt.Sprintf("🔖 - Lista de advertencias de %s (%s)", targetUser.Username, targetUser.ID),
			Color:       0xFFA500,
			Description: description,
		})
	}()
	return nil
}
