// Package settings - /config logchannel and /config show
package settings

import (
	"fmt"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/logger"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/bwmarrin/discordgo"
)

// createLogChannelCommand creates the /config logchannel subcommand
func createLogChannelCommand() *discord.Command {
	return discord.NewCommand(
		"logchannel",
		"Establece el canal de logs de moderación",
		"config",
		logChannelHandler,
	).WithOptions(
		&discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionChannel,
			Name:        "canal",
			Description: "Canal donde se publicarán los casos",
			Required:    true,
			ChannelTypes: []discordgo.ChannelType{
				discordgo.ChannelTypeGuildText,
			},
		},
	).WithUserPermissions(discordgo.PermissionManageServer).
		RequiresDatabase()
}

func logChannelHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireAdmin(ctx) {
			return
		}

		channel := ctx.GetChannelOption("canal")
		if channel == nil {
			ctx.ReplyEphemeral("❌ Debes especificar un canal.")
			return
		}

		err := updateConfig(ctx.Interaction.GuildID, func(cfg *models.GuildConfig) {
			cfg.ModLogChannelID = channel.ID
		})
		if err != nil {
			logger.Error(fmt.Sprintf("Error guardando logchannel: %v", err), "CMD-Config")
			ctx.ReplyEphemeral("❌ Error al guardar la configuración.")
			return
		}

		ctx.Reply(fmt.Sprintf("✅ Canal de logs de moderación establecido: <#%s>", channel.ID))
	}()
	return nil
}

// createShowCommand creates the /config show subcommand
func createShowCommand() *discord.Command {
	return discord.NewCommand(
		"show",
		"Muestra la configuración actual del servidor",
		"config",
		showHandler,
	).WithUserPermissions(discordgo.PermissionManageServer).
		RequiresDatabase()
}

func showHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		if !requireAdmin(ctx) {
			return
		}

		cfg, err := database.GetGuildConfig(ctx.Interaction.GuildID)
		if err != nil {
			logger.Error(fmt.Sprintf("Error leyendo configuración: %v", err), "CMD-Config")
			ctx.ReplyEphemeral("❌ Error al consultar la configuración.")
			return
		}

		display := func(id, kind string) string {
			if id == "" {
				return "*Sin configurar*"
			}
			if kind == "role" {
				return fmt.Sprintf("<@&%s>", id)
			}
			return fmt.Sprintf("<#%s>", id)
		}

		modRole, adminRole, logChannel := "", "", ""
		if cfg != nil {
			modRole, adminRole, logChannel = cfg.ModRoleID, cfg.AdminRoleID, cfg.ModLogChannelID
		}

		ctx.ReplyEphemeralEmbed(&discordgo.MessageEmbed{
			Title: "⚙️ Configuración de moderación",
			Color: 0x5865F2,
			Fields: []*discordgo.MessageEmbedField{
				{Name: "Rol de moderador", Value: display(modRole, "role"), Inline: true},
				{Name: "Rol de administrador", Value: display(adminRole, "role"), Inline: true},
				{Name: "Canal de logs", Value: display(logChannel, "channel"), Inline: true},
			},
		})
	}()
	return nil
}
