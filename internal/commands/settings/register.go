// Package settings provides the /config command group for per-guild
// moderation configuration.
package settings

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterConfigCommands registers the /config subcommands
func RegisterConfigCommands(client *discord.ExtendedClient) {
	configGroup := client.CommandHandler.BuildCommandGroup(
		"config",
		"Configuración de moderación del servidor",
		createModRoleCommand(),
		createAdminRoleCommand(),
		createLogChannelCommand(),
		createShowCommand(),
	)

	client.CommandHandler.AddGlobalCommand(configGroup)
}
