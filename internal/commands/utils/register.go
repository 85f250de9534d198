// Package utils provides utility commands under /utils
package utils

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterUtilCommands registers the /utils subcommands
func RegisterUtilCommands(client *discord.ExtendedClient) {
	utilsGroup := client.CommandHandler.BuildCommandGroup(
		"utils",
		"Comandos de utilidad",
		createPingCommand(),
		createHelpCommand(),
		createStatusCommand(),
	)

	client.CommandHandler.AddGlobalCommand(utilsGroup)
}
