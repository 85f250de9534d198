// Package dev provides developer-only commands under /dev
package dev

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterDevCommands registers the /dev subcommands in the dev guild
func RegisterDevCommands(client *discord.ExtendedClient) {
	devGroup := client.CommandHandler.BuildCommandGroup(
		"dev",
		"Comandos de desarrollo",
		CreateEvalCommand(),
	)

	client.CommandHandler.AddDevCommand(devGroup)
}
