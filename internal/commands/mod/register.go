// Package mod provides moderation commands organized as subcommands under /mod
// Each command is in its own file for better organization
package mod

import (
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterModCommands registers all moderation commands as /mod subcommands
func RegisterModCommands(client *discord.ExtendedClient) {
	banCmd := createBanCommand()
	unbanCmd := createUnbanCommand()
	kickCmd := createKickCommand()
	muteCmd := createMuteCommand()
	unmuteCmd := createUnmuteCommand()
	warnCmd := createWarnCommand()
	warningsCmd := createWarningsCommand()
	purgeCmd := createPurgeCommand()
	modlogsCmd := createModLogsCommand()

	// Build the /mod command group with all subcommands
	modGroup := client.CommandHandler.BuildCommandGroup(
		"mod",
		"Comandos de moderación",
		banCmd,
		unbanCmd,
		kickCmd,
		muteCmd,
		unmuteCmd,
		warnCmd,
		warningsCmd,
		purgeCmd,
		modlogsCmd,
	)

	// Register the command group
	client.CommandHandler.AddGlobalCommand(modGroup)
}
