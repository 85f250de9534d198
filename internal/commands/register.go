// Package commands provides a registry for organizing bot commands.
// Commands are organized in subdirectories by category (utils, mod, settings, dev)
package commands

import (
	"github.com/PancyStudios/PancyGuardGo/internal/commands/dev"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/mod"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/settings"
	"github.com/PancyStudios/PancyGuardGo/internal/commands/utils"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
)

// RegisterAll registers all commands with the Discord client
func RegisterAll(client *discord.ExtendedClient) {
	// Utility commands (/utils ping, /utils help, /utils status)
	utils.RegisterUtilCommands(client)

	// Moderation commands (/mod ban, /mod kick, /mod warn, /mod mute, ...)
	mod.RegisterModCommands(client)

	// Guild configuration (/config modrole, /config adminrole, ...)
	settings.RegisterConfigCommands(client)

	// Developer commands (/dev eval), registered only in the dev guild
	dev.RegisterDevCommands(client)
}
