package utils

import (
	"fmt"
	"time"

	"github.com/PancyStudios/PancyGuardGo/pkg/config"
	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/errors"
	"github.com/PancyStudios/PancyGuardGo/pkg/mqtt"
)

// createStatusCommand creates the /utils status subcommand
func createStatusCommand() *discord.Command {
	return discord.NewCommand(
		"status",
		"Muestra el estado del bot",
		"utils",
		statusHandler,
	)
}

// statusHandler handles the /utils status command
func statusHandler(ctx *discord.CommandContext) error {
	go func() {
		defer errors.RecoverMiddleware()()

		db := database.Get()
		dbStatus, _ := db.GetStatus()

		mqttStatus := "🔴 Desconectado"
		if bus := mqtt.Get(); bus != nil && bus.IsConnected() {
			mqttStatus = "🟢 Conectado"
		}

		uptime := time.Since(ctx.Client.StartTime).Round(time.Second)

		ctx.Reply(fmt.Sprintf(
			"📊 **Estado de PancyGuard Go**\n"+
				"• Bot: 🟢 Online\n"+
				"• Versión: %s\n"+
				"• Uptime: %s\n"+
				"• Base de datos: %s\n"+
				"• MQTT: %s\n"+
				"• Servidores: %d",
			config.Version,
			uptime,
			dbStatus,
			mqttStatus,
			ctx.Client.GuildCount(),
		))
	}()
	return nil
}
