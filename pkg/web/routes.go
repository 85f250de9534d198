// Package web provides API routes for the web server.
package web

import (
	"net/http"
	"strconv"

	"github.com/PancyStudios/PancyGuardGo/pkg/database"
	"github.com/PancyStudios/PancyGuardGo/pkg/discord"
	"github.com/PancyStudios/PancyGuardGo/pkg/models"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/guilds/:guildId/modlogs", guildModLogsHandler)
		api.GET("/guilds/:guildId/config", guildConfigHandler)
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "PancyGuard Go is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "El bot no está disponible en este momento.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// guildModLogsHandler returns the recent moderation cases of a guild.
// Optional query params: user, type, case, limit (defaults to 10, max 50).
func guildModLogsHandler(c *gin.Context) {
	guildID := c.Param("guildId")

	filter := models.ModLogFilter{
		TargetID: c.Query("user"),
		Type:     c.Query("type"),
	}
	if caseNumber, err := strconv.Atoi(c.Query("case")); err == nil && caseNumber > 0 {
		filter.CaseNumber = caseNumber
	}

	limit := int64(10)
	if n, err := strconv.ParseInt(c.Query("limit"), 10, 64); err == nil && n > 0 && n <= 50 {
		limit = n
	}
	if filter.CaseNumber > 0 {
		limit = 1
	}

	entries, err := database.ModLogService{}.Query(guildID, filter, limit)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Error",
			"message": "No se pudo consultar el historial de moderación.",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"guildId": guildID,
		"count":   len(entries),
		"modlogs": entries,
	})
}

// guildConfigHandler returns the moderation configuration of a guild
func guildConfigHandler(c *gin.Context) {
	guildID := c.Param("guildId")

	cfg, err := database.GetGuildConfig(guildID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Internal Error",
			"message": "No se pudo consultar la configuración del servidor.",
		})
		return
	}
	if cfg == nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"message": "El servidor no tiene configuración registrada.",
		})
		return
	}

	c.JSON(http.StatusOK, cfg)
}
