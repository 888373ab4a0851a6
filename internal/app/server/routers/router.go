package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/davegonzalez/Litview/internal/app/server/handlers/relay"
	"github.com/davegonzalez/Litview/internal/app/server/middlewares"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
	"github.com/davegonzalez/Litview/internal/app/pkg/stats"
)

// SetupRoutes wires middlewares and routes.
func SetupRoutes(
	relayHandler *relay.RelayHandler,
	relayStats *stats.RelayStats,
	log logger.Logger,
	notifier middlewares.FailureNotifier,
) *gin.Engine {
	r := gin.New()

	r.Use(middlewares.Trace())
	r.Use(middlewares.AccessLog(log))
	r.Use(middlewares.Recovery(log, notifier))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "litview-relay",
			"relays":  relayStats.Snapshot(),
		})
	})

	api := r.Group("/api")
	{
		api.GET("/submit", relayHandler.Liveness)
		api.POST("/submit", relayHandler.Submit)
	}

	return r
}
