package relay

import (
	"github.com/davegonzalez/Litview/internal/app/domains/services/svrelay"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
)

// RelayHandler owns the /api/submit endpoints.
type RelayHandler struct {
	relayService *svrelay.RelayService
	log          logger.Logger
}

func NewRelayHandler(relayService *svrelay.RelayService, log logger.Logger) *RelayHandler {
	return &RelayHandler{
		relayService: relayService,
		log:          log,
	}
}
