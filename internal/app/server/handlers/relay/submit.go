package relay

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davegonzalez/Litview/internal/app/domains/apimodel/request"
	"github.com/davegonzalez/Litview/internal/app/domains/apimodel/response"
	"github.com/davegonzalez/Litview/internal/app/domains/services/svrelay"
	"github.com/davegonzalez/Litview/internal/app/pkg/errorx"
	"github.com/davegonzalez/Litview/internal/app/pkg/ginx"
)

// Liveness answers the liveness probe.
// GET /api/submit
func (h *RelayHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"literally": "ballin"})
}

// Submit runs the relay flow for one webhook event.
// POST /api/submit
func (h *RelayHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		ginx.InternalError(c, "read request body failed")
		return
	}

	// A payload that is not valid JSON is handled the same as one without an
	// order id, so the decode error is deliberately ignored.
	var event request.InboundEvent
	_ = json.Unmarshal(raw, &event)

	outcome, err := h.relayService.Relay(ctx, &event, raw)
	if err != nil {
		h.writeRelayError(c, raw, err)
		return
	}

	switch outcome.State {
	case svrelay.StateSkipped:
		ginx.Success(c, response.RelaySkipped{Order: outcome.Order})
	case svrelay.StateAccepted:
		ginx.Success(c, response.FromStatusRecord(outcome.Record))
	default:
		h.log.Errorf(ctx, "unexpected relay state %q", outcome.State)
		ginx.InternalError(c, "unexpected relay state")
	}
}

// writeRelayError maps the relay error taxonomy onto HTTP statuses. A partner
// rejection is the partner's fault, so it surfaces as 502 rather than 500.
func (h *RelayHandler) writeRelayError(c *gin.Context, raw []byte, err error) {
	var partnerErr *errorx.PartnerError

	switch {
	case errors.Is(err, errorx.ErrMissingOrderID):
		data := json.RawMessage(raw)
		if !json.Valid(raw) {
			// echo a non-JSON payload as a JSON string
			data, _ = json.Marshal(string(raw))
		}
		ginx.ErrorWithData(c, http.StatusInternalServerError, err.Error(), data)
	case errors.As(err, &partnerErr):
		ginx.BadGateway(c, partnerErr.Body)
	default:
		ginx.InternalError(c, err.Error())
	}
}
