package middlewares

import (
	"context"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/davegonzalez/Litview/internal/app/pkg/ginx"
	"github.com/davegonzalez/Litview/internal/app/pkg/logger"
)

// FailureNotifier is the slice of the notifier the recovery path needs.
type FailureNotifier interface {
	Failure(ctx context.Context, text string)
}

// Recovery converts panics into the top-level error contract: notify the
// operational channel and respond 500 with the raw error.
func Recovery(log logger.Logger, notifier FailureNotifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				ctx := c.Request.Context()
				log.Errorf(ctx, "panic while handling %s %s: %v", c.Request.Method, c.Request.URL.Path, r)
				notifier.Failure(ctx, fmt.Sprintf("Unhandled error in order relay: %v", r))
				c.AbortWithStatusJSON(http.StatusInternalServerError, ginx.ErrorBody{Error: fmt.Sprintf("%v", r)})
			}
		}()
		c.Next()
	}
}
