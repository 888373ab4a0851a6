package ginx

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ErrorBody is the flat error shape the webhook caller sees. The relay is a
// machine-to-machine endpoint, so responses carry no envelope.
type ErrorBody struct {
	Error string          `json:"error"`
	Data  json.RawMessage `json:"data,omitempty"`
}

// Success writes a 200 with the given body.
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// Error writes an error response with the given status.
func Error(c *gin.Context, httpCode int, message string) {
	c.JSON(httpCode, ErrorBody{Error: message})
}

// ErrorWithData writes an error response that echoes the offending payload.
func ErrorWithData(c *gin.Context, httpCode int, message string, data json.RawMessage) {
	c.JSON(httpCode, ErrorBody{Error: message, Data: data})
}

// InternalError writes a 500 error.
func InternalError(c *gin.Context, message string) {
	Error(c, http.StatusInternalServerError, message)
}

// BadGateway writes a 502 error.
func BadGateway(c *gin.Context, message string) {
	Error(c, http.StatusBadGateway, message)
}
