package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/iexpulse/internal/domain/dto"
	"github.com/guttosm/iexpulse/internal/logger"
)

// ErrorHandler is a Gin middleware that converts errors attached to the
// context (via c.Error) into a standardized JSON error response.
//
// Behavior:
//   - Runs the rest of the chain first.
//   - If handlers attached errors and no response was written yet, responds
//     with 500 and the last error, logged with the request ID.
//   - Handlers that already wrote a response are left untouched.
func ErrorHandler(c *gin.Context) {
	c.Next()

	if len(c.Errors) == 0 || c.Writer.Written() {
		return
	}

	err := c.Errors.Last().Err
	rid, _ := c.Get(RequestIDKey)
	logger.L().Error().
		Str("request_id", toString(rid)).
		Err(err).
		Msg("unhandled request error")

	c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("Internal server error", err))
}
