package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tally/internal/shared/errors"
	"tally/internal/shared/logger"
)

// APIResponse is the uniform envelope returned by every endpoint. The
// envelope, not the HTTP status code, carries success/failure: all
// responses go out as HTTP 200 so clients branch on the success flag.
type APIResponse struct {
	Success bool        `json:"success"`
	Payload interface{} `json:"payload"`
	Message string      `json:"message"`
}

// SuccessResponse sends a success envelope with the given payload.
func SuccessResponse(c *gin.Context, message string, payload interface{}) {
	c.JSON(http.StatusOK, APIResponse{
		Success: true,
		Payload: payload,
		Message: message,
	})
}

// FailureResponse sends a failure envelope with a user-facing message.
func FailureResponse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, APIResponse{
		Success: false,
		Payload: nil,
		Message: message,
	})
}

// FailureResponseWithError sends a failure envelope derived from err.
// AppError messages are user-facing; anything else is logged and
// replaced with a generic message so internals never leak to clients.
func FailureResponseWithError(c *gin.Context, err error) {
	if appErr := errors.GetAppError(err); appErr != nil {
		FailureResponse(c, appErr.Message)
		return
	}

	logger.Error("request failed with internal error",
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"error", err)
	FailureResponse(c, "backend processing failed")
}
