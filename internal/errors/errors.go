package errors

import (
	"net/http"
	"os"
	"strings"

	"codeberg.org/branchadmin/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// Error Handling Guidelines:
//
// For HTTP REST handlers:
//   - Use errors.InternalError(), errors.BadRequest(), etc. for critical errors
//     These functions handle both logging and HTTP response automatically
//   - Use logger.ErrorErr() only for non-critical errors where processing continues
//   - Never call both logger.ErrorErr() and errors.InternalError() for the same error
//
// For services/internal packages:
//   - Return wrapped errors with context using fmt.Errorf("context: %w", err)
//   - Let the caller (handler or controller) decide how to log and surface it
//
// The assist controllers read the "error" key of any response body and show it
// to the operator verbatim, so it always carries a user-facing message.

// returns a 403 forbidden error
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "permission denied"
	}

	c.AbortWithStatusJSON(http.StatusForbidden, ErrorResponse{
		Error: message,
		Code:  CodeForbidden,
	})
}

// returns a 400 bad request error
func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	response := ErrorResponse{
		Error: message,
		Code:  CodeBadRequest,
	}

	if err != nil {
		response.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, response)
}

// returns a 400 error when no company/tenant context could be resolved
func MissingTenant(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error: "Company context not found",
		Code:  CodeMissingTenant,
	})
}

// returns a 500 internal server error
func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   message,
		Code:    CodeServerError,
		Details: sanitizeError(err),
	})
}

// returns a 502 when the upstream model call failed
func GenerationFailed(c *gin.Context, message string, err error) {
	if message == "" {
		message = "generation failed, please try again later"
	}

	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"tenant", c.GetString("tenant"),
	)

	c.JSON(http.StatusBadGateway, ErrorResponse{
		Error: message,
		Code:  CodeGenerationFailed,
	})
}

// returns a 429 too many requests error
func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{
		Error: message,
		Code:  CodeTooManyRequests,
	})
}

// sanitizes error messages for production
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	errMsg := err.Error()

	if os.Getenv("ENVIRONMENT") != "production" {
		return errMsg
	}

	lower := strings.ToLower(errMsg)

	if strings.Contains(lower, "connection") || strings.Contains(lower, "network") {
		return "connection error occurred"
	}

	if strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline") {
		return "request timed out"
	}

	if strings.Contains(lower, "json") || strings.Contains(lower, "unmarshal") {
		return "malformed request body"
	}

	return "an error occurred"
}
