package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "splitledger/internal/errors"
	"splitledger/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into consistent JSON error responses. AppErrors are returned with
// their code and message; unexpected errors are logged and return a generic
// internal error to avoid leaking details.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
					"request_id", c.GetString(RequestIDKey),
				)
			}
			writeError(c, appErr)
			return
		}

		// Unexpected error: log full details, return generic message
		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
			"request_id", c.GetString(RequestIDKey),
		)
		writeError(c, apperrors.ErrInternalServer)
	}
}

// RouteNotFound reports unknown routes through ErrorHandler.
func RouteNotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(apperrors.ErrNotFound)
	}
}

// Recovery turns panics into INTERNAL_ERROR responses.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Get().Errorw("panic recovered",
			"panic", recovered,
			"path", c.Request.URL.Path,
			"request_id", c.GetString(RequestIDKey),
		)
		writeError(c, apperrors.ErrInternalServer)
		c.Abort()
	})
}

func writeError(c *gin.Context, appErr *apperrors.AppError) {
	c.JSON(appErr.StatusCode, gin.H{
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
