package middlewares

import (
	"marketplace/pkg/apperr"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// ErrorHandler renders the last error pushed with c.Error as
// {"error": msg}. Server errors are logged and their details withheld.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last().Err
		status, msg := apperr.StatusOf(err)
		if status >= 500 {
			log.Error().Err(err).
				Str("method", c.Request.Method).
				Str("path", c.Request.URL.Path).
				Msg("request failed")
		}
		if c.Writer.Written() {
			return
		}
		c.JSON(status, gin.H{"error": msg})
	}
}
