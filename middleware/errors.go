package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler renders error.html with status 500 when a handler attached an
// error to the context without writing a response.
func ErrorHandler(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		err := c.Errors.Last()
		logger.Error("Request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Error(err.Err),
		)
		if c.Writer.Written() {
			return
		}
		c.HTML(http.StatusInternalServerError, "error.html", gin.H{
			"Message": "The request could not be completed. Please try again.",
		})
		c.Abort()
	}
}
