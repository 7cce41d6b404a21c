package middleware

import (
	"bytes"
	"io"
	rtdebug "runtime/debug"

	"github.com/foodexpress/foodexpress-api/internal/apperr"
	"github.com/foodexpress/foodexpress-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler is the centralized error boundary. Handlers and guards
// record failures with c.Error(...); this middleware maps the last one
// to its JSON response: a recognized apperr kind yields its status and
// message, anything else becomes a 500.
//
// In debug mode the response also carries a stack and a request echo
// (method, path, body) for diagnosis. The body is captured up front
// because binding consumes the request stream.
func ErrorHandler(debug bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var bodyCopy []byte
		if debug && c.Request.Body != nil {
			bodyCopy, _ = io.ReadAll(c.Request.Body)
			c.Request.Body = io.NopCloser(bytes.NewReader(bodyCopy))
		}

		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		status := 500
		message := "Internal Server Error"

		if ae := apperr.As(err); ae != nil {
			status = ae.Status
			message = ae.Message
		}

		if status >= 500 {
			logger.Log.Error("Request failed",
				zap.Int("status", status),
				zap.String("method", c.Request.Method),
				zap.String("path", c.Request.URL.Path),
				zap.Error(err),
			)
		}

		resp := gin.H{
			"error":   status,
			"message": message,
		}

		if debug {
			resp["stack"] = string(rtdebug.Stack())
			resp["details"] = gin.H{
				"method": c.Request.Method,
				"path":   c.Request.URL.Path,
				"body":   string(bodyCopy),
			}
		}

		if c.Writer.Written() {
			return
		}
		c.JSON(status, resp)
	}
}
