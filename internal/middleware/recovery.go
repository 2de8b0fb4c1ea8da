package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/stwalsh4118/heritage/internal/logger"
)

const errorPage = `<!doctype html><html><head><title>Server error</title></head>` +
	`<body><h1>Something went wrong</h1><p>Reference: %s</p><p><a href="/">Back to dashboard</a></p></body></html>`

// Recovery turns a panic into a 500 response. Browsers get a small HTML page,
// API clients get the JSON error envelope.
func Recovery(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				requestID := GetRequestID(c)

				requestLogger := GetLogger(c)
				if requestLogger == nil {
					requestLogger = log
				}
				requestLogger.Error("Panic recovered", fmt.Errorf("panic: %v", err), logger.Fields{
					"request_id": requestID,
					"method":     c.Request.Method,
					"path":       c.Request.URL.Path,
					"stack":      string(debug.Stack()),
				})

				if wantsHTML(c) {
					c.Data(http.StatusInternalServerError, "text/html; charset=utf-8",
						[]byte(fmt.Sprintf(errorPage, requestID)))
				} else {
					c.JSON(http.StatusInternalServerError, gin.H{
						"error": gin.H{
							"code":       "INTERNAL_SERVER_ERROR",
							"message":    "An unexpected error occurred",
							"request_id": requestID,
						},
					})
				}
				c.Abort()
			}
		}()

		c.Next()
	}
}

func wantsHTML(c *gin.Context) bool {
	path := c.Request.URL.Path
	if strings.HasPrefix(path, "/api/") || strings.HasPrefix(path, "/health") {
		return false
	}
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}
