package database

import (
	"github.com/gin-gonic/gin"
	apierrors "github.com/stwalsh4118/heritage/internal/errors"
	"github.com/stwalsh4118/heritage/internal/middleware"
)

// RequestScope creates middleware that acquires one connection per request,
// exposes it through the request context and releases it once the handler
// chain returns, on every exit path.
func RequestScope(db *Database) gin.HandlerFunc {
	return func(c *gin.Context) {
		scope, err := db.Acquire(c.Request.Context())
		if err != nil {
			if log := middleware.GetLogger(c); log != nil {
				log.Error("Failed to acquire request connection", err, map[string]interface{}{
					"path": c.Request.URL.Path,
				})
			}
			apierrors.ServiceUnavailable(c, "Database connection unavailable")
			c.Abort()
			return
		}
		defer scope.Close()

		c.Request = c.Request.WithContext(WithScope(c.Request.Context(), scope))
		c.Next()
	}
}
