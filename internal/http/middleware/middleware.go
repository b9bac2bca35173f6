package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/iyhunko/treko-inventory/internal/service"
)

// EmployeeKey holds the employee code of a request carrying a valid session token.
const EmployeeKey = "employee_code"

// SessionParser validates session tokens issued at login.
type SessionParser interface {
	ParseToken(token string) (*service.Claims, error)
}

// Recovery is a middleware that recovers from panics and returns a 500 Internal Server Error
// instead of crashing the server.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				slog.Error("Panic recovered",
					slog.Any("error", err),
					slog.String("path", c.Request.URL.Path),
					slog.String("method", c.Request.Method),
				)
				c.JSON(http.StatusInternalServerError, gin.H{
					"error": "Internal Server Error",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// CORS allows the admin panel to be served from any origin.
// Preflight requests are answered here with 204.
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		h.Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		h.Set("Access-Control-Max-Age", "86400")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

// Identify records who sent the request when it carries a valid Bearer
// token. Requests without one, or with an invalid one, pass through
// unchanged: product routes are not gated on the session.
func Identify(sessions SessionParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if ok && token != "" {
			if claims, err := sessions.ParseToken(token); err == nil {
				c.Set(EmployeeKey, claims.Subject)
			} else {
				slog.Debug("ignoring session token", slog.Any("err", err))
			}
		}
		c.Next()
	}
}

// Logger writes one structured record per request.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		attrs := []any{
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
		}
		if code := c.GetString(EmployeeKey); code != "" {
			attrs = append(attrs, slog.String("employee", code))
		}
		slog.Log(c.Request.Context(), level, "http request", attrs...)
	}
}
