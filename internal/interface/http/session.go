package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/yanqian/hireup-faq/internal/infra/config"
)

const sessionContextKey = "faq_session_id"

// sessionMiddleware identifies the browser with a random id kept in a cookie.
// The cookie is refreshed on every page request so idle sessions expire.
func sessionMiddleware(cfg config.SessionConfig) gin.HandlerFunc {
	maxAge := int(cfg.MaxAge / time.Second)
	return func(c *gin.Context) {
		id, err := c.Cookie(cfg.CookieName)
		if err != nil || uuid.Validate(id) != nil {
			id = uuid.NewString()
		}
		secure := c.Request.TLS != nil
		c.SetSameSite(http.SameSiteLaxMode)
		c.SetCookie(cfg.CookieName, id, maxAge, "/", "", secure, true)
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

func sessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
