package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthmate/internal/auth"
)

// RedirectAuthenticated sends a request that already carries a valid session
// straight to the symptom form, so the login page never re-authenticates an
// authenticated user.
func RedirectAuthenticated(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if _, ok := sessions.Resolve(ctx, token); ok {
			c.Redirect(http.StatusFound, "/symptoms")
			c.Abort()
			return
		}

		c.Next()
	}
}
