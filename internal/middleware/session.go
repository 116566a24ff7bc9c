package middleware

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"healthmate/internal/auth"
)

// RequireSession resolves the session cookie and injects the userId into the
// context. Requests without a resolvable session are redirected to the login
// page before any protected handler runs.
func RequireSession(sessions *auth.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(auth.SessionCookie)
		if err != nil || token == "" {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		userID, ok := sessions.Resolve(ctx, token)
		if !ok {
			log.Println("[SESSION] [ERROR] session did not resolve, redirecting to login")
			c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}

		c.Set("userId", userID)
		c.Next()
	}
}
