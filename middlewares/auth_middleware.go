package middlewares

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/orders-admin/auth"
	"github.com/yeremiapane/orders-admin/utils"
)

const ctxKeySession = "session"

// SessionMiddleware reads the session cookie (or a Bearer token for API
// clients) and stores the resulting session in the context. Requests
// without a valid token get an unauthenticated session.
func SessionMiddleware(tokens *auth.Tokens) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(auth.CookieName)
		if h := c.GetHeader("Authorization"); strings.HasPrefix(h, "Bearer ") {
			token = strings.TrimPrefix(h, "Bearer ")
		}

		var sess auth.Session
		if token != "" {
			parsed, err := tokens.Parse(token)
			if err != nil {
				utils.InfoLogger.WithField("request_id", GetRequestID(c)).Debugf("Ignoring session token: %v", err)
			} else {
				sess = parsed
			}
		}

		c.Set(ctxKeySession, sess)
		c.Next()
	}
}

// CurrentSession returns the session SessionMiddleware stored.
func CurrentSession(c *gin.Context) auth.Session {
	if v, ok := c.Get(ctxKeySession); ok {
		if sess, ok := v.(auth.Session); ok {
			return sess
		}
	}
	return auth.Session{}
}

// RequireAdmin sends browsers without an authenticated session back to the
// login page.
func RequireAdmin(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Authenticated {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdminAPI answers 401 to API clients without an authenticated
// session.
func RequireAdminAPI() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !CurrentSession(c).Authenticated {
			utils.RespondError(c, http.StatusUnauthorized, errors.New("authentication required"))
			c.Abort()
			return
		}
		c.Next()
	}
}
