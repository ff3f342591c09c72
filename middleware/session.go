package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/baqati-oman/storefront-api/session"
)

// SessionKey is the gin context key the resolved session token is stored under.
const SessionKey = "session_id"

// ResolveSession finds the caller's session token (header, query param, or
// cookie, in that order) and stores it in the request context. First-time
// visitors get a freshly generated token, issued back as a cookie. The token is
// opaque: nothing is validated beyond it being non-empty.
func ResolveSession(c *gin.Context) {
	token := c.GetHeader(session.HeaderName)
	if token == "" {
		token = c.Query(session.QueryParam)
	}
	if token == "" {
		if v, err := c.Cookie(session.CookieName); err == nil {
			token = v
		}
	}
	if token == "" {
		token = session.NewToken()
		session.SetCookie(c.Writer, token)
	}

	c.Header(session.HeaderName, token)
	c.Set(SessionKey, token)
	c.Next()
}

// SessionID returns the session token resolved by ResolveSession.
func SessionID(c *gin.Context) string {
	v, _ := c.Get(SessionKey)
	s, _ := v.(string)
	return s
}
