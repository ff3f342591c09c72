package session

import (
	"crypto/rand"
	"math/big"
	"net/http"
	"strconv"
	"time"
)

const (
	// CookieName is the durable client-side key holding the session token.
	CookieName = "baqati_session_id"

	// HeaderName carries the session token on requests and responses, for
	// clients that keep it in local storage instead of cookies.
	HeaderName = "X-Session-ID"

	// QueryParam is the fallback token carrier for clients that can send
	// neither header nor cookie, such as websocket upgrades from the browser.
	QueryParam = "session_id"

	tokenPrefix = "session_"

	// Cookies outlive the browser session; the token is meant to be stable
	// until client storage is cleared.
	cookieMaxAge = 365 * 24 * time.Hour
)

// NewToken generates an opaque session token: a fixed prefix, a random base-36
// fragment, and a base-36 millisecond timestamp. Tokens are not registered
// anywhere server-side; uniqueness is effective, not enforced.
func NewToken() string {
	suffix := strconv.FormatInt(time.Now().UnixMilli(), 36)

	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		return tokenPrefix + suffix
	}
	return tokenPrefix + new(big.Int).SetBytes(b).Text(36) + suffix
}

// SetCookie issues the session cookie to the client.
func SetCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		Expires:  time.Now().Add(cookieMaxAge),
		HttpOnly: false, // storefront JS reads it
		SameSite: http.SameSiteLaxMode,
	})
}
