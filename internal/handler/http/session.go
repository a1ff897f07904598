package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-blog/internal/utils"
	"github.com/MKhiriev/go-blog/models"
)

const sessionCookieName = "session"

// cookieSession keeps the signed session token in an HttpOnly cookie.
// The server holds no session state.
type cookieSession struct {
	name   string
	secure bool
}

func newCookieSession(secure bool) *cookieSession {
	return &cookieSession{name: sessionCookieName, secure: secure}
}

// login sets the session cookie. A remembered session gets a persistent
// cookie; any other one ends with the browser session.
func (c *cookieSession) login(w http.ResponseWriter, session models.Session) {
	cookie := &http.Cookie{
		Name:     c.name,
		Value:    session.Token,
		Path:     "/",
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	}
	if session.Remember {
		cookie.Expires = session.ExpiresAt.UTC()
	}
	http.SetCookie(w, cookie)
}

// logout expires the session cookie.
func (c *cookieSession) logout(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     c.name,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

// token returns the raw session token of r, if any.
func (c *cookieSession) token(r *http.Request) string {
	cookie, err := r.Cookie(c.name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// current returns the principal resolved by withSession.
func (c *cookieSession) current(r *http.Request) models.Principal {
	return utils.GetPrincipalFromContext(r.Context())
}
