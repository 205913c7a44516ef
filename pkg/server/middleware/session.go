package middleware

import (
	"net"
	"net/http"

	"townclerk/pkg/identity"
	"townclerk/pkg/session"
)

// SessionGuard is middleware that gates the admin UI behind a valid
// session cookie carrying the admin role.
type SessionGuard struct {
	Sessions   *session.Manager
	CookieName string

	// LoginPath receives requests without a usable session.
	LoginPath string

	// FallbackPath receives authenticated requests whose role is not
	// admin.
	FallbackPath string
}

// NewSessionGuard creates a session guard middleware
func NewSessionGuard(sessions *session.Manager, cookieName string) *SessionGuard {
	return &SessionGuard{
		Sessions:     sessions,
		CookieName:   cookieName,
		LoginPath:    "/login",
		FallbackPath: "/dashboard",
	}
}

// Middleware returns an HTTP middleware that verifies the session cookie
// and stores the resulting identity in the request context. Requests
// without a valid session are redirected to the login page; sessions
// without the admin role are redirected to the fallback page.
func (g *SessionGuard) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(g.CookieName)
		if err != nil || cookie.Value == "" {
			http.Redirect(w, r, g.LoginPath, http.StatusFound)
			return
		}

		id, err := g.Sessions.Verify(cookie.Value)
		if err != nil {
			http.Redirect(w, r, g.LoginPath, http.StatusFound)
			return
		}

		if !id.IsAdmin() {
			http.Redirect(w, r, g.FallbackPath, http.StatusFound)
			return
		}

		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			id.WithRemoteIP(net.ParseIP(host))
		}

		next.ServeHTTP(w, r.WithContext(identity.Set(r.Context(), id)))
	})
}

// Resolve returns the identity carried by a request's session cookie, or
// nil when the request has no valid session. It never redirects, so
// pages that render for anonymous visitors can use it.
func (g *SessionGuard) Resolve(r *http.Request) *identity.Identity {
	cookie, err := r.Cookie(g.CookieName)
	if err != nil || cookie.Value == "" {
		return nil
	}
	id, err := g.Sessions.Verify(cookie.Value)
	if err != nil {
		return nil
	}
	return id
}
