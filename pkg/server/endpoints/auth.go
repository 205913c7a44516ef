package endpoints

import (
	"net"
	"net/http"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"townclerk/pkg/audit"
	"townclerk/pkg/config"
	"townclerk/pkg/server"
	"townclerk/pkg/server/store"
	"townclerk/pkg/session"
)

// RegisterAuthEndpoints registers the login and logout endpoints
func RegisterAuthEndpoints(s *server.Server) {
	cfg := config.Get()

	s.Router.HandleFunc("/api/login", handleLogin(s.Stores.Admins, s.Sessions, cfg.SessionCookieName)).Methods("POST")
	s.Router.HandleFunc("/api/logout", handleLogout(cfg.SessionCookieName)).Methods("POST")
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// isFormRequest reports whether the login request came from the HTML
// form rather than an API client.
func isFormRequest(r *http.Request) bool {
	return strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded")
}

func handleLogin(admins store.AdminsStore, sessions *session.Manager, cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var creds struct {
			Username string `json:"username"`
			Password string `json:"password"`
		}
		fromForm := isFormRequest(r)
		if fromForm {
			creds.Username = r.PostFormValue("username")
			creds.Password = r.PostFormValue("password")
		} else if !decodeBody(w, r, &creds) {
			return
		}

		fail := func(code int, message, auditReason string) {
			if auditReason != "" {
				audit.Log(audit.LoginEvent{Username: creds.Username, ClientIP: clientIP(r), ErrorMessage: auditReason})
			}
			if fromForm {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			respondWithError(w, code, message)
		}

		if creds.Username == "" || creds.Password == "" {
			fail(http.StatusBadRequest, "username and password are required", "")
			return
		}

		admin, err := admins.FetchAdminByUsername(creds.Username)
		if err != nil {
			fail(http.StatusUnauthorized, "invalid credentials", "unknown username")
			return
		}

		if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(creds.Password)) != nil {
			fail(http.StatusUnauthorized, "invalid credentials", "wrong password")
			return
		}

		token, err := sessions.Issue(admin, time.Now())
		if err != nil {
			fail(http.StatusInternalServerError, "internal error", "")
			return
		}

		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    token,
			Path:     "/",
			Expires:  time.Now().Add(sessions.TTL()),
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})

		audit.Log(audit.LoginEvent{Username: creds.Username, ClientIP: clientIP(r), Success: true})

		if fromForm {
			http.Redirect(w, r, "/admin/dashboard", http.StatusSeeOther)
			return
		}
		respondWithData(w, admin)
	}
}

func handleLogout(cookieName string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{
			Name:     cookieName,
			Value:    "",
			Path:     "/",
			MaxAge:   -1,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		})
		respondWithData(w, nil)
	}
}
