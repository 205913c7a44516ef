package endpoints

import (
	"fmt"
	"net/http"
	"os"

	"townclerk/pkg/config"
	"townclerk/pkg/identity"
	"townclerk/pkg/server"
	"townclerk/pkg/server/middleware"
	"townclerk/pkg/ui"
)

// RegisterPageEndpoints registers the HTML pages. Everything under
// /admin/ sits behind the session guard; the login and agent dashboard
// pages render for anonymous visitors too.
func RegisterPageEndpoints(s *server.Server) {
	cfg := config.Get()
	guard := middleware.NewSessionGuard(s.Sessions, cfg.SessionCookieName)

	s.Router.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dashboard", http.StatusFound)
	}).Methods("GET")

	s.Router.HandleFunc("/login", handleLoginPage(guard)).Methods("GET")
	s.Router.HandleFunc("/dashboard", handleDashboardPage(guard)).Methods("GET")

	adminRouter := s.Router.PathPrefix("/admin").Subrouter()
	adminRouter.Use(guard.Middleware)
	adminRouter.HandleFunc("/dashboard", handleAdminDashboardPage(cfg.AnnouncementsDir)).Methods("GET")

	// Subrouter middleware only runs when a subroute matches, so a
	// catch-all keeps unregistered /admin paths behind the guard too.
	adminRouter.PathPrefix("/").HandlerFunc(http.NotFound)
}

func handleLoginPage(guard *middleware.SessionGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := guard.Resolve(r)
		if id != nil && id.IsAdmin() {
			http.Redirect(w, r, "/admin/dashboard", http.StatusFound)
			return
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		if err := ui.RenderLogin(w, ui.LoginPage{Header: ui.NewHeader("Sign in", id)}); err != nil {
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}

func handleDashboardPage(guard *middleware.SessionGuard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := guard.Resolve(r)

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := ui.DashboardPage{
			Header: ui.NewHeader("Dashboard", id),
			Banner: ui.NewWelcomeBanner(id),
		}
		if err := ui.RenderDashboard(w, page); err != nil {
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}

func handleAdminDashboardPage(announcementsDir string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, _ := identity.Get(r.Context())

		announcements, err := ui.LoadAnnouncements(announcementsDir)
		if err != nil {
			// The page still renders without announcements
			fmt.Fprintf(os.Stderr, "dashboard: failed to load announcements: %v\n", err)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		page := ui.AdminDashboardPage{
			Header:        ui.NewHeader("Admin dashboard", id),
			Banner:        ui.NewWelcomeBanner(id),
			Sidebar:       ui.Sidebar(),
			Announcements: announcements,
		}
		if err := ui.RenderAdminDashboard(w, page); err != nil {
			http.Error(w, "failed to render page", http.StatusInternalServerError)
		}
	}
}
