package ui

import (
	"embed"
	"html/template"
	"io"
)

//go:embed templates/*.gohtml
var templateFiles embed.FS

var pages = template.Must(template.ParseFS(templateFiles, "templates/*.gohtml"))

// LoginPage is the view model for the login page.
type LoginPage struct {
	Header Header

	// Error is shown above the form after a failed attempt.
	Error string
}

// DashboardPage is the view model for the agent dashboard.
type DashboardPage struct {
	Header Header
	Banner WelcomeBanner
}

// AdminDashboardPage is the view model for the admin dashboard.
type AdminDashboardPage struct {
	Header        Header
	Banner        WelcomeBanner
	Sidebar       []NavItem
	Announcements []Announcement
}

// RenderLogin writes the login page.
func RenderLogin(w io.Writer, page LoginPage) error {
	return pages.ExecuteTemplate(w, "login.gohtml", page)
}

// RenderDashboard writes the agent dashboard.
func RenderDashboard(w io.Writer, page DashboardPage) error {
	return pages.ExecuteTemplate(w, "dashboard.gohtml", page)
}

// RenderAdminDashboard writes the admin dashboard.
func RenderAdminDashboard(w io.Writer, page AdminDashboardPage) error {
	return pages.ExecuteTemplate(w, "admin_dashboard.gohtml", page)
}
