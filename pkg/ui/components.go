// Package ui builds the view models and HTML pages of the admin
// interface. Components are presentational: they derive everything from
// the identity and data passed in and hold no state of their own.
package ui

import "townclerk/pkg/identity"

// NavItem is one entry in the sidebar navigation.
type NavItem struct {
	Label string
	Icon  string
	Href  string
}

// Sidebar returns the navigation entries for the admin interface. The
// set is fixed; visibility is handled by the routing layer, not here.
func Sidebar() []NavItem {
	return []NavItem{
		{Label: "Dashboard", Icon: "home", Href: "/admin/dashboard"},
		{Label: "Incoming mail", Icon: "inbox", Href: "/admin/mail-in"},
		{Label: "Contacts in", Icon: "arrow-down", Href: "/admin/contacts-in"},
		{Label: "Contacts out", Icon: "arrow-up", Href: "/admin/contacts-out"},
		{Label: "Services", Icon: "layers", Href: "/admin/services"},
		{Label: "Agents", Icon: "users", Href: "/admin/users"},
		{Label: "Council members", Icon: "award", Href: "/admin/council-members"},
		{Label: "Admins", Icon: "shield", Href: "/admin/admins"},
	}
}

// Header is the view model of the page header bar.
type Header struct {
	Title string

	// UserName is the display name of the signed-in account, empty for
	// anonymous visitors.
	UserName string
}

// NewHeader builds a header for the given identity. A nil identity
// renders an anonymous header.
func NewHeader(title string, id *identity.Identity) Header {
	h := Header{Title: title}
	if id != nil {
		h.UserName = id.Name()
	}
	return h
}

// WelcomeBanner is the greeting block at the top of the dashboard.
type WelcomeBanner struct {
	Greeting string
	Subtitle string
}

// NewWelcomeBanner builds the dashboard greeting for an identity.
func NewWelcomeBanner(id *identity.Identity) WelcomeBanner {
	banner := WelcomeBanner{
		Greeting: "Welcome",
		Subtitle: "Municipal correspondence at a glance",
	}
	if id != nil {
		banner.Greeting = "Welcome, " + id.Name()
	}
	return banner
}
