package ui

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"townclerk/pkg/identity"
	"townclerk/pkg/model"
)

func TestSidebar(t *testing.T) {
	items := Sidebar()
	require.NotEmpty(t, items)

	for _, item := range items {
		assert.NotEmpty(t, item.Label)
		assert.NotEmpty(t, item.Icon)
		assert.True(t, strings.HasPrefix(item.Href, "/admin/"), "sidebar entries link under /admin/, got %s", item.Href)
	}
}

func TestNewHeader(t *testing.T) {
	anon := NewHeader("townclerk", nil)
	assert.Equal(t, "", anon.UserName)

	id := &identity.Identity{Username: "clerk", DisplayName: "Head Clerk", Role: model.RoleAdmin}
	signed := NewHeader("townclerk", id)
	assert.Equal(t, "Head Clerk", signed.UserName)

	noDisplay := &identity.Identity{Username: "clerk"}
	assert.Equal(t, "clerk", NewHeader("townclerk", noDisplay).UserName)
}

func TestNewWelcomeBanner(t *testing.T) {
	assert.Equal(t, "Welcome", NewWelcomeBanner(nil).Greeting)

	id := &identity.Identity{Username: "clerk", DisplayName: "Head Clerk"}
	assert.Equal(t, "Welcome, Head Clerk", NewWelcomeBanner(id).Greeting)
}

func TestRenderLogin(t *testing.T) {
	var buf bytes.Buffer
	err := RenderLogin(&buf, LoginPage{
		Header: NewHeader("Sign in", nil),
		Error:  "invalid credentials",
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, `action="/api/login"`)
	assert.Contains(t, html, "invalid credentials")
}

func TestRenderAdminDashboard(t *testing.T) {
	id := &identity.Identity{Username: "clerk", DisplayName: "Head Clerk", Role: model.RoleAdmin}

	var buf bytes.Buffer
	err := RenderAdminDashboard(&buf, AdminDashboardPage{
		Header:  NewHeader("Dashboard", id),
		Banner:  NewWelcomeBanner(id),
		Sidebar: Sidebar(),
	})
	require.NoError(t, err)

	html := buf.String()
	assert.Contains(t, html, "Welcome, Head Clerk")
	assert.Contains(t, html, "/admin/mail-in")
}

func TestLoadAnnouncements(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2026-01-roadworks.md"), []byte("# Roadworks\n\nMain street closed."), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("ignored"), 0644))

	announcements, err := LoadAnnouncements(dir)
	require.NoError(t, err)
	require.Len(t, announcements, 1)
	assert.Equal(t, "2026-01-roadworks", announcements[0].Name)
	assert.Contains(t, string(announcements[0].Body), "<h1>Roadworks</h1>")
}

func TestLoadAnnouncements_MissingDir(t *testing.T) {
	announcements, err := LoadAnnouncements("/does/not/exist")
	require.NoError(t, err)
	assert.Empty(t, announcements)

	announcements, err = LoadAnnouncements("")
	require.NoError(t, err)
	assert.Empty(t, announcements)
}
