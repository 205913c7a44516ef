package endpoints

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"townclerk/pkg/model"
	"townclerk/pkg/server"
	"townclerk/pkg/session"
)

func pageServer(t *testing.T) (*server.Server, *session.Manager) {
	t.Helper()
	sessions, err := session.NewManager([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	s := server.NewServer(server.Stores{}, sessions, nil, "127.0.0.1", "0")
	RegisterPageEndpoints(s)
	return s, sessions
}

func sessionCookie(t *testing.T, sessions *session.Manager, role model.Role) *http.Cookie {
	t.Helper()
	token, err := sessions.Issue(&model.Admin{ID: 1, Username: "clerk", Role: role}, time.Now())
	require.NoError(t, err)
	return &http.Cookie{Name: testCookieName, Value: token}
}

func TestAdminPages_AnonymousRedirectsToLogin(t *testing.T) {
	s, _ := pageServer(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestAdminPages_UnregisteredPathStaysGuarded(t *testing.T) {
	s, sessions := pageServer(t)

	// No session: even paths with no handler redirect to login
	req := httptest.NewRequest("GET", "/admin/foo", nil)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))

	// Agent session: redirected to the public dashboard
	req = httptest.NewRequest("GET", "/admin/foo", nil)
	req.AddCookie(sessionCookie(t, sessions, model.RoleAgent))
	rec = httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))

	// Admin session: passes the guard and gets a plain 404
	req = httptest.NewRequest("GET", "/admin/foo", nil)
	req.AddCookie(sessionCookie(t, sessions, model.RoleAdmin))
	rec = httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminPages_AgentRedirectsToDashboard(t *testing.T) {
	s, sessions := pageServer(t)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(sessionCookie(t, sessions, model.RoleAgent))
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}
