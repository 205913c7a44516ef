package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"townclerk/pkg/identity"
	"townclerk/pkg/model"
	"townclerk/pkg/session"
)

const testCookie = "clerk_session"

func newGuard(t *testing.T) (*SessionGuard, *session.Manager) {
	t.Helper()
	manager, err := session.NewManager([]byte("test-secret"), time.Hour)
	require.NoError(t, err)
	return NewSessionGuard(manager, testCookie), manager
}

func protectedHandler(t *testing.T, called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		id, ok := identity.Get(r.Context())
		require.True(t, ok)
		assert.True(t, id.IsAdmin())
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionGuard_NoCookie(t *testing.T) {
	guard, _ := newGuard(t)
	called := false

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	rec := httptest.NewRecorder()
	guard.Middleware(protectedHandler(t, &called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionGuard_InvalidToken(t *testing.T) {
	guard, _ := newGuard(t)
	called := false

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	guard.Middleware(protectedHandler(t, &called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionGuard_WrongRole(t *testing.T) {
	guard, manager := newGuard(t)
	called := false

	agent := &model.Admin{ID: 2, Username: "agent", Role: model.RoleAgent}
	token, err := manager.Issue(agent, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	rec := httptest.NewRecorder()
	guard.Middleware(protectedHandler(t, &called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestSessionGuard_AdminPassesThrough(t *testing.T) {
	guard, manager := newGuard(t)
	called := false

	admin := &model.Admin{ID: 1, Username: "clerk", DisplayName: "Head Clerk", Role: model.RoleAdmin}
	token, err := manager.Issue(admin, time.Now())
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	req.RemoteAddr = "10.0.0.9:50000"
	rec := httptest.NewRecorder()
	guard.Middleware(protectedHandler(t, &called)).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionGuard_ExpiredToken(t *testing.T) {
	guard, manager := newGuard(t)
	called := false

	admin := &model.Admin{ID: 1, Username: "clerk", Role: model.RoleAdmin}
	token, err := manager.Issue(admin, time.Now().Add(-2*time.Hour))
	require.NoError(t, err)

	req := httptest.NewRequest("GET", "/admin/dashboard", nil)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})
	rec := httptest.NewRecorder()
	guard.Middleware(protectedHandler(t, &called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionGuard_Resolve(t *testing.T) {
	guard, manager := newGuard(t)

	req := httptest.NewRequest("GET", "/dashboard", nil)
	assert.Nil(t, guard.Resolve(req))

	admin := &model.Admin{ID: 1, Username: "clerk", Role: model.RoleAdmin}
	token, err := manager.Issue(admin, time.Now())
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: testCookie, Value: token})

	id := guard.Resolve(req)
	require.NotNil(t, id)
	assert.Equal(t, "clerk", id.Username)
}
