package endpoints

import (
	"bytes"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"townclerk/pkg/audit"
	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
)

// captureAuditLog redirects the audit logger into a buffer for the test.
func captureAuditLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	audit.DefaultLogger.SetWriter(&buf)
	t.Cleanup(func() { audit.DefaultLogger.SetWriter(os.Stdout) })
	return &buf
}

func TestUserMutationsEmitAuditEvents(t *testing.T) {
	buf := captureAuditLog(t)

	users := NewMockUsersStore()
	users.On("CreateUser", store.UserInput{Name: "Alice Carter", Email: "alice@example.org"}).Return(
		&model.User{ID: 5, Name: "Alice Carter", Email: "alice@example.org"}, nil,
	)
	users.On("UpdateUser", int64(5), store.UserUpdate{}).Return(
		&model.User{ID: 5, Name: "Alice Carter", Email: "alice@example.org"}, nil,
	)
	users.On("DeleteUser", int64(5)).Return(nil)
	router := usersRouter(users)

	req := httptest.NewRequest("POST", "/api/users", strings.NewReader(`{"name":"Alice Carter","email":"alice@example.org"}`))
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest("PUT", "/api/users/5", strings.NewReader(`{}`))
	router.ServeHTTP(httptest.NewRecorder(), req)

	req = httptest.NewRequest("DELETE", "/api/users/5", nil)
	router.ServeHTTP(httptest.NewRecorder(), req)

	log := buf.String()
	assert.Contains(t, log, `resource="users"`)
	assert.Contains(t, log, `operation="create"`)
	assert.Contains(t, log, `operation="update"`)
	assert.Contains(t, log, `operation="delete"`)
	assert.Contains(t, log, "performed create on users 5")

	users.AssertExpectations(t)
}

func TestFailedMutationsEmitNoAuditEvent(t *testing.T) {
	buf := captureAuditLog(t)

	users := NewMockUsersStore()
	users.On("DeleteUser", int64(9)).Return(store.ErrNotFound)

	req := httptest.NewRequest("DELETE", "/api/users/9", nil)
	usersRouter(users).ServeHTTP(httptest.NewRecorder(), req)

	assert.NotContains(t, buf.String(), `operation="delete"`)

	users.AssertExpectations(t)
}
