package endpoints

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"townclerk/pkg/model"
	"townclerk/pkg/server/store"
	"townclerk/pkg/session"
)

const testCookieName = "clerk_session"

func authRouter(t *testing.T, admins store.AdminsStore) *mux.Router {
	t.Helper()
	sessions, err := session.NewManager([]byte("test-secret"), time.Hour)
	require.NoError(t, err)

	r := mux.NewRouter()
	r.HandleFunc("/api/login", handleLogin(admins, sessions, testCookieName)).Methods("POST")
	r.HandleFunc("/api/logout", handleLogout(testCookieName)).Methods("POST")
	return r
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestLogin(t *testing.T) {
	admins := NewMockAdminsStore()
	admins.On("FetchAdminByUsername", "clerk").Return(&model.Admin{
		ID:           1,
		Username:     "clerk",
		DisplayName:  "Head Clerk",
		Role:         model.RoleAdmin,
		PasswordHash: hashPassword(t, "s3cret"),
	}, nil)

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"clerk","password":"s3cret"}`))
	rec := httptest.NewRecorder()
	authRouter(t, admins).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	success, _, _ := decodeEnvelope(t, rec)
	assert.True(t, success)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.NotEmpty(t, cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)

	// Hash must never appear in the response body
	assert.NotContains(t, rec.Body.String(), "passwordHash")

	admins.AssertExpectations(t)
}

func TestLogin_Form(t *testing.T) {
	admins := NewMockAdminsStore()
	admins.On("FetchAdminByUsername", "clerk").Return(&model.Admin{
		ID:           1,
		Username:     "clerk",
		Role:         model.RoleAdmin,
		PasswordHash: hashPassword(t, "s3cret"),
	}, nil)

	form := url.Values{"username": {"clerk"}, "password": {"s3cret"}}
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	authRouter(t, admins).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/admin/dashboard", rec.Header().Get("Location"))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)

	admins.AssertExpectations(t)
}

func TestLogin_FormWrongPassword(t *testing.T) {
	admins := NewMockAdminsStore()
	admins.On("FetchAdminByUsername", "clerk").Return(&model.Admin{
		ID:           1,
		Username:     "clerk",
		Role:         model.RoleAdmin,
		PasswordHash: hashPassword(t, "s3cret"),
	}, nil)

	form := url.Values{"username": {"clerk"}, "password": {"wrong"}}
	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	authRouter(t, admins).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
	assert.Empty(t, rec.Result().Cookies())

	admins.AssertExpectations(t)
}

func TestLogin_WrongPassword(t *testing.T) {
	admins := NewMockAdminsStore()
	admins.On("FetchAdminByUsername", "clerk").Return(&model.Admin{
		ID:           1,
		Username:     "clerk",
		Role:         model.RoleAdmin,
		PasswordHash: hashPassword(t, "s3cret"),
	}, nil)

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"clerk","password":"wrong"}`))
	rec := httptest.NewRecorder()
	authRouter(t, admins).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	success, message, _ := decodeEnvelope(t, rec)
	assert.False(t, success)
	assert.Equal(t, "invalid credentials", message)
	assert.Empty(t, rec.Result().Cookies())

	admins.AssertExpectations(t)
}

func TestLogin_UnknownUsername(t *testing.T) {
	admins := NewMockAdminsStore()
	admins.On("FetchAdminByUsername", "ghost").Return(nil, fmt.Errorf("%w: admin ghost", store.ErrNotFound))

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"ghost","password":"anything"}`))
	rec := httptest.NewRecorder()
	authRouter(t, admins).ServeHTTP(rec, req)

	// Unknown usernames look the same as wrong passwords
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	_, message, _ := decodeEnvelope(t, rec)
	assert.Equal(t, "invalid credentials", message)

	admins.AssertExpectations(t)
}

func TestLogin_MissingCredentials(t *testing.T) {
	admins := NewMockAdminsStore()

	req := httptest.NewRequest("POST", "/api/login", strings.NewReader(`{"username":"clerk"}`))
	rec := httptest.NewRecorder()
	authRouter(t, admins).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogout(t *testing.T) {
	admins := NewMockAdminsStore()

	req := httptest.NewRequest("POST", "/api/logout", nil)
	rec := httptest.NewRecorder()
	authRouter(t, admins).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, testCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
