package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_RoundTrip(t *testing.T) {
	m := NewManager("test-secret")

	seed := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	rec := httptest.NewRecorder()
	assert.NoError(t, m.SetAdminID(rec, seed, 42))

	cookies := rec.Result().Cookies()
	assert.NotEmpty(t, cookies)
	assert.Equal(t, CookieName, cookies[0].Name)
	assert.True(t, cookies[0].HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookies[0].SameSite)
	assert.Equal(t, MaxAge, cookies[0].MaxAge)

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, cookie := range cookies {
		req.AddCookie(cookie)
	}
	id, ok := m.AdminID(req)
	assert.True(t, ok)
	assert.Equal(t, uint(42), id)
}

func TestManager_AdminID_NoCookie(t *testing.T) {
	m := NewManager("test-secret")

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	_, ok := m.AdminID(req)

	assert.False(t, ok)
}

func TestManager_AdminID_WrongSecret(t *testing.T) {
	signer := NewManager("test-secret")
	verifier := NewManager("another-secret")

	seed := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	rec := httptest.NewRecorder()
	assert.NoError(t, signer.SetAdminID(rec, seed, 42))

	req := httptest.NewRequest(http.MethodGet, "/admin/dashboard", nil)
	for _, cookie := range rec.Result().Cookies() {
		req.AddCookie(cookie)
	}
	_, ok := verifier.AdminID(req)

	assert.False(t, ok)
}

func TestManager_Clear(t *testing.T) {
	m := NewManager("test-secret")

	seed := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	login := httptest.NewRecorder()
	assert.NoError(t, m.SetAdminID(login, seed, 42))

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	for _, cookie := range login.Result().Cookies() {
		req.AddCookie(cookie)
	}
	logout := httptest.NewRecorder()
	assert.NoError(t, m.Clear(logout, req))

	cookies := logout.Result().Cookies()
	assert.NotEmpty(t, cookies)
	assert.Equal(t, -1, cookies[0].MaxAge)
}
