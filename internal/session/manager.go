package session

import (
	"net/http"

	"github.com/gorilla/sessions"
)

const (
	// CookieName is the signed session cookie carrying the admin identity.
	CookieName = "admin_session"
	// MaxAge is the cookie lifetime in seconds (30 days).
	MaxAge = 30 * 24 * 60 * 60

	adminIDKey = "adminId"
)

// Manager wraps a gorilla CookieStore configured for the admin panel:
// HTTP-only, SameSite=Lax, signed with the configured secret.
type Manager struct {
	store *sessions.CookieStore
}

// NewManager builds a Manager. The secret must be non-empty; config.Load
// enforces that before this is ever called.
func NewManager(secret string) *Manager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   MaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
	return &Manager{store: store}
}

// AdminID reads the admin identity from the request cookie. The second
// return is false when the cookie is absent, unsigned, or empty.
func (m *Manager) AdminID(r *http.Request) (uint, bool) {
	sess, err := m.store.Get(r, CookieName)
	if err != nil {
		return 0, false
	}
	id, ok := sess.Values[adminIDKey].(int)
	if !ok || id <= 0 {
		return 0, false
	}
	return uint(id), true
}

// SetAdminID writes the admin identity into the response cookie.
func (m *Manager) SetAdminID(w http.ResponseWriter, r *http.Request, adminID uint) error {
	sess, _ := m.store.Get(r, CookieName)
	sess.Values[adminIDKey] = int(adminID)
	return sess.Save(r, w)
}

// Clear expires the session cookie.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	sess, _ := m.store.Get(r, CookieName)
	delete(sess.Values, adminIDKey)
	sess.Options.MaxAge = -1
	return sess.Save(r, w)
}
