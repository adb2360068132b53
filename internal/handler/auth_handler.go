package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/service"
	"adminpanel/internal/session"
)

// AuthHandler handles the login and logout surfaces.
type AuthHandler struct {
	authService service.AuthService
	sessions    *session.Manager
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(authService service.AuthService, sessions *session.Manager) *AuthHandler {
	return &AuthHandler{authService: authService, sessions: sessions}
}

// LoginRequest is the login form payload.
type LoginRequest struct {
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required"`
}

// LoginPage renders the login form. Admins with a live session are sent
// straight to the dashboard.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if id, ok := h.sessions.AdminID(c.Request()); ok {
		if _, err := h.authService.ResolveSession(c.Request().Context(), id); err == nil {
			return c.Redirect(http.StatusFound, "/admin/dashboard")
		}
	}
	return c.Render(http.StatusOK, "login.html", map[string]any{
		"Error": "",
		"Email": "",
	})
}

// Login authenticates the form credentials, creates the session record, and
// sets the signed cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return c.Render(http.StatusBadRequest, "login.html", map[string]any{
			"Error": "Email and password are required",
			"Email": req.Email,
		})
	}

	admin, err := h.authService.Authenticate(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidCredentials) {
			return c.Render(http.StatusUnauthorized, "login.html", map[string]any{
				"Error": "Invalid email or password",
				"Email": req.Email,
			})
		}
		return err
	}

	act := service.NewActionContext(admin.ID, c.Request())
	if _, err := h.authService.StartSession(c.Request().Context(), act); err != nil {
		return err
	}
	if err := h.sessions.SetAdminID(c.Response(), c.Request(), admin.ID); err != nil {
		return err
	}

	return c.Redirect(http.StatusSeeOther, "/admin/dashboard")
}

// Logout deletes the admin's session records and clears the cookie. Safe to
// call without a session.
func (h *AuthHandler) Logout(c echo.Context) error {
	if id, ok := h.sessions.AdminID(c.Request()); ok {
		if err := h.authService.EndSession(c.Request().Context(), id); err != nil {
			return err
		}
	}
	if err := h.sessions.Clear(c.Response(), c.Request()); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/login")
}
