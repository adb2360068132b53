package router

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/handler"
	"adminpanel/internal/model"
	"adminpanel/internal/service"
	"adminpanel/internal/session"
)

// RequireAdmin resolves the session cookie into an administrator and stores
// it on the context. Requests without a resolvable session are redirected to
// the login page, never given an error payload.
func RequireAdmin(authService service.AuthService, sessions *session.Manager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			id, ok := sessions.AdminID(c.Request())
			if !ok {
				return c.Redirect(http.StatusFound, "/admin/login")
			}
			admin, err := authService.ResolveSession(c.Request().Context(), id)
			if err != nil {
				if errors.Is(err, apperrors.ErrUnauthenticated) {
					return c.Redirect(http.StatusFound, "/admin/login")
				}
				return err
			}
			c.Set(handler.AdminContextKey, admin)
			return next(c)
		}
	}
}

// authorizeSuper reports whether the resolved admin may reach the super
// tier: ErrUnauthenticated without a resolved admin, ErrForbidden below the
// tier, nil otherwise.
func authorizeSuper(admin *model.Admin) error {
	if admin == nil {
		return apperrors.ErrUnauthenticated
	}
	if !admin.IsSuper() {
		return apperrors.ErrForbidden
	}
	return nil
}

// RequireSuperAdmin redirects admins below the super tier to the dashboard
// with an error indicator. It must run behind RequireAdmin.
func RequireSuperAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			switch err := authorizeSuper(handler.CurrentAdmin(c)); {
			case errors.Is(err, apperrors.ErrUnauthenticated):
				return c.Redirect(http.StatusFound, "/admin/login")
			case errors.Is(err, apperrors.ErrForbidden):
				return c.Redirect(http.StatusFound, "/admin/dashboard?error=insufficient_permissions")
			}
			return next(c)
		}
	}
}
