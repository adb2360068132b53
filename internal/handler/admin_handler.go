package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/service"
)

// AdminHandler handles the administrator management screen. The router gates
// every route here behind the super tier.
type AdminHandler struct {
	svc service.AdminService
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(svc service.AdminService) *AdminHandler {
	return &AdminHandler{svc: svc}
}

// CreateAdminRequest is the create-admin form payload.
type CreateAdminRequest struct {
	Name     string `form:"name" validate:"required"`
	Email    string `form:"email" validate:"required,email"`
	Password string `form:"password" validate:"required,min=8"`
	Role     string `form:"role" validate:"omitempty,oneof=ADMIN SUPER_ADMIN"`
}

// Admins renders the listing screen.
func (h *AdminHandler) Admins(c echo.Context) error {
	admins, err := h.svc.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "admins.html", map[string]any{
		"Admin":  CurrentAdmin(c),
		"Admins": admins,
		"Error":  c.QueryParam("error"),
	})
}

// AdminAction dispatches the form intents for the screen.
func (h *AdminHandler) AdminAction(c echo.Context) error {
	act := actionContext(c)

	switch c.FormValue("intent") {
	case "create":
		var req CreateAdminRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		created, err := h.svc.Create(c.Request().Context(), act, service.CreateAdminInput{
			Name:     req.Name,
			Email:    req.Email,
			Password: req.Password,
			Role:     req.Role,
		})
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]any{"success": true, "admin": created})

	case "toggle-active":
		id, err := formID(c, "adminId")
		if err != nil {
			return err
		}
		admin, err := h.svc.ToggleActive(c.Request().Context(), act, id)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"success": true, "admin": admin})

	case "update-role":
		id, err := formID(c, "adminId")
		if err != nil {
			return err
		}
		admin, err := h.svc.UpdateRole(c.Request().Context(), act, id, c.FormValue("role"))
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"success": true, "admin": admin})

	case "delete":
		id, err := formID(c, "adminId")
		if err != nil {
			return err
		}
		if err := h.svc.Delete(c.Request().Context(), act, id); err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"success": true})
	}

	return domainError(c, apperrors.ErrInvalidIntent)
}
