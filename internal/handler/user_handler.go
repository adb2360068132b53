package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/service"
)

// UserHandler handles the user management screen.
type UserHandler struct {
	svc service.UserService
}

// NewUserHandler creates a new user handler.
func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// CreateUserRequest is the create-user form payload.
type CreateUserRequest struct {
	Name   string `form:"name" validate:"required"`
	Email  string `form:"email" validate:"required,email"`
	Role   string `form:"role"`
	Avatar string `form:"avatar"`
}

// Users renders the listing screen. A search term bypasses pagination and
// returns a single capped page.
func (h *UserHandler) Users(c echo.Context) error {
	searchQuery := c.QueryParam("search")

	var (
		page *service.UserPage
		err  error
	)
	if searchQuery != "" {
		page, err = h.svc.Search(c.Request().Context(), searchQuery)
	} else {
		page, err = h.svc.List(c.Request().Context(), pageParam(c))
	}
	if err != nil {
		return err
	}

	return c.Render(http.StatusOK, "users.html", map[string]any{
		"Admin":       CurrentAdmin(c),
		"Page":        page,
		"SearchQuery": searchQuery,
		"PageNumbers": pageNumbers(page.Pagination),
	})
}

// UserAction dispatches the form intents for the screen.
func (h *UserHandler) UserAction(c echo.Context) error {
	act := actionContext(c)

	switch c.FormValue("intent") {
	case "create":
		var req CreateUserRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		user := &model.User{
			Name:     req.Name,
			Email:    req.Email,
			Role:     req.Role,
			Avatar:   req.Avatar,
			IsActive: true,
		}
		created, err := h.svc.Create(c.Request().Context(), act, user)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]any{"success": true, "user": created})

	case "toggle-active":
		id, err := formID(c, "userId")
		if err != nil {
			return err
		}
		user, err := h.svc.ToggleActive(c.Request().Context(), act, id)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"success": true, "user": user})

	case "delete":
		id, err := formID(c, "userId")
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
