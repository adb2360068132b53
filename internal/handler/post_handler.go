package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/service"
)

// PostHandler handles the post management screen.
type PostHandler struct {
	svc service.PostService
}

// NewPostHandler creates a new post handler.
func NewPostHandler(svc service.PostService) *PostHandler {
	return &PostHandler{svc: svc}
}

// CreatePostRequest is the create-post form payload.
type CreatePostRequest struct {
	Title    string `form:"title" validate:"required"`
	Excerpt  string `form:"excerpt"`
	Author   string `form:"author" validate:"required"`
	Category string `form:"category"`
	Status   string `form:"status"`
}

// Posts renders the listing screen with optional status filter; a search
// term bypasses pagination.
func (h *PostHandler) Posts(c echo.Context) error {
	searchQuery := c.QueryParam("search")
	statusFilter := c.QueryParam("status")

	var (
		page *service.PostPage
		err  error
	)
	if searchQuery != "" {
		page, err = h.svc.Search(c.Request().Context(), searchQuery)
	} else {
		page, err = h.svc.List(c.Request().Context(), pageParam(c), statusFilter)
	}
	if err != nil {
		return domainError(c, err)
	}

	return c.Render(http.StatusOK, "posts.html", map[string]any{
		"Admin":        CurrentAdmin(c),
		"Page":         page,
		"SearchQuery":  searchQuery,
		"StatusFilter": statusFilter,
		"PageNumbers":  pageNumbers(page.Pagination),
	})
}

// PostAction dispatches the form intents for the screen.
func (h *PostHandler) PostAction(c echo.Context) error {
	act := actionContext(c)

	switch c.FormValue("intent") {
	case "create":
		var req CreatePostRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
		}
		if err := c.Validate(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		post := &model.Post{
			Title:    req.Title,
			Excerpt:  req.Excerpt,
			Author:   req.Author,
			Category: req.Category,
			Status:   req.Status,
		}
		created, err := h.svc.Create(c.Request().Context(), act, post)
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusCreated, map[string]any{"success": true, "post": created})

	case "update-status":
		id, err := formID(c, "postId")
		if err != nil {
			return err
		}
		post, err := h.svc.UpdateStatus(c.Request().Context(), act, id, c.FormValue("status"))
		if err != nil {
			return domainError(c, err)
		}
		return c.JSON(http.StatusOK, map[string]any{"success": true, "post": post})

	case "delete":
		id, err := formID(c, "postId")
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
