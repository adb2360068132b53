package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"adminpanel/internal/model"
	"adminpanel/internal/service"
)

// SiteHandler renders the public marketing pages and the admin dashboard.
type SiteHandler struct {
	posts  service.PostService
	users  service.UserService
	admins service.AdminService
	audits service.AuditService
}

// NewSiteHandler creates a new site handler.
func NewSiteHandler(posts service.PostService, users service.UserService, admins service.AdminService, audits service.AuditService) *SiteHandler {
	return &SiteHandler{posts: posts, users: users, admins: admins, audits: audits}
}

// Index renders the landing page with the latest published posts.
func (h *SiteHandler) Index(c echo.Context) error {
	page, err := h.posts.List(c.Request().Context(), 1, model.PostStatusPublished)
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "index.html", map[string]any{
		"Title": "Home",
		"Posts": page.Posts,
	})
}

// About renders the about page.
func (h *SiteHandler) About(c echo.Context) error {
	return c.Render(http.StatusOK, "about.html", map[string]any{"Title": "About"})
}

// Contact renders the contact page.
func (h *SiteHandler) Contact(c echo.Context) error {
	return c.Render(http.StatusOK, "contact.html", map[string]any{"Title": "Contact"})
}

// Dashboard renders per-entity counts and recent audit activity.
func (h *SiteHandler) Dashboard(c echo.Context) error {
	ctx := c.Request().Context()

	userCount, err := h.users.Count(ctx)
	if err != nil {
		return err
	}
	postCount, err := h.posts.Count(ctx)
	if err != nil {
		return err
	}
	adminCount, err := h.admins.Count(ctx)
	if err != nil {
		return err
	}
	recent, err := h.audits.Recent(ctx, 10)
	if err != nil {
		return err
	}

	errMsg := ""
	if c.QueryParam("error") == "insufficient_permissions" {
		errMsg = "You do not have permission to access that page."
	}

	return c.Render(http.StatusOK, "dashboard.html", map[string]any{
		"Admin":        CurrentAdmin(c),
		"UserCount":    userCount,
		"PostCount":    postCount,
		"AdminCount":   adminCount,
		"RecentAudits": recent,
		"Error":        errMsg,
	})
}
