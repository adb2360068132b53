package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"adminpanel/internal/service"
)

// AuditHandler handles the read-only audit log screen.
type AuditHandler struct {
	svc service.AuditService
}

// NewAuditHandler creates a new audit handler.
func NewAuditHandler(svc service.AuditService) *AuditHandler {
	return &AuditHandler{svc: svc}
}

// AuditLogs renders one page of the trail, newest first.
func (h *AuditHandler) AuditLogs(c echo.Context) error {
	page, err := h.svc.List(c.Request().Context(), pageParam(c))
	if err != nil {
		return err
	}
	return c.Render(http.StatusOK, "audit_logs.html", map[string]any{
		"Admin":       CurrentAdmin(c),
		"Page":        page,
		"PageNumbers": pageNumbers(page.Pagination),
	})
}
