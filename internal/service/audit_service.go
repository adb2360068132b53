package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

const (
	// auditPageLimit is the page size of the audit log screen.
	auditPageLimit = 20

	unknownIP = "unknown"
)

// ActionContext carries the actor and request provenance attached to every
// audit entry.
type ActionContext struct {
	AdminID   uint
	IPAddress string
	UserAgent string
}

// NewActionContext derives an ActionContext from the incoming request.
func NewActionContext(adminID uint, r *http.Request) ActionContext {
	return ActionContext{
		AdminID:   adminID,
		IPAddress: clientIP(r),
		UserAgent: r.UserAgent(),
	}
}

// clientIP returns the first hop of X-Forwarded-For, falling back to
// X-Real-IP, then to a sentinel.
func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if first := strings.TrimSpace(strings.Split(fwd, ",")[0]); first != "" {
			return first
		}
	}
	if real := r.Header.Get("X-Real-IP"); real != "" {
		return real
	}
	return unknownIP
}

// AuditPage is one screen of audit entries.
type AuditPage struct {
	Entries    []model.AuditLog
	Pagination model.Pagination
}

// AuditService reads the audit trail. Writes happen through recordAudit in
// the same transaction as the mutation they describe; the one standalone
// append is the LOGIN entry.
type AuditService interface {
	List(ctx context.Context, page int) (*AuditPage, error)
	Recent(ctx context.Context, limit int) ([]model.AuditLog, error)
}

type auditService struct {
	repos *repository.Repositories
}

// NewAuditService creates a new audit service.
func NewAuditService(repos *repository.Repositories) AuditService {
	return &auditService{repos: repos}
}

// List returns one page of entries, newest first.
func (s *auditService) List(ctx context.Context, page int) (*AuditPage, error) {
	if page < 1 {
		page = 1
	}
	total, err := s.repos.AuditLogs.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count audit logs: %w", err)
	}
	entries, err := s.repos.AuditLogs.List(ctx, (page-1)*auditPageLimit, auditPageLimit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	return &AuditPage{
		Entries:    entries,
		Pagination: model.NewPagination(total, page, auditPageLimit),
	}, nil
}

// Recent returns the newest entries for the dashboard.
func (s *auditService) Recent(ctx context.Context, limit int) ([]model.AuditLog, error) {
	return s.repos.AuditLogs.Recent(ctx, limit)
}

// recordAudit appends one audit entry through the given repository, which
// callers bind to the same transaction as the mutation being recorded.
func recordAudit(ctx context.Context, repo repository.AuditLogRepository, act ActionContext, action, resource string, resourceID *uint, details any) error {
	payload := ""
	if details != nil {
		raw, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshal audit details: %w", err)
		}
		payload = string(raw)
	}
	actorID := act.AdminID
	entry := &model.AuditLog{
		AdminID:    &actorID,
		Action:     action,
		Resource:   resource,
		ResourceID: resourceID,
		Details:    payload,
		IPAddress:  act.IPAddress,
		UserAgent:  act.UserAgent,
	}
	if err := repo.Create(ctx, entry); err != nil {
		return fmt.Errorf("append audit entry: %w", err)
	}
	return nil
}
