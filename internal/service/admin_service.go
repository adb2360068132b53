package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"adminpanel/internal/cache"
	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

// CreateAdminInput is the validated payload for creating an administrator.
type CreateAdminInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AdminService handles the administrator management screen (super tier only;
// the router enforces the tier).
type AdminService interface {
	List(ctx context.Context) ([]model.Admin, error)
	Create(ctx context.Context, act ActionContext, input CreateAdminInput) (*model.Admin, error)
	ToggleActive(ctx context.Context, act ActionContext, id uint) (*model.Admin, error)
	UpdateRole(ctx context.Context, act ActionContext, id uint, role string) (*model.Admin, error)
	Delete(ctx context.Context, act ActionContext, id uint) error
	Count(ctx context.Context) (int64, error)
}

type adminService struct {
	repos *repository.Repositories
	cache *cache.Client
}

// NewAdminService creates a new admin service.
func NewAdminService(repos *repository.Repositories, cacheClient *cache.Client) AdminService {
	return &adminService{repos: repos, cache: cacheClient}
}

// List returns every administrator, sanitized for rendering.
func (s *adminService) List(ctx context.Context) ([]model.Admin, error) {
	admins, err := s.repos.Admins.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list admins: %w", err)
	}
	for i := range admins {
		admins[i].PasswordHash = ""
	}
	return admins, nil
}

// Create inserts an administrator and its audit entry in one transaction.
func (s *adminService) Create(ctx context.Context, act ActionContext, input CreateAdminInput) (*model.Admin, error) {
	role := input.Role
	if role == "" {
		role = model.RoleAdmin
	}
	if !model.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}

	existing, err := s.repos.Admins.FindByEmail(ctx, input.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check admin email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	hashed, err := HashPassword(input.Password)
	if err != nil {
		return nil, err
	}
	admin := &model.Admin{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: hashed,
		Role:         role,
		IsActive:     true,
	}

	err = s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Admins.Create(ctx, admin); err != nil {
			return fmt.Errorf("create admin: %w", err)
		}
		return recordAudit(ctx, tx.AuditLogs, act, model.ActionCreate, model.ResourceAdmin, &admin.ID,
			map[string]any{"name": input.Name, "email": input.Email, "role": role})
	})
	if err != nil {
		return nil, err
	}
	return admin.Sanitized(), nil
}

// ToggleActive flips the active flag, records the change, and drops the
// cached session projection so a deactivated admin loses access immediately.
func (s *adminService) ToggleActive(ctx context.Context, act ActionContext, id uint) (*model.Admin, error) {
	var out *model.Admin
	err := s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		admin, err := tx.Admins.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAdminNotFound
			}
			return fmt.Errorf("find admin: %w", err)
		}
		admin.IsActive = !admin.IsActive
		if err := tx.Admins.Update(ctx, admin); err != nil {
			return fmt.Errorf("update admin: %w", err)
		}
		action := model.ActionDeactivate
		if admin.IsActive {
			action = model.ActionActivate
		}
		if err := recordAudit(ctx, tx.AuditLogs, act, action, model.ResourceAdmin, &id,
			map[string]any{"isActive": admin.IsActive}); err != nil {
			return err
		}
		out = admin.Sanitized()
		return nil
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, adminCacheKey(id))
	return out, nil
}

// UpdateRole changes the tier and records the change.
func (s *adminService) UpdateRole(ctx context.Context, act ActionContext, id uint, role string) (*model.Admin, error) {
	if !model.ValidRole(role) {
		return nil, apperrors.ErrInvalidRole
	}
	var out *model.Admin
	err := s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		admin, err := tx.Admins.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAdminNotFound
			}
			return fmt.Errorf("find admin: %w", err)
		}
		admin.Role = role
		if err := tx.Admins.Update(ctx, admin); err != nil {
			return fmt.Errorf("update admin: %w", err)
		}
		if err := recordAudit(ctx, tx.AuditLogs, act, model.ActionUpdate, model.ResourceAdmin, &id,
			map[string]any{"role": role}); err != nil {
			return err
		}
		out = admin.Sanitized()
		return nil
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, adminCacheKey(id))
	return out, nil
}

// Delete removes an administrator, all their session records, and appends
// the audit entry, atomically. Admins cannot delete themselves.
func (s *adminService) Delete(ctx context.Context, act ActionContext, id uint) error {
	if id == act.AdminID {
		return apperrors.ErrSelfDelete
	}
	err := s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Admins.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrAdminNotFound
			}
			return fmt.Errorf("find admin: %w", err)
		}
		if err := tx.Sessions.DeleteByAdminID(ctx, id); err != nil {
			return fmt.Errorf("delete admin sessions: %w", err)
		}
		if err := tx.Admins.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete admin: %w", err)
		}
		return recordAudit(ctx, tx.AuditLogs, act, model.ActionDelete, model.ResourceAdmin, &id,
			map[string]any{})
	})
	if err != nil {
		return err
	}
	_ = s.cache.Delete(ctx, adminCacheKey(id))
	return nil
}

// Count returns the total number of administrators for the dashboard.
func (s *adminService) Count(ctx context.Context) (int64, error) {
	return s.repos.Admins.Count(ctx)
}
