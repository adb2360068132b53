package service

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

const (
	// listPageLimit is the page size of the user and post listing screens.
	listPageLimit = 10
	// searchResultCap bounds search results, which bypass pagination and
	// come back as a single page.
	searchResultCap = 20
)

// UserPage is one screen of users.
type UserPage struct {
	Users      []model.User
	Pagination model.Pagination
}

// UserService handles the user management screen.
type UserService interface {
	List(ctx context.Context, page int) (*UserPage, error)
	Search(ctx context.Context, term string) (*UserPage, error)
	Create(ctx context.Context, act ActionContext, user *model.User) (*model.User, error)
	ToggleActive(ctx context.Context, act ActionContext, id uint) (*model.User, error)
	Delete(ctx context.Context, act ActionContext, id uint) error
	Count(ctx context.Context) (int64, error)
}

type userService struct {
	repos *repository.Repositories
}

// NewUserService creates a new user service.
func NewUserService(repos *repository.Repositories) UserService {
	return &userService{repos: repos}
}

// List returns one page of users with the pagination summary.
func (s *userService) List(ctx context.Context, page int) (*UserPage, error) {
	if page < 1 {
		page = 1
	}
	total, err := s.repos.Users.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count users: %w", err)
	}
	users, err := s.repos.Users.List(ctx, (page-1)*listPageLimit, listPageLimit)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return &UserPage{
		Users:      users,
		Pagination: model.NewPagination(total, page, listPageLimit),
	}, nil
}

// Search returns up to searchResultCap matches on name or email as a single
// page reporting totalPages=1.
func (s *userService) Search(ctx context.Context, term string) (*UserPage, error) {
	users, err := s.repos.Users.Search(ctx, term, searchResultCap)
	if err != nil {
		return nil, fmt.Errorf("search users: %w", err)
	}
	return &UserPage{
		Users:      users,
		Pagination: model.SearchPagination(len(users)),
	}, nil
}

// Create inserts a user and its audit entry in one transaction.
func (s *userService) Create(ctx context.Context, act ActionContext, user *model.User) (*model.User, error) {
	existing, err := s.repos.Users.FindByEmail(ctx, user.Email)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check user email: %w", err)
	}
	if existing != nil {
		return nil, apperrors.ErrEmailTaken
	}

	err = s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Users.Create(ctx, user); err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return recordAudit(ctx, tx.AuditLogs, act, model.ActionCreate, model.ResourceUser, &user.ID,
			map[string]any{"name": user.Name, "email": user.Email, "role": user.Role})
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// ToggleActive flips the active flag and records ACTIVATE or DEACTIVATE,
// named for the new state, in the same transaction.
func (s *userService) ToggleActive(ctx context.Context, act ActionContext, id uint) (*model.User, error) {
	var out *model.User
	err := s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		user, err := tx.Users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("find user: %w", err)
		}
		user.IsActive = !user.IsActive
		if err := tx.Users.Update(ctx, user); err != nil {
			return fmt.Errorf("update user: %w", err)
		}
		action := model.ActionDeactivate
		if user.IsActive {
			action = model.ActionActivate
		}
		if err := recordAudit(ctx, tx.AuditLogs, act, action, model.ResourceUser, &id,
			map[string]any{"isActive": user.IsActive}); err != nil {
			return err
		}
		out = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Delete removes a user and records the deletion in one transaction.
func (s *userService) Delete(ctx context.Context, act ActionContext, id uint) error {
	return s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Users.FindByID(ctx, id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrUserNotFound
			}
			return fmt.Errorf("find user: %w", err)
		}
		if err := tx.Users.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete user: %w", err)
		}
		return recordAudit(ctx, tx.AuditLogs, act, model.ActionDelete, model.ResourceUser, &id,
			map[string]any{})
	})
}

// Count returns the total number of users for the dashboard.
func (s *userService) Count(ctx context.Context) (int64, error) {
	return s.repos.Users.Count(ctx)
}
