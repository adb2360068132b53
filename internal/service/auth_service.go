package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"adminpanel/internal/cache"
	apperrors "adminpanel/internal/errors"
	"adminpanel/internal/model"
	"adminpanel/internal/repository"
)

const (
	bcryptCost = 12
	// sessionTTL matches the cookie MaxAge: 30 days.
	sessionTTL    = 30 * 24 * time.Hour
	adminCacheTTL = 5 * time.Minute
)

// AuthService is the session/auth gate: it resolves credentials and cookies
// into administrator records and owns the session record lifecycle.
type AuthService interface {
	Authenticate(ctx context.Context, email, password string) (*model.Admin, error)
	StartSession(ctx context.Context, act ActionContext) (*model.AdminSession, error)
	ResolveSession(ctx context.Context, adminID uint) (*model.Admin, error)
	EndSession(ctx context.Context, adminID uint) error
}

type authService struct {
	repos *repository.Repositories
	cache *cache.Client
}

// NewAuthService creates a new auth service.
func NewAuthService(repos *repository.Repositories, cacheClient *cache.Client) AuthService {
	return &authService{repos: repos, cache: cacheClient}
}

func adminCacheKey(id uint) string {
	return fmt.Sprintf("admin:profile:%d", id)
}

// Authenticate verifies credentials and stamps the last login. Missing
// accounts, inactive accounts, and wrong passwords are indistinguishable to
// the caller. The returned record never carries the credential hash.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*model.Admin, error) {
	admin, err := s.repos.Admins.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("find admin: %w", err)
	}
	if !admin.IsActive {
		return nil, apperrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	now := time.Now()
	if err := s.repos.Admins.UpdateLastLogin(ctx, admin.ID, now); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	admin.LastLogin = &now

	return admin.Sanitized(), nil
}

// StartSession inserts a session record and its LOGIN audit entry in one
// transaction.
func (s *authService) StartSession(ctx context.Context, act ActionContext) (*model.AdminSession, error) {
	sess := &model.AdminSession{
		AdminID:   act.AdminID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(sessionTTL),
	}
	err := s.repos.WithTransaction(ctx, func(tx *repository.Repositories) error {
		if err := tx.Sessions.Create(ctx, sess); err != nil {
			return fmt.Errorf("create session record: %w", err)
		}
		adminID := act.AdminID
		return recordAudit(ctx, tx.AuditLogs, act, model.ActionLogin, model.ResourceAdmin, &adminID, nil)
	})
	if err != nil {
		return nil, err
	}
	return sess, nil
}

// ResolveSession loads the safe projection of the admin carried by the
// cookie, cache first. Missing and inactive admins both come back as
// ErrUnauthenticated.
func (s *authService) ResolveSession(ctx context.Context, adminID uint) (*model.Admin, error) {
	if data, _ := s.cache.Get(ctx, adminCacheKey(adminID)); data != nil {
		var cached model.Admin
		if err := json.Unmarshal(data, &cached); err == nil {
			if !cached.IsActive {
				return nil, apperrors.ErrUnauthenticated
			}
			return &cached, nil
		}
	}

	admin, err := s.repos.Admins.FindProfile(ctx, adminID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUnauthenticated
		}
		return nil, fmt.Errorf("load admin profile: %w", err)
	}
	if !admin.IsActive {
		return nil, apperrors.ErrUnauthenticated
	}

	// PasswordHash is json:"-", so the cached copy can never carry it.
	if data, err := json.Marshal(admin); err == nil {
		_ = s.cache.Set(ctx, adminCacheKey(adminID), data, adminCacheTTL)
	}

	return admin, nil
}

// EndSession bulk-deletes the admin's session records and drops the cached
// projection. The handler clears the cookie.
func (s *authService) EndSession(ctx context.Context, adminID uint) error {
	if err := s.repos.Sessions.DeleteByAdminID(ctx, adminID); err != nil {
		return fmt.Errorf("delete session records: %w", err)
	}
	_ = s.cache.Delete(ctx, adminCacheKey(adminID))
	return nil
}

// HashPassword hashes a plaintext password for storage.
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}
