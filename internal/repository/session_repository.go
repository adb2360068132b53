package repository

import (
	"context"

	"gorm.io/gorm"

	"adminpanel/internal/model"
)

// SessionRepository defines session-record persistence operations. Records
// are only ever created singly and deleted in bulk.
type SessionRepository interface {
	Create(ctx context.Context, session *model.AdminSession) error
	DeleteByAdminID(ctx context.Context, adminID uint) error
	CountByAdminID(ctx context.Context, adminID uint) (int64, error)
}

type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository creates a new session repository.
func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

// Create inserts a session record.
func (r *sessionRepository) Create(ctx context.Context, session *model.AdminSession) error {
	return r.db.WithContext(ctx).Create(session).Error
}

// DeleteByAdminID removes every session record owned by an admin.
func (r *sessionRepository) DeleteByAdminID(ctx context.Context, adminID uint) error {
	return r.db.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Delete(&model.AdminSession{}).Error
}

// CountByAdminID returns the number of session records an admin owns.
func (r *sessionRepository) CountByAdminID(ctx context.Context, adminID uint) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.AdminSession{}).
		Where("admin_id = ?", adminID).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
