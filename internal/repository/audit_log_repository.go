package repository

import (
	"context"

	"gorm.io/gorm"

	"adminpanel/internal/model"
)

// AuditLogRepository defines audit persistence operations. The interface has
// no update or delete on purpose: entries are append-only.
type AuditLogRepository interface {
	Create(ctx context.Context, entry *model.AuditLog) error
	List(ctx context.Context, offset, limit int) ([]model.AuditLog, error)
	Count(ctx context.Context) (int64, error)
	Recent(ctx context.Context, limit int) ([]model.AuditLog, error)
}

type auditLogRepository struct {
	db *gorm.DB
}

// NewAuditLogRepository creates a new audit log repository.
func NewAuditLogRepository(db *gorm.DB) AuditLogRepository {
	return &auditLogRepository{db: db}
}

// Create appends an audit entry.
func (r *auditLogRepository) Create(ctx context.Context, entry *model.AuditLog) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// List returns a page of entries, newest first, with the acting admin loaded.
func (r *auditLogRepository) List(ctx context.Context, offset, limit int) ([]model.AuditLog, error) {
	var entries []model.AuditLog
	if err := r.db.WithContext(ctx).
		Preload("Admin", func(db *gorm.DB) *gorm.DB {
			return db.Select(safeAdminColumns)
		}).
		Order("created_at DESC").
		Offset(offset).Limit(limit).
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// Count returns the total number of entries.
func (r *auditLogRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.AuditLog{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Recent returns the newest entries for the dashboard.
func (r *auditLogRepository) Recent(ctx context.Context, limit int) ([]model.AuditLog, error) {
	return r.List(ctx, 0, limit)
}
