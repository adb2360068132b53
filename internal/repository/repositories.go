package repository

import (
	"context"

	"gorm.io/gorm"
)

// Repositories bundles every repository over a single *gorm.DB so mutating
// services can run a CRUD write and its audit entry in one transaction.
type Repositories struct {
	Admins    AdminRepository
	Sessions  SessionRepository
	AuditLogs AuditLogRepository
	Users     UserRepository
	Posts     PostRepository

	db *gorm.DB
}

// New builds the repository bundle for a database handle.
func New(gormDB *gorm.DB) *Repositories {
	return &Repositories{
		Admins:    NewAdminRepository(gormDB),
		Sessions:  NewSessionRepository(gormDB),
		AuditLogs: NewAuditLogRepository(gormDB),
		Users:     NewUserRepository(gormDB),
		Posts:     NewPostRepository(gormDB),
		db:        gormDB,
	}
}

// WithTransaction executes fn with a Repositories bound to one database
// transaction. A bundle assembled without a live DB (test doubles) runs fn
// against itself.
func (r *Repositories) WithTransaction(ctx context.Context, fn func(tx *Repositories) error) error {
	if r.db == nil {
		return fn(r)
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(New(tx))
	})
}
