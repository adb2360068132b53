package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"adminpanel/internal/model"
)

// safeAdminColumns are the fields the session read path is allowed to load.
// The credential hash is deliberately absent.
var safeAdminColumns = []string{
	"id", "name", "email", "role", "avatar", "is_active", "last_login", "created_at", "updated_at",
}

// AdminRepository defines administrator persistence operations.
type AdminRepository interface {
	Create(ctx context.Context, admin *model.Admin) error
	Update(ctx context.Context, admin *model.Admin) error
	UpdateLastLogin(ctx context.Context, id uint, at time.Time) error
	FindByID(ctx context.Context, id uint) (*model.Admin, error)
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindProfile(ctx context.Context, id uint) (*model.Admin, error)
	List(ctx context.Context) ([]model.Admin, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uint) error
}

type adminRepository struct {
	db *gorm.DB
}

// NewAdminRepository creates a new admin repository.
func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

// Create creates a new admin.
func (r *adminRepository) Create(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Create(admin).Error
}

// Update updates an existing admin.
func (r *adminRepository) Update(ctx context.Context, admin *model.Admin) error {
	return r.db.WithContext(ctx).Save(admin).Error
}

// UpdateLastLogin stamps the last successful login time.
func (r *adminRepository) UpdateLastLogin(ctx context.Context, id uint, at time.Time) error {
	return r.db.WithContext(ctx).Model(&model.Admin{}).
		Where("id = ?", id).
		Update("last_login", at).Error
}

// FindByID finds an admin by ID, including the credential hash. Only the
// auth gate may call this.
func (r *adminRepository) FindByID(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindByEmail finds an admin by email, including the credential hash.
func (r *adminRepository) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// FindProfile loads only the safe projection of an admin.
func (r *adminRepository) FindProfile(ctx context.Context, id uint) (*model.Admin, error) {
	var admin model.Admin
	if err := r.db.WithContext(ctx).Select(safeAdminColumns).
		Where("id = ?", id).First(&admin).Error; err != nil {
		return nil, err
	}
	return &admin, nil
}

// List returns every admin, newest first.
func (r *adminRepository) List(ctx context.Context) ([]model.Admin, error) {
	var admins []model.Admin
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&admins).Error; err != nil {
		return nil, err
	}
	return admins, nil
}

// Count returns the number of admin accounts.
func (r *adminRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&model.Admin{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// Delete removes an admin row.
func (r *adminRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&model.Admin{}, id).Error
}
