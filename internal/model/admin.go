package model

import "time"

// Admin role tiers. SUPER_ADMIN satisfies every role check, ADMIN only the
// standard one.
const (
	RoleAdmin      = "ADMIN"
	RoleSuperAdmin = "SUPER_ADMIN"
)

// Admin represents an administrator account.
type Admin struct {
	ID           uint       `json:"id" gorm:"primaryKey"`
	Name         string     `json:"name" gorm:"size:255;not null"`
	Email        string     `json:"email" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string     `json:"-" gorm:"size:255;not null"` // Never expose in JSON
	Role         string     `json:"role" gorm:"size:50;not null;default:'ADMIN';index"`
	Avatar       string     `json:"avatar,omitempty" gorm:"size:512"`
	IsActive     bool       `json:"is_active" gorm:"default:true;index"`
	LastLogin    *time.Time `json:"last_login,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	// Relations
	Sessions []AdminSession `json:"-" gorm:"foreignKey:AdminID;constraint:OnDelete:CASCADE"`
}

// IsSuper reports whether the admin holds the super tier.
func (a *Admin) IsSuper() bool {
	return a.Role == RoleSuperAdmin
}

// Sanitized returns a copy with the credential hash stripped. Everything that
// leaves the auth gate goes through this.
func (a *Admin) Sanitized() *Admin {
	clean := *a
	clean.PasswordHash = ""
	clean.Sessions = nil
	return &clean
}

// ValidRole reports whether role names a known tier.
func ValidRole(role string) bool {
	return role == RoleAdmin || role == RoleSuperAdmin
}
