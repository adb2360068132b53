package model

import "time"

// Audit action verbs.
const (
	ActionLogin      = "LOGIN"
	ActionCreate     = "CREATE"
	ActionUpdate     = "UPDATE"
	ActionDelete     = "DELETE"
	ActionActivate   = "ACTIVATE"
	ActionDeactivate = "DEACTIVATE"
)

// Audit resource kinds.
const (
	ResourceUser  = "USER"
	ResourcePost  = "POST"
	ResourceAdmin = "ADMIN"
)

// AuditLog is an append-only record of an administrative action. Entries are
// never updated or deleted by the application. AdminID is nullable so the
// trail outlives the acting admin: deleting an admin nulls the reference
// instead of blocking on it.
type AuditLog struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	AdminID    *uint     `json:"admin_id,omitempty" gorm:"index"`
	Action     string    `json:"action" gorm:"size:50;not null;index"`
	Resource   string    `json:"resource" gorm:"size:50;not null;index"`
	ResourceID *uint     `json:"resource_id,omitempty"`
	Details    string    `json:"details,omitempty" gorm:"type:text"`
	IPAddress  string    `json:"ip_address" gorm:"size:64"`
	UserAgent  string    `json:"user_agent" gorm:"size:512"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Admin Admin `json:"admin,omitempty" gorm:"foreignKey:AdminID;constraint:OnDelete:SET NULL"`
}
