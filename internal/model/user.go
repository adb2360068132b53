package model

import "time"

// User is a managed account shown on the user management screen. It has no
// behavior beyond field storage; administrators are a separate model.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null;index"`
	Email     string    `json:"email" gorm:"uniqueIndex;size:255;not null"`
	Role      string    `json:"role,omitempty" gorm:"size:50;default:'User'"`
	Avatar    string    `json:"avatar,omitempty" gorm:"size:512"`
	IsActive  bool      `json:"is_active" gorm:"default:true;index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
