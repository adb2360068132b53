package model

import "time"

// AdminSession is a server-side session record created at login and removed
// in bulk at logout or admin deletion. Identity on the read path is carried
// by the signed cookie, not by this row.
type AdminSession struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	AdminID   uint      `json:"admin_id" gorm:"not null;index"`
	Token     string    `json:"-" gorm:"uniqueIndex;size:64;not null"`
	ExpiresAt time.Time `json:"expires_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
}
