package model

import "time"

// Post publication statuses.
const (
	PostStatusDraft     = "DRAFT"
	PostStatusPublished = "PUBLISHED"
	PostStatusArchived  = "ARCHIVED"
)

// Post is a managed content record shown on the post management screen.
type Post struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Title     string    `json:"title" gorm:"size:255;not null;index"`
	Excerpt   string    `json:"excerpt" gorm:"type:text"`
	Author    string    `json:"author" gorm:"size:255;not null"`
	Category  string    `json:"category,omitempty" gorm:"size:100;index"`
	Status    string    `json:"status" gorm:"size:20;not null;default:'DRAFT';index"`
	Date      time.Time `json:"date"`
	UserID    *uint     `json:"user_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL"`
}

// ValidPostStatus reports whether status names a known publication state.
func ValidPostStatus(status string) bool {
	switch status {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	}
	return false
}
