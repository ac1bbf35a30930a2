package models

import (
	"time"

	"github.com/google/uuid"
)

// Header represents one hero-section variant shown on the landing page.
// Whether a header is the "selected" one is a client-side concern; the
// server only stores the flag.
type Header struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title        string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description  string    `json:"description" db:"description" gorm:"type:text;not null"`
	ImageURL     string    `json:"imageUrl" db:"image_url" gorm:"type:text"`
	GithubLink   string    `json:"githubLink,omitempty" db:"github_link" gorm:"type:text"`
	LinkedInLink string    `json:"linkedInLink,omitempty" db:"linked_in_link" gorm:"type:text"`
	IsSelected   bool      `json:"isSelected" db:"is_selected" gorm:"not null;default:false"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at" gorm:"autoUpdateTime"`
}
