package models

import (
	"time"

	"github.com/google/uuid"
)

// Certificate represents a certificate image shown on the about page.
type Certificate struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title     string    `json:"title" db:"title" gorm:"type:text;not null"`
	ImageURL  string    `json:"imageUrl" db:"image_url" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"autoUpdateTime"`
}
