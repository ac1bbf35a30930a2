package models

import (
	"time"

	"github.com/google/uuid"
)

// Skill represents one entry in the skills grid.
type Skill struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	ImageURL  string    `json:"imageUrl" db:"image_url" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"autoUpdateTime"`
}
