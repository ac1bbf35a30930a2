package models

import (
	"time"

	"github.com/google/uuid"
)

// Feedback represents a visitor rating. Rating is constrained to [1,5] at
// the validation step, before any write.
type Feedback struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Comment   string    `json:"comment" db:"comment" gorm:"type:text;not null"`
	Rating    int       `json:"rating" db:"rating" gorm:"not null"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at" gorm:"autoUpdateTime"`
}
