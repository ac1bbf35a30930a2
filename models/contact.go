package models

import (
	"time"

	"github.com/google/uuid"
)

// Contact represents an inbound contact-form message. Response stays nil
// until an admin replies; replying also emails the sender.
type Contact struct {
	ID        uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name      string    `json:"name" db:"name" gorm:"type:text;not null"`
	Email     string    `json:"email" db:"email" gorm:"type:text;not null"`
	Subject   string    `json:"subject" db:"subject" gorm:"type:text;not null"`
	Message   string    `json:"message" db:"message" gorm:"type:text;not null"`
	Response  *string   `json:"response,omitempty" db:"response" gorm:"type:text"`
	CreatedAt time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
}
