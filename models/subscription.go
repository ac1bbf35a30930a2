package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription represents a newsletter subscriber. Both tokens are opaque
// single-use random strings: consuming one clears it, so the same link can
// never be replayed.
type Subscription struct {
	ID                uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Email             string    `json:"email" db:"email" gorm:"type:text;not null;uniqueIndex"`
	Verified          bool      `json:"verified" db:"verified" gorm:"not null;default:false"`
	VerificationToken *string   `json:"-" db:"verification_token" gorm:"type:text;index"`
	Subscribed        bool      `json:"subscribed" db:"subscribed" gorm:"not null;default:true"`
	UnsubscribeToken  *string   `json:"-" db:"unsubscribe_token" gorm:"type:text;index"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
}
