package models

import (
	"time"

	"github.com/google/uuid"
)

// Post represents a blog post. Slug is the public identifier; single-post
// reads and deletes address the post by slug rather than by ID.
type Post struct {
	ID         uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Name       string    `json:"name" db:"name" gorm:"type:text;not null"`
	UserImage  string    `json:"userImage" db:"user_image" gorm:"type:text;not null"`
	Title      string    `json:"title" db:"title" gorm:"type:text;not null"`
	Content    string    `json:"content" db:"content" gorm:"type:text;not null"`
	Slug       string    `json:"slug" db:"slug" gorm:"type:text;not null;uniqueIndex"`
	Excerpt    string    `json:"excerpt" db:"excerpt" gorm:"type:text;not null"`
	CoverImage string    `json:"coverImage" db:"cover_image" gorm:"type:text;not null"`
	Tags       []string  `json:"tags" db:"tags" gorm:"serializer:json"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at" gorm:"autoUpdateTime"`
}
