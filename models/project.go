package models

import (
	"time"

	"github.com/google/uuid"
)

// Project represents a portfolio project with its uploaded media.
// VideoLink holds either an external URL or the public URL of an uploaded
// video; the two are mutually exclusive at the handler level.
type Project struct {
	ID          uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey;not null"`
	Title       string    `json:"title" db:"title" gorm:"type:text;not null"`
	Description string    `json:"description" db:"description" gorm:"type:text;not null"`
	CategoryID  uuid.UUID `json:"category" db:"category_id" gorm:"type:uuid;not null;index"`
	ImageURL    string    `json:"imageUrl" db:"image_url" gorm:"type:text"`
	VideoLink   string    `json:"videoLink,omitempty" db:"video_link" gorm:"type:text"`
	LiveLink    string    `json:"liveLink,omitempty" db:"live_link" gorm:"type:text"`
	GithubLink  string    `json:"githubLink,omitempty" db:"github_link" gorm:"type:text"`
	Order       int       `json:"order" db:"sort_order" gorm:"column:sort_order;not null;default:0"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at" gorm:"autoCreateTime"`
	UpdatedAt   time.Time `json:"updatedAt" db:"updated_at" gorm:"autoUpdateTime"`

	Category *Category `json:"categoryDetail,omitempty" gorm:"foreignKey:CategoryID;references:ID"`
}
