package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type PostRepo struct {
	db *gorm.DB
}

func NewPostRepo(db *gorm.DB) *PostRepo {
	return &PostRepo{db}
}

// FindAll returns all posts, newest first
func (r *PostRepo) FindAll() ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.Order("created_at DESC").Find(&posts).Error
	return posts, err
}

// FindBySlug returns the post with the given slug
func (r *PostRepo) FindBySlug(slug string) (*models.Post, error) {
	var post models.Post
	err := r.db.First(&post, "slug = ?", slug).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// SlugTaken reports whether any post already uses the given slug.
// Uniqueness is also backed by a unique index; this check exists so the
// handler can answer 409 before uploading any assets.
func (r *PostRepo) SlugTaken(slug string) (bool, error) {
	var post models.Post
	err := r.db.Select("id").First(&post, "slug = ?", slug).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// Add inserts a new post, assigning an ID if none is set
func (r *PostRepo) Add(post *models.Post) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return r.db.Create(post).Error
}

// Update updates an existing post
func (r *PostRepo) Update(post *models.Post) error {
	return r.db.Save(post).Error
}

// DeleteBySlug removes the post with the given slug
func (r *PostRepo) DeleteBySlug(slug string) error {
	return r.db.Delete(&models.Post{}, "slug = ?", slug).Error
}
