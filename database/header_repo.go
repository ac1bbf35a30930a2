package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type HeaderRepo struct {
	db *gorm.DB
}

func NewHeaderRepo(db *gorm.DB) *HeaderRepo {
	return &HeaderRepo{db}
}

// FindAll returns all headers, newest first
func (r *HeaderRepo) FindAll() ([]*models.Header, error) {
	var headers []*models.Header
	err := r.db.Order("created_at DESC").Find(&headers).Error
	return headers, err
}

// FindByID returns a header by its ID
func (r *HeaderRepo) FindByID(id uuid.UUID) (*models.Header, error) {
	var header models.Header
	err := r.db.First(&header, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &header, nil
}

// Add inserts a new header, assigning an ID if none is set
func (r *HeaderRepo) Add(header *models.Header) error {
	if header.ID == uuid.Nil {
		header.ID = uuid.New()
	}
	return r.db.Create(header).Error
}

// Update updates an existing header
func (r *HeaderRepo) Update(header *models.Header) error {
	return r.db.Save(header).Error
}

// Delete removes a header by id
func (r *HeaderRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Header{}, "id = ?", id).Error
}
