package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type ContactRepo struct {
	db *gorm.DB
}

func NewContactRepo(db *gorm.DB) *ContactRepo {
	return &ContactRepo{db}
}

func (r *ContactRepo) FindAll() ([]*models.Contact, error) {
	var contacts []*models.Contact
	err := r.db.Order("created_at DESC").Find(&contacts).Error
	return contacts, err
}

func (r *ContactRepo) FindByID(id uuid.UUID) (*models.Contact, error) {
	var contact models.Contact
	err := r.db.First(&contact, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepo) Add(contact *models.Contact) error {
	if contact.ID == uuid.Nil {
		contact.ID = uuid.New()
	}
	return r.db.Create(contact).Error
}

// SetResponse stores the admin reply on a contact message and returns the
// updated record
func (r *ContactRepo) SetResponse(id uuid.UUID, response string) (*models.Contact, error) {
	var contact models.Contact
	if err := r.db.First(&contact, "id = ?", id).Error; err != nil {
		return nil, err
	}
	contact.Response = &response
	if err := r.db.Save(&contact).Error; err != nil {
		return nil, err
	}
	return &contact, nil
}

func (r *ContactRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Contact{}, "id = ?", id).Error
}
