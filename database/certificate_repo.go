package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type CertificateRepo struct {
	db *gorm.DB
}

func NewCertificateRepo(db *gorm.DB) *CertificateRepo {
	return &CertificateRepo{db}
}

func (r *CertificateRepo) FindAll() ([]*models.Certificate, error) {
	var certificates []*models.Certificate
	err := r.db.Order("created_at DESC").Find(&certificates).Error
	return certificates, err
}

func (r *CertificateRepo) FindByID(id uuid.UUID) (*models.Certificate, error) {
	var certificate models.Certificate
	err := r.db.First(&certificate, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &certificate, nil
}

func (r *CertificateRepo) Add(certificate *models.Certificate) error {
	if certificate.ID == uuid.Nil {
		certificate.ID = uuid.New()
	}
	return r.db.Create(certificate).Error
}

func (r *CertificateRepo) Update(certificate *models.Certificate) error {
	return r.db.Save(certificate).Error
}

func (r *CertificateRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Certificate{}, "id = ?", id).Error
}
