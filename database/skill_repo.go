package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type SkillRepo struct {
	db *gorm.DB
}

func NewSkillRepo(db *gorm.DB) *SkillRepo {
	return &SkillRepo{db}
}

func (r *SkillRepo) FindAll() ([]*models.Skill, error) {
	var skills []*models.Skill
	err := r.db.Order("created_at DESC").Find(&skills).Error
	return skills, err
}

func (r *SkillRepo) FindByID(id uuid.UUID) (*models.Skill, error) {
	var skill models.Skill
	err := r.db.First(&skill, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &skill, nil
}

func (r *SkillRepo) Add(skill *models.Skill) error {
	if skill.ID == uuid.Nil {
		skill.ID = uuid.New()
	}
	return r.db.Create(skill).Error
}

func (r *SkillRepo) Update(skill *models.Skill) error {
	return r.db.Save(skill).Error
}

func (r *SkillRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Skill{}, "id = ?", id).Error
}
