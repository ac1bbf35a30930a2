package database

import (
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type FeedbackRepo struct {
	db *gorm.DB
}

func NewFeedbackRepo(db *gorm.DB) *FeedbackRepo {
	return &FeedbackRepo{db}
}

func (r *FeedbackRepo) FindAll() ([]*models.Feedback, error) {
	var feedbacks []*models.Feedback
	err := r.db.Order("created_at DESC").Find(&feedbacks).Error
	return feedbacks, err
}

func (r *FeedbackRepo) FindByID(id uuid.UUID) (*models.Feedback, error) {
	var feedback models.Feedback
	err := r.db.First(&feedback, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &feedback, nil
}

func (r *FeedbackRepo) Add(feedback *models.Feedback) error {
	if feedback.ID == uuid.Nil {
		feedback.ID = uuid.New()
	}
	return r.db.Create(feedback).Error
}

func (r *FeedbackRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Feedback{}, "id = ?", id).Error
}
