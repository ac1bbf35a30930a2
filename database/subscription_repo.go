package database

import (
	"errors"

	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type SubscriptionRepo struct {
	db *gorm.DB
}

func NewSubscriptionRepo(db *gorm.DB) *SubscriptionRepo {
	return &SubscriptionRepo{db}
}

func (r *SubscriptionRepo) FindAll() ([]*models.Subscription, error) {
	var subs []*models.Subscription
	err := r.db.Order("created_at DESC").Find(&subs).Error
	return subs, err
}

// FindByEmail returns the subscription for the given address, or nil when
// none exists
func (r *SubscriptionRepo) FindByEmail(email string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// FindByVerificationToken returns the subscription holding the given
// unconsumed verification token, or nil when no match exists
func (r *SubscriptionRepo) FindByVerificationToken(token string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "verification_token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// FindByUnsubscribeToken returns the subscription holding the given
// unconsumed unsubscribe token, or nil when no match exists
func (r *SubscriptionRepo) FindByUnsubscribeToken(token string) (*models.Subscription, error) {
	var sub models.Subscription
	err := r.db.First(&sub, "unsubscribe_token = ?", token).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &sub, nil
}

// FindVerified returns every verified subscriber that has not opted
// out, the notification dispatcher's recipient list
func (r *SubscriptionRepo) FindVerified() ([]*models.Subscription, error) {
	var subs []*models.Subscription
	err := r.db.Where("verified = ? AND subscribed = ?", true, true).Find(&subs).Error
	return subs, err
}

func (r *SubscriptionRepo) Add(sub *models.Subscription) error {
	if sub.ID == uuid.Nil {
		sub.ID = uuid.New()
	}
	return r.db.Create(sub).Error
}

// Update persists token/flag transitions. Save would skip zero-valued
// fields on partial structs, so token consumption (set to NULL) goes
// through explicit column updates here.
func (r *SubscriptionRepo) Update(sub *models.Subscription) error {
	return r.db.Model(&models.Subscription{}).
		Where("id = ?", sub.ID).
		Updates(map[string]interface{}{
			"verified":           sub.Verified,
			"subscribed":         sub.Subscribed,
			"verification_token": sub.VerificationToken,
			"unsubscribe_token":  sub.UnsubscribeToken,
		}).Error
}

func (r *SubscriptionRepo) Delete(id uuid.UUID) error {
	return r.db.Delete(&models.Subscription{}, "id = ?", id).Error
}
