package database

import (
	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

type Database struct {
	headerRepo       *HeaderRepo
	projectRepo      *ProjectRepo
	categoryRepo     *CategoryRepo
	skillRepo        *SkillRepo
	certificateRepo  *CertificateRepo
	postRepo         *PostRepo
	feedbackRepo     *FeedbackRepo
	contactRepo      *ContactRepo
	subscriptionRepo *SubscriptionRepo
	statsRepo        *StatsRepo
}

// New initializes a new Database struct with each repository using a shared GORM database instance
func New(db *gorm.DB) Database {
	return Database{
		headerRepo:       NewHeaderRepo(db),
		projectRepo:      NewProjectRepo(db),
		categoryRepo:     NewCategoryRepo(db),
		skillRepo:        NewSkillRepo(db),
		certificateRepo:  NewCertificateRepo(db),
		postRepo:         NewPostRepo(db),
		feedbackRepo:     NewFeedbackRepo(db),
		contactRepo:      NewContactRepo(db),
		subscriptionRepo: NewSubscriptionRepo(db),
		statsRepo:        NewStatsRepo(db),
	}
}

// AutoMigrate creates or updates the schema for every managed entity.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Header{},
		&models.Category{},
		&models.Project{},
		&models.Skill{},
		&models.Certificate{},
		&models.Post{},
		&models.Feedback{},
		&models.Contact{},
		&models.Subscription{},
	)
}

// Accessor methods for each repository

func (d Database) HeaderRepo() *HeaderRepo {
	return d.headerRepo
}

func (d Database) ProjectRepo() *ProjectRepo {
	return d.projectRepo
}

func (d Database) CategoryRepo() *CategoryRepo {
	return d.categoryRepo
}

func (d Database) SkillRepo() *SkillRepo {
	return d.skillRepo
}

func (d Database) CertificateRepo() *CertificateRepo {
	return d.certificateRepo
}

func (d Database) PostRepo() *PostRepo {
	return d.postRepo
}

func (d Database) FeedbackRepo() *FeedbackRepo {
	return d.feedbackRepo
}

func (d Database) ContactRepo() *ContactRepo {
	return d.contactRepo
}

func (d Database) SubscriptionRepo() *SubscriptionRepo {
	return d.subscriptionRepo
}

func (d Database) StatsRepo() *StatsRepo {
	return d.statsRepo
}
