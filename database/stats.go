package database

import (
	"sort"
	"time"

	"github.com/rpupo63/portfolio-cms-backend/models"
	"gorm.io/gorm"
)

// growthBucket is the width of one point in the admin dashboard's growth
// series.
const growthBucket = 5 * 24 * time.Hour

// GrowthPoint is one bucket of the creation-time growth series.
type GrowthPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Counts holds the total number of documents per entity.
type Counts struct {
	Headers       int64 `json:"headers"`
	Projects      int64 `json:"projects"`
	Categories    int64 `json:"categories"`
	Skills        int64 `json:"skills"`
	Certificates  int64 `json:"certificates"`
	Posts         int64 `json:"posts"`
	Feedbacks     int64 `json:"feedbacks"`
	Contacts      int64 `json:"contacts"`
	Subscriptions int64 `json:"subscriptions"`
}

// Growth holds the per-entity time-bucketed creation series.
type Growth struct {
	Projects      []GrowthPoint `json:"projectGrowth"`
	Skills        []GrowthPoint `json:"skillsDistribution"`
	Certificates  []GrowthPoint `json:"certificatesGrowth"`
	Posts         []GrowthPoint `json:"postGrowth"`
	Feedbacks     []GrowthPoint `json:"feedbackGrowth"`
	Contacts      []GrowthPoint `json:"contactGrowth"`
	Subscriptions []GrowthPoint `json:"subscriptionGrowth"`
}

type StatsRepo struct {
	db *gorm.DB
}

func NewStatsRepo(db *gorm.DB) *StatsRepo {
	return &StatsRepo{db}
}

// CountAll returns the document count for every entity.
func (r *StatsRepo) CountAll() (Counts, error) {
	var c Counts
	for _, pair := range []struct {
		model interface{}
		dst   *int64
	}{
		{&models.Header{}, &c.Headers},
		{&models.Project{}, &c.Projects},
		{&models.Category{}, &c.Categories},
		{&models.Skill{}, &c.Skills},
		{&models.Certificate{}, &c.Certificates},
		{&models.Post{}, &c.Posts},
		{&models.Feedback{}, &c.Feedbacks},
		{&models.Contact{}, &c.Contacts},
		{&models.Subscription{}, &c.Subscriptions},
	} {
		if err := r.db.Model(pair.model).Count(pair.dst).Error; err != nil {
			return Counts{}, err
		}
	}
	return c, nil
}

// GrowthAll returns the creation-time growth series for every entity that
// the admin dashboard charts.
func (r *StatsRepo) GrowthAll() (Growth, error) {
	var g Growth
	for _, pair := range []struct {
		model interface{}
		dst   *[]GrowthPoint
	}{
		{&models.Project{}, &g.Projects},
		{&models.Skill{}, &g.Skills},
		{&models.Certificate{}, &g.Certificates},
		{&models.Post{}, &g.Posts},
		{&models.Feedback{}, &g.Feedbacks},
		{&models.Contact{}, &g.Contacts},
		{&models.Subscription{}, &g.Subscriptions},
	} {
		series, err := r.growthSeries(pair.model)
		if err != nil {
			return Growth{}, err
		}
		*pair.dst = series
	}
	return g, nil
}

// growthSeries buckets creation timestamps into fixed windows anchored at
// the unix epoch. Bucketing happens in Go so the query stays portable
// across the postgres and sqlite drivers.
func (r *StatsRepo) growthSeries(model interface{}) ([]GrowthPoint, error) {
	var stamps []time.Time
	if err := r.db.Model(model).Order("created_at").Pluck("created_at", &stamps).Error; err != nil {
		return nil, err
	}

	buckets := make(map[string]int, len(stamps))
	for _, ts := range stamps {
		ms := ts.UnixMilli()
		start := time.UnixMilli(ms - ms%growthBucket.Milliseconds()).UTC()
		buckets[start.Format("2006-01-02")]++
	}

	series := make([]GrowthPoint, 0, len(buckets))
	for date, count := range buckets {
		series = append(series, GrowthPoint{Date: date, Count: count})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date < series[j].Date })
	return series, nil
}
