package api

import (
	"net/http"
	"testing"

	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/models"
)

func TestGetStatsReportsCountsAndGrowth(t *testing.T) {
	env := newTestEnv(t)

	if err := env.db.SkillRepo().Add(&models.Skill{Name: "Go"}); err != nil {
		t.Fatalf("seeding skill: %v", err)
	}
	if err := env.db.SkillRepo().Add(&models.Skill{Name: "SQL"}); err != nil {
		t.Fatalf("seeding skill: %v", err)
	}
	if err := env.db.FeedbackRepo().Add(&models.Feedback{
		Name: "Visitor", Email: "v@example.com", Comment: "Nice", Rating: 5,
	}); err != nil {
		t.Fatalf("seeding feedback: %v", err)
	}

	rec := env.do(httpRequest(t, http.MethodGet, "/api/stats"))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Counts     database.Counts `json:"counts"`
		GrowthData database.Growth `json:"growthData"`
	}
	decodeBody(t, rec, &body)

	if body.Counts.Skills != 2 {
		t.Errorf("expected 2 skills counted, got %d", body.Counts.Skills)
	}
	if body.Counts.Feedbacks != 1 {
		t.Errorf("expected 1 feedback counted, got %d", body.Counts.Feedbacks)
	}
	if body.Counts.Projects != 0 {
		t.Errorf("expected 0 projects counted, got %d", body.Counts.Projects)
	}

	if len(body.GrowthData.Skills) != 1 {
		t.Fatalf("expected one growth bucket for skills, got %v", body.GrowthData.Skills)
	}
	if body.GrowthData.Skills[0].Count != 2 {
		t.Errorf("expected both skills in one bucket, got %d", body.GrowthData.Skills[0].Count)
	}
}
