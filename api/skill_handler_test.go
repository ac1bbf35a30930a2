package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

func seedVerifiedSubscriber(t *testing.T, env *testEnv, email string) {
	t.Helper()

	token := "unsub-" + email
	sub := models.Subscription{
		Email:            email,
		Verified:         true,
		Subscribed:       true,
		UnsubscribeToken: &token,
	}
	if err := env.db.SubscriptionRepo().Add(&sub); err != nil {
		t.Fatalf("seeding subscriber: %v", err)
	}
}

func TestCreateSkillNotifiesVerifiedSubscribers(t *testing.T) {
	env := newTestEnv(t)
	seedVerifiedSubscriber(t, env, "a@example.com")
	seedVerifiedSubscriber(t, env, "b@example.com")

	// Unverified subscribers must not be notified.
	pending := models.Subscription{Email: "pending@example.com", Subscribed: true}
	if err := env.db.SubscriptionRepo().Add(&pending); err != nil {
		t.Fatalf("seeding pending subscriber: %v", err)
	}

	req := multipartRequest(t, http.MethodPost, "/api/skills", map[string]string{
		"name": "Distributed Systems",
	})
	rec := env.do(req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	env.notifier.Wait()

	if env.mailer.sentCount() != 2 {
		t.Fatalf("expected 2 notification emails, got %d", env.mailer.sentCount())
	}
	for _, sent := range env.mailer.sent {
		if !strings.Contains(sent.html, "unsubscribe?token=") {
			t.Errorf("expected an unsubscribe link in the email, got %q", sent.html)
		}
		for _, r := range sent.recipients {
			if r == "pending@example.com" {
				t.Error("unverified subscriber was notified")
			}
		}
	}
}

func TestDeleteSkillRemovesImageAndNotifies(t *testing.T) {
	env := newTestEnv(t)
	seedVerifiedSubscriber(t, env, "a@example.com")

	create := multipartRequest(t, http.MethodPost, "/api/skills", map[string]string{
		"name": "Go",
	}, testFile{
		field:       "image",
		filename:    "gopher.png",
		contentType: "image/png",
		data:        []byte("png-bytes"),
	})
	rec := env.do(create)
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Skill models.Skill `json:"skill"`
	}
	decodeBody(t, rec, &created)

	rec = env.do(httpRequest(t, http.MethodDelete, "/api/skills/"+created.Skill.ID.String()))
	if rec.Code != http.StatusOK {
		t.Fatalf("delete: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	removed := env.uploader.removedURLs()
	if len(removed) != 1 || removed[0] != created.Skill.ImageURL {
		t.Errorf("expected exactly the skill image removed, got %v", removed)
	}

	env.notifier.Wait()
	if env.mailer.sentCount() != 2 {
		t.Errorf("expected notifications for create and delete, got %d", env.mailer.sentCount())
	}
}

func TestCreateSkillRequiresName(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(multipartRequest(t, http.MethodPost, "/api/skills", map[string]string{}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}
