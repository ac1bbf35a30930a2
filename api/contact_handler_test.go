package api

import (
	"net/http"
	"strings"
	"testing"

	"github.com/rpupo63/portfolio-cms-backend/models"
)

func TestCreateContactMissingFields(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/contact", map[string]string{
		"name":  "Visitor",
		"email": "visitor@example.com",
	}))
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestRespondToContactStoresReplyAndEmailsSender(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/contact", map[string]string{
		"name":    "Visitor",
		"email":   "visitor@example.com",
		"subject": "Collaboration",
		"message": "Would you like to work together?",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("create: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var created struct {
		Contact models.Contact `json:"contact"`
	}
	decodeBody(t, rec, &created)

	rec = env.do(jsonRequest(t, http.MethodPatch, "/api/contact/"+created.Contact.ID.String(), map[string]string{
		"response": "Yes, let's talk.",
	}))
	if rec.Code != http.StatusOK {
		t.Fatalf("respond: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	stored, err := env.db.ContactRepo().FindByID(created.Contact.ID)
	if err != nil {
		t.Fatalf("reloading contact: %v", err)
	}
	if stored.Response == nil || *stored.Response != "Yes, let's talk." {
		t.Errorf("expected stored response, got %v", stored.Response)
	}

	if env.mailer.sentCount() != 1 {
		t.Fatalf("expected one reply email, got %d", env.mailer.sentCount())
	}
	sent := env.mailer.sent[0]
	if len(sent.recipients) != 1 || sent.recipients[0] != "visitor@example.com" {
		t.Errorf("expected reply addressed to sender, got %v", sent.recipients)
	}
	if !strings.Contains(sent.subject, "Collaboration") {
		t.Errorf("expected original subject referenced, got %q", sent.subject)
	}
}

func TestRespondToContactUnknownID(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(t, http.MethodPatch, "/api/contact/a2aeb6a2-97c7-4f8e-96c2-6b23e4f15b1e", map[string]string{
		"response": "Hello?",
	}))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}
