package api

import (
	"net/http"
	"testing"
)

func TestSubscribeThenDuplicateConflicts(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/subscribe", map[string]string{
		"email": "reader@example.com",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("first subscribe: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	sub, err := env.db.SubscriptionRepo().FindByEmail("reader@example.com")
	if err != nil {
		t.Fatalf("loading subscription: %v", err)
	}
	if sub == nil {
		t.Fatal("expected subscription stored")
	}
	if sub.Verified {
		t.Error("expected new subscription to start unverified")
	}
	if sub.VerificationToken == nil || sub.UnsubscribeToken == nil {
		t.Fatal("expected both tokens minted")
	}
	if env.mailer.sentCount() != 1 {
		t.Errorf("expected one verification email, got %d", env.mailer.sentCount())
	}

	rec = env.do(jsonRequest(t, http.MethodPost, "/api/subscribe", map[string]string{
		"email": "reader@example.com",
	}))
	if rec.Code != http.StatusConflict {
		t.Fatalf("second subscribe: expected 409, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestSubscribeRejectsMissingEmail(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/subscribe", map[string]string{}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(jsonRequest(t, http.MethodPost, "/api/subscribe", map[string]string{
		"email": "not-an-email",
	}))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for malformed email, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestVerifyTokenIsSingleUse(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/subscribe", map[string]string{
		"email": "reader@example.com",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("subscribe: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	sub, err := env.db.SubscriptionRepo().FindByEmail("reader@example.com")
	if err != nil || sub == nil || sub.VerificationToken == nil {
		t.Fatalf("loading subscription: %v", err)
	}
	token := *sub.VerificationToken

	rec = env.do(httpRequest(t, http.MethodGet, "/api/verify?token="+token))
	if rec.Code != http.StatusFound {
		t.Fatalf("verify: expected 302, got %d: %s", rec.Code, rec.Body.String())
	}
	if loc := rec.Header().Get("Location"); loc != testBaseURL+"/verify/success" {
		t.Errorf("expected success redirect, got %q", loc)
	}

	sub, err = env.db.SubscriptionRepo().FindByEmail("reader@example.com")
	if err != nil || sub == nil {
		t.Fatalf("reloading subscription: %v", err)
	}
	if !sub.Verified {
		t.Error("expected subscription marked verified")
	}
	if sub.VerificationToken != nil {
		t.Error("expected verification token consumed")
	}

	// Replaying the same link must not succeed a second time.
	rec = env.do(httpRequest(t, http.MethodGet, "/api/verify?token="+token))
	if rec.Code != http.StatusFound {
		t.Fatalf("replayed verify: expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != testBaseURL+"/verify/error?code=invalid_token" {
		t.Errorf("expected invalid token redirect on replay, got %q", loc)
	}
}

func TestVerifyUnknownToken(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(httpRequest(t, http.MethodGet, "/api/verify?token=deadbeef"))
	if rec.Code != http.StatusFound {
		t.Fatalf("expected 302, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != testBaseURL+"/verify/error?code=invalid_token" {
		t.Errorf("expected invalid token redirect, got %q", loc)
	}
}

func TestUnsubscribeFlipsSubscriptionOff(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/subscribe", map[string]string{
		"email": "reader@example.com",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("subscribe: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	sub, err := env.db.SubscriptionRepo().FindByEmail("reader@example.com")
	if err != nil || sub == nil || sub.UnsubscribeToken == nil {
		t.Fatalf("loading subscription: %v", err)
	}
	token := *sub.UnsubscribeToken

	rec = env.do(httpRequest(t, http.MethodGet, "/api/unsubscribe?token="+token))
	if rec.Code != http.StatusOK {
		t.Fatalf("unsubscribe: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Success bool `json:"success"`
	}
	decodeBody(t, rec, &body)
	if !body.Success {
		t.Error("expected success response")
	}

	sub, err = env.db.SubscriptionRepo().FindByEmail("reader@example.com")
	if err != nil || sub == nil {
		t.Fatalf("reloading subscription: %v", err)
	}
	if sub.Subscribed {
		t.Error("expected subscription flipped off")
	}
	if sub.UnsubscribeToken != nil {
		t.Error("expected unsubscribe token consumed")
	}

	// Replaying the same link must not succeed a second time.
	rec = env.do(httpRequest(t, http.MethodGet, "/api/unsubscribe?token="+token))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("replayed unsubscribe: expected 404, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestUnsubscribeUnknownTokenLeavesDataUnchanged(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(jsonRequest(t, http.MethodPost, "/api/subscribe", map[string]string{
		"email": "reader@example.com",
	}))
	if rec.Code != http.StatusCreated {
		t.Fatalf("subscribe: expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(httpRequest(t, http.MethodGet, "/api/unsubscribe?token=deadbeef"))
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = env.do(httpRequest(t, http.MethodGet, "/api/unsubscribe"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without token, got %d: %s", rec.Code, rec.Body.String())
	}

	sub, err := env.db.SubscriptionRepo().FindByEmail("reader@example.com")
	if err != nil || sub == nil {
		t.Fatalf("reloading subscription: %v", err)
	}
	if !sub.Subscribed {
		t.Error("expected subscription untouched")
	}
}
