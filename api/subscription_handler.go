package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type subscriptionHandler struct {
	responder        Responder
	logger           zerolog.Logger
	subscriptionRepo *database.SubscriptionRepo
	mailer           services.Mailer
	baseURL          string
}

func newSubscriptionHandler(subscriptionRepo *database.SubscriptionRepo, mailer services.Mailer, baseURL string) subscriptionHandler {
	logger := log.With().Str("handlerName", "subscriptionHandler").Logger()

	return subscriptionHandler{
		responder:        NewResponder(logger),
		logger:           logger,
		subscriptionRepo: subscriptionRepo,
		mailer:           mailer,
		baseURL:          baseURL,
	}
}

type subscribeInput struct {
	Email string `json:"email"`
}

func (in subscribeInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Email, validation.Required, is.Email),
	)
}

// subscribe registers an email address and sends it a verification link.
// The verification and unsubscribe tokens are minted here and never
// leave the system except inside those links.
func (h subscriptionHandler) subscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in subscribeInput
		if err := decodeJSON(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		existing, err := h.subscriptionRepo.FindByEmail(in.Email)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find subscription", "subscription", err))
			return
		}
		if existing != nil {
			h.responder.WriteError(w, errs.NewConflictError("this email is already subscribed"))
			return
		}

		verificationToken := services.NewToken()
		unsubscribeToken := services.NewToken()

		subscription := models.Subscription{
			Email:             in.Email,
			Verified:          false,
			VerificationToken: &verificationToken,
			Subscribed:        true,
			UnsubscribeToken:  &unsubscribeToken,
		}

		if err := h.subscriptionRepo.Add(&subscription); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create subscription", "subscription", err))
			return
		}

		if err := services.SendVerificationEmail(h.mailer, h.baseURL, in.Email, verificationToken, unsubscribeToken); err != nil {
			h.logger.Error().Err(err).Str("email", in.Email).Msg("failed to send verification email")
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message": "Subscribed. Please check your inbox to verify your email.",
		})
	}
}

// verify consumes a verification token from the emailed link and
// redirects the browser to the site's verification result page. The
// token is single use: it is cleared on success.
func (h subscriptionHandler) verify() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			http.Redirect(w, r, h.baseURL+"/verify/error?code=invalid_token", http.StatusFound)
			return
		}

		subscription, err := h.subscriptionRepo.FindByVerificationToken(token)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to look up verification token")
			http.Redirect(w, r, h.baseURL+"/verify/error?code=server_error", http.StatusFound)
			return
		}
		if subscription == nil {
			http.Redirect(w, r, h.baseURL+"/verify/error?code=invalid_token", http.StatusFound)
			return
		}

		subscription.Verified = true
		subscription.VerificationToken = nil

		if err := h.subscriptionRepo.Update(subscription); err != nil {
			h.logger.Error().Err(err).Msg("failed to mark subscription verified")
			http.Redirect(w, r, h.baseURL+"/verify/error?code=server_error", http.StatusFound)
			return
		}

		http.Redirect(w, r, h.baseURL+"/verify/success", http.StatusFound)
	}
}

// unsubscribe flips the subscription off using the token from the
// emailed link. The token is single use: it is cleared on success.
func (h subscriptionHandler) unsubscribe() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.URL.Query().Get("token")
		if token == "" {
			h.responder.WriteError(w, errs.NewBadRequestError("missing unsubscribe token"))
			return
		}

		subscription, err := h.subscriptionRepo.FindByUnsubscribeToken(token)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find subscription", "subscription", err))
			return
		}
		if subscription == nil {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusNotFound)
			h.responder.WriteJSON(w, map[string]interface{}{
				"success": false,
				"message": "unknown unsubscribe token",
			})
			return
		}

		subscription.Subscribed = false
		subscription.UnsubscribeToken = nil

		if err := h.subscriptionRepo.Update(subscription); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update subscription", "subscription", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"success": true,
			"message": "You have been unsubscribed.",
		})
	}
}

// getAllSubscriptions retrieves all subscriptions
func (h subscriptionHandler) getAllSubscriptions() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscriptions, err := h.subscriptionRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find subscriptions", "subscriptions", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"subscriptions": subscriptions})
	}
}

// deleteSubscription removes a subscription outright
func (h subscriptionHandler) deleteSubscription() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		subscriptionID, err := uuid.Parse(chi.URLParam(r, "subscriptionID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid subscriptionID"))
			return
		}

		if err := h.subscriptionRepo.Delete(subscriptionID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete subscription", "subscription", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "subscription deleted successfully",
		})
	}
}
