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
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type feedbackHandler struct {
	responder    Responder
	logger       zerolog.Logger
	feedbackRepo *database.FeedbackRepo
}

func newFeedbackHandler(feedbackRepo *database.FeedbackRepo) feedbackHandler {
	logger := log.With().Str("handlerName", "feedbackHandler").Logger()

	return feedbackHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		feedbackRepo: feedbackRepo,
	}
}

type feedbackInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Comment string `json:"comment"`
	Rating  int    `json:"rating"`
}

func (in feedbackInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Comment, validation.Required),
		validation.Field(&in.Rating, validation.Required, validation.Min(1), validation.Max(5)),
	)
}

// getAllFeedback retrieves all feedback entries, newest first
func (h feedbackHandler) getAllFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedback, err := h.feedbackRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feedback", "feedback", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"feedback": feedback})
	}
}

// createFeedback stores a visitor's feedback submission. Incomplete
// submissions are rejected as unprocessable.
func (h feedbackHandler) createFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in feedbackInput
		if err := decodeJSON(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewUnprocessableError(err.Error()))
			return
		}

		feedback := models.Feedback{
			Name:    in.Name,
			Email:   in.Email,
			Comment: in.Comment,
			Rating:  in.Rating,
		}

		if err := h.feedbackRepo.Add(&feedback); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create feedback", "feedback", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message":  "Feedback submitted",
			"feedback": feedback,
		})
	}
}

// deleteFeedback deletes a feedback entry
func (h feedbackHandler) deleteFeedback() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		feedbackID, err := uuid.Parse(chi.URLParam(r, "feedbackID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid feedbackID"))
			return
		}

		if _, err := h.feedbackRepo.FindByID(feedbackID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find feedback", "feedback", err))
			return
		}

		if err := h.feedbackRepo.Delete(feedbackID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete feedback", "feedback", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "feedback deleted successfully",
		})
	}
}
