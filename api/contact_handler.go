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

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRepo
	mailer      services.Mailer
}

func newContactHandler(contactRepo *database.ContactRepo, mailer services.Mailer) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
		mailer:      mailer,
	}
}

type contactInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Message string `json:"message"`
}

func (in contactInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Email, validation.Required, is.Email),
		validation.Field(&in.Subject, validation.Required),
		validation.Field(&in.Message, validation.Required),
	)
}

type contactReplyInput struct {
	Response string `json:"response"`
}

func (in contactReplyInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Response, validation.Required),
	)
}

// createContact stores a visitor's contact message. Incomplete
// submissions are rejected as unprocessable.
func (h contactHandler) createContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in contactInput
		if err := decodeJSON(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewUnprocessableError(err.Error()))
			return
		}

		contact := models.Contact{
			Name:    in.Name,
			Email:   in.Email,
			Subject: in.Subject,
			Message: in.Message,
		}

		if err := h.contactRepo.Add(&contact); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create contact", "contact", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message": "Message received",
			"contact": contact,
		})
	}
}

// getAllContacts retrieves all contact messages, newest first
func (h contactHandler) getAllContacts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contacts, err := h.contactRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contacts", "contacts", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"contacts": contacts})
	}
}

// respondToContact stores the admin's reply on the contact message and
// emails it to the sender. The reply is kept even if the email fails;
// the failure is logged.
func (h contactHandler) respondToContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		var in contactReplyInput
		if err := decodeJSON(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		contact, err := h.contactRepo.SetResponse(contactID, in.Response)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update contact", "contact", err))
			return
		}

		subject := services.ContactReplySubject(contact.Subject)
		body := services.ContactReplyEmail(contact.Name, in.Response)
		if err := h.mailer.Send(subject, body, []string{contact.Email}); err != nil {
			h.logger.Error().Err(err).Str("email", contact.Email).Msg("failed to send contact reply")
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Response sent",
			"contact": contact,
		})
	}
}

// deleteContact deletes a contact message
func (h contactHandler) deleteContact() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contactID, err := uuid.Parse(chi.URLParam(r, "contactID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid contactID"))
			return
		}

		if _, err := h.contactRepo.FindByID(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find contact", "contact", err))
			return
		}

		if err := h.contactRepo.Delete(contactID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete contact", "contact", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "contact deleted successfully",
		})
	}
}
