package api

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/sanitize"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const headerImagePrefix = "headers/images"

type headerHandler struct {
	responder  Responder
	logger     zerolog.Logger
	headerRepo *database.HeaderRepo
	uploader   services.Uploader
}

func newHeaderHandler(headerRepo *database.HeaderRepo, uploader services.Uploader) headerHandler {
	logger := log.With().Str("handlerName", "headerHandler").Logger()

	return headerHandler{
		responder:  NewResponder(logger),
		logger:     logger,
		headerRepo: headerRepo,
		uploader:   uploader,
	}
}

type headerInput struct {
	Title        string
	Description  string
	GithubLink   string
	LinkedInLink string
	IsSelected   bool
}

func (in headerInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Description, validation.Required),
	)
}

func headerInputFromForm(r *http.Request) headerInput {
	return headerInput{
		Title:        formValue(r, "title"),
		Description:  formValue(r, "description"),
		GithubLink:   formValue(r, "githubLink"),
		LinkedInLink: formValue(r, "linkedInLink"),
		IsSelected:   formValue(r, "isSelected") == "true",
	}
}

// getAllHeaders retrieves all headers
func (h headerHandler) getAllHeaders() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headers, err := h.headerRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find headers", "headers", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"headers": headers})
	}
}

// getHeader retrieves a specific header by ID
func (h headerHandler) getHeader() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headerID, err := uuid.Parse(chi.URLParam(r, "headerID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid headerID"))
			return
		}

		header, err := h.headerRepo.FindByID(headerID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find header", "header", err))
			return
		}

		h.responder.WriteJSON(w, header)
	}
}

// createHeader creates a new header from a multipart form with an
// optional image
func (h headerHandler) createHeader() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := headerInputFromForm(r)
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		imageFile, err := formFileField(r, "image", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		header := models.Header{
			Title:        in.Title,
			Description:  sanitize.Sanitize(in.Description),
			GithubLink:   in.GithubLink,
			LinkedInLink: in.LinkedInLink,
			IsSelected:   in.IsSelected,
		}

		if imageFile != nil {
			url, err := uploadFormFile(r, h.uploader, headerImagePrefix, imageFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			header.ImageURL = url
		}

		if err := h.headerRepo.Add(&header); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create header", "header", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message": "Header created",
			"header":  header,
		})
	}
}

// updateHeader updates an existing header. A newly provided image is
// uploaded before the previous one is removed, so a failed upload leaves
// the old asset intact.
func (h headerHandler) updateHeader() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headerID, err := uuid.Parse(chi.URLParam(r, "headerID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid headerID"))
			return
		}

		existing, err := h.headerRepo.FindByID(headerID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find header", "header", err))
			return
		}

		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := headerInputFromForm(r)
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		imageFile, err := formFileField(r, "image", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing.Title = in.Title
		existing.Description = sanitize.Sanitize(in.Description)
		existing.GithubLink = in.GithubLink
		existing.LinkedInLink = in.LinkedInLink
		existing.IsSelected = in.IsSelected

		if imageFile != nil {
			oldURL := existing.ImageURL
			url, err := uploadFormFile(r, h.uploader, headerImagePrefix, imageFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			existing.ImageURL = url
			if oldURL != "" {
				h.uploader.Remove(r.Context(), oldURL)
			}
		}

		if err := h.headerRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update header", "header", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Header updated",
			"header":  existing,
		})
	}
}

// deleteHeader deletes a header and best-effort removes its image
func (h headerHandler) deleteHeader() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		headerID, err := uuid.Parse(chi.URLParam(r, "headerID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid headerID"))
			return
		}

		existing, err := h.headerRepo.FindByID(headerID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find header", "header", err))
			return
		}

		if err := h.headerRepo.Delete(headerID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete header", "header", err))
			return
		}

		if existing.ImageURL != "" {
			h.uploader.Remove(r.Context(), existing.ImageURL)
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "header deleted successfully",
		})
	}
}
