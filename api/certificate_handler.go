package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const certificateImagePrefix = "certificates/images"

type certificateHandler struct {
	responder       Responder
	logger          zerolog.Logger
	certificateRepo *database.CertificateRepo
	uploader        services.Uploader
}

func newCertificateHandler(certificateRepo *database.CertificateRepo, uploader services.Uploader) certificateHandler {
	logger := log.With().Str("handlerName", "certificateHandler").Logger()

	return certificateHandler{
		responder:       NewResponder(logger),
		logger:          logger,
		certificateRepo: certificateRepo,
		uploader:        uploader,
	}
}

type certificateInput struct {
	Title string
}

func (in certificateInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required, validation.Length(1, 200)),
	)
}

// getAllCertificates retrieves all certificates
func (h certificateHandler) getAllCertificates() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificates, err := h.certificateRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certificates", "certificates", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"certificates": certificates})
	}
}

// getCertificate retrieves a specific certificate by ID
func (h certificateHandler) getCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uuid.Parse(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificateID"))
			return
		}

		certificate, err := h.certificateRepo.FindByID(certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certificate", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, certificate)
	}
}

// createCertificate creates a new certificate with an optional image
func (h certificateHandler) createCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := certificateInput{Title: formValue(r, "title")}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		imageFile, err := formFileField(r, "image", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		certificate := models.Certificate{Title: in.Title}

		if imageFile != nil {
			url, err := uploadFormFile(r, h.uploader, certificateImagePrefix, imageFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			certificate.ImageURL = url
		}

		if err := h.certificateRepo.Add(&certificate); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create certificate", "certificate", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message":     "Certificate created",
			"certificate": certificate,
		})
	}
}

// updateCertificate updates an existing certificate. A replacement image
// is uploaded before the previous one is removed.
func (h certificateHandler) updateCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uuid.Parse(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificateID"))
			return
		}

		existing, err := h.certificateRepo.FindByID(certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certificate", "certificate", err))
			return
		}

		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := certificateInput{Title: formValue(r, "title")}
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

		if imageFile != nil {
			oldURL := existing.ImageURL
			url, err := uploadFormFile(r, h.uploader, certificateImagePrefix, imageFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			existing.ImageURL = url
			if oldURL != "" {
				h.uploader.Remove(r.Context(), oldURL)
			}
		}

		if err := h.certificateRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update certificate", "certificate", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message":     "Certificate updated",
			"certificate": existing,
		})
	}
}

// deleteCertificate deletes a certificate and best-effort removes its
// image
func (h certificateHandler) deleteCertificate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		certificateID, err := uuid.Parse(chi.URLParam(r, "certificateID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid certificateID"))
			return
		}

		existing, err := h.certificateRepo.FindByID(certificateID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find certificate", "certificate", err))
			return
		}

		if err := h.certificateRepo.Delete(certificateID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete certificate", "certificate", err))
			return
		}

		if existing.ImageURL != "" {
			h.uploader.Remove(r.Context(), existing.ImageURL)
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "certificate deleted successfully",
		})
	}
}
