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

const skillImagePrefix = "skills/images"

type skillHandler struct {
	responder Responder
	logger    zerolog.Logger
	skillRepo *database.SkillRepo
	uploader  services.Uploader
	notifier  *services.Notifier
}

func newSkillHandler(skillRepo *database.SkillRepo, uploader services.Uploader, notifier *services.Notifier) skillHandler {
	logger := log.With().Str("handlerName", "skillHandler").Logger()

	return skillHandler{
		responder: NewResponder(logger),
		logger:    logger,
		skillRepo: skillRepo,
		uploader:  uploader,
		notifier:  notifier,
	}
}

type skillInput struct {
	Name string
}

func (in skillInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
	)
}

// getAllSkills retrieves all skills
func (h skillHandler) getAllSkills() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skills, err := h.skillRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skills", "skills", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"skills": skills})
	}
}

// getSkill retrieves a specific skill by ID
func (h skillHandler) getSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		skill, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skill", "skill", err))
			return
		}

		h.responder.WriteJSON(w, skill)
	}
}

// createSkill creates a new skill and notifies verified subscribers
func (h skillHandler) createSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := skillInput{Name: formValue(r, "name")}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		imageFile, err := formFileField(r, "image", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		skill := models.Skill{Name: in.Name}

		if imageFile != nil {
			url, err := uploadFormFile(r, h.uploader, skillImagePrefix, imageFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			skill.ImageURL = url
		}

		if err := h.skillRepo.Add(&skill); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create skill", "skill", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message": "Skill created",
			"skill":   skill,
		})

		h.notifier.SkillsUpdated()
	}
}

// updateSkill updates an existing skill and notifies verified
// subscribers. A replacement image is uploaded before the previous one
// is removed.
func (h skillHandler) updateSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		existing, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skill", "skill", err))
			return
		}

		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := skillInput{Name: formValue(r, "name")}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		imageFile, err := formFileField(r, "image", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing.Name = in.Name

		if imageFile != nil {
			oldURL := existing.ImageURL
			url, err := uploadFormFile(r, h.uploader, skillImagePrefix, imageFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			existing.ImageURL = url
			if oldURL != "" {
				h.uploader.Remove(r.Context(), oldURL)
			}
		}

		if err := h.skillRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update skill", "skill", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Skill updated",
			"skill":   existing,
		})

		h.notifier.SkillsUpdated()
	}
}

// deleteSkill deletes a skill, best-effort removes its image, and
// notifies verified subscribers
func (h skillHandler) deleteSkill() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		skillID, err := uuid.Parse(chi.URLParam(r, "skillID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid skillID"))
			return
		}

		existing, err := h.skillRepo.FindByID(skillID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find skill", "skill", err))
			return
		}

		if err := h.skillRepo.Delete(skillID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete skill", "skill", err))
			return
		}

		if existing.ImageURL != "" {
			h.uploader.Remove(r.Context(), existing.ImageURL)
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "skill deleted successfully",
		})

		h.notifier.SkillsUpdated()
	}
}
