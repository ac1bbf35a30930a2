package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/sanitize"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	projectImagePrefix = "projects/images"
	projectVideoPrefix = "projects/videos"
)

type projectHandler struct {
	responder    Responder
	logger       zerolog.Logger
	projectRepo  *database.ProjectRepo
	categoryRepo *database.CategoryRepo
	uploader     services.Uploader
}

func newProjectHandler(projectRepo *database.ProjectRepo, categoryRepo *database.CategoryRepo, uploader services.Uploader) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		projectRepo:  projectRepo,
		categoryRepo: categoryRepo,
		uploader:     uploader,
	}
}

type projectInput struct {
	Title       string
	Description string
	Category    string
	VideoLink   string
	LiveLink    string
	GithubLink  string
	Order       int
}

func (in projectInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Title, validation.Required),
		validation.Field(&in.Description, validation.Required),
		validation.Field(&in.Category, validation.Required),
	)
}

func projectInputFromForm(r *http.Request) projectInput {
	return projectInput{
		Title:       formValue(r, "title"),
		Description: formValue(r, "description"),
		Category:    formValue(r, "category"),
		VideoLink:   formValue(r, "videoLink"),
		LiveLink:    formValue(r, "liveLink"),
		GithubLink:  formValue(r, "githubLink"),
		Order:       formIntValue(r, "order", 0),
	}
}

// resolveCategory turns the submitted category field into the ID of an
// existing category.
func (h projectHandler) resolveCategory(raw string) (uuid.UUID, error) {
	categoryID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, errs.NewValidationError("category", "must be a valid category id")
	}

	if _, err := h.categoryRepo.FindByID(categoryID); err != nil {
		return uuid.Nil, wrapDatabaseError("find category", "category", err)
	}

	return categoryID, nil
}

// getAllProjects retrieves all projects with their category details
func (h projectHandler) getAllProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projects, err := h.projectRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find projects", "projects", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"projects": projects})
	}
}

// getProject retrieves a specific project by ID
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		project, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		h.responder.WriteJSON(w, project)
	}
}

// createProject creates a project from a multipart form with an optional
// image and an optional video
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := projectInputFromForm(r)
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		categoryID, err := h.resolveCategory(in.Category)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageFile, err := formFileField(r, "image", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		videoFile, err := formFileField(r, "video", maxVideoSize, allowedVideoTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{
			Title:       in.Title,
			Description: sanitize.Sanitize(in.Description),
			CategoryID:  categoryID,
			LiveLink:    in.LiveLink,
			GithubLink:  in.GithubLink,
			Order:       in.Order,
		}

		if imageFile != nil {
			url, err := uploadFormFile(r, h.uploader, projectImagePrefix, imageFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			project.ImageURL = url
		}
		// An external video URL wins over an uploaded file
		if in.VideoLink != "" {
			project.VideoLink = in.VideoLink
		} else if videoFile != nil {
			url, err := uploadFormFile(r, h.uploader, projectVideoPrefix, videoFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			project.VideoLink = url
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create project", "project", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message": "Project created",
			"project": project,
		})
	}
}

// updateProject updates an existing project. Replacement assets are
// uploaded before the previous ones are removed, so a failed upload
// leaves the old asset intact.
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := projectInputFromForm(r)
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		categoryID, err := h.resolveCategory(in.Category)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		imageFile, err := formFileField(r, "image", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		videoFile, err := formFileField(r, "video", maxVideoSize, allowedVideoTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		existing.Title = in.Title
		existing.Description = sanitize.Sanitize(in.Description)
		existing.CategoryID = categoryID
		existing.Category = nil
		existing.LiveLink = in.LiveLink
		existing.GithubLink = in.GithubLink
		existing.Order = in.Order

		if imageFile != nil {
			oldURL := existing.ImageURL
			url, err := uploadFormFile(r, h.uploader, projectImagePrefix, imageFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			existing.ImageURL = url
			if oldURL != "" {
				h.uploader.Remove(r.Context(), oldURL)
			}
		}
		// An external video URL wins over an uploaded file. A previously
		// uploaded video is removed once its replacement is in place;
		// Remove ignores URLs that never lived in the blob store.
		if in.VideoLink != "" {
			oldURL := existing.VideoLink
			existing.VideoLink = in.VideoLink
			if oldURL != "" && oldURL != in.VideoLink {
				h.uploader.Remove(r.Context(), oldURL)
			}
		} else if videoFile != nil {
			oldURL := existing.VideoLink
			url, err := uploadFormFile(r, h.uploader, projectVideoPrefix, videoFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			existing.VideoLink = url
			if oldURL != "" {
				h.uploader.Remove(r.Context(), oldURL)
			}
		}

		if err := h.projectRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update project", "project", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message": "Project updated",
			"project": existing,
		})
	}
}

// deleteProject deletes a project and best-effort removes its assets
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := uuid.Parse(chi.URLParam(r, "projectID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid projectID"))
			return
		}

		existing, err := h.projectRepo.FindByID(projectID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find project", "project", err))
			return
		}

		if err := h.projectRepo.Delete(projectID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete project", "project", err))
			return
		}

		if existing.ImageURL != "" {
			h.uploader.Remove(r.Context(), existing.ImageURL)
		}
		if existing.VideoLink != "" {
			h.uploader.Remove(r.Context(), existing.VideoLink)
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "project deleted successfully",
		})
	}
}
