package api

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rpupo63/portfolio-cms-backend/sanitize"
	"github.com/rpupo63/portfolio-cms-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const (
	postCoverPrefix = "posts/covers"
	postUserPrefix  = "posts/authors"

	maxPostTags = 5
)

type postHandler struct {
	responder Responder
	logger    zerolog.Logger
	postRepo  *database.PostRepo
	uploader  services.Uploader
}

func newPostHandler(postRepo *database.PostRepo, uploader services.Uploader) postHandler {
	logger := log.With().Str("handlerName", "postHandler").Logger()

	return postHandler{
		responder: NewResponder(logger),
		logger:    logger,
		postRepo:  postRepo,
		uploader:  uploader,
	}
}

type postInput struct {
	Name    string
	Title   string
	Content string
	Slug    string
	Excerpt string
	Tags    string
}

func (in postInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required),
		validation.Field(&in.Title, validation.Required, validation.Length(10, 200)),
		validation.Field(&in.Content, validation.Required, validation.Length(100, 0)),
		validation.Field(&in.Excerpt, validation.Length(0, 160)),
	)
}

func postInputFromForm(r *http.Request) postInput {
	return postInput{
		Name:    formValue(r, "name"),
		Title:   formValue(r, "title"),
		Content: formValue(r, "content"),
		Slug:    formValue(r, "slug"),
		Excerpt: formValue(r, "excerpt"),
		Tags:    formValue(r, "tags"),
	}
}

// splitTags turns a comma separated tag field into a trimmed list.
func splitTags(raw string) []string {
	if raw == "" {
		return nil
	}
	var tags []string
	for _, t := range strings.Split(raw, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// getAllPosts retrieves all posts, newest first
func (h postHandler) getAllPosts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		posts, err := h.postRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find posts", "posts", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"posts": posts})
	}
}

// getPost retrieves a specific post by slug
func (h postHandler) getPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if !sanitize.ValidateSlug(slug) {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid slug"))
			return
		}

		post, err := h.postRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		h.responder.WriteJSON(w, post)
	}
}

// createPost creates a post from a multipart form. The slug is derived
// from the submitted slug, or the title when absent, and checked for
// uniqueness before any asset leaves the process.
func (h postHandler) createPost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := parseMultipart(r); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		in := postInputFromForm(r)
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		tags := splitTags(in.Tags)
		if len(tags) > maxPostTags {
			h.responder.WriteError(w, errs.NewValidationError("tags", "at most 5 tags are allowed"))
			return
		}

		rawSlug := in.Slug
		if rawSlug == "" {
			rawSlug = in.Title
		}
		slug := sanitize.SanitizeSlug(rawSlug)
		if !sanitize.ValidateSlug(slug) {
			h.responder.WriteError(w, errs.NewValidationError("slug", "must contain at least one letter or digit"))
			return
		}

		taken, err := h.postRepo.SlugTaken(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("check slug", "post", err))
			return
		}
		if taken {
			h.responder.WriteError(w, errs.NewConflictError("a post with this slug already exists"))
			return
		}

		coverFile, err := formFileField(r, "coverImage", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		userFile, err := formFileField(r, "userImage", maxImageSize, allowedImageTypes)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		post := models.Post{
			Name:    in.Name,
			Title:   in.Title,
			Content: sanitize.Sanitize(in.Content),
			Slug:    slug,
			Excerpt: in.Excerpt,
			Tags:    tags,
		}

		if coverFile != nil {
			url, err := uploadFormFile(r, h.uploader, postCoverPrefix, coverFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			post.CoverImage = url
		}
		if userFile != nil {
			url, err := uploadFormFile(r, h.uploader, postUserPrefix, userFile)
			if err != nil {
				h.responder.WriteError(w, err)
				return
			}
			post.UserImage = url
		}

		if err := h.postRepo.Add(&post); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create post", "post", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message": "Post created",
			"post":    post,
		})
	}
}

// deletePost deletes a post by slug and best-effort removes its images
func (h postHandler) deletePost() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slug := chi.URLParam(r, "slug")
		if !sanitize.ValidateSlug(slug) {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid slug"))
			return
		}

		existing, err := h.postRepo.FindBySlug(slug)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find post", "post", err))
			return
		}

		if err := h.postRepo.DeleteBySlug(slug); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete post", "post", err))
			return
		}

		if existing.CoverImage != "" {
			h.uploader.Remove(r.Context(), existing.CoverImage)
		}
		if existing.UserImage != "" {
			h.uploader.Remove(r.Context(), existing.UserImage)
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "post deleted successfully",
		})
	}
}
