package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
	"github.com/rpupo63/portfolio-cms-backend/database"
	"github.com/rpupo63/portfolio-cms-backend/errs"
	"github.com/rpupo63/portfolio-cms-backend/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type categoryHandler struct {
	responder    Responder
	logger       zerolog.Logger
	categoryRepo *database.CategoryRepo
}

func newCategoryHandler(categoryRepo *database.CategoryRepo) categoryHandler {
	logger := log.With().Str("handlerName", "categoryHandler").Logger()

	return categoryHandler{
		responder:    NewResponder(logger),
		logger:       logger,
		categoryRepo: categoryRepo,
	}
}

type categoryInput struct {
	Name string `json:"name"`
}

func (in categoryInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Name, validation.Required, validation.Length(1, 100)),
	)
}

// getAllCategories retrieves all categories
func (h categoryHandler) getAllCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.categoryRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find categories", "categories", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{"categories": categories})
	}
}

// getCategory retrieves a specific category by ID
func (h categoryHandler) getCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		category, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}

		h.responder.WriteJSON(w, category)
	}
}

// createCategory creates a new category
func (h categoryHandler) createCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in categoryInput
		if err := decodeJSON(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		category := models.Category{Name: in.Name}
		if err := h.categoryRepo.Add(&category); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create category", "category", err))
			return
		}

		h.responder.WriteCreated(w, map[string]interface{}{
			"message":  "Category created",
			"category": category,
		})
	}
}

// updateCategory updates an existing category
func (h categoryHandler) updateCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		existing, err := h.categoryRepo.FindByID(categoryID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}

		var in categoryInput
		if err := decodeJSON(r, &in); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if err := in.Validate(); err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError(err.Error()))
			return
		}

		existing.Name = in.Name
		if err := h.categoryRepo.Update(existing); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update category", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]interface{}{
			"message":  "Category updated",
			"category": existing,
		})
	}
}

// deleteCategory deletes a category. Categories still referenced by
// projects are rejected by the foreign key and surface as a client error.
func (h categoryHandler) deleteCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categoryID, err := uuid.Parse(chi.URLParam(r, "categoryID"))
		if err != nil {
			h.responder.WriteError(w, errs.NewBadRequestError("invalid categoryID"))
			return
		}

		if _, err := h.categoryRepo.FindByID(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find category", "category", err))
			return
		}

		if err := h.categoryRepo.Delete(categoryID); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete category", "category", err))
			return
		}

		h.responder.WriteJSON(w, map[string]string{
			"status":  "success",
			"message": "category deleted successfully",
		})
	}
}
