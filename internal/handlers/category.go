package handlers

import (
	"net/http"
	"strings"

	"mosaic-media/internal/content"
	"mosaic-media/internal/models"
)

func (h *Handler) ListCategoriesAPI(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListCategories()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch categories")
		return
	}
	respond(w, http.StatusOK, categories)
}

func (h *Handler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if strings.TrimSpace(c.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if c.Slug == "" {
		c.Slug = content.Slugify(c.Name)
	}
	if c.Status == "" {
		c.Status = "active"
	}

	if err := h.Store.CreateCategory(&c); err != nil {
		respondError(w, http.StatusConflict, "a category with this slug already exists")
		return
	}

	respond(w, http.StatusCreated, c)
}

func (h *Handler) GetCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.Store.GetCategoryByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}
	respond(w, http.StatusOK, category)
}

func (h *Handler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Store.GetCategoryByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "category not found")
		return
	}

	c := *existing
	if err := decodeJSON(r, &c); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.ID = id

	if strings.TrimSpace(c.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if c.Slug == "" {
		c.Slug = content.Slugify(c.Name)
	}

	if err := h.Store.UpdateCategory(&c); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update category")
		return
	}

	respond(w, http.StatusOK, c)
}

func (h *Handler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.DeleteCategory(id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete category")
		return
	}

	respond(w, http.StatusOK, map[string]any{"deleted": id})
}
