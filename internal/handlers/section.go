package handlers

import (
	"net/http"
	"strings"

	"mosaic-media/internal/db"
	"mosaic-media/internal/models"
)

func validateSection(s *models.Section) string {
	if strings.TrimSpace(s.Title) == "" {
		return "title is required"
	}
	switch s.Type {
	case models.SectionFeatured, models.SectionLatest, models.SectionCustom:
	case models.SectionCategory:
		if s.CategoryID == nil {
			return "category is required for a category section"
		}
	default:
		return "type must be featured, latest, category or custom"
	}
	switch s.DisplayStyle {
	case "", models.StyleGrid, models.StyleList, models.StyleCarousel:
	default:
		return "displayStyle must be grid, list or carousel"
	}
	return ""
}

func (h *Handler) ListSectionsAPI(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Store.ListSections(false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch sections")
		return
	}
	respond(w, http.StatusOK, sections)
}

func (h *Handler) CreateSection(w http.ResponseWriter, r *http.Request) {
	var s models.Section
	if err := decodeJSON(r, &s); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if msg := validateSection(&s); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if s.DisplayStyle == "" {
		s.DisplayStyle = models.StyleGrid
	}
	if s.Limit <= 0 {
		s.Limit = 6
	}

	if err := h.Store.CreateSection(&s); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create section")
		return
	}

	respond(w, http.StatusCreated, s)
}

func (h *Handler) GetSection(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	section, err := h.Store.GetSectionByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "section not found")
		return
	}
	respond(w, http.StatusOK, section)
}

func (h *Handler) UpdateSection(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Store.GetSectionByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "section not found")
		return
	}

	s := *existing
	if err := decodeJSON(r, &s); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	s.ID = id

	if msg := validateSection(&s); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if err := h.Store.UpdateSection(&s); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update section")
		return
	}

	respond(w, http.StatusOK, s)
}

func (h *Handler) DeleteSection(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.DeleteSection(id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete section")
		return
	}

	respond(w, http.StatusOK, map[string]any{"deleted": id})
}

// ReorderSections accepts the full [{id, order}] list produced by the
// drag-and-drop view and persists it atomically. On failure the client
// refetches the authoritative list, so no partial order may ever be
// visible.
func (h *Handler) ReorderSections(w http.ResponseWriter, r *http.Request) {
	var orders []models.SectionOrder
	if err := decodeJSON(r, &orders); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(orders) == 0 {
		respondError(w, http.StatusBadRequest, "order list is empty")
		return
	}

	if err := h.Store.ReorderSections(orders); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to reorder sections")
		return
	}

	sections, err := h.Store.ListSections(false)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch sections")
		return
	}

	respond(w, http.StatusOK, sections)
}

// sectionFilter translates a section's type into the published-post
// filter it displays. ok is false when a category section points at a
// category that no longer exists.
func (h *Handler) sectionFilter(s models.Section) (db.BlogFilter, bool) {
	filter := db.BlogFilter{Status: models.StatusPublished}

	switch s.Type {
	case models.SectionFeatured:
		featured := true
		filter.Featured = &featured
	case models.SectionCategory:
		if s.CategoryID == nil {
			return filter, false
		}
		category, err := h.Store.GetCategoryByID(*s.CategoryID)
		if err != nil {
			return filter, false
		}
		filter.CategorySlug = category.Slug
	case models.SectionCustom:
		filter.SectionID = s.ID
	}

	return filter, true
}

// resolveSection picks the posts a home-page section displays, honoring
// its type and item limit.
func (h *Handler) resolveSection(s models.Section) ([]models.Blog, error) {
	filter, ok := h.sectionFilter(s)
	if !ok {
		return []models.Blog{}, nil
	}

	blogs, err := h.Store.ListBlogs(filter)
	if err != nil {
		return nil, err
	}

	limit := s.Limit
	if limit <= 0 {
		limit = 6
	}
	if len(blogs) > limit {
		blogs = blogs[:limit]
	}

	return blogs, nil
}
