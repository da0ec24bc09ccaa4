package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"mosaic-media/internal/content"
	"mosaic-media/internal/db"
	"mosaic-media/internal/middleware"
	"mosaic-media/internal/models"

	"github.com/go-chi/chi/v5"
)

// dashboardRequest reports whether the caller presented a valid bearer
// token. Drafts and deleted posts are dashboard-only; anonymous readers
// get published content regardless of the filters they send.
func dashboardRequest(r *http.Request) bool {
	return middleware.ClaimsFromContext(r.Context()) != nil
}

func (h *Handler) ListBlogsAPI(w http.ResponseWriter, r *http.Request) {
	filter := db.BlogFilter{
		Status:       r.URL.Query().Get("status"),
		CategorySlug: r.URL.Query().Get("category"),
	}
	if v := r.URL.Query().Get("featured"); v != "" {
		featured := v == "true" || v == "1"
		filter.Featured = &featured
	}
	if v := r.URL.Query().Get("section"); v != "" {
		filter.SectionID, _ = strconv.Atoi(v)
	}
	if !dashboardRequest(r) {
		filter.Status = models.StatusPublished
	}

	blogs, err := h.Store.ListBlogs(filter)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch blogs")
		return
	}

	respond(w, http.StatusOK, blogs)
}

// validateBlog checks the fields both create and update must agree on.
// allowDeleted admits the deleted status so an update can park a post
// there; create never starts a post deleted.
func validateBlog(b *models.Blog, allowDeleted bool) string {
	if strings.TrimSpace(b.Title) == "" {
		return "title is required"
	}
	if b.CategoryID == 0 {
		return "category is required"
	}
	switch b.Status {
	case "", models.StatusDraft, models.StatusPublished:
	case models.StatusDeleted:
		if !allowDeleted {
			return "status must be published or draft"
		}
	default:
		return "status must be published or draft"
	}
	return ""
}

func (h *Handler) CreateBlog(w http.ResponseWriter, r *http.Request) {
	var b models.Blog
	if err := decodeJSON(r, &b); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if msg := validateBlog(&b, false); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}

	if b.Slug == "" {
		b.Slug = content.Slugify(b.Title)
	}
	if b.Status == "" {
		b.Status = models.StatusDraft
	}
	if b.Tags == nil {
		b.Tags = []string{}
	}
	if b.Sections == nil {
		b.Sections = []models.ContentSection{}
	}

	if err := h.Store.CreateBlog(&b); err != nil {
		respondError(w, http.StatusConflict, "a blog with this slug already exists")
		return
	}

	respond(w, http.StatusCreated, b)
}

func (h *Handler) GetBlogBySlug(w http.ResponseWriter, r *http.Request) {
	blog, err := h.Store.GetBlogBySlug(chi.URLParam(r, "slug"))
	if err != nil || (blog.Status != models.StatusPublished && !dashboardRequest(r)) {
		respondError(w, http.StatusNotFound, "blog not found")
		return
	}
	respond(w, http.StatusOK, blog)
}

func (h *Handler) GetBlogByID(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.Store.GetBlogByID(id)
	if err != nil || (blog.Status != models.StatusPublished && !dashboardRequest(r)) {
		respondError(w, http.StatusNotFound, "blog not found")
		return
	}
	respond(w, http.StatusOK, blog)
}

func (h *Handler) updateBlog(w http.ResponseWriter, r *http.Request, existing *models.Blog) {
	b := *existing
	if err := decodeJSON(r, &b); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	b.ID = existing.ID

	if msg := validateBlog(&b, true); msg != "" {
		respondError(w, http.StatusBadRequest, msg)
		return
	}
	if b.Slug == "" {
		b.Slug = content.Slugify(b.Title)
	}

	if err := h.Store.UpdateBlog(&b); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update blog")
		return
	}

	respond(w, http.StatusOK, b)
}

func (h *Handler) UpdateBlogBySlug(w http.ResponseWriter, r *http.Request) {
	existing, err := h.Store.GetBlogBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, http.StatusNotFound, "blog not found")
		return
	}
	h.updateBlog(w, r, existing)
}

func (h *Handler) UpdateBlogByID(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Store.GetBlogByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "blog not found")
		return
	}
	h.updateBlog(w, r, existing)
}

// DeleteBlogBySlug soft-deletes: the post moves to the deleted state and
// stays restorable from the deleted-blogs screen.
func (h *Handler) DeleteBlogBySlug(w http.ResponseWriter, r *http.Request) {
	blog, err := h.Store.GetBlogBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		respondError(w, http.StatusNotFound, "blog not found")
		return
	}

	if err := h.Store.SoftDeleteBlog(blog.ID); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete blog")
		return
	}

	respond(w, http.StatusOK, map[string]any{"deleted": blog.Slug})
}

func (h *Handler) DeleteBlogByID(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if _, err := h.Store.GetBlogByID(id); err != nil {
		respondError(w, http.StatusNotFound, "blog not found")
		return
	}

	if err := h.Store.SoftDeleteBlog(id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete blog")
		return
	}

	respond(w, http.StatusOK, map[string]any{"deleted": id})
}

// PermanentDeleteBlog removes the row. Only reachable for posts already
// in the deleted state.
func (h *Handler) PermanentDeleteBlog(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	blog, err := h.Store.GetBlogByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "blog not found")
		return
	}
	if blog.Status != models.StatusDeleted {
		respondError(w, http.StatusConflict, "blog must be deleted before it can be removed permanently")
		return
	}

	if err := h.Store.HardDeleteBlog(id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete blog")
		return
	}

	respond(w, http.StatusOK, map[string]any{"deleted": id})
}
