package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"mosaic-media/internal/content"
	"mosaic-media/internal/models"
	"mosaic-media/internal/storage"
)

func (h *Handler) ListProjectsAPI(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ListProjects(r.URL.Query().Get("category"))
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch projects")
		return
	}
	respond(w, http.StatusOK, projects)
}

// CreateProject accepts multipart/form-data: text fields plus an
// "images" file list. The first saved image becomes the main image
// unless a mainImage URL was sent explicitly.
func (h *Handler) CreateProject(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	title := r.FormValue("title")
	description := r.FormValue("description")
	categoryID, _ := strconv.Atoi(r.FormValue("category"))

	if strings.TrimSpace(title) == "" {
		respondError(w, http.StatusBadRequest, "title is required")
		return
	}
	if categoryID == 0 {
		respondError(w, http.StatusBadRequest, "category is required")
		return
	}

	files := r.MultipartForm.File["images"]
	if len(files) == 0 {
		respondError(w, http.StatusBadRequest, "at least one image is required")
		return
	}

	imagePaths, err := storage.SaveImages(h.uploadDir, files)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	project := &models.Project{
		Title:       title,
		Description: description,
		CategoryID:  categoryID,
		MainImage:   r.FormValue("mainImage"),
		Images:      imagePaths,
	}
	if project.MainImage == "" {
		project.MainImage = imagePaths[0]
	}

	if err := h.Store.CreateProject(project); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to create project")
		return
	}

	respond(w, http.StatusCreated, project)
}

func (h *Handler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	project, err := h.Store.GetProjectByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}
	respond(w, http.StatusOK, project)
}

// UpdateProject keeps existing images when no new files are attached.
func (h *Handler) UpdateProject(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Store.GetProjectByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "project not found")
		return
	}

	if err := r.ParseMultipartForm(32 << 20); err != nil {
		respondError(w, http.StatusBadRequest, "expected multipart form data")
		return
	}

	project := *existing
	if v := r.FormValue("title"); v != "" {
		project.Title = v
	}
	if v := r.FormValue("description"); v != "" {
		project.Description = v
	}
	if v := r.FormValue("category"); v != "" {
		project.CategoryID, _ = strconv.Atoi(v)
	}
	if v := r.FormValue("mainImage"); v != "" {
		project.MainImage = v
	}

	if files := r.MultipartForm.File["images"]; len(files) > 0 {
		imagePaths, err := storage.SaveImages(h.uploadDir, files)
		if err != nil {
			respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		project.Images = imagePaths
		project.MainImage = imagePaths[0]
	}

	if err := h.Store.UpdateProject(&project); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update project")
		return
	}

	respond(w, http.StatusOK, project)
}

func (h *Handler) DeleteProject(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.DeleteProject(id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete project")
		return
	}

	respond(w, http.StatusOK, map[string]any{"deleted": id})
}

func (h *Handler) ListProjectCategoriesAPI(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Store.ListProjectCategories()
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch project categories")
		return
	}
	respond(w, http.StatusOK, categories)
}

func (h *Handler) CreateProjectCategory(w http.ResponseWriter, r *http.Request) {
	var c models.ProjectCategory
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

	if err := h.Store.CreateProjectCategory(&c); err != nil {
		respondError(w, http.StatusConflict, "a project category with this slug already exists")
		return
	}

	respond(w, http.StatusCreated, c)
}

func (h *Handler) GetProjectCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.Store.GetProjectCategoryByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "project category not found")
		return
	}
	respond(w, http.StatusOK, category)
}

func (h *Handler) UpdateProjectCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	existing, err := h.Store.GetProjectCategoryByID(id)
	if err != nil {
		respondError(w, http.StatusNotFound, "project category not found")
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

	if err := h.Store.UpdateProjectCategory(&c); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to update project category")
		return
	}

	respond(w, http.StatusOK, c)
}

func (h *Handler) DeleteProjectCategory(w http.ResponseWriter, r *http.Request) {
	id, err := urlID(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.Store.DeleteProjectCategory(id); err != nil {
		respondError(w, http.StatusInternalServerError, "failed to delete project category")
		return
	}

	respond(w, http.StatusOK, map[string]any{"deleted": id})
}
