package handlers

import (
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"
	"strconv"
	"sync"

	"mosaic-media/internal/config"
	"mosaic-media/internal/db"
	"mosaic-media/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

// Store is the persistence surface the handlers need. *db.Database
// satisfies it; tests substitute a stub.
type Store interface {
	CreateUser(email, passwordHash, role string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)

	CreateBlog(b *models.Blog) error
	ListBlogs(f db.BlogFilter) ([]models.Blog, error)
	GetBlogBySlug(slug string) (*models.Blog, error)
	GetBlogByID(id int) (*models.Blog, error)
	UpdateBlog(b *models.Blog) error
	SoftDeleteBlog(id int) error
	HardDeleteBlog(id int) error

	CreateCategory(c *models.Category) error
	ListCategories() ([]models.Category, error)
	GetCategoryByID(id int) (*models.Category, error)
	GetCategoryBySlug(slug string) (*models.Category, error)
	UpdateCategory(c *models.Category) error
	DeleteCategory(id int) error

	CreateSection(s *models.Section) error
	ListSections(activeOnly bool) ([]models.Section, error)
	GetSectionByID(id int) (*models.Section, error)
	UpdateSection(s *models.Section) error
	DeleteSection(id int) error
	ReorderSections(orders []models.SectionOrder) error

	CreateProject(p *models.Project) error
	ListProjects(categorySlug string) ([]models.Project, error)
	GetProjectByID(id int) (*models.Project, error)
	UpdateProject(p *models.Project) error
	DeleteProject(id int) error

	CreateProjectCategory(c *models.ProjectCategory) error
	ListProjectCategories() ([]models.ProjectCategory, error)
	GetProjectCategoryByID(id int) (*models.ProjectCategory, error)
	UpdateProjectCategory(c *models.ProjectCategory) error
	DeleteProjectCategory(id int) error

	CreateContactSubmission(s *models.ContactSubmission) error
	ListContactSubmissions() ([]models.ContactSubmission, error)
	DeleteContactSubmission(id int) error
}

type Handler struct {
	Store     Store
	Sessions  *sessions.CookieStore
	SiteTitle string
	BaseURL   string

	uploadDir    string
	contentDir   string
	templatesDir string

	mu        sync.RWMutex
	templates *template.Template
}

func New(store Store, sessionStore *sessions.CookieStore, cfg *config.Config) *Handler {
	tmpl := template.Must(template.ParseGlob(cfg.TemplatesDir + "/*.html"))
	return &Handler{
		Store:        store,
		Sessions:     sessionStore,
		SiteTitle:    cfg.SiteTitle,
		BaseURL:      cfg.BaseURL,
		uploadDir:    cfg.UploadDir,
		contentDir:   cfg.ContentDir,
		templatesDir: cfg.TemplatesDir,
		templates:    tmpl,
	}
}

func (h *Handler) render(w http.ResponseWriter, name string, data map[string]any) {
	if data == nil {
		data = map[string]any{}
	}
	data["SiteTitle"] = h.SiteTitle
	data["BaseURL"] = h.BaseURL
	data["Pages"] = h.footerPages()

	h.mu.RLock()
	tmpl := h.templates
	h.mu.RUnlock()

	if err := tmpl.ExecuteTemplate(w, name, data); err != nil {
		log.Printf("template %s: %v", name, err)
	}
}

// ReloadTemplates re-parses the template directory. Used by the
// dev-mode file watcher.
func (h *Handler) ReloadTemplates() error {
	tmpl, err := template.ParseGlob(h.templatesDir + "/*.html")
	if err != nil {
		return err
	}
	h.mu.Lock()
	h.templates = tmpl
	h.mu.Unlock()
	return nil
}

// envelope is the single response shape of the dashboard API, replacing
// the per-page defensive array/object checks of the old client.
type envelope struct {
	Success bool   `json:"success"`
	Data    any    `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
}

func respond(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: true, Data: data})
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(envelope{Success: false, Error: msg})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid request body")
	}
	return nil
}

func urlID(r *http.Request) (int, error) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id")
	}
	return id, nil
}
