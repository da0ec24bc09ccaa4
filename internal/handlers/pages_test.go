package handlers

import (
	"fmt"
	"html/template"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mosaic-media/internal/models"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

func newPageHandler(t *testing.T, store *stubStore, contentDir string) *Handler {
	t.Helper()

	tmpl, err := template.ParseGlob(filepath.Join("..", "..", "web", "templates", "*.html"))
	if err != nil {
		t.Fatalf("parse templates: %v", err)
	}

	return &Handler{
		Store:      store,
		Sessions:   sessions.NewCookieStore([]byte("test-session")),
		SiteTitle:  "Test Site",
		contentDir: contentDir,
		templates:  tmpl,
	}
}

func pageRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.Home)
	r.Get("/section/{id}", h.SectionPosts)
	return r
}

func getPage(t *testing.T, r chi.Router, path string) *httptest.ResponseRecorder {
	t.Helper()
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	return rr
}

func postCards(rr *httptest.ResponseRecorder) int {
	return strings.Count(rr.Body.String(), `class="post-card"`)
}

func TestSectionPostsPagesTenAtATime(t *testing.T) {
	store := &stubStore{sections: []models.Section{
		{ID: 1, Title: "Editor Picks", Type: models.SectionCustom, IsActive: true},
	}}
	sid := 1
	for i := 1; i <= 25; i++ {
		store.blogs = append(store.blogs, models.Blog{
			ID: i, Slug: fmt.Sprintf("post-%d", i), Title: fmt.Sprintf("Post %d", i),
			Status: models.StatusPublished, CategoryID: 1, SectionID: &sid,
		})
	}
	r := pageRouter(newPageHandler(t, store, t.TempDir()))

	rr := getPage(t, r, "/section/1")
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	if got := postCards(rr); got != 10 {
		t.Errorf("visible posts = %d, want first 10", got)
	}
	if !strings.Contains(rr.Body.String(), "/section/1?shown=20") {
		t.Error("load-more link for the next 10 posts missing")
	}

	rr = getPage(t, r, "/section/1?shown=20")
	if got := postCards(rr); got != 20 {
		t.Errorf("visible posts = %d, want 20", got)
	}

	// Past the end the window clamps and the link disappears.
	rr = getPage(t, r, "/section/1?shown=99")
	if got := postCards(rr); got != 25 {
		t.Errorf("visible posts = %d, want all 25", got)
	}
	if strings.Contains(rr.Body.String(), "Load more") {
		t.Error("load-more link shown with nothing left to load")
	}
}

func TestSectionPostsHidesInactiveSection(t *testing.T) {
	store := &stubStore{sections: []models.Section{
		{ID: 1, Title: "Retired", Type: models.SectionLatest, IsActive: false},
	}}
	r := pageRouter(newPageHandler(t, store, t.TempDir()))

	if rr := getPage(t, r, "/section/1"); rr.Code != http.StatusNotFound {
		t.Errorf("inactive section code = %d, want 404", rr.Code)
	}
	if rr := getPage(t, r, "/section/999"); rr.Code != http.StatusNotFound {
		t.Errorf("unknown section code = %d, want 404", rr.Code)
	}
}

func TestFooterLinksComeFromContentPages(t *testing.T) {
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "pages"), 0o755); err != nil {
		t.Fatal(err)
	}
	page := "---\ntitle: Imprint\n---\nLegal details.\n"
	if err := os.WriteFile(filepath.Join(dir, "pages", "imprint.md"), []byte(page), 0o644); err != nil {
		t.Fatal(err)
	}

	r := pageRouter(newPageHandler(t, &stubStore{}, dir))

	rr := getPage(t, r, "/")
	if rr.Code != http.StatusOK {
		t.Fatalf("code = %d", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `href="/pages/imprint"`) {
		t.Errorf("footer is missing the imprint link: %s", rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Imprint") {
		t.Error("footer link text missing")
	}
}

func TestPostCardImageFallbackAssetExists(t *testing.T) {
	store := &stubStore{
		sections: []models.Section{{ID: 1, Title: "Latest", Type: models.SectionLatest, IsActive: true}},
		blogs: []models.Blog{{
			ID: 1, Slug: "pic", Title: "Pic", Status: models.StatusPublished,
			CategoryID: 1, MainImage: "/uploads/gone.jpg",
		}},
	}
	r := pageRouter(newPageHandler(t, store, t.TempDir()))

	rr := getPage(t, r, "/")
	if !strings.Contains(rr.Body.String(), "/static/placeholder.png") {
		t.Fatal("post card does not fall back to the placeholder image")
	}

	// The fallback target has to actually ship with the site.
	if _, err := os.Stat(filepath.Join("..", "..", "web", "static", "placeholder.png")); err != nil {
		t.Errorf("placeholder asset missing: %v", err)
	}
}
