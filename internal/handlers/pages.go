package handlers

import (
	"log"
	"net/http"
	"strconv"

	"mosaic-media/internal/content"
	"mosaic-media/internal/db"
	"mosaic-media/internal/models"

	"github.com/go-chi/chi/v5"
)

const flashSession = "mosaic-flash"

// sectionView pairs a display section with its resolved posts for the
// home template.
type sectionView struct {
	Section models.Section
	Posts   []models.Blog
}

func (h *Handler) navCategories() []models.Category {
	categories, err := h.Store.ListCategories()
	if err != nil {
		log.Printf("nav categories: %v", err)
		return []models.Category{}
	}
	return categories
}

// footerPages lists the static pages for the footer links.
func (h *Handler) footerPages() []content.Page {
	pages, err := content.ListPages(h.contentDir)
	if err != nil {
		log.Printf("footer pages: %v", err)
		return nil
	}
	return pages
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	sections, err := h.Store.ListSections(true)
	if err != nil {
		log.Printf("home sections: %v", err)
		sections = []models.Section{}
	}

	views := []sectionView{}
	for _, s := range sections {
		posts, err := h.resolveSection(s)
		if err != nil {
			log.Printf("resolve section %d: %v", s.ID, err)
			continue
		}
		views = append(views, sectionView{Section: s, Posts: posts})
	}

	h.render(w, "home.html", map[string]any{
		"Sections":   views,
		"Categories": h.navCategories(),
	})
}

// shownWindow builds the load-more window from the ?shown query param.
func shownWindow(r *http.Request, total, initial, step int) content.Window {
	w := content.NewWindow(total, initial, step)
	if v := r.URL.Query().Get("shown"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			w = content.NewWindow(total, n, step)
		}
	}
	return w
}

func (h *Handler) BlogIndex(w http.ResponseWriter, r *http.Request) {
	blogs, err := h.Store.ListBlogs(db.BlogFilter{Status: models.StatusPublished})
	if err != nil {
		log.Printf("blog index: %v", err)
		blogs = []models.Blog{}
	}

	// First two published posts are the featured head slice.
	featured := blogs
	if len(featured) > 2 {
		featured = featured[:2]
	}
	rest := blogs[len(featured):]

	window := shownWindow(r, len(rest), content.BlogStep, content.BlogStep)

	h.render(w, "blog.html", map[string]any{
		"Featured":   featured,
		"Posts":      rest[:window.Visible],
		"Window":     window,
		"Categories": h.navCategories(),
	})
}

// SectionPosts is the "view all" page behind a home section, paging in
// ten posts at a time.
func (h *Handler) SectionPosts(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil || id <= 0 {
		http.NotFound(w, r)
		return
	}

	section, err := h.Store.GetSectionByID(id)
	if err != nil || !section.IsActive {
		http.NotFound(w, r)
		return
	}

	blogs := []models.Blog{}
	if filter, ok := h.sectionFilter(*section); ok {
		if blogs, err = h.Store.ListBlogs(filter); err != nil {
			log.Printf("section %d posts: %v", id, err)
			blogs = []models.Blog{}
		}
	}

	window := shownWindow(r, len(blogs), content.SectionPostStep, content.SectionPostStep)

	h.render(w, "section.html", map[string]any{
		"Section":    section,
		"Posts":      blogs[:window.Visible],
		"Window":     window,
		"Categories": h.navCategories(),
	})
}

func (h *Handler) BlogDetail(w http.ResponseWriter, r *http.Request) {
	blog, err := h.Store.GetBlogBySlug(chi.URLParam(r, "slug"))
	if err != nil || blog.Status != models.StatusPublished {
		http.NotFound(w, r)
		return
	}

	body, err := content.RenderMarkdown(blog.Content)
	if err != nil {
		log.Printf("render blog %s: %v", blog.Slug, err)
	}

	h.render(w, "blog_detail.html", map[string]any{
		"Blog":       blog,
		"Body":       body,
		"ReadTime":   content.ReadTime(blog.Content),
		"Categories": h.navCategories(),
	})
}

func (h *Handler) CategoryPage(w http.ResponseWriter, r *http.Request) {
	category, err := h.Store.GetCategoryBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	blogs, err := h.Store.ListBlogs(db.BlogFilter{
		Status:       models.StatusPublished,
		CategorySlug: category.Slug,
	})
	if err != nil {
		log.Printf("category %s: %v", category.Slug, err)
		blogs = []models.Blog{}
	}

	window := shownWindow(r, len(blogs), content.BlogStep, content.BlogStep)

	h.render(w, "category.html", map[string]any{
		"Category":   category,
		"Posts":      blogs[:window.Visible],
		"Window":     window,
		"Categories": h.navCategories(),
	})
}

func (h *Handler) ProjectsPage(w http.ResponseWriter, r *http.Request) {
	projects, err := h.Store.ListProjects(r.URL.Query().Get("category"))
	if err != nil {
		log.Printf("projects page: %v", err)
		projects = []models.Project{}
	}

	window := shownWindow(r, len(projects), content.ProjectStep*2, content.ProjectStep)

	categories, err := h.Store.ListProjectCategories()
	if err != nil {
		categories = []models.ProjectCategory{}
	}

	h.render(w, "projects.html", map[string]any{
		"Projects":          projects[:window.Visible],
		"Window":            window,
		"ProjectCategories": categories,
		"Categories":        h.navCategories(),
	})
}

func (h *Handler) StaticPage(w http.ResponseWriter, r *http.Request) {
	page, err := content.LoadPage(h.contentDir, chi.URLParam(r, "slug"))
	if err != nil {
		http.NotFound(w, r)
		return
	}

	h.render(w, "page.html", map[string]any{
		"Page":       page,
		"Categories": h.navCategories(),
	})
}

func (h *Handler) ContactPage(w http.ResponseWriter, r *http.Request) {
	session, _ := h.Sessions.Get(r, flashSession)
	flashes := session.Flashes()
	session.Save(r, w)

	var flash any
	if len(flashes) > 0 {
		flash = flashes[0]
	}

	h.render(w, "contact.html", map[string]any{
		"Flash":      flash,
		"Categories": h.navCategories(),
	})
}

// ContactSubmit handles the HTML form: on success it sets a flash and
// redirects so a refresh cannot resubmit; on validation failure it
// re-renders with the submitted values preserved.
func (h *Handler) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	s := models.ContactSubmission{
		FirstName:   r.FormValue("first_name"),
		LastName:    r.FormValue("last_name"),
		PhoneNumber: r.FormValue("phone_number"),
		Email:       r.FormValue("email"),
		Address:     r.FormValue("address"),
		Message:     r.FormValue("message"),
	}

	if msg := validateSubmission(&s); msg != "" {
		w.WriteHeader(http.StatusBadRequest)
		h.render(w, "contact.html", map[string]any{
			"Error":      msg,
			"Form":       s,
			"Categories": h.navCategories(),
		})
		return
	}

	if err := h.Store.CreateContactSubmission(&s); err != nil {
		log.Printf("contact submit: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		h.render(w, "contact.html", map[string]any{
			"Error":      "something went wrong, please try again",
			"Form":       s,
			"Categories": h.navCategories(),
		})
		return
	}

	session, _ := h.Sessions.Get(r, flashSession)
	session.AddFlash("Thanks for reaching out! We will get back to you soon.")
	session.Save(r, w)

	http.Redirect(w, r, "/contact", http.StatusSeeOther)
}
