package main

import (
	"net/http"

	"mosaic-media/internal/config"
	"mosaic-media/internal/handlers"
	"mosaic-media/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

func routes(h *handlers.Handler, cfg *config.Config) chi.Router {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Cache-Control", "no-cache, no-store, must-revalidate")
			w.Header().Set("Pragma", "no-cache")
			w.Header().Set("Expires", "0")
			next.ServeHTTP(w, r)
		})
	})

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.UploadDir))))

	// Public site
	r.Get("/", h.Home)
	r.Get("/blog", h.BlogIndex)
	r.Get("/blog/{slug}", h.BlogDetail)
	r.Get("/category/{slug}", h.CategoryPage)
	r.Get("/section/{id}", h.SectionPosts)
	r.Get("/projects", h.ProjectsPage)
	r.Get("/contact", h.ContactPage)
	r.Post("/contact", h.ContactSubmit)
	r.Get("/pages/{slug}", h.StaticPage)

	// Dashboard API
	r.Route("/api", func(r chi.Router) {
		r.Post("/auth/login", h.Login)
		r.Post("/auth/register", h.Register)
		r.Post("/contact/submit", h.SubmitContact)

		// Blog reads serve both the public site and the dashboard: with
		// a bearer token they cover drafts and deleted posts, without
		// one the handlers restrict them to published content.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(handlers.JWTSecret))
			r.Get("/blog", h.ListBlogsAPI)
			r.Get("/blog/slug/{slug}", h.GetBlogBySlug)
			r.Get("/blog/{id}", h.GetBlogByID)
		})
		r.Get("/categories", h.ListCategoriesAPI)
		r.Get("/categories/{id}", h.GetCategory)
		r.Get("/sections", h.ListSectionsAPI)
		r.Get("/sections/{id}", h.GetSection)
		r.Get("/projects", h.ListProjectsAPI)
		r.Get("/projects/{id}", h.GetProject)
		r.Get("/project-categories", h.ListProjectCategoriesAPI)
		r.Get("/project-categories/{id}", h.GetProjectCategory)

		// Everything below requires an admin bearer token.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(handlers.JWTSecret))
			r.Get("/dashboard", h.Dashboard)

			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Post("/blog", h.CreateBlog)
				r.Put("/blog/slug/{slug}", h.UpdateBlogBySlug)
				r.Delete("/blog/slug/{slug}", h.DeleteBlogBySlug)
				r.Put("/blog/{id}", h.UpdateBlogByID)
				r.Delete("/blog/{id}", h.DeleteBlogByID)
				r.Delete("/blog/{id}/permanent", h.PermanentDeleteBlog)

				r.Post("/categories", h.CreateCategory)
				r.Put("/categories/{id}", h.UpdateCategory)
				r.Delete("/categories/{id}", h.DeleteCategory)

				r.Post("/sections", h.CreateSection)
				r.Put("/sections/reorder", h.ReorderSections)
				r.Patch("/sections/reorder", h.ReorderSections)
				r.Put("/sections/{id}", h.UpdateSection)
				r.Delete("/sections/{id}", h.DeleteSection)

				r.Post("/projects", h.CreateProject)
				r.Put("/projects/{id}", h.UpdateProject)
				r.Delete("/projects/{id}", h.DeleteProject)

				r.Post("/project-categories", h.CreateProjectCategory)
				r.Put("/project-categories/{id}", h.UpdateProjectCategory)
				r.Delete("/project-categories/{id}", h.DeleteProjectCategory)

				r.Get("/contact/all", h.ListContactSubmissions)
				r.Delete("/contact/{id}", h.DeleteContactSubmission)

				r.Post("/upload", h.Upload)
			})
		})
	})

	return r
}
