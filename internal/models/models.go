package models

import "time"

// Blog lifecycle. Delete is a soft transition to StatusDeleted; the
// deleted-blogs screen restores by updating back to draft.
const (
	StatusPublished = "published"
	StatusDraft     = "draft"
	StatusDeleted   = "deleted"
)

// Display-section types and styles.
const (
	SectionFeatured = "featured"
	SectionLatest   = "latest"
	SectionCategory = "category"
	SectionCustom   = "custom"

	StyleGrid     = "grid"
	StyleList     = "list"
	StyleCarousel = "carousel"
)

type User struct {
	ID           int       `json:"id"`
	Email        string    `json:"email"`
	Role         string    `json:"role"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

// ContentSection is one block inside a blog post's body (distinct from
// the home-page display Section below).
type ContentSection struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image,omitempty"`
	List        []string `json:"list,omitempty"`
}

// Meta carries the SEO fields attached to a post.
type Meta struct {
	Title       string   `json:"title,omitempty"`
	Description string   `json:"description,omitempty"`
	Keywords    []string `json:"keywords,omitempty"`
}

type Author struct {
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Blog struct {
	ID          int              `json:"id"`
	Slug        string           `json:"slug"`
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Content     string           `json:"content"`
	MainImage   string           `json:"mainImage"`
	Status      string           `json:"status"`
	Featured    bool             `json:"featured"`
	CategoryID  int              `json:"category_id"`
	Category    string           `json:"category"`
	Tags        []string         `json:"tags"`
	Sections    []ContentSection `json:"sections"`
	Meta        Meta             `json:"meta"`
	Author      Author           `json:"author"`
	SectionID   *int             `json:"section,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

type Category struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	BlogCount   int       `json:"blogCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Section is the admin-configured home-page grouping of posts. Position
// defines display order; DisplayStyle is a presentation hint only.
type Section struct {
	ID           int       `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Type         string    `json:"type"`
	CategoryID   *int      `json:"category,omitempty"`
	Limit        int       `json:"limit"`
	Position     int       `json:"order"`
	DisplayStyle string    `json:"displayStyle"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SectionOrder is one element of the reorder payload.
type SectionOrder struct {
	ID       int `json:"id"`
	Position int `json:"order"`
}

type ProjectCategory struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Slug        string    `json:"slug"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

type Project struct {
	ID          int       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CategoryID  int       `json:"category_id"`
	Category    string    `json:"category"`
	MainImage   string    `json:"mainImage"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type ContactSubmission struct {
	ID          int       `json:"id"`
	FirstName   string    `json:"firstName"`
	LastName    string    `json:"lastName"`
	PhoneNumber string    `json:"phoneNumber"`
	Email       string    `json:"email"`
	Address     string    `json:"address"`
	Message     string    `json:"message"`
	CreatedAt   time.Time `json:"createdAt"`
}
