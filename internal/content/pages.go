package content

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
)

// Page is a static marketing page (about, privacy, terms) kept as a
// markdown file with YAML frontmatter under <contentDir>/pages/.
type Page struct {
	Slug            string
	Title           string        `yaml:"title"`
	MetaDescription string        `yaml:"description"`
	MetaKeywords    []string      `yaml:"keywords"`
	Body            template.HTML `yaml:"-"`
}

// LoadPage reads and renders a single static page by slug.
func LoadPage(contentDir, slug string) (*Page, error) {
	// Slugs come from the URL; keep them to a single path element.
	if slug == "" || strings.ContainsAny(slug, "/\\.") {
		return nil, fmt.Errorf("invalid page slug %q", slug)
	}

	path := filepath.Join(contentDir, "pages", slug+".md")
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var page Page
	body, err := frontmatter.Parse(f, &page)
	if err != nil {
		return nil, fmt.Errorf("failed to parse frontmatter in %s: %w", path, err)
	}

	html, err := RenderMarkdown(string(body))
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", path, err)
	}

	page.Slug = slug
	page.Body = html
	if page.Title == "" {
		page.Title = Titleize(slug)
	}

	return &page, nil
}

// ListPages returns all static pages, for nav links and sitemaps.
func ListPages(contentDir string) ([]Page, error) {
	dir := filepath.Join(contentDir, "pages")
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []Page{}, nil
		}
		return nil, err
	}

	pages := []Page{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".md") {
			continue
		}
		slug := strings.TrimSuffix(entry.Name(), ".md")
		page, err := LoadPage(contentDir, slug)
		if err != nil {
			return nil, err
		}
		pages = append(pages, *page)
	}

	return pages, nil
}
