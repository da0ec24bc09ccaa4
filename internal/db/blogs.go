package db

import (
	"context"
	"encoding/json"
	"strconv"

	"mosaic-media/internal/models"

	"github.com/jackc/pgx/v5"
)

// BlogFilter narrows ListBlogs. Zero values mean "no filter".
type BlogFilter struct {
	Status       string
	CategorySlug string
	Featured     *bool
	SectionID    int
}

const blogColumns = `b.id, b.slug, b.title, b.description, b.content, b.main_image,
	b.status, b.featured, COALESCE(b.category_id, 0), COALESCE(c.name, ''),
	b.tags, b.sections, b.meta, b.author, b.section_id, b.created_at, b.updated_at`

func scanBlog(row pgx.Row) (*models.Blog, error) {
	var b models.Blog
	var tagsJSON, sectionsJSON, metaJSON, authorJSON []byte

	err := row.Scan(&b.ID, &b.Slug, &b.Title, &b.Description, &b.Content, &b.MainImage,
		&b.Status, &b.Featured, &b.CategoryID, &b.Category,
		&tagsJSON, &sectionsJSON, &metaJSON, &authorJSON, &b.SectionID, &b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(tagsJSON, &b.Tags); err != nil {
		b.Tags = []string{}
	}
	if err := json.Unmarshal(sectionsJSON, &b.Sections); err != nil {
		b.Sections = []models.ContentSection{}
	}
	if err := json.Unmarshal(metaJSON, &b.Meta); err != nil {
		b.Meta = models.Meta{}
	}
	if err := json.Unmarshal(authorJSON, &b.Author); err != nil {
		b.Author = models.Author{}
	}

	return &b, nil
}

func (db *Database) CreateBlog(b *models.Blog) error {
	ctx := context.Background()

	tagsJSON, err := json.Marshal(b.Tags)
	if err != nil {
		return err
	}
	sectionsJSON, err := json.Marshal(b.Sections)
	if err != nil {
		return err
	}
	metaJSON, err := json.Marshal(b.Meta)
	if err != nil {
		return err
	}
	authorJSON, err := json.Marshal(b.Author)
	if err != nil {
		return err
	}

	var categoryID any
	if b.CategoryID != 0 {
		categoryID = b.CategoryID
	}

	return db.Pool.QueryRow(ctx,
		`INSERT INTO blogs (slug, title, description, content, main_image, status, featured,
			category_id, tags, sections, meta, author, section_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		 RETURNING id, created_at, updated_at`,
		b.Slug, b.Title, b.Description, b.Content, b.MainImage, b.Status, b.Featured,
		categoryID, tagsJSON, sectionsJSON, metaJSON, authorJSON, b.SectionID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
}

func (db *Database) ListBlogs(f BlogFilter) ([]models.Blog, error) {
	ctx := context.Background()

	query := `SELECT ` + blogColumns + `
		FROM blogs b
		LEFT JOIN categories c ON b.category_id = c.id
		WHERE 1=1`
	args := []any{}

	if f.Status != "" {
		args = append(args, f.Status)
		query += ` AND b.status = $` + strconv.Itoa(len(args))
	} else {
		query += ` AND b.status <> 'deleted'`
	}
	if f.CategorySlug != "" {
		args = append(args, f.CategorySlug)
		query += ` AND c.slug = $` + strconv.Itoa(len(args))
	}
	if f.Featured != nil {
		args = append(args, *f.Featured)
		query += ` AND b.featured = $` + strconv.Itoa(len(args))
	}
	if f.SectionID != 0 {
		args = append(args, f.SectionID)
		query += ` AND b.section_id = $` + strconv.Itoa(len(args))
	}

	query += ` ORDER BY b.created_at DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	blogs := []models.Blog{}
	for rows.Next() {
		b, err := scanBlog(rows)
		if err != nil {
			return nil, err
		}
		blogs = append(blogs, *b)
	}

	return blogs, rows.Err()
}

func (db *Database) GetBlogBySlug(slug string) (*models.Blog, error) {
	ctx := context.Background()
	row := db.Pool.QueryRow(ctx,
		`SELECT `+blogColumns+`
		 FROM blogs b
		 LEFT JOIN categories c ON b.category_id = c.id
		 WHERE b.slug = $1`, slug)
	return scanBlog(row)
}

func (db *Database) GetBlogByID(id int) (*models.Blog, error) {
	ctx := context.Background()
	row := db.Pool.QueryRow(ctx,
		`SELECT `+blogColumns+`
		 FROM blogs b
		 LEFT JOIN categories c ON b.category_id = c.id
		 WHERE b.id = $1`, id)
	return scanBlog(row)
}

func (db *Database) UpdateBlog(b *models.Blog) error {
	ctx := context.Background()

	tagsJSON, err := json.Marshal(b.Tags)
	if err != nil {
		return err
	}
	sectionsJSON, err := json.Marshal(b.Sections)
	if err != nil {
		return err
	}
	metaJSON, err := json.Marshal(b.Meta)
	if err != nil {
		return err
	}
	authorJSON, err := json.Marshal(b.Author)
	if err != nil {
		return err
	}

	var categoryID any
	if b.CategoryID != 0 {
		categoryID = b.CategoryID
	}

	return db.Pool.QueryRow(ctx,
		`UPDATE blogs SET slug = $1, title = $2, description = $3, content = $4,
			main_image = $5, status = $6, featured = $7, category_id = $8,
			tags = $9, sections = $10, meta = $11, author = $12, section_id = $13,
			updated_at = CURRENT_TIMESTAMP
		 WHERE id = $14
		 RETURNING updated_at`,
		b.Slug, b.Title, b.Description, b.Content, b.MainImage, b.Status, b.Featured,
		categoryID, tagsJSON, sectionsJSON, metaJSON, authorJSON, b.SectionID, b.ID,
	).Scan(&b.UpdatedAt)
}

// SoftDeleteBlog moves a post to the deleted state. It stays restorable
// from the deleted-blogs screen until hard-deleted.
func (db *Database) SoftDeleteBlog(id int) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx,
		"UPDATE blogs SET status = 'deleted', updated_at = CURRENT_TIMESTAMP WHERE id = $1", id)
	return err
}

func (db *Database) HardDeleteBlog(id int) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "DELETE FROM blogs WHERE id = $1", id)
	return err
}
