package db

import (
	"context"

	"mosaic-media/internal/models"
)

func (db *Database) CreateCategory(c *models.Category) error {
	ctx := context.Background()
	return db.Pool.QueryRow(ctx,
		"INSERT INTO categories (name, slug, description, status) VALUES ($1, $2, $3, $4) RETURNING id, created_at",
		c.Name, c.Slug, c.Description, c.Status,
	).Scan(&c.ID, &c.CreatedAt)
}

// ListCategories returns all categories with a derived count of their
// non-deleted posts.
func (db *Database) ListCategories() ([]models.Category, error) {
	ctx := context.Background()
	rows, err := db.Pool.Query(ctx,
		`SELECT c.id, c.name, c.slug, c.description, c.status, c.created_at,
			COUNT(b.id) FILTER (WHERE b.status <> 'deleted') AS blog_count
		 FROM categories c
		 LEFT JOIN blogs b ON b.category_id = c.id
		 GROUP BY c.id
		 ORDER BY c.name`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.Category{}
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Status, &c.CreatedAt, &c.BlogCount); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (db *Database) GetCategoryByID(id int) (*models.Category, error) {
	ctx := context.Background()
	var c models.Category

	err := db.Pool.QueryRow(ctx,
		`SELECT c.id, c.name, c.slug, c.description, c.status, c.created_at,
			COUNT(b.id) FILTER (WHERE b.status <> 'deleted') AS blog_count
		 FROM categories c
		 LEFT JOIN blogs b ON b.category_id = c.id
		 WHERE c.id = $1
		 GROUP BY c.id`, id,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Status, &c.CreatedAt, &c.BlogCount)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (db *Database) GetCategoryBySlug(slug string) (*models.Category, error) {
	ctx := context.Background()
	var c models.Category

	err := db.Pool.QueryRow(ctx,
		`SELECT c.id, c.name, c.slug, c.description, c.status, c.created_at,
			COUNT(b.id) FILTER (WHERE b.status <> 'deleted') AS blog_count
		 FROM categories c
		 LEFT JOIN blogs b ON b.category_id = c.id
		 WHERE c.slug = $1
		 GROUP BY c.id`, slug,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.Status, &c.CreatedAt, &c.BlogCount)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (db *Database) UpdateCategory(c *models.Category) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx,
		"UPDATE categories SET name = $1, slug = $2, description = $3, status = $4 WHERE id = $5",
		c.Name, c.Slug, c.Description, c.Status, c.ID)
	return err
}

func (db *Database) DeleteCategory(id int) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "DELETE FROM categories WHERE id = $1", id)
	return err
}
