package db

import (
	"context"
	"encoding/json"

	"mosaic-media/internal/models"
)

func (db *Database) CreateProject(p *models.Project) error {
	ctx := context.Background()

	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}

	var categoryID any
	if p.CategoryID != 0 {
		categoryID = p.CategoryID
	}

	return db.Pool.QueryRow(ctx,
		`INSERT INTO projects (title, description, category_id, main_image, images)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
		p.Title, p.Description, categoryID, p.MainImage, imagesJSON,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (db *Database) ListProjects(categorySlug string) ([]models.Project, error) {
	ctx := context.Background()

	query := `SELECT p.id, p.title, p.description, COALESCE(p.category_id, 0), COALESCE(pc.name, ''),
			p.main_image, p.images, p.created_at, p.updated_at
		FROM projects p
		LEFT JOIN project_categories pc ON p.category_id = pc.id`
	args := []any{}
	if categorySlug != "" {
		query += ` WHERE pc.slug = $1`
		args = append(args, categorySlug)
	}
	query += ` ORDER BY p.created_at DESC`

	rows, err := db.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	projects := []models.Project{}
	for rows.Next() {
		var p models.Project
		var imagesJSON []byte

		err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.CategoryID, &p.Category,
			&p.MainImage, &imagesJSON, &p.CreatedAt, &p.UpdatedAt)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
			p.Images = []string{}
		}

		projects = append(projects, p)
	}

	return projects, rows.Err()
}

func (db *Database) GetProjectByID(id int) (*models.Project, error) {
	ctx := context.Background()
	var p models.Project
	var imagesJSON []byte

	err := db.Pool.QueryRow(ctx,
		`SELECT p.id, p.title, p.description, COALESCE(p.category_id, 0), COALESCE(pc.name, ''),
			p.main_image, p.images, p.created_at, p.updated_at
		 FROM projects p
		 LEFT JOIN project_categories pc ON p.category_id = pc.id
		 WHERE p.id = $1`, id,
	).Scan(&p.ID, &p.Title, &p.Description, &p.CategoryID, &p.Category,
		&p.MainImage, &imagesJSON, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(imagesJSON, &p.Images); err != nil {
		p.Images = []string{}
	}

	return &p, nil
}

func (db *Database) UpdateProject(p *models.Project) error {
	ctx := context.Background()

	imagesJSON, err := json.Marshal(p.Images)
	if err != nil {
		return err
	}

	var categoryID any
	if p.CategoryID != 0 {
		categoryID = p.CategoryID
	}

	return db.Pool.QueryRow(ctx,
		`UPDATE projects SET title = $1, description = $2, category_id = $3, main_image = $4,
			images = $5, updated_at = CURRENT_TIMESTAMP
		 WHERE id = $6 RETURNING updated_at`,
		p.Title, p.Description, categoryID, p.MainImage, imagesJSON, p.ID,
	).Scan(&p.UpdatedAt)
}

func (db *Database) DeleteProject(id int) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "DELETE FROM projects WHERE id = $1", id)
	return err
}

func (db *Database) CreateProjectCategory(c *models.ProjectCategory) error {
	ctx := context.Background()
	return db.Pool.QueryRow(ctx,
		"INSERT INTO project_categories (name, slug, description) VALUES ($1, $2, $3) RETURNING id, created_at",
		c.Name, c.Slug, c.Description,
	).Scan(&c.ID, &c.CreatedAt)
}

func (db *Database) ListProjectCategories() ([]models.ProjectCategory, error) {
	ctx := context.Background()
	rows, err := db.Pool.Query(ctx,
		"SELECT id, name, slug, description, created_at FROM project_categories ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := []models.ProjectCategory{}
	for rows.Next() {
		var c models.ProjectCategory
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, c)
	}

	return categories, rows.Err()
}

func (db *Database) GetProjectCategoryByID(id int) (*models.ProjectCategory, error) {
	ctx := context.Background()
	var c models.ProjectCategory

	err := db.Pool.QueryRow(ctx,
		"SELECT id, name, slug, description, created_at FROM project_categories WHERE id = $1", id,
	).Scan(&c.ID, &c.Name, &c.Slug, &c.Description, &c.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &c, nil
}

func (db *Database) UpdateProjectCategory(c *models.ProjectCategory) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx,
		"UPDATE project_categories SET name = $1, slug = $2, description = $3 WHERE id = $4",
		c.Name, c.Slug, c.Description, c.ID)
	return err
}

func (db *Database) DeleteProjectCategory(id int) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "DELETE FROM project_categories WHERE id = $1", id)
	return err
}
