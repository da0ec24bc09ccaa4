package db

import (
	"context"

	"mosaic-media/internal/models"
)

func (db *Database) CreateSection(s *models.Section) error {
	ctx := context.Background()
	return db.Pool.QueryRow(ctx,
		`INSERT INTO display_sections (title, description, type, category_id, item_limit, position, display_style, is_active)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8) RETURNING id, created_at`,
		s.Title, s.Description, s.Type, s.CategoryID, s.Limit, s.Position, s.DisplayStyle, s.IsActive,
	).Scan(&s.ID, &s.CreatedAt)
}

// ListSections returns sections in display order. activeOnly is used by
// the public home page; the dashboard lists everything.
func (db *Database) ListSections(activeOnly bool) ([]models.Section, error) {
	ctx := context.Background()

	query := `SELECT id, title, description, type, category_id, item_limit, position, display_style, is_active, created_at
		FROM display_sections`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY position, id`

	rows, err := db.Pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sections := []models.Section{}
	for rows.Next() {
		var s models.Section
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Type, &s.CategoryID,
			&s.Limit, &s.Position, &s.DisplayStyle, &s.IsActive, &s.CreatedAt); err != nil {
			return nil, err
		}
		sections = append(sections, s)
	}

	return sections, rows.Err()
}

func (db *Database) GetSectionByID(id int) (*models.Section, error) {
	ctx := context.Background()
	var s models.Section

	err := db.Pool.QueryRow(ctx,
		`SELECT id, title, description, type, category_id, item_limit, position, display_style, is_active, created_at
		 FROM display_sections WHERE id = $1`, id,
	).Scan(&s.ID, &s.Title, &s.Description, &s.Type, &s.CategoryID,
		&s.Limit, &s.Position, &s.DisplayStyle, &s.IsActive, &s.CreatedAt)
	if err != nil {
		return nil, err
	}

	return &s, nil
}

func (db *Database) UpdateSection(s *models.Section) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx,
		`UPDATE display_sections SET title = $1, description = $2, type = $3, category_id = $4,
			item_limit = $5, position = $6, display_style = $7, is_active = $8
		 WHERE id = $9`,
		s.Title, s.Description, s.Type, s.CategoryID, s.Limit, s.Position, s.DisplayStyle, s.IsActive, s.ID)
	return err
}

func (db *Database) DeleteSection(id int) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "DELETE FROM display_sections WHERE id = $1", id)
	return err
}

// ReorderSections applies a full {id, position} list in one transaction
// so a failed reorder leaves the previous order intact.
func (db *Database) ReorderSections(orders []models.SectionOrder) error {
	ctx := context.Background()

	tx, err := db.Pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, o := range orders {
		if _, err := tx.Exec(ctx,
			"UPDATE display_sections SET position = $1 WHERE id = $2", o.Position, o.ID); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
