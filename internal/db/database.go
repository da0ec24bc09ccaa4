package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Database struct {
	Pool *pgxpool.Pool
}

func New(databaseURL string) (*Database, error) {
	if databaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(context.Background(), databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	db := &Database{Pool: pool}
	if err := db.initSchema(); err != nil {
		return nil, err
	}

	return db, nil
}

func (db *Database) Close() {
	db.Pool.Close()
}

func (db *Database) initSchema() error {
	ctx := context.Background()

	schema := `
	CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		email TEXT UNIQUE NOT NULL,
		password_hash TEXT NOT NULL,
		role TEXT DEFAULT 'editor',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT DEFAULT '',
		status TEXT DEFAULT 'active',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS display_sections (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT DEFAULT '',
		type TEXT NOT NULL,
		category_id INT REFERENCES categories(id) ON DELETE SET NULL,
		item_limit INT DEFAULT 6,
		position INT DEFAULT 0,
		display_style TEXT DEFAULT 'grid',
		is_active BOOLEAN DEFAULT TRUE,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS blogs (
		id SERIAL PRIMARY KEY,
		slug TEXT UNIQUE NOT NULL,
		title TEXT NOT NULL,
		description TEXT DEFAULT '',
		content TEXT DEFAULT '',
		main_image TEXT DEFAULT '',
		status TEXT DEFAULT 'draft',
		featured BOOLEAN DEFAULT FALSE,
		category_id INT REFERENCES categories(id) ON DELETE SET NULL,
		tags JSONB DEFAULT '[]',
		sections JSONB DEFAULT '[]',
		meta JSONB DEFAULT '{}',
		author JSONB DEFAULT '{}',
		section_id INT REFERENCES display_sections(id) ON DELETE SET NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS project_categories (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		slug TEXT UNIQUE NOT NULL,
		description TEXT DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS projects (
		id SERIAL PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT DEFAULT '',
		category_id INT REFERENCES project_categories(id) ON DELETE SET NULL,
		main_image TEXT DEFAULT '',
		images JSONB DEFAULT '[]',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE TABLE IF NOT EXISTS contact_submissions (
		id SERIAL PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		phone_number TEXT NOT NULL,
		email TEXT NOT NULL,
		address TEXT DEFAULT '',
		message TEXT NOT NULL,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_blogs_status ON blogs(status);
	CREATE INDEX IF NOT EXISTS idx_blogs_category ON blogs(category_id);
	CREATE INDEX IF NOT EXISTS idx_blogs_section ON blogs(section_id);
	CREATE INDEX IF NOT EXISTS idx_sections_position ON display_sections(position);
	CREATE INDEX IF NOT EXISTS idx_projects_category ON projects(category_id);
	`

	_, err := db.Pool.Exec(ctx, schema)
	if err != nil {
		return err
	}

	_, err = db.Pool.Exec(ctx, "ALTER TABLE blogs ADD COLUMN IF NOT EXISTS featured BOOLEAN DEFAULT FALSE")
	if err != nil {
		return err
	}

	_, err = db.Pool.Exec(ctx, "ALTER TABLE display_sections ADD COLUMN IF NOT EXISTS display_style TEXT DEFAULT 'grid'")
	if err != nil {
		return err
	}

	_, err = db.Pool.Exec(ctx, "ALTER TABLE contact_submissions ADD COLUMN IF NOT EXISTS address TEXT DEFAULT ''")

	return err
}
