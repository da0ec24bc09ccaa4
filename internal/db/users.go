package db

import (
	"context"

	"mosaic-media/internal/models"
)

func (db *Database) CreateUser(email, passwordHash, role string) (*models.User, error) {
	ctx := context.Background()
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"INSERT INTO users (email, password_hash, role) VALUES ($1, $2, $3) RETURNING id, email, role, created_at",
		email, passwordHash, role,
	).Scan(&user.ID, &user.Email, &user.Role, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *Database) GetUserByEmail(email string) (*models.User, error) {
	ctx := context.Background()
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"SELECT id, email, password_hash, role, created_at FROM users WHERE email = $1",
		email,
	).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (db *Database) GetUserByID(id int) (*models.User, error) {
	ctx := context.Background()
	var user models.User

	err := db.Pool.QueryRow(ctx,
		"SELECT id, email, role, created_at FROM users WHERE id = $1",
		id,
	).Scan(&user.ID, &user.Email, &user.Role, &user.CreatedAt)

	if err != nil {
		return nil, err
	}

	return &user, nil
}
