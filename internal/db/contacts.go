package db

import (
	"context"

	"mosaic-media/internal/models"
)

func (db *Database) CreateContactSubmission(s *models.ContactSubmission) error {
	ctx := context.Background()
	return db.Pool.QueryRow(ctx,
		`INSERT INTO contact_submissions (first_name, last_name, phone_number, email, address, message)
		 VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`,
		s.FirstName, s.LastName, s.PhoneNumber, s.Email, s.Address, s.Message,
	).Scan(&s.ID, &s.CreatedAt)
}

func (db *Database) ListContactSubmissions() ([]models.ContactSubmission, error) {
	ctx := context.Background()
	rows, err := db.Pool.Query(ctx,
		`SELECT id, first_name, last_name, phone_number, email, address, message, created_at
		 FROM contact_submissions ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	submissions := []models.ContactSubmission{}
	for rows.Next() {
		var s models.ContactSubmission
		if err := rows.Scan(&s.ID, &s.FirstName, &s.LastName, &s.PhoneNumber,
			&s.Email, &s.Address, &s.Message, &s.CreatedAt); err != nil {
			return nil, err
		}
		submissions = append(submissions, s)
	}

	return submissions, rows.Err()
}

func (db *Database) DeleteContactSubmission(id int) error {
	ctx := context.Background()
	_, err := db.Pool.Exec(ctx, "DELETE FROM contact_submissions WHERE id = $1", id)
	return err
}
