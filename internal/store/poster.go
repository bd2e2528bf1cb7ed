// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. Stores wrap a shared
// *sql.DB and expose typed CRUD methods; they report "not found" as a nil
// record rather than an error.
package store

import (
	"database/sql"
	"fmt"

	"posterdesk/internal/models"
)

// PosterStore handles all poster-related database operations.
type PosterStore struct {
	db *sql.DB
}

// NewPosterStore creates a new PosterStore with the given database connection.
func NewPosterStore(db *sql.DB) *PosterStore {
	return &PosterStore{db: db}
}

// ListAll returns every poster, most recently touched first. Ties on
// updated_at break by id descending so the order is stable.
func (s *PosterStore) ListAll() ([]models.Poster, error) {
	rows, err := s.db.Query(`
		SELECT id, name, template, data, created_at, updated_at
		FROM posters
		ORDER BY updated_at DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list posters: %w", err)
	}
	defer rows.Close()

	var items []models.Poster
	for rows.Next() {
		var p models.Poster
		if err := rows.Scan(
			&p.ID, &p.Name, &p.Template, &p.DataJSON, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan poster: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// FindByID retrieves a poster by its ID. Returns nil if not found.
func (s *PosterStore) FindByID(id int64) (*models.Poster, error) {
	p := &models.Poster{}
	err := s.db.QueryRow(`
		SELECT id, name, template, data, created_at, updated_at
		FROM posters WHERE id = $1
	`, id).Scan(&p.ID, &p.Name, &p.Template, &p.DataJSON, &p.CreatedAt, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find poster by id: %w", err)
	}
	return p, nil
}

// Create inserts a new poster and returns it with the store-assigned ID
// and timestamps.
func (s *PosterStore) Create(name, template, dataJSON string) (*models.Poster, error) {
	p := &models.Poster{}
	err := s.db.QueryRow(`
		INSERT INTO posters (name, template, data)
		VALUES ($1, $2, $3)
		RETURNING id, name, template, data, created_at, updated_at
	`, name, template, dataJSON).Scan(
		&p.ID, &p.Name, &p.Template, &p.DataJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create poster: %w", err)
	}
	return p, nil
}

// Update replaces all three mutable fields and refreshes updated_at.
// created_at is never touched. Returns nil if the poster does not exist.
func (s *PosterStore) Update(id int64, name, template, dataJSON string) (*models.Poster, error) {
	p := &models.Poster{}
	err := s.db.QueryRow(`
		UPDATE posters
		SET name = $1, template = $2, data = $3, updated_at = NOW()
		WHERE id = $4
		RETURNING id, name, template, data, created_at, updated_at
	`, name, template, dataJSON, id).Scan(
		&p.ID, &p.Name, &p.Template, &p.DataJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update poster: %w", err)
	}
	return p, nil
}

// PatchData replaces only the data document, leaving name and template
// untouched. Still refreshes updated_at. Returns nil if the poster does
// not exist.
func (s *PosterStore) PatchData(id int64, dataJSON string) (*models.Poster, error) {
	p := &models.Poster{}
	err := s.db.QueryRow(`
		UPDATE posters
		SET data = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, template, data, created_at, updated_at
	`, dataJSON, id).Scan(
		&p.ID, &p.Name, &p.Template, &p.DataJSON, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("patch poster data: %w", err)
	}
	return p, nil
}

// Delete removes a poster by ID. Reports whether a row was deleted.
func (s *PosterStore) Delete(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM posters WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete poster: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete poster rows affected: %w", err)
	}
	return n > 0, nil
}

// Count returns the number of poster records. Used by first-run seeding.
func (s *PosterStore) Count() (int, error) {
	var count int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posters`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count posters: %w", err)
	}
	return count, nil
}
