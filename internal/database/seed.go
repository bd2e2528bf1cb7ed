// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"

	"posterdesk/internal/models"
	"posterdesk/internal/store"
	"posterdesk/internal/templatedata"
)

// seedPosterName identifies the sample record created on first run.
const seedPosterName = "Crab price list (sample)"

// Seed populates the database with a sample poster so the list page has
// something to show on first run. It goes through the store like every
// other write and is a no-op when any posters exist.
func Seed(db *sql.DB) error {
	posters := store.NewPosterStore(db)

	count, err := posters.Count()
	if err != nil {
		return fmt.Errorf("seed check posters: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	dataJSON, err := json.Marshal(templatedata.Crab())
	if err != nil {
		return fmt.Errorf("seed marshal crab data: %w", err)
	}

	if _, err := posters.Create(seedPosterName, models.DefaultTemplate, string(dataJSON)); err != nil {
		return fmt.Errorf("seed insert poster: %w", err)
	}

	slog.Info("database seeded with sample poster")
	return nil
}
