// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the domain entities persisted by the stores.
package models

import (
	"encoding/json"
	"time"
)

// DefaultTemplate is the template identifier assigned to posters created
// without an explicit template. It is also the only template with a
// built-in renderer.
const DefaultTemplate = "crab"

// Poster pairs display metadata (name, template identifier) with an
// arbitrary JSON content document rendered into a price-list page.
// DataJSON always holds syntactically valid JSON, validated at write
// time, before persistence.
type Poster struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Template  string    `json:"template"`
	DataJSON  string    `json:"data_json"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Data decodes the stored JSON document. Decode failures return an empty
// document instead of an error: display paths prefer showing a blank
// poster over failing the whole page.
func (p *Poster) Data() map[string]any {
	var doc map[string]any
	if err := json.Unmarshal([]byte(p.DataJSON), &doc); err != nil || doc == nil {
		return map[string]any{}
	}
	return doc
}
