// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package service sits between the HTTP handlers and the store. It owns
// input validation and the create/update/delete orchestration, and maps
// store results onto a small error taxonomy the handlers translate into
// HTTP responses.
package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"posterdesk/internal/models"
	"posterdesk/internal/store"
	"posterdesk/internal/templatedata"
)

// maxNameLen caps the poster display name, matching the column width.
const maxNameLen = 120

var (
	// ErrNotFound reports that no poster matches the requested ID.
	// Terminal for the caller, never retried.
	ErrNotFound = errors.New("poster not found")

	// ErrUnsupportedTemplate reports a poster whose template has no
	// built-in renderer. Surfaced to clients as not-found.
	ErrUnsupportedTemplate = errors.New("unsupported template")
)

// PayloadError reports a rejected JSON API body. The message is returned
// to the client verbatim in the error response.
type PayloadError struct {
	Message string
}

func (e *PayloadError) Error() string {
	return e.Message
}

// ValidationError reports a rejected form submission. The message is
// shown to the operator verbatim on the re-rendered form.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Form carries the raw create/edit form fields. DataText is kept as the
// operator typed it so validation failures can echo it back uncorrected.
type Form struct {
	Name     string
	Template string
	DataText string
}

// PosterService validates incoming payloads and applies CRUD operations
// against the poster store. Constructed once at startup and shared by all
// requests; it holds no per-request state.
type PosterService struct {
	posters *store.PosterStore
}

// NewPosterService creates a PosterService backed by the given store.
func NewPosterService(posters *store.PosterStore) *PosterService {
	return &PosterService{posters: posters}
}

// List returns all posters, most recently updated first.
func (s *PosterService) List() ([]models.Poster, error) {
	return s.posters.ListAll()
}

// Get loads a poster by ID, returning ErrNotFound when absent.
func (s *PosterService) Get(id int64) (*models.Poster, error) {
	p, err := s.posters.FindByID(id)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNotFound
	}
	return p, nil
}

// Create validates the form and persists a new poster. The name is
// required; a blank template falls back to the default; an empty data
// document is substituted with the crab sample. Validation failures are
// returned as *ValidationError and nothing is persisted.
func (s *PosterService) Create(f Form) (*models.Poster, error) {
	name := strings.TrimSpace(f.Name)
	template := normalizeTemplate(f.Template)

	if err := validateName(name); err != nil {
		return nil, err
	}

	dataText := strings.TrimSpace(f.DataText)
	var doc any
	if dataText == "" {
		doc = templatedata.Crab()
	} else {
		if err := json.Unmarshal([]byte(dataText), &doc); err != nil {
			return nil, &ValidationError{Message: fmt.Sprintf("Invalid JSON: %v", err)}
		}
	}

	dataJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal poster data: %w", err)
	}

	return s.posters.Create(name, template, string(dataJSON))
}

// Update validates the form and replaces an existing poster's fields.
// Unlike Create, the data document is required: an empty submission goes
// through the JSON parser and fails there. The poster is loaded before
// field validation so a missing ID reports ErrNotFound regardless of the
// form contents.
func (s *PosterService) Update(id int64, f Form) (*models.Poster, error) {
	existing, err := s.posters.FindByID(id)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, ErrNotFound
	}

	name := strings.TrimSpace(f.Name)
	template := normalizeTemplate(f.Template)

	if err := validateName(name); err != nil {
		return nil, err
	}

	var doc any
	if err := json.Unmarshal([]byte(strings.TrimSpace(f.DataText)), &doc); err != nil {
		return nil, &ValidationError{Message: fmt.Sprintf("Invalid JSON: %v", err)}
	}

	dataJSON, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("marshal poster data: %w", err)
	}

	updated, err := s.posters.Update(id, name, template, string(dataJSON))
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete removes a poster permanently. There is no soft delete.
func (s *PosterService) Delete(id int64) error {
	deleted, err := s.posters.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}

// Preview loads a poster and its decoded document for rendering. Only the
// default template has a renderer; anything else is ErrUnsupportedTemplate.
func (s *PosterService) Preview(id int64) (*models.Poster, map[string]any, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, nil, err
	}
	if p.Template != models.DefaultTemplate {
		return nil, nil, ErrUnsupportedTemplate
	}
	return p, p.Data(), nil
}

// Data returns the decoded data document for a poster. Decode failures on
// the stored text yield an empty document, never an error.
func (s *PosterService) Data(id int64) (map[string]any, error) {
	p, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return p.Data(), nil
}

// PatchData replaces only the data document from a raw JSON body. The
// body must parse as a JSON object; arrays and scalars at the top level
// are rejected. Name and template are left untouched.
func (s *PosterService) PatchData(id int64, body []byte) (*models.Poster, error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, &PayloadError{Message: fmt.Sprintf("invalid json: %v", err)}
	}

	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, &PayloadError{Message: "payload must be a JSON object"}
	}

	dataJSON, err := json.Marshal(obj)
	if err != nil {
		return nil, fmt.Errorf("marshal poster data: %w", err)
	}

	patched, err := s.posters.PatchData(id, string(dataJSON))
	if err != nil {
		return nil, err
	}
	if patched == nil {
		return nil, ErrNotFound
	}
	return patched, nil
}

// validateName checks the trimmed poster name.
func validateName(name string) error {
	if name == "" {
		return &ValidationError{Message: "Name is required."}
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		return &ValidationError{Message: "Name is too long (max 120 characters)."}
	}
	return nil
}

// normalizeTemplate trims the template field and falls back to the
// default when blank. Whether the template actually exists is not checked
// here; an unknown template only fails at preview time.
func normalizeTemplate(template string) string {
	t := strings.TrimSpace(template)
	if t == "" {
		return models.DefaultTemplate
	}
	return t
}
