// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the HTTP handlers for the Posterdesk server.
// Handlers receive their dependencies through the handler struct and
// translate service errors into HTTP responses: validation failures
// re-render the form with the operator's input preserved, missing records
// become 404s.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"posterdesk/internal/cache"
	"posterdesk/internal/render"
	"posterdesk/internal/service"
	"posterdesk/internal/templatedata"
)

// Poster groups all poster HTTP handlers and their dependencies.
type Poster struct {
	renderer *render.Renderer
	service  *service.PosterService
	previews *cache.PreviewCache
}

// NewPoster creates a new Poster handler group with the given dependencies.
func NewPoster(renderer *render.Renderer, svc *service.PosterService, previews *cache.PreviewCache) *Poster {
	return &Poster{
		renderer: renderer,
		service:  svc,
		previews: previews,
	}
}

// List renders the poster management page, most recently updated first.
func (h *Poster) List(w http.ResponseWriter, r *http.Request) {
	posters, err := h.service.List()
	if err != nil {
		slog.Error("list posters failed", "error", err)
	}

	h.renderer.Page(w, "posters_list", &render.PageData{
		Title:   "Posters",
		Section: "posters",
		Data:    map[string]any{"Posters": posters},
		Flashes: popFlashes(w, r),
	})
}

// NewForm renders the creation form, pre-filled with the sample document.
func (h *Poster) NewForm(w http.ResponseWriter, r *http.Request) {
	h.renderer.Page(w, "poster_form", &render.PageData{
		Title:   "New Poster",
		Section: "new",
		Data: map[string]any{
			"IsNew":    true,
			"Action":   "/posters/new",
			"Name":     "",
			"Template": "crab",
			"DataText": defaultDataText(),
		},
		Flashes: popFlashes(w, r),
	})
}

// Create handles the creation form submission. Validation failures
// re-render the form with the error and the raw input echoed back.
func (h *Poster) Create(w http.ResponseWriter, r *http.Request) {
	f := service.Form{
		Name:     r.FormValue("name"),
		Template: r.FormValue("template"),
		DataText: r.FormValue("data_json"),
	}

	_, err := h.service.Create(f)

	var verr *service.ValidationError
	if errors.As(err, &verr) {
		// Echo the submitted text uncorrected; an untouched empty
		// textarea falls back to the sample document.
		echo := f.DataText
		if strings.TrimSpace(echo) == "" {
			echo = defaultDataText()
		}
		h.renderer.Page(w, "poster_form", &render.PageData{
			Title:   "New Poster",
			Section: "new",
			Data: map[string]any{
				"IsNew":    true,
				"Action":   "/posters/new",
				"Name":     f.Name,
				"Template": f.Template,
				"DataText": echo,
				"Error":    verr.Message,
			},
		})
		return
	}
	if err != nil {
		slog.Error("create poster failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	setFlash(w, "success", "Poster created.")
	http.Redirect(w, r, "/posters", http.StatusSeeOther)
}

// EditForm renders the edit form pre-filled from the stored record.
func (h *Poster) EditForm(w http.ResponseWriter, r *http.Request) {
	id, ok := posterID(w, r)
	if !ok {
		return
	}

	p, err := h.service.Get(id)
	if errors.Is(err, service.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("load poster failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.renderer.Page(w, "poster_form", &render.PageData{
		Title:   "Edit Poster",
		Section: "posters",
		Data: map[string]any{
			"IsNew":    false,
			"Action":   "/posters/" + strconv.FormatInt(id, 10) + "/edit",
			"PosterID": p.ID,
			"Name":     p.Name,
			"Template": p.Template,
			"DataText": prettyJSON(p.Data()),
		},
		Flashes: popFlashes(w, r),
	})
}

// Update handles the edit form submission.
func (h *Poster) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := posterID(w, r)
	if !ok {
		return
	}

	f := service.Form{
		Name:     r.FormValue("name"),
		Template: r.FormValue("template"),
		DataText: r.FormValue("data_json"),
	}

	_, err := h.service.Update(id, f)

	if errors.Is(err, service.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	var verr *service.ValidationError
	if errors.As(err, &verr) {
		h.renderer.Page(w, "poster_form", &render.PageData{
			Title:   "Edit Poster",
			Section: "posters",
			Data: map[string]any{
				"IsNew":    false,
				"Action":   "/posters/" + strconv.FormatInt(id, 10) + "/edit",
				"PosterID": id,
				"Name":     f.Name,
				"Template": f.Template,
				"DataText": f.DataText,
				"Error":    verr.Message,
			},
		})
		return
	}
	if err != nil {
		slog.Error("update poster failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.previews.Invalidate(r.Context(), id)
	setFlash(w, "success", "Poster saved.")
	http.Redirect(w, r, "/posters", http.StatusSeeOther)
}

// Delete handles poster deletion. Immediate and permanent.
func (h *Poster) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := posterID(w, r)
	if !ok {
		return
	}

	err := h.service.Delete(id)
	if errors.Is(err, service.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("delete poster failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.previews.Invalidate(r.Context(), id)
	setFlash(w, "info", "Poster deleted.")
	http.Redirect(w, r, "/posters", http.StatusSeeOther)
}

// Preview renders a poster with its template. Unknown templates are
// indistinguishable from missing posters to the client. Rendered HTML is
// cached per poster and invalidated on every write.
func (h *Poster) Preview(w http.ResponseWriter, r *http.Request) {
	id, ok := posterID(w, r)
	if !ok {
		return
	}

	ctx := r.Context()
	if cached, hit := h.previews.Get(ctx, id); hit {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(cached)
		return
	}

	p, doc, err := h.service.Preview(id)
	if errors.Is(err, service.ErrNotFound) || errors.Is(err, service.ErrUnsupportedTemplate) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		slog.Error("preview poster failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := h.renderer.HTML("poster_"+p.Template, &render.PageData{
		Title: p.Name,
		Data:  map[string]any{"Poster": p, "Doc": doc},
	})
	if err != nil {
		slog.Error("render preview failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.previews.Set(ctx, id, html)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}

// posterID extracts the numeric poster ID from the route. Writes a 404
// and reports false when the segment is not a number, matching how a
// missing record is reported.
func posterID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.NotFound(w, r)
		return 0, false
	}
	return id, true
}

// defaultDataText returns the sample crab document pretty-printed for the
// creation form textarea.
func defaultDataText() string {
	return prettyJSON(templatedata.Crab())
}

// prettyJSON renders a document with two-space indentation for editing.
func prettyJSON(doc map[string]any) string {
	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(b)
}
