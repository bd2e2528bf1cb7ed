// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// api.go contains the programmatic JSON endpoints: reading a poster's
// data document and replacing it wholesale.
package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"posterdesk/internal/service"
)

// maxJSONBody caps the JSON update request body at 1 MiB.
const maxJSONBody = 1 << 20

// DataJSON returns a poster's decoded data document. A document that no
// longer parses is served as an empty object rather than an error.
func (h *Poster) DataJSON(w http.ResponseWriter, r *http.Request) {
	id, ok := posterID(w, r)
	if !ok {
		return
	}

	doc, err := h.service.Data(id)
	if errors.Is(err, service.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "poster not found"})
		return
	}
	if err != nil {
		slog.Error("read poster data failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, doc)
}

// UpdateJSON replaces a poster's data document from a raw JSON body.
// The body must be a JSON object; anything else is a 400 with an error
// message. Name and template are left untouched.
func (h *Poster) UpdateJSON(w http.ResponseWriter, r *http.Request) {
	id, ok := posterID(w, r)
	if !ok {
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxJSONBody))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "failed to read body"})
		return
	}

	_, err = h.service.PatchData(id, body)

	var perr *service.PayloadError
	if errors.As(err, &perr) {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": perr.Message})
		return
	}
	if errors.Is(err, service.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"ok": false, "error": "poster not found"})
		return
	}
	if err != nil {
		slog.Error("patch poster data failed", "error", err, "id", id)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.previews.Invalidate(r.Context(), id)
	writeJSON(w, http.StatusOK, map[string]any{"ok": true})
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("write json response failed", "error", err)
	}
}
