// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// flash.go implements one-shot notification messages carried in a cookie.
// A flash set during a redirecting write is displayed by the next page
// render and cleared immediately.
package handlers

import (
	"encoding/base64"
	"net/http"
	"strings"

	"posterdesk/internal/render"
)

// flashCookie is the name of the one-shot notification cookie.
const flashCookie = "pd_flash"

// setFlash stores a single flash message for the next page render.
// The value is base64-encoded so the message can contain arbitrary text.
func setFlash(w http.ResponseWriter, typ, message string) {
	val := base64.URLEncoding.EncodeToString([]byte(typ + "|" + message))
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    val,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   60,
	})
}

// popFlashes reads pending flash messages from the request and clears the
// cookie. Malformed cookies are dropped silently.
func popFlashes(w http.ResponseWriter, r *http.Request) []render.Flash {
	cookie, err := r.Cookie(flashCookie)
	if err != nil {
		return nil
	}

	// Clear regardless of whether the value decodes.
	http.SetCookie(w, &http.Cookie{
		Name:     flashCookie,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
	})

	raw, err := base64.URLEncoding.DecodeString(cookie.Value)
	if err != nil {
		return nil
	}

	typ, message, ok := strings.Cut(string(raw), "|")
	if !ok || message == "" {
		return nil
	}

	return []render.Flash{{Type: typ, Message: message}}
}
