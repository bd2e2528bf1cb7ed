// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestFlashRoundTrip(t *testing.T) {
	// Set the flash on one response.
	setRec := httptest.NewRecorder()
	setFlash(setRec, "success", "Poster created.")

	cookies := setRec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != flashCookie {
		t.Fatalf("expected one %s cookie, got %v", flashCookie, cookies)
	}

	// Read it back on the next request.
	req := httptest.NewRequest(http.MethodGet, "/posters", nil)
	req.AddCookie(cookies[0])
	popRec := httptest.NewRecorder()

	flashes := popFlashes(popRec, req)
	if len(flashes) != 1 {
		t.Fatalf("got %d flashes, want 1", len(flashes))
	}
	if flashes[0].Type != "success" || flashes[0].Message != "Poster created." {
		t.Errorf("flash = %+v", flashes[0])
	}

	// The pop clears the cookie.
	var cleared bool
	for _, c := range popRec.Result().Cookies() {
		if c.Name == flashCookie && c.MaxAge < 0 {
			cleared = true
		}
	}
	if !cleared {
		t.Error("flash cookie was not cleared")
	}
}

func TestPopFlashesNoCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/posters", nil)
	rec := httptest.NewRecorder()

	if flashes := popFlashes(rec, req); flashes != nil {
		t.Errorf("got %v, want nil", flashes)
	}
}

func TestPopFlashesMalformedCookie(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/posters", nil)
	req.AddCookie(&http.Cookie{Name: flashCookie, Value: "%%not-base64%%"})
	rec := httptest.NewRecorder()

	if flashes := popFlashes(rec, req); flashes != nil {
		t.Errorf("got %v, want nil", flashes)
	}
}
