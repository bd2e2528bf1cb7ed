// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package templatedata

import (
	"encoding/json"
	"testing"
)

func TestCrabShape(t *testing.T) {
	doc := Crab()

	if doc["title"] == "" {
		t.Error("missing title")
	}

	highlight, ok := doc["highlight"].(map[string]any)
	if !ok {
		t.Fatal("highlight is not an object")
	}
	for _, key := range []string{"badge", "text", "price"} {
		if _, ok := highlight[key]; !ok {
			t.Errorf("highlight missing %q", key)
		}
	}

	sections, ok := doc["sections"].([]any)
	if !ok {
		t.Fatal("sections is not a list")
	}
	if len(sections) != 4 {
		t.Fatalf("got %d sections, want 4", len(sections))
	}
	for i, s := range sections {
		section, ok := s.(map[string]any)
		if !ok {
			t.Fatalf("section %d is not an object", i)
		}
		if section["variant"] == "" || section["heading"] == "" {
			t.Errorf("section %d missing variant/heading", i)
		}
		rows, ok := section["rows"].([]any)
		if !ok || len(rows) != 4 {
			t.Errorf("section %d: got %d rows, want 4", i, len(rows))
			continue
		}
		for j, r := range rows {
			row, ok := r.(map[string]any)
			if !ok {
				t.Fatalf("section %d row %d is not an object", i, j)
			}
			if row["spec"] == "" || row["price"] == "" {
				t.Errorf("section %d row %d missing spec/price", i, j)
			}
		}
	}

	promises, ok := doc["promises"].([]any)
	if !ok {
		t.Fatal("promises is not a list")
	}
	if len(promises) != 6 {
		t.Errorf("got %d promises, want 6", len(promises))
	}
}

func TestCrabSerializable(t *testing.T) {
	if _, err := json.Marshal(Crab()); err != nil {
		t.Fatalf("marshal: %v", err)
	}
}

func TestCrabReturnsFreshCopy(t *testing.T) {
	first := Crab()
	first["title"] = "mutated"
	delete(first, "sections")

	second := Crab()
	if second["title"] == "mutated" {
		t.Error("mutation of one copy leaked into the next")
	}
	if _, ok := second["sections"]; !ok {
		t.Error("deleted key missing from fresh copy")
	}
}
