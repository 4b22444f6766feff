package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParseCollections_Valid(t *testing.T) {
	raw := []byte(`[
		{
			"id": "db-1",
			"title": "DSA Grind",
			"item_count": 42,
			"properties": [
				{"name": "Name", "type": "title"},
				{"name": "Result", "type": "select", "options": ["Solved"]}
			]
		}
	]`)

	cols, err := ParseCollections(raw)
	if err != nil {
		t.Fatalf("ParseCollections: %v", err)
	}
	if len(cols) != 1 {
		t.Fatalf("got %d collections, want 1", len(cols))
	}
	c := cols[0]
	if c.ID != "db-1" || c.ItemCount != 42 || len(c.Properties) != 2 {
		t.Errorf("unexpected collection: %+v", c)
	}
	if c.Fingerprint == "" {
		t.Error("fingerprint should be computed at parse time")
	}
}

func TestParseCollections_MissingFieldFails(t *testing.T) {
	raw := []byte(`[{"title": "no id", "item_count": 1, "properties": []}]`)

	_, err := ParseCollections(raw)
	var invalid *ErrInvalidMetadata
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidMetadata", err)
	}
}

func TestParseCollections_MalformedJSONFails(t *testing.T) {
	_, err := ParseCollections([]byte(`{not json`))
	var invalid *ErrInvalidMetadata
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidMetadata", err)
	}
}

func TestParseItems_DefaultsAndProvenance(t *testing.T) {
	raw := []byte(`[
		{"id": "it-1", "name": "Two Sum", "difficulty": 2, "pattern": "hashmap"},
		{"id": "it-2", "name": "LRU Cache", "difficulty": null, "pattern": null}
	]`)

	items, err := ParseItems(raw, "db-1")
	if err != nil {
		t.Fatalf("ParseItems: %v", err)
	}
	if items[0].Difficulty != 2 || items[0].Pattern != "hashmap" {
		t.Errorf("item 0: %+v", items[0])
	}
	if items[1].Difficulty != DefaultDifficulty {
		t.Errorf("null difficulty should default to %d, got %d", DefaultDifficulty, items[1].Difficulty)
	}
	for _, it := range items {
		if it.SourceCollectionID != "db-1" {
			t.Errorf("item %s missing provenance", it.ID)
		}
	}
}

func TestParseItems_DifficultyOutOfRangeFails(t *testing.T) {
	raw := []byte(`[{"id": "it-1", "name": "x", "difficulty": 9}]`)
	_, err := ParseItems(raw, "db-1")
	var invalid *ErrInvalidMetadata
	if !errors.As(err, &invalid) {
		t.Fatalf("err = %v, want ErrInvalidMetadata", err)
	}
}

func TestClient_ListCollections(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/collections" {
			http.NotFound(w, r)
			return
		}
		if got := r.Header.Get("Authorization"); got != "Bearer secret" {
			t.Errorf("Authorization = %q", got)
		}
		_, _ = w.Write([]byte(`[{"id": "db-1", "title": "DSA", "item_count": 1, "properties": []}]`))
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL, Token: "secret"})
	cols, err := c.ListCollections(context.Background())
	if err != nil {
		t.Fatalf("ListCollections: %v", err)
	}
	if len(cols) != 1 || cols[0].ID != "db-1" {
		t.Errorf("cols = %+v", cols)
	}
}

func TestClient_NonOKStatusFails(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(ClientConfig{BaseURL: srv.URL})
	if _, err := c.FetchItems(context.Background(), "db-1"); err == nil {
		t.Fatal("expected error on HTTP 500")
	}
}
