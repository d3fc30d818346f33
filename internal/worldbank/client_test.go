package worldbank

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const populationsBody = `[
  {"page": 1, "pages": 1, "per_page": "400", "total": 5},
  [
    {"indicator": {"id": "SP.POP.TOTL"}, "country": {"id": "1W", "value": "World"}, "value": 7200000000, "date": "2014"},
    {"indicator": {"id": "SP.POP.TOTL"}, "country": {"id": "CN", "value": "China"}, "value": "1364270000", "date": "2014"},
    {"indicator": {"id": "SP.POP.TOTL"}, "country": {"id": "IN", "value": "India"}, "value": 1295291543, "date": "2014"},
    {"indicator": {"id": "SP.POP.TOTL"}, "country": {"id": "FR", "value": "France"}, "value": 66331957, "date": "2014"},
    {"indicator": {"id": "SP.POP.TOTL"}, "country": {"id": "XX", "value": "Narnia"}, "value": null, "date": "2014"}
  ]
]`

const regionsBody = `[
  {"page": 1, "pages": 1, "per_page": "400", "total": 5},
  [
    {"id": "1W", "name": "World", "region": {"id": "NA", "value": "Aggregates"}},
    {"id": "CN", "name": "China", "region": {"id": "EAS", "value": "East Asia & Pacific"}},
    {"id": "IN", "name": "India", "region": {"id": "SAS", "value": "South Asia"}},
    {"id": "FR", "name": "France", "region": {"id": "ECS", "value": "Europe & Central Asia"}},
    {"id": "XX", "name": "Narnia", "region": {"id": "EAS", "value": "East Asia & Pacific"}}
  ]
]`

func testServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "indicators") {
			w.Write([]byte(populationsBody))
			return
		}
		w.Write([]byte(regionsBody))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestPopulations(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 2014)

	populations, err := c.Populations(context.Background())
	if err != nil {
		t.Fatalf("Populations failed: %v", err)
	}

	// Quoted and bare numbers both parse; null values are dropped
	if populations["China"] != 1364270000 {
		t.Errorf("expected China population, got %d", populations["China"])
	}
	if populations["India"] != 1295291543 {
		t.Errorf("expected India population, got %d", populations["India"])
	}
	if _, ok := populations["Narnia"]; ok {
		t.Error("null population should be absent")
	}
}

func TestRegions(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 2014)

	regions, err := c.Regions(context.Background())
	if err != nil {
		t.Fatalf("Regions failed: %v", err)
	}

	// Aggregates skipped, first-seen order preserved
	if len(regions) != 3 {
		t.Fatalf("expected 3 regions, got %d", len(regions))
	}
	if regions[0].Name != "East Asia & Pacific" {
		t.Errorf("unexpected first region %q", regions[0].Name)
	}
	if len(regions[0].Countries) != 2 || regions[0].Countries[1] != "Narnia" {
		t.Errorf("unexpected countries %v", regions[0].Countries)
	}
}

func TestLoad(t *testing.T) {
	srv := testServer(t)
	c := NewClient(srv.URL, 2014)

	tree, err := c.Load(context.Background())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if tree.Label != WorldLabel {
		t.Errorf("expected root %q, got %q", WorldLabel, tree.Label)
	}
	want := int64(1364270000 + 1295291543 + 66331957)
	if tree.Weight != want {
		t.Errorf("expected total weight %d, got %d", want, tree.Weight)
	}
}

func TestGetPageErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "indicators") {
			http.Error(w, "nope", http.StatusBadGateway)
			return
		}
		w.Write([]byte(`[{"page": 1}]`)) // missing records element
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 2014)
	if _, err := c.Populations(context.Background()); err == nil {
		t.Error("expected error for bad status")
	}
	if _, err := c.Regions(context.Background()); err == nil {
		t.Error("expected error for malformed payload")
	}
}
