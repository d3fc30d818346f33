// Package worldbank loads the World -> region -> country population
// hierarchy from the World Bank v1 API and builds a weighted tree from it.
package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/lumipallolabs/weightmap/internal/model"
)

const (
	defaultBaseURL = "http://api.worldbank.org"
	defaultYear    = 2014

	populationIndicator = "SP.POP.TOTL"

	// "Aggregates" marks synthetic rows (income groups, the world total)
	// that are not countries in any region
	aggregateRegion = "Aggregates"
)

// Region is a World Bank region with its countries in API order
type Region struct {
	Name      string
	Countries []string
}

// Client talks to the World Bank API
type Client struct {
	baseURL string
	year    int
	http    *http.Client
}

// NewClient creates a client for the given base URL and indicator year.
// Empty baseURL and zero year select the production API and 2014, the
// year the population indicator is most completely reported for.
func NewClient(baseURL string, year int) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if year == 0 {
		year = defaultYear
	}
	return &Client{
		baseURL: baseURL,
		year:    year,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
}

// population is an indicator value that arrives as a number, a quoted
// number, or null depending on the record
type population struct {
	Valid bool
	Value int64
}

func (p *population) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil // unreadable values are skipped, not fatal
	}
	p.Valid = true
	p.Value = int64(v)
	return nil
}

type populationRecord struct {
	Value   population `json:"value"`
	Country struct {
		Value string `json:"value"`
	} `json:"country"`
}

type countryRecord struct {
	Name   string `json:"name"`
	Region struct {
		Value string `json:"value"`
	} `json:"region"`
}

// Populations returns the reported population per country name.
// Countries without a readable value are absent from the map. Aggregate
// rows (e.g. "World") may be present; they are harmless because BuildTree
// only looks up countries named by a region.
func (c *Client) Populations(ctx context.Context) (map[string]int64, error) {
	url := fmt.Sprintf("%s/countries/all/indicators/%s?format=json&date=%d:%d&per_page=400",
		c.baseURL, populationIndicator, c.year, c.year)

	var records []populationRecord
	if err := c.getPage(ctx, url, &records); err != nil {
		return nil, fmt.Errorf("fetch populations: %w", err)
	}

	populations := make(map[string]int64, len(records))
	for _, r := range records {
		if r.Value.Valid {
			populations[r.Country.Value] = r.Value.Value
		}
	}
	return populations, nil
}

// Regions returns the regions in API order, each with its countries in
// API order. Aggregate rows are skipped.
func (c *Client) Regions(ctx context.Context) ([]Region, error) {
	url := fmt.Sprintf("%s/countries?format=json&per_page=400", c.baseURL)

	var records []countryRecord
	if err := c.getPage(ctx, url, &records); err != nil {
		return nil, fmt.Errorf("fetch regions: %w", err)
	}

	var regions []Region
	index := make(map[string]int)
	for _, r := range records {
		name := r.Region.Value
		if name == aggregateRegion || name == "" {
			continue
		}
		i, ok := index[name]
		if !ok {
			i = len(regions)
			index[name] = i
			regions = append(regions, Region{Name: name})
		}
		regions[i].Countries = append(regions[i].Countries, r.Name)
	}
	return regions, nil
}

// Load fetches both datasets and assembles the population tree
func (c *Client) Load(ctx context.Context) (*model.Tree, error) {
	populations, err := c.Populations(ctx)
	if err != nil {
		return nil, err
	}
	regions, err := c.Regions(ctx)
	if err != nil {
		return nil, err
	}
	return BuildTree(regions, populations), nil
}

// getPage fetches url and decodes the records element of the response.
// The API wraps every response in a two-element array: [metadata, records].
func (c *Client) getPage(ctx context.Context, url string, records any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var payload []json.RawMessage
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	if len(payload) < 2 {
		return fmt.Errorf("malformed response: %d elements", len(payload))
	}
	return json.Unmarshal(payload[1], records)
}
