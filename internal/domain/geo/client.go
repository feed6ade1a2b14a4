package geo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"regexp"
	"time"
)

// ErrNoMatch means no enrichment is available for the zip. Any lookup
// failure — network, bad status, malformed body, empty result — collapses
// into it; callers proceed without city/state.
var ErrNoMatch = errors.New("no place found for zip")

var zipRe = regexp.MustCompile(`^\d{5}$`)

// Place is the city/state pair resolved from a 5-digit zip.
type Place struct {
	City  string
	State string
}

// Client looks zips up against a Zippopotam-style endpoint.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Second},
	}
}

type lookupResponse struct {
	Places []struct {
		PlaceName string `json:"place name"`
		State     string `json:"state abbreviation"`
	} `json:"places"`
}

// Lookup resolves a 5-digit zip to city/state. Enrichment only: treat any
// error as "no enrichment available", never as fatal.
func (c *Client) Lookup(ctx context.Context, zip string) (Place, error) {
	if !zipRe.MatchString(zip) {
		return Place{}, ErrNoMatch
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/us/%s", c.baseURL, zip), nil)
	if err != nil {
		return Place{}, ErrNoMatch
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Place{}, ErrNoMatch
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Place{}, ErrNoMatch
	}

	var body lookupResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil || len(body.Places) == 0 {
		return Place{}, ErrNoMatch
	}

	return Place{City: body.Places[0].PlaceName, State: body.Places[0].State}, nil
}
