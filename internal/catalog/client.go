// Package catalog talks to the external movie catalog.  The catalog
// is an opaque read-only collaborator: the booking flow only ever
// resolves a movie id to its display details.
package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrMovieNotFound is returned when the catalog has no movie under
// the requested id.
var ErrMovieNotFound = errors.New("movie not found")

// Movie is the subset of catalog data the booking flow displays.
type Movie struct {
	ID         uint64 `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
	Overview   string `json:"overview"`
	Runtime    int    `json:"runtime"`
}

// Client is a thin JSON client for the catalog API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient builds a Client for the given base URL.  An empty apiKey
// is allowed; the header is simply omitted.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
	}
}

// GetMovie resolves a movie id to its details.  A 404 from the
// catalog maps to ErrMovieNotFound; any other non-200 status is an
// error with the status code in the message.
func (c *Client) GetMovie(ctx context.Context, id uint64) (*Movie, error) {
	url := fmt.Sprintf("%s/movies/%d", c.baseURL, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("catalog request: %w", err)
	}
	defer resp.Body.Close()
	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, ErrMovieNotFound
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("catalog returned status %d", resp.StatusCode)
	}
	var m Movie
	if err := json.NewDecoder(resp.Body).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode movie: %w", err)
	}
	return &m, nil
}
