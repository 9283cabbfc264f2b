package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMovie(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/movies/42", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":42,"title":"Arrival","poster_path":"/arrival.jpg","overview":"...","runtime":116}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key")
	m, err := c.GetMovie(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, "Arrival", m.Title)
	assert.Equal(t, 116, m.Runtime)
}

func TestGetMovieNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.GetMovie(context.Background(), 999)
	assert.ErrorIs(t, err, ErrMovieNotFound)
}

func TestGetMovieUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.GetMovie(context.Background(), 42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestGetMovieOmitsAuthHeaderWithoutKey(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Write([]byte(`{"id":1,"title":"x"}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "")
	_, err := c.GetMovie(context.Background(), 1)
	assert.NoError(t, err)
}
