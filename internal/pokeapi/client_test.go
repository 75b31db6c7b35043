package pokeapi

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrini/lazypokemon/internal/observability"
)

func TestClientFetch(t *testing.T) {
	body := loadFixture(t)
	var hits int32
	var path string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		path = r.URL.Path
		assert.Equal(t, http.MethodGet, r.Method)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	c := NewClient(srv.URL+"/api/v2/pokemon/", time.Second, observability.Nop())
	rec, err := c.Fetch(context.Background(), " Bulbasaur ")
	require.NoError(t, err)
	assert.Equal(t, "bulbasaur", rec.Name)
	assert.Equal(t, "/api/v2/pokemon/bulbasaur", path)
	assert.Equal(t, int32(1), atomic.LoadInt32(&hits))
}

func TestClientFetchStatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Not Found", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, observability.Nop()).Fetch(context.Background(), "9999")
	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, ErrorStatus, ferr.Kind)
	assert.Equal(t, http.StatusNotFound, ferr.Status)
	assert.Equal(t, "Request failed with status code 404 (Not Found)", ferr.Error())
}

func TestClientFetchEmptyBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, time.Second, observability.Nop()).Fetch(context.Background(), "1")
	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, ErrorEmpty, ferr.Kind)
}

func TestClientFetchNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, time.Second, observability.Nop()).Fetch(context.Background(), "1")
	var ferr *FetchError
	require.True(t, errors.As(err, &ferr))
	assert.Equal(t, ErrorNetwork, ferr.Kind)
	assert.Contains(t, ferr.Error(), "Network error")
}
