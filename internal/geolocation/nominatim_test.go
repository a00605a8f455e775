package geolocation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNominatimGeocoder_Reverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "41.311", r.URL.Query().Get("lat"))
		assert.Equal(t, "69.279", r.URL.Query().Get("lon"))
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		assert.Equal(t, "panic-test/1.0", r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"display_name":"Amir Temur Square, Tashkent"}`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "panic-test/1.0", time.Second)

	address, err := g.Reverse(context.Background(), 41.311, 69.279)

	require.NoError(t, err)
	assert.Equal(t, "Amir Temur Square, Tashkent", address)
}

func TestNominatimGeocoder_ErrorBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"error":"Unable to geocode"}`))
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "panic-test/1.0", time.Second)

	_, err := g.Reverse(context.Background(), 0, 0)

	require.Error(t, err)
	assert.ErrorContains(t, err, "Unable to geocode")
}

func TestNominatimGeocoder_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	g := NewNominatimGeocoder(srv.URL, "panic-test/1.0", time.Second)

	_, err := g.Reverse(context.Background(), 1, 1)

	require.Error(t, err)
	assert.ErrorContains(t, err, "429")
}
