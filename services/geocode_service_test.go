package services

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGeocodeReverse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/reverse", r.URL.Path)
		assert.Equal(t, "jsonv2", r.URL.Query().Get("format"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":{"city":"Cape Town","country":"South Africa"}}`))
	}))
	defer srv.Close()

	t.Setenv("NOMINATIM_URL", srv.URL)
	svc := NewGeocodeService()

	city, country, err := svc.Reverse(-33.92, 18.42)
	require.NoError(t, err)
	assert.Equal(t, "Cape Town", city)
	assert.Equal(t, "South Africa", country)
}

func TestGeocodeReverseFallsBackToTown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"address":{"town":"Stellenbosch","country":"South Africa"}}`))
	}))
	defer srv.Close()

	t.Setenv("NOMINATIM_URL", srv.URL)
	svc := NewGeocodeService()

	city, _, err := svc.Reverse(-33.93, 18.86)
	require.NoError(t, err)
	assert.Equal(t, "Stellenbosch", city)
}

func TestGeocodeReverseAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	t.Setenv("NOMINATIM_URL", srv.URL)
	svc := NewGeocodeService()

	_, _, err := svc.Reverse(0, 0)
	assert.Error(t, err)
}
