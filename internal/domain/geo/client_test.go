package geo

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup_ResolvesCityAndState(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/us/02139", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"post code":"02139","places":[{"place name":"Cambridge","state abbreviation":"MA"}]}`))
	}))
	defer srv.Close()

	place, err := NewClient(srv.URL).Lookup(context.Background(), "02139")
	assert.NoError(t, err)
	assert.Equal(t, Place{City: "Cambridge", State: "MA"}, place)
}

func TestLookup_UnknownZipIsNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Lookup(context.Background(), "99999")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestLookup_MalformedBodyIsNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"places": not-json`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Lookup(context.Background(), "02139")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestLookup_EmptyPlacesIsNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"places":[]}`))
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).Lookup(context.Background(), "02139")
	assert.ErrorIs(t, err, ErrNoMatch)
}

func TestLookup_RejectsBadZipWithoutCalling(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	for _, zip := range []string{"", "1234", "123456", "abcde"} {
		_, err := c.Lookup(context.Background(), zip)
		assert.ErrorIs(t, err, ErrNoMatch)
	}
	assert.False(t, called)
}

func TestLookup_UnreachableServerIsNoMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	_, err := NewClient(srv.URL).Lookup(context.Background(), "02139")
	assert.ErrorIs(t, err, ErrNoMatch)
}
