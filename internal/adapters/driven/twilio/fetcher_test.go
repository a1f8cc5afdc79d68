package twilio

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arlo-labs/leadsheet/internal/core/domain"
)

func TestFetch_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, pass, ok := r.BasicAuth()
		require.True(t, ok, "media fetches must carry basic auth")
		assert.Equal(t, "AC123", user)
		assert.Equal(t, "secret-token", pass)

		w.WriteHeader(http.StatusOK)
		w.Write([]byte("media-bytes"))
	}))
	defer server.Close()

	fetcher := NewFetcher("AC123", "secret-token", server.Client())

	payload, err := fetcher.Fetch(context.Background(), server.URL+"/media/0")
	require.NoError(t, err)
	assert.Equal(t, []byte("media-bytes"), payload)
}

func TestFetch_NonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := NewFetcher("AC123", "secret-token", server.Client())

	payload, err := fetcher.Fetch(context.Background(), server.URL+"/media/0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Nil(t, payload)
}

func TestFetch_ConnectionFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := server.URL
	server.Close()

	fetcher := NewFetcher("AC123", "secret-token", nil)

	payload, err := fetcher.Fetch(context.Background(), url+"/media/0")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
	assert.Nil(t, payload)
}

func TestFetch_InvalidURL(t *testing.T) {
	fetcher := NewFetcher("AC123", "secret-token", nil)

	_, err := fetcher.Fetch(context.Background(), "://not-a-url")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrFetchFailed)
}
