package internal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHttpClientFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasPrefix(r.Header.Get("User-Agent"), "go-openhours/"))
		switch r.URL.Path {
		case "/ok.csv":
			_, _ = w.Write([]byte("id;name;city;oh\n"))
		default:
			http.Error(w, "gone", http.StatusNotFound)
		}
	}))
	defer server.Close()

	client := NewHttpClient(context.Background(), 5*time.Second)
	defer client.Close()

	body, err := client.Fetch(server.URL + "/ok.csv")
	require.NoError(t, err)
	assert.Equal(t, "id;name;city;oh\n", string(body))

	_, err = client.Fetch(server.URL + "/missing.csv")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}

func TestHttpClientFetch_Cancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("x"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	client := NewHttpClient(ctx, 0)
	defer client.Close()

	_, err := client.Fetch(server.URL)
	assert.Error(t, err)
}
