package schema

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
)

func TestFetchOK(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte("openapi: 3.0.0\n"))
	}))
	defer srv.Close()

	body, err := NewHTTPFetcher(srv.Client(), time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "openapi: 3.0.0\n", string(body))
}

func TestFetchNonOKIncludesStatusText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewHTTPFetcher(srv.Client(), time.Second).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, domain.ErrSchemaFetch)
	assert.Contains(t, err.Error(), "Not Found")

	var statusErr *StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusNotFound, statusErr.Code)
}

func TestFetchRejectsOversizedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", maxSchemaBytes+1)))
	}))
	defer srv.Close()

	body, err := NewHTTPFetcher(srv.Client(), 10*time.Second).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, domain.ErrSchemaFetch)
	assert.Contains(t, err.Error(), "exceeds")
	assert.Nil(t, body)
}

func TestFetchAcceptsBodyAtLimit(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("a", maxSchemaBytes)))
	}))
	defer srv.Close()

	body, err := NewHTTPFetcher(srv.Client(), 10*time.Second).Fetch(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Len(t, body, maxSchemaBytes)
}

func TestFetchTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	_, err := NewHTTPFetcher(srv.Client(), 50*time.Millisecond).Fetch(context.Background(), srv.URL)
	require.ErrorIs(t, err, domain.ErrSchemaTimeout)
	assert.Contains(t, err.Error(), "timed out after 50ms")
}

func TestFetchConnectionError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewHTTPFetcher(nil, time.Second).Fetch(context.Background(), url)
	require.ErrorIs(t, err, domain.ErrSchemaFetch)
	assert.NotErrorIs(t, err, domain.ErrSchemaTimeout)
}

func TestYAMLConverter(t *testing.T) {
	out, err := YAMLConverter{}.ToJSON([]byte("openapi: 3.0.0\ninfo:\n  title: Users\n"))
	require.NoError(t, err)
	assert.JSONEq(t, `{"openapi": "3.0.0", "info": {"title": "Users"}}`, string(out))

	_, err = YAMLConverter{}.ToJSON([]byte("a: [b"))
	require.ErrorIs(t, err, domain.ErrSchemaDecode)
}

func TestFileWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "static", "swagger-schema.json")
	require.NoError(t, FileWriter{}.WriteFile(context.Background(), path, []byte("{}")))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(got))
}
