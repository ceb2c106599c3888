package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "uk", cfg.MainLanguage)
	assert.Equal(t, "en", cfg.FallbackLanguage)
	assert.Equal(t, "localhost:3000", cfg.HTTPAddr)
	assert.Equal(t, "localhost:4000", cfg.MockAddr)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "static/swagger-schema.json", cfg.SchemaPath)
	assert.Empty(t, cfg.APIVersion)
	assert.Equal(t, "http://localhost:3000", cfg.WebsiteURL)
	assert.Empty(t, cfg.GraphQLURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("MAIN_LANGUAGE", "en")
	t.Setenv("API_VERSION", "v2.3.0")
	t.Setenv("FETCH_TIMEOUT", "3s")
	t.Setenv("OTEL_ENABLED", "false")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "en", cfg.MainLanguage)
	assert.Equal(t, "v2.3.0", cfg.APIVersion)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.False(t, cfg.OTelEnabled)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr string
	}{
		{name: "bad language", key: "MAIN_LANGUAGE", value: "not a tag", wantErr: "MAIN_LANGUAGE"},
		{name: "website url without host", key: "WEBSITE_URL", value: "/relative", wantErr: "WEBSITE_URL"},
		{name: "graphql url without scheme", key: "GRAPHQL_URL", value: "localhost:4000/graphql", wantErr: "GRAPHQL_URL"},
		{name: "zero timeout", key: "FETCH_TIMEOUT", value: "0s", wantErr: "FETCH_TIMEOUT"},
		{name: "unparsable timeout", key: "FETCH_TIMEOUT", value: "soon", wantErr: "parse env"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), "config:")
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
