package output

import "context"

// SchemaFetcher downloads a remote document.
type SchemaFetcher interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// ArtifactWriter writes generated build artifacts.
type ArtifactWriter interface {
	WriteFile(ctx context.Context, path string, data []byte) error
}

// SchemaConverter turns a fetched YAML document into JSON.
type SchemaConverter interface {
	ToJSON(raw []byte) ([]byte, error)
}
