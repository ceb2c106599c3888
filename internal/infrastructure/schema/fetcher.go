package schema

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/output"
)

// DefaultTimeout aborts a schema download that takes longer than this.
const DefaultTimeout = 10 * time.Second

// maxSchemaBytes bounds the size of a downloaded schema.
const maxSchemaBytes = 16 << 20

var _ output.SchemaFetcher = (*HTTPFetcher)(nil)

// StatusError reports a non-2xx response.
type StatusError struct {
	URL    string
	Status string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: unexpected status %s", e.URL, e.Status)
}

func (e *StatusError) Unwrap() error { return domain.ErrSchemaFetch }

// TimeoutError reports a download aborted by the fetch timeout.
type TimeoutError struct {
	URL     string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("GET %s: request timed out after %s", e.URL, e.Timeout)
}

func (e *TimeoutError) Unwrap() error { return domain.ErrSchemaTimeout }

// HTTPFetcher downloads documents with a fixed timeout and no retries.
type HTTPFetcher struct {
	client  *http.Client
	timeout time.Duration
}

// NewHTTPFetcher creates an HTTPFetcher. A nil client uses
// http.DefaultClient; a non-positive timeout uses DefaultTimeout.
func NewHTTPFetcher(client *http.Client, timeout time.Duration) *HTTPFetcher {
	if client == nil {
		client = http.DefaultClient
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPFetcher{client: client, timeout: timeout}
}

func (f *HTTPFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrSchemaFetch, err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, f.classify(ctx, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: url, Status: resp.Status, Code: resp.StatusCode}
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxSchemaBytes+1))
	if err != nil {
		return nil, f.classify(ctx, url, err)
	}
	if len(body) > maxSchemaBytes {
		return nil, fmt.Errorf("%w: GET %s: body exceeds %d bytes", domain.ErrSchemaFetch, url, maxSchemaBytes)
	}
	return body, nil
}

func (f *HTTPFetcher) classify(ctx context.Context, url string, err error) error {
	if errors.Is(ctx.Err(), context.DeadlineExceeded) || errors.Is(err, context.DeadlineExceeded) {
		return &TimeoutError{URL: url, Timeout: f.timeout}
	}
	return fmt.Errorf("%w: GET %s: %w", domain.ErrSchemaFetch, url, err)
}
