package application

import (
	"context"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
)

type fakeSource struct {
	fragments []entities.Fragment
	err       error
}

func (f *fakeSource) Scan(context.Context) ([]entities.Fragment, error) {
	return f.fragments, f.err
}

type fakeStore struct {
	saved entities.Bundle
	err   error
}

func (f *fakeStore) Save(_ context.Context, b entities.Bundle) error {
	if f.err != nil {
		return f.err
	}
	f.saved = b
	return nil
}

func (f *fakeStore) Load(context.Context) (entities.Bundle, error) { return f.saved, nil }

func (f *fakeStore) Path() string { return "localization.json" }

type fakeFetcher struct {
	body []byte
	err  error
	urls []string
}

func (f *fakeFetcher) Fetch(_ context.Context, url string) ([]byte, error) {
	f.urls = append(f.urls, url)
	return f.body, f.err
}

type fakeConverter struct{}

func (fakeConverter) ToJSON(raw []byte) ([]byte, error) {
	return append([]byte("json:"), raw...), nil
}

type fakeWriter struct {
	files map[string][]byte
}

func (f *fakeWriter) WriteFile(_ context.Context, path string, data []byte) error {
	if f.files == nil {
		f.files = map[string][]byte{}
	}
	f.files[path] = data
	return nil
}
