package application

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
)

func fragment(path, locale string, messages map[string]any) entities.Fragment {
	return entities.Fragment{Path: path, Locale: locale, Messages: messages}
}

func TestBuildMergesAndSaves(t *testing.T) {
	source := &fakeSource{fragments: []entities.Fragment{
		fragment("landing/en.json", "en", map[string]any{"header": map[string]any{"title": "Hello"}}),
		fragment("landing/uk.json", "uk", map[string]any{"header": map[string]any{"title": "Привіт"}}),
		fragment("swagger/en.json", "en", map[string]any{"swagger": map[string]any{"title": "API"}}),
	}}
	store := &fakeStore{}
	svc := NewLocalizationService(source, store, "en", false, nil)

	report, err := svc.Build(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, report.Fragments)
	assert.Equal(t, []string{"en", "uk"}, report.Locales)
	assert.Equal(t, map[string]int{"en": 2, "uk": 1}, report.Keys)
	assert.Equal(t, map[string][]string{"uk": {"swagger.title"}}, report.Missing)
	assert.Equal(t, "localization.json", report.OutputPath)

	got, ok := entities.Lookup(store.saved["en"], "swagger.title")
	assert.True(t, ok)
	assert.Equal(t, "API", got)
}

func TestBuildStrictRejectsParityGap(t *testing.T) {
	source := &fakeSource{fragments: []entities.Fragment{
		fragment("a/en.json", "en", map[string]any{"a": "1", "b": "2"}),
		fragment("a/uk.json", "uk", map[string]any{"a": "1"}),
	}}
	store := &fakeStore{}
	svc := NewLocalizationService(source, store, "en", true, nil)

	_, err := svc.Build(context.Background())
	require.ErrorIs(t, err, domain.ErrLocaleParity)
	assert.Nil(t, store.saved, "bundle must not be written on a strict failure")
}

func TestBuildStrictRequiresReferenceLocale(t *testing.T) {
	source := &fakeSource{fragments: []entities.Fragment{
		fragment("a/uk.json", "uk", map[string]any{"a": "1"}),
	}}
	svc := NewLocalizationService(source, &fakeStore{}, "en", true, nil)

	_, err := svc.Build(context.Background())
	require.ErrorIs(t, err, domain.ErrUnknownLocale)
}

func TestBuildNoFragments(t *testing.T) {
	svc := NewLocalizationService(&fakeSource{}, &fakeStore{}, "en", false, nil)

	_, err := svc.Build(context.Background())
	require.ErrorIs(t, err, domain.ErrNoFragments)
}

func TestBuildScanFailureAborts(t *testing.T) {
	scanErr := errors.New("landing/en.json: unexpected EOF")
	store := &fakeStore{}
	svc := NewLocalizationService(&fakeSource{err: scanErr}, store, "en", false, nil)

	_, err := svc.Build(context.Background())
	require.ErrorIs(t, err, scanErr)
	assert.Contains(t, err.Error(), "landing/en.json")
	assert.Nil(t, store.saved)
}

func TestBuildSaveFailure(t *testing.T) {
	source := &fakeSource{fragments: []entities.Fragment{fragment("a/en.json", "en", map[string]any{"a": "1"})}}
	svc := NewLocalizationService(source, &fakeStore{err: errors.New("disk full")}, "en", false, nil)

	_, err := svc.Build(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "save bundle")
}

func TestMergeFragmentsLastWriteWins(t *testing.T) {
	bundle := MergeFragments([]entities.Fragment{
		fragment("a/en.json", "en", map[string]any{"title": "first"}),
		fragment("b/en.json", "en", map[string]any{"title": "second"}),
	})
	assert.Equal(t, "second", bundle["en"]["title"])
}

func TestMergeFragmentsIsIdempotent(t *testing.T) {
	fragments := []entities.Fragment{
		fragment("a/en.json", "en", map[string]any{"x": map[string]any{"y": "1"}}),
		fragment("a/uk.json", "uk", map[string]any{"x": map[string]any{"y": "2"}}),
	}
	assert.Equal(t, MergeFragments(fragments), MergeFragments(fragments))
}
