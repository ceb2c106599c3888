package i18n

import (
	_ "embed"
	"fmt"
	"sort"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/output"
)

//go:generate go run ../../../cmd/website i18n build --locales ../../../locales --out localization.json

//go:embed localization.json
var embeddedLocalization []byte

// LoadEmbedded decodes the localization bundle compiled into the binary.
func LoadEmbedded() (entities.Bundle, error) {
	return DecodeResources(embeddedLocalization)
}

// Ensure Localizer implements the output.Translator port.
var _ output.Translator = (*Localizer)(nil)

// Localizer resolves key-paths for one active locale with a single fallback
// locale. It is immutable once built and safe for concurrent use.
type Localizer struct {
	catalog  *Catalog
	locale   string
	fallback string
}

// Catalog holds a bundle and its go-i18n message index. One Catalog is
// built at startup and shared by every Localizer derived from it.
type Catalog struct {
	bundle   entities.Bundle
	messages *goi18n.Bundle
	tags     map[string]language.Tag
}

// NewCatalog indexes bundle for template rendering. defaultLocale seeds
// go-i18n's default language.
func NewCatalog(bundle entities.Bundle, defaultLocale string) (*Catalog, error) {
	defaultTag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %w", domain.ErrUnknownLocale, defaultLocale, err)
	}
	c := &Catalog{
		bundle:   bundle,
		messages: goi18n.NewBundle(defaultTag),
		tags:     make(map[string]language.Tag, len(bundle)),
	}
	for _, locale := range bundle.Locales() {
		tag, err := language.Parse(locale)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %w", domain.ErrUnknownLocale, locale, err)
		}
		c.tags[locale] = tag

		flat := entities.Flatten(bundle[locale])
		ids := make([]string, 0, len(flat))
		for id := range flat {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		messages := make([]*goi18n.Message, 0, len(ids))
		for _, id := range ids {
			messages = append(messages, &goi18n.Message{ID: id, Other: flat[id]})
		}
		if err := c.messages.AddMessages(tag, messages...); err != nil {
			return nil, fmt.Errorf("index locale %q: %w", locale, err)
		}
	}
	return c, nil
}

// Locales returns the catalog's locale codes in sorted order.
func (c *Catalog) Locales() []string {
	return c.bundle.Locales()
}

// Tags returns the catalog's locales as language tags, sorted by code.
func (c *Catalog) Tags() []language.Tag {
	locales := c.Locales()
	out := make([]language.Tag, 0, len(locales))
	for _, locale := range locales {
		out = append(out, c.tags[locale])
	}
	return out
}

// HasLocale reports whether the catalog defines locale.
func (c *Catalog) HasLocale(locale string) bool {
	_, ok := c.bundle[locale]
	return ok
}

// Localizer binds the catalog to an active and a fallback locale.
func (c *Catalog) Localizer(locale, fallback string) (*Localizer, error) {
	for _, l := range []string{locale, fallback} {
		if !c.HasLocale(l) {
			return nil, fmt.Errorf("%w: %q", domain.ErrUnknownLocale, l)
		}
	}
	return &Localizer{catalog: c, locale: locale, fallback: fallback}, nil
}

// NewLocalizer builds a catalog for bundle and binds it to locale and
// fallback.
func NewLocalizer(bundle entities.Bundle, locale, fallback string) (*Localizer, error) {
	catalog, err := NewCatalog(bundle, fallback)
	if err != nil {
		return nil, err
	}
	return catalog.Localizer(locale, fallback)
}

// MissingTranslationError reports a key-path that resolves to no string in
// either the active or the fallback locale.
type MissingTranslationError struct {
	Locale  string
	KeyPath string
}

func (e *MissingTranslationError) Error() string {
	return fmt.Sprintf("missing translation for %q (locale %s)", e.KeyPath, e.Locale)
}

func (e *MissingTranslationError) Unwrap() error { return domain.ErrMissingTranslation }

func (l *Localizer) Locale() string { return l.locale }

func (l *Localizer) Fallback() string { return l.fallback }

// Catalog returns the catalog the localizer reads from.
func (l *Localizer) Catalog() *Catalog { return l.catalog }

// WithLocale returns a localizer for another active locale sharing the same
// catalog and fallback.
func (l *Localizer) WithLocale(locale string) (*Localizer, error) {
	return l.catalog.Localizer(locale, l.fallback)
}

// Lookup resolves keyPath in the active locale, then in the fallback locale.
func (l *Localizer) Lookup(keyPath string) (string, error) {
	value, _, err := l.resolve(keyPath)
	return value, err
}

// T renders keyPath with data as go-i18n template data. If the key cannot
// be resolved the key-path itself is returned; callers that must fail on
// missing copy use Lookup.
func (l *Localizer) T(keyPath string, data map[string]any) string {
	value, locale, err := l.resolve(keyPath)
	if err != nil {
		return keyPath
	}
	if data == nil {
		return value
	}
	msg, err := goi18n.NewLocalizer(l.catalog.messages, locale).Localize(&goi18n.LocalizeConfig{
		MessageID:    keyPath,
		TemplateData: data,
	})
	if err != nil {
		return value
	}
	return msg
}

func (l *Localizer) resolve(keyPath string) (string, string, error) {
	if value, ok := entities.Lookup(l.catalog.bundle[l.locale], keyPath); ok {
		return value, l.locale, nil
	}
	if l.fallback != l.locale {
		if value, ok := entities.Lookup(l.catalog.bundle[l.fallback], keyPath); ok {
			return value, l.fallback, nil
		}
	}
	return "", "", &MissingTranslationError{Locale: l.locale, KeyPath: keyPath}
}
