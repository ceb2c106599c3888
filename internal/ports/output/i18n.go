package output

import (
	"context"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
)

// Translator exposes the translation contract for user-facing copy.
// Implementations are bound to one locale and its fallback.
type Translator interface {
	// Lookup resolves keyPath or fails with a missing-translation error.
	Lookup(keyPath string) (string, error)
	// T renders the message identified by keyPath. data is an optional map
	// used for template placeholders (may be nil).
	T(keyPath string, data map[string]any) string
	// Locale reports the active locale code.
	Locale() string
}

// FragmentSource discovers and decodes translation fragments.
type FragmentSource interface {
	Scan(ctx context.Context) ([]entities.Fragment, error)
}

// BundleStore persists the merged localization artifact.
type BundleStore interface {
	Save(ctx context.Context, bundle entities.Bundle) error
	Load(ctx context.Context) (entities.Bundle, error)
	Path() string
}
