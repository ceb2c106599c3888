package application

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/input"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/output"
)

var _ input.LocalizationUseCase = (*LocalizationService)(nil)

// LocalizationService aggregates translation fragments into the bundle
// consumed by the website at runtime.
type LocalizationService struct {
	source        output.FragmentSource
	store         output.BundleStore
	defaultLocale string
	strict        bool
	logger        *zap.Logger
}

// NewLocalizationService creates a LocalizationService. defaultLocale is the
// reference locale for key parity; strict turns parity gaps into errors.
func NewLocalizationService(
	source output.FragmentSource,
	store output.BundleStore,
	defaultLocale string,
	strict bool,
	logger *zap.Logger,
) *LocalizationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &LocalizationService{
		source:        source,
		store:         store,
		defaultLocale: defaultLocale,
		strict:        strict,
		logger:        logger,
	}
}

// Build rescans every fragment, merges them and rewrites the bundle.
func (s *LocalizationService) Build(ctx context.Context) (*entities.BuildReport, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "localization.build")
	defer span.End()

	fragments, err := s.source.Scan(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("scan fragments: %w", err)
	}
	if len(fragments) == 0 {
		return nil, domain.ErrNoFragments
	}

	bundle := MergeFragments(fragments)
	report := &entities.BuildReport{
		OutputPath: s.store.Path(),
		Fragments:  len(fragments),
		Locales:    bundle.Locales(),
		Keys:       make(map[string]int, len(bundle)),
	}
	for locale, tree := range bundle {
		report.Keys[locale] = len(entities.KeyPaths(tree))
	}
	span.SetAttributes(
		attribute.Int("localization.fragments", report.Fragments),
		attribute.StringSlice("localization.locales", report.Locales),
	)

	missing, err := MissingKeys(bundle, s.defaultLocale)
	if err != nil {
		if s.strict {
			return nil, err
		}
		s.logger.Warn("parity check skipped", zap.Error(err))
	}
	report.Missing = missing
	for locale, keys := range missing {
		s.logger.Warn("locale is missing keys",
			zap.String("locale", locale),
			zap.String("reference", s.defaultLocale),
			zap.Strings("keys", keys),
		)
	}
	if s.strict && len(missing) > 0 {
		return report, fmt.Errorf("%w: %d locale(s) differ from %s", domain.ErrLocaleParity, len(missing), s.defaultLocale)
	}

	if err := s.store.Save(ctx, bundle); err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("save bundle: %w", err)
	}
	s.logger.Info("localization bundle written",
		zap.String("path", report.OutputPath),
		zap.Int("fragments", report.Fragments),
		zap.Strings("locales", report.Locales),
	)
	return report, nil
}

// MergeFragments merges fragments in order; on key collision the fragment
// processed last wins.
func MergeFragments(fragments []entities.Fragment) entities.Bundle {
	bundle := entities.Bundle{}
	for _, f := range fragments {
		bundle.Merge(f.Locale, f.Messages)
	}
	return bundle
}

// MissingKeys lists, per locale, the key-paths of the reference locale that
// the locale does not define. Locales without gaps are omitted.
func MissingKeys(bundle entities.Bundle, reference string) (map[string][]string, error) {
	refTree, ok := bundle[reference]
	if !ok {
		return nil, fmt.Errorf("%w: reference locale %q has no fragments", domain.ErrUnknownLocale, reference)
	}
	refKeys := entities.KeyPaths(refTree)
	missing := map[string][]string{}
	for _, locale := range bundle.Locales() {
		if locale == reference {
			continue
		}
		tree := bundle[locale]
		for _, key := range refKeys {
			if _, found := entities.Lookup(tree, key); !found {
				missing[locale] = append(missing[locale], key)
			}
		}
	}
	return missing, nil
}
