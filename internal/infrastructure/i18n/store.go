package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/output"
	"github.com/VilnaCRM-Org/website-sub001/pkg/atomicfile"
)

// resourceKey wraps each locale's tree in the resource shape the
// translation runtime expects: {"en": {"translation": {...}}}.
const resourceKey = "translation"

var _ output.BundleStore = (*FileStore)(nil)

// FileStore reads and writes the merged localization JSON file.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// Save rewrites the whole file. Keys are emitted in sorted order so equal
// bundles always produce identical bytes.
func (s *FileStore) Save(_ context.Context, bundle entities.Bundle) error {
	data, err := EncodeResources(bundle)
	if err != nil {
		return err
	}
	return atomicfile.Write(s.path, data, 0o644)
}

func (s *FileStore) Load(_ context.Context) (entities.Bundle, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", s.path, err)
	}
	return DecodeResources(data)
}

// EncodeResources renders bundle in resource shape.
func EncodeResources(bundle entities.Bundle) ([]byte, error) {
	resources := make(map[string]map[string]map[string]any, len(bundle))
	for locale, tree := range bundle {
		resources[locale] = map[string]map[string]any{resourceKey: tree}
	}
	data, err := json.MarshalIndent(resources, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encode localization: %w", err)
	}
	return append(data, '\n'), nil
}

// DecodeResources parses resource-shaped JSON back into a bundle.
func DecodeResources(data []byte) (entities.Bundle, error) {
	var resources map[string]map[string]map[string]any
	if err := json.Unmarshal(data, &resources); err != nil {
		return nil, fmt.Errorf("decode localization: %w", err)
	}
	bundle := make(entities.Bundle, len(resources))
	for locale, resource := range resources {
		tree, ok := resource[resourceKey]
		if !ok {
			return nil, fmt.Errorf("decode localization: locale %q has no %q object", locale, resourceKey)
		}
		bundle[locale] = tree
	}
	return bundle, nil
}
