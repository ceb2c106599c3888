package i18n

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/output"
	"github.com/VilnaCRM-Org/website-sub001/pkg/yamljson"
)

// UnmarshalFunc decodes one fragment file into v.
type UnmarshalFunc func(data []byte, v any) error

var _ output.FragmentSource = (*FileSource)(nil)

// FileSource discovers fragments named <locale>.<format> anywhere under
// its root, e.g. landing/en.json or swagger/uk.toml.
type FileSource struct {
	fsys       fs.FS
	unmarshal  map[string]UnmarshalFunc
	maxWorkers int
	logger     *zap.Logger
}

// NewFileSource creates a FileSource reading from fsys with JSON, TOML and
// YAML decoders registered.
func NewFileSource(fsys fs.FS, logger *zap.Logger) *FileSource {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &FileSource{
		fsys:       fsys,
		unmarshal:  map[string]UnmarshalFunc{},
		maxWorkers: 8,
		logger:     logger,
	}
	s.RegisterUnmarshalFunc("json", json.Unmarshal)
	s.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	s.RegisterUnmarshalFunc("yaml", unmarshalYAML)
	s.RegisterUnmarshalFunc("yml", unmarshalYAML)
	return s
}

// RegisterUnmarshalFunc registers a decoder for a file extension.
func (s *FileSource) RegisterUnmarshalFunc(format string, fn UnmarshalFunc) {
	s.unmarshal[strings.ToLower(format)] = fn
}

// Scan decodes every fragment. Fragments are returned sorted by path, which
// is the order they are merged in.
func (s *FileSource) Scan(ctx context.Context) ([]entities.Fragment, error) {
	var candidates []entities.Fragment
	err := fs.WalkDir(s.fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("%w: %s: %w", domain.ErrFragmentRead, p, err)
		}
		if d.IsDir() {
			return nil
		}
		locale, ok := s.fragmentLocale(p)
		if !ok {
			s.logger.Debug("skipping non-fragment file", zap.String("path", p))
			return nil
		}
		candidates = append(candidates, entities.Fragment{Path: p, Locale: locale})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(candidates, func(i, j int) bool { return candidates[i].Path < candidates[j].Path })

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxWorkers)
	for i := range candidates {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			messages, err := s.decode(candidates[i].Path)
			if err != nil {
				return err
			}
			candidates[i].Messages = messages
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return candidates, nil
}

func (s *FileSource) fragmentLocale(p string) (string, bool) {
	base := path.Base(p)
	ext := strings.TrimPrefix(path.Ext(base), ".")
	if _, ok := s.unmarshal[strings.ToLower(ext)]; !ok {
		return "", false
	}
	tag, err := language.Parse(strings.TrimSuffix(base, path.Ext(base)))
	if err != nil {
		return "", false
	}
	return tag.String(), true
}

func (s *FileSource) decode(p string) (map[string]any, error) {
	data, err := fs.ReadFile(s.fsys, p)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFragmentRead, p, err)
	}
	fn := s.unmarshal[strings.ToLower(strings.TrimPrefix(path.Ext(p), "."))]
	messages := map[string]any{}
	if err := fn(data, &messages); err != nil {
		return nil, fmt.Errorf("%w: %s: %w", domain.ErrFragmentParse, p, err)
	}
	return messages, nil
}

func unmarshalYAML(data []byte, v any) error {
	doc, err := yamljson.Unmarshal(data)
	if err != nil {
		return err
	}
	target, ok := v.(*map[string]any)
	if !ok {
		return fmt.Errorf("unsupported yaml target %T", v)
	}
	if doc == nil {
		return nil
	}
	tree, ok := doc.(map[string]any)
	if !ok {
		return fmt.Errorf("top-level value must be a mapping, got %T", doc)
	}
	*target = tree
	return nil
}
