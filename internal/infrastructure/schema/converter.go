package schema

import (
	"fmt"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/output"
	"github.com/VilnaCRM-Org/website-sub001/pkg/yamljson"
)

var _ output.SchemaConverter = YAMLConverter{}

// YAMLConverter converts OpenAPI YAML into indented JSON.
type YAMLConverter struct{}

func (YAMLConverter) ToJSON(raw []byte) ([]byte, error) {
	out, err := yamljson.ToJSON(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSchemaDecode, err)
	}
	return out, nil
}
