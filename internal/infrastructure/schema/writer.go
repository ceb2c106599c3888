package schema

import (
	"context"

	"github.com/VilnaCRM-Org/website-sub001/internal/ports/output"
	"github.com/VilnaCRM-Org/website-sub001/pkg/atomicfile"
)

var _ output.ArtifactWriter = FileWriter{}

// FileWriter writes artifacts to the local filesystem atomically.
type FileWriter struct{}

func (FileWriter) WriteFile(_ context.Context, path string, data []byte) error {
	return atomicfile.Write(path, data, 0o644)
}
