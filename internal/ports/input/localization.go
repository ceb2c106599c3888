package input

import (
	"context"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
)

type LocalizationUseCase interface {
	Build(ctx context.Context) (*entities.BuildReport, error)
}
