package input

import (
	"context"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
)

type UserUseCase interface {
	CreateUser(ctx context.Context, in entities.CreateUserInput) (*entities.CreateUserPayload, error)
}
