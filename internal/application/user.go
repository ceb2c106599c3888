package application

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/input"
)

// demoUserID is the identifier every fabricated user receives.
const demoUserID = "1"

var _ input.UserUseCase = (*UserService)(nil)

// UserService resolves the demo createUser mutation. Nothing is stored.
type UserService struct {
	logger *zap.Logger
}

func NewUserService(logger *zap.Logger) *UserService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{logger: logger}
}

// CreateUser returns a fabricated confirmed user echoing the input. Any
// failure is logged and reported to the caller as domain.ErrUserCreation only.
func (s *UserService) CreateUser(ctx context.Context, in entities.CreateUserInput) (*entities.CreateUserPayload, error) {
	payload, err := fabricateUser(ctx, in)
	if err != nil {
		s.logger.Warn("create user failed",
			zap.Stringp("client_mutation_id", in.ClientMutationID),
			zap.Error(err),
		)
		return nil, domain.ErrUserCreation
	}
	return payload, nil
}

func fabricateUser(ctx context.Context, in entities.CreateUserInput) (*entities.CreateUserPayload, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(in.Email)
	if email == "" {
		return nil, errors.New("email is empty")
	}
	initials := strings.TrimSpace(in.Initials)
	if initials == "" {
		return nil, errors.New("initials are empty")
	}
	return &entities.CreateUserPayload{
		User: entities.User{
			ID:        demoUserID,
			Confirmed: true,
			Email:     email,
			Initials:  initials,
		},
		ClientMutationID: in.ClientMutationID,
	}, nil
}
