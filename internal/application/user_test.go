package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
)

func TestCreateUser(t *testing.T) {
	svc := NewUserService(nil)
	id := "x"

	got, err := svc.CreateUser(context.Background(), entities.CreateUserInput{
		Email:            "a@b.com",
		Initials:         "AB",
		ClientMutationID: &id,
	})
	require.NoError(t, err)
	assert.Equal(t, &entities.CreateUserPayload{
		User:             entities.User{ID: "1", Confirmed: true, Email: "a@b.com", Initials: "AB"},
		ClientMutationID: &id,
	}, got)
}

func TestCreateUserFailuresAreGeneric(t *testing.T) {
	cancelled, cancel := context.WithCancel(context.Background())
	cancel()

	tests := []struct {
		name string
		ctx  context.Context
		in   entities.CreateUserInput
	}{
		{name: "blank email", ctx: context.Background(), in: entities.CreateUserInput{Initials: "AB"}},
		{name: "blank initials", ctx: context.Background(), in: entities.CreateUserInput{Email: "a@b.com", Initials: "  "}},
		{name: "cancelled", ctx: cancelled, in: entities.CreateUserInput{Email: "a@b.com", Initials: "AB"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUserService(nil).CreateUser(tt.ctx, tt.in)
			require.Error(t, err)
			assert.Equal(t, domain.ErrUserCreation, err, "cause must not leak to the caller")
		})
	}
}
