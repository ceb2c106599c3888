package graphql

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/input"
)

const createUserMutation = `mutation CreateUser($input: createUserInput!) {
  createUser(input: $input) {
    user { id confirmed email initials }
    clientMutationId
  }
}`

var _ input.UserUseCase = (*Client)(nil)

// Client runs createUser against a remote GraphQL endpoint. Like the
// in-process resolver it reports every failure as domain.ErrUserCreation.
type Client struct {
	endpoint string
	http     *http.Client
	logger   *zap.Logger
}

// NewClient creates a Client. A nil httpClient uses http.DefaultClient.
func NewClient(endpoint string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{endpoint: endpoint, http: httpClient, logger: logger}
}

type createUserResponse struct {
	Data struct {
		CreateUser *struct {
			User struct {
				ID        string `json:"id"`
				Confirmed bool   `json:"confirmed"`
				Email     string `json:"email"`
				Initials  string `json:"initials"`
			} `json:"user"`
			ClientMutationID *string `json:"clientMutationId"`
		} `json:"createUser"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

func (c *Client) CreateUser(ctx context.Context, in entities.CreateUserInput) (*entities.CreateUserPayload, error) {
	payload, err := c.createUser(ctx, in)
	if err != nil {
		c.logger.Warn("remote create user failed",
			zap.String("endpoint", c.endpoint),
			zap.Stringp("client_mutation_id", in.ClientMutationID),
			zap.Error(err),
		)
		return nil, domain.ErrUserCreation
	}
	return payload, nil
}

func (c *Client) createUser(ctx context.Context, in entities.CreateUserInput) (*entities.CreateUserPayload, error) {
	vars := map[string]any{
		"email":    in.Email,
		"initials": in.Initials,
		"password": in.Password,
	}
	if in.ClientMutationID != nil {
		vars["clientMutationId"] = *in.ClientMutationID
	}
	body, err := json.Marshal(request{
		Query:         createUserMutation,
		OperationName: "CreateUser",
		Variables:     map[string]any{"input": vars},
	})
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("POST %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("POST %s: unexpected status %s", c.endpoint, resp.Status)
	}

	var out createUserResponse
	if err := json.NewDecoder(http.MaxBytesReader(nil, resp.Body, maxRequestBytes)).Decode(&out); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("graphql: %s", out.Errors[0].Message)
	}
	if out.Data.CreateUser == nil {
		return nil, errors.New("graphql: empty createUser result")
	}
	u := out.Data.CreateUser
	return &entities.CreateUserPayload{
		User: entities.User{
			ID:        u.User.ID,
			Confirmed: u.User.Confirmed,
			Email:     u.User.Email,
			Initials:  u.User.Initials,
		},
		ClientMutationID: u.ClientMutationID,
	}, nil
}
