package graphql

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VilnaCRM-Org/website-sub001/internal/application"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
)

func newTestHandler(t *testing.T) *Handler {
	t.Helper()
	h, err := NewHandler(application.NewUserService(nil), nil)
	require.NoError(t, err)
	return h
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, Path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestCreateUserMutation(t *testing.T) {
	rec := post(t, newTestHandler(t), `{
		"query": `+quote(createUserMutation)+`,
		"operationName": "CreateUser",
		"variables": {"input": {"email": "a@b.com", "initials": "AB", "clientMutationId": "x"}}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"data": {"createUser": {
		"user": {"id": "1", "confirmed": true, "email": "a@b.com", "initials": "AB"},
		"clientMutationId": "x"
	}}}`, rec.Body.String())
}

func TestCreateUserEchoesClientMutationIDUnchanged(t *testing.T) {
	rec := post(t, newTestHandler(t), `{
		"query": `+quote(createUserMutation)+`,
		"variables": {"input": {"email": "a@b.com", "initials": "AB", "clientMutationId": "  x  "}}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": {"createUser": {
		"user": {"id": "1", "confirmed": true, "email": "a@b.com", "initials": "AB"},
		"clientMutationId": "  x  "
	}}}`, rec.Body.String())
}

func TestCreateUserWithoutClientMutationID(t *testing.T) {
	rec := post(t, newTestHandler(t), `{
		"query": `+quote(createUserMutation)+`,
		"variables": {"input": {"email": "a@b.com", "initials": "AB"}}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": {"createUser": {
		"user": {"id": "1", "confirmed": true, "email": "a@b.com", "initials": "AB"},
		"clientMutationId": null
	}}}`, rec.Body.String())
}

func TestCreateUserFailureIsGeneric(t *testing.T) {
	rec := post(t, newTestHandler(t), `{
		"query": `+quote(createUserMutation)+`,
		"variables": {"input": {"email": " ", "initials": "AB"}}
	}`)

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, domain.ErrUserCreation.Error())
	assert.NotContains(t, body, "email is empty")
}

type failingUsers struct{}

func (failingUsers) CreateUser(context.Context, entities.CreateUserInput) (*entities.CreateUserPayload, error) {
	return nil, errors.New("should not be reached")
}

func TestMissingRequiredInputIsRejectedBeforeResolver(t *testing.T) {
	h, err := NewHandler(failingUsers{}, nil)
	require.NoError(t, err)

	rec := post(t, h, `{"query": `+quote(createUserMutation)+`, "variables": {"input": {"email": "a@b.com"}}}`)
	assert.Contains(t, rec.Body.String(), "initials")
	assert.NotContains(t, rec.Body.String(), "should not be reached")
}

func TestHealthQueryOverGET(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, Path+"?query="+url.QueryEscape("{ health }"), nil)
	rec := httptest.NewRecorder()
	newTestHandler(t).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data": {"health": "ok"}}`, rec.Body.String())
}

func TestBadRequests(t *testing.T) {
	h := newTestHandler(t)

	rec := post(t, h, `{not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = post(t, h, `{"query": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodGet, Path+"?query=x&variables=%7B", nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req = httptest.NewRequest(http.MethodDelete, Path, nil)
	rec = httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func quote(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`)
	return `"` + r.Replace(s) + `"`
}
