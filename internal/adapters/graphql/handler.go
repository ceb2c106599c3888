package graphql

import (
	"encoding/json"
	"fmt"
	"net/http"

	gql "github.com/graphql-go/graphql"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/ports/input"
)

// Path is where the demo endpoint is mounted.
const Path = "/graphql"

const maxRequestBytes = 1 << 20

type request struct {
	Query         string         `json:"query"`
	OperationName string         `json:"operationName"`
	Variables     map[string]any `json:"variables"`
}

// Handler serves GraphQL over HTTP: POST with a JSON body, or GET with
// query, operationName and variables URL parameters.
type Handler struct {
	schema gql.Schema
	logger *zap.Logger
}

func NewHandler(users input.UserUseCase, logger *zap.Logger) (*Handler, error) {
	schema, err := NewSchema(users)
	if err != nil {
		return nil, fmt.Errorf("build graphql schema: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{schema: schema, logger: logger}, nil
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	req, status, err := decodeRequest(r)
	if err != nil {
		writeJSON(w, status, map[string]any{"errors": []map[string]string{{"message": err.Error()}}})
		return
	}

	ctx, span := otel.Tracer("github.com/VilnaCRM-Org/website-sub001/internal/adapters/graphql").Start(r.Context(), "graphql.execute")
	defer span.End()
	span.SetAttributes(attribute.String("graphql.operation", req.OperationName))

	result := gql.Do(gql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        ctx,
	})
	if result.HasErrors() {
		for _, e := range result.Errors {
			h.logger.Info("graphql error", zap.String("operation", req.OperationName), zap.String("message", e.Message))
		}
	}
	writeJSON(w, http.StatusOK, result)
}

func decodeRequest(r *http.Request) (request, int, error) {
	var req request
	switch r.Method {
	case http.MethodPost:
		body := http.MaxBytesReader(nil, r.Body, maxRequestBytes)
		if err := json.NewDecoder(body).Decode(&req); err != nil {
			return req, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err)
		}
	case http.MethodGet:
		q := r.URL.Query()
		req.Query = q.Get("query")
		req.OperationName = q.Get("operationName")
		if raw := q.Get("variables"); raw != "" {
			if err := json.Unmarshal([]byte(raw), &req.Variables); err != nil {
				return req, http.StatusBadRequest, fmt.Errorf("invalid variables: %w", err)
			}
		}
	default:
		return req, http.StatusMethodNotAllowed, fmt.Errorf("method %s not allowed", r.Method)
	}
	if req.Query == "" {
		return req, http.StatusBadRequest, fmt.Errorf("query is required")
	}
	return req, http.StatusOK, nil
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
