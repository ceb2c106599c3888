package application

import (
	"context"
	"fmt"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/domain"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/input"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/output"
)

// VersionPlaceholder is replaced by the API version in schema URL templates.
const VersionPlaceholder = "{version}"

var _ input.SchemaUseCase = (*SchemaService)(nil)

// SchemaSources locates the remote schemas and where to write them.
type SchemaSources struct {
	Version     string
	OpenAPIURL  string
	OpenAPIPath string
	GraphQLURL  string
	GraphQLPath string
}

// SchemaService downloads the user-service API schemas used by the docs
// pages and the GraphQL mock.
type SchemaService struct {
	fetcher   output.SchemaFetcher
	converter output.SchemaConverter
	writer    output.ArtifactWriter
	sources   SchemaSources
	logger    *zap.Logger
}

func NewSchemaService(
	fetcher output.SchemaFetcher,
	converter output.SchemaConverter,
	writer output.ArtifactWriter,
	sources SchemaSources,
	logger *zap.Logger,
) *SchemaService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SchemaService{
		fetcher:   fetcher,
		converter: converter,
		writer:    writer,
		sources:   sources,
		logger:    logger,
	}
}

// FetchOpenAPI downloads the OpenAPI YAML schema and writes it as JSON.
// It returns the written path.
func (s *SchemaService) FetchOpenAPI(ctx context.Context) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "schema.fetch_openapi")
	defer span.End()

	url, err := s.resolve(s.sources.OpenAPIURL)
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String("schema.url", url))

	raw, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("fetch openapi schema: %w", err)
	}
	doc, err := s.converter.ToJSON(raw)
	if err != nil {
		return "", fmt.Errorf("convert openapi schema: %w", err)
	}
	if err := s.writer.WriteFile(ctx, s.sources.OpenAPIPath, doc); err != nil {
		return "", fmt.Errorf("write openapi schema: %w", err)
	}
	s.logger.Info("openapi schema written",
		zap.String("url", url),
		zap.String("path", s.sources.OpenAPIPath),
		zap.Int("bytes", len(doc)),
	)
	return s.sources.OpenAPIPath, nil
}

// FetchGraphQL downloads the GraphQL SDL the mock server is modelled on.
func (s *SchemaService) FetchGraphQL(ctx context.Context) (string, error) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, "schema.fetch_graphql")
	defer span.End()

	url, err := s.resolve(s.sources.GraphQLURL)
	if err != nil {
		return "", err
	}
	span.SetAttributes(attribute.String("schema.url", url))

	raw, err := s.fetcher.Fetch(ctx, url)
	if err != nil {
		span.RecordError(err)
		return "", fmt.Errorf("fetch graphql schema: %w", err)
	}
	if err := s.writer.WriteFile(ctx, s.sources.GraphQLPath, raw); err != nil {
		return "", fmt.Errorf("write graphql schema: %w", err)
	}
	s.logger.Info("graphql schema written",
		zap.String("url", url),
		zap.String("path", s.sources.GraphQLPath),
		zap.Int("bytes", len(raw)),
	)
	return s.sources.GraphQLPath, nil
}

func (s *SchemaService) resolve(template string) (string, error) {
	version := strings.TrimSpace(s.sources.Version)
	if version == "" {
		return "", domain.ErrMissingVersion
	}
	if strings.TrimSpace(template) == "" {
		return "", fmt.Errorf("%w: schema url is empty", domain.ErrSchemaFetch)
	}
	return strings.ReplaceAll(template, VersionPlaceholder, version), nil
}
