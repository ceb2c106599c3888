package input

import "context"

type SchemaUseCase interface {
	FetchOpenAPI(ctx context.Context) (string, error)
	FetchGraphQL(ctx context.Context) (string, error)
}
