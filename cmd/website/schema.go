package main

import (
	"github.com/spf13/cobra"

	"github.com/VilnaCRM-Org/website-sub001/internal/application"
	"github.com/VilnaCRM-Org/website-sub001/internal/infrastructure/schema"
)

type schemaFlags struct {
	version    string
	openAPIURL string
	openAPIOut string
	graphQLURL string
	graphQLOut string
}

func (a *app) schemaCmd() *cobra.Command {
	f := &schemaFlags{}
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Download the user-service API schemas",
	}
	cmd.PersistentFlags().StringVar(&f.version, "version", "", "user-service API version (default API_VERSION)")

	fetch := &cobra.Command{
		Use:   "fetch",
		Short: "Fetch the OpenAPI schema and write it as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defer a.startTracing(ctx)()
			_, err := a.schemaService(f).FetchOpenAPI(ctx)
			return err
		},
	}
	fetch.Flags().StringVar(&f.openAPIURL, "url", "", "schema URL template, {version} is substituted (default API_SCHEMA_URL)")
	fetch.Flags().StringVarP(&f.openAPIOut, "out", "o", "", "output file (default SCHEMA_PATH)")

	graphqlCmd := &cobra.Command{
		Use:   "graphql",
		Short: "Fetch the GraphQL SDL the mock server follows",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defer a.startTracing(ctx)()
			_, err := a.schemaService(f).FetchGraphQL(ctx)
			return err
		},
	}
	graphqlCmd.Flags().StringVar(&f.graphQLURL, "url", "", "SDL URL template, {version} is substituted (default GRAPHQL_SCHEMA_URL)")
	graphqlCmd.Flags().StringVarP(&f.graphQLOut, "out", "o", "", "output file (default GRAPHQL_SCHEMA_PATH)")

	cmd.AddCommand(fetch, graphqlCmd)
	return cmd
}

func (a *app) schemaService(f *schemaFlags) *application.SchemaService {
	sources := application.SchemaSources{
		Version:     firstNonEmpty(f.version, a.cfg.APIVersion),
		OpenAPIURL:  firstNonEmpty(f.openAPIURL, a.cfg.APISchemaURL),
		OpenAPIPath: firstNonEmpty(f.openAPIOut, a.cfg.SchemaPath),
		GraphQLURL:  firstNonEmpty(f.graphQLURL, a.cfg.GraphQLSchemaURL),
		GraphQLPath: firstNonEmpty(f.graphQLOut, a.cfg.GraphQLSchemaPath),
	}
	return application.NewSchemaService(
		schema.NewHTTPFetcher(nil, a.cfg.FetchTimeout),
		schema.YAMLConverter{},
		schema.FileWriter{},
		sources,
		a.logger,
	)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
