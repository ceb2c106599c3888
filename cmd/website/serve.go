package main

import (
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/adapters/graphql"
	"github.com/VilnaCRM-Org/website-sub001/internal/adapters/web"
	"github.com/VilnaCRM-Org/website-sub001/internal/application"
	"github.com/VilnaCRM-Org/website-sub001/internal/domain/entities"
	"github.com/VilnaCRM-Org/website-sub001/internal/infrastructure/i18n"
	"github.com/VilnaCRM-Org/website-sub001/internal/ports/input"
)

func (a *app) serveCmd() *cobra.Command {
	var (
		addr         string
		localization string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the website",
		Long: `Serves the landing page, the API documentation viewer and the sign-up form.
Translations come from the bundle compiled into the binary unless
--localization points at a bundle file on disk.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defer a.startTracing(ctx)()

			if addr == "" {
				addr = a.cfg.HTTPAddr
			}
			bundle, err := loadBundle(cmd, localization)
			if err != nil {
				return err
			}
			catalog, err := i18n.NewCatalog(bundle, a.cfg.FallbackLanguage)
			if err != nil {
				return err
			}

			server, err := web.NewServer(web.Options{
				Addr:             addr,
				MainLanguage:     a.cfg.MainLanguage,
				FallbackLanguage: a.cfg.FallbackLanguage,
				StaticDir:        a.cfg.StaticDir,
				SchemaPath:       a.cfg.SchemaPath,
				CanonicalURL:     a.cfg.WebsiteURL,
			}, catalog, a.users(), a.logger)
			if err != nil {
				return fmt.Errorf("build website: %w", err)
			}
			a.logger.Info("serving website",
				zap.String("addr", addr),
				zap.Strings("locales", catalog.Locales()),
				zap.String("main_language", a.cfg.MainLanguage),
				zap.String("website_url", a.cfg.WebsiteURL),
			)
			return server.ListenAndServe(ctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default HTTP_ADDR)")
	cmd.Flags().StringVar(&localization, "localization", "", "read the bundle from this file instead of the embedded one")
	return cmd
}

// users picks the sign-up backend: the configured GraphQL endpoint, or the
// in-process resolver when GRAPHQL_URL is unset.
func (a *app) users() input.UserUseCase {
	if a.cfg.GraphQLURL == "" {
		return application.NewUserService(a.logger)
	}
	a.logger.Info("sign-ups use remote graphql", zap.String("url", a.cfg.GraphQLURL))
	return graphql.NewClient(a.cfg.GraphQLURL, &http.Client{Timeout: a.cfg.FetchTimeout}, a.logger)
}

func loadBundle(cmd *cobra.Command, path string) (entities.Bundle, error) {
	if path == "" {
		return i18n.LoadEmbedded()
	}
	bundle, err := i18n.NewFileStore(path).Load(cmd.Context())
	if err != nil {
		return nil, fmt.Errorf("load localization %s: %w", path, err)
	}
	return bundle, nil
}
