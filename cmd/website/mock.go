package main

import (
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/adapters/graphql"
	"github.com/VilnaCRM-Org/website-sub001/internal/adapters/web"
	"github.com/VilnaCRM-Org/website-sub001/internal/application"
)

func (a *app) mockCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "mock",
		Short: "Serve the demo GraphQL API",
		Long:  "Serves the createUser mutation at /graphql. Users are fabricated and never stored.",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defer a.startTracing(ctx)()

			if addr == "" {
				addr = a.cfg.MockAddr
			}
			handler, err := graphql.NewHandler(application.NewUserService(a.logger), a.logger)
			if err != nil {
				return err
			}
			mux := http.NewServeMux()
			mux.Handle(graphql.Path, handler)
			mux.HandleFunc("GET /healthz", web.HandleHealth)

			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen %s: %w", addr, err)
			}
			a.logger.Info("serving graphql mock", zap.String("endpoint", "http://"+ln.Addr().String()+graphql.Path))
			return web.Serve(ctx, &http.Server{
				Handler: web.Chain(mux,
					web.RequestID(),
					web.Trace(),
					web.AccessLog(a.logger),
					web.Recover(a.logger),
				),
				ReadHeaderTimeout: 5 * time.Second,
			}, ln, a.logger)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default MOCK_ADDR)")
	return cmd
}
