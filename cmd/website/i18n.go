package main

import (
	"context"
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/VilnaCRM-Org/website-sub001/internal/application"
	"github.com/VilnaCRM-Org/website-sub001/internal/infrastructure/i18n"
)

func (a *app) i18nCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "i18n",
		Short: "Localization tooling",
	}
	cmd.AddCommand(a.i18nBuildCmd())
	return cmd
}

func (a *app) i18nBuildCmd() *cobra.Command {
	var (
		localesDir string
		out        string
		strict     bool
		watch      bool
		debounce   time.Duration
	)
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Merge translation fragments into the localization bundle",
		Long: `Scans the locales directory for <locale>.json|toml|yaml|yml fragments,
merges them per locale and writes {locale: {translation: {...}}} JSON.
Every run is a full rescan. With --watch the bundle is rebuilt on change.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			defer a.startTracing(ctx)()

			if localesDir == "" {
				localesDir = a.cfg.LocalesDir
			}
			if out == "" {
				out = a.cfg.LocalizationPath
			}
			service := application.NewLocalizationService(
				i18n.NewFileSource(os.DirFS(localesDir), a.logger),
				i18n.NewFileStore(out),
				a.cfg.FallbackLanguage,
				strict,
				a.logger,
			)

			if _, err := service.Build(ctx); err != nil {
				if !watch {
					return err
				}
				a.logger.Error("initial build failed", zap.Error(err))
			}
			if !watch {
				return nil
			}

			rebuild := func(ctx context.Context) error {
				_, err := service.Build(ctx)
				return err
			}
			return i18n.NewWatcher(localesDir, debounce, rebuild, a.logger).Run(ctx)
		},
	}
	cmd.Flags().StringVar(&localesDir, "locales", "", "fragment directory (default LOCALES_DIR)")
	cmd.Flags().StringVarP(&out, "out", "o", "", "bundle output file (default LOCALIZATION_PATH)")
	cmd.Flags().BoolVar(&strict, "strict", false, "fail when a locale lacks keys of the fallback locale")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "rebuild whenever a fragment changes")
	cmd.Flags().DurationVar(&debounce, "debounce", i18n.DefaultDebounce, "quiet period before a watch rebuild")
	return cmd
}
