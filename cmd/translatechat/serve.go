package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/at-ishikawa/translatechat/internal/cache"
	"github.com/at-ishikawa/translatechat/internal/config"
	"github.com/at-ishikawa/translatechat/internal/database"
	"github.com/at-ishikawa/translatechat/internal/provider"
	"github.com/at-ishikawa/translatechat/internal/provider/google"
	"github.com/at-ishikawa/translatechat/internal/provider/openai"
	"github.com/at-ishikawa/translatechat/internal/server"
)

const databaseRetryDelay = time.Second

func newServeCommand() *cobra.Command {
	var port int

	command := &cobra.Command{
		Use:   "serve",
		Short: "Serve the translation endpoint used by the chat",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}

			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			p, closeProvider := newProvider(cfg.Provider)
			defer func() {
				_ = closeProvider()
			}()
			if !p.HasCredentials() {
				slog.Default().Warn("the translation provider has no API key, requests will fail",
					"provider", p.Name(),
				)
			}

			c, closeCache, err := newCache(ctx, cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = closeCache()
			}()

			handler := server.NewHandler(cfg.Server.Path, server.NewTranslateHandler(p, c))
			slog.Default().Info("serving translations",
				"provider", p.Name(),
				"cache", cfg.Cache.Backend,
				"path", cfg.Server.Path,
			)
			return server.Run(ctx, fmt.Sprintf(":%d", cfg.Server.Port), handler)
		},
	}

	command.Flags().IntVar(&port, "port", 8080, "port to listen on (default from the configuration)")
	return command
}

func newProvider(cfg config.ProviderConfig) (provider.Provider, func() error) {
	switch cfg.Name {
	case "openai":
		client := openai.NewClient(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
		return client, client.Close
	default:
		client := google.NewClient(google.Config{
			APIKey:  cfg.Google.APIKey,
			BaseURL: cfg.Google.BaseURL,
		})
		return client, func() error { return nil }
	}
}

// newCache returns a nil cache when caching is disabled.
func newCache(ctx context.Context, cfg *config.Config) (cache.Cache, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Cache.Backend {
	case "file":
		return cache.NewFileCache(cfg.Cache.Directory), noop, nil
	case "mysql":
		db, err := database.Open(cfg.Database)
		if err != nil {
			return nil, noop, fmt.Errorf("database.Open > %w", err)
		}
		if err := database.WaitReady(ctx, db, cfg.Database.ReadyAttempts, databaseRetryDelay); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("database.WaitReady > %w", err)
		}
		if err := database.Migrate(ctx, db); err != nil {
			_ = db.Close()
			return nil, noop, fmt.Errorf("database.Migrate > %w", err)
		}
		return cache.NewDBCache(db), db.Close, nil
	default:
		return nil, noop, nil
	}
}
