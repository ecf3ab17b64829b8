package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"resort-booking/cmd/bootstrap"
	"resort-booking/internal/infra/db"
	"resort-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/fx"
)

func init() {
	// 設定ミスでもデバッグ情報を公開しない（フェイルセーフ）
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           resort-booking
// @version         1.0
// @description     Availability, booking, quote and contact API for a resort website.

// @BasePath  /
// @schemes http https
func startServer(lc fx.Lifecycle, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			listenAddr := ":" + cfg.Server.Port
			logger.Info("🚀 サーバーを起動します", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("サーバーの起動に失敗しました", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("🛑 サーバーを停止します")
			return nil
		},
	})
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "resort-booking",
		Short:        "Resort booking API: availability, bookings, quotes and contact",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}

	root.AddCommand(newServeCmd())
	root.AddCommand(newMigrateCmd())

	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return serve()
		},
	}
}

func newMigrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending datastore migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := bootstrap.NewConfig()
			if err != nil {
				return err
			}
			if !cfg.Datastore.IsConfigured() {
				return fmt.Errorf("DATASTORE_URL and DATASTORE_KEY must be set to run migrations")
			}

			logger := bootstrap.NewLogger(cfg)
			ctx := cmd.Context()

			pool, cleanup, err := db.Connect(ctx, cfg.Datastore, logger)
			if err != nil {
				return err
			}
			defer cleanup()

			return db.Migrate(ctx, pool, logger)
		},
	}
}

func serve() error {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startServer,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("アプリケーションの起動に失敗しました", "error", err)
		return err
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("アプリケーションの停止に失敗しました", "error", err)
	}

	slog.Info("アプリケーションが正常に停止しました")
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
