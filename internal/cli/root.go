package cli

import (
	"context"
	"fmt"
	"os"

	"rescue-site-server/internal/bootstrap"
	"rescue-site-server/internal/config"
	"rescue-site-server/internal/logger"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type rootOptions struct {
	envFile string
}

// RootCmd собирает дерево команд sitegen.
func RootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "sitegen",
		Short: "Operator tooling for rescue site generation",
		Long: `sitegen manages the rescue site database and runs site generation
without going through the HTTP API: migrations, seeding organizations,
generating plans and copy, and inspecting tenant status.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "path to an optional .env file")

	cmd.AddCommand(MigrateCmd(opts))
	cmd.AddCommand(SeedCmd(opts))
	cmd.AddCommand(GenerateCmd(opts))
	cmd.AddCommand(StatusCmd(opts))
	cmd.AddCommand(TokenCmd(opts))
	return cmd
}

// environment - загруженная конфигурация и логгер команды.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
}

func loadEnvironment(opts *rootOptions) (*environment, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(logger.Config{Level: cfg.LogLevel, Encoding: "console", OutputPath: "stderr"})
	if err != nil {
		return nil, err
	}

	// Мигратор пишет через глобальный zerolog
	zlog.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	return &environment{cfg: cfg, logger: log}, nil
}

// withServices поднимает зависимости на время выполнения fn.
func withServices(ctx context.Context, opts *rootOptions, fn func(env *environment, svc *bootstrap.Services) error) error {
	env, err := loadEnvironment(opts)
	if err != nil {
		return err
	}
	defer func() { _ = env.logger.Sync() }()

	svc, err := bootstrap.NewServices(ctx, env.cfg, bootstrap.CLIRetryPolicy, env.logger)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			env.logger.Warn("Failed to close connections", zap.Error(err))
		}
	}()
	return fn(env, svc)
}
