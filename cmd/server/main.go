package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lobbysync-server/internal/app"
	"github.com/vovakirdan/lobbysync-server/internal/config"
	applog "github.com/vovakirdan/lobbysync-server/internal/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		overrides  config.Config
	)

	cmd := &cobra.Command{
		Use:   "lobbysync",
		Short: "Presence and health sync server for the Deceptive lobby",
		Long: `lobbysync tracks which players sit in which room, mirrors their health
to every room member over WebSocket, and keeps a player's seat for a grace
period while their browser moves between pages.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			bootLog := applog.New(overrides.LogLevel, overrides.LogFormat)

			cfg, path, err := config.Load(bootLog, configPath)
			if err != nil {
				bootLog.Error().Err(err).Msg("failed to load config")
				return err
			}
			cfg.UpdateFrom(overrides)

			logger := applog.New(cfg.LogLevel, cfg.LogFormat)
			logger.Info().
				Str("config", path).
				Int("max_players_per_room", cfg.MaxPlayersPerRoom).
				Dur("grace_period", cfg.GracePeriod).
				Msg("configuration loaded")

			application, err := app.New(&cfg, logger)
			if err != nil {
				return fmt.Errorf("init app: %w", err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info().Str("addr", cfg.Addr).Msg("starting lobbysync server")
			if err := application.Run(ctx); err != nil {
				logger.Error().Err(err).Msg("server exited with error")
				return err
			}
			logger.Info().Msg("server stopped")
			return nil
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&configPath, "config", "", "path to config.yaml (env: LOBBY_CONFIG_DEFAULT_PATH for the directory)")
	flags.StringVar(&overrides.Addr, "addr", "", "HTTP listen address")
	flags.StringVar(&overrides.LogLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.StringVar(&overrides.LogFormat, "log-format", "", "log format: console, json")
	flags.StringVar(&overrides.StaticDir, "static-dir", "", "directory served at /")
	flags.DurationVar(&overrides.GracePeriod, "grace-period", 0, "how long a disconnected player keeps its seat")

	return cmd
}
