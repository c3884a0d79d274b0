package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
	"github.com/vietddude/stylelog"

	"github.com/vietddude/touradmin/internal/control"
	"github.com/vietddude/touradmin/internal/core/config"
	"github.com/vietddude/touradmin/internal/service"
)

const defaultConfigPath = "config.yaml"

var (
	cfgPath string
	profile string
	isDebug bool
)

var rootCmd = &cobra.Command{
	Use:           "touradmin",
	Short:         "Tour operator admin client",
	Long:          `touradmin manages tours, leads, users and site content through the admin API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", describeError(err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default is $TOURADMIN_CONFIG or ./config.yaml when present)")
	rootCmd.PersistentFlags().StringVar(&profile, "profile", "", "session profile (overrides session.profile)")
	rootCmd.PersistentFlags().BoolVar(&isDebug, "debug", false, "enable debug logging")
}

// describeError prints validation problems one per line and API errors as the backend phrased them.
func describeError(err error) string {
	var vErr *service.ValidationError
	if errors.As(err, &vErr) && len(vErr.Problems) > 1 {
		msg := "invalid input:"
		for _, p := range vErr.Problems {
			msg += "\n  - " + p
		}
		return msg
	}
	return err.Error()
}

func resolveConfigPath() string {
	if cfgPath != "" {
		return cfgPath
	}
	if env := os.Getenv("TOURADMIN_CONFIG"); env != "" {
		return env
	}
	if _, err := os.Stat(defaultConfigPath); err == nil {
		return defaultConfigPath
	}
	return ""
}

// session is what every command runs against: the wired app and a context
// canceled on SIGINT or SIGTERM.
type session struct {
	app  *control.App
	svc  *service.Services
	ctx  context.Context
	stop context.CancelFunc
}

func (s *session) close() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := s.app.Close(shutdownCtx); err != nil {
		slog.Warn("Error during shutdown", "error", err)
	}
	s.stop()
}

func openSession(cmd *cobra.Command) (*session, error) {
	_ = godotenv.Load()

	// Load Configuration
	cfg, err := config.Load(resolveConfigPath())
	if err != nil {
		return nil, err
	}
	if profile != "" {
		cfg.Session.Profile = profile
	}

	// Setup logging
	slog.SetDefault(newLogger(cfg.Logging, isDebug))

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)

	app, err := control.NewApp(ctx, cfg,
		control.WithLogger(slog.Default()),
		control.WithSessionExpiredHandler(func() {
			fmt.Fprintln(os.Stderr, "Session expired. Run `touradmin login` to sign in again.")
		}),
	)
	if err != nil {
		stop()
		return nil, err
	}
	app.Start(ctx)

	return &session{app: app, svc: app.Services, ctx: ctx, stop: stop}, nil
}

// newLogger builds the process logger: stylelog over tint by default,
// slog JSON lines on stderr when logging.format is json.
func newLogger(cfg config.LoggingConfig, debug bool) *slog.Logger {
	level := logLevel(cfg.Level, debug)
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	}
	return stylelog.New(&tint.Options{
		Level:      level,
		TimeFormat: time.RFC3339,
	})
}

func logLevel(name string, debug bool) slog.Level {
	switch {
	case debug || name == "debug":
		return slog.LevelDebug
	case name == "info":
		return slog.LevelInfo
	case name == "error":
		return slog.LevelError
	}
	return slog.LevelWarn
}

// run wraps a command body with session setup and teardown.
func run(fn func(s *session, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		s, err := openSession(cmd)
		if err != nil {
			return err
		}
		defer s.close()
		return fn(s, cmd, args)
	}
}
