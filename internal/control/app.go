package control

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/spf13/afero"

	"github.com/vietddude/touradmin/internal/core/config"
	"github.com/vietddude/touradmin/internal/infra/api"
	redisclient "github.com/vietddude/touradmin/internal/infra/redis"
	"github.com/vietddude/touradmin/internal/infra/storage"
	"github.com/vietddude/touradmin/internal/infra/storage/file"
	"github.com/vietddude/touradmin/internal/infra/storage/memory"
	"github.com/vietddude/touradmin/internal/infra/storage/postgres"
	"github.com/vietddude/touradmin/internal/metrics"
	"github.com/vietddude/touradmin/internal/service"
)

// App owns the session store, the API client and the services built on it.
type App struct {
	Tokens   storage.TokenStore
	Client   *api.Client
	Services *service.Services

	cfg           *config.AppConfig
	db            *postgres.DB
	redisClient   *redisclient.Client
	metricsServer *metrics.Server
	log           *slog.Logger
}

type options struct {
	fs               afero.Fs
	log              *slog.Logger
	onSessionExpired func()
}

type Option func(*options)

// WithFs sets the filesystem used by the file session backend.
func WithFs(fs afero.Fs) Option {
	return func(o *options) { o.fs = fs }
}

func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithSessionExpiredHandler is called once each time a refresh fails and the session is dropped.
func WithSessionExpiredHandler(fn func()) Option {
	return func(o *options) { o.onSessionExpired = fn }
}

// NewApp creates a new App with all dependencies initialized.
func NewApp(ctx context.Context, cfg *config.AppConfig, opts ...Option) (*App, error) {
	o := options{fs: afero.NewOsFs(), log: slog.Default()}
	for _, opt := range opts {
		opt(&o)
	}

	a := &App{cfg: cfg, log: o.log.With("component", "app")}

	// 1. Initialize Session Storage
	tokens, err := a.openStore(ctx, o.fs)
	if err != nil {
		a.closeStores()
		return nil, err
	}
	a.Tokens = tokens

	// 2. Initialize API Client
	clientOpts := []api.Option{api.WithLogger(o.log)}
	if o.onSessionExpired != nil {
		clientOpts = append(clientOpts, api.WithSessionExpiredHandler(o.onSessionExpired))
	}
	a.Client = api.NewClient(cfg.API, tokens, clientOpts...)

	// 3. Initialize Services
	a.Services = service.New(a.Client, tokens)

	// 4. Initialize Metrics Server
	if cfg.Metrics.Port > 0 {
		a.metricsServer = metrics.NewServer(cfg.Metrics.Port, a.healthChecks())
	}

	return a, nil
}

func (a *App) openStore(ctx context.Context, fs afero.Fs) (storage.TokenStore, error) {
	profile := a.cfg.Session.Profile

	switch a.cfg.Session.Backend {
	case config.BackendMemory:
		a.log.Debug("Using memory session store")
		return memory.NewTokenStore(), nil

	case config.BackendRedis:
		client, err := redisclient.NewClient(a.cfg.Redis)
		if err != nil {
			return nil, fmt.Errorf("failed to init redis: %w", err)
		}
		a.redisClient = client
		a.log.Debug("Using Redis session store", "profile", profile)
		return redisclient.NewTokenStore(client, profile, a.cfg.Redis.TTL), nil

	case config.BackendPostgres:
		db, err := postgres.NewDB(ctx, a.cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to init db: %w", err)
		}
		a.db = db
		if err := db.Migrate(ctx); err != nil {
			return nil, err
		}
		a.log.Debug("Using PostgreSQL session store", "profile", profile)
		return postgres.NewTokenRepo(db, profile), nil

	case config.BackendFile, "":
		path := a.cfg.Session.Path
		if path == "" {
			path = file.DefaultPath()
		}
		a.log.Debug("Using file session store", "path", path, "profile", profile)
		return file.NewTokenStore(fs, path, profile), nil

	default:
		return nil, fmt.Errorf("unknown session backend %q", a.cfg.Session.Backend)
	}
}

func (a *App) healthChecks() map[string]metrics.Check {
	checks := map[string]metrics.Check{}
	if a.db != nil {
		checks["postgres"] = a.db.Health
	}
	if a.redisClient != nil {
		checks["redis"] = a.redisClient.Health
	}
	return checks
}

// Start runs the background parts: the metrics server and the DB pool collector.
// It does not block.
func (a *App) Start(ctx context.Context) {
	if a.metricsServer != nil {
		go func() {
			if err := a.metricsServer.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				a.log.Error("Metrics server failed", "error", err)
			}
		}()
		a.log.Info("Metrics server started", "port", a.cfg.Metrics.Port)
	}

	if a.db != nil {
		a.db.StartMetricsCollector(ctx)
	}
}

// Close stops the metrics server and releases store connections.
func (a *App) Close(ctx context.Context) error {
	var errs []error
	if a.metricsServer != nil {
		if err := a.metricsServer.Stop(ctx); err != nil {
			errs = append(errs, fmt.Errorf("stop metrics server: %w", err))
		}
	}
	errs = append(errs, a.closeStores()...)
	return errors.Join(errs...)
}

func (a *App) closeStores() []error {
	var errs []error
	if a.redisClient != nil {
		if err := a.redisClient.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close redis: %w", err))
		}
		a.redisClient = nil
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			errs = append(errs, fmt.Errorf("close db: %w", err))
		}
		a.db = nil
	}
	return errs
}
