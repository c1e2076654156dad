// Package bootstrap assembles the service graph shared by the HTTP server and
// the operator CLI.
package bootstrap

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/lib/pq"

	"roomorganizer/config"
	"roomorganizer/internal/adapters/auth"
	"roomorganizer/internal/adapters/reftable"
	"roomorganizer/internal/adapters/showroom"
	"roomorganizer/internal/domain"
	"roomorganizer/internal/repository/postgres"
	"roomorganizer/internal/services"
)

// dbTimeout bounds lookup log queries.
const dbTimeout = 5 * time.Second

// App holds the wired components.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Tables     *reftable.Tables
	Platform   *showroom.Client
	Organizers domain.OrganizerService
	Archives   domain.ArchiveService
	Tokens     interface {
		domain.TokenIssuer
		domain.TokenVerifier
	}

	db    *sql.DB
	redis *redis.Client
}

// New wires the application. Redis and Postgres are optional; without them the
// table cache lives in process and lookups are not recorded.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	app := &App{Config: cfg, Logger: logger}

	cache := reftable.NewMemoryCache()
	if cfg.RedisAddr != "" {
		app.redis = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := app.redis.Ping(ctx).Err(); err != nil {
			logger.Warn("redis unreachable, table reads will bypass the cache", "addr", cfg.RedisAddr, "err", err)
		}
		cache = reftable.NewRedisCache(app.redis)
	}

	var lookupLog domain.LookupLogRepository
	if cfg.DBUrl != "" {
		db, err := sql.Open("postgres", cfg.DBUrl)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("open database: %w", err)
		}
		app.db = db
		if err := db.PingContext(ctx); err != nil {
			app.Close()
			return nil, fmt.Errorf("ping database: %w", err)
		}
		if err := postgres.EnsureLookupLogSchema(ctx, db); err != nil {
			app.Close()
			return nil, fmt.Errorf("lookup log schema: %w", err)
		}
		lookupLog = postgres.NewLookupLogRepository(db)
	}

	app.Tables = reftable.NewTables(
		reftable.NewHTTPFetcher(cfg.HTTPTimeout),
		cache,
		cfg.TableCacheTTL,
		reftable.Sources{
			RoomList:       cfg.RoomListURL,
			EventLiverList: cfg.EventLiverListURL,
			OrganizerList:  cfg.OrganizerListURL,
		},
		logger,
	)
	app.Platform = showroom.NewClient(showroom.Config{
		BaseURL: cfg.ShowroomBaseURL,
		Timeout: cfg.HTTPTimeout,
		Cookie:  cfg.ShowroomCookie,
	}, logger)

	resolver := services.NewOrganizerResolver(app.Tables, app.Platform, logger)
	app.Organizers = services.NewOrganizerService(app.Platform, resolver, lookupLog, logger, dbTimeout)
	app.Archives = services.NewArchiveService(app.Tables, app.Platform, app.Platform, logger)
	if cfg.JWTSecret == "" {
		logger.Warn("JWT_SECRET is not set, operator endpoints will reject every token")
	}
	app.Tokens = auth.NewJWTSigner(cfg.JWTSecret)

	return app, nil
}

// Close releases the database and Redis connections.
func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
	if a.redis != nil {
		_ = a.redis.Close()
	}
}
