package main // Entry point package

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"

	"github.com/ximnasio/gym-booking/internal/config"
	"github.com/ximnasio/gym-booking/internal/database"
	"github.com/ximnasio/gym-booking/internal/fixtures"
	"github.com/ximnasio/gym-booking/internal/handler"
	"github.com/ximnasio/gym-booking/internal/ledger"
	"github.com/ximnasio/gym-booking/internal/middleware"
	"github.com/ximnasio/gym-booking/internal/queue"
	"github.com/ximnasio/gym-booking/internal/repository"
	"github.com/ximnasio/gym-booking/internal/router"
	"github.com/ximnasio/gym-booking/internal/service"
	"github.com/ximnasio/gym-booking/internal/session"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file loaded", "err", err)
	}
	cfg := config.Load()
	setupLogger(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	loc := cfg.Location()
	l := ledger.New(ledger.Snapshot{}, ledger.WithLocation(loc), ledger.WithBcryptCost(cfg.BcryptCost))

	var wg sync.WaitGroup
	snapshotter, err := openSnapshots(ctx, cfg, l)
	if err != nil {
		slog.Error("snapshot store unavailable", "err", err)
		os.Exit(1)
	}
	restored := false
	if snapshotter != nil {
		if restored, err = snapshotter.RestoreLatest(ctx); err != nil {
			slog.Error("restore snapshot failed", "err", err)
			os.Exit(1)
		}
	}
	if !restored {
		seed, err := fixtures.Seed(time.Now(), fixtures.Options{
			Location:   loc,
			BcryptCost: cfg.BcryptCost,
			RandomSeed: cfg.FixtureSeed,
			Enroll:     cfg.FixtureFill,
		})
		if err != nil {
			slog.Error("seed fixtures failed", "err", err)
			os.Exit(1)
		}
		l.Restore(seed)
		slog.Info("ledger seeded from fixtures", "slots", len(seed.Slots), "reservations", len(seed.Reservations))
	}
	if snapshotter != nil {
		wg.Add(1)
		go func() { defer wg.Done(); snapshotter.Run(ctx) }()
	}

	rdb := config.NewRedisClient()
	var store session.Storage = session.NewMemoryStorage()
	if rdb != nil {
		store = session.NewRedisStorage(rdb, cfg.SessionTTL)
		defer rdb.Close()
	}
	sessions := session.NewManager(store, l, cfg.LoginDelay)

	var pub service.Publisher = service.NopPublisher{}
	if cfg.Queue.Enabled {
		amqpPub := service.NewAMQPPublisher(cfg.Queue.URL, cfg.Queue.Name)
		defer amqpPub.Close()
		pub = amqpPub
		consumer := &queue.Consumer{URL: cfg.Queue.URL, Queue: cfg.Queue.Name, LogPath: cfg.Queue.LogPath}
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				slog.Error("booking consumer stopped", "err", err)
			}
		}()
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(requestLogger())
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	cacheCfg := config.LoadCacheConfig()
	invalidate := func(ctx context.Context) error { return middleware.InvalidateCache(ctx, cacheCfg, rdb) }

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewPublicHandler(l), middleware.NewRedisCache(cacheCfg, rdb))
	router.RegisterAuth(e, handler.NewAuthHandler(cfg, sessions, l), cfg.JWTSecret, sessions, loginLimiter(cfg, rdb))
	router.RegisterMember(e, handler.NewMemberHandler(l, pub), cfg.JWTSecret, sessions)
	router.RegisterAdmin(e, handler.NewAdminHandler(l, invalidate), cfg.JWTSecret, sessions)

	addr := ":" + cfg.Port
	go func() {
		slog.Info("listening", "addr", addr, "env", cfg.Env)
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown failed", "err", err)
	}
	wg.Wait()
}

func setupLogger(env string) {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	var h slog.Handler = slog.NewTextHandler(os.Stdout, opts)
	if env == "prod" {
		h = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(h))
}

func requestLogger() echo.MiddlewareFunc {
	return echomw.RequestLoggerWithConfig(echomw.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogRemoteIP: true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v echomw.RequestLoggerValues) error {
			attrs := []any{"method", v.Method, "uri", v.URI, "status", v.Status, "latency", v.Latency, "ip", v.RemoteIP}
			if v.Error != nil {
				slog.Error("request", append(attrs, "err", v.Error)...)
				return nil
			}
			slog.Info("request", attrs...)
			return nil
		},
	})
}

// openSnapshots connects the snapshot store when a database is
// configured.  It returns nil without error otherwise.
func openSnapshots(ctx context.Context, cfg config.Config, l *ledger.Ledger) (*service.Snapshotter, error) {
	if !cfg.DB.Enabled() {
		slog.Info("DB_HOST not set, ledger snapshots disabled")
		return nil, nil
	}
	db, err := database.Open(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	repo := repository.NewSnapshotRepo(db)
	schemaCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := repo.EnsureSchema(schemaCtx); err != nil {
		return nil, err
	}
	return service.NewSnapshotter(l, repo, cfg.Snapshot.Interval, cfg.Snapshot.Keep), nil
}

// loginLimiter uses a dedicated Redis bucket per IP when Redis is up and
// an in-process limiter otherwise.
func loginLimiter(cfg config.Config, rdb *redis.Client) echo.MiddlewareFunc {
	if rdb == nil {
		return middleware.NewLoginLimiter(cfg.Login.PerMinute, cfg.Login.Burst).Middleware()
	}
	rl := config.LoadRateLimitConfig()
	perMin := max(cfg.Login.PerMinute, 1)
	return middleware.NewTokenBucket(config.RateLimitConfig{
		Enabled:        true,
		Capacity:       max(cfg.Login.Burst, 1),
		RefillTokens:   1,
		RefillInterval: time.Minute / time.Duration(perMin),
		TTL:            10 * time.Minute,
		KeyStrategy:    "ip",
		Prefix:         rl.Prefix + ":login",
		Debug:          rl.Debug,
	}, rdb)
}
