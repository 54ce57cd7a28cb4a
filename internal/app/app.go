package app

import (
	"context"
	"fmt"

	"github.com/gorilla/mux"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"tush00nka/bbbab_forums/internal/config"
	"tush00nka/bbbab_forums/internal/fixture"
	"tush00nka/bbbab_forums/internal/handler"
	"tush00nka/bbbab_forums/internal/pkg/ratelimit"
	"tush00nka/bbbab_forums/internal/repository"
	"tush00nka/bbbab_forums/internal/service"
)

func configureLogging(cfg *config.Config) error {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}
	logrus.SetLevel(level)

	if cfg.IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	return nil
}

// newLoader picks the fixture source. The returned cleanup closes any
// connection the loader opened.
func newLoader(cfg *config.Config) (fixture.Loader, func(), error) {
	if cfg.FixturesSource != config.FixturesFromPostgres {
		return fixture.NewFileLoader(cfg.FixturesPath), func() {}, nil
	}

	db, err := repository.NewDB(cfg.FixturesDSN)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if err := repository.CloseDB(db); err != nil {
			logrus.WithError(err).Warn("failed to close fixtures database")
		}
	}
	return fixture.NewPostgresLoader(db), cleanup, nil
}

// seedStore builds the store once, before any request is accepted.
func seedStore(ctx context.Context, loader fixture.Loader) (*repository.Store, error) {
	f, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}

	store := repository.NewStore()
	if err := store.Seed(f); err != nil {
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"users":    len(f.Users),
		"forums":   len(f.Forums),
		"messages": len(f.Messages),
	}).Info("store seeded")

	return store, nil
}

func mutationMiddleware(ctx context.Context, cfg *config.Config) ([]mux.MiddlewareFunc, func(), error) {
	if cfg.RedisAddr == "" {
		return nil, func() {}, nil
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	limiter, err := ratelimit.NewRedisLimiter(rdb, cfg.RateLimitRequests, cfg.RateLimitWindow)
	if err != nil {
		rdb.Close()
		return nil, nil, err
	}

	logrus.Infof("Rate limiting mutations: %d per %s", cfg.RateLimitRequests, cfg.RateLimitWindow)
	cleanup := func() {
		if err := rdb.Close(); err != nil {
			logrus.WithError(err).Warn("failed to close redis client")
		}
	}
	return []mux.MiddlewareFunc{ratelimit.Middleware(limiter)}, cleanup, nil
}

func Run(ctx context.Context, cfg *config.Config) error {
	if err := configureLogging(cfg); err != nil {
		return err
	}

	loader, closeLoader, err := newLoader(cfg)
	if err != nil {
		return err
	}
	store, err := seedStore(ctx, loader)
	closeLoader()
	if err != nil {
		return err
	}

	middleware, closeRedis, err := mutationMiddleware(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeRedis()

	forumService := service.NewForumService(store)
	userHandler := handler.NewUserHandler(forumService)
	forumHandler := handler.NewForumHandler(forumService, handler.DefaultIdentity{ID: cfg.DefaultUserID})

	server := NewServer(userHandler, forumHandler, middleware...)
	return server.Run(ctx, cfg.ServerPort)
}
