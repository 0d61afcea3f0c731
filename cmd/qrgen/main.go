// Command qrgen serves the QR code generator.
package main

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/qrgen/internal/web"
	"github.com/dmitrymomot/qrgen/pkg/config"
	"github.com/dmitrymomot/qrgen/pkg/cookie"
	"github.com/dmitrymomot/qrgen/pkg/environment"
	"github.com/dmitrymomot/qrgen/pkg/httpserver"
	"github.com/dmitrymomot/qrgen/pkg/logger"
	"github.com/dmitrymomot/qrgen/pkg/metrics"
	"github.com/dmitrymomot/qrgen/pkg/ratelimiter"
	"github.com/dmitrymomot/qrgen/pkg/redis"
	"github.com/dmitrymomot/qrgen/pkg/requestid"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil {
		slog.Error("qrgen stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var (
		appCfg    web.Config
		serverCfg httpserver.Config
		cookieCfg cookie.Config
	)
	if err := errors.Join(
		config.Load(&appCfg),
		config.Load(&serverCfg),
		config.Load(&cookieCfg),
	); err != nil {
		return err
	}

	env := environment.Parse(appCfg.Env)
	log := logger.New(
		logger.WithEnvironment(env, appCfg.Name),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			environment.LoggerExtractor(),
		),
	)
	slog.SetDefault(log)

	if cookieCfg.Secrets == "" {
		if env.IsDeployed() {
			return errors.New("COOKIE_SECRETS is required in " + env.String())
		}
		cookieCfg.Secrets = randomSecret()
		log.Warn("COOKIE_SECRETS not set, using a random secret; visitor cookies reset on restart")
	}
	cookies, err := cookie.NewFromConfig(cookieCfg, cookie.WithSecure(env.IsDeployed()))
	if err != nil {
		return err
	}

	opts := []web.Option{
		web.WithLogger(log),
		web.WithMetrics(metrics.New(prometheus.DefaultRegisterer), promhttp.Handler()),
	}

	store, err := rateLimitStore(ctx, appCfg, log)
	if err != nil {
		return err
	}
	if store.check != nil {
		opts = append(opts, web.WithReadinessCheck("redis", store.check))
	}
	if store.close != nil {
		defer store.close()
	}
	limiter, err := ratelimiter.NewBucket(store.store, ratelimiter.Config{
		Capacity:       appCfg.RateCapacity,
		RefillRate:     appCfg.RateRefill,
		RefillInterval: appCfg.RateInterval,
	})
	if err != nil {
		return err
	}
	opts = append(opts, web.WithRateLimiter(limiter))

	app := web.New(appCfg, cookies, opts...)
	srv := httpserver.NewFromConfig(serverCfg,
		httpserver.WithLogger(log),
		httpserver.WithStopHook(app.Close),
	)
	return srv.Run(ctx, app.Router())
}

type limiterStore struct {
	store ratelimiter.Store
	check func(context.Context) error
	close func()
}

// rateLimitStore shares API quotas through Redis when enabled and keeps
// them in process otherwise.
func rateLimitStore(ctx context.Context, cfg web.Config, log *slog.Logger) (limiterStore, error) {
	if !cfg.RedisEnabled {
		mem := ratelimiter.NewMemoryStore()
		return limiterStore{store: mem, close: mem.Close}, nil
	}

	var redisCfg redis.Config
	if err := config.Load(&redisCfg); err != nil {
		return limiterStore{}, err
	}
	client, err := redis.Connect(ctx, redisCfg)
	if err != nil {
		return limiterStore{}, err
	}
	log.Info("rate limits stored in redis")
	return limiterStore{
		store: ratelimiter.NewRedisStore(client, ratelimiter.WithKeyPrefix(cfg.Name+":ratelimit:")),
		check: redis.Healthcheck(client),
		close: func() { _ = client.Close() },
	}, nil
}

func randomSecret() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
