// Package redis connects to Redis for the shared rate-limit store.
//
// Connect parses a redis:// URL, pings with retries and returns a ready
// go-redis client. Healthcheck adapts the client to the readiness probe.
//
//	cfg, err := config.Load[redis.Config]()
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	store := ratelimiter.NewRedisStore(client)
//	server.AddReadinessCheck("redis", redis.Healthcheck(client))
package redis
