// Package redis connects to Redis with [github.com/redis/go-redis/v9].
//
// The localization service can keep route translations in Redis hashes
// (one hash per locale), which lets operators change localized paths at
// runtime and trigger a reload.
//
// # Configuration
//
//	REDIS_URL            - redis:// or rediss:// URL (empty disables Redis)
//	REDIS_POOL_SIZE      - Maximum pool size (default: 10)
//	REDIS_MIN_IDLE_CONNS - Minimum idle connections (default: 2)
//	REDIS_DIAL_TIMEOUT   - Dial timeout (default: 5s)
//	REDIS_READ_TIMEOUT   - Read timeout (default: 3s)
//	REDIS_RETRY_ATTEMPTS - Connection attempts at startup (default: 3)
//	REDIS_RETRY_INTERVAL - Base retry interval (default: 2s)
//
// # Usage
//
//	var cfg redis.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer redis.Shutdown(client)(ctx)
//
// Use [Healthcheck] to expose connectivity in a health endpoint.
package redis
