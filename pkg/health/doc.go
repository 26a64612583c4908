// Package health provides HTTP handlers for liveness and readiness checks.
//
// Checks are plain func(context.Context) error closures, such as
// db.Healthcheck, redis.Healthcheck and routes.Store.Healthcheck. They run
// concurrently under a shared timeout.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"postgres": db.Healthcheck(pool),
//		"redis":    redis.Healthcheck(client),
//		"routes":   store.Healthcheck(),
//	}, health.WithLogger(log)))
//
// Handlers answer in plain text ("OK" / "Service Unavailable") unless the
// client asks for JSON with "Accept: application/json" or "?format=json".
package health
