// Package routes keeps the route translation table: for every locale, the
// path template of each named route.
//
// A Table is immutable. A Store merges one or more sources into a new Table
// on Reload and swaps it in atomically, so request handling never waits for
// a reload. Reload can also run on a cron schedule.
//
// # Sources
//
//   - Static: an in-memory Entries map
//   - FromCatalog / FromDir: the "routes" namespace of an i18n catalog,
//     usually embedded {locale}/routes.yaml files
//   - FromRedis: one hash per locale, "localization:routes:{locale}"
//   - FromPostgres: the route_translations table (see Migrations)
//   - FromStorage: {locale}/routes.yaml objects in S3-compatible storage
//
// Later sources override earlier ones, which lets an operator patch a single
// path in Redis or Postgres on top of the embedded defaults:
//
//	store := routes.NewStore(
//		routes.WithSource(
//			routes.FromDir(translationsFS),
//			routes.FromRedis(redisClient, "", "en", "de"),
//		),
//		routes.WithLogger(log),
//	)
//	if err := store.Reload(ctx); err != nil {
//		return err
//	}
//	if err := store.Schedule("@every 5m"); err != nil {
//		return err
//	}
//	defer store.Stop(ctx)
//
//	path, ok := store.Translate("de", "hello_user") // "hallo/{username}", true
package routes
