// Package storage reads objects from S3-compatible storage.
//
// The localization service uses it to fetch route translation files
// ({locale}/routes.yaml) published to a bucket, so that localized paths can be
// changed without redeploying.
//
//	store, err := storage.New(storage.Config{
//		Bucket:    "translations",
//		AccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
//		SecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
//		Endpoint:  "http://localhost:9000", // MinIO
//		PathStyle: true,
//	})
//
//	rc, err := store.Get(ctx, "de/routes.yaml")
//	if errors.Is(err, storage.ErrNotFound) {
//		// no translations published for this locale
//	}
//	defer rc.Close()
package storage
