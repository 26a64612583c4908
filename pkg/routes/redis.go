package routes

import (
	"context"
	"errors"
	"fmt"
	"maps"

	"github.com/redis/go-redis/v9"
)

// DefaultRedisPrefix is the key prefix of the per-locale route hashes.
const DefaultRedisPrefix = "localization:routes"

// HashReader is the part of redis.UniversalClient used by RedisSource.
type HashReader interface {
	HGetAll(ctx context.Context, key string) *redis.MapStringStringCmd
}

// HashWriter is the part of redis.UniversalClient used by SaveToRedis.
type HashWriter interface {
	HSet(ctx context.Context, key string, values ...any) *redis.IntCmd
}

// RedisSource reads one hash per locale, "{prefix}:{locale}", mapping route
// names to path templates.
type RedisSource struct {
	client  HashReader
	prefix  string
	locales []string
}

// FromRedis creates a source reading the hashes of the given locales.
// An empty prefix selects DefaultRedisPrefix.
func FromRedis(client HashReader, prefix string, locales ...string) *RedisSource {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	return &RedisSource{client: client, prefix: prefix, locales: locales}
}

// Load implements Source. Missing hashes are skipped.
func (s *RedisSource) Load(ctx context.Context) (Entries, error) {
	out := make(Entries, len(s.locales))
	for _, locale := range s.locales {
		paths, err := s.client.HGetAll(ctx, redisKey(s.prefix, locale)).Result()
		if err != nil {
			return nil, errors.Join(ErrSourceFailed, fmt.Errorf("redis hash %q: %w", redisKey(s.prefix, locale), err))
		}
		if len(paths) > 0 {
			out[locale] = maps.Clone(paths)
		}
	}
	return out, nil
}

// SaveToRedis writes entries into the per-locale hashes read by RedisSource.
func SaveToRedis(ctx context.Context, client HashWriter, prefix string, entries Entries) error {
	if prefix == "" {
		prefix = DefaultRedisPrefix
	}
	for locale, paths := range entries {
		if len(paths) == 0 {
			continue
		}
		values := make([]any, 0, len(paths)*2)
		for name, path := range paths {
			values = append(values, name, path)
		}
		if err := client.HSet(ctx, redisKey(prefix, locale), values...).Err(); err != nil {
			return errors.Join(ErrSourceFailed, fmt.Errorf("redis hash %q: %w", redisKey(prefix, locale), err))
		}
	}
	return nil
}

func redisKey(prefix, locale string) string {
	return prefix + ":" + locale
}
