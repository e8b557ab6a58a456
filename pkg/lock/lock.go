package lock

import (
	"context"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "contact_lock:"

var ErrBusy = errors.New("lock is busy")

type Config struct {
	Enabled  bool          `yaml:"enabled" envconfig:"CONTACT_LOCK_ENABLED" default:"false"`
	Addr     string        `yaml:"addr" envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string        `yaml:"password" envconfig:"REDIS_PASSWORD"`
	DB       int           `yaml:"db" envconfig:"REDIS_DB"`
	TTL      time.Duration `yaml:"ttl" envconfig:"CONTACT_LOCK_TTL" default:"10s"`
}

// Locker serialises work on the same contact identifiers.
// The returned release func must be called once the protected section is done.
type Locker interface {
	Lock(ctx context.Context, keys ...string) (release func(), err error)
}

func NewRedisClient(ctx context.Context, cfg Config) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, errors.Wrap(err, "redis ping")
	}
	return rdb, nil
}

// releaseScript deletes the key only while it still holds our token.
var releaseScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0`)

type redisLocker struct {
	rdb redis.Cmdable
	ttl time.Duration
}

func NewRedisLocker(rdb redis.Cmdable, ttl time.Duration) Locker {
	return &redisLocker{rdb: rdb, ttl: ttl}
}

func (l *redisLocker) Lock(ctx context.Context, keys ...string) (func(), error) {
	keys = normalize(keys)
	token := uuid.NewString()

	acquired := make([]string, 0, len(keys))
	release := func() {
		for _, k := range acquired {
			_ = releaseScript.Run(context.Background(), l.rdb, []string{k}, token).Err()
		}
	}

	for _, k := range keys {
		ok, err := l.rdb.SetNX(ctx, keyPrefix+k, token, l.ttl).Result()
		if err != nil {
			release()
			return nil, errors.Wrap(err, "redis SetNX")
		}
		if !ok {
			release()
			return nil, ErrBusy
		}
		acquired = append(acquired, keyPrefix+k)
	}
	return release, nil
}

type noopLocker struct{}

func NewNoop() Locker { return noopLocker{} }

func (noopLocker) Lock(context.Context, ...string) (func(), error) {
	return func() {}, nil
}

// normalize drops empty keys and orders the rest so that two callers
// locking the same set never wait on each other in opposite order.
func normalize(keys []string) []string {
	out := make([]string, 0, len(keys))
	seen := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
