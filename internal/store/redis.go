package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options configure the Redis-backed client.
type Options struct {
	Address  string
	Password string
	DB       int
	Timeout  time.Duration
}

// Redis implements Client on top of go-redis.
type Redis struct {
	rdb     *redis.Client
	timeout time.Duration
}

// NewRedis builds a client. No connection is made until the first query.
func NewRedis(opts Options) *Redis {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:        opts.Address,
		Password:    opts.Password,
		DB:          opts.DB,
		DialTimeout: timeout,
		ReadTimeout: timeout,
	})
	return &Redis{rdb: rdb, timeout: timeout}
}

// Ping checks connectivity.
func (r *Redis) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()
	if err := r.rdb.Ping(ctx).Err(); err != nil {
		return &Error{Op: "ping", Err: err}
	}
	return nil
}

// Close releases pooled connections.
func (r *Redis) Close() error { return r.rdb.Close() }

// Keys enumerates keys matching pattern with SCAN so a large keyspace
// never blocks the server the way KEYS does.
func (r *Redis) Keys(ctx context.Context, pattern string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var keys []string
	iter := r.rdb.Scan(ctx, 0, pattern, 1000).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, &Error{Op: "scan", Key: pattern, Err: err}
	}
	return keys, nil
}

func (r *Redis) HGetAll(ctx context.Context, key string) (map[string]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	values, err := r.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, &Error{Op: "hgetall", Key: key, Err: err}
	}
	if values == nil {
		values = map[string]string{}
	}
	return values, nil
}

func (r *Redis) ZRangeByScore(ctx context.Context, key, min, max string) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	members, err := r.rdb.ZRangeByScore(ctx, key, &redis.ZRangeBy{Min: min, Max: max}).Result()
	if err != nil {
		return nil, &Error{Op: "zrangebyscore", Key: key, Err: err}
	}
	return members, nil
}

func (r *Redis) LRange(ctx context.Context, key string, start, stop int64) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	lines, err := r.rdb.LRange(ctx, key, start, stop).Result()
	if err != nil {
		return nil, &Error{Op: "lrange", Key: key, Err: err}
	}
	return lines, nil
}
