// Package redis fetches word sources from a Redis key.
//
// The key may hold a list (read in order), a set (read sorted), a sorted set
// (read by score) or a string with one word per line.
package redis

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-redis/redis/v8"

	"github.com/bastiangx/wordhunt/pkg/config"
	"github.com/bastiangx/wordhunt/pkg/remote"
)

//nolint:gochecknoinits // registration mirrors database/sql drivers
func init() {
	remote.Register("redis", NewFetcher)
}

// Fetcher reads one key. Safe for concurrent use.
type Fetcher struct {
	client *redis.Client
	key    string
}

// NewFetcher implements remote.Factory. It needs addr and key.
func NewFetcher(cfg config.RemoteConfig) (remote.Fetcher, error) {
	return New(cfg)
}

// New creates a Fetcher. No connection is made until Fetch.
func New(cfg config.RemoteConfig) (*Fetcher, error) {
	if cfg.Addr == "" {
		return nil, fmt.Errorf("%w: addr", remote.ErrMissingSetting)
	}
	if cfg.Key == "" {
		return nil, fmt.Errorf("%w: key", remote.ErrMissingSetting)
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Username: cfg.Username,
		Password: cfg.Password, // pragma: allowlist secret
		DB:       cfg.DB,
	})
	return &Fetcher{client: client, key: cfg.Key}, nil
}

// Fetch returns the words stored under the key. A missing key yields no words.
func (f *Fetcher) Fetch(ctx context.Context) ([]string, error) {
	kind, err := f.client.Type(ctx, f.key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	switch kind {
	case "list":
		return f.client.LRange(ctx, f.key, 0, -1).Result()
	case "set":
		members, err := f.client.SMembers(ctx, f.key).Result()
		if err != nil {
			return nil, err
		}
		sort.Strings(members)
		return members, nil
	case "zset":
		return f.client.ZRange(ctx, f.key, 0, -1).Result()
	case "string":
		text, err := f.client.Get(ctx, f.key).Result()
		if err != nil {
			return nil, err
		}
		return strings.Split(text, "\n"), nil
	case "none":
		return []string{}, nil
	default:
		return nil, fmt.Errorf("unsupported Redis type %q for key %s", kind, f.key)
	}
}

// Close closes the Redis connection
func (f *Fetcher) Close() error {
	return f.client.Close()
}
