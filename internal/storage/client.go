// Package storage brings up the persistent store the device depends on at boot.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/dorra-iot/dorrad/internal/config"
	"github.com/dorra-iot/dorrad/internal/log"
)

// Client wraps the persistent-store connection. Startup must not proceed
// unless the store is reachable; after boot the session core neither reads
// nor writes it (actuator state is deliberately not persisted).
type Client struct {
	rdb       *redis.Client
	keyPrefix string
	log       *log.Logger
}

// NewClient connects to the store and verifies it with a ping.
// A ping failure is a fatal startup condition for the caller.
func NewClient(cfg *config.StorageConfig, logger *log.Logger) (*Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:         cfg.Address,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), cfg.PingTimeout)
	defer cancel()

	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("failed to connect to store: %w", err)
	}

	return &Client{
		rdb:       rdb,
		keyPrefix: cfg.KeyPrefix,
		log:       logger,
	}, nil
}

// RecordBoot increments the boot counter and stamps the boot time.
// Returns the boot number for startup diagnostics.
func (c *Client) RecordBoot(ctx context.Context) (int64, error) {
	count, err := c.rdb.Incr(ctx, c.bootCountKey()).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment boot counter: %w", err)
	}

	if err := c.rdb.Set(ctx, c.lastBootKey(), time.Now().UTC().Format(time.RFC3339), 0).Err(); err != nil {
		// The counter advanced; a missing timestamp is diagnostic-only
		c.log.Warn("Failed to record boot timestamp: %v", err)
	}

	return count, nil
}

// LastBoot returns the previous boot timestamp, or the zero time when the
// device has never booted before.
func (c *Client) LastBoot(ctx context.Context) (time.Time, error) {
	val, err := c.rdb.Get(ctx, c.lastBootKey()).Result()
	if err == redis.Nil {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to read boot timestamp: %w", err)
	}

	ts, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed boot timestamp %q: %w", val, err)
	}
	return ts, nil
}

func (c *Client) bootCountKey() string {
	return c.keyPrefix + ":boot:count"
}

func (c *Client) lastBootKey() string {
	return c.keyPrefix + ":boot:last"
}

// Close closes the store connection
func (c *Client) Close() error {
	if c.rdb != nil {
		return c.rdb.Close()
	}
	return nil
}
