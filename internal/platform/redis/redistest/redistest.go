// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package redistest hands integration tests a Redis client on a scratch database.
package redistest

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// EnvRedisURL names the variable holding the test Redis URL.
const EnvRedisURL = "TEST_REDIS_URL"

// Client returns a client for TEST_REDIS_URL, skipping the test when it is unset
// or unreachable. Keys under prefix are removed before and after the test.
func Client(t *testing.T, prefix string) *redis.Client {
	t.Helper()

	redisURL := os.Getenv(EnvRedisURL)
	if redisURL == "" {
		t.Skipf("skipping integration test: %s not set", EnvRedisURL)
	}

	options, err := redis.ParseURL(redisURL)
	if err != nil {
		t.Fatalf("redistest: invalid URL: %v", err)
	}

	client := redis.NewClient(options)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		t.Skipf("skipping integration test: Redis not reachable: %v", err)
	}

	purge := func() {
		keys, _ := client.Keys(context.Background(), prefix+"*").Result()
		if len(keys) > 0 {
			client.Del(context.Background(), keys...)
		}
	}
	purge()

	t.Cleanup(func() {
		purge()
		_ = client.Close()
	})

	return client
}
