// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package redis

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/redis/go-redis/v9"
)

// Guard admits an action at most once per key per window.
//
// It is a single SET NX EX: the first caller inside the window creates the
// key and is admitted, everyone else finds it and is refused until it expires.
type Guard struct {
	client redis.Cmdable
	prefix string
	window time.Duration
}

// NewGuard creates a guard whose keys are namespaced by prefix.
func NewGuard(client redis.Cmdable, prefix string, window time.Duration) *Guard {
	return &Guard{client: client, prefix: prefix, window: window}
}

// Allow reports whether the action identified by key may proceed now.
func (guard *Guard) Allow(ctx context.Context, key string) (bool, error) {
	admitted, err := guard.client.SetNX(ctx, guard.prefix+key, 1, guard.window).Result()
	if err != nil {
		return false, fmt.Errorf("redis: guard %s: %w", guard.prefix, err)
	}
	return admitted, nil
}

// RetryAfter tells refused clients when to come back: the window rounded up to whole seconds, at least one.
func (guard *Guard) RetryAfter() int {
	return max(1, int(math.Ceil(guard.window.Seconds())))
}

// Release removes key so the next Allow succeeds immediately. Callers use it
// when the guarded write failed and should not count against the client.
func (guard *Guard) Release(ctx context.Context, key string) error {
	if err := guard.client.Del(ctx, guard.prefix+key).Err(); err != nil {
		return fmt.Errorf("redis: guard release %s: %w", guard.prefix, err)
	}
	return nil
}
