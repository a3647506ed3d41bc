// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ratelimit throttles requests to the NCBI E-utilities API.
package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter gates consecutive requests to an external service. The pipeline
// calls Wait after every detail request, success or failure.
type Limiter interface {
	// Wait blocks until the next request slot or the context ends.
	Wait(ctx context.Context) error
}

// FixedDelay pauses unconditionally for a fixed interval on every Wait.
// This is the default throttle toward NCBI: deliberate, not adaptive.
type FixedDelay struct {
	Delay time.Duration
}

// NewFixedDelay returns a limiter that sleeps for delay on every Wait.
func NewFixedDelay(delay time.Duration) *FixedDelay {
	return &FixedDelay{Delay: delay}
}

// Wait sleeps for the configured delay, returning early with ctx.Err() if
// the context is cancelled.
func (f *FixedDelay) Wait(ctx context.Context) error {
	if f.Delay <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(f.Delay)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// TokenBucket wraps a token-bucket limiter. It allows short bursts while
// holding the sustained rate, which matches NCBI's published limits
// (3 req/s without an API key, 10 req/s with one).
type TokenBucket struct {
	limiter *rate.Limiter
}

// NewTokenBucket returns a limiter allowing perSecond sustained requests
// with the given burst size.
func NewTokenBucket(perSecond float64, burst int) *TokenBucket {
	return &TokenBucket{limiter: rate.NewLimiter(rate.Limit(perSecond), burst)}
}

// Wait blocks until a token is available or the context ends.
func (t *TokenBucket) Wait(ctx context.Context) error {
	return t.limiter.Wait(ctx)
}

// Nop is a limiter that never waits. Tests use it to keep pipeline runs
// instant.
type Nop struct{}

// Wait returns immediately.
func (Nop) Wait(context.Context) error { return nil }
