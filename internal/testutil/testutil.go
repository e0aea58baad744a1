// SPDX-License-Identifier: MIT

// Package testutil holds helpers shared by package tests: a recorder standing
// in for outbound transports, deterministic float pair generators for
// comparison properties, and a goroutine leak check.
package testutil

import (
	"math"
	"math/rand"
	"sync"

	"go.uber.org/goleak"
)

// Recorder captures values sent to it instead of transmitting them.
type Recorder[T any] struct {
	mu   sync.Mutex
	sent []T
}

// Send stores a copy of v for later inspection.
func (r *Recorder[T]) Send(v T) error {
	r.mu.Lock()
	r.sent = append(r.sent, v)
	r.mu.Unlock()
	return nil
}

// Sent returns a copy of everything recorded so far.
func (r *Recorder[T]) Sent() []T {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]T, len(r.sent))
	copy(out, r.sent)
	return out
}

// Last returns the most recent value and whether one exists.
func (r *Recorder[T]) Last() (T, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.sent) == 0 {
		var zero T
		return zero, false
	}
	return r.sent[len(r.sent)-1], true
}

// FloatPair is a pair of comparison operands.
type FloatPair struct {
	A, B float64
}

// FloatPairs returns n pseudo-random pairs drawn from a fixed seed. Roughly a
// third of the pairs are equal, a third differ by a single ULP, and the rest
// are unrelated values spanning many magnitudes.
func FloatPairs(n int, seed int64) []FloatPair {
	rng := rand.New(rand.NewSource(seed))
	pairs := make([]FloatPair, n)
	for i := range pairs {
		a := (rng.Float64()*2 - 1) * math.Pow(10, float64(rng.Intn(20)-10))
		switch i % 3 {
		case 0:
			pairs[i] = FloatPair{a, a}
		case 1:
			pairs[i] = FloatPair{a, math.Nextafter(a, math.Inf(1))}
		default:
			b := (rng.Float64()*2 - 1) * math.Pow(10, float64(rng.Intn(20)-10))
			pairs[i] = FloatPair{a, b}
		}
	}
	return pairs
}

// UnitULPPairs returns n pairs in [1, 2) whose members are exactly one unit in
// the last place apart. In that range one ULP equals the float64 machine
// epsilon.
func UnitULPPairs(n int, seed int64) []FloatPair {
	rng := rand.New(rand.NewSource(seed))
	pairs := make([]FloatPair, n)
	for i := range pairs {
		a := 1 + float64(rng.Int63n(1<<52-1))*0x1p-52
		pairs[i] = FloatPair{a, math.Nextafter(a, 2)}
	}
	return pairs
}

// LeakTester fails t if goroutines started during the test are still running.
func LeakTester(t goleak.TestingT, extraOpts ...goleak.Option) {
	goleak.VerifyNone(t, extraOpts...)
}
