// Package nonce produces the decimal nonce tokens embedded in withdrawal
// messages.
//
// The verifier expects decimal digits. MillisSource reproduces the
// historical wall-clock behaviour, where two calls inside the same
// millisecond collide. MonotonicSource keeps the same format but never
// issues the same value twice within a process.
package nonce

import (
	"fmt"
	"strconv"
	"sync/atomic"
	"time"

	"github.com/Layr-Labs/l2-withdrawal-signer/pkg/config"
)

type Source interface {
	Next(now time.Time) string
}

type MillisSource struct{}

func NewMillisSource() *MillisSource {
	return &MillisSource{}
}

func (s *MillisSource) Next(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}

type MonotonicSource struct {
	last atomic.Int64
}

func NewMonotonicSource() *MonotonicSource {
	return &MonotonicSource{}
}

// Next returns now in epoch milliseconds, or last+1 if the clock has not
// moved past the previously issued value.
func (s *MonotonicSource) Next(now time.Time) string {
	candidate := now.UnixMilli()
	for {
		last := s.last.Load()
		next := candidate
		if next <= last {
			next = last + 1
		}
		if s.last.CompareAndSwap(last, next) {
			return strconv.FormatInt(next, 10)
		}
	}
}

// FromMode returns the source configured by mode.
func FromMode(mode config.NonceMode) (Source, error) {
	switch mode {
	case config.NonceMode_Millis, "":
		return NewMillisSource(), nil
	case config.NonceMode_Monotonic:
		return NewMonotonicSource(), nil
	default:
		return nil, fmt.Errorf("unsupported nonce mode: %s", mode)
	}
}
