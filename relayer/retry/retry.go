package retry

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/GPTx-global/pricefeed/relayer/log"
)

type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Multiplier  float64
}

// FetchConfig is used for price source requests.
func FetchConfig() Config {
	return Config{
		MaxAttempts: 5,
		BaseDelay:   1 * time.Second,
		MaxDelay:    30 * time.Second,
		Multiplier:  2.0,
	}
}

// BroadcastConfig is used when handing messages to the broadcaster.
func BroadcastConfig() Config {
	return Config{
		MaxAttempts: 3,
		BaseDelay:   500 * time.Millisecond,
		MaxDelay:    10 * time.Second,
		Multiplier:  2.0,
	}
}

type Func func() error

type IsRetryable func(error) bool

// Permanent marks err as not worth retrying.
func Permanent(err error) error {
	if err == nil {
		return nil
	}
	return &permanentError{err}
}

type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

var transientErrors = []string{
	"connection refused",
	"timeout",
	"temporary failure",
	"network is unreachable",
	"no such host",
	"connection reset",
	"broken pipe",
	"context deadline exceeded",
	"account sequence mismatch",
	"tx already exists in cache",
	"unexpected status: 5",
}

// DefaultIsRetryable retries network failures and server errors.
func DefaultIsRetryable(err error) bool {
	if err == nil {
		return false
	}
	var permanent *permanentError
	if errors.As(err, &permanent) {
		return false
	}

	msg := err.Error()
	for _, transient := range transientErrors {
		if strings.Contains(msg, transient) {
			return true
		}
	}
	return false
}

// Do runs fn until it succeeds, fails permanently or runs out of attempts.
func Do(ctx context.Context, cfg Config, fn Func, isRetryable IsRetryable) error {
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		err := fn()
		if err == nil {
			return nil
		}
		lastErr = err

		if attempt == cfg.MaxAttempts {
			break
		}
		if !isRetryable(err) {
			return err
		}

		delay := Delay(cfg, attempt)
		log.Debugf("attempt %d/%d failed, retrying in %v: %v", attempt, cfg.MaxAttempts, delay, err)

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(delay):
		}
	}

	return fmt.Errorf("all %d attempts failed, last error: %w", cfg.MaxAttempts, lastErr)
}

// Delay is the exponential backoff before the attempt following attempt.
func Delay(cfg Config, attempt int) time.Duration {
	delay := float64(cfg.BaseDelay) * math.Pow(cfg.Multiplier, float64(attempt-1))
	if delay > float64(cfg.MaxDelay) {
		delay = float64(cfg.MaxDelay)
	}
	return time.Duration(delay)
}
