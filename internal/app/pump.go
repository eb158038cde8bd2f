package app

import (
	"context"
	"errors"
	"time"

	"github.com/cenkalti/backoff/v4"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/flipbook/internal/touch"
	"github.com/five82/flipbook/internal/ui"
)

const (
	defaultRetryInterval = 2 * time.Second
	maxBackoff           = 30 * time.Second
)

// touchSource is satisfied by *touch.Reader.
type touchSource interface {
	Run(ctx context.Context, emit func(touch.Sample)) error
	Close() error
}

// openFunc opens a fresh touch source.
type openFunc func() (touchSource, error)

// StartTouchPump launches a background goroutine that forwards touchscreen
// samples to the UI event loop, reopening the device with backoff when it
// fails. It returns immediately.
func StartTouchPump(ctx context.Context, open openFunc, send func(tea.Msg), logger *zap.Logger) {
	go runTouchPump(ctx, open, send, logger, defaultRetryInterval)
}

func runTouchPump(ctx context.Context, open openFunc, send func(tea.Msg), logger *zap.Logger, interval time.Duration) {
	policy := newRetryBackOff(interval)
	b := backoff.WithContext(policy, ctx)

	session := func() error {
		delivered, err := pumpOnce(ctx, open, send)
		switch {
		case err == nil || ctx.Err() != nil:
			return nil
		case errors.Is(err, touch.ErrUnsupported):
			return backoff.Permanent(err)
		}
		if delivered {
			policy.Reset()
		}
		return err
	}

	err := backoff.RetryNotify(session, b, func(err error, wait time.Duration) {
		logger.Warn("touch device failed", zap.Error(err), zap.Duration("retry_in", wait))
	})
	if err != nil && ctx.Err() == nil {
		logger.Warn("touch input disabled", zap.Error(err))
	}
}

// pumpOnce runs one device session and reports whether it delivered any
// sample before ending.
func pumpOnce(ctx context.Context, open openFunc, send func(tea.Msg)) (bool, error) {
	src, err := open()
	if err != nil {
		return false, err
	}
	defer src.Close()

	delivered := false
	err = src.Run(ctx, func(s touch.Sample) {
		delivered = true
		send(ui.TouchMsg(s))
	})
	return delivered, err
}

// newRetryBackOff doubles the wait per consecutive failure, capped at
// maxBackoff, and never gives up on its own.
func newRetryBackOff(interval time.Duration) *backoff.ExponentialBackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = interval
	b.MaxInterval = maxBackoff
	b.Multiplier = 2
	b.RandomizationFactor = 0
	b.MaxElapsedTime = 0
	b.Reset()
	return b
}
