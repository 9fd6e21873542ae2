// Package tracking reports errors and recovered panics to an external
// error tracker. Without a DSN every call is a no-op.
package tracking

import (
	"context"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
)

// Tracker is the error tracking surface used by the HTTP layer.
type Tracker interface {
	CaptureError(ctx context.Context, err error, tags map[string]string)
	CapturePanic(ctx context.Context, recovered any, tags map[string]string)
	Flush(timeout time.Duration) bool
}

// New returns a Sentry tracker, or a no-op tracker when dsn is empty.
func New(dsn, environment, release string) (Tracker, error) {
	if dsn == "" {
		return Noop{}, nil
	}
	err := sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: environment,
		Release:     release,
	})
	if err != nil {
		return nil, fmt.Errorf("init sentry: %w", err)
	}
	return &sentryTracker{hub: sentry.CurrentHub()}, nil
}

type sentryTracker struct {
	hub *sentry.Hub
}

func (t *sentryTracker) CaptureError(ctx context.Context, err error, tags map[string]string) {
	hub := t.scoped(ctx, tags)
	hub.CaptureException(err)
}

func (t *sentryTracker) CapturePanic(ctx context.Context, recovered any, tags map[string]string) {
	hub := t.scoped(ctx, tags)
	hub.RecoverWithContext(ctx, recovered)
}

func (t *sentryTracker) Flush(timeout time.Duration) bool {
	return sentry.Flush(timeout)
}

func (t *sentryTracker) scoped(ctx context.Context, tags map[string]string) *sentry.Hub {
	hub := sentry.GetHubFromContext(ctx)
	if hub == nil {
		hub = t.hub
	}
	hub = hub.Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		for k, v := range tags {
			scope.SetTag(k, v)
		}
	})
	return hub
}

// Noop discards everything.
type Noop struct{}

func (Noop) CaptureError(context.Context, error, map[string]string) {}

func (Noop) CapturePanic(context.Context, any, map[string]string) {}

func (Noop) Flush(time.Duration) bool { return true }
