package observability

import (
	"context"
	"errors"
	"fmt"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const shutdownBudget = 5 * time.Second

// ShutdownFunc flushes pending telemetry and stops the exporters. A nil or
// deadline-free context gets a 5 second budget.
type ShutdownFunc func(context.Context) error

// NewShutdownFunc folds tracer and meter provider shutdown into one call.
// Both providers are attempted even when the first fails.
func NewShutdownFunc(tp *sdktrace.TracerProvider, mp *sdkmetric.MeterProvider) ShutdownFunc {
	return func(ctx context.Context) error {
		ctx, cancel := withShutdownBudget(ctx)
		defer cancel()

		var tracerErr, meterErr error
		if tp != nil {
			if err := tp.Shutdown(ctx); err != nil {
				tracerErr = fmt.Errorf("shutdown tracer provider: %w", err)
			}
		}
		if mp != nil {
			if err := mp.Shutdown(ctx); err != nil {
				meterErr = fmt.Errorf("shutdown meter provider: %w", err)
			}
		}
		return errors.Join(tracerErr, meterErr)
	}
}

func withShutdownBudget(ctx context.Context) (context.Context, context.CancelFunc) {
	if ctx == nil {
		ctx = context.Background()
	}
	if _, ok := ctx.Deadline(); ok {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, shutdownBudget)
}
