package observability

import (
	"context"
	"errors"
	"net"
	"net/http"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"
)

// FXModule provides a *Logger, a *MetricsObserver (also as Observer) and a
// tracer provider (as *sdktrace.TracerProvider and trace.TracerProvider)
// built from a Config, and manages the metrics server and tracer shutdown.
//
// Usage:
//
//	app := fx.New(
//	    observability.FXModule,
//	    weaviate.FXModule,
//	    fx.Provide(func() observability.Config { return loadObservabilityConfig() }),
//	    fx.Provide(func() weaviate.Config { return loadWeaviateConfig() }),
//	)
var FXModule = fx.Module("observability",
	fx.Provide(
		func(cfg Config) (*Logger, error) { return NewLogger(cfg.Logger) },
		func(cfg Config) *MetricsObserver { return NewMetricsObserver(cfg.Metrics) },
		func(m *MetricsObserver) Observer { return m },
		func(cfg Config) (*sdktrace.TracerProvider, error) {
			return NewTracerProvider(context.Background(), cfg.Tracing)
		},
		func(tp *sdktrace.TracerProvider) trace.TracerProvider { return tp },
	),
	fx.Invoke(RegisterObservabilityLifecycle),
)

// LifecycleParams groups the dependencies managed by RegisterObservabilityLifecycle.
type LifecycleParams struct {
	fx.In

	Lifecycle      fx.Lifecycle
	Logger         *Logger
	Metrics        *MetricsObserver
	TracerProvider *sdktrace.TracerProvider
}

// RegisterObservabilityLifecycle starts the metrics server on application
// start, and on stop shuts it down, flushes the tracer provider and syncs
// the logger.
func RegisterObservabilityLifecycle(params LifecycleParams) {
	params.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", params.Metrics.Server.Addr)
			if err != nil {
				return err
			}
			params.Logger.Info("Starting Prometheus metrics server", nil, map[string]interface{}{
				"address": ln.Addr().String(),
			})
			go func() {
				if err := params.Metrics.Server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					params.Logger.Error("Prometheus metrics server stopped", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			params.Logger.Info("Shutting down observability", nil)
			err := errors.Join(
				params.Metrics.Server.Shutdown(ctx),
				params.TracerProvider.Shutdown(ctx),
			)
			_ = params.Logger.Sync()
			return err
		},
	})
}
