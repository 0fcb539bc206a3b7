package weaviate

import (
	"context"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/fx"

	"github.com/Aleph-Alpha/weaviate-std/v1/observability"
	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// FXModule is an fx.Module that provides and configures the Weaviate client.
//
// The module:
// 1. Provides the client factory function
// 2. Invokes the lifecycle registration to manage the client's lifecycle
//
// Usage:
//
//	app := fx.New(
//	    observability.FXModule, // optional: logger, metrics, tracing
//	    weaviate.FXModule,
//	    fx.Provide(func() weaviate.Config { return loadWeaviateConfig() }),
//	)
var FXModule = fx.Module("weaviate",
	fx.Provide(
		NewClientWithDI,
	),
	fx.Invoke(RegisterWeaviateLifecycle),
)

// Params groups the dependencies needed to create a Weaviate client.
type Params struct {
	fx.In

	Config Config

	Logger         Logger                 `optional:"true"`
	ZapLogger      *observability.Logger  `optional:"true"`
	Observer       observability.Observer `optional:"true"`
	TracerProvider trace.TracerProvider   `optional:"true"`
	Doer           transport.HTTPDoer     `optional:"true"`
}

// NewClientWithDI creates a client from injected dependencies. Values set in
// Config take precedence over injected ones. The server is not contacted
// here; RegisterWeaviateLifecycle checks it when the application starts.
func NewClientWithDI(p Params) (*Client, error) {
	cfg := p.Config
	if cfg.Logger == nil {
		switch {
		case p.Logger != nil:
			cfg.Logger = p.Logger
		case p.ZapLogger != nil:
			cfg.Logger = p.ZapLogger
		}
	}
	if cfg.Observer == nil {
		cfg.Observer = p.Observer
	}
	if cfg.TracerProvider == nil {
		cfg.TracerProvider = p.TracerProvider
	}
	if cfg.Doer == nil {
		cfg.Doer = p.Doer
	}
	return newClient(cfg)
}

// LifecycleParams groups the dependencies needed for lifecycle management.
type LifecycleParams struct {
	fx.In

	Lifecycle fx.Lifecycle
	Client    *Client
}

// RegisterWeaviateLifecycle registers the client with the fx lifecycle.
//
// On start it checks the readiness endpoint once and, unless
// SkipVersionCheck is set, the server version. On stop it closes
// the client.
func RegisterWeaviateLifecycle(p LifecycleParams) {
	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := p.Client.Ping(ctx); err != nil {
				p.Client.logger.Warn("weaviate is not ready", err)
				return err
			}
			if !p.Client.cfg.SkipVersionCheck {
				if err := p.Client.CheckVersion(ctx); err != nil {
					return err
				}
			}
			p.Client.logger.Info("weaviate client started", nil)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			p.Client.logger.Info("shutting down weaviate client", nil)
			return p.Client.Close()
		},
	})
}
