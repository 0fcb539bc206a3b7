package weaviate

import (
	"context"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// Misc covers server metadata and health endpoints.
type Misc struct {
	t *transport.Transport
}

// Meta returns the server version, hostname and enabled modules.
func (m *Misc) Meta(ctx context.Context) *transport.Response[Meta] {
	return transport.Get[Meta](ctx, m.t, apiPath("meta"), nil)
}

// Ready asks whether the server accepts traffic. It answers 200 when ready
// and 503 otherwise.
func (m *Misc) Ready(ctx context.Context) *transport.Response[transport.Object] {
	return transport.Get[transport.Object](ctx, m.t, apiPath(".well-known", "ready"), nil)
}

// Live asks whether the server process is up.
func (m *Misc) Live(ctx context.Context) *transport.Response[transport.Object] {
	return transport.Get[transport.Object](ctx, m.t, apiPath(".well-known", "live"), nil)
}
