package transport

import (
	"net/http"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/Aleph-Alpha/weaviate-std/v1/observability"
)

// DefaultTimeout bounds a request when Config.Timeout is zero and no Doer
// is injected.
const DefaultTimeout = 30 * time.Second

// Config configures a Transport.
type Config struct {
	// BaseURL is scheme://host[:port]. A trailing slash is ignored.
	BaseURL string

	// Headers are added to every request, e.g. Authorization.
	Headers http.Header

	// Timeout applies to the default HTTP client only.
	Timeout time.Duration

	// Debug logs request and response bodies at debug level.
	Debug bool

	// Doer replaces the default *http.Client.
	Doer HTTPDoer

	Logger Logger

	// Observer is notified once per request.
	Observer observability.Observer

	// TracerProvider defaults to the global OpenTelemetry provider.
	TracerProvider trace.TracerProvider
}
