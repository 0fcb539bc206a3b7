package observability

const (
	Debug   = "debug"
	Info    = "info"
	Warning = "warning"
	Error   = "error"
)

// Config groups the settings consumed by FXModule.
type Config struct {
	Logger  LoggerConfig  `yaml:"logger"`
	Metrics MetricsConfig `yaml:"metrics"`
	Tracing TracingConfig `yaml:"tracing"`
}

// DefaultMetricsAddress is used when MetricsConfig.Address is empty.
const DefaultMetricsAddress = ":9090"

// LoggerConfig controls the zap logger built by NewLogger.
type LoggerConfig struct {
	// Level is one of debug, info, warning, error. Anything else means info.
	Level string `yaml:"level" envconfig:"ZAP_LOGGER_LEVEL"`

	// ServiceName is attached to every entry as the "service" field.
	ServiceName string `yaml:"service_name" envconfig:"SERVICE_NAME"`

	// EnableTracing makes WithContext attach trace_id and span_id from the
	// active span.
	EnableTracing bool `yaml:"enable_tracing" envconfig:"ZAP_LOGGER_ENABLE_TRACING"`
}

// MetricsConfig controls the Prometheus observer.
type MetricsConfig struct {
	// Address is where the /metrics endpoint listens.
	//
	// Default: ":9090"
	Address string `yaml:"address" envconfig:"METRICS_ADDRESS"`

	// ServiceName becomes the constant "service" label on every metric.
	ServiceName string `yaml:"service_name" envconfig:"METRICS_SERVICE_NAME"`

	// Namespace prefixes every metric name, e.g. "search" gives
	// search_operations_total.
	Namespace string `yaml:"namespace" envconfig:"METRICS_NAMESPACE"`

	// EnableDefaultCollectors registers the Go runtime, process and build
	// info collectors.
	EnableDefaultCollectors bool `yaml:"enable_default_collectors" envconfig:"METRICS_ENABLE_DEFAULT_COLLECTORS"`
}

// TracingConfig controls the tracer provider built by NewTracerProvider.
type TracingConfig struct {
	ServiceName string `yaml:"service_name" envconfig:"TRACER_SERVICE_NAME"`

	// AppEnv is recorded as the deployment environment resource attribute.
	AppEnv string `yaml:"app_env" envconfig:"APP_ENV"`

	// EnableExport ships spans to an OTLP/HTTP collector. The endpoint is
	// read from the standard OTEL_EXPORTER_OTLP_* variables unless Endpoint
	// is set.
	EnableExport bool `yaml:"enable_export" envconfig:"TRACER_ENABLE_EXPORT"`

	// Endpoint is host:port of the collector.
	Endpoint string `yaml:"endpoint" envconfig:"TRACER_ENDPOINT"`

	// Insecure disables TLS towards the collector.
	Insecure bool `yaml:"insecure" envconfig:"TRACER_INSECURE"`
}
