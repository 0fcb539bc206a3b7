package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// MetricsObserver is an Observer that records operations as Prometheus
// metrics in an isolated registry and serves them over HTTP.
type MetricsObserver struct {
	// Server exposes the registry at /metrics. It is started and stopped
	// by FXModule, or by the caller when used without fx.
	Server *http.Server

	// Registry holds every collector of this observer.
	Registry *prometheus.Registry

	operationsTotal   *prometheus.CounterVec
	operationDuration *prometheus.HistogramVec
	bytesReceived     *prometheus.CounterVec
}

// NewMetricsObserver creates the observer and registers its collectors.
//
// Exported series:
//   - operations_total{component,operation,status}
//   - operation_duration_seconds{component,operation}
//   - received_bytes_total{component,operation}
//
// All series carry a constant service label.
func NewMetricsObserver(cfg MetricsConfig) *MetricsObserver {
	registry := prometheus.NewRegistry()
	wrapped := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	m := &MetricsObserver{
		Registry: registry,
		operationsTotal: createCounterVec(cfg.Namespace, "operations_total",
			"Total number of client operations by outcome", []string{"component", "operation", "status"}),
		operationDuration: createHistogramVec(cfg.Namespace, "operation_duration_seconds",
			"Duration of client operations in seconds", []string{"component", "operation"}, prometheus.DefBuckets),
		bytesReceived: createCounterVec(cfg.Namespace, "received_bytes_total",
			"Total response bytes received by client operations", []string{"component", "operation"}),
	}

	wrapped.MustRegister(m.operationsTotal, m.operationDuration, m.bytesReceived)

	if cfg.EnableDefaultCollectors {
		wrapped.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			collectors.NewBuildInfoCollector(),
		)
	}

	addr := cfg.Address
	if addr == "" {
		addr = DefaultMetricsAddress
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	m.Server = &http.Server{Addr: addr, Handler: mux}

	return m
}

// ObserveOperation implements Observer.
func (m *MetricsObserver) ObserveOperation(ctx OperationContext) {
	status := "success"
	if ctx.Error != nil {
		status = "error"
	}
	m.operationsTotal.WithLabelValues(ctx.Component, ctx.Operation, status).Inc()
	m.operationDuration.WithLabelValues(ctx.Component, ctx.Operation).Observe(ctx.Duration.Seconds())
	if ctx.Size > 0 {
		m.bytesReceived.WithLabelValues(ctx.Component, ctx.Operation).Add(float64(ctx.Size))
	}
}

func createCounterVec(namespace, name, help string, labels []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
		},
		labels,
	)
}

func createHistogramVec(namespace, name, help string, labels []string, buckets []float64) *prometheus.HistogramVec {
	return prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      name,
			Help:      help,
			Buckets:   buckets,
		},
		labels,
	)
}
