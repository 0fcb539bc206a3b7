// Package observability provides the logging, metrics and tracing plumbing
// shared by the client packages of this module.
//
// # Observer
//
// Client packages report every finished operation to an [Observer] as an
// [OperationContext]. The observer is optional: a client without one skips
// the notification entirely. [MetricsObserver] is the Prometheus-backed
// implementation; [ObserverFunc] and [Multi] cover ad hoc and fan-out use.
//
//	obs := observability.NewMetricsObserver(observability.MetricsConfig{
//	    Address:     ":9090",
//	    ServiceName: "search-api",
//	})
//	go obs.Server.ListenAndServe()
//
//	client, err := weaviate.NewClient(weaviate.DefaultConfig().WithObserver(obs))
//
// # Logging
//
// [NewLogger] returns a zap-backed [Logger] whose methods take a message, an
// optional error and optional field maps:
//
//	log.Info("collection created", nil, map[string]interface{}{"collection": "Pizza"})
//	log.Error("import failed", err)
//
// With LoggerConfig.EnableTracing, [Logger.WithContext] attaches the trace
// and span ids of the active span.
//
// # Tracing
//
// [NewTracerProvider] builds and installs an OpenTelemetry SDK provider,
// optionally exporting over OTLP/HTTP. Clients pick up the global provider
// unless one is passed explicitly.
//
// # FX Module Integration
//
// [FXModule] wires all three from a single [Config] and manages the metrics
// server and the tracer provider shutdown.
package observability
