package observability

import "time"

// Observer receives one notification per completed client operation.
// Implementations must be safe for concurrent use; the weaviate client calls
// ObserveOperation from whichever goroutine performed the request.
type Observer interface {
	ObserveOperation(ctx OperationContext)
}

// OperationContext describes a finished operation.
type OperationContext struct {
	// Component is the client package that performed the operation, e.g. "weaviate".
	Component string

	// Operation is the verb, e.g. "GET" or "graphql.get".
	Operation string

	// Resource is the primary target, e.g. the request path or collection name.
	Resource string

	// SubResource is optional extra context such as an object id.
	SubResource string

	Duration time.Duration

	// Error is nil on success.
	Error error

	// Size is the number of bytes received, or -1 if unknown.
	Size int64

	Metadata map[string]interface{}
}

// ObserverFunc adapts a function to the Observer interface.
type ObserverFunc func(ctx OperationContext)

// ObserveOperation calls f(ctx).
func (f ObserverFunc) ObserveOperation(ctx OperationContext) { f(ctx) }

// Multi fans a notification out to several observers. Nil entries are skipped.
func Multi(observers ...Observer) Observer {
	return ObserverFunc(func(ctx OperationContext) {
		for _, o := range observers {
			if o != nil {
				o.ObserveOperation(ctx)
			}
		}
	})
}
