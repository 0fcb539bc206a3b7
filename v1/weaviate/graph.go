package weaviate

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/vektah/gqlparser/v2/gqlerror"

	"github.com/Aleph-Alpha/weaviate-std/v1/observability"
	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/graphql"
	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// GraphResponse is the body of a GraphQL answer. A query can succeed at the
// HTTP level and still carry errors.
type GraphResponse struct {
	Data   json.RawMessage `json:"data,omitempty"`
	Errors gqlerror.List   `json:"errors,omitempty"`
}

// Err returns the GraphQL errors as one error, or nil.
func (g *GraphResponse) Err() error {
	if g == nil || len(g.Errors) == 0 {
		return nil
	}
	return g.Errors
}

// Decode unmarshals the data member into v.
func (g *GraphResponse) Decode(v any) error {
	if g == nil || len(g.Data) == 0 {
		return fmt.Errorf("weaviate: graphql response has no data")
	}
	return json.Unmarshal(g.Data, v)
}

// Graph runs GraphQL queries and explore searches.
type Graph struct {
	t        *transport.Transport
	observer observability.Observer
}

type graphRequest struct {
	Query string `json:"query"`
}

// Get runs a Get query.
func (g *Graph) Get(ctx context.Context, q *graphql.Get) (*transport.Response[GraphResponse], error) {
	query := q.Build()
	if query == "" {
		return nil, ErrMissingQuery
	}
	return g.run(ctx, "graphql.get", q.Collection, query), nil
}

// Aggregate runs an Aggregate query.
func (g *Graph) Aggregate(ctx context.Context, q *graphql.Aggregate) (*transport.Response[GraphResponse], error) {
	query := q.Build()
	if query == "" {
		return nil, ErrMissingQuery
	}
	return g.run(ctx, "graphql.aggregate", q.Collection, query), nil
}

// Raw sends a hand-written GraphQL query.
func (g *Graph) Raw(ctx context.Context, query string) (*transport.Response[GraphResponse], error) {
	if query == "" {
		return nil, ErrMissingQuery
	}
	return g.run(ctx, "graphql.raw", "", query), nil
}

func (g *Graph) run(ctx context.Context, operation, collection, query string) *transport.Response[GraphResponse] {
	started := time.Now()
	resp := transport.Post[GraphResponse](ctx, g.t, apiPath("graphql"), graphRequest{Query: query})

	err := resp.Err()
	if err == nil {
		err = resp.Result.Err()
	}
	g.observeOperation(operation, collection, err, int64(len(resp.ResponseBody)), time.Since(started))
	return resp
}

// Explore runs a cross-collection similarity search. The object list is
// returned as data.Get.Explore so it decodes like a Get query.
func (g *Graph) Explore(ctx context.Context, e *graphql.Explore) (*transport.Response[GraphResponse], error) {
	if e == nil || e.Query == "" {
		return nil, ErrMissingQuery
	}
	started := time.Now()
	raw := transport.Do(ctx, g.t, transport.Request{
		Method:   http.MethodGet,
		Path:     apiPath("objects", "explore"),
		RawQuery: e.Build(),
	}, transport.PlainDecoder[json.RawMessage]())

	var result *GraphResponse
	if raw.IsSuccess() && raw.Result != nil {
		wrapped, err := json.Marshal(map[string]any{"Get": map[string]any{"Explore": *raw.Result}})
		if err == nil {
			result = &GraphResponse{Data: wrapped}
		}
	}
	resp := transport.Rewrap(raw, result)
	g.observeOperation("explore", e.Collection, resp.Err(), int64(len(raw.ResponseBody)), time.Since(started))
	return resp, nil
}

func (g *Graph) observeOperation(operation, collection string, err error, size int64, duration time.Duration) {
	if g.observer == nil {
		return
	}
	g.observer.ObserveOperation(observability.OperationContext{
		Component: component,
		Operation: operation,
		Resource:  collection,
		Duration:  duration,
		Error:     err,
		Size:      size,
	})
}
