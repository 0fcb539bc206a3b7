package weaviate

import (
	"context"
	"fmt"
	"net/http"

	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// Schema manages collections, properties and shards.
type Schema struct {
	t           *transport.Transport
	concurrency int
}

// GetSchema returns every collection definition.
func (s *Schema) GetSchema(ctx context.Context) *transport.Response[SchemaDump] {
	return transport.Get[SchemaDump](ctx, s.t, apiPath("schema"), nil)
}

// GetCollection returns the definition of one collection.
func (s *Schema) GetCollection(ctx context.Context, name string) (*transport.Response[Collection], error) {
	if err := requireCollection(name); err != nil {
		return nil, err
	}
	return transport.Get[Collection](ctx, s.t, apiPath("schema", name), nil), nil
}

// CreateCollection creates a collection from its definition.
func (s *Schema) CreateCollection(ctx context.Context, c Collection) (*transport.Response[Collection], error) {
	if err := requireCollection(c.Class); err != nil {
		return nil, err
	}
	for _, p := range c.Properties {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: collection %s", ErrMissingProperty, c.Class)
		}
	}
	return transport.Post[Collection](ctx, s.t, apiPath("schema"), c), nil
}

// DeleteCollection deletes a collection and all its objects.
func (s *Schema) DeleteCollection(ctx context.Context, name string) (*transport.Response[transport.Object], error) {
	if err := requireCollection(name); err != nil {
		return nil, err
	}
	return transport.Delete[transport.Object](ctx, s.t, apiPath("schema", name), nil), nil
}

// CollectionExists reports whether the collection is defined. A 404 is not
// an error.
func (s *Schema) CollectionExists(ctx context.Context, name string) (bool, error) {
	resp, err := s.GetCollection(ctx, name)
	if err != nil {
		return false, err
	}
	switch {
	case resp.IsSuccess():
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, resp.Err()
	}
}

// CreateProperty adds a property to an existing collection.
func (s *Schema) CreateProperty(ctx context.Context, collection string, p Property) (*transport.Response[Property], error) {
	if err := requireCollection(collection); err != nil {
		return nil, err
	}
	if p.Name == "" {
		return nil, ErrMissingProperty
	}
	return transport.Post[Property](ctx, s.t, apiPath("schema", collection, "properties"), p), nil
}

// GetShards lists the shards of a collection with their status.
func (s *Schema) GetShards(ctx context.Context, collection string) (*transport.Response[[]Shard], error) {
	if err := requireCollection(collection); err != nil {
		return nil, err
	}
	return transport.Get[[]Shard](ctx, s.t, apiPath("schema", collection, "shards"), nil), nil
}

// UpdateShard sets the status of one shard. The answer only carries the new status.
func (s *Schema) UpdateShard(ctx context.Context, collection, shard string, status ShardStatus) (*transport.Response[Shard], error) {
	if err := requireCollection(collection); err != nil {
		return nil, err
	}
	if shard == "" {
		return nil, ErrMissingShard
	}
	body := Shard{Status: status}
	return transport.Put[Shard](ctx, s.t, apiPath("schema", collection, "shards", shard), body), nil
}

// UpdateShards sets the status of every shard of the collection. Shards are
// updated concurrently; the first failed update is returned with the
// shards updated so far.
func (s *Schema) UpdateShards(ctx context.Context, collection string, status ShardStatus) (*transport.Response[[]Shard], error) {
	shards, err := s.GetShards(ctx, collection)
	if err != nil {
		return nil, err
	}
	if !shards.IsSuccess() || shards.Result == nil {
		return shards, nil
	}

	responses := make([]*transport.Response[Shard], len(*shards.Result))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, shard := range *shards.Result {
		g.Go(func() error {
			resp, err := s.UpdateShard(gctx, collection, shard.Name, status)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// The PUT answer only carries the status, so names come from the listing.
	updated := make([]Shard, 0, len(responses))
	for i, resp := range responses {
		if !resp.IsSuccess() {
			return transport.Rewrap(resp, &updated), nil
		}
		if resp.Result != nil {
			updated = append(updated, Shard{Name: (*shards.Result)[i].Name, Status: resp.Result.Status})
		}
	}
	return transport.Rewrap(shards, &updated), nil
}

// DeleteAllCollections deletes every collection in the schema concurrently
// and returns the first failed deletion, if any.
func (s *Schema) DeleteAllCollections(ctx context.Context) *transport.Response[transport.Object] {
	schema := s.GetSchema(ctx)
	if !schema.IsSuccess() || schema.Result == nil {
		return transport.Rewrap[transport.Object](schema, nil)
	}

	responses := make([]*transport.Response[transport.Object], len(schema.Result.Classes))
	var g errgroup.Group
	g.SetLimit(s.concurrency)
	for i, c := range schema.Result.Classes {
		g.Go(func() error {
			resp, err := s.DeleteCollection(ctx, c.Class)
			if err != nil {
				return err
			}
			responses[i] = resp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		out := transport.Rewrap[transport.Object](schema, nil)
		out.Error = &transport.ErrorResponse{Error: []transport.Error{{Message: err.Error()}}}
		return out
	}

	for _, resp := range responses {
		if !resp.IsSuccess() {
			return resp
		}
	}
	return transport.Rewrap(schema, &transport.Object{})
}
