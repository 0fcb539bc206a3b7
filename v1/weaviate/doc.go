// Package weaviate provides a typed, dependency-injected client for the
// Weaviate vector database.
//
// The client wraps the REST and GraphQL endpoints of a Weaviate server in
// small API groups that share one HTTP transport. Every remote call returns
// a [transport.Response] envelope: failures never panic and never escape as
// a bare error, they are carried in Response.Error. Invalid arguments are
// rejected before any request is sent and returned as a Go error that
// [IsArgumentError] recognises.
//
// # Core Features
//
//   - Schema, object, batch, reference, backup, cluster and classification APIs
//   - GraphQL Get/Aggregate queries built with the graphql subpackage
//   - Chunked concurrent batch import with per-object results in input order
//   - API key, OIDC token and basic authentication
//   - Config struct supporting YAML files with ${VAR} expansion
//   - Server version check on startup
//   - Fx module with lifecycle management
//   - OpenTelemetry spans, structured logging and operation observers
//
// # Basic Usage
//
//	import (
//	    "github.com/Aleph-Alpha/weaviate-std/v1/weaviate"
//	    "github.com/Aleph-Alpha/weaviate-std/v1/weaviate/graphql"
//	)
//
//	client, err := weaviate.NewClient(*weaviate.FromHost("http", "localhost:8080"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	_, err = client.Schema().CreateCollection(ctx, weaviate.Collection{
//	    Class:      "Pizza",
//	    Vectorizer: weaviate.VectorizerNone,
//	    Properties: []weaviate.Property{
//	        weaviate.NewProperty("name", weaviate.DataTypeText),
//	    },
//	})
//
//	q := graphql.NewGet("Pizza", graphql.Fields("name")...).
//	    WithNearText(graphql.NewNearText("italian")).
//	    WithLimit(5)
//	resp, err := client.Graph().Get(ctx, q)
//	if err != nil {
//	    return err // invalid query
//	}
//	if err := resp.Err(); err != nil {
//	    return err // transport or server failure
//	}
//	if err := resp.Result.Err(); err != nil {
//	    return err // GraphQL errors
//	}
//
// # Batch Import
//
// [Batch.CreateObjects] sends one request. [Batch.CreateObjectsChunked]
// splits the objects by Config.BatchSize and runs Config.BatchConcurrency
// requests at a time:
//
//	resp, err := client.Batch().CreateObjectsChunked(ctx, objects, weaviate.ConsistencyQuorum)
//	if err != nil {
//	    return err
//	}
//	if resp.Result.HasErrors() {
//	    for _, o := range resp.Result.Objects() {
//	        if o.BatchStatus() == transport.BatchStatusFailed {
//	            log.Printf("object %s failed: %v", o.ID, o.Result.Errors.Messages())
//	        }
//	    }
//	}
//
// # Fx Integration
//
//	app := fx.New(
//	    observability.FXModule,
//	    weaviate.FXModule,
//	    fx.Provide(func() (weaviate.Config, error) {
//	        cfg, err := weaviate.LoadConfig("weaviate.yaml")
//	        if err != nil {
//	            return weaviate.Config{}, err
//	        }
//	        return *cfg, nil
//	    }),
//	)
//
// The module checks readiness and the server version when the application
// starts and closes the client when it stops.
//
// # Thread Safety
//
// A [Client] and its API groups are safe for concurrent use.
package weaviate
