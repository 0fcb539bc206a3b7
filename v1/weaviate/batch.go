package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// Batch imports and deletes many objects per request.
type Batch struct {
	t           *transport.Transport
	size        int
	concurrency int
	logger      Logger
}

type batchObjects struct {
	Objects []Object `json:"objects"`
}

// CreateObjects imports objects in one request. Objects without ID get a
// random UUID.
func (b *Batch) CreateObjects(ctx context.Context, objects []Object, level ConsistencyLevel) (*transport.Response[transport.BatchResponse[ObjectResponse]], error) {
	prepared, err := prepareObjects(objects)
	if err != nil {
		return nil, err
	}
	return b.send(ctx, prepared, level), nil
}

func (b *Batch) send(ctx context.Context, objects []Object, level ConsistencyLevel) *transport.Response[transport.BatchResponse[ObjectResponse]] {
	q := objectQuery(level, "", "")
	return transport.SendBatch[ObjectResponse](ctx, b.t, http.MethodPost, apiPath("batch", "objects"), batchObjects{Objects: objects}, q)
}

// CreateObjectsChunked splits objects into chunks of the configured batch
// size and imports them concurrently. The per-object results are merged in
// input order.
//
// When a chunk fails, the returned response carries that chunk's status and
// error together with the merged results of every chunk that succeeded.
func (b *Batch) CreateObjectsChunked(ctx context.Context, objects []Object, level ConsistencyLevel) (*transport.Response[transport.BatchResponse[ObjectResponse]], error) {
	prepared, err := prepareObjects(objects)
	if err != nil {
		return nil, err
	}

	chunks := chunk(prepared, b.size)
	responses := make([]*transport.Response[transport.BatchResponse[ObjectResponse]], len(chunks))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(b.concurrency)
	for i, c := range chunks {
		g.Go(func() error {
			responses[i] = b.send(gctx, c, level)
			return nil
		})
	}
	_ = g.Wait()

	var (
		parts  []transport.BatchResponse[ObjectResponse]
		failed *transport.Response[transport.BatchResponse[ObjectResponse]]
	)
	for i, resp := range responses {
		if !resp.IsSuccess() || resp.Result == nil {
			b.logger.Warn("weaviate batch chunk failed", resp.Err(), map[string]interface{}{
				"chunk":  i,
				"status": resp.StatusCode,
			})
			if failed == nil {
				failed = resp
			}
			continue
		}
		parts = append(parts, *resp.Result)
	}

	merged := transport.Merge(parts...)
	if failed != nil {
		return transport.Rewrap(failed, &merged), nil
	}
	return transport.Rewrap(responses[len(responses)-1], &merged), nil
}

func prepareObjects(objects []Object) ([]Object, error) {
	if len(objects) == 0 {
		return nil, ErrNoObjects
	}
	prepared := make([]Object, len(objects))
	for i, o := range objects {
		if err := requireCollection(o.Class); err != nil {
			return nil, fmt.Errorf("%w: object %d", err, i)
		}
		if o.ID == "" {
			o.ID = uuid.New().String()
		} else if err := requireID(o.ID); err != nil {
			return nil, fmt.Errorf("%w: object %d", err, i)
		}
		prepared[i] = o
	}
	return prepared, nil
}

// Reference builds a batch reference from the property of one object to
// another object.
func (b *Batch) Reference(fromCollection, fromID, fromProperty, toCollection, toID string) BatchReference {
	return BatchReference{
		From: Beacon(fromCollection, fromID, fromProperty),
		To:   Beacon(toCollection, toID),
	}
}

// CreateReferences imports cross-references in one request.
func (b *Batch) CreateReferences(ctx context.Context, refs []BatchReference, level ConsistencyLevel) (*transport.Response[transport.BatchResponse[ReferenceResponse]], error) {
	if len(refs) == 0 {
		return nil, ErrNoObjects
	}
	for i, r := range refs {
		if r.From == "" || r.To == "" {
			return nil, fmt.Errorf("%w: reference %d", ErrMissingReference, i)
		}
	}
	q := objectQuery(level, "", "")
	return transport.SendBatch[ReferenceResponse](ctx, b.t, http.MethodPost, apiPath("batch", "references"), refs, q), nil
}

// DeleteObjects deletes every object of the collection matching the filter.
// With DryRun set the server only reports what would be deleted.
func (b *Batch) DeleteObjects(ctx context.Context, req BatchDeleteRequest) (*transport.Response[BatchDeleteResponse], error) {
	if err := requireCollection(req.Collection); err != nil {
		return nil, err
	}
	if req.Where == nil || req.Where.Render() == "" {
		return nil, ErrMissingFilter
	}

	body := batchDeleteBody{
		Match:  batchDeleteMatch{Class: req.Collection, Where: req.Where},
		Output: req.Output,
		DryRun: req.DryRun,
	}
	q := objectQuery(req.ConsistencyLevel, req.Tenant, "")
	q.Set("dryRun", strconv.FormatBool(req.DryRun))
	if req.Output != "" {
		q.Set("output", string(req.Output))
	}
	return transport.Send[BatchDeleteResponse](ctx, b.t, http.MethodDelete, apiPath("batch", "objects"), body, q), nil
}
