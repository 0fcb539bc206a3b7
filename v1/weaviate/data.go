package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// Data reads and writes single objects.
type Data struct {
	t *transport.Transport
}

// CreateRequest creates Object. An empty ID is replaced by a new random UUID.
type CreateRequest struct {
	Object           Object
	ConsistencyLevel ConsistencyLevel
}

// UpdateRequest replaces Object, or merges it into the stored one when
// Merge is set.
type UpdateRequest struct {
	Object           Object
	Merge            bool
	ConsistencyLevel ConsistencyLevel
}

// GetRequest reads objects. Collection and ID address a single object for
// GetByID; Get lists objects and uses the paging fields.
type GetRequest struct {
	Collection string
	ID         string

	// Include lists additional fields such as "vector" or "classification".
	Include []string

	Limit  int
	Offset int

	// After is the cursor id for paging through a collection.
	After string

	ConsistencyLevel ConsistencyLevel
	NodeName         string
	Tenant           string
}

func (r GetRequest) query() url.Values {
	q := objectQuery(r.ConsistencyLevel, r.Tenant, r.NodeName)
	if len(r.Include) > 0 {
		q.Set("include", strings.Join(r.Include, ","))
	}
	return q
}

// ObjectRequest addresses one stored object.
type ObjectRequest struct {
	Collection       string
	ID               string
	ConsistencyLevel ConsistencyLevel
	Tenant           string
}

// Create stores a new object. An object without id gets a random UUID.
func (d *Data) Create(ctx context.Context, req CreateRequest) (*transport.Response[Object], error) {
	obj := req.Object
	if err := requireCollection(obj.Class); err != nil {
		return nil, err
	}
	if obj.ID == "" {
		obj.ID = uuid.New().String()
	} else if err := requireID(obj.ID); err != nil {
		return nil, err
	}
	q := objectQuery(req.ConsistencyLevel, "", "")
	return transport.Send[Object](ctx, d.t, http.MethodPost, apiPath("objects"), obj, q), nil
}

// Update sends PUT, or PATCH when req.Merge is set. A PATCH answers 204
// without body, so Result is nil on success.
func (d *Data) Update(ctx context.Context, req UpdateRequest) (*transport.Response[Object], error) {
	obj := req.Object
	if err := requireObject(obj.Class, obj.ID); err != nil {
		return nil, err
	}
	method := http.MethodPut
	if req.Merge {
		method = http.MethodPatch
	}
	q := objectQuery(req.ConsistencyLevel, "", "")
	return transport.Send[Object](ctx, d.t, method, objectPath(obj.Class, obj.ID), obj, q), nil
}

// Get lists objects, optionally restricted to req.Collection.
func (d *Data) Get(ctx context.Context, req GetRequest) (*transport.Response[ObjectsList], error) {
	if req.After != "" {
		if err := requireCollection(req.Collection); err != nil {
			return nil, fmt.Errorf("%w: paging with after needs a collection", err)
		}
	}
	q := req.query()
	if req.Collection != "" {
		q.Set("class", req.Collection)
	}
	setInt(q, "limit", req.Limit)
	setInt(q, "offset", req.Offset)
	if req.After != "" {
		q.Set("after", req.After)
	}
	return transport.Get[ObjectsList](ctx, d.t, apiPath("objects"), q), nil
}

// GetByID reads one object.
func (d *Data) GetByID(ctx context.Context, req GetRequest) (*transport.Response[Object], error) {
	if err := requireObject(req.Collection, req.ID); err != nil {
		return nil, err
	}
	return transport.Get[Object](ctx, d.t, objectPath(req.Collection, req.ID), req.query()), nil
}

// Delete removes one object.
func (d *Data) Delete(ctx context.Context, req ObjectRequest) (*transport.Response[transport.Object], error) {
	if err := requireObject(req.Collection, req.ID); err != nil {
		return nil, err
	}
	q := objectQuery(req.ConsistencyLevel, req.Tenant, "")
	return transport.Delete[transport.Object](ctx, d.t, objectPath(req.Collection, req.ID), q), nil
}

// Exists checks for an object with HEAD. A 404 is not an error.
func (d *Data) Exists(ctx context.Context, req ObjectRequest) (bool, error) {
	if err := requireObject(req.Collection, req.ID); err != nil {
		return false, err
	}
	q := objectQuery(req.ConsistencyLevel, req.Tenant, "")
	resp := transport.Head(ctx, d.t, objectPath(req.Collection, req.ID), q)
	switch {
	case resp.IsSuccess():
		return true, nil
	case resp.StatusCode == http.StatusNotFound:
		return false, nil
	default:
		return false, resp.Err()
	}
}

// Validate checks obj against the schema without storing it.
func (d *Data) Validate(ctx context.Context, obj Object) (*transport.Response[transport.Object], error) {
	if err := requireCollection(obj.Class); err != nil {
		return nil, err
	}
	if obj.ID != "" {
		if err := requireID(obj.ID); err != nil {
			return nil, err
		}
	}
	return transport.Post[transport.Object](ctx, d.t, apiPath("objects", "validate"), obj), nil
}
