package weaviate

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// Reference manages cross-references of a single object.
type Reference struct {
	t *transport.Transport
}

// ReferenceRequest addresses the reference property of one object.
type ReferenceRequest struct {
	Collection string
	ID         string
	Property   string

	// References is the payload: exactly one for Add and Delete, the whole
	// new list for Replace.
	References []SingleRef

	ConsistencyLevel ConsistencyLevel
	Tenant           string
}

func (r ReferenceRequest) validate(single bool) error {
	if err := requireObject(r.Collection, r.ID); err != nil {
		return err
	}
	if r.Property == "" {
		return ErrMissingProperty
	}
	if single && len(r.References) != 1 {
		return fmt.Errorf("%w: exactly one reference expected, got %d", ErrMissingReference, len(r.References))
	}
	for _, ref := range r.References {
		if ref.Beacon == "" {
			return ErrMissingReference
		}
	}
	return nil
}

func (r ReferenceRequest) path() string {
	return apiPath("objects", r.Collection, r.ID, "references", r.Property)
}

func (r ReferenceRequest) query() url.Values {
	return objectQuery(r.ConsistencyLevel, r.Tenant, "")
}

// Add appends one reference to the property.
func (ref *Reference) Add(ctx context.Context, req ReferenceRequest) (*transport.Response[transport.Object], error) {
	if err := req.validate(true); err != nil {
		return nil, err
	}
	return transport.Send[transport.Object](ctx, ref.t, http.MethodPost, req.path(), req.References[0], req.query()), nil
}

// Replace overwrites the property with req.References. An empty list clears it.
func (ref *Reference) Replace(ctx context.Context, req ReferenceRequest) (*transport.Response[transport.Object], error) {
	if err := req.validate(false); err != nil {
		return nil, err
	}
	refs := req.References
	if refs == nil {
		refs = []SingleRef{}
	}
	return transport.Send[transport.Object](ctx, ref.t, http.MethodPut, req.path(), refs, req.query()), nil
}

// Delete removes one reference from the property.
func (ref *Reference) Delete(ctx context.Context, req ReferenceRequest) (*transport.Response[transport.Object], error) {
	if err := req.validate(true); err != nil {
		return nil, err
	}
	return transport.Send[transport.Object](ctx, ref.t, http.MethodDelete, req.path(), req.References[0], req.query()), nil
}
