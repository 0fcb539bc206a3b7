package weaviate

import (
	"context"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// Classifications schedules and reads background classification jobs.
type Classifications struct {
	t *transport.Transport
}

// Schedule starts a classification. The returned job id is used with Get.
func (c *Classifications) Schedule(ctx context.Context, req ClassificationRequest) (*transport.Response[Classification], error) {
	if err := requireCollection(req.Class); err != nil {
		return nil, err
	}
	if len(req.ClassifyProperties) == 0 {
		return nil, ErrMissingProperty
	}
	if req.Type == "" {
		req.Type = ClassificationKNN
	}
	return transport.Post[Classification](ctx, c.t, apiPath("classifications"), req), nil
}

// Get returns a classification by id.
func (c *Classifications) Get(ctx context.Context, id string) (*transport.Response[Classification], error) {
	if err := requireID(id); err != nil {
		return nil, err
	}
	return transport.Get[Classification](ctx, c.t, apiPath("classifications", id), nil), nil
}
