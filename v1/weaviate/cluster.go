package weaviate

import (
	"context"
	"net/url"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// Cluster reports node state.
type Cluster struct {
	t    *transport.Transport
	misc *Misc
}

// NodeStatus reads /v1/meta and reports the node HEALTHY when it answers.
func (c *Cluster) NodeStatus(ctx context.Context) *transport.Response[NodeStatus] {
	meta := c.misc.Meta(ctx)
	if !meta.IsSuccess() || meta.Result == nil {
		return transport.Rewrap[NodeStatus](meta, nil)
	}
	return transport.Rewrap(meta, &NodeStatus{
		Status:   NodeStatusHealthy,
		Version:  meta.Result.Version,
		Hostname: meta.Result.Hostname,
	})
}

// Nodes lists the cluster nodes. Verbose adds per-shard statistics.
func (c *Cluster) Nodes(ctx context.Context, verbose bool) *transport.Response[NodesStatus] {
	var q url.Values
	if verbose {
		q = url.Values{"output": {string(BatchOutputVerbose)}}
	}
	return transport.Get[NodesStatus](ctx, c.t, apiPath("nodes"), q)
}
