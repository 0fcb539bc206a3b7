package weaviate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

const component = "weaviate"

// Client is the entry point to a Weaviate server. It owns one transport and
// hands out the API groups that share it. A Client is safe for concurrent use.
type Client struct {
	cfg       Config
	transport *transport.Transport
	logger    Logger

	schema          *Schema
	data            *Data
	batch           *Batch
	reference       *Reference
	backup          *Backup
	graph           *Graph
	cluster         *Cluster
	misc            *Misc
	classifications *Classifications

	mu      sync.RWMutex
	version string
}

// NewClient creates a client and, unless cfg.SkipVersionCheck is set,
// checks that the server runs a supported version.
//
// Example:
//
//	client, err := weaviate.NewClient(*weaviate.DefaultConfig())
//	if err != nil {
//		return err
//	}
//	defer client.Close()
func NewClient(cfg Config) (*Client, error) {
	return NewClientWithContext(context.Background(), cfg)
}

// NewClientWithContext is NewClient with a context bounding the version check.
func NewClientWithContext(ctx context.Context, cfg Config) (*Client, error) {
	c, err := newClient(cfg)
	if err != nil {
		return nil, err
	}
	if !c.cfg.SkipVersionCheck {
		if err := c.CheckVersion(ctx); err != nil {
			_ = c.Close()
			return nil, err
		}
	}
	return c, nil
}

func newClient(cfg Config) (*Client, error) {
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	var logger Logger = nopLogger{}
	if cfg.Logger != nil {
		logger = cfg.Logger
	}

	t := transport.New(transport.Config{
		BaseURL:        cfg.BaseURL(),
		Headers:        cfg.authHeaders(),
		Timeout:        cfg.Timeout,
		Debug:          cfg.Debug,
		Doer:           cfg.Doer,
		Logger:         logger,
		Observer:       cfg.Observer,
		TracerProvider: cfg.TracerProvider,
	})

	concurrency := max(cfg.BatchConcurrency, 1)
	misc := &Misc{t: t}
	c := &Client{
		cfg:             cfg,
		transport:       t,
		logger:          logger,
		schema:          &Schema{t: t, concurrency: concurrency},
		data:            &Data{t: t},
		batch:           &Batch{t: t, size: cfg.BatchSize, concurrency: concurrency, logger: logger},
		reference:       &Reference{t: t},
		backup:          &Backup{t: t, pollInterval: DefaultBackupPollInterval},
		graph:           &Graph{t: t, observer: cfg.Observer},
		cluster:         &Cluster{t: t, misc: misc},
		misc:            misc,
		classifications: &Classifications{t: t},
	}

	logger.Debug("weaviate client created", nil, map[string]interface{}{
		"base_url": t.BaseURL(),
	})
	return c, nil
}

// CheckVersion reads /v1/meta and verifies the server major version is 1.
func (c *Client) CheckVersion(ctx context.Context) error {
	meta := c.misc.Meta(ctx)
	if !meta.IsSuccess() || meta.Result == nil || meta.Result.Version == "" {
		err := meta.Err()
		if err == nil {
			err = fmt.Errorf("no version in %s", meta.URI)
		}
		c.logger.Error("weaviate version check failed", err)
		return fmt.Errorf("%w: %v", ErrServerVersionMissing, err)
	}

	version := meta.Result.Version
	major, _, _ := strings.Cut(strings.TrimPrefix(version, "v"), ".")
	if major != "1" {
		return fmt.Errorf("%w: server runs %s, client supports 1.x", ErrVersionMismatch, version)
	}

	c.mu.Lock()
	c.version = version
	c.mu.Unlock()

	c.logger.Info("weaviate server version checked", nil, map[string]interface{}{
		"version":  version,
		"hostname": meta.Result.Hostname,
	})
	return nil
}

// ServerVersion returns the version seen by the last successful CheckVersion.
func (c *Client) ServerVersion() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.version
}

// Ping checks the readiness endpoint.
func (c *Client) Ping(ctx context.Context) error {
	return c.misc.Ready(ctx).Err()
}

// Close releases idle connections. It is safe to call more than once.
func (c *Client) Close() error {
	return c.transport.Close()
}

// Config returns the configuration the client was built with.
func (c *Client) Config() Config { return c.cfg }

// Transport returns the shared transport for endpoints not covered by the
// API groups.
func (c *Client) Transport() *transport.Transport { return c.transport }

// API groups.
func (c *Client) Schema() *Schema                   { return c.schema }
func (c *Client) Data() *Data                       { return c.data }
func (c *Client) Batch() *Batch                     { return c.batch }
func (c *Client) Reference() *Reference             { return c.reference }
func (c *Client) Backup() *Backup                   { return c.backup }
func (c *Client) Graph() *Graph                     { return c.graph }
func (c *Client) Cluster() *Cluster                 { return c.cluster }
func (c *Client) Misc() *Misc                       { return c.misc }
func (c *Client) Classifications() *Classifications { return c.classifications }
