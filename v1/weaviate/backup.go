package weaviate

import (
	"context"
	"time"

	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// DefaultBackupPollInterval is the status polling interval of WaitForCompletion.
const DefaultBackupPollInterval = time.Second

// Backup creates and restores backups through a storage backend.
type Backup struct {
	t            *transport.Transport
	pollInterval time.Duration
}

func (r BackupRequest) validate(needID bool) error {
	if r.Backend == "" {
		return ErrMissingBackend
	}
	if needID && r.ID == "" {
		return ErrMissingBackupID
	}
	return nil
}

// Create starts a backup. With req.Wait set it returns the final status.
func (b *Backup) Create(ctx context.Context, req BackupRequest) (*transport.Response[BackupResponse], error) {
	if err := req.validate(true); err != nil {
		return nil, err
	}
	resp := transport.Post[BackupResponse](ctx, b.t, apiPath("backups", req.Backend), req)
	if !req.Wait || !resp.IsSuccess() {
		return resp, nil
	}
	return b.WaitForCompletion(ctx, req.Backend, req.ID, false)
}

// Status returns the state of a backup being created.
func (b *Backup) Status(ctx context.Context, backend, id string) (*transport.Response[BackupResponse], error) {
	if err := (BackupRequest{Backend: backend, ID: id}).validate(true); err != nil {
		return nil, err
	}
	return transport.Get[BackupResponse](ctx, b.t, apiPath("backups", backend, id), nil), nil
}

// Restore restores a backup. With req.Wait set it returns the final status.
func (b *Backup) Restore(ctx context.Context, req BackupRequest) (*transport.Response[BackupResponse], error) {
	if err := req.validate(true); err != nil {
		return nil, err
	}
	body := BackupRequest{Include: req.Include, Exclude: req.Exclude}
	resp := transport.Post[BackupResponse](ctx, b.t, apiPath("backups", req.Backend, req.ID, "restore"), body)
	if !req.Wait || !resp.IsSuccess() {
		return resp, nil
	}
	return b.WaitForCompletion(ctx, req.Backend, req.ID, true)
}

// RestoreStatus returns the state of a restore.
func (b *Backup) RestoreStatus(ctx context.Context, backend, id string) (*transport.Response[BackupResponse], error) {
	if err := (BackupRequest{Backend: backend, ID: id}).validate(true); err != nil {
		return nil, err
	}
	return transport.Get[BackupResponse](ctx, b.t, apiPath("backups", backend, id, "restore"), nil), nil
}

// WaitForCompletion polls the backup (or restore) status until it is
// SUCCESS or FAILED, a status request fails, or ctx ends. It returns the
// last status response; on cancellation that is a response carrying the
// context error.
func (b *Backup) WaitForCompletion(ctx context.Context, backend, id string, restore bool) (*transport.Response[BackupResponse], error) {
	status := b.Status
	if restore {
		status = b.RestoreStatus
	}

	ticker := time.NewTicker(b.pollInterval)
	defer ticker.Stop()

	for {
		resp, err := status(ctx, backend, id)
		if err != nil {
			return nil, err
		}
		if !resp.IsSuccess() || resp.Result == nil || resp.Result.Status.Done() {
			return resp, nil
		}

		select {
		case <-ctx.Done():
			out := transport.Rewrap(resp, resp.Result)
			out.StatusCode = 0
			out.Error = &transport.ErrorResponse{Error: []transport.Error{{Message: "Request failed: " + ctx.Err().Error()}}}
			return out, nil
		case <-ticker.C:
		}
	}
}
