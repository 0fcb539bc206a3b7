package transport

import "strings"

// Per-object outcomes reported by batch endpoints.
const (
	BatchStatusSuccess = "SUCCESS"
	BatchStatusFailed  = "FAILED"
	BatchStatusDryRun  = "DRYRUN"
)

// BatchItem is an element of a batch response array.
type BatchItem interface {
	// BatchStatus returns the per-object status, e.g. "SUCCESS" or "FAILED".
	BatchStatus() string
}

// BatchResponse is the in-memory form of a batch result. On the wire it is a
// bare JSON array; the counters are derived once in NewBatchResponse and
// always satisfy Successful()+Failed() == len(Objects()).
type BatchResponse[E BatchItem] struct {
	objects    []E
	successful int
	failed     int
}

// NewBatchResponse wraps objects and counts the ones whose status is FAILED
// (case-insensitive). Every other element counts as successful.
func NewBatchResponse[E BatchItem](objects []E) BatchResponse[E] {
	failed := 0
	for _, o := range objects {
		if strings.EqualFold(o.BatchStatus(), BatchStatusFailed) {
			failed++
		}
	}
	return BatchResponse[E]{
		objects:    objects,
		successful: len(objects) - failed,
		failed:     failed,
	}
}

// Objects returns the per-object results in server order.
func (b BatchResponse[E]) Objects() []E { return b.objects }

// Successful is the number of items that did not fail.
func (b BatchResponse[E]) Successful() int { return b.successful }

// Failed is the number of items with status FAILED.
func (b BatchResponse[E]) Failed() int { return b.failed }

// HasErrors reports whether any element failed.
func (b BatchResponse[E]) HasErrors() bool { return b.failed > 0 }

// Merge concatenates several batch responses in order, summing the counters.
func Merge[E BatchItem](parts ...BatchResponse[E]) BatchResponse[E] {
	var out BatchResponse[E]
	for _, p := range parts {
		out.objects = append(out.objects, p.objects...)
		out.successful += p.successful
		out.failed += p.failed
	}
	return out
}
