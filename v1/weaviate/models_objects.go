package weaviate

import (
	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/graphql"
	"github.com/Aleph-Alpha/weaviate-std/v1/weaviate/transport"
)

// ConsistencyLevel is the replication consistency for reads and writes.
type ConsistencyLevel string

const (
	ConsistencyOne    ConsistencyLevel = "ONE"
	ConsistencyQuorum ConsistencyLevel = "QUORUM"
	ConsistencyAll    ConsistencyLevel = "ALL"
)

// BatchOutput controls how much detail batch delete returns.
type BatchOutput string

const (
	BatchOutputMinimal BatchOutput = "minimal"
	BatchOutputVerbose BatchOutput = "verbose"
)

// Object is a data object.
type Object struct {
	ID                 string         `json:"id,omitempty"`
	Class              string         `json:"class"`
	Properties         map[string]any `json:"properties,omitempty"`
	Vector             []float32      `json:"vector,omitempty"`
	Tenant             string         `json:"tenant,omitempty"`
	CreationTimeUnix   int64          `json:"creationTimeUnix,omitempty"`
	LastUpdateTimeUnix int64          `json:"lastUpdateTimeUnix,omitempty"`
	Additional         map[string]any `json:"additional,omitempty"`
}

// ObjectsList is the response of GET /v1/objects.
type ObjectsList struct {
	Objects      []Object `json:"objects"`
	TotalResults int      `json:"totalResults"`
}

// ObjectResult is the per-object outcome nested in a batch element.
type ObjectResult struct {
	Status string                   `json:"status,omitempty"`
	Errors *transport.ErrorResponse `json:"errors,omitempty"`
}

// ObjectResponse is one element of a batch object import.
type ObjectResponse struct {
	Object
	Status string        `json:"status,omitempty"`
	Result *ObjectResult `json:"result,omitempty"`
}

// BatchStatus returns the element status, read from the top level and
// falling back to result.status.
func (o ObjectResponse) BatchStatus() string {
	if o.Status != "" {
		return o.Status
	}
	if o.Result != nil {
		return o.Result.Status
	}
	return ""
}

// BatchReference links the property of one object to another object. Both
// ends are beacons.
type BatchReference struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Tenant string `json:"tenant,omitempty"`
}

// ReferenceResponse is one element of a batch reference import.
type ReferenceResponse struct {
	BatchReference
	Status string        `json:"status,omitempty"`
	Result *ObjectResult `json:"result,omitempty"`
}

// BatchStatus returns the result status of the reference.
func (r ReferenceResponse) BatchStatus() string {
	if r.Status != "" {
		return r.Status
	}
	if r.Result != nil {
		return r.Result.Status
	}
	return ""
}

// BatchDeleteRequest deletes every object of Collection matching Where.
type BatchDeleteRequest struct {
	Collection       string
	Where            *graphql.Where
	Output           BatchOutput
	DryRun           bool
	ConsistencyLevel ConsistencyLevel
	Tenant           string
}

type batchDeleteMatch struct {
	Class string         `json:"class"`
	Where *graphql.Where `json:"where"`
}

type batchDeleteBody struct {
	Match  batchDeleteMatch `json:"match"`
	Output BatchOutput      `json:"output,omitempty"`
	DryRun bool             `json:"dryRun"`
}

type BatchDeleteResponse struct {
	Output  BatchOutput        `json:"output,omitempty"`
	DryRun  bool               `json:"dryRun"`
	Results BatchDeleteResults `json:"results"`
}

type BatchDeleteResults struct {
	Matches    int64               `json:"matches"`
	Limit      int64               `json:"limit"`
	Successful int64               `json:"successful"`
	Failed     int64               `json:"failed"`
	Objects    []BatchDeleteObject `json:"objects,omitempty"`
}

type BatchDeleteObject struct {
	ID     string                   `json:"id"`
	Status string                   `json:"status"`
	Errors *transport.ErrorResponse `json:"errors,omitempty"`
}

// SingleRef is a reference value as stored in a cross-reference property.
type SingleRef struct {
	Beacon string `json:"beacon"`
	Href   string `json:"href,omitempty"`
}
