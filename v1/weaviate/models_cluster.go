package weaviate

import "github.com/Aleph-Alpha/weaviate-std/v1/weaviate/graphql"

// Meta is the response of GET /v1/meta.
type Meta struct {
	Hostname string         `json:"hostname"`
	Version  string         `json:"version"`
	Modules  map[string]any `json:"modules,omitempty"`
}

// NodeStatusHealthy is reported by Cluster.NodeStatus when the server answers.
const NodeStatusHealthy = "HEALTHY"

type NodeStatus struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Hostname string `json:"hostname"`
}

// NodesStatus is the response of GET /v1/nodes.
type NodesStatus struct {
	Nodes []Node `json:"nodes"`
}

type Node struct {
	Name    string      `json:"name"`
	Status  string      `json:"status"`
	Version string      `json:"version"`
	GitHash string      `json:"gitHash,omitempty"`
	Stats   *NodeStats  `json:"stats,omitempty"`
	Shards  []NodeShard `json:"shards,omitempty"`
}

type NodeStats struct {
	ShardCount  int   `json:"shardCount"`
	ObjectCount int64 `json:"objectCount"`
}

type NodeShard struct {
	Name        string `json:"name"`
	Class       string `json:"class"`
	ObjectCount int64  `json:"objectCount"`
}

// BackupStatus is the state of a backup or restore.
type BackupStatus string

const (
	BackupStatusStarted      BackupStatus = "STARTED"
	BackupStatusTransferring BackupStatus = "TRANSFERRING"
	BackupStatusTransferred  BackupStatus = "TRANSFERRED"
	BackupStatusSuccess      BackupStatus = "SUCCESS"
	BackupStatusFailed       BackupStatus = "FAILED"
)

// Done reports whether the status is final.
func (s BackupStatus) Done() bool {
	return s == BackupStatusSuccess || s == BackupStatusFailed
}

// Common backup backends.
const (
	BackendFilesystem = "filesystem"
	BackendS3         = "s3"
	BackendGCS        = "gcs"
	BackendAzure      = "azure"
)

// BackupRequest creates or restores a backup. Include and Exclude list
// collection names and are mutually exclusive on the server.
type BackupRequest struct {
	Backend string   `json:"-"`
	ID      string   `json:"id,omitempty"`
	Include []string `json:"include,omitempty"`
	Exclude []string `json:"exclude,omitempty"`

	// Wait polls the status endpoint until the operation is done.
	Wait bool `json:"-"`
}

type BackupResponse struct {
	ID      string       `json:"id"`
	Backend string       `json:"backend,omitempty"`
	Path    string       `json:"path,omitempty"`
	Status  BackupStatus `json:"status"`
	Error   string       `json:"error,omitempty"`
	Classes []string     `json:"classes,omitempty"`
}

// ClassificationType selects the classification algorithm.
type ClassificationType string

const (
	ClassificationKNN        ClassificationType = "knn"
	ClassificationZeroShot   ClassificationType = "zeroshot"
	ClassificationContextual ClassificationType = "text2vec-contextionary"
)

type ClassificationRequest struct {
	Class              string                 `json:"class"`
	Type               ClassificationType     `json:"type,omitempty"`
	ClassifyProperties []string               `json:"classifyProperties"`
	BasedOnProperties  []string               `json:"basedOnProperties,omitempty"`
	Settings           map[string]any         `json:"settings,omitempty"`
	Filters            *ClassificationFilters `json:"filters,omitempty"`
}

type ClassificationFilters struct {
	SourceWhere      *graphql.Where `json:"sourceWhere,omitempty"`
	TargetWhere      *graphql.Where `json:"targetWhere,omitempty"`
	TrainingSetWhere *graphql.Where `json:"trainingSetWhere,omitempty"`
}

type Classification struct {
	ID                 string              `json:"id"`
	Class              string              `json:"class"`
	Type               ClassificationType  `json:"type,omitempty"`
	ClassifyProperties []string            `json:"classifyProperties,omitempty"`
	BasedOnProperties  []string            `json:"basedOnProperties,omitempty"`
	Status             string              `json:"status"`
	Error              string              `json:"error,omitempty"`
	Meta               *ClassificationMeta `json:"meta,omitempty"`
	Settings           map[string]any      `json:"settings,omitempty"`
}

type ClassificationMeta struct {
	Started        string `json:"started,omitempty"`
	Completed      string `json:"completed,omitempty"`
	Count          int    `json:"count"`
	CountSucceeded int    `json:"countSucceeded"`
	CountFailed    int    `json:"countFailed"`
}
