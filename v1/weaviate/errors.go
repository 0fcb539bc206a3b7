package weaviate

import "errors"

// Argument errors, returned before any request is sent.
var (
	ErrMissingCollection = errors.New("weaviate: collection name is required")
	ErrMissingID         = errors.New("weaviate: object id is required")
	ErrInvalidID         = errors.New("weaviate: object id is not a valid UUID")
	ErrMissingProperty   = errors.New("weaviate: property name is required")
	ErrMissingReference  = errors.New("weaviate: reference target is required")
	ErrMissingShard      = errors.New("weaviate: shard name is required")
	ErrMissingBackend    = errors.New("weaviate: backup backend is required")
	ErrMissingBackupID   = errors.New("weaviate: backup id is required")
	ErrMissingQuery      = errors.New("weaviate: query is empty")
	ErrMissingFilter     = errors.New("weaviate: where filter is required")
	ErrNoObjects         = errors.New("weaviate: no objects given")
)

var (
	// ErrInvalidConfig is returned by Config.Validate and LoadConfig.
	ErrInvalidConfig = errors.New("weaviate: invalid config")

	// ErrServerVersionMissing is returned on startup when /v1/meta cannot be
	// read or carries no version.
	ErrServerVersionMissing = errors.New("weaviate: server version missing")

	// ErrVersionMismatch is returned on startup when the server major version
	// is not supported.
	ErrVersionMismatch = errors.New("weaviate: unsupported server version")
)

var argumentErrors = []error{
	ErrMissingCollection,
	ErrMissingID,
	ErrInvalidID,
	ErrMissingProperty,
	ErrMissingReference,
	ErrMissingShard,
	ErrMissingBackend,
	ErrMissingBackupID,
	ErrMissingQuery,
	ErrMissingFilter,
	ErrNoObjects,
}

// IsArgumentError checks if err was caused by an invalid call argument.
func IsArgumentError(err error) bool {
	for _, target := range argumentErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsVersionError checks if err is a startup version check failure.
func IsVersionError(err error) bool {
	return errors.Is(err, ErrServerVersionMissing) || errors.Is(err, ErrVersionMismatch)
}

// IsConfigError checks if err is a configuration error.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidConfig)
}
