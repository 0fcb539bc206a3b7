package weaviate

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const beaconPrefix = "weaviate://localhost/"

// Beacon builds `weaviate://localhost/{collection}/{id}`, with a trailing
// property segment when property is given.
func Beacon(collection, id string, property ...string) string {
	b := beaconPrefix + collection + "/" + id
	if len(property) > 0 && property[0] != "" {
		b += "/" + property[0]
	}
	return b
}

// NewSingleRef builds a reference to the object id of collection.
func NewSingleRef(collection, id string) SingleRef {
	return SingleRef{
		Beacon: Beacon(collection, id),
		Href:   objectPath(collection, id),
	}
}

// apiPath joins escaped segments below /v1.
func apiPath(segments ...string) string {
	var b strings.Builder
	b.WriteString("/v1")
	for _, s := range segments {
		b.WriteByte('/')
		b.WriteString(url.PathEscape(s))
	}
	return b.String()
}

func objectPath(collection, id string) string {
	return apiPath("objects", collection, id)
}

func requireCollection(collection string) error {
	if strings.TrimSpace(collection) == "" {
		return ErrMissingCollection
	}
	return nil
}

// requireID checks that id is present and a valid UUID.
func requireID(id string) error {
	if id == "" {
		return ErrMissingID
	}
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

func requireObject(collection, id string) error {
	if err := requireCollection(collection); err != nil {
		return err
	}
	return requireID(id)
}

// objectQuery renders the optional consistency, tenant and node parameters.
func objectQuery(level ConsistencyLevel, tenant, node string) url.Values {
	q := url.Values{}
	if level != "" {
		q.Set("consistency_level", string(level))
	}
	if tenant != "" {
		q.Set("tenant", tenant)
	}
	if node != "" {
		q.Set("node_name", node)
	}
	return q
}

func setInt(q url.Values, key string, v int) {
	if v > 0 {
		q.Set(key, strconv.Itoa(v))
	}
}

// chunk splits items into consecutive slices of at most size elements.
func chunk[T any](items []T, size int) [][]T {
	if size <= 0 {
		size = len(items)
	}
	var out [][]T
	for size > 0 && len(items) > 0 {
		n := min(size, len(items))
		out = append(out, items[:n:n])
		items = items[n:]
	}
	return out
}
