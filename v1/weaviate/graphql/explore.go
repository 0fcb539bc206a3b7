package graphql

import (
	"net/url"
	"strconv"
	"strings"
)

// Explore is a similarity search across collections served by the REST
// explore endpoint. It renders query-string parameters, not GraphQL.
type Explore struct {
	Collection string
	Query      string
	Limit      *int
	Certainty  *float32
	Distance   *float32
}

// NewExplore creates an explore search for the free-text query.
func NewExplore(query string) *Explore {
	return &Explore{Query: query}
}

// WithCollection restricts the search to one collection.
func (e *Explore) WithCollection(collection string) *Explore {
	e.Collection = collection
	return e
}

// WithLimit caps the number of results.
func (e *Explore) WithLimit(limit int) *Explore {
	e.Limit = &limit
	return e
}

// WithCertainty sets the minimum certainty.
func (e *Explore) WithCertainty(c float32) *Explore {
	e.Certainty = &c
	return e
}

// WithDistance sets the maximum vector distance.
func (e *Explore) WithDistance(d float32) *Explore {
	e.Distance = &d
	return e
}

// Values returns the parameters as url.Values. Unset fields are omitted.
func (e *Explore) Values() url.Values {
	values := url.Values{}
	for _, p := range e.params() {
		values.Set(p[0], p[1])
	}
	return values
}

// Build renders the percent-encoded query string in the order collection,
// q, limit, certainty, distance, without a leading '?'.
func (e *Explore) Build() string {
	params := e.params()
	parts := make([]string, len(params))
	for i, p := range params {
		parts[i] = url.QueryEscape(p[0]) + "=" + url.QueryEscape(p[1])
	}
	return strings.Join(parts, "&")
}

// String returns Build().
func (e *Explore) String() string { return e.Build() }

func (e *Explore) params() [][2]string {
	if e == nil {
		return nil
	}
	var params [][2]string
	if e.Collection != "" {
		params = append(params, [2]string{"collection", e.Collection})
	}
	if e.Query != "" {
		params = append(params, [2]string{"q", e.Query})
	}
	if e.Limit != nil {
		params = append(params, [2]string{"limit", strconv.Itoa(*e.Limit)})
	}
	if e.Certainty != nil {
		params = append(params, [2]string{"certainty", formatFloat(*e.Certainty)})
	}
	if e.Distance != nil {
		params = append(params, [2]string{"distance", formatFloat(*e.Distance)})
	}
	return params
}
