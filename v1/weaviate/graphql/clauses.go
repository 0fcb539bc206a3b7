package graphql

import (
	"strconv"
	"strings"
)

// SortOrder is the direction of a Sort clause.
type SortOrder string

const (
	Asc  SortOrder = "asc"
	Desc SortOrder = "desc"
)

// Sort orders results by a property path. A list of sorts is applied as a
// priority chain, first to last.
type Sort struct {
	Path  []string
	Order SortOrder
}

// NewSort creates a sort on the given property path.
func NewSort(order SortOrder, path ...string) Sort {
	return Sort{Path: path, Order: order}
}

// String renders the sort object, or "" without a path.
func (s Sort) String() string {
	if len(s.Path) == 0 {
		return ""
	}
	order := s.Order
	if order == "" {
		order = Asc
	}
	var o object
	o.add("path", quoteList(s.Path))
	o.addString("order", string(order))
	return o.String()
}

// renderSorts returns the `sort:[...]` argument. A nil list renders nothing,
// an empty non-nil list renders `sort:[]`.
func renderSorts(sorts []Sort) string {
	if sorts == nil {
		return ""
	}
	parts := make([]string, 0, len(sorts))
	for _, s := range sorts {
		if rendered := s.String(); rendered != "" {
			parts = append(parts, rendered)
		}
	}
	return "sort:[" + strings.Join(parts, ",") + "]"
}

// GroupType selects how near-duplicate results are grouped.
type GroupType string

const (
	GroupMerge   GroupType = "merge"
	GroupClosest GroupType = "closest"
)

// Group merges or collapses results whose vectors are within Force of each other.
type Group struct {
	Type  GroupType
	Force float32
}

// NewGroup creates a group clause.
func NewGroup(t GroupType, force float32) *Group {
	return &Group{Type: t, Force: force}
}

// Render returns `group:{...}`, or "" without a type.
func (g *Group) Render() string {
	if g == nil || g.Type == "" {
		return ""
	}
	var o object
	o.addString("type", string(g.Type))
	o.add("force", formatFloat(g.Force))
	return "group:" + o.String()
}

func renderInt(name string, v *int) string {
	if v == nil {
		return ""
	}
	return name + ":" + strconv.Itoa(*v)
}

func renderString(name string, v *string) string {
	if v == nil {
		return ""
	}
	return name + ":" + quote(*v)
}

// argumentList joins rendered clauses into `(a,b,c)`, skipping empty ones.
// With dedupe, a rendering identical to an earlier one is dropped.
func argumentList(clauses []string, dedupe bool) string {
	seen := make(map[string]struct{}, len(clauses))
	kept := make([]string, 0, len(clauses))
	for _, c := range clauses {
		if c == "" {
			continue
		}
		if dedupe {
			if _, dup := seen[c]; dup {
				continue
			}
			seen[c] = struct{}{}
		}
		kept = append(kept, c)
	}
	if len(kept) == 0 {
		return ""
	}
	return "(" + strings.Join(kept, ",") + ")"
}
