package graphql

import "strings"

// Names of the metadata properties available under the _additional selection.
const (
	AdditionalID             = "id"
	AdditionalVector         = "vector"
	AdditionalCertainty      = "certainty"
	AdditionalDistance       = "distance"
	AdditionalScore          = "score"
	AdditionalCreationTime   = "creationTimeUnix"
	AdditionalLastUpdateTime = "lastUpdateTimeUnix"
)

// Field is one node of a GraphQL selection set. A Field with children
// renders as `name{child1 child2}`.
type Field struct {
	Name   string
	Fields []Field
}

// NewField creates a field with optional nested sub-fields.
func NewField(name string, children ...Field) Field {
	return Field{Name: name, Fields: children}
}

// Fields creates one leaf field per name.
func Fields(names ...string) []Field {
	fields := make([]Field, len(names))
	for i, name := range names {
		fields[i] = Field{Name: name}
	}
	return fields
}

// Additional creates the `_additional{...}` selection for the given metadata
// names, e.g. Additional(AdditionalID, AdditionalDistance).
func Additional(names ...string) Field {
	return Field{Name: "_additional", Fields: Fields(names...)}
}

// String renders the field and its children recursively.
func (f Field) String() string {
	if len(f.Fields) == 0 {
		return f.Name
	}
	return f.Name + "{" + joinFields(f.Fields) + "}"
}

func joinFields(fields []Field) string {
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.String()
	}
	return strings.Join(parts, " ")
}
