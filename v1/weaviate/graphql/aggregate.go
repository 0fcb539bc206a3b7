package graphql

import "strconv"

// Aggregate builds a `{Aggregate{Collection(args){fields}}}` query. Arguments
// are emitted in a fixed order and are not deduplicated.
type Aggregate struct {
	Collection string
	Fields     []Field

	GroupBy     string
	Where       *Where
	NearText    *NearText
	NearObject  *NearObject
	NearVector  *NearVector
	Ask         *Ask
	NearImage   *NearImage
	Limit       *int
	ObjectLimit *int
}

// NewAggregate starts an Aggregate query for the collection.
func NewAggregate(collection string, fields ...Field) *Aggregate {
	return &Aggregate{Collection: collection, Fields: fields}
}

// WithFields appends aggregated fields.
func (a *Aggregate) WithFields(fields ...Field) *Aggregate {
	a.Fields = append(a.Fields, fields...)
	return a
}

// WithGroupBy groups the aggregation by a property.
func (a *Aggregate) WithGroupBy(property string) *Aggregate {
	a.GroupBy = property
	return a
}

// WithWhere sets the filter.
func (a *Aggregate) WithWhere(w *Where) *Aggregate {
	a.Where = w
	return a
}

// WithNearText restricts the aggregation to a nearText search.
func (a *Aggregate) WithNearText(n *NearText) *Aggregate {
	a.NearText = n
	return a
}

// WithNearObject restricts the aggregation to a search around an object.
func (a *Aggregate) WithNearObject(n *NearObject) *Aggregate {
	a.NearObject = n
	return a
}

// WithNearVector restricts the aggregation to a search around a vector.
func (a *Aggregate) WithNearVector(n *NearVector) *Aggregate {
	a.NearVector = n
	return a
}

// WithAsk restricts the aggregation to a question-answering search.
func (a *Aggregate) WithAsk(ask *Ask) *Aggregate {
	a.Ask = ask
	return a
}

// WithNearImage restricts the aggregation to a search around an image.
func (a *Aggregate) WithNearImage(n *NearImage) *Aggregate {
	a.NearImage = n
	return a
}

// WithLimit caps the number of groups.
func (a *Aggregate) WithLimit(limit int) *Aggregate {
	a.Limit = &limit
	return a
}

// WithObjectLimit caps how many objects a near* search feeds into the aggregation.
func (a *Aggregate) WithObjectLimit(limit int) *Aggregate {
	a.ObjectLimit = &limit
	return a
}

// Arguments returns the rendered argument list including parentheses, or ""
// when no clause renders.
func (a *Aggregate) Arguments() string {
	groupBy := ""
	if a.GroupBy != "" {
		groupBy = "groupBy:" + quote(a.GroupBy)
	}
	return argumentList([]string{
		groupBy,
		a.Where.Render(),
		a.NearText.Render(),
		a.NearObject.Render(),
		a.NearVector.Render(),
		a.Ask.Render(),
		a.NearImage.Render(),
		renderInt("limit", a.Limit),
		renderInt("objectLimit", a.ObjectLimit),
	}, false)
}

// Build renders the query, or "" when the collection or fields are missing.
func (a *Aggregate) Build() string {
	if a == nil || a.Collection == "" || len(a.Fields) == 0 {
		return ""
	}
	return "{Aggregate{" + a.Collection + a.Arguments() + "{" + joinFields(a.Fields) + "}}}"
}

// BuildOperation renders the query as a named operation.
func (a *Aggregate) BuildOperation(name string) string {
	return operation(name, a.Build())
}

// String returns Build().
func (a *Aggregate) String() string { return a.Build() }

// MetaCount is the `meta{count}` selection used by most aggregations.
func MetaCount() Field {
	return NewField("meta", Field{Name: "count"})
}

// TopOccurrences selects the most frequent values of a text property.
func TopOccurrences(property string, limit int) Field {
	name := "topOccurrences"
	if limit > 0 {
		name += "(limit:" + strconv.Itoa(limit) + ")"
	}
	return NewField(property, NewField(name, Fields("value", "occurs")...))
}
