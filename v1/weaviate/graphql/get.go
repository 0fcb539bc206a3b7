package graphql

// Clause is any argument that can be attached to a Get or Aggregate.
type Clause interface {
	// Render returns the `name:value` fragment, or "" when there is
	// nothing to send.
	Render() string
}

// Raw is a pre-rendered argument such as `autocut:2`, passed through verbatim.
type Raw string

// Render returns r unchanged.
func (r Raw) Render() string { return string(r) }

// Get builds a `{Get{Collection(args){fields}}}` query.
type Get struct {
	Collection string
	Fields     []Field

	Where      *Where
	NearText   *NearText
	BM25       *BM25
	Hybrid     *Hybrid
	NearObject *NearObject
	NearVector *NearVector
	Group      *Group
	Ask        *Ask
	NearImage  *NearImage
	Limit      *int
	After      *string
	Offset     *int
	Sort       []Sort

	// Clauses are rendered after the typed arguments.
	Clauses []Clause
}

// NewGet starts a Get query for the collection.
func NewGet(collection string, fields ...Field) *Get {
	return &Get{Collection: collection, Fields: fields}
}

// WithFields appends projected fields.
func (g *Get) WithFields(fields ...Field) *Get {
	g.Fields = append(g.Fields, fields...)
	return g
}

// WithWhere sets the filter.
func (g *Get) WithWhere(w *Where) *Get {
	g.Where = w
	return g
}

// WithNearText sets a nearText search.
func (g *Get) WithNearText(n *NearText) *Get {
	g.NearText = n
	return g
}

// WithBM25 sets a keyword search.
func (g *Get) WithBM25(b *BM25) *Get {
	g.BM25 = b
	return g
}

// WithHybrid sets a hybrid keyword and vector search.
func (g *Get) WithHybrid(h *Hybrid) *Get {
	g.Hybrid = h
	return g
}

// WithNearObject sets a search around a stored object.
func (g *Get) WithNearObject(n *NearObject) *Get {
	g.NearObject = n
	return g
}

// WithNearVector sets a search around a raw vector.
func (g *Get) WithNearVector(n *NearVector) *Get {
	g.NearVector = n
	return g
}

// WithGroup merges or closes similar results.
func (g *Get) WithGroup(gr *Group) *Get {
	g.Group = gr
	return g
}

// WithAsk sets a question-answering search.
func (g *Get) WithAsk(a *Ask) *Get {
	g.Ask = a
	return g
}

// WithNearImage sets a search around a base64 image.
func (g *Get) WithNearImage(n *NearImage) *Get {
	g.NearImage = n
	return g
}

// WithLimit caps the number of results.
func (g *Get) WithLimit(limit int) *Get {
	g.Limit = &limit
	return g
}

// WithOffset skips the first results.
func (g *Get) WithOffset(offset int) *Get {
	g.Offset = &offset
	return g
}

// WithAfter sets the cursor for paging through a collection by object id.
func (g *Get) WithAfter(id string) *Get {
	g.After = &id
	return g
}

// WithSort appends sort clauses. Calling it without arguments still emits
// an empty `sort:[]`.
func (g *Get) WithSort(sorts ...Sort) *Get {
	if g.Sort == nil {
		g.Sort = make([]Sort, 0, len(sorts))
	}
	g.Sort = append(g.Sort, sorts...)
	return g
}

// WithClause appends a custom argument, rendered after the built-in ones.
func (g *Get) WithClause(c Clause) *Get {
	g.Clauses = append(g.Clauses, c)
	return g
}

// SearchClauseCount returns how many of the mutually exclusive search
// clauses (near*, ask, bm25, hybrid) are set.
func (g *Get) SearchClauseCount() int {
	n := 0
	for _, set := range []bool{
		g.NearText != nil, g.BM25 != nil, g.Hybrid != nil, g.NearObject != nil,
		g.NearVector != nil, g.Ask != nil, g.NearImage != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Arguments returns the rendered argument list including parentheses, or ""
// when no clause renders.
func (g *Get) Arguments() string {
	clauses := []string{
		g.Where.Render(),
		g.NearText.Render(),
		g.BM25.Render(),
		g.Hybrid.Render(),
		g.NearObject.Render(),
		g.NearVector.Render(),
		g.Group.Render(),
		g.Ask.Render(),
		g.NearImage.Render(),
		renderInt("limit", g.Limit),
		renderString("after", g.After),
		renderInt("offset", g.Offset),
		renderSorts(g.Sort),
	}
	for _, c := range g.Clauses {
		if c != nil {
			clauses = append(clauses, c.Render())
		}
	}
	return argumentList(clauses, true)
}

// Build renders the query, or "" when the collection or fields are missing.
func (g *Get) Build() string {
	if g == nil || g.Collection == "" || len(g.Fields) == 0 {
		return ""
	}
	return "{Get{" + g.Collection + g.Arguments() + "{" + joinFields(g.Fields) + "}}}"
}

// BuildOperation renders the query as a named operation,
// `query Name{Get{...}}`, or `query{Get{...}}` when name is empty.
func (g *Get) BuildOperation(name string) string {
	return operation(name, g.Build())
}

// String returns Build().
func (g *Get) String() string { return g.Build() }

func operation(name, body string) string {
	if body == "" {
		return ""
	}
	if name == "" {
		return "query" + body
	}
	return "query " + name + body
}
