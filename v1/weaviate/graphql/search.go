package graphql

import "strconv"

// Ask poses a natural language question answered by a QnA module.
type Ask struct {
	Question   string
	Properties []string
	Distance   *float32
	Certainty  *float32
	Rerank     *bool
}

// NewAsk creates an ask clause.
func NewAsk(question string, properties ...string) *Ask {
	return &Ask{Question: question, Properties: properties}
}

// WithDistance sets the maximum vector distance.
func (a *Ask) WithDistance(d float32) *Ask {
	a.Distance = &d
	return a
}

// WithCertainty sets the minimum certainty.
func (a *Ask) WithCertainty(c float32) *Ask {
	a.Certainty = &c
	return a
}

// WithRerank reorders answers by answer score.
func (a *Ask) WithRerank(rerank bool) *Ask {
	a.Rerank = &rerank
	return a
}

// Render returns `ask:{...}`, or "" without a question.
func (a *Ask) Render() string {
	if a == nil || a.Question == "" {
		return ""
	}
	var o object
	o.addString("question", a.Question)
	if len(a.Properties) > 0 {
		o.add("properties", quoteList(a.Properties))
	}
	o.addFloat("distance", a.Distance)
	o.addFloat("certainty", a.Certainty)
	if a.Rerank != nil {
		o.add("rerank", strconv.FormatBool(*a.Rerank))
	}
	return "ask:" + o.String()
}

// BM25 is a keyword search, optionally restricted to some properties.
type BM25 struct {
	Query      string
	Properties []string
}

// NewBM25 creates a bm25 clause.
func NewBM25(query string, properties ...string) *BM25 {
	return &BM25{Query: query, Properties: properties}
}

// Render returns `bm25:{...}`, or "" without a query.
func (b *BM25) Render() string {
	if b == nil || b.Query == "" {
		return ""
	}
	var o object
	o.addString("query", b.Query)
	if len(b.Properties) > 0 {
		o.add("properties", quoteList(b.Properties))
	}
	return "bm25:" + o.String()
}

// Hybrid blends keyword and vector search. Alpha 0 is pure keyword, 1 is
// pure vector.
type Hybrid struct {
	Query             string
	Alpha             *float32
	Properties        []string
	MaxVectorDistance *float32
}

// NewHybrid creates a hybrid clause.
func NewHybrid(query string) *Hybrid {
	return &Hybrid{Query: query}
}

// WithAlpha weighs vector (1) against keyword (0) search.
func (h *Hybrid) WithAlpha(alpha float32) *Hybrid {
	h.Alpha = &alpha
	return h
}

// WithProperties restricts the keyword part to properties.
func (h *Hybrid) WithProperties(properties ...string) *Hybrid {
	h.Properties = properties
	return h
}

// WithMaxVectorDistance bounds the vector part.
func (h *Hybrid) WithMaxVectorDistance(d float32) *Hybrid {
	h.MaxVectorDistance = &d
	return h
}

// Render returns `hybrid:{...}`, or "" without a query.
func (h *Hybrid) Render() string {
	if h == nil || h.Query == "" {
		return ""
	}
	var o object
	o.addString("query", h.Query)
	o.addFloat("alpha", h.Alpha)
	if len(h.Properties) > 0 {
		o.add("properties", quoteList(h.Properties))
	}
	o.addFloat("maxVectorDistance", h.MaxVectorDistance)
	return "hybrid:" + o.String()
}
