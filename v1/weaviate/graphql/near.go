package graphql

import "strings"

// NearText searches by the vector of one or more text concepts.
type NearText struct {
	Concepts     []string
	Distance     *float32
	Certainty    *float32
	MoveTo       *Move
	MoveAwayFrom *Move
}

// Move shifts a NearText search towards or away from concepts or objects.
type Move struct {
	Concepts []string
	Objects  []MoveObject
	Force    float32
}

// MoveObject references an object by id or by beacon; ID wins when both are set.
type MoveObject struct {
	ID     string
	Beacon string
}

// NewNearText creates a nearText clause for the given concepts.
func NewNearText(concepts ...string) *NearText {
	return &NearText{Concepts: concepts}
}

// WithDistance sets the maximum vector distance.
func (n *NearText) WithDistance(d float32) *NearText {
	n.Distance = &d
	return n
}

// WithCertainty sets the minimum certainty.
func (n *NearText) WithCertainty(c float32) *NearText {
	n.Certainty = &c
	return n
}

// WithMoveTo shifts the search towards m.
func (n *NearText) WithMoveTo(m Move) *NearText {
	n.MoveTo = &m
	return n
}

// WithMoveAwayFrom shifts the search away from m.
func (n *NearText) WithMoveAwayFrom(m Move) *NearText {
	n.MoveAwayFrom = &m
	return n
}

// Render returns `nearText:{...}`, or "" without concepts.
func (n *NearText) Render() string {
	if n == nil || len(n.Concepts) == 0 {
		return ""
	}
	var o object
	o.add("concepts", quoteList(n.Concepts))
	o.addFloat("distance", n.Distance)
	o.addFloat("certainty", n.Certainty)
	if n.MoveTo != nil {
		o.add("moveTo", n.MoveTo.String())
	}
	if n.MoveAwayFrom != nil {
		o.add("moveAwayFrom", n.MoveAwayFrom.String())
	}
	return "nearText:" + o.String()
}

// String renders the move as a GraphQL object.
func (m Move) String() string {
	var o object
	if len(m.Concepts) > 0 {
		o.add("concepts", quoteList(m.Concepts))
	}
	if len(m.Objects) > 0 {
		objects := make([]string, 0, len(m.Objects))
		for _, obj := range m.Objects {
			if s := obj.String(); s != "" {
				objects = append(objects, s)
			}
		}
		o.add("objects", "["+strings.Join(objects, ",")+"]")
	}
	o.add("force", formatFloat(m.Force))
	return o.String()
}

// String renders `{id:"..."}` or `{beacon:"..."}`.
func (m MoveObject) String() string {
	switch {
	case m.ID != "":
		return "{id:" + quote(m.ID) + "}"
	case m.Beacon != "":
		return "{beacon:" + quote(m.Beacon) + "}"
	}
	return ""
}

// NearObject searches by the vector of an existing object.
type NearObject struct {
	ID        string
	Beacon    string
	Distance  *float32
	Certainty *float32
}

// NewNearObject creates a nearObject clause referencing an object id.
func NewNearObject(id string) *NearObject {
	return &NearObject{ID: id}
}

// WithDistance sets the maximum vector distance.
func (n *NearObject) WithDistance(d float32) *NearObject {
	n.Distance = &d
	return n
}

// WithCertainty sets the minimum certainty.
func (n *NearObject) WithCertainty(c float32) *NearObject {
	n.Certainty = &c
	return n
}

// Render returns `nearObject:{...}`, or "" when neither id nor beacon is set.
func (n *NearObject) Render() string {
	if n == nil {
		return ""
	}
	var o object
	switch {
	case n.ID != "":
		o.addString("id", n.ID)
	case n.Beacon != "":
		o.addString("beacon", n.Beacon)
	default:
		return ""
	}
	o.addFloat("distance", n.Distance)
	o.addFloat("certainty", n.Certainty)
	return "nearObject:" + o.String()
}

// NearVector searches by a raw embedding.
type NearVector struct {
	Vector    []float32
	Distance  *float32
	Certainty *float32
}

// NewNearVector creates a nearVector clause.
func NewNearVector(vector []float32) *NearVector {
	return &NearVector{Vector: vector}
}

// WithDistance sets the maximum vector distance.
func (n *NearVector) WithDistance(d float32) *NearVector {
	n.Distance = &d
	return n
}

// WithCertainty sets the minimum certainty.
func (n *NearVector) WithCertainty(c float32) *NearVector {
	n.Certainty = &c
	return n
}

// Render returns `nearVector:{...}`, or "" for an empty vector.
func (n *NearVector) Render() string {
	if n == nil || len(n.Vector) == 0 {
		return ""
	}
	var o object
	o.add("vector", formatVector(n.Vector))
	o.addFloat("distance", n.Distance)
	o.addFloat("certainty", n.Certainty)
	return "nearVector:" + o.String()
}

// NearImage searches by a base64 encoded image.
type NearImage struct {
	Image     string
	Distance  *float32
	Certainty *float32
}

// NewNearImage creates a nearImage clause from base64 image data.
func NewNearImage(image string) *NearImage {
	return &NearImage{Image: image}
}

// WithDistance sets the maximum vector distance.
func (n *NearImage) WithDistance(d float32) *NearImage {
	n.Distance = &d
	return n
}

// WithCertainty sets the minimum certainty.
func (n *NearImage) WithCertainty(c float32) *NearImage {
	n.Certainty = &c
	return n
}

// Render returns `nearImage:{...}`, or "" without image data.
func (n *NearImage) Render() string {
	if n == nil || n.Image == "" {
		return ""
	}
	var o object
	o.addString("image", n.Image)
	o.addFloat("distance", n.Distance)
	o.addFloat("certainty", n.Certainty)
	return "nearImage:" + o.String()
}
