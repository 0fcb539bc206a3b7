package graphql

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// Operator is the comparison or boolean operator of a Where filter.
type Operator string

const (
	Equal            Operator = "Equal"
	NotEqual         Operator = "NotEqual"
	GreaterThan      Operator = "GreaterThan"
	GreaterThanEqual Operator = "GreaterThanEqual"
	LessThan         Operator = "LessThan"
	LessThanEqual    Operator = "LessThanEqual"
	Like             Operator = "Like"
	ContainsAll      Operator = "ContainsAll"
	ContainsAny      Operator = "ContainsAny"
	WithinGeoRange   Operator = "WithinGeoRange"
	Or               Operator = "Or"
	And              Operator = "And"
)

// Valid reports whether o is one of the operators the server understands.
func (o Operator) Valid() bool {
	switch o {
	case Equal, NotEqual, GreaterThan, GreaterThanEqual, LessThan, LessThanEqual,
		Like, ContainsAll, ContainsAny, WithinGeoRange, Or, And:
		return true
	}
	return false
}

// GeoRange bounds a WithinGeoRange filter. MaxDistance is in meters.
type GeoRange struct {
	Latitude    float32 `json:"latitude"`
	Longitude   float32 `json:"longitude"`
	MaxDistance float32 `json:"maxDistance"`
}

// Where is a property filter. Leaf filters carry a Path, an Operator and at
// most one value; And/Or filters carry Operands instead.
//
// When more than one value is set, only the first one in the order
// string, text, date, int, number, boolean, geo range is rendered.
type Where struct {
	Path     []string
	Operator Operator
	Operands []*Where

	ValueString   *string
	ValueText     *string
	ValueDate     *time.Time
	ValueInt      *int64
	ValueNumber   *float64
	ValueBoolean  *bool
	ValueGeoRange *GeoRange
}

// NewWhere starts a leaf filter on the given property path.
func NewWhere(op Operator, path ...string) *Where {
	return &Where{Path: path, Operator: op}
}

// AllOf combines operands with the And operator.
func AllOf(operands ...*Where) *Where {
	return &Where{Operator: And, Operands: operands}
}

// AnyOf combines operands with the Or operator.
func AnyOf(operands ...*Where) *Where {
	return &Where{Operator: Or, Operands: operands}
}

// WithString sets valueString.
func (w *Where) WithString(v string) *Where {
	w.ValueString = &v
	return w
}

// WithText sets valueText.
func (w *Where) WithText(v string) *Where {
	w.ValueText = &v
	return w
}

// WithDate sets valueDate.
func (w *Where) WithDate(v time.Time) *Where {
	w.ValueDate = &v
	return w
}

// WithInt sets valueInt.
func (w *Where) WithInt(v int64) *Where {
	w.ValueInt = &v
	return w
}

// WithNumber sets valueNumber.
func (w *Where) WithNumber(v float64) *Where {
	w.ValueNumber = &v
	return w
}

// WithBoolean sets valueBoolean.
func (w *Where) WithBoolean(v bool) *Where {
	w.ValueBoolean = &v
	return w
}

// WithGeoRange sets valueGeoRange; maxDistance is in meters.
func (w *Where) WithGeoRange(latitude, longitude, maxDistance float32) *Where {
	w.ValueGeoRange = &GeoRange{Latitude: latitude, Longitude: longitude, MaxDistance: maxDistance}
	return w
}

// Render returns the `where:{...}` argument, or "" when the filter has
// neither a path nor any renderable operand.
func (w *Where) Render() string {
	body := w.body()
	if body == "" {
		return ""
	}
	return "where:" + body
}

// body renders the filter object without the argument name.
func (w *Where) body() string {
	if w == nil {
		return ""
	}

	operands := make([]string, 0, len(w.Operands))
	for _, op := range w.Operands {
		if rendered := op.body(); rendered != "" {
			operands = append(operands, rendered)
		}
	}
	if len(w.Path) == 0 && len(operands) == 0 {
		return ""
	}

	var o object
	if len(w.Path) > 0 {
		o.add("path", quoteList(w.Path))
	}
	o.addString("operator", string(w.Operator))
	if len(operands) > 0 {
		o.add("operands", "["+strings.Join(operands, ",")+"]")
	}
	if key, value, ok := w.value(); ok {
		o.add(key, value)
	}
	return o.String()
}

// value picks the single value to render, already formatted as GraphQL.
func (w *Where) value() (key, value string, ok bool) {
	switch {
	case w.ValueString != nil:
		return "valueString", quote(*w.ValueString), true
	case w.ValueText != nil:
		return "valueText", quote(*w.ValueText), true
	case w.ValueDate != nil:
		return "valueDate", quote(formatDate(*w.ValueDate)), true
	case w.ValueInt != nil:
		return "valueInt", strconv.FormatInt(*w.ValueInt, 10), true
	case w.ValueNumber != nil:
		return "valueNumber", formatFloat64(*w.ValueNumber), true
	case w.ValueBoolean != nil:
		return "valueBoolean", strconv.FormatBool(*w.ValueBoolean), true
	case w.ValueGeoRange != nil:
		g := w.ValueGeoRange
		return "valueGeoRange", "{geoCoordinates:{latitude:" + formatFloat(g.Latitude) +
			",longitude:" + formatFloat(g.Longitude) + "},distance:{max:" + formatFloat(g.MaxDistance) + "}}", true
	}
	return "", "", false
}

type whereJSON struct {
	Path          []string      `json:"path,omitempty"`
	Operator      Operator      `json:"operator"`
	Operands      []*Where      `json:"operands,omitempty"`
	ValueString   *string       `json:"valueString,omitempty"`
	ValueText     *string       `json:"valueText,omitempty"`
	ValueDate     *string       `json:"valueDate,omitempty"`
	ValueInt      *int64        `json:"valueInt,omitempty"`
	ValueNumber   *float64      `json:"valueNumber,omitempty"`
	ValueBoolean  *bool         `json:"valueBoolean,omitempty"`
	ValueGeoRange *geoRangeJSON `json:"valueGeoRange,omitempty"`
}

type geoRangeJSON struct {
	GeoCoordinates struct {
		Latitude  float32 `json:"latitude"`
		Longitude float32 `json:"longitude"`
	} `json:"geoCoordinates"`
	Distance struct {
		Max float32 `json:"max"`
	} `json:"distance"`
}

// MarshalJSON encodes the filter in the REST shape used by batch deletes.
// The single-value rule of Render applies here as well.
func (w *Where) MarshalJSON() ([]byte, error) {
	out := whereJSON{Path: w.Path, Operator: w.Operator, Operands: w.Operands}
	switch {
	case w.ValueString != nil:
		out.ValueString = w.ValueString
	case w.ValueText != nil:
		out.ValueText = w.ValueText
	case w.ValueDate != nil:
		d := formatDate(*w.ValueDate)
		out.ValueDate = &d
	case w.ValueInt != nil:
		out.ValueInt = w.ValueInt
	case w.ValueNumber != nil:
		out.ValueNumber = w.ValueNumber
	case w.ValueBoolean != nil:
		out.ValueBoolean = w.ValueBoolean
	case w.ValueGeoRange != nil:
		g := &geoRangeJSON{}
		g.GeoCoordinates.Latitude = w.ValueGeoRange.Latitude
		g.GeoCoordinates.Longitude = w.ValueGeoRange.Longitude
		g.Distance.Max = w.ValueGeoRange.MaxDistance
		out.ValueGeoRange = g
	}
	return json.Marshal(out)
}
