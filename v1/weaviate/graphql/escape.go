package graphql

import (
	"strconv"
	"strings"
	"time"
)

const hexDigits = "0123456789abcdef"

// dateLayout matches the server's RFC 3339 parser and always carries a
// numeric offset, including +00:00 for UTC.
const dateLayout = "2006-01-02T15:04:05-07:00"

// quote renders s as a double-quoted GraphQL string literal.
func quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			if r < 0x20 || r == 0x7f {
				b.WriteString(`\u00`)
				b.WriteByte(hexDigits[r>>4])
				b.WriteByte(hexDigits[r&0xf])
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// quoteList renders values as a GraphQL list of string literals.
func quoteList(values []string) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = quote(v)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func formatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}

func formatFloat64(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func formatVector(v []float32) string {
	parts := make([]string, len(v))
	for i, f := range v {
		parts[i] = formatFloat(f)
	}
	return "[" + strings.Join(parts, ",") + "]"
}

func formatDate(t time.Time) string {
	return t.Format(dateLayout)
}

// object joins key:value members into a GraphQL input object.
type object struct {
	members []string
}

func (o *object) add(key, value string) {
	o.members = append(o.members, key+":"+value)
}

func (o *object) addString(key, value string) {
	o.add(key, quote(value))
}

func (o *object) addFloat(key string, value *float32) {
	if value != nil {
		o.add(key, formatFloat(*value))
	}
}

func (o *object) String() string {
	return "{" + strings.Join(o.members, ",") + "}"
}
