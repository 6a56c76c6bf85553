package value

import (
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindList
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindFloat:  "float",
	KindString: "string",
	KindList:   "list",
}

// String returns the lowercase variant name.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
	return kindNames[k]
}

// Value is one node of a parsed input tree.
// The sealed marker restricts implementations to this package.
type Value interface {
	// Kind reports the variant.
	Kind() Kind

	// String returns the canonical literal text of the value.
	String() string

	value() // sealed marker
}

// Null is the null literal.
type Null struct{}

// Bool is a boolean literal.
type Bool bool

// Int is an integer literal without a fractional part.
type Int int64

// Float is a numeric literal written with a fractional part.
type Float float64

// String is a quoted literal. No escape processing is applied.
type String string

// List is a bracketed, ordered sequence of values.
type List []Value

func (Null) value()   {}
func (Bool) value()   {}
func (Int) value()    {}
func (Float) value()  {}
func (String) value() {}
func (List) value()   {}

func (Null) Kind() Kind   { return KindNull }
func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Float) Kind() Kind  { return KindFloat }
func (String) Kind() Kind { return KindString }
func (List) Kind() Kind   { return KindList }

func (Null) String() string { return "null" }

func (b Bool) String() string { return strconv.FormatBool(bool(b)) }

func (i Int) String() string { return strconv.FormatInt(int64(i), 10) }

func (f Float) String() string { return formatFloat(float64(f)) }

func (s String) String() string { return `"` + string(s) + `"` }

func (l List) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			sb.WriteByte(',')
		}
		if v == nil {
			sb.WriteString("null")
			continue
		}
		sb.WriteString(v.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// formatFloat renders f without an exponent and always with a '.' so the
// literal parses back as a Float.
func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// Format renders a sequence of top-level values as one input line.
func Format(args []Value) string {
	parts := make([]string, len(args))
	for i, v := range args {
		if v == nil {
			parts[i] = "null"
			continue
		}
		parts[i] = v.String()
	}
	return strings.Join(parts, ",")
}
