package domain

import "strconv"

// Kind identifies the scalar type of a default value.
type Kind uint8

// Scalar kinds known to the default table.
const (
	KindBool Kind = iota
	KindInt
	KindLong
	KindU64
	KindFloat
	KindDouble
	KindString
)

var kindNames = [...]string{
	KindBool:   "bool",
	KindInt:    "int",
	KindLong:   "long",
	KindU64:    "u64",
	KindFloat:  "float",
	KindDouble: "double",
	KindString: "string",
}

// String returns the kind name.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Value is a typed default value. The set of implementations is closed:
// Bool, Int, Long, U64, Float, Double and String.
type Value interface {
	Kind() Kind
	value()
}

type (
	// Bool is a boolean default.
	Bool bool
	// Int is a 32-bit signed integer default.
	Int int32
	// Long is a 32-bit unsigned integer default.
	Long uint32
	// U64 is a 64-bit integer default, rendered signed.
	U64 int64
	// Float is a single precision default.
	Float float32
	// Double is a double precision default.
	Double float64
	// String is a text default.
	String string
)

func (Bool) Kind() Kind   { return KindBool }
func (Int) Kind() Kind    { return KindInt }
func (Long) Kind() Kind   { return KindLong }
func (U64) Kind() Kind    { return KindU64 }
func (Float) Kind() Kind  { return KindFloat }
func (Double) Kind() Kind { return KindDouble }
func (String) Kind() Kind { return KindString }

func (Bool) value()   {}
func (Int) value()    {}
func (Long) value()   {}
func (U64) value()    {}
func (Float) value()  {}
func (Double) value() {}
func (String) value() {}

// Render returns the display text of v.
//
// Floating point kinds use fixed notation with six fractional digits, so
// 0.5 renders as "0.500000".
func Render(v Value) string {
	switch x := v.(type) {
	case Bool:
		return strconv.FormatBool(bool(x))
	case Int:
		return strconv.FormatInt(int64(x), 10)
	case Long:
		return strconv.FormatUint(uint64(x), 10)
	case U64:
		return strconv.FormatInt(int64(x), 10)
	case Float:
		return strconv.FormatFloat(float64(x), 'f', 6, 64)
	case Double:
		return strconv.FormatFloat(float64(x), 'f', 6, 64)
	case String:
		return string(x)
	default:
		return ""
	}
}
