// Package value defines JKSN's in-memory value universe: the JSON data
// model (null, bool, int, float, text, blob, array, map) plus the
// "Unspecified" sparse-table sentinel (spec §3).
//
// Values are represented as a sum type (design note §9.1): a Kind tag plus
// the fields relevant to that kind, following the same pattern as mebo's
// format.EncodingType/CompressionType (a small typed constant with a
// String() method), generalized here to a full tagged union since the
// value model itself — not just a configuration enum — needs one.
package value

import "math/big"

// Kind tags the active variant of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindText
	KindBlob
	KindArray
	KindMap
	KindUnspecified
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindText:
		return "text"
	case KindBlob:
		return "blob"
	case KindArray:
		return "array"
	case KindMap:
		return "map"
	case KindUnspecified:
		return "unspecified"
	default:
		return "unknown"
	}
}

// MapEntry is one ordered key/value pair of a Map value. Keys may be any
// Value (spec §3); iteration/round-trip order is preservation order.
type MapEntry struct {
	Key   Value
	Value Value
}

// Value is the JKSN value sum type. Arbitrary-precision integers (spec §3)
// are carried as *big.Int; Int64 is a convenience accessor for the common
// case where the value fits in a machine word.
type Value struct {
	kind Kind

	b    bool
	i    *big.Int
	f    float64
	s    string
	blob []byte
	arr  []Value
	m    []MapEntry
}

// Null returns the Null value.
func Null() Value { return Value{kind: KindNull} }

// Unspecified returns the sparse-table sentinel value.
func Unspecified() Value { return Value{kind: KindUnspecified} }

// Bool returns a Bool value.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int returns an Int value from an int64.
func Int(i int64) Value { return Value{kind: KindInt, i: big.NewInt(i)} }

// BigInt returns an Int value carrying an arbitrary-precision integer.
func BigInt(i *big.Int) Value {
	if i == nil {
		i = new(big.Int)
	}

	return Value{kind: KindInt, i: new(big.Int).Set(i)}
}

// Float returns a Float value. NaN and +/-Inf are representable (spec §4.1).
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// Text returns a Text value.
func Text(s string) Value { return Value{kind: KindText, s: s} }

// Blob returns a Blob value. The given slice is not copied.
func Blob(b []byte) Value { return Value{kind: KindBlob, blob: b} }

// Array returns an Array value. The given slice is not copied.
func Array(items []Value) Value { return Value{kind: KindArray, arr: items} }

// Map returns a Map value preserving entry order. The given slice is not copied.
func Map(entries []MapEntry) Value { return Value{kind: KindMap, m: entries} }

// Kind reports the active variant.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is Null.
func (v Value) IsNull() bool { return v.kind == KindNull }

// IsUnspecified reports whether v is the Unspecified sentinel.
func (v Value) IsUnspecified() bool { return v.kind == KindUnspecified }

// Bool returns the boolean payload; only meaningful if Kind() == KindBool.
func (v Value) Bool() bool { return v.b }

// BigInt returns the integer payload; only meaningful if Kind() == KindInt.
func (v Value) BigInt() *big.Int { return v.i }

// Int64 returns the integer payload narrowed to int64; only meaningful if
// Kind() == KindInt and the value fits.
func (v Value) Int64() int64 { return v.i.Int64() }

// Float returns the float payload; only meaningful if Kind() == KindFloat.
func (v Value) Float() float64 { return v.f }

// Text returns the text payload; only meaningful if Kind() == KindText.
func (v Value) Text() string { return v.s }

// Blob returns the blob payload; only meaningful if Kind() == KindBlob.
func (v Value) Blob() []byte { return v.blob }

// Array returns the array payload; only meaningful if Kind() == KindArray.
func (v Value) Array() []Value { return v.arr }

// Map returns the map payload; only meaningful if Kind() == KindMap.
func (v Value) Map() []MapEntry { return v.m }

// Equal reports deep structural equality, used by round-trip tests (spec §8
// invariant 1). NaN compares equal to NaN here (unlike IEEE-754 `==`) since
// round-trip fidelity, not numeric equivalence, is what is being checked.
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindNull, KindUnspecified:
		return true
	case KindBool:
		return a.b == b.b
	case KindInt:
		return a.i.Cmp(b.i) == 0
	case KindFloat:
		if a.f != a.f && b.f != b.f { // both NaN
			return true
		}
		return a.f == b.f
	case KindText:
		return a.s == b.s
	case KindBlob:
		if len(a.blob) != len(b.blob) {
			return false
		}
		for i := range a.blob {
			if a.blob[i] != b.blob[i] {
				return false
			}
		}
		return true
	case KindArray:
		if len(a.arr) != len(b.arr) {
			return false
		}
		for i := range a.arr {
			if !Equal(a.arr[i], b.arr[i]) {
				return false
			}
		}
		return true
	case KindMap:
		if len(a.m) != len(b.m) {
			return false
		}
		for i := range a.m {
			if !Equal(a.m[i].Key, b.m[i].Key) || !Equal(a.m[i].Value, b.m[i].Value) {
				return false
			}
		}
		return true
	default:
		return false
	}
}
