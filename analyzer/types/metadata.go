package types

import (
	"encoding/json"
	"fmt"
)

// MetaKind discriminates the value shapes a metadata entry may hold.
type MetaKind int

const (
	MetaNumber MetaKind = iota
	MetaString
	MetaNumberList
)

// MetaValue is a tagged variant for benchmark metadata. Only three shapes
// ever flow through the pipeline: a scalar number (matrix_size), a string
// (matrix_dims) and a list of numbers (per-run timing samples).
type MetaValue struct {
	kind MetaKind
	num  float64
	str  string
	nums []float64
}

// NumberValue wraps a scalar number.
func NumberValue(v float64) MetaValue {
	return MetaValue{kind: MetaNumber, num: v}
}

// StringValue wraps a string.
func StringValue(s string) MetaValue {
	return MetaValue{kind: MetaString, str: s}
}

// NumberListValue wraps a list of numbers. The slice is copied so callers
// cannot mutate already-stored metadata.
func NumberListValue(vs []float64) MetaValue {
	cp := make([]float64, len(vs))
	copy(cp, vs)
	return MetaValue{kind: MetaNumberList, nums: cp}
}

// Kind reports which shape the value holds.
func (v MetaValue) Kind() MetaKind { return v.kind }

// Number returns the scalar value and whether the entry holds one.
func (v MetaValue) Number() (float64, bool) {
	return v.num, v.kind == MetaNumber
}

// Str returns the string value and whether the entry holds one.
func (v MetaValue) Str() (string, bool) {
	return v.str, v.kind == MetaString
}

// Numbers returns a copy of the number list and whether the entry holds one.
func (v MetaValue) Numbers() ([]float64, bool) {
	if v.kind != MetaNumberList {
		return nil, false
	}
	cp := make([]float64, len(v.nums))
	copy(cp, v.nums)
	return cp, true
}

func (v MetaValue) String() string {
	switch v.kind {
	case MetaNumber:
		return fmt.Sprintf("%v", v.num)
	case MetaString:
		return v.str
	default:
		return fmt.Sprintf("%v", v.nums)
	}
}

// MarshalJSON renders the underlying value as its natural JSON shape, so
// report consumers see plain scalars and arrays.
func (v MetaValue) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case MetaNumber:
		return json.Marshal(v.num)
	case MetaString:
		return json.Marshal(v.str)
	default:
		return json.Marshal(v.nums)
	}
}

// UnmarshalJSON accepts a number, a string or an array of numbers.
func (v *MetaValue) UnmarshalJSON(data []byte) error {
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = NumberValue(num)
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*v = StringValue(str)
		return nil
	}

	var nums []float64
	if err := json.Unmarshal(data, &nums); err == nil {
		*v = NumberListValue(nums)
		return nil
	}

	return fmt.Errorf("unsupported metadata value: %s", string(data))
}

// Metadata is an open mapping of string keys to tagged metadata values.
type Metadata map[string]MetaValue

// Clone returns an independent copy. Emitted results must not change when
// the parser's running config is overwritten by later lines.
func (m Metadata) Clone() Metadata {
	if m == nil {
		return nil
	}
	cp := make(Metadata, len(m))
	for k, v := range m {
		if v.kind == MetaNumberList {
			cp[k] = NumberListValue(v.nums)
			continue
		}
		cp[k] = v
	}
	return cp
}
