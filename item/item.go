// Package item defines the SECS-II message value model: a tree whose nodes
// are either lists of child items or homogeneous leaf items in one of the 13
// leaf types (Binary, Boolean, ASCII, I1-I8, U1-U8, F4, F8).
//
// Items are plain data. They are immutable after construction from the
// caller's viewpoint, freely copyable, and safe for concurrent readers.
// Equality is structural: a decoded list and a hand-built list with equal
// children compare equal.
//
// Building a message:
//
//	msg := item.NewList(
//	    item.NewU1(1, 2),
//	    item.NewASCII("msg"),
//	)
package item

import (
	"math"
	"slices"

	"github.com/arloliu/secs2/format"
)

// Item is one node of a SECS-II message tree: either a list of child items
// or a homogeneous sequence of fixed-width leaf elements.
//
// The zero value is an empty list. Construct items with the New* functions;
// direct field access is not exposed.
type Item struct {
	typ format.ItemType

	// Exactly one of the following carries data, selected by typ.
	// Signed integers are widened to int64, unsigned to uint64, and floats
	// to float64; the wire width lives in typ.
	bytes    []byte // Binary octets or ASCII text
	bools    []bool
	ints     []int64
	uints    []uint64
	floats   []float64
	children []Item
}

// NewList creates a list item with the given children in order.
func NewList(children ...Item) Item {
	return Item{typ: format.TypeList, children: children}
}

// NewBinary creates a Binary item from the given octets.
func NewBinary(values ...byte) Item {
	return Item{typ: format.TypeBinary, bytes: values}
}

// NewBoolean creates a Boolean item from the given truth values.
func NewBoolean(values ...bool) Item {
	return Item{typ: format.TypeBoolean, bools: values}
}

// NewASCII creates an ASCII item holding the given text. The text is stored
// byte for byte; SECS-II strings are not NUL-terminated and the codec does
// not restrict the byte values.
func NewASCII(text string) Item {
	return Item{typ: format.TypeASCII, bytes: []byte(text)}
}

// NewI1 creates a signed 1-byte integer item.
func NewI1(values ...int8) Item {
	return Item{typ: format.TypeI1, ints: widenSigned(values)}
}

// NewI2 creates a signed 2-byte integer item.
func NewI2(values ...int16) Item {
	return Item{typ: format.TypeI2, ints: widenSigned(values)}
}

// NewI4 creates a signed 4-byte integer item.
func NewI4(values ...int32) Item {
	return Item{typ: format.TypeI4, ints: widenSigned(values)}
}

// NewI8 creates a signed 8-byte integer item.
func NewI8(values ...int64) Item {
	return Item{typ: format.TypeI8, ints: slices.Clone(values)}
}

// NewU1 creates an unsigned 1-byte integer item.
func NewU1(values ...uint8) Item {
	return Item{typ: format.TypeU1, uints: widenUnsigned(values)}
}

// NewU2 creates an unsigned 2-byte integer item.
func NewU2(values ...uint16) Item {
	return Item{typ: format.TypeU2, uints: widenUnsigned(values)}
}

// NewU4 creates an unsigned 4-byte integer item.
func NewU4(values ...uint32) Item {
	return Item{typ: format.TypeU4, uints: widenUnsigned(values)}
}

// NewU8 creates an unsigned 8-byte integer item.
func NewU8(values ...uint64) Item {
	return Item{typ: format.TypeU8, uints: slices.Clone(values)}
}

// NewF4 creates a 4-byte float item. Values round-trip as IEEE-754 binary32
// bit patterns; NaN and infinities are preserved.
func NewF4(values ...float32) Item {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}

	return Item{typ: format.TypeF4, floats: floats}
}

// NewF8 creates an 8-byte float item.
func NewF8(values ...float64) Item {
	return Item{typ: format.TypeF8, floats: slices.Clone(values)}
}

// Type returns the item's wire type.
func (it Item) Type() format.ItemType {
	return it.typ
}

// Size returns the element count for leaf items, or the direct-child count
// for lists. Grand-children are not counted.
func (it Item) Size() int {
	switch it.typ {
	case format.TypeList:
		return len(it.children)
	case format.TypeBinary, format.TypeASCII:
		return len(it.bytes)
	case format.TypeBoolean:
		return len(it.bools)
	case format.TypeI1, format.TypeI2, format.TypeI4, format.TypeI8:
		return len(it.ints)
	case format.TypeU1, format.TypeU2, format.TypeU4, format.TypeU8:
		return len(it.uints)
	default:
		return len(it.floats)
	}
}

// Children returns the item's direct children. The second return value is
// false unless the item is a list.
//
// The returned slice shares storage with the item; do not modify it.
func (it Item) Children() ([]Item, bool) {
	if it.typ != format.TypeList {
		return nil, false
	}

	return it.children, true
}

// Child returns the i-th direct child of a list item. The second return
// value is false for non-lists and out-of-range indices.
func (it Item) Child(i int) (Item, bool) {
	if it.typ != format.TypeList || i < 0 || i >= len(it.children) {
		return Item{}, false
	}

	return it.children[i], true
}

// BinaryValues returns the octets of a Binary item.
// The second return value is false for any other type.
func (it Item) BinaryValues() ([]byte, bool) {
	if it.typ != format.TypeBinary {
		return nil, false
	}

	return it.bytes, true
}

// BooleanValues returns the truth values of a Boolean item.
// The second return value is false for any other type.
func (it Item) BooleanValues() ([]bool, bool) {
	if it.typ != format.TypeBoolean {
		return nil, false
	}

	return it.bools, true
}

// ASCIIValue returns the text of an ASCII item.
// The second return value is false for any other type.
func (it Item) ASCIIValue() (string, bool) {
	if it.typ != format.TypeASCII {
		return "", false
	}

	return string(it.bytes), true
}

// IntValues returns the elements of a signed integer item (I1, I2, I4 or I8)
// widened to int64. The second return value is false for any other type.
//
// The returned slice shares storage with the item; do not modify it.
func (it Item) IntValues() ([]int64, bool) {
	switch it.typ {
	case format.TypeI1, format.TypeI2, format.TypeI4, format.TypeI8:
		return it.ints, true
	default:
		return nil, false
	}
}

// UintValues returns the elements of an unsigned integer item (U1, U2, U4 or
// U8) widened to uint64. The second return value is false for any other type.
//
// The returned slice shares storage with the item; do not modify it.
func (it Item) UintValues() ([]uint64, bool) {
	switch it.typ {
	case format.TypeU1, format.TypeU2, format.TypeU4, format.TypeU8:
		return it.uints, true
	default:
		return nil, false
	}
}

// FloatValues returns the elements of a float item (F4 or F8) widened to
// float64. The second return value is false for any other type.
//
// The returned slice shares storage with the item; do not modify it.
func (it Item) FloatValues() ([]float64, bool) {
	switch it.typ {
	case format.TypeF4, format.TypeF8:
		return it.floats, true
	default:
		return nil, false
	}
}

// Equal reports whether two items are structurally equal: same type and the
// same sequence of elements, or for lists the same sequence of equal
// children.
//
// Float elements compare by IEEE-754 bit pattern, so NaN elements compare
// equal to themselves and a decoded item always equals its source.
func (it Item) Equal(other Item) bool {
	if it.typ != other.typ {
		return false
	}

	switch it.typ {
	case format.TypeList:
		return slices.EqualFunc(it.children, other.children, Item.Equal)
	case format.TypeBinary, format.TypeASCII:
		return slices.Equal(it.bytes, other.bytes)
	case format.TypeBoolean:
		return slices.Equal(it.bools, other.bools)
	case format.TypeI1, format.TypeI2, format.TypeI4, format.TypeI8:
		return slices.Equal(it.ints, other.ints)
	case format.TypeU1, format.TypeU2, format.TypeU4, format.TypeU8:
		return slices.Equal(it.uints, other.uints)
	default:
		return slices.EqualFunc(it.floats, other.floats, floatBitsEqual)
	}
}

// floatBitsEqual compares by bit pattern so NaN elements compare equal to
// themselves.
func floatBitsEqual(a, b float64) bool {
	return math.Float64bits(a) == math.Float64bits(b)
}

func widenSigned[T int8 | int16 | int32](values []T) []int64 {
	ints := make([]int64, len(values))
	for i, v := range values {
		ints[i] = int64(v)
	}

	return ints
}

func widenUnsigned[T uint8 | uint16 | uint32](values []T) []uint64 {
	uints := make([]uint64, len(values))
	for i, v := range values {
		uints[i] = uint64(v)
	}

	return uints
}
