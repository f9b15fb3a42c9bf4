// Package secs2 implements a codec for SECS-II (SEMI E5) messages, the data
// format exchanged between semiconductor-manufacturing equipment and host
// controllers.
//
// A message is a tree of items: lists of child items, or homogeneous leaf
// sequences in one of 13 leaf types (Binary, Boolean, ASCII, I1-I8, U1-U8,
// F4, F8). The library decodes a message from a byte buffer, encodes a
// message to its wire form, and renders a message as SML text for logs.
// It is transport-agnostic: framing and delivery over HSMS or a serial line
// are the caller's concern.
//
// # Basic Usage
//
// Building and encoding a message:
//
//	import "github.com/arloliu/secs2"
//
//	msg := secs2.NewList(
//	    secs2.NewU1(1, 2),
//	    secs2.NewASCII("msg"),
//	)
//	data, err := secs2.Encode(msg)
//
// Decoding:
//
//	msg, consumed, err := secs2.Decode(data)
//
// Rendering SML:
//
//	fmt.Println(secs2.RenderSML(msg))
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the item,
// encoding and sml packages, which cover the common use cases. For
// fine-grained control - decode depth limits, indent widths - use those
// packages directly; trace blob capture lives in the trace package.
package secs2

import (
	"github.com/arloliu/secs2/encoding"
	"github.com/arloliu/secs2/internal/hash"
	"github.com/arloliu/secs2/item"
	"github.com/arloliu/secs2/sml"
)

// Item re-exports the message value type; see the item package.
type Item = item.Item

// Constructors re-exported from the item package.
var (
	NewList    = item.NewList
	NewBinary  = item.NewBinary
	NewBoolean = item.NewBoolean
	NewASCII   = item.NewASCII
	NewI1      = item.NewI1
	NewI2      = item.NewI2
	NewI4      = item.NewI4
	NewI8      = item.NewI8
	NewU1      = item.NewU1
	NewU2      = item.NewU2
	NewU4      = item.NewU4
	NewU8      = item.NewU8
	NewF4      = item.NewF4
	NewF8      = item.NewF8
)

// Encode encodes msg into its SECS-II wire form.
//
// The only failure is errs.ErrLengthOverflow, when some node's length field
// would not fit in three header length bytes.
func Encode(msg Item) ([]byte, error) {
	return encoding.Encode(msg)
}

// Decode decodes one message from the start of data and returns it together
// with the number of bytes consumed. Trailing bytes are ignored.
//
// List nesting is capped at encoding.DefaultMaxDepth levels; use
// encoding.Decode with encoding.WithMaxDepth for a different limit.
func Decode(data []byte) (Item, int, error) {
	return encoding.Decode(data)
}

// RenderSML renders msg as SML text with the default 4-space indent.
//
// Use sml.Render with sml.WithIndentWidth for a different indent.
func RenderSML(msg Item) string {
	return sml.Render(msg)
}

// Digest returns the xxHash64 of msg's canonical wire encoding. Two
// structurally equal messages have equal digests, which makes the digest a
// cheap identity for caching and deduplicating captured traffic.
func Digest(msg Item) (uint64, error) {
	data, err := encoding.Encode(msg)
	if err != nil {
		return 0, err
	}

	return hash.Sum(data), nil
}
