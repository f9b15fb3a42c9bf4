// Package encoding implements the SECS-II (SEMI E5) binary codec: encoding
// a message item tree to its wire form, and decoding a wire buffer back into
// the tree.
//
// # Wire Format
//
// Every item starts with a header: one format byte followed by 1-3 length
// bytes.
//
//	bit 7 6 5 4 3 2   1 0
//	   [ format code] [N]
//
// The high six bits carry the item's format code (see the format package);
// the low two bits carry N, the number of big-endian length bytes that
// follow. N = 0 is invalid. For leaf items the length is the payload size in
// bytes and must be a multiple of the element width; for lists it is the
// count of direct children, whose encodings follow the header back to back.
//
// Encoders always emit the minimal N that fits the length; the decoder
// accepts any N in 1-3 regardless, for interoperability with other SECS-II
// implementations that pad their length fields.
//
// Multi-byte elements are big-endian. Booleans encode as 0x00/0x01 and any
// nonzero byte decodes as true. Floats travel as IEEE-754 bit patterns, so
// NaN and infinities round-trip exactly.
//
// # Usage
//
// Encoding is all-or-nothing:
//
//	data, err := encoding.Encode(msg)
//
// Decoding returns the consumed byte count and ignores trailing bytes, so
// callers can pull consecutive messages out of one buffer:
//
//	msg, n, err := encoding.Decode(data)
//	rest := data[n:]
//
// The decoder caps list nesting at DefaultMaxDepth levels; raise or lower
// the cap per call with WithMaxDepth.
package encoding
