package encoding

import (
	"fmt"

	"github.com/arloliu/secs2/errs"
	"github.com/arloliu/secs2/format"
)

// Header is the decoded form of an item header: the item type, the declared
// length (payload bytes for leaves, direct-child count for lists), and the
// number of bytes the header itself occupies.
type Header struct {
	Type   format.ItemType
	Length int

	size int // 1 format byte + N length bytes
}

// Size returns the number of bytes the header occupies on the wire (1 + N).
func (h Header) Size() int {
	return h.size
}

// headerSize returns the encoded header size for the given length: one
// format byte plus the minimal number of length bytes.
func headerSize(length int) int {
	switch {
	case length <= 0xFF:
		return 2
	case length <= 0xFFFF:
		return 3
	default:
		return 4
	}
}

// AppendHeader appends the header for (typ, length) to dst and returns the
// extended slice.
//
// The minimal length-byte count is chosen: 1 byte for lengths up to 0xFF,
// 2 up to 0xFFFF, 3 up to format.MaxLength. Lengths beyond format.MaxLength
// fail with errs.ErrLengthOverflow and dst is returned unchanged.
func AppendHeader(dst []byte, typ format.ItemType, length int) ([]byte, error) {
	if length < 0 || length > format.MaxLength {
		return dst, fmt.Errorf("%w: %s length %d", errs.ErrLengthOverflow, typ, length)
	}

	switch {
	case length <= 0xFF:
		return append(dst, byte(typ)<<2|1, byte(length)), nil
	case length <= 0xFFFF:
		return append(dst, byte(typ)<<2|2, byte(length>>8), byte(length)), nil
	default:
		return append(dst, byte(typ)<<2|3, byte(length>>16), byte(length>>8), byte(length)), nil
	}
}

// DecodeHeader decodes an item header from the start of data.
//
// It fails with errs.ErrInvalidLengthByteCount when the format byte declares
// zero length bytes, errs.ErrIncomplete when data is shorter than the header,
// and errs.ErrUnknownType when the format code is not one of the 14 wire
// variants. Any length-byte count in 1-3 is accepted even if a smaller one
// would have sufficed; the minimal-N rule binds encoders only.
func DecodeHeader(data []byte) (Header, error) {
	if len(data) == 0 {
		return Header{}, fmt.Errorf("%w: empty buffer", errs.ErrIncomplete)
	}

	formatByte := data[0]
	n := int(formatByte & 0b11)
	if n == 0 {
		return Header{}, errs.ErrInvalidLengthByteCount
	}

	if len(data) < 1+n {
		return Header{}, fmt.Errorf("%w: header declares %d length bytes, %d available",
			errs.ErrIncomplete, n, len(data)-1)
	}

	length := 0
	for _, b := range data[1 : 1+n] {
		length = length<<8 | int(b)
	}

	typ, ok := format.ItemTypeFromCode(formatByte >> 2)
	if !ok {
		return Header{Length: length, size: 1 + n},
			fmt.Errorf("%w: format code 0o%02o", errs.ErrUnknownType, formatByte>>2)
	}

	return Header{Type: typ, Length: length, size: 1 + n}, nil
}
