package encoding

import (
	"fmt"
	"math"

	"github.com/arloliu/secs2/endian"
	"github.com/arloliu/secs2/errs"
	"github.com/arloliu/secs2/format"
	"github.com/arloliu/secs2/item"
)

// bigEndian is the engine for item bodies; SECS-II is network order.
var bigEndian = endian.GetBigEndianEngine()

// appendBody appends the payload of a leaf item to dst and returns the
// extended slice. The caller has already validated the payload length, so
// appendBody cannot fail. Lists have no leaf body and are handled by the
// message codec.
func appendBody(dst []byte, it item.Item) []byte {
	switch it.Type() {
	case format.TypeBinary:
		values, _ := it.BinaryValues()
		return append(dst, values...)

	case format.TypeASCII:
		text, _ := it.ASCIIValue()
		return append(dst, text...)

	case format.TypeBoolean:
		values, _ := it.BooleanValues()
		for _, v := range values {
			if v {
				dst = append(dst, 1)
			} else {
				dst = append(dst, 0)
			}
		}

		return dst

	case format.TypeI1, format.TypeI2, format.TypeI4, format.TypeI8:
		values, _ := it.IntValues()
		return appendInts(dst, values, it.Type().Width())

	case format.TypeU1, format.TypeU2, format.TypeU4, format.TypeU8:
		values, _ := it.UintValues()
		return appendUints(dst, values, it.Type().Width())

	case format.TypeF4:
		values, _ := it.FloatValues()
		for _, v := range values {
			dst = bigEndian.AppendUint32(dst, math.Float32bits(float32(v)))
		}

		return dst

	default: // format.TypeF8
		values, _ := it.FloatValues()
		for _, v := range values {
			dst = bigEndian.AppendUint64(dst, math.Float64bits(v))
		}

		return dst
	}
}

func appendInts(dst []byte, values []int64, width int) []byte {
	for _, v := range values {
		switch width {
		case 1:
			dst = append(dst, byte(v))
		case 2:
			dst = bigEndian.AppendUint16(dst, uint16(v)) //nolint:gosec
		case 4:
			dst = bigEndian.AppendUint32(dst, uint32(v)) //nolint:gosec
		default:
			dst = bigEndian.AppendUint64(dst, uint64(v)) //nolint:gosec
		}
	}

	return dst
}

func appendUints(dst []byte, values []uint64, width int) []byte {
	for _, v := range values {
		switch width {
		case 1:
			dst = append(dst, byte(v))
		case 2:
			dst = bigEndian.AppendUint16(dst, uint16(v)) //nolint:gosec
		case 4:
			dst = bigEndian.AppendUint32(dst, uint32(v)) //nolint:gosec
		default:
			dst = bigEndian.AppendUint64(dst, v)
		}
	}

	return dst
}

// decodeBody decodes the payload of a leaf item of the given type from the
// start of data. The payload occupies exactly length bytes.
//
// It fails with errs.ErrIncomplete when data holds fewer than length bytes
// and errs.ErrUnalignedLength when length is not a multiple of the element
// width. A zero length yields an empty item of the requested type.
func decodeBody(typ format.ItemType, data []byte, length int) (item.Item, error) {
	if len(data) < length {
		return item.Item{}, fmt.Errorf("%w: %s payload declares %d bytes, %d available",
			errs.ErrIncomplete, typ, length, len(data))
	}

	width := typ.Width()
	if length%width != 0 {
		return item.Item{}, fmt.Errorf("%w: %s payload length %d is not a multiple of %d",
			errs.ErrUnalignedLength, typ, length, width)
	}

	count := length / width
	payload := data[:length]

	switch typ {
	case format.TypeBinary:
		values := make([]byte, count)
		copy(values, payload)

		return item.NewBinary(values...), nil

	case format.TypeASCII:
		return item.NewASCII(string(payload)), nil

	case format.TypeBoolean:
		values := make([]bool, count)
		for i, b := range payload {
			// Any nonzero byte is true; the encoder only ever emits 0x00/0x01.
			values[i] = b != 0
		}

		return item.NewBoolean(values...), nil

	case format.TypeI1:
		values := make([]int8, count)
		for i := range count {
			values[i] = int8(payload[i]) //nolint:gosec
		}

		return item.NewI1(values...), nil

	case format.TypeI2:
		values := make([]int16, count)
		for i := range count {
			values[i] = int16(bigEndian.Uint16(payload[i*2:])) //nolint:gosec
		}

		return item.NewI2(values...), nil

	case format.TypeI4:
		values := make([]int32, count)
		for i := range count {
			values[i] = int32(bigEndian.Uint32(payload[i*4:])) //nolint:gosec
		}

		return item.NewI4(values...), nil

	case format.TypeI8:
		values := make([]int64, count)
		for i := range count {
			values[i] = int64(bigEndian.Uint64(payload[i*8:])) //nolint:gosec
		}

		return item.NewI8(values...), nil

	case format.TypeU1:
		values := make([]uint8, count)
		copy(values, payload)

		return item.NewU1(values...), nil

	case format.TypeU2:
		values := make([]uint16, count)
		for i := range count {
			values[i] = bigEndian.Uint16(payload[i*2:])
		}

		return item.NewU2(values...), nil

	case format.TypeU4:
		values := make([]uint32, count)
		for i := range count {
			values[i] = bigEndian.Uint32(payload[i*4:])
		}

		return item.NewU4(values...), nil

	case format.TypeU8:
		values := make([]uint64, count)
		for i := range count {
			values[i] = bigEndian.Uint64(payload[i*8:])
		}

		return item.NewU8(values...), nil

	case format.TypeF4:
		values := make([]float32, count)
		for i := range count {
			values[i] = math.Float32frombits(bigEndian.Uint32(payload[i*4:]))
		}

		return item.NewF4(values...), nil

	default: // format.TypeF8
		values := make([]float64, count)
		for i := range count {
			values[i] = math.Float64frombits(bigEndian.Uint64(payload[i*8:]))
		}

		return item.NewF8(values...), nil
	}
}
