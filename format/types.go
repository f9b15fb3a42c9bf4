// Package format defines the SECS-II wire-level type constants shared by the
// item model, the codecs and the trace blob layer.
package format

type (
	ItemType        uint8
	CompressionType uint8
)

// MaxLength is the largest length a SECS-II item header can carry: the length
// field occupies at most three bytes, so 2^24-1.
const MaxLength = 0xFFFFFF

// Item format codes. Each value is the canonical 6-bit code that occupies the
// high six bits of the header's format byte (SEMI E5).
const (
	TypeList    ItemType = 0o00 // TypeList is an ordered sequence of child items.
	TypeBinary  ItemType = 0o10 // TypeBinary is a sequence of opaque octets.
	TypeBoolean ItemType = 0o11 // TypeBoolean is a sequence of truth values.
	TypeASCII   ItemType = 0o20 // TypeASCII is a character string.
	TypeI8      ItemType = 0o30 // TypeI8 is a sequence of signed 8-byte integers.
	TypeI1      ItemType = 0o31 // TypeI1 is a sequence of signed 1-byte integers.
	TypeI2      ItemType = 0o32 // TypeI2 is a sequence of signed 2-byte integers.
	TypeI4      ItemType = 0o34 // TypeI4 is a sequence of signed 4-byte integers.
	TypeF8      ItemType = 0o40 // TypeF8 is a sequence of IEEE-754 binary64 floats.
	TypeF4      ItemType = 0o44 // TypeF4 is a sequence of IEEE-754 binary32 floats.
	TypeU8      ItemType = 0o50 // TypeU8 is a sequence of unsigned 8-byte integers.
	TypeU1      ItemType = 0o51 // TypeU1 is a sequence of unsigned 1-byte integers.
	TypeU2      ItemType = 0o52 // TypeU2 is a sequence of unsigned 2-byte integers.
	TypeU4      ItemType = 0o54 // TypeU4 is a sequence of unsigned 4-byte integers.
)

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// ItemTypeFromCode maps a 6-bit format code to its ItemType.
// The second return value is false for codes outside the 14-entry table.
func ItemTypeFromCode(code byte) (ItemType, bool) {
	t := ItemType(code)
	return t, t.Valid()
}

// Valid reports whether t is one of the 14 wire variants.
func (t ItemType) Valid() bool {
	switch t {
	case TypeList, TypeBinary, TypeBoolean, TypeASCII,
		TypeI1, TypeI2, TypeI4, TypeI8,
		TypeU1, TypeU2, TypeU4, TypeU8,
		TypeF4, TypeF8:
		return true
	default:
		return false
	}
}

// Width returns the element width of t in bytes, or 0 for TypeList whose
// elements are child items rather than fixed-width scalars.
func (t ItemType) Width() int {
	switch t {
	case TypeBinary, TypeBoolean, TypeASCII, TypeI1, TypeU1:
		return 1
	case TypeI2, TypeU2:
		return 2
	case TypeI4, TypeU4, TypeF4:
		return 4
	case TypeI8, TypeU8, TypeF8:
		return 8
	default:
		return 0
	}
}

// Tag returns the SML tag for t, e.g. "L", "B", "A", "Boolean", "U2".
func (t ItemType) Tag() string {
	switch t {
	case TypeList:
		return "L"
	case TypeBinary:
		return "B"
	case TypeBoolean:
		return "Boolean"
	case TypeASCII:
		return "A"
	default:
		return t.String()
	}
}

func (t ItemType) String() string {
	switch t {
	case TypeList:
		return "List"
	case TypeBinary:
		return "Binary"
	case TypeBoolean:
		return "Boolean"
	case TypeASCII:
		return "ASCII"
	case TypeI1:
		return "I1"
	case TypeI2:
		return "I2"
	case TypeI4:
		return "I4"
	case TypeI8:
		return "I8"
	case TypeU1:
		return "U1"
	case TypeU2:
		return "U2"
	case TypeU4:
		return "U4"
	case TypeU8:
		return "U8"
	case TypeF4:
		return "F4"
	case TypeF8:
		return "F8"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
