// Package trace frames sequences of encoded SECS-II messages into a single
// blob for capture and replay of equipment sessions.
//
// A blob is a fixed 16-byte header followed by the payload: the wire
// encodings of the captured messages back to back, in capture order,
// optionally compressed. The header records an xxHash64 checksum of the
// uncompressed payload, so replay detects corruption before any message is
// decoded.
//
// Capturing:
//
//	enc, _ := trace.NewEncoder(trace.WithCompression(format.CompressionZstd))
//	enc.Add(msg1)
//	enc.Add(msg2)
//	blob, _ := enc.Finish()
//
// Replaying:
//
//	dec, _ := trace.NewDecoder(blob)
//	for i, msg := range dec.All() {
//	    fmt.Println(i, sml.Render(msg))
//	}
package trace

import (
	"fmt"

	"github.com/arloliu/secs2/endian"
	"github.com/arloliu/secs2/errs"
	"github.com/arloliu/secs2/format"
)

const (
	// MagicNumber marks the start of a trace blob.
	MagicNumber uint16 = 0x5E25

	// Version is the current trace blob layout version.
	Version uint8 = 1

	// HeaderSize is the fixed size of the blob header in bytes.
	HeaderSize = 16
)

// blob header engine; all header fields are big-endian like the payload.
var engine = endian.GetBigEndianEngine()

// Header is the fixed-size section at the start of a trace blob.
type Header struct {
	// Version is the blob layout version. byte offset 2
	Version uint8
	// Compression identifies the payload codec. byte offset 3
	Compression format.CompressionType
	// MessageCount is the number of messages in the payload. byte offset 4-7
	MessageCount uint32
	// Checksum is the xxHash64 of the uncompressed payload. byte offset 8-15
	Checksum uint64
}

// Parse parses the header from the start of data.
//
// It fails with errs.ErrInvalidHeaderSize when data is shorter than
// HeaderSize, errs.ErrInvalidMagic on a wrong magic number and
// errs.ErrInvalidBlobVersion on an unsupported version.
func (h *Header) Parse(data []byte) error {
	if len(data) < HeaderSize {
		return errs.ErrInvalidHeaderSize
	}

	if magic := engine.Uint16(data[0:2]); magic != MagicNumber {
		return fmt.Errorf("%w: %#04x", errs.ErrInvalidMagic, magic)
	}

	h.Version = data[2]
	if h.Version != Version {
		return fmt.Errorf("%w: %d", errs.ErrInvalidBlobVersion, h.Version)
	}

	h.Compression = format.CompressionType(data[3])
	h.MessageCount = engine.Uint32(data[4:8])
	h.Checksum = engine.Uint64(data[8:16])

	return nil
}

// Bytes serializes the header into a byte slice of HeaderSize bytes.
func (h *Header) Bytes() []byte {
	b := make([]byte, 0, HeaderSize)

	b = engine.AppendUint16(b, MagicNumber)
	b = append(b, h.Version, byte(h.Compression))
	b = engine.AppendUint32(b, h.MessageCount)
	b = engine.AppendUint64(b, h.Checksum)

	return b
}
