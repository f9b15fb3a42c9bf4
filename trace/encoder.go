package trace

import (
	"fmt"

	"github.com/arloliu/secs2/compress"
	"github.com/arloliu/secs2/encoding"
	"github.com/arloliu/secs2/format"
	"github.com/arloliu/secs2/internal/hash"
	"github.com/arloliu/secs2/internal/options"
	"github.com/arloliu/secs2/internal/pool"
	"github.com/arloliu/secs2/item"
)

// Encoder accumulates encoded messages into a trace blob.
//
// Messages are encoded as they are added, into a pooled buffer that is
// compressed once in Finish. An Encoder is not safe for concurrent use.
type Encoder struct {
	buf         *pool.ByteBuffer
	compression format.CompressionType
	count       int
}

// EncoderOption configures a new Encoder.
type EncoderOption = options.Option[*Encoder]

// WithCompression sets the payload codec. The default is
// format.CompressionNone.
func WithCompression(compression format.CompressionType) EncoderOption {
	return options.New(func(e *Encoder) error {
		if _, err := compress.GetCodec(compression); err != nil {
			return err
		}
		e.compression = compression

		return nil
	})
}

// NewEncoder creates a trace encoder.
//
// Returns an error if an option is invalid, e.g. an unsupported compression
// type.
func NewEncoder(opts ...EncoderOption) (*Encoder, error) {
	e := &Encoder{
		buf:         pool.GetTraceBuffer(),
		compression: format.CompressionNone,
	}

	if err := options.Apply(e, opts...); err != nil {
		pool.PutTraceBuffer(e.buf)
		return nil, err
	}

	return e, nil
}

// Add encodes msg and appends it to the trace.
//
// A failed encode (errs.ErrLengthOverflow) leaves the trace exactly as it
// was; the message codec's all-or-nothing append guarantees no partial
// bytes land in the payload.
//
// Panics if Finish has already been called.
func (e *Encoder) Add(msg item.Item) error {
	if e.buf == nil {
		panic("trace encoder already finished - cannot add after Finish()")
	}

	out, err := encoding.Append(e.buf.Bytes(), msg)
	if err != nil {
		return fmt.Errorf("failed to encode trace message %d: %w", e.count, err)
	}

	e.buf.SetBytes(out)
	e.count++

	return nil
}

// Count returns the number of messages added so far.
func (e *Encoder) Count() int {
	return e.count
}

// Finish compresses the payload, prepends the header and returns the
// complete blob. The encoder's buffer is returned to the pool; the encoder
// must not be used afterwards.
func (e *Encoder) Finish() ([]byte, error) {
	if e.buf == nil {
		panic("trace encoder already finished - cannot finish twice")
	}

	payload := e.buf.Bytes()

	header := Header{
		Version:      Version,
		Compression:  e.compression,
		MessageCount: uint32(e.count), //nolint:gosec
		Checksum:     hash.Sum(payload),
	}

	codec, err := compress.GetCodec(e.compression)
	if err != nil {
		return nil, err
	}

	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress trace payload: %w", err)
	}

	blob := make([]byte, 0, HeaderSize+len(compressed))
	blob = append(blob, header.Bytes()...)
	blob = append(blob, compressed...)

	pool.PutTraceBuffer(e.buf)
	e.buf = nil

	return blob, nil
}
