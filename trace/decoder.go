package trace

import (
	"fmt"
	"iter"

	"github.com/arloliu/secs2/compress"
	"github.com/arloliu/secs2/encoding"
	"github.com/arloliu/secs2/errs"
	"github.com/arloliu/secs2/internal/hash"
	"github.com/arloliu/secs2/item"
)

// Decoder replays messages out of a trace blob.
//
// NewDecoder validates the header and checksum up front; message decoding
// happens on demand while iterating. A Decoder is safe for concurrent
// readers once constructed.
type Decoder struct {
	header  Header
	payload []byte // decompressed message payload
}

// NewDecoder parses and validates the blob header, decompresses the payload
// and verifies its checksum.
//
// Failures use the errs sentinels: ErrInvalidHeaderSize, ErrInvalidMagic,
// ErrInvalidBlobVersion and ErrChecksumMismatch.
func NewDecoder(data []byte) (*Decoder, error) {
	d := &Decoder{}

	if err := d.header.Parse(data); err != nil {
		return nil, err
	}

	codec, err := compress.GetCodec(d.header.Compression)
	if err != nil {
		return nil, err
	}

	payload, err := codec.Decompress(data[HeaderSize:])
	if err != nil {
		return nil, fmt.Errorf("failed to decompress trace payload: %w", err)
	}

	if sum := hash.Sum(payload); sum != d.header.Checksum {
		return nil, fmt.Errorf("%w: header %#016x, payload %#016x",
			errs.ErrChecksumMismatch, d.header.Checksum, sum)
	}

	d.payload = payload

	return d, nil
}

// Header returns the parsed blob header.
func (d *Decoder) Header() Header {
	return d.header
}

// Count returns the number of messages the blob declares.
func (d *Decoder) Count() int {
	return int(d.header.MessageCount)
}

// All iterates the blob's messages in capture order, yielding the message
// index and the decoded item. Iteration stops early if a message fails to
// decode; use Messages to observe the error.
func (d *Decoder) All() iter.Seq2[int, item.Item] {
	return func(yield func(int, item.Item) bool) {
		rest := d.payload
		for i := range d.Count() {
			msg, n, err := encoding.Decode(rest)
			if err != nil {
				return
			}

			if !yield(i, msg) {
				return
			}

			rest = rest[n:]
		}
	}
}

// Messages decodes and returns all messages in capture order.
//
// A payload that ends mid-message fails with errs.ErrIncomplete.
func (d *Decoder) Messages() ([]item.Item, error) {
	messages := make([]item.Item, 0, min(d.Count(), len(d.payload)/2))

	rest := d.payload
	for i := range d.Count() {
		msg, n, err := encoding.Decode(rest)
		if err != nil {
			return nil, fmt.Errorf("failed to decode trace message %d: %w", i, err)
		}

		messages = append(messages, msg)
		rest = rest[n:]
	}

	return messages, nil
}
