package encoding

import (
	"fmt"
	"slices"

	"github.com/arloliu/secs2/errs"
	"github.com/arloliu/secs2/format"
	"github.com/arloliu/secs2/internal/options"
	"github.com/arloliu/secs2/internal/pool"
	"github.com/arloliu/secs2/item"
)

// DefaultMaxDepth is the decoder's default list nesting limit. A hostile
// buffer can declare arbitrarily deep lists in a handful of bytes, so
// recursion is capped rather than left to exhaust the call stack.
const DefaultMaxDepth = 64

// minChildSize is the smallest wire size of any item: one format byte plus
// one length byte. Used to bound eager child allocation against declared
// counts the buffer cannot possibly satisfy.
const minChildSize = 2

type decodeConfig struct {
	maxDepth int
}

// DecodeOption configures a single Decode call.
type DecodeOption = options.Option[*decodeConfig]

// WithMaxDepth sets the list nesting limit for a Decode call. Depth must be
// positive; a message whose nesting exceeds the limit fails with
// errs.ErrTooDeep.
func WithMaxDepth(depth int) DecodeOption {
	return options.New(func(cfg *decodeConfig) error {
		if depth <= 0 {
			return fmt.Errorf("max depth must be positive, got %d", depth)
		}
		cfg.maxDepth = depth

		return nil
	})
}

// payloadLength returns the header length field for it: the payload byte
// count for leaves, the direct-child count for lists.
func payloadLength(it item.Item) int {
	if it.Type() == format.TypeList {
		return it.Size()
	}

	return it.Size() * it.Type().Width()
}

// EncodedSize returns the exact number of bytes Encode would produce for it.
// It fails with errs.ErrLengthOverflow when any node's length field exceeds
// format.MaxLength.
func EncodedSize(it item.Item) (int, error) {
	length := payloadLength(it)
	if length > format.MaxLength {
		return 0, fmt.Errorf("%w: %s length %d", errs.ErrLengthOverflow, it.Type(), length)
	}

	size := headerSize(length)
	if it.Type() != format.TypeList {
		return size + length, nil
	}

	children, _ := it.Children()
	for _, child := range children {
		childSize, err := EncodedSize(child)
		if err != nil {
			return 0, err
		}
		size += childSize
	}

	return size, nil
}

// Append encodes it and appends the wire bytes to dst, returning the
// extended slice.
//
// Append is all-or-nothing: on any failure dst is returned truncated to its
// pre-call length, even when child items of a list had already been written.
func Append(dst []byte, it item.Item) ([]byte, error) {
	mark := len(dst)

	out, err := appendItem(dst, it)
	if err != nil {
		return dst[:mark], err
	}

	return out, nil
}

func appendItem(dst []byte, it item.Item) ([]byte, error) {
	length := payloadLength(it)

	dst, err := AppendHeader(dst, it.Type(), length)
	if err != nil {
		return dst, err
	}

	if it.Type() != format.TypeList {
		return appendBody(dst, it), nil
	}

	children, _ := it.Children()
	for _, child := range children {
		dst, err = appendItem(dst, child)
		if err != nil {
			return dst, err
		}
	}

	return dst, nil
}

// Encode encodes it into a freshly allocated buffer holding exactly the
// wire bytes. The only failure is errs.ErrLengthOverflow, when some node's
// length field would not fit in three length bytes.
func Encode(it item.Item) ([]byte, error) {
	size, err := EncodedSize(it)
	if err != nil {
		return nil, err
	}

	buf := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(buf)

	buf.Grow(size)

	out, err := appendItem(buf.Bytes(), it)
	if err != nil {
		// EncodedSize already validated every node.
		return nil, err
	}
	buf.SetBytes(out)

	return slices.Clone(out), nil
}

// Decode decodes one message from the start of data and returns the item
// tree together with the number of bytes consumed. Bytes beyond the decoded
// message are ignored; the consumed count lets callers locate them.
//
// Failures use the errs sentinels: ErrIncomplete, ErrInvalidLengthByteCount,
// ErrUnknownType, ErrUnalignedLength and ErrTooDeep. The deepest failure is
// returned verbatim; nothing is remapped en route.
func Decode(data []byte, opts ...DecodeOption) (item.Item, int, error) {
	cfg := decodeConfig{maxDepth: DefaultMaxDepth}
	if err := options.Apply(&cfg, opts...); err != nil {
		return item.Item{}, 0, err
	}

	return decodeItem(data, 0, cfg.maxDepth)
}

func decodeItem(data []byte, depth, maxDepth int) (item.Item, int, error) {
	if depth >= maxDepth {
		return item.Item{}, 0, fmt.Errorf("%w: more than %d levels", errs.ErrTooDeep, maxDepth)
	}

	hdr, err := DecodeHeader(data)
	if err != nil {
		return item.Item{}, 0, err
	}

	rest := data[hdr.Size():]

	if hdr.Type != format.TypeList {
		it, err := decodeBody(hdr.Type, rest, hdr.Length)
		if err != nil {
			return item.Item{}, 0, err
		}

		return it, hdr.Size() + hdr.Length, nil
	}

	// Clamp the eager allocation: a hostile header can declare up to
	// 2^24-1 children without providing their bytes.
	children := make([]item.Item, 0, min(hdr.Length, len(rest)/minChildSize))
	consumed := hdr.Size()

	for range hdr.Length {
		child, n, err := decodeItem(rest, depth+1, maxDepth)
		if err != nil {
			return item.Item{}, 0, err
		}

		children = append(children, child)
		rest = rest[n:]
		consumed += n
	}

	return item.NewList(children...), consumed, nil
}
