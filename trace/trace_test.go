package trace

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/secs2/encoding"
	"github.com/arloliu/secs2/errs"
	"github.com/arloliu/secs2/format"
	"github.com/arloliu/secs2/internal/hash"
	"github.com/arloliu/secs2/item"
)

func captureMessages() []item.Item {
	return []item.Item{
		item.NewList(
			item.NewU1(1, 2),
			item.NewASCII("PP-SELECT"),
		),
		item.NewBoolean(true),
		item.NewList(),
		item.NewF8(36.6, 36.7),
	}
}

func TestEncoder_RoundTrip(t *testing.T) {
	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, compression := range compressions {
		t.Run(compression.String(), func(t *testing.T) {
			enc, err := NewEncoder(WithCompression(compression))
			require.NoError(t, err)

			messages := captureMessages()
			for _, msg := range messages {
				require.NoError(t, enc.Add(msg))
			}
			require.Equal(t, len(messages), enc.Count())

			blob, err := enc.Finish()
			require.NoError(t, err)

			dec, err := NewDecoder(blob)
			require.NoError(t, err)
			require.Equal(t, len(messages), dec.Count())
			require.Equal(t, compression, dec.Header().Compression)

			got, err := dec.Messages()
			require.NoError(t, err)
			require.Len(t, got, len(messages))
			for i, msg := range messages {
				require.True(t, got[i].Equal(msg), "message %d", i)
			}
		})
	}
}

func TestEncoder_EmptyTrace(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	blob, err := enc.Finish()
	require.NoError(t, err)
	require.Len(t, blob, HeaderSize)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)
	require.Equal(t, 0, dec.Count())

	got, err := dec.Messages()
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestEncoder_FailedAddLeavesTraceUnchanged(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	require.NoError(t, enc.Add(item.NewU1(1)))

	oversized := item.NewASCII(string(make([]byte, format.MaxLength+1)))
	require.ErrorIs(t, enc.Add(oversized), errs.ErrLengthOverflow)
	require.Equal(t, 1, enc.Count())

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)

	got, err := dec.Messages()
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.True(t, got[0].Equal(item.NewU1(1)))
}

func TestEncoder_InvalidCompression(t *testing.T) {
	_, err := NewEncoder(WithCompression(format.CompressionType(0xEE)))
	require.Error(t, err)
}

func TestEncoder_PanicsAfterFinish(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	_, err = enc.Finish()
	require.NoError(t, err)

	require.Panics(t, func() { _ = enc.Add(item.NewU1(1)) })
	require.Panics(t, func() { _, _ = enc.Finish() })
}

func TestDecoder_All(t *testing.T) {
	enc, err := NewEncoder(WithCompression(format.CompressionS2))
	require.NoError(t, err)

	messages := captureMessages()
	for _, msg := range messages {
		require.NoError(t, enc.Add(msg))
	}

	blob, err := enc.Finish()
	require.NoError(t, err)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)

	seen := 0
	for i, msg := range dec.All() {
		require.Equal(t, seen, i)
		require.True(t, msg.Equal(messages[i]))
		seen++
	}
	require.Equal(t, len(messages), seen)
}

func TestDecoder_HeaderValidation(t *testing.T) {
	t.Run("Short header", func(t *testing.T) {
		_, err := NewDecoder([]byte{0x5E})
		require.ErrorIs(t, err, errs.ErrInvalidHeaderSize)
	})

	t.Run("Bad magic", func(t *testing.T) {
		blob := validBlob(t)
		blob[0] = 0x00

		_, err := NewDecoder(blob)
		require.ErrorIs(t, err, errs.ErrInvalidMagic)
	})

	t.Run("Bad version", func(t *testing.T) {
		blob := validBlob(t)
		blob[2] = 0xEE

		_, err := NewDecoder(blob)
		require.ErrorIs(t, err, errs.ErrInvalidBlobVersion)
	})

	t.Run("Unsupported compression byte", func(t *testing.T) {
		blob := validBlob(t)
		blob[3] = 0xEE

		_, err := NewDecoder(blob)
		require.Error(t, err)
	})
}

func TestDecoder_ChecksumMismatch(t *testing.T) {
	blob := validBlob(t)

	// Flip one payload byte; the header checksum no longer matches.
	blob[HeaderSize] ^= 0xFF

	_, err := NewDecoder(blob)
	require.ErrorIs(t, err, errs.ErrChecksumMismatch)
}

func TestDecoder_TruncatedPayload(t *testing.T) {
	// Hand-built blob whose checksum is valid but whose payload ends
	// mid-message: a U2 header declaring 2 bytes with no body.
	payload := []byte{0xA9, 0x02}

	header := Header{
		Version:      Version,
		Compression:  format.CompressionNone,
		MessageCount: 1,
		Checksum:     hash.Sum(payload),
	}

	blob := append(header.Bytes(), payload...)

	dec, err := NewDecoder(blob)
	require.NoError(t, err)

	_, err = dec.Messages()
	require.ErrorIs(t, err, errs.ErrIncomplete)
}

func TestHeader_RoundTrip(t *testing.T) {
	original := Header{
		Version:      Version,
		Compression:  format.CompressionLZ4,
		MessageCount: 42,
		Checksum:     0xDEADBEEFCAFEBABE,
	}

	data := original.Bytes()
	require.Len(t, data, HeaderSize)

	parsed := Header{}
	require.NoError(t, parsed.Parse(data))
	require.Equal(t, original, parsed)
}

func validBlob(t *testing.T) []byte {
	t.Helper()

	enc, err := NewEncoder()
	require.NoError(t, err)
	require.NoError(t, enc.Add(item.NewASCII("probe")))

	blob, err := enc.Finish()
	require.NoError(t, err)

	return blob
}

func TestBlobLayout(t *testing.T) {
	enc, err := NewEncoder()
	require.NoError(t, err)

	msg := item.NewU1(7)
	require.NoError(t, enc.Add(msg))

	blob, err := enc.Finish()
	require.NoError(t, err)

	wire, err := encoding.Encode(msg)
	require.NoError(t, err)

	require.Equal(t, []byte{0x5E, 0x25}, blob[0:2], "magic")
	require.Equal(t, Version, blob[2])
	require.Equal(t, byte(format.CompressionNone), blob[3])
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x01}, blob[4:8], "message count")
	require.Equal(t, wire, blob[HeaderSize:], "uncompressed payload is the wire encoding")
}
