package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/secs2/format"
)

// samplePayload mimics a trace payload: repetitive message encodings.
func samplePayload() []byte {
	msg := []byte{
		0x01, 0x02,
		0xA5, 0x02, 0x01, 0x02,
		0x41, 0x03, 0x6D, 0x73, 0x67,
	}

	return bytes.Repeat(msg, 200)
}

func TestCodecs_RoundTrip(t *testing.T) {
	codecs := map[string]Codec{
		"NoOp": NewNoOpCompressor(),
		"Zstd": NewZstdCompressor(),
		"S2":   NewS2Compressor(),
		"LZ4":  NewLZ4Compressor(),
	}

	payload := samplePayload()

	for name, codec := range codecs {
		t.Run(name, func(t *testing.T) {
			compressed, err := codec.Compress(payload)
			require.NoError(t, err)

			decompressed, err := codec.Decompress(compressed)
			require.NoError(t, err)
			require.Equal(t, payload, decompressed)
		})
	}
}

func TestCodecs_CompressRepetitivePayload(t *testing.T) {
	payload := samplePayload()

	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(payload)
		require.NoError(t, err)
		require.Less(t, len(compressed), len(payload))
	}
}

func TestCodecs_EmptyInput(t *testing.T) {
	for _, codec := range []Codec{NewZstdCompressor(), NewS2Compressor(), NewLZ4Compressor()} {
		compressed, err := codec.Compress(nil)
		require.NoError(t, err)

		decompressed, err := codec.Decompress(compressed)
		require.NoError(t, err)
		require.Empty(t, decompressed)
	}
}

func TestNoOp_Passthrough(t *testing.T) {
	codec := NewNoOpCompressor()
	payload := samplePayload()

	compressed, err := codec.Compress(payload)
	require.NoError(t, err)
	require.Equal(t, payload, compressed)

	decompressed, err := codec.Decompress(compressed)
	require.NoError(t, err)
	require.Equal(t, payload, decompressed)
}

func TestZstd_CorruptedInput(t *testing.T) {
	_, err := NewZstdCompressor().Decompress([]byte{0xDE, 0xAD, 0xBE, 0xEF})
	require.Error(t, err)
}

func TestGetCodec(t *testing.T) {
	for _, compression := range []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	} {
		codec, err := GetCodec(compression)
		require.NoError(t, err)
		require.NotNil(t, codec)
	}

	_, err := GetCodec(format.CompressionType(0xEE))
	require.Error(t, err)
}
