// Package compress provides the payload codecs used by the trace blob
// layer: Zstd, S2, LZ4 and a no-op passthrough.
//
// Trace payloads are concatenated SECS-II message encodings. They compress
// well: equipment sessions repeat stream/function shapes, ASCII fields and
// numeric headers over and over.
package compress

import (
	"fmt"

	"github.com/arloliu/secs2/format"
)

// Compressor compresses a complete payload in one call.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// The input slice is not modified. The returned slice is newly
	// allocated and owned by the caller, except for NoOpCompressor, which
	// returns the input slice itself. Internal buffers may be reused across
	// calls.
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original
	// result. It returns an error if the data is corrupted or was
	// compressed with an incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
// Implementations are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
