package compress

// ZstdCompressor provides Zstandard compression for trace payloads.
//
// Zstd trades compression speed for ratio, which suits archived capture
// sessions that are written once and replayed rarely. Two backends exist:
// the pure-Go klauspost implementation (default) and cgo gozstd behind the
// "gozstd" build tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
