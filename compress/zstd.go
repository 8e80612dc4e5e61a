package compress

// ZstdCompressor provides Zstandard compression for packs headed to cold
// storage or across constrained links, where ratio matters more than
// compression speed.
//
// The implementation is selected at build time: pure Go by default, the
// cgo libzstd bindings when built with the gozstd tag.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
