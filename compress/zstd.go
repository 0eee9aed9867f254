package compress

// ZstdCodec handles the Zstandard frame container used by newer exporters.
//
// Two implementations back this type, selected at build time:
//   - with cgo: valyala/gozstd (bindings to libzstd, fastest)
//   - without cgo: klauspost/compress/zstd (pure Go, portable)
//
// Both produce standard zstd frames, so data compressed by one build is
// decompressible by the other.
type ZstdCodec struct{}

var _ Codec = (*ZstdCodec)(nil)

// NewZstdCodec creates a new Zstandard codec with default settings.
func NewZstdCodec() ZstdCodec {
	return ZstdCodec{}
}
