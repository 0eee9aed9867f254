// Package compress provides container codecs for compressed tag streams.
//
// Schematic files are almost never stored raw: the original tooling gzips
// them, some exporters use zlib, and newer pipelines use zstd or lz4
// frames. This package sits strictly at that container boundary — bytes
// are decompressed here before the tag decoder ever sees them, and the
// codec core remains compression-free.
//
// # Usage
//
// Auto-detect and unwrap a file before decoding:
//
//	raw, _ := os.ReadFile("build.schematic")
//	codec, err := compress.GetCodec(compress.Detect(raw))
//	if err != nil {
//	    return err
//	}
//	stream, err := codec.Decompress(raw)
//
// Detect recognizes containers by their magic bytes and reports
// format.CompressionNone for a bare tag stream, which GetCodec maps to a
// pass-through codec, so the same path handles every input.
//
// The Zstandard codec has two build-time backends: libzstd bindings when
// cgo is available, and a pure-Go implementation otherwise. All codecs are
// stateless values and safe for concurrent use.
package compress
