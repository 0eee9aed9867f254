// Package nbt implements a codec for the NBT tagged-tree binary format:
// a compact, self-describing representation of typed, named data used by
// schematic and world files.
//
// # Core Features
//
//   - Closed tag model of the 13 wire variants (tag package)
//   - Recursive-descent decoder with a configurable nesting limit
//   - Symmetric encoder: decode(encode(T)) == T for every valid tree
//   - Fixed big-endian wire representation, independent of host byte order
//   - Container codecs for gzip/zlib/zstd/lz4-wrapped files (compress package)
//   - Schematic extraction and placement walk (schematic package)
//
// # Basic Usage
//
// Decoding a schematic file and placing its blocks:
//
//	import (
//	    "github.com/voxelio/nbt"
//	    "github.com/voxelio/nbt/schematic"
//	)
//
//	raw, _ := os.ReadFile("castle.schematic")
//	root, err := nbt.DecodeCompressed(raw)
//	if err != nil {
//	    return err
//	}
//	sch, err := schematic.FromTag(root)
//	if err != nil {
//	    return err
//	}
//	err = sch.Place(schematic.Origin{X: px, Y: py, Z: pz},
//	    func(x, y, z int, id, data byte) error {
//	        return world.PlaceBlock(x, y, z, id, data)
//	    })
//
// Building and encoding a tree by hand:
//
//	root := tag.Compound{Name: "Schematic", Items: []tag.Tag{
//	    tag.Short{Name: "Width", Value: 1},
//	    tag.Short{Name: "Height", Value: 1},
//	    tag.Short{Name: "Length", Value: 1},
//	    tag.ByteArray{Name: "Blocks", Value: []byte{1}},
//	    tag.ByteArray{Name: "Data", Value: []byte{0}},
//	}}
//	data, err := nbt.EncodeBytes(root)
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the encoding,
// compress and tag packages, simplifying the most common use cases. For
// fine-grained control (streaming into an existing writer, custom depth
// limits), use those packages directly.
package nbt

import (
	"bytes"
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"

	"github.com/voxelio/nbt/compress"
	"github.com/voxelio/nbt/encoding"
	"github.com/voxelio/nbt/tag"
)

// Decode reads one named top-level tag from r.
//
// Parameters:
//   - r: Byte source positioned at the start of a named tag
//   - opts: Optional decoder configuration (encoding.WithMaxDepth)
//
// Returns:
//   - tag.Tag: The decoded tree, exclusively owned by the caller
//   - error: A typed decode error; no partial tree is returned on failure
func Decode(r io.Reader, opts ...encoding.DecoderOption) (tag.Tag, error) {
	return encoding.NewDecoder(r, opts...).Decode()
}

// DecodeBytes reads one named top-level tag from an in-memory stream.
func DecodeBytes(data []byte, opts ...encoding.DecoderOption) (tag.Tag, error) {
	return Decode(bytes.NewReader(data), opts...)
}

// DecodeCompressed unwraps a possibly-compressed container and decodes the
// tag stream inside it. The container type is sniffed from the leading
// magic bytes; bare tag streams pass through unchanged. This is the usual
// entry point for schematic files, which are gzip-wrapped in the wild.
func DecodeCompressed(data []byte, opts ...encoding.DecoderOption) (tag.Tag, error) {
	codec, err := compress.GetCodec(compress.Detect(data))
	if err != nil {
		return nil, err
	}
	stream, err := codec.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("unwrapping container: %w", err)
	}

	return DecodeBytes(stream, opts...)
}

// Encode writes t to w as one named top-level tag.
func Encode(w io.Writer, t tag.Tag) error {
	return encoding.NewEncoder(w).Encode(t)
}

// EncodeBytes encodes t and returns the wire bytes.
func EncodeBytes(t tag.Tag) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, t); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Fingerprint returns the 64-bit xxHash of t's canonical encoding.
//
// Structurally equal trees always hash equal, which makes the fingerprint
// usable as a cheap identity for caching or change detection without
// keeping the encoded bytes around. Trees that cannot be encoded (for
// example a heterogeneous list) return the encoder's error.
func Fingerprint(t tag.Tag) (uint64, error) {
	data, err := EncodeBytes(t)
	if err != nil {
		return 0, err
	}

	return xxhash.Sum64(data), nil
}
