// Package tag defines the in-memory model for the nbt tagged-tree format:
// a closed union of the 13 wire variants, a generic pre-order walker, and
// a pure text renderer for debugging.
//
// The model is deliberately value-based: variants are small structs, trees
// are plain nested slices, and equality is structural (reflect.DeepEqual
// or testify's Equal compare two trees correctly). Building a tree by hand
// for encoding looks like:
//
//	root := tag.Compound{Name: "Schematic", Items: []tag.Tag{
//	    tag.Short{Name: "Width", Value: 2},
//	    tag.ByteArray{Name: "Blocks", Value: blocks},
//	}}
//
// Decoding and encoding live in the encoding package; this package has no
// wire knowledge beyond the variant <-> identifier mapping in format.
package tag
