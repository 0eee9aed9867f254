// Package encoding implements the nbt wire codec: a recursive-descent
// Decoder reading a typed tag tree from a byte stream, and the symmetric
// Encoder writing a tree back out.
//
// # Wire format
//
// Big-endian throughout, independent of host byte order:
//
//	type identifier   1 byte        0..12
//	name length       2 bytes       only when the tag is named
//	name bytes        variable      one byte per code point
//	scalar payload    1/2/4/8       per variant width
//	array length      4 bytes       signed element count
//	string length     2 bytes       unsigned byte count
//	list header       1 + 4 bytes   element type, unsigned count
//	compound end      1 byte        the zero sentinel
//
// Top-level tags and compound children are named; list elements are not,
// because their type is fixed by the enclosing list's header.
//
// # Failure model
//
// Decode and encode are all-or-nothing: any failure aborts the operation
// and surfaces one typed error (see the errs package), with no partial
// tree and no partial write. Nesting depth of untrusted input is bounded
// by a configurable limit (WithMaxDepth, default 512).
package encoding
