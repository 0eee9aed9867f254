package format

type (
	TagType         uint8
	CompressionType uint8
)

const (
	TagEnd       TagType = 0  // TagEnd terminates a compound's child sequence.
	TagByte      TagType = 1  // TagByte is a signed 8-bit integer.
	TagShort     TagType = 2  // TagShort is a signed 16-bit integer.
	TagInt       TagType = 3  // TagInt is a signed 32-bit integer.
	TagLong      TagType = 4  // TagLong is a signed 64-bit integer.
	TagFloat     TagType = 5  // TagFloat is an IEEE 754 32-bit float.
	TagDouble    TagType = 6  // TagDouble is an IEEE 754 64-bit float.
	TagByteArray TagType = 7  // TagByteArray is a length-prefixed byte sequence.
	TagString    TagType = 8  // TagString is a length-prefixed single-byte string.
	TagList      TagType = 9  // TagList is a homogeneous tag sequence.
	TagCompound  TagType = 10 // TagCompound is a heterogeneous named tag sequence.
	TagIntArray  TagType = 11 // TagIntArray is a length-prefixed int32 sequence.
	TagLongArray TagType = 12 // TagLongArray is a length-prefixed int64 sequence.

	CompressionNone CompressionType = 0x1 // CompressionNone represents an uncompressed container.
	CompressionGzip CompressionType = 0x2 // CompressionGzip represents a gzip container.
	CompressionZlib CompressionType = 0x3 // CompressionZlib represents a zlib container.
	CompressionZstd CompressionType = 0x4 // CompressionZstd represents a Zstandard container.
	CompressionLZ4  CompressionType = 0x5 // CompressionLZ4 represents an LZ4 frame container.
)

// MaxTagType is the largest valid wire identifier.
const MaxTagType = TagLongArray

// IsValid reports whether t is one of the 13 wire identifiers (0..12).
func (t TagType) IsValid() bool {
	return t <= MaxTagType
}

// IsScalar reports whether t carries a fixed-width payload (1..6).
func (t TagType) IsScalar() bool {
	return t >= TagByte && t <= TagDouble
}

// ScalarSize returns the payload width in bytes for scalar types,
// and 0 for every other type.
func (t TagType) ScalarSize() int {
	switch t {
	case TagByte:
		return 1
	case TagShort:
		return 2
	case TagInt, TagFloat:
		return 4
	case TagLong, TagDouble:
		return 8
	default:
		return 0
	}
}

func (t TagType) String() string {
	switch t {
	case TagEnd:
		return "End"
	case TagByte:
		return "Byte"
	case TagShort:
		return "Short"
	case TagInt:
		return "Int"
	case TagLong:
		return "Long"
	case TagFloat:
		return "Float"
	case TagDouble:
		return "Double"
	case TagByteArray:
		return "ByteArray"
	case TagString:
		return "String"
	case TagList:
		return "List"
	case TagCompound:
		return "Compound"
	case TagIntArray:
		return "IntArray"
	case TagLongArray:
		return "LongArray"
	default:
		return "Unknown"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionGzip:
		return "Gzip"
	case CompressionZlib:
		return "Zlib"
	case CompressionZstd:
		return "Zstd"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
