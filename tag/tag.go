package tag

import "github.com/voxelio/nbt/format"

// Tag is one node of a decoded tree: a typed, optionally named value.
//
// The set of implementations is closed: exactly the 13 wire variants
// (End, Byte, Short, Int, Long, Float, Double, ByteArray, String, List,
// Compound, IntArray, LongArray) satisfy it, and the unexported sealed
// method prevents implementations outside this package. Consumers dispatch
// with a type switch over the concrete variants; a switch listing all 13
// cases is exhaustive.
//
// A tree is built entirely by one decode call (or assembled by hand for
// encoding) and is treated as immutable afterwards. Children are owned by
// their parent container; trees are never shared or cyclic.
type Tag interface {
	// Type returns the variant's numeric wire identifier (0..12).
	Type() format.TagType
	// TagName returns the tag's name. The empty string represents an
	// unnamed tag; End and list elements are always unnamed.
	TagName() string

	sealed()
}

// End is the sentinel variant terminating a compound's child sequence on
// the wire. It carries no name and no payload and never appears as a
// standalone top-level value in a decoded tree.
type End struct{}

// Byte is a signed 8-bit integer tag.
type Byte struct {
	Name  string
	Value int8
}

// Short is a signed 16-bit integer tag.
type Short struct {
	Name  string
	Value int16
}

// Int is a signed 32-bit integer tag.
type Int struct {
	Name  string
	Value int32
}

// Long is a signed 64-bit integer tag.
type Long struct {
	Name  string
	Value int64
}

// Float is an IEEE 754 32-bit float tag.
type Float struct {
	Name  string
	Value float32
}

// Double is an IEEE 754 64-bit float tag.
type Double struct {
	Name  string
	Value float64
}

// ByteArray is a length-prefixed byte sequence tag.
type ByteArray struct {
	Name  string
	Value []byte
}

// String is a length-prefixed text tag.
//
// The wire format stores one byte per code point, not UTF-8. Value holds
// the raw wire bytes unmodified, so bytes >= 0x80 pass through encode and
// decode untouched. Callers that need printable output should escape
// through Dump rather than assume valid UTF-8.
type String struct {
	Name  string
	Value string
}

// List is a homogeneous tag sequence. Elem is the declared element type,
// retained even for an empty list; every element's Type() must equal Elem.
// format.TagEnd is a legal Elem only when Items is empty.
type List struct {
	Name  string
	Elem  format.TagType
	Items []Tag
}

// Compound is a heterogeneous ordered sequence of named tags. The wire
// terminator (End) is consumed during decode and never stored in Items.
type Compound struct {
	Name  string
	Items []Tag
}

// IntArray is a length-prefixed int32 sequence tag.
type IntArray struct {
	Name  string
	Value []int32
}

// LongArray is a length-prefixed int64 sequence tag.
type LongArray struct {
	Name  string
	Value []int64
}

func (End) Type() format.TagType       { return format.TagEnd }
func (Byte) Type() format.TagType      { return format.TagByte }
func (Short) Type() format.TagType     { return format.TagShort }
func (Int) Type() format.TagType       { return format.TagInt }
func (Long) Type() format.TagType      { return format.TagLong }
func (Float) Type() format.TagType     { return format.TagFloat }
func (Double) Type() format.TagType    { return format.TagDouble }
func (ByteArray) Type() format.TagType { return format.TagByteArray }
func (String) Type() format.TagType    { return format.TagString }
func (List) Type() format.TagType      { return format.TagList }
func (Compound) Type() format.TagType  { return format.TagCompound }
func (IntArray) Type() format.TagType  { return format.TagIntArray }
func (LongArray) Type() format.TagType { return format.TagLongArray }

func (End) TagName() string         { return "" }
func (t Byte) TagName() string      { return t.Name }
func (t Short) TagName() string     { return t.Name }
func (t Int) TagName() string       { return t.Name }
func (t Long) TagName() string      { return t.Name }
func (t Float) TagName() string     { return t.Name }
func (t Double) TagName() string    { return t.Name }
func (t ByteArray) TagName() string { return t.Name }
func (t String) TagName() string    { return t.Name }
func (t List) TagName() string      { return t.Name }
func (t Compound) TagName() string  { return t.Name }
func (t IntArray) TagName() string  { return t.Name }
func (t LongArray) TagName() string { return t.Name }

func (End) sealed()       {}
func (Byte) sealed()      {}
func (Short) sealed()     {}
func (Int) sealed()       {}
func (Long) sealed()      {}
func (Float) sealed()     {}
func (Double) sealed()    {}
func (ByteArray) sealed() {}
func (String) sealed()    {}
func (List) sealed()      {}
func (Compound) sealed()  {}
func (IntArray) sealed()  {}
func (LongArray) sealed() {}

// Child returns the first direct child of a Compound with the given name,
// or nil if absent. Lookup is a linear scan in decode order; the import
// path is one-shot, so no index is maintained.
func (t Compound) Child(name string) Tag {
	for _, c := range t.Items {
		if c.TagName() == name {
			return c
		}
	}

	return nil
}
