package encoding

import (
	"fmt"
	"io"
	"math"

	"github.com/voxelio/nbt/endian"
	"github.com/voxelio/nbt/errs"
	"github.com/voxelio/nbt/format"
	"github.com/voxelio/nbt/tag"
)

// maxPrealloc caps the element storage reserved up front for arrays and
// lists. A forged multi-gigabyte length then fails with ErrUnexpectedEOF
// after a bounded allocation instead of exhausting memory, since storage
// only grows as payload bytes actually arrive.
const maxPrealloc = 1 << 16

// Decoder reads nbt tag trees from a byte stream.
//
// The decoder is a recursive-descent reader over an io.Reader: one Decode
// call consumes exactly one named top-level tag and everything it nests,
// and leaves the stream positioned on the byte after it. Failures abort
// the whole decode and surface a single typed error; no partial tree is
// returned.
//
// A Decoder owns no shared state, so decoding independent streams from
// separate Decoders is safe concurrently. A single Decoder (and its
// underlying stream) must not be used from multiple goroutines.
type Decoder struct {
	r        io.Reader
	engine   endian.EndianEngine
	maxDepth int
	scratch  [8]byte
}

// NewDecoder creates a decoder reading from r.
//
// The wire format is big-endian regardless of host byte order; the decoder
// always uses the big-endian engine.
//
// Parameters:
//   - r: Byte source positioned at the start of a named tag
//   - opts: Optional configuration (see WithMaxDepth)
//
// Returns:
//   - *Decoder: A decoder ready to read one or more top-level tags
func NewDecoder(r io.Reader, opts ...DecoderOption) *Decoder {
	d := &Decoder{
		r:        r,
		engine:   endian.GetWireEngine(),
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Decode reads one named top-level tag from the stream.
//
// The named path reads a type-identifier byte, then a 16-bit length-prefixed
// name, then the payload. Type 0 (End) short-circuits after the single type
// byte and yields the bare sentinel; every other tag carries its full frame.
//
// Error conditions:
//   - errs.ErrUnexpectedEOF: stream exhausted mid-structure
//   - errs.ErrUnknownTagType: type identifier outside 0..12
//   - errs.ErrInvalidLength: negative array length, or elements declared
//     for a list of End
//   - errs.ErrDepthExceeded: nesting beyond the configured limit
func (d *Decoder) Decode() (tag.Tag, error) {
	return d.decodeNamed(0)
}

// decodeNamed reads a full named tag frame: type byte, name, payload.
// Compound children decode through here; the terminator returns tag.End.
func (d *Decoder) decodeNamed(depth int) (tag.Tag, error) {
	typ, err := d.readType("tag type")
	if err != nil {
		return nil, err
	}
	if typ == format.TagEnd {
		// The sentinel consumes only its type byte: no name, no payload.
		return tag.End{}, nil
	}

	name, err := d.readString("tag name")
	if err != nil {
		return nil, err
	}

	return d.decodePayload(typ, name, depth)
}

// decodeElement reads a nameless tag whose type is fixed by the enclosing
// list's header.
func (d *Decoder) decodeElement(typ format.TagType, depth int) (tag.Tag, error) {
	if typ == format.TagEnd {
		return tag.End{}, nil
	}

	return d.decodePayload(typ, "", depth)
}

func (d *Decoder) decodePayload(typ format.TagType, name string, depth int) (tag.Tag, error) {
	switch typ {
	case format.TagByte:
		b, err := d.readByte("Byte payload")
		if err != nil {
			return nil, err
		}

		return tag.Byte{Name: name, Value: int8(b)}, nil

	case format.TagShort:
		v, err := d.readUint16("Short payload")
		if err != nil {
			return nil, err
		}

		return tag.Short{Name: name, Value: int16(v)}, nil

	case format.TagInt:
		v, err := d.readUint32("Int payload")
		if err != nil {
			return nil, err
		}

		return tag.Int{Name: name, Value: int32(v)}, nil

	case format.TagLong:
		v, err := d.readUint64("Long payload")
		if err != nil {
			return nil, err
		}

		return tag.Long{Name: name, Value: int64(v)}, nil

	case format.TagFloat:
		v, err := d.readUint32("Float payload")
		if err != nil {
			return nil, err
		}

		return tag.Float{Name: name, Value: math.Float32frombits(v)}, nil

	case format.TagDouble:
		v, err := d.readUint64("Double payload")
		if err != nil {
			return nil, err
		}

		return tag.Double{Name: name, Value: math.Float64frombits(v)}, nil

	case format.TagByteArray:
		n, err := d.readArrayLength("ByteArray")
		if err != nil {
			return nil, err
		}
		data, err := d.readBytes(n, "ByteArray payload")
		if err != nil {
			return nil, err
		}

		return tag.ByteArray{Name: name, Value: data}, nil

	case format.TagString:
		s, err := d.readString("String payload")
		if err != nil {
			return nil, err
		}

		return tag.String{Name: name, Value: s}, nil

	case format.TagList:
		return d.decodeList(name, depth)

	case format.TagCompound:
		return d.decodeCompound(name, depth)

	case format.TagIntArray:
		n, err := d.readArrayLength("IntArray")
		if err != nil {
			return nil, err
		}
		vals := make([]int32, 0, min(n, maxPrealloc/4))
		for i := 0; i < n; i++ {
			v, err := d.readUint32("IntArray element")
			if err != nil {
				return nil, err
			}
			vals = append(vals, int32(v))
		}

		return tag.IntArray{Name: name, Value: vals}, nil

	case format.TagLongArray:
		n, err := d.readArrayLength("LongArray")
		if err != nil {
			return nil, err
		}
		vals := make([]int64, 0, min(n, maxPrealloc/8))
		for i := 0; i < n; i++ {
			v, err := d.readUint64("LongArray element")
			if err != nil {
				return nil, err
			}
			vals = append(vals, int64(v))
		}

		return tag.LongArray{Name: name, Value: vals}, nil

	default:
		return nil, fmt.Errorf("%w: %d", errs.ErrUnknownTagType, typ)
	}
}

// decodeList reads the list header (element type byte + uint32 count) and
// then count nameless element decodes, each forced to the declared type.
func (d *Decoder) decodeList(name string, depth int) (tag.Tag, error) {
	if depth >= d.maxDepth {
		return nil, fmt.Errorf("%w: limit %d", errs.ErrDepthExceeded, d.maxDepth)
	}

	elem, err := d.readType("list element type")
	if err != nil {
		return nil, err
	}

	count64, err := d.readUint32("list count")
	if err != nil {
		return nil, err
	}
	count := int(count64)

	// End is a legal element type only when the list is empty; a nonzero
	// count of End elements cannot exist on the wire.
	if elem == format.TagEnd && count != 0 {
		return nil, fmt.Errorf("%w: list of End declares %d elements", errs.ErrInvalidLength, count)
	}

	items := make([]tag.Tag, 0, min(count, maxPrealloc/16))
	for i := 0; i < count; i++ {
		item, err := d.decodeElement(elem, depth+1)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return tag.List{Name: name, Elem: elem, Items: items}, nil
}

// decodeCompound reads full named child decodes until one of them is the
// End sentinel. The terminator is consumed but never stored.
func (d *Decoder) decodeCompound(name string, depth int) (tag.Tag, error) {
	if depth >= d.maxDepth {
		return nil, fmt.Errorf("%w: limit %d", errs.ErrDepthExceeded, d.maxDepth)
	}

	var items []tag.Tag
	for {
		child, err := d.decodeNamed(depth + 1)
		if err != nil {
			return nil, err
		}
		if _, done := child.(tag.End); done {
			return tag.Compound{Name: name, Items: items}, nil
		}
		items = append(items, child)
	}
}

// readType reads and validates one type-identifier byte. On an invalid
// identifier exactly that single byte has been consumed.
func (d *Decoder) readType(what string) (format.TagType, error) {
	b, err := d.readByte(what)
	if err != nil {
		return 0, err
	}
	typ := format.TagType(b)
	if !typ.IsValid() {
		return 0, fmt.Errorf("%w: %d", errs.ErrUnknownTagType, b)
	}

	return typ, nil
}

// readString reads a 16-bit length prefix followed by that many raw bytes.
// The bytes are kept verbatim: the wire stores one byte per code point and
// is never reinterpreted as UTF-8.
func (d *Decoder) readString(what string) (string, error) {
	n, err := d.readUint16(what + " length")
	if err != nil {
		return "", err
	}
	data, err := d.readBytes(int(n), what)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// readArrayLength reads the signed 32-bit element count preceding arrays.
func (d *Decoder) readArrayLength(what string) (int, error) {
	v, err := d.readUint32(what + " length")
	if err != nil {
		return 0, err
	}
	n := int32(v)
	if n < 0 {
		return 0, fmt.Errorf("%w: %s length %d", errs.ErrInvalidLength, what, n)
	}

	return int(n), nil
}

func (d *Decoder) readByte(what string) (byte, error) {
	if err := d.readFull(d.scratch[:1], what); err != nil {
		return 0, err
	}

	return d.scratch[0], nil
}

func (d *Decoder) readUint16(what string) (uint16, error) {
	if err := d.readFull(d.scratch[:2], what); err != nil {
		return 0, err
	}

	return d.engine.Uint16(d.scratch[:2]), nil
}

func (d *Decoder) readUint32(what string) (uint32, error) {
	if err := d.readFull(d.scratch[:4], what); err != nil {
		return 0, err
	}

	return d.engine.Uint32(d.scratch[:4]), nil
}

func (d *Decoder) readUint64(what string) (uint64, error) {
	if err := d.readFull(d.scratch[:8], what); err != nil {
		return 0, err
	}

	return d.engine.Uint64(d.scratch[:8]), nil
}

// readBytes reads exactly n bytes, growing the result in bounded chunks so
// a forged length cannot force a huge up-front allocation.
func (d *Decoder) readBytes(n int, what string) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}

	out := make([]byte, 0, min(n, maxPrealloc))
	remaining := n
	for remaining > 0 {
		chunk := min(remaining, maxPrealloc)
		start := len(out)
		out = append(out, make([]byte, chunk)...)
		if err := d.readFull(out[start:], what); err != nil {
			return nil, err
		}
		remaining -= chunk
	}

	return out, nil
}

func (d *Decoder) readFull(buf []byte, what string) error {
	if _, err := io.ReadFull(d.r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return fmt.Errorf("%w: reading %s", errs.ErrUnexpectedEOF, what)
		}

		return fmt.Errorf("reading %s: %w", what, err)
	}

	return nil
}
