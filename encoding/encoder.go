package encoding

import (
	"fmt"
	"io"
	"math"

	"github.com/voxelio/nbt/endian"
	"github.com/voxelio/nbt/errs"
	"github.com/voxelio/nbt/format"
	"github.com/voxelio/nbt/internal/pool"
	"github.com/voxelio/nbt/tag"
)

const (
	maxStringLen = math.MaxUint16
	maxArrayLen  = math.MaxInt32
)

// Encoder writes nbt tag trees to a byte stream.
//
// The encoder is the exact byte-level mirror of the Decoder: for every
// valid tree T, decoding Encode(T)'s output yields a structurally equal
// tree, and encoding a decoded stream reproduces it byte for byte.
//
// Each Encode call assembles the full frame in a pooled buffer using the
// engine's append operations and flushes it to the writer once, so a
// failed encode writes nothing to the sink.
type Encoder struct {
	w      io.Writer
	engine endian.EndianEngine
	buf    *pool.ByteBuffer
}

// NewEncoder creates an encoder writing to w using the big-endian wire
// representation.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:      w,
		engine: endian.GetWireEngine(),
	}
}

// Encode emits one named top-level tag.
//
// Encoding tag.End at top level is permitted and degenerates to the single
// zero byte. Compound children are emitted as named tags followed by the
// terminator byte; list elements are emitted nameless and validated against
// the list's declared element type.
//
// Error conditions:
//   - errs.ErrElementTypeMismatch: a list element's type differs from the
//     declared element type, or a container holds the End sentinel
//   - errs.ErrStringTooLong: a name or String payload exceeds 65535 bytes
//   - errs.ErrInvalidLength: an array or list exceeds the 32-bit count
//
// Nothing is written to the sink when Encode returns an error.
func (e *Encoder) Encode(t tag.Tag) error {
	e.buf = pool.GetTagBuffer()
	defer func() {
		pool.PutTagBuffer(e.buf)
		e.buf = nil
	}()

	if err := e.encode(t, true); err != nil {
		return err
	}

	if _, err := e.w.Write(e.buf.Bytes()); err != nil {
		return fmt.Errorf("writing encoded tag: %w", err)
	}

	return nil
}

// encode emits one tag frame. When named is true the frame starts with the
// type-identifier byte and the 16-bit length-prefixed name; list elements
// pass named=false and emit neither.
func (e *Encoder) encode(t tag.Tag, named bool) error {
	typ := t.Type()

	if named {
		e.buf.MustWrite([]byte{byte(typ)})
		if typ == format.TagEnd {
			// The sentinel's frame is its type byte alone.
			return nil
		}
		if err := e.appendString(t.TagName(), "tag name"); err != nil {
			return err
		}
	}

	switch v := t.(type) {
	case tag.End:
		return nil

	case tag.Byte:
		e.buf.MustWrite([]byte{byte(v.Value)})

	case tag.Short:
		e.buf.B = e.engine.AppendUint16(e.buf.B, uint16(v.Value))

	case tag.Int:
		e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(v.Value))

	case tag.Long:
		e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(v.Value))

	case tag.Float:
		e.buf.B = e.engine.AppendUint32(e.buf.B, math.Float32bits(v.Value))

	case tag.Double:
		e.buf.B = e.engine.AppendUint64(e.buf.B, math.Float64bits(v.Value))

	case tag.ByteArray:
		if err := e.appendArrayLength(len(v.Value), "ByteArray"); err != nil {
			return err
		}
		e.buf.MustWrite(v.Value)

	case tag.String:
		return e.appendString(v.Value, "String payload")

	case tag.List:
		return e.encodeList(v)

	case tag.Compound:
		return e.encodeCompound(v)

	case tag.IntArray:
		if err := e.appendArrayLength(len(v.Value), "IntArray"); err != nil {
			return err
		}
		e.buf.Grow(4 * len(v.Value))
		for _, n := range v.Value {
			e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(n))
		}

	case tag.LongArray:
		if err := e.appendArrayLength(len(v.Value), "LongArray"); err != nil {
			return err
		}
		e.buf.Grow(8 * len(v.Value))
		for _, n := range v.Value {
			e.buf.B = e.engine.AppendUint64(e.buf.B, uint64(n))
		}
	}

	return nil
}

// encodeList emits the element-type byte, the 32-bit count, then each
// element nameless. Every element must match the declared type; a mismatch
// fails before anything reaches the sink, never a silent reinterpretation.
func (e *Encoder) encodeList(v tag.List) error {
	if len(v.Items) > 0 && v.Elem == format.TagEnd {
		return fmt.Errorf("%w: non-empty list of End", errs.ErrElementTypeMismatch)
	}
	for _, item := range v.Items {
		if item.Type() != v.Elem {
			return fmt.Errorf("%w: list of %s contains %s",
				errs.ErrElementTypeMismatch, v.Elem, item.Type())
		}
	}
	// The element type byte precedes the count on the wire.
	e.buf.MustWrite([]byte{byte(v.Elem)})
	if err := e.appendArrayLength(len(v.Items), "List"); err != nil {
		return err
	}

	for _, item := range v.Items {
		if err := e.encode(item, false); err != nil {
			return err
		}
	}

	return nil
}

// encodeCompound emits each child as a full named frame and closes the
// sequence with the terminator byte.
func (e *Encoder) encodeCompound(v tag.Compound) error {
	for _, child := range v.Items {
		if child.Type() == format.TagEnd {
			// An explicit End child would truncate the sequence mid-stream.
			return fmt.Errorf("%w: compound contains the End sentinel", errs.ErrElementTypeMismatch)
		}
		if err := e.encode(child, true); err != nil {
			return err
		}
	}
	e.buf.MustWrite([]byte{byte(format.TagEnd)})

	return nil
}

// appendString emits a 16-bit length prefix followed by the raw bytes.
// Bytes pass through verbatim; the wire stores one byte per code point.
func (e *Encoder) appendString(s, what string) error {
	if len(s) > maxStringLen {
		return fmt.Errorf("%w: %s is %d bytes", errs.ErrStringTooLong, what, len(s))
	}
	e.buf.Grow(2 + len(s))
	e.buf.B = e.engine.AppendUint16(e.buf.B, uint16(len(s)))
	e.buf.MustWrite([]byte(s))

	return nil
}

// appendArrayLength emits the 32-bit element count shared by arrays and
// list headers.
func (e *Encoder) appendArrayLength(n int, what string) error {
	if n > maxArrayLen {
		return fmt.Errorf("%w: %s has %d elements", errs.ErrInvalidLength, what, n)
	}
	e.buf.B = e.engine.AppendUint32(e.buf.B, uint32(n))

	return nil
}
