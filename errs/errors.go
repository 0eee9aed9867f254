// Package errs defines the sentinel errors shared across the nbt module.
//
// All errors returned by the codec wrap one of these sentinels with
// fmt.Errorf("%w: ...") so callers can classify failures with errors.Is
// while still receiving contextual detail in the message.
package errs

import "errors"

var (
	// ErrUnexpectedEOF indicates the byte stream ended in the middle of a
	// structure (a header, a name, or a payload).
	ErrUnexpectedEOF = errors.New("unexpected end of stream")

	// ErrUnknownTagType indicates a type identifier outside 0..12, either
	// for a tag itself or for a list's declared element type.
	ErrUnknownTagType = errors.New("unknown tag type")

	// ErrInvalidLength indicates a negative array length on decode, or an
	// array/list too large to represent on the wire on encode.
	ErrInvalidLength = errors.New("invalid length")

	// ErrStringTooLong indicates a name or string payload exceeding the
	// 16-bit length prefix on encode.
	ErrStringTooLong = errors.New("string exceeds 16-bit length prefix")

	// ErrElementTypeMismatch indicates a list whose contents do not all
	// match its declared element type on encode.
	ErrElementTypeMismatch = errors.New("list element type mismatch")

	// ErrDepthExceeded indicates nesting beyond the decoder's depth limit.
	ErrDepthExceeded = errors.New("maximum nesting depth exceeded")

	// ErrNotASchematic indicates the decoded root is not a compound named
	// "Schematic".
	ErrNotASchematic = errors.New("root tag is not a schematic")

	// ErrMissingField indicates a required schematic field is absent from
	// the root compound.
	ErrMissingField = errors.New("missing required field")

	// ErrWrongFieldType indicates a schematic field is present but carries
	// the wrong tag variant.
	ErrWrongFieldType = errors.New("field has wrong tag type")

	// ErrSizeMismatch indicates schematic block arrays whose length does
	// not equal Width*Height*Length.
	ErrSizeMismatch = errors.New("block array size mismatch")

	// ErrOutOfBounds indicates a schematic coordinate outside the declared
	// dimensions.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
