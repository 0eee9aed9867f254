package encoding

// DefaultMaxDepth is the decoder's default nesting limit. The wire format
// itself imposes no limit, so untrusted input could otherwise recurse
// until the goroutine stack blows up.
const DefaultMaxDepth = 512

// DecoderOption configures a Decoder.
type DecoderOption func(*Decoder)

// WithMaxDepth sets the maximum List/Compound nesting depth the decoder
// accepts before failing with errs.ErrDepthExceeded. Values below 1 are
// ignored and leave the default in place.
func WithMaxDepth(depth int) DecoderOption {
	return func(d *Decoder) {
		if depth >= 1 {
			d.maxDepth = depth
		}
	}
}
