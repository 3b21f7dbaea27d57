// Package codec implements the QOI byte-stream format: the 14-byte
// header, the six chunk operations, the greedy encoder state machine,
// and the symmetric decoder. Both sides share the pixel hash and the
// 64-slot recency index so their state stays bit-identical.
package codec

import "errors"

// Magic is the 4-byte signature that opens every QOI stream ("qoif").
const Magic = "qoif"

const (
	// HeaderSize is the fixed size of the stream header in bytes.
	HeaderSize = 14
	// PaddingSize is the number of mandatory zero bytes that terminate
	// a stream. The padding guarantees that the decoder can always read
	// a chunk's trailing payload bytes without a bounds check.
	PaddingSize = 8

	// MaxPixels caps width*height for both encode and decode, matching
	// the reference implementation's QOI_PIXELS_MAX. A forged header
	// cannot demand a multi-gigabyte allocation.
	MaxPixels = 400_000_000
)

// Colorspace values stored in the header. They are informational
// metadata only; the codec never consults them.
const (
	ColorspaceSRGB   = 0 // sRGB chroma with linear alpha
	ColorspaceLinear = 1 // all channels linear
)

// Chunk tags. opIndex through opRun occupy the top two bits of the
// first chunk byte; opRGB and opRGBA are full-byte tags carved out of
// the opRun space, so the decoder must test them first.
const (
	opIndex = 0x00 // 00xxxxxx
	opDiff  = 0x40 // 01xxxxxx
	opLuma  = 0x80 // 10xxxxxx
	opRun   = 0xC0 // 11xxxxxx
	opRGB   = 0xFE // 11111110
	opRGBA  = 0xFF // 11111111

	tagMask = 0xC0
)

// maxRun is the longest run a single QOI_OP_RUN chunk can express.
// Stored payloads 62 and 63 are reserved for the RGB and RGBA tags.
const maxRun = 62

// Errors returned by the codec core.
var (
	ErrInvalidArgument = errors.New("qoi: invalid argument")
	ErrInvalidHeader   = errors.New("qoi: invalid header")
	ErrShortStream     = errors.New("qoi: stream shorter than header and padding")
	ErrTooLarge        = errors.New("qoi: image exceeds pixel limit")
)

// MaxEncodedSize returns the worst-case encoded size for an image of
// the given dimensions: every pixel as a full RGB/RGBA chunk plus
// header and padding. The encoder allocates this bound up front and
// never reallocates.
func MaxEncodedSize(width, height uint32, channels uint8) int {
	return int(width) * int(height) * (int(channels) + 1) + HeaderSize + PaddingSize
}
