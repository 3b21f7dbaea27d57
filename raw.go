package qoi

import (
	"fmt"
	"math"

	"github.com/deepteams/qoi/internal/codec"
)

// Colorspace values for [Desc] and [EncoderOptions]. The colorspace is
// informational metadata carried in the header; the codec never
// consults it.
const (
	ColorspaceSRGB   = codec.ColorspaceSRGB   // sRGB chroma with linear alpha
	ColorspaceLinear = codec.ColorspaceLinear // all channels linear
)

// MaxPixels is the largest width*height the codec accepts, for both
// encoding and decoding.
const MaxPixels = codec.MaxPixels

// Desc describes the dimensions and pixel layout of a raw image buffer.
type Desc struct {
	Width      int
	Height     int
	Channels   int // 3 (packed RGB) or 4 (packed RGBA)
	Colorspace int // ColorspaceSRGB or ColorspaceLinear
}

// EncodeRaw compresses a packed pixel buffer of exactly
// desc.Width*desc.Height*desc.Channels bytes into a complete QOI
// stream (header, chunks, padding).
//
// For 3-channel input the pixel alpha is treated as 0 throughout the
// call; DecodeRaw with forcedChannels 4 reproduces that 0, so raw
// round-trips are bit-exact in both layouts.
func EncodeRaw(pixels []byte, desc Desc) ([]byte, error) {
	cd, err := descToCodec(desc)
	if err != nil {
		return nil, err
	}
	data, err := codec.Encode(pixels, cd)
	if err != nil {
		return nil, fmt.Errorf("qoi: encode: %w", err)
	}
	return data, nil
}

// DecodeRaw decompresses a QOI stream into a packed pixel buffer and
// the stream's descriptor. forcedChannels selects the output layout:
// 0 keeps the header's channel count, 3 drops alpha, 4 always emits
// alpha (0 for pixels of a 3-channel stream).
func DecodeRaw(data []byte, forcedChannels int) ([]byte, Desc, error) {
	pix, cd, err := codec.Decode(data, forcedChannels)
	if err != nil {
		return nil, Desc{}, fmt.Errorf("qoi: decode: %w", err)
	}
	return pix, Desc{
		Width:      int(cd.Width),
		Height:     int(cd.Height),
		Channels:   int(cd.Channels),
		Colorspace: int(cd.Colorspace),
	}, nil
}

// descToCodec validates the ranges that do not survive the int→uint
// conversion and hands back the internal descriptor.
func descToCodec(d Desc) (codec.Desc, error) {
	if d.Width <= 0 || d.Height <= 0 || int64(d.Width) > math.MaxUint32 || int64(d.Height) > math.MaxUint32 {
		return codec.Desc{}, fmt.Errorf("%w: dimensions %dx%d", codec.ErrInvalidArgument, d.Width, d.Height)
	}
	if d.Channels != 3 && d.Channels != 4 {
		return codec.Desc{}, fmt.Errorf("%w: channels %d", codec.ErrInvalidArgument, d.Channels)
	}
	if d.Colorspace != ColorspaceSRGB && d.Colorspace != ColorspaceLinear {
		return codec.Desc{}, fmt.Errorf("%w: colorspace %d", codec.ErrInvalidArgument, d.Colorspace)
	}
	return codec.Desc{
		Width:      uint32(d.Width),
		Height:     uint32(d.Height),
		Channels:   uint8(d.Channels),
		Colorspace: uint8(d.Colorspace),
	}, nil
}
