package qoi

import (
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/deepteams/qoi/internal/codec"
	"github.com/deepteams/qoi/internal/pool"
)

// EncoderOptions controls QOI encoding parameters.
type EncoderOptions struct {
	// Channels selects the stored channel count: 3 (RGB) or 4 (RGBA).
	// The zero value auto-detects: 4 when the image has any non-opaque
	// pixel, 3 otherwise.
	Channels int

	// Colorspace is the colorspace tag written to the header,
	// ColorspaceSRGB (default) or ColorspaceLinear. Informational
	// metadata only; it does not affect the encoded pixel data.
	Colorspace int
}

// DefaultOptions returns encoding options with auto-detected channels
// and the sRGB colorspace tag.
func DefaultOptions() *EncoderOptions {
	return &EncoderOptions{
		Channels:   0,
		Colorspace: ColorspaceSRGB,
	}
}

// validateOptions rejects option values outside the format's ranges.
func validateOptions(opts *EncoderOptions) error {
	if opts.Channels != 0 && opts.Channels != 3 && opts.Channels != 4 {
		return fmt.Errorf("qoi: invalid Channels %d (must be 0, 3 or 4)", opts.Channels)
	}
	if opts.Colorspace != ColorspaceSRGB && opts.Colorspace != ColorspaceLinear {
		return fmt.Errorf("qoi: invalid Colorspace %d (must be 0 or 1)", opts.Colorspace)
	}
	return nil
}

// Encode writes the image img to w in QOI format.
// If opts is nil, DefaultOptions() is used.
// Returns an error if opts contains invalid parameter values or the
// image is empty or larger than MaxPixels.
func Encode(w io.Writer, img image.Image, opts *EncoderOptions) error {
	if opts == nil {
		opts = DefaultOptions()
	}
	if err := validateOptions(opts); err != nil {
		return err
	}

	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("qoi: empty image %dx%d", width, height)
	}

	channels := opts.Channels
	if channels == 0 {
		channels = 3
		if imageHasAlpha(img) {
			channels = 4
		}
	}

	pixels := packPixels(img, channels)
	defer pool.PutBuffer(pixels)
	data, err := codec.Encode(pixels, codec.Desc{
		Width:      uint32(width),
		Height:     uint32(height),
		Channels:   uint8(channels),
		Colorspace: uint8(opts.Colorspace),
	})
	if err != nil {
		return fmt.Errorf("qoi: encode: %w", err)
	}

	_, err = w.Write(data)
	return err
}

// imageHasAlpha reports whether img has any non-opaque pixel.
func imageHasAlpha(img image.Image) bool {
	if opaquer, ok := img.(interface{ Opaque() bool }); ok {
		return !opaquer.Opaque()
	}
	bounds := img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xFFFF {
				return true
			}
		}
	}
	return false
}

// packPixels converts img to a packed RGB or RGBA byte buffer in
// row-major order. QOI stores non-premultiplied values, so *image.RGBA
// sources are un-premultiplied; other source types go through
// color.NRGBAModel.
func packPixels(img image.Image, channels int) []byte {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	out := pool.GetBuffer(width * height * channels)

	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := 0; y < height; y++ {
			rowOff := (y+bounds.Min.Y-nrgba.Rect.Min.Y)*nrgba.Stride + (bounds.Min.X-nrgba.Rect.Min.X)*4
			dst := y * width * channels
			for x := 0; x < width; x++ {
				off := rowOff + x*4
				out[dst] = nrgba.Pix[off]
				out[dst+1] = nrgba.Pix[off+1]
				out[dst+2] = nrgba.Pix[off+2]
				if channels == 4 {
					out[dst+3] = nrgba.Pix[off+3]
				}
				dst += channels
			}
		}
		return out
	}

	if rgba, ok := img.(*image.RGBA); ok {
		for y := 0; y < height; y++ {
			rowOff := (y+bounds.Min.Y-rgba.Rect.Min.Y)*rgba.Stride + (bounds.Min.X-rgba.Rect.Min.X)*4
			dst := y * width * channels
			for x := 0; x < width; x++ {
				off := rowOff + x*4
				a := rgba.Pix[off+3]
				r, g, b := rgba.Pix[off], rgba.Pix[off+1], rgba.Pix[off+2]
				// Un-premultiply; QOI stores straight alpha.
				if a > 0 && a < 255 {
					a16 := uint16(a)
					r = uint8(uint16(r) * 255 / a16)
					g = uint8(uint16(g) * 255 / a16)
					b = uint8(uint16(b) * 255 / a16)
				}
				out[dst] = r
				out[dst+1] = g
				out[dst+2] = b
				if channels == 4 {
					out[dst+3] = a
				}
				dst += channels
			}
		}
		return out
	}

	dst := 0
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			out[dst] = c.R
			out[dst+1] = c.G
			out[dst+2] = c.B
			if channels == 4 {
				out[dst+3] = c.A
			}
			dst += channels
		}
	}
	return out
}
