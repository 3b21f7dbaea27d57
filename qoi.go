package qoi

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"

	"github.com/deepteams/qoi/internal/codec"
)

func init() {
	image.RegisterFormat("qoi", codec.Magic, Decode, DecodeConfig)
}

// Errors returned by the decoder. Errors from DecodeRaw and Decode
// match these with errors.Is.
var (
	ErrInvalidHeader = codec.ErrInvalidHeader
	ErrShortStream   = codec.ErrShortStream
	ErrTooLarge      = codec.ErrTooLarge
)

// Features describes a QOI file's properties, as returned by [GetFeatures].
type Features struct {
	Width      int  // Image width in pixels.
	Height     int  // Image height in pixels.
	Channels   int  // Channel count stored in the header: 3 (RGB) or 4 (RGBA).
	Colorspace int  // ColorspaceSRGB or ColorspaceLinear. Informational only.
	HasAlpha   bool // True if the stream carries an alpha channel.
}

// readAll reads all data from r. If r implements Len() int (e.g.
// *bytes.Reader), a single exact-sized allocation is used instead of
// the repeated doublings that io.ReadAll performs.
func readAll(r io.Reader) ([]byte, error) {
	if lr, ok := r.(interface{ Len() int }); ok {
		n := lr.Len()
		if n > 0 {
			data := make([]byte, n)
			_, err := io.ReadFull(r, data)
			return data, err
		}
	}
	return io.ReadAll(r)
}

// Decode reads a QOI image from r and returns it as an *image.NRGBA.
// Images stored with 3 channels decode as fully opaque.
func Decode(r io.Reader) (image.Image, error) {
	data, err := readAll(r)
	if err != nil {
		return nil, fmt.Errorf("qoi: reading data: %w", err)
	}

	pix, desc, err := codec.Decode(data, 0)
	if err != nil {
		return nil, fmt.Errorf("qoi: decode: %w", err)
	}

	w, h := int(desc.Width), int(desc.Height)
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	if desc.Channels == 4 {
		copy(img.Pix, pix)
		return img, nil
	}
	// 3-channel stream: expand to opaque NRGBA.
	for src, dst := 0, 0; src < len(pix); src, dst = src+3, dst+4 {
		img.Pix[dst] = pix[src]
		img.Pix[dst+1] = pix[src+1]
		img.Pix[dst+2] = pix[src+2]
		img.Pix[dst+3] = 255
	}
	return img, nil
}

// DecodeConfig returns the color model and dimensions of a QOI image
// without decoding any pixel data.
func DecodeConfig(r io.Reader) (image.Config, error) {
	hdr := make([]byte, codec.HeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return image.Config{}, fmt.Errorf("qoi: reading header: %w", ErrShortStream)
		}
		return image.Config{}, fmt.Errorf("qoi: reading header: %w", err)
	}

	desc, err := codec.ParseHeader(hdr)
	if err != nil {
		return image.Config{}, fmt.Errorf("qoi: %w", err)
	}

	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(desc.Width),
		Height:     int(desc.Height),
	}, nil
}

// GetFeatures reads QOI features (dimensions, channels, colorspace)
// without decoding pixel data. It parses just the 14-byte header,
// making it much cheaper than a full [Decode].
func GetFeatures(r io.Reader) (*Features, error) {
	hdr := make([]byte, codec.HeaderSize)
	if _, err := io.ReadFull(r, hdr); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("qoi: reading header: %w", ErrShortStream)
		}
		return nil, fmt.Errorf("qoi: reading header: %w", err)
	}

	desc, err := codec.ParseHeader(hdr)
	if err != nil {
		return nil, fmt.Errorf("qoi: %w", err)
	}

	return &Features{
		Width:      int(desc.Width),
		Height:     int(desc.Height),
		Channels:   int(desc.Channels),
		Colorspace: int(desc.Colorspace),
		HasAlpha:   desc.Channels == 4,
	}, nil
}
