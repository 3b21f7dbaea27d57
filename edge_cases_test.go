package qoi

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/deepteams/qoi/internal/codec"
)

func TestEncodedSizeBounds(t *testing.T) {
	// 14 + 8 <= len <= 14 + 8 + w*h*(c+1) for every image.
	cases := []struct {
		name string
		img  *image.NRGBA
	}{
		{"1x1", makeNRGBA(1, 1, gradient)},
		{"single row", makeNRGBA(200, 1, gradient)},
		{"single column", makeNRGBA(1, 200, gradient)},
		{"uniform", makeNRGBA(64, 64, func(x, y int) color.NRGBA {
			return color.NRGBA{R: 9, G: 9, B: 9, A: 255}
		})},
		{"noisy", makeNRGBA(48, 48, func(x, y int) color.NRGBA {
			return color.NRGBA{
				R: uint8(x*37 + y*91),
				G: uint8(x*53 ^ y*29),
				B: uint8(x * y),
				A: 255,
			}
		})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			for _, channels := range []int{3, 4} {
				data := mustEncodeImage(t, tc.img, &EncoderOptions{Channels: channels})
				w, h := tc.img.Rect.Dx(), tc.img.Rect.Dy()
				min := codec.HeaderSize + codec.PaddingSize
				max := min + w*h*(channels+1)
				if len(data) < min || len(data) > max {
					t.Errorf("channels=%d: len = %d, want within [%d, %d]", channels, len(data), min, max)
				}
			}
		})
	}
}

// Runs are counted in scan order and cross row boundaries freely; the
// two layouts of the same 124 identical pixels encode identically past
// the header.
func TestRunsCrossRowBoundaries(t *testing.T) {
	uniform := func(x, y int) color.NRGBA {
		return color.NRGBA{R: 70, G: 80, B: 90, A: 255}
	}
	wide := mustEncodeImage(t, makeNRGBA(124, 1, uniform), &EncoderOptions{Channels: 4})
	grid := mustEncodeImage(t, makeNRGBA(4, 31, uniform), &EncoderOptions{Channels: 4})
	if !bytes.Equal(wide[codec.HeaderSize:], grid[codec.HeaderSize:]) {
		t.Error("chunk regions differ between 124x1 and 4x31 uniform images")
	}
}

func TestEncodeIsDeterministic(t *testing.T) {
	img := makeNRGBA(33, 21, gradient)
	a := mustEncodeImage(t, img, nil)
	b := mustEncodeImage(t, img, nil)
	if !bytes.Equal(a, b) {
		t.Error("two encodes of the same image differ")
	}
}

func TestRoundTripExtremeValues(t *testing.T) {
	// Channel values at both ends of the range, including alpha 0
	// pixels whose RGB must still survive the round trip.
	img := makeNRGBA(16, 4, func(x, y int) color.NRGBA {
		switch (x + y) % 4 {
		case 0:
			return color.NRGBA{R: 0, G: 0, B: 0, A: 0}
		case 1:
			return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
		case 2:
			return color.NRGBA{R: 255, G: 0, B: 255, A: 1}
		default:
			return color.NRGBA{R: 1, G: 254, B: 0, A: 254}
		}
	})
	data := mustEncodeImage(t, img, &EncoderOptions{Channels: 4})
	decoded, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(decoded.(*image.NRGBA).Pix, img.Pix) {
		t.Error("round trip mismatch for extreme channel values")
	}
}

func TestDecodeTrailingPaddingExact(t *testing.T) {
	// The last 8 bytes are padding, not chunks: a stream whose final
	// chunk lands exactly at the padding boundary decodes fully.
	data := mustEncodeImage(t, makeNRGBA(62, 1, func(x, y int) color.NRGBA {
		return color.NRGBA{A: 255}
	}), &EncoderOptions{Channels: 4})
	img, err := Decode(bytes.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 62 {
		t.Errorf("width = %d, want 62", b.Dx())
	}
}
