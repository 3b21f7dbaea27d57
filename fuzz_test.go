package qoi

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

// addSeeds adds a few valid encoded streams to the fuzz corpus.
func addSeeds(f *testing.F) {
	f.Helper()
	imgs := []*image.NRGBA{
		image.NewNRGBA(image.Rect(0, 0, 1, 1)),
		image.NewNRGBA(image.Rect(0, 0, 8, 8)),
	}
	imgs[1].SetNRGBA(3, 3, color.NRGBA{R: 255, G: 128, B: 64, A: 200})
	for _, img := range imgs {
		var buf bytes.Buffer
		if err := Encode(&buf, img, nil); err == nil {
			f.Add(buf.Bytes())
		}
	}
	// Degenerate inputs.
	f.Add([]byte{})
	f.Add([]byte("qoif"))
	f.Add(bytes.Repeat([]byte{0xFF}, 64))
}

// FuzzDecode ensures that no input can cause a panic in the decoder.
func FuzzDecode(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		Decode(bytes.NewReader(data)) //nolint:errcheck
	})
}

// FuzzDecodeRaw exercises the raw API with every channel forcing mode.
func FuzzDecodeRaw(f *testing.F) {
	addSeeds(f)

	f.Fuzz(func(t *testing.T, data []byte) {
		for _, forced := range []int{0, 3, 4} {
			DecodeRaw(data, forced) //nolint:errcheck
		}
	})
}

// FuzzRoundtrip builds a small pixel buffer from fuzzer input, encodes
// it, and verifies the decode reproduces it exactly.
func FuzzRoundtrip(f *testing.F) {
	seed := make([]byte, 8*8*4+2)
	for i := range seed {
		seed[i] = byte(i * 3)
	}
	f.Add(seed)

	f.Fuzz(func(t *testing.T, data []byte) {
		if len(data) < 3 {
			return
		}
		w := int(data[0]%32) + 1
		h := int(data[1]%32) + 1
		channels := 3 + int(data[2]%2)
		pixData := data[3:]
		needed := w * h * channels
		if len(pixData) < needed {
			padded := make([]byte, needed)
			copy(padded, pixData)
			pixData = padded
		} else {
			pixData = pixData[:needed]
		}

		desc := Desc{Width: w, Height: h, Channels: channels, Colorspace: ColorspaceSRGB}
		encoded, err := EncodeRaw(pixData, desc)
		if err != nil {
			t.Fatalf("EncodeRaw(%dx%dx%d): %v", w, h, channels, err)
		}

		decoded, gotDesc, err := DecodeRaw(encoded, 0)
		if err != nil {
			t.Fatalf("roundtrip: EncodeRaw succeeded but DecodeRaw failed: %v", err)
		}
		if gotDesc != desc {
			t.Fatalf("roundtrip: desc mismatch: encoded %+v, decoded %+v", desc, gotDesc)
		}
		if !bytes.Equal(decoded, pixData) {
			t.Fatalf("roundtrip: pixel mismatch for %dx%dx%d", w, h, channels)
		}
	})
}
