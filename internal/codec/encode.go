package codec

import "fmt"

// Encode compresses a packed pixel buffer of exactly
// desc.Width*desc.Height*desc.Channels bytes into a QOI stream.
//
// The encoder is greedy and never looks ahead: for each pixel it emits
// the smallest chunk among run, index, diff, luma, and full RGB/RGBA,
// in that order of precedence. All channel arithmetic wraps modulo 256.
func Encode(pixels []byte, desc Desc) ([]byte, error) {
	if desc.Width == 0 || desc.Height == 0 {
		return nil, fmt.Errorf("%w: zero dimension %dx%d", ErrInvalidArgument, desc.Width, desc.Height)
	}
	if desc.Channels != 3 && desc.Channels != 4 {
		return nil, fmt.Errorf("%w: channels %d", ErrInvalidArgument, desc.Channels)
	}
	// Strict on encode: only the two defined colorspace values are
	// accepted, even though the decoder tolerates a third.
	if desc.Colorspace > ColorspaceLinear {
		return nil, fmt.Errorf("%w: colorspace %d", ErrInvalidArgument, desc.Colorspace)
	}
	if uint64(desc.Width)*uint64(desc.Height) > MaxPixels {
		return nil, fmt.Errorf("%w: %dx%d", ErrTooLarge, desc.Width, desc.Height)
	}
	channels := int(desc.Channels)
	if want := int(desc.Width) * int(desc.Height) * channels; len(pixels) != want {
		return nil, fmt.Errorf("%w: pixel buffer is %d bytes, want %d", ErrInvalidArgument, len(pixels), want)
	}

	w := writer{buf: make([]byte, MaxEncodedSize(desc.Width, desc.Height, desc.Channels))}
	putHeader(&w, desc)

	var index recencyIndex
	var prev pixel
	// Scratch pixel. Its alpha starts at 0 and is never written on the
	// 3-channel path, so 3-channel input hashes with alpha 0 for the
	// whole call. The decoder relies on this to stay in sync.
	var px pixel
	run := 0

	for off := 0; off < len(pixels); off += channels {
		px.r = pixels[off]
		px.g = pixels[off+1]
		px.b = pixels[off+2]
		if channels == 4 {
			px.a = pixels[off+3]
		}

		if px == prev {
			run++
			if run == maxRun || off+channels == len(pixels) {
				w.putU8(opRun | byte(run-1))
				run = 0
			}
			prev = px
			continue
		}
		if run > 0 {
			w.putU8(opRun | byte(run-1))
			run = 0
		}

		if h := px.hash(); index[h] == px {
			w.putU8(opIndex | byte(h))
		} else {
			index[h] = px
			if px.a == prev.a {
				// Wrapped byte differences, interpreted as signed
				// by biasing: vr in [-2,1] iff vr+2 in [0,3].
				vr := px.r - prev.r
				vg := px.g - prev.g
				vb := px.b - prev.b
				vgr := vr - vg
				vgb := vb - vg
				switch {
				case vr+2 <= 3 && vg+2 <= 3 && vb+2 <= 3:
					w.putU8(opDiff | (vr+2)<<4 | (vg+2)<<2 | (vb + 2))
				case vg+32 <= 63 && vgr+8 <= 15 && vgb+8 <= 15:
					w.putU8(opLuma | (vg + 32))
					w.putU8((vgr+8)<<4 | (vgb + 8))
				default:
					w.putU8(opRGB)
					w.putU8(px.r)
					w.putU8(px.g)
					w.putU8(px.b)
				}
			} else {
				w.putU8(opRGBA)
				w.putU8(px.r)
				w.putU8(px.g)
				w.putU8(px.b)
				w.putU8(px.a)
			}
		}
		prev = px
	}

	for i := 0; i < PaddingSize; i++ {
		w.putU8(0)
	}
	return w.bytes(), nil
}
