package codec

import "fmt"

// Decode reconstructs the pixel buffer from a QOI stream. The returned
// buffer holds desc.Width*desc.Height pixels of forcedChannels bytes
// each when forcedChannels is 3 or 4, or of the header's channel count
// when forcedChannels is 0.
//
// The decoder tracks the full RGBA value of every pixel regardless of
// the output layout; forcing 3 channels only drops alpha on output.
// A truncated chunk region is not an error: once the cursor reaches
// the padding boundary, the remaining pixels repeat the previous value.
func Decode(data []byte, forcedChannels int) ([]byte, Desc, error) {
	if forcedChannels != 0 && forcedChannels != 3 && forcedChannels != 4 {
		return nil, Desc{}, fmt.Errorf("%w: forced channels %d", ErrInvalidArgument, forcedChannels)
	}
	if len(data) < HeaderSize+PaddingSize {
		return nil, Desc{}, fmt.Errorf("%w: %d bytes", ErrShortStream, len(data))
	}
	desc, err := ParseHeader(data)
	if err != nil {
		return nil, Desc{}, err
	}

	channels := forcedChannels
	if channels == 0 {
		channels = int(desc.Channels)
	}
	out := make([]byte, int(desc.Width)*int(desc.Height)*channels)

	var index recencyIndex
	var px pixel // previous pixel, (0,0,0,0)
	run := 0
	pos := HeaderSize
	chunksEnd := len(data) - PaddingSize

	for off := 0; off < len(out); off += channels {
		if run > 0 {
			run--
		} else if pos < chunksEnd {
			b1 := data[pos]
			pos++
			// The full-byte RGB/RGBA tags fall inside the 11xxxxxx run
			// space, so they are tested before the 2-bit dispatch.
			switch {
			case b1 == opRGBA:
				px.r = data[pos]
				px.g = data[pos+1]
				px.b = data[pos+2]
				px.a = data[pos+3]
				pos += 4
			case b1 == opRGB:
				px.r = data[pos]
				px.g = data[pos+1]
				px.b = data[pos+2]
				pos += 3
			case b1&tagMask == opIndex:
				px = index[b1]
			case b1&tagMask == opDiff:
				px.r += (b1>>4)&0x03 - 2
				px.g += (b1>>2)&0x03 - 2
				px.b += b1&0x03 - 2
			case b1&tagMask == opLuma:
				b2 := data[pos]
				pos++
				vg := b1&0x3F - 32
				px.r += vg - 8 + (b2>>4)&0x0F
				px.g += vg
				px.b += vg - 8 + b2&0x0F
			default: // opRun
				run = int(b1 & 0x3F)
			}
			index[px.hash()] = px
		}

		out[off] = px.r
		out[off+1] = px.g
		out[off+2] = px.b
		if channels == 4 {
			out[off+3] = px.a
		}
	}

	return out, desc, nil
}
