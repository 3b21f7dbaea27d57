package codec

import "fmt"

// Desc describes the dimensions and pixel layout of an image, as
// carried in the stream header.
type Desc struct {
	Width      uint32
	Height     uint32
	Channels   uint8 // 3 (RGB) or 4 (RGBA)
	Colorspace uint8 // ColorspaceSRGB or ColorspaceLinear; metadata only
}

// putHeader serializes the 14-byte header: magic, width, height
// (big-endian u32), channels, colorspace.
func putHeader(w *writer, d Desc) {
	w.putU8(Magic[0])
	w.putU8(Magic[1])
	w.putU8(Magic[2])
	w.putU8(Magic[3])
	w.putU32(d.Width)
	w.putU32(d.Height)
	w.putU8(d.Channels)
	w.putU8(d.Colorspace)
}

// ParseHeader reads and validates a stream header from the front of
// data. The colorspace check is deliberately lenient (values up to 2
// are accepted), matching the original decoder's behavior.
func ParseHeader(data []byte) (Desc, error) {
	if len(data) < HeaderSize {
		return Desc{}, fmt.Errorf("%w: %d bytes, need %d", ErrShortStream, len(data), HeaderSize)
	}
	r := reader{buf: data}
	if r.u32() != magicWord {
		return Desc{}, fmt.Errorf("%w: bad magic %q", ErrInvalidHeader, data[0:4])
	}
	d := Desc{
		Width:  r.u32(),
		Height: r.u32(),
	}
	d.Channels = r.u8()
	d.Colorspace = r.u8()

	if d.Width == 0 || d.Height == 0 {
		return Desc{}, fmt.Errorf("%w: zero dimension %dx%d", ErrInvalidHeader, d.Width, d.Height)
	}
	if d.Channels != 3 && d.Channels != 4 {
		return Desc{}, fmt.Errorf("%w: channels %d", ErrInvalidHeader, d.Channels)
	}
	if d.Colorspace > 2 {
		return Desc{}, fmt.Errorf("%w: colorspace %d", ErrInvalidHeader, d.Colorspace)
	}
	if uint64(d.Width)*uint64(d.Height) > MaxPixels {
		return Desc{}, fmt.Errorf("%w: %dx%d", ErrTooLarge, d.Width, d.Height)
	}
	return d, nil
}

// magicWord is Magic as a big-endian u32 ('q'<<24 | 'o'<<16 | 'i'<<8 | 'f').
const magicWord = 0x716F6966
