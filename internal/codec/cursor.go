package codec

import "encoding/binary"

// writer is a cursor over a pre-sized output buffer. The encoder
// allocates the worst-case buffer once, so every put is a plain
// bounds-checked store with no growth path in the hot loop.
type writer struct {
	buf []byte
	pos int
}

func (w *writer) putU8(v byte) {
	w.buf[w.pos] = v
	w.pos++
}

// putU32 writes v MSB-first and advances the cursor by 4.
func (w *writer) putU32(v uint32) {
	binary.BigEndian.PutUint32(w.buf[w.pos:], v)
	w.pos += 4
}

// bytes returns the written prefix of the buffer.
func (w *writer) bytes() []byte {
	return w.buf[:w.pos]
}

// reader is the symmetric cursor over an input buffer. ParseHeader
// uses it after checking that the whole header is present; the chunk
// loop in Decode indexes the input directly.
type reader struct {
	buf []byte
	pos int
}

func (r *reader) u8() byte {
	v := r.buf[r.pos]
	r.pos++
	return v
}

// u32 reads four bytes MSB-first and advances the cursor by 4.
func (r *reader) u32() uint32 {
	v := binary.BigEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}
