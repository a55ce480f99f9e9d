// Package wire implements the minimal Wayland wire protocol needed to
// bind wl_display, wl_registry, wl_output and whichever workspace
// manager dialect the server advertises, and to exchange typed
// requests/events over that one multiplexed connection.
//
// This is the black-box transport boundary: a connection that
// delivers typed events for a set of bound object proxies and accepts
// typed requests. No public Go package binds the three workspace
// dialects this client speaks, so the codec for all of them -
// including the base objects - is owned here, rather than split
// between a third-party Wayland client library and a hand-rolled
// extension: a single socket can only have one reader/writer.
package wire

import (
	"encoding/binary"
	"fmt"
)

// Writer accumulates a single wire request's argument bytes in native
// Wayland wire order: 4-byte aligned, little-endian.
type Writer struct {
	buf []byte
}

func NewWriter() *Writer { return &Writer{} }

func (w *Writer) PutUint32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

func (w *Writer) PutInt32(v int32) { w.PutUint32(uint32(v)) }

// PutString writes a Wayland string argument: a uint32 length
// (including the trailing NUL), the bytes, the NUL, then padding to
// the next 4-byte boundary.
func (w *Writer) PutString(s string) {
	n := uint32(len(s) + 1)
	w.PutUint32(n)
	w.buf = append(w.buf, s...)
	w.buf = append(w.buf, 0)
	w.pad(int(n))
}

// PutArray writes a Wayland array argument: a uint32 byte length
// followed by the raw bytes, padded to a 4-byte boundary.
func (w *Writer) PutArray(data []byte) {
	w.PutUint32(uint32(len(data)))
	w.buf = append(w.buf, data...)
	w.pad(len(data))
}

func (w *Writer) pad(n int) {
	if rem := n % 4; rem != 0 {
		w.buf = append(w.buf, make([]byte, 4-rem)...)
	}
}

// Bytes returns the accumulated argument bytes.
func (w *Writer) Bytes() []byte { return w.buf }

// Reader decodes a single message body in arrival order.
type Reader struct {
	buf []byte
	off int
}

func NewReader(body []byte) *Reader { return &Reader{buf: body} }

func (r *Reader) Uint32() (uint32, error) {
	if r.off+4 > len(r.buf) {
		return 0, fmt.Errorf("wire: truncated uint32 at offset %d", r.off)
	}
	v := binary.LittleEndian.Uint32(r.buf[r.off:])
	r.off += 4
	return v, nil
}

func (r *Reader) Int32() (int32, error) {
	v, err := r.Uint32()
	return int32(v), err
}

func (r *Reader) String() (string, error) {
	n, err := r.Uint32()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	end := r.off + int(n)
	if end > len(r.buf) {
		return "", fmt.Errorf("wire: truncated string at offset %d", r.off)
	}
	s := string(r.buf[r.off : end-1]) // drop trailing NUL
	r.off = end
	r.skipPad(int(n))
	return s, nil
}

func (r *Reader) Array() ([]byte, error) {
	n, err := r.Uint32()
	if err != nil {
		return nil, err
	}
	end := r.off + int(n)
	if end > len(r.buf) {
		return nil, fmt.Errorf("wire: truncated array at offset %d", r.off)
	}
	data := append([]byte(nil), r.buf[r.off:end]...)
	r.off = end
	r.skipPad(int(n))
	return data, nil
}

func (r *Reader) skipPad(n int) {
	if rem := n % 4; rem != 0 {
		r.off += 4 - rem
	}
}

// Remaining reports whether unread bytes remain in the message body.
func (r *Reader) Remaining() int { return len(r.buf) - r.off }

// header is the 8-byte prefix of every Wayland message: the target
// object id, then opcode (low 16 bits) and total message size
// including this header (high 16 bits).
type header struct {
	ObjectID uint32
	Opcode   uint16
	Size     uint16
}

func encodeHeader(h header) []byte {
	var b [8]byte
	binary.LittleEndian.PutUint32(b[0:4], h.ObjectID)
	binary.LittleEndian.PutUint16(b[4:6], h.Opcode)
	binary.LittleEndian.PutUint16(b[6:8], h.Size)
	return b[:]
}

func decodeHeader(b []byte) header {
	return header{
		ObjectID: binary.LittleEndian.Uint32(b[0:4]),
		Opcode:   binary.LittleEndian.Uint16(b[4:6]),
		Size:     binary.LittleEndian.Uint16(b[6:8]),
	}
}
