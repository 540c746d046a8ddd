// Copyright (c) 2026 The Vela Authors
// SPDX-License-Identifier: MIT

package subs

import (
	"bytes"
	"encoding/binary"
)

// binWriter is a tiny length-prefixed binary encoder shared by
// serialize.go's section writers. Every multi-byte integer is written
// in the platform's native byte order, since a serialized Store is a
// same-machine artifact (a compiler's incremental-build cache), never
// a wire format crossing architectures.
type binWriter struct {
	buf bytes.Buffer
}

func (w *binWriter) u8(v uint8)   { w.buf.WriteByte(v) }
func (w *binWriter) u16(v uint16) { var b [2]byte; binary.NativeEndian.PutUint16(b[:], v); w.buf.Write(b[:]) }
func (w *binWriter) u32(v uint32) { var b [4]byte; binary.NativeEndian.PutUint32(b[:], v); w.buf.Write(b[:]) }
func (w *binWriter) u64(v uint64) { var b [8]byte; binary.NativeEndian.PutUint64(b[:], v); w.buf.Write(b[:]) }
func (w *binWriter) i32(v int32)  { w.u32(uint32(v)) }

func (w *binWriter) str(s string) {
	w.u32(uint32(len(s)))
	w.buf.WriteString(s)
}

func (w *binWriter) variable(v Variable) { w.u32(uint32(v)) }

func writeSlice[T any](w *binWriter, s Slice[T]) {
	w.u32(s.Start)
	w.u16(s.Length)
}

// binReader is binWriter's inverse. Every read method panics on a
// truncated buffer; Deserialize recovers the panic and turns it into
// an error, the same shape the teacher's own decode paths use for a
// malformed on-disk table.
type binReader struct {
	buf []byte
	pos int
}

func (r *binReader) need(n int) {
	if r.pos+n > len(r.buf) {
		panic("subs: truncated serialized store")
	}
}

func (r *binReader) u8() uint8 {
	r.need(1)
	v := r.buf[r.pos]
	r.pos++
	return v
}

func (r *binReader) u16() uint16 {
	r.need(2)
	v := binary.NativeEndian.Uint16(r.buf[r.pos:])
	r.pos += 2
	return v
}

func (r *binReader) u32() uint32 {
	r.need(4)
	v := binary.NativeEndian.Uint32(r.buf[r.pos:])
	r.pos += 4
	return v
}

func (r *binReader) u64() uint64 {
	r.need(8)
	v := binary.NativeEndian.Uint64(r.buf[r.pos:])
	r.pos += 8
	return v
}

func (r *binReader) i32() int32 { return int32(r.u32()) }

func (r *binReader) str() string {
	n := int(r.u32())
	r.need(n)
	s := string(r.buf[r.pos : r.pos+n])
	r.pos += n
	return s
}

func (r *binReader) variable() Variable { return Variable(r.u32()) }

func readSlice[T any](r *binReader) Slice[T] {
	start := r.u32()
	length := r.u16()
	return NewSlice[T](start, length)
}
