// Package wire implements the binary encoding the generated Pack/Unpack
// methods rely on: little-endian, width-specific primitive encodings and
// int32 length prefixes for every array, enumerable, and string.
package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Writer accumulates a packed byte stream. The zero value is ready to use.
type Writer struct {
	buf bytes.Buffer
}

// NewWriter returns a ready-to-use Writer.
func NewWriter() *Writer { return &Writer{} }

// Bytes returns the accumulated buffer.
func (w *Writer) Bytes() []byte { return w.buf.Bytes() }

func (w *Writer) WriteBool(v bool) error {
	if v {
		return w.buf.WriteByte(1)
	}
	return w.buf.WriteByte(0)
}

func (w *Writer) WriteByte(v byte) error { return w.buf.WriteByte(v) }

func (w *Writer) WriteInt8(v int8) error { return w.buf.WriteByte(byte(v)) }

func (w *Writer) WriteInt16(v int16) error  { return binary.Write(&w.buf, binary.LittleEndian, v) }
func (w *Writer) WriteUint16(v uint16) error { return binary.Write(&w.buf, binary.LittleEndian, v) }
func (w *Writer) WriteInt32(v int32) error  { return binary.Write(&w.buf, binary.LittleEndian, v) }
func (w *Writer) WriteUint32(v uint32) error { return binary.Write(&w.buf, binary.LittleEndian, v) }
func (w *Writer) WriteInt64(v int64) error  { return binary.Write(&w.buf, binary.LittleEndian, v) }
func (w *Writer) WriteUint64(v uint64) error { return binary.Write(&w.buf, binary.LittleEndian, v) }

func (w *Writer) WriteFloat32(v float32) error { return binary.Write(&w.buf, binary.LittleEndian, v) }
func (w *Writer) WriteFloat64(v float64) error { return binary.Write(&w.buf, binary.LittleEndian, v) }

func (w *Writer) WriteRune(v rune) error { return w.WriteInt32(int32(v)) }

// WriteString writes an int32 byte-length prefix followed by the UTF-8
// bytes, the writer's native string encoding.
func (w *Writer) WriteString(v string) error {
	if err := w.WriteInt32(int32(len(v))); err != nil {
		return err
	}
	_, err := w.buf.WriteString(v)
	return err
}

// WriteBytes writes an int32 length prefix followed by the raw bytes in a
// single buffered write, the array-of-bytes fast path from §4.3 rule 6.
func (w *Writer) WriteBytes(v []byte) error {
	if err := w.WriteInt32(int32(len(v))); err != nil {
		return err
	}
	_, err := w.buf.Write(v)
	return err
}

// ErrDefaultReferenceValue is the runtime guard error for a reference-typed
// primitive (currently: string) left at its zero value on a non-nullable
// property, per §4.3 rule 3.
func ErrDefaultReferenceValue(property string) error {
	return fmt.Errorf("genpack: %s is empty; declare it as nullable (*string) if this is intentional", property)
}
