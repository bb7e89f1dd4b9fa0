package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Reader consumes a packed byte stream produced by a Writer.
type Reader struct {
	buf *bytes.Reader
}

// NewReader wraps b for reading.
func NewReader(b []byte) *Reader { return &Reader{buf: bytes.NewReader(b)} }

func (r *Reader) ReadBool() (bool, error) {
	b, err := r.buf.ReadByte()
	return b != 0, err
}

func (r *Reader) ReadByte() (byte, error) { return r.buf.ReadByte() }

func (r *Reader) ReadInt8() (int8, error) {
	b, err := r.buf.ReadByte()
	return int8(b), err
}

func (r *Reader) ReadInt16() (v int16, err error) {
	err = binary.Read(r.buf, binary.LittleEndian, &v)
	return
}
func (r *Reader) ReadUint16() (v uint16, err error) {
	err = binary.Read(r.buf, binary.LittleEndian, &v)
	return
}
func (r *Reader) ReadInt32() (v int32, err error) {
	err = binary.Read(r.buf, binary.LittleEndian, &v)
	return
}
func (r *Reader) ReadUint32() (v uint32, err error) {
	err = binary.Read(r.buf, binary.LittleEndian, &v)
	return
}
func (r *Reader) ReadInt64() (v int64, err error) {
	err = binary.Read(r.buf, binary.LittleEndian, &v)
	return
}
func (r *Reader) ReadUint64() (v uint64, err error) {
	err = binary.Read(r.buf, binary.LittleEndian, &v)
	return
}
func (r *Reader) ReadFloat32() (v float32, err error) {
	err = binary.Read(r.buf, binary.LittleEndian, &v)
	return
}
func (r *Reader) ReadFloat64() (v float64, err error) {
	err = binary.Read(r.buf, binary.LittleEndian, &v)
	return
}

func (r *Reader) ReadRune() (rune, error) {
	v, err := r.ReadInt32()
	return rune(v), err
}

// ReadString reads an int32 byte-length prefix followed by that many UTF-8
// bytes.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return "", err
	}
	if n < 0 {
		return "", fmt.Errorf("genpack: negative string length %d", n)
	}
	buf := make([]byte, n)
	if _, err := r.buf.Read(buf); err != nil {
		return "", err
	}
	return string(buf), nil
}

// ReadBytes reads an int32 length prefix followed by that many raw bytes
// in a single buffered read.
func (r *Reader) ReadBytes() ([]byte, error) {
	n, err := r.ReadInt32()
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("genpack: negative array length %d", n)
	}
	buf := make([]byte, n)
	if n > 0 {
		if _, err := r.buf.Read(buf); err != nil {
			return nil, err
		}
	}
	return buf, nil
}
