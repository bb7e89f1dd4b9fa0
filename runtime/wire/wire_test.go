package wire

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriterReaderPrimitives(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBool(true))
	require.NoError(t, w.WriteByte(0xAB))
	require.NoError(t, w.WriteInt8(-12))
	require.NoError(t, w.WriteInt16(-1000))
	require.NoError(t, w.WriteUint16(1000))
	require.NoError(t, w.WriteInt32(-100000))
	require.NoError(t, w.WriteUint32(100000))
	require.NoError(t, w.WriteInt64(-1 << 40))
	require.NoError(t, w.WriteUint64(1 << 40))
	require.NoError(t, w.WriteFloat32(3.5))
	require.NoError(t, w.WriteFloat64(-2.25))
	require.NoError(t, w.WriteRune('λ'))
	require.NoError(t, w.WriteString("héllo"))
	require.NoError(t, w.WriteBytes([]byte{1, 2, 3}))

	r := NewReader(w.Bytes())

	b, err := r.ReadBool()
	require.NoError(t, err)
	require.True(t, b)

	by, err := r.ReadByte()
	require.NoError(t, err)
	require.Equal(t, byte(0xAB), by)

	i8, err := r.ReadInt8()
	require.NoError(t, err)
	require.Equal(t, int8(-12), i8)

	i16, err := r.ReadInt16()
	require.NoError(t, err)
	require.Equal(t, int16(-1000), i16)

	u16, err := r.ReadUint16()
	require.NoError(t, err)
	require.Equal(t, uint16(1000), u16)

	i32, err := r.ReadInt32()
	require.NoError(t, err)
	require.Equal(t, int32(-100000), i32)

	u32, err := r.ReadUint32()
	require.NoError(t, err)
	require.Equal(t, uint32(100000), u32)

	i64, err := r.ReadInt64()
	require.NoError(t, err)
	require.Equal(t, int64(-1<<40), i64)

	u64, err := r.ReadUint64()
	require.NoError(t, err)
	require.Equal(t, uint64(1<<40), u64)

	f32, err := r.ReadFloat32()
	require.NoError(t, err)
	require.Equal(t, float32(3.5), f32)

	f64, err := r.ReadFloat64()
	require.NoError(t, err)
	require.Equal(t, float64(-2.25), f64)

	rn, err := r.ReadRune()
	require.NoError(t, err)
	require.Equal(t, 'λ', rn)

	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "héllo", s)

	bs, err := r.ReadBytes()
	require.NoError(t, err)
	require.Equal(t, []byte{1, 2, 3}, bs)
}

func TestWriteStringEmptyRoundTrips(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteString(""))
	r := NewReader(w.Bytes())
	s, err := r.ReadString()
	require.NoError(t, err)
	require.Equal(t, "", s)
}

func TestReadBytesEmpty(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteBytes(nil))
	r := NewReader(w.Bytes())
	b, err := r.ReadBytes()
	require.NoError(t, err)
	require.Empty(t, b)
}

func TestReadStringNegativeLength(t *testing.T) {
	w := NewWriter()
	require.NoError(t, w.WriteInt32(-5))
	r := NewReader(w.Bytes())
	_, err := r.ReadString()
	require.Error(t, err)
}

func TestReadPastEndOfBuffer(t *testing.T) {
	r := NewReader([]byte{1})
	_, err := r.ReadInt64()
	require.Error(t, err)
}

func TestErrDefaultReferenceValue(t *testing.T) {
	err := ErrDefaultReferenceValue("name")
	require.ErrorContains(t, err, "name")
	require.ErrorContains(t, err, "nullable")
}
