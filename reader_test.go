package pack

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/packlab/pack/errs"
	"github.com/packlab/pack/format"
)

func TestReader_WireVectors(t *testing.T) {
	t.Run("bool true at id 1", func(t *testing.T) {
		r := NewBytesReader([]byte{0x38, 0x00})
		v, err := r.ReadBool(1)
		require.NoError(t, err)
		require.True(t, v)
		require.NoError(t, r.End())
	})

	t.Run("u32 77 at id 1", func(t *testing.T) {
		r := NewBytesReader([]byte{0xA8, 0x4D, 0x00})
		v, err := r.ReadU32(1)
		require.NoError(t, err)
		require.Equal(t, uint32(77), v)
	})

	t.Run("empty then non-empty string", func(t *testing.T) {
		r := NewBytesReader([]byte{0x80, 0x88, 0x02, 0x61, 0x62, 0x00})

		s, err := r.ReadStr(1)
		require.NoError(t, err)
		require.Equal(t, "", s)

		s, err = r.ReadStr(2)
		require.NoError(t, err)
		require.Equal(t, "ab", s)
	})

	t.Run("object with i32 -1", func(t *testing.T) {
		r := NewBytesReader([]byte{0x60, 0x44, 0x00, 0x00})
		require.NoError(t, r.ObjBegin(1))
		v, err := r.ReadI32(1)
		require.NoError(t, err)
		require.Equal(t, int32(-1), v)
		require.NoError(t, r.ObjEnd())
		require.NoError(t, r.End())
	})
}

func TestReader_ArrayIteration(t *testing.T) {
	r := NewBytesReader([]byte{0x10, 0x38, 0x30, 0x38, 0x00, 0x00})
	require.NoError(t, r.ArrayBegin(1))

	want := []bool{true, false, true}
	for i, expected := range want {
		ok, err := r.Next()
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, uint32(i+1), r.ID())
		require.Equal(t, format.TypeBool, r.Type())

		v, err := r.ReadBool(0)
		require.NoError(t, err)
		require.Equal(t, expected, v)
	}

	ok, err := r.Next()
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, uint32(IDNone), r.ID())

	require.NoError(t, r.ArrayEnd())
	require.NoError(t, r.End())
}

// buildSkipPack writes one field per id so individual ids can be cherry-picked.
func buildSkipPack(t *testing.T) []byte {
	t.Helper()

	return mustBytes(t, func(w *Writer) {
		require.NoError(t, w.ObjBegin(1))
		require.NoError(t, w.WriteStr(1, "nested"))
		require.NoError(t, w.ArrayBegin(2))
		require.NoError(t, w.WriteU32(0, 9))
		require.NoError(t, w.ArrayEnd())
		require.NoError(t, w.ObjEnd())
		require.NoError(t, w.WriteStr(2, "hello"))
		require.NoError(t, w.WriteU64(3, 1<<40))
		require.NoError(t, w.WriteBool(4, true))
		require.NoError(t, w.WriteBin(5, []byte{1, 2, 3}))
	})
}

func TestReader_SkipForward(t *testing.T) {
	// Each field read in isolation matches the value an in-order read
	// yields, regardless of what has to be skipped to reach it.
	data := buildSkipPack(t)

	t.Run("skip container to str", func(t *testing.T) {
		r := NewBytesReader(data)
		v, err := r.ReadStr(2)
		require.NoError(t, err)
		require.Equal(t, "hello", v)
	})

	t.Run("skip length-bearing to u64", func(t *testing.T) {
		r := NewBytesReader(data)
		v, err := r.ReadU64(3)
		require.NoError(t, err)
		require.Equal(t, uint64(1)<<40, v)
	})

	t.Run("skip everything to bin", func(t *testing.T) {
		r := NewBytesReader(data)
		v, err := r.ReadBin(5)
		require.NoError(t, err)
		require.Equal(t, []byte{1, 2, 3}, v)
		require.NoError(t, r.End())
	})

	t.Run("nested read then skip to bool", func(t *testing.T) {
		r := NewBytesReader(data)
		require.NoError(t, r.ObjBegin(1))
		s, err := r.ReadStr(1)
		require.NoError(t, err)
		require.Equal(t, "nested", s)
		require.NoError(t, r.ObjEnd()) // array at inner id 2 never read
		v, err := r.ReadBool(4)
		require.NoError(t, err)
		require.True(t, v)
		require.NoError(t, r.End())
	})
}

func TestReader_Defaults(t *testing.T) {
	epoch := time.Unix(0, 0)
	data := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.WriteU32(2, 7))
	})

	r := NewBytesReader(data)

	v, err := r.ReadU32Default(1, 42)
	require.NoError(t, err)
	require.Equal(t, uint32(42), v)

	present, err := r.ReadU32Default(2, 42)
	require.NoError(t, err)
	require.Equal(t, uint32(7), present)

	s, err := r.ReadStrDefault(3, "fallback")
	require.NoError(t, err)
	require.Equal(t, "fallback", s)

	b, err := r.ReadBinDefault(4)
	require.NoError(t, err)
	require.Nil(t, b)

	p, err := r.ReadPtrDefault(5)
	require.NoError(t, err)
	require.Zero(t, p)

	ts, err := r.ReadTimeDefault(6, epoch)
	require.NoError(t, err)
	require.True(t, ts.Equal(epoch))

	require.NoError(t, r.End())
}

func TestReader_DefaultRoundTrip(t *testing.T) {
	// A field elided by the writer reads back as the shared default.
	data := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.WriteI64Default(1, -5, -5))
		require.NoError(t, w.WriteBool(2, true))
	})

	r := NewBytesReader(data)

	v, err := r.ReadI64Default(1, -5)
	require.NoError(t, err)
	require.Equal(t, int64(-5), v)

	b, err := r.ReadBool(2)
	require.NoError(t, err)
	require.True(t, b)
}

func TestReader_Null(t *testing.T) {
	data := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.WriteBool(1, true))
		require.NoError(t, w.WriteU32(3, 7))
	})

	r := NewBytesReader(data)

	null, err := r.Null(1)
	require.NoError(t, err)
	require.False(t, null)

	// Peeking does not consume: the field is still readable.
	v, err := r.ReadBool(1)
	require.NoError(t, err)
	require.True(t, v)

	null, err = r.Null(2)
	require.NoError(t, err)
	require.True(t, null)

	null, err = r.Null(3)
	require.NoError(t, err)
	require.False(t, null)

	u, err := r.ReadU32(3)
	require.NoError(t, err)
	require.Equal(t, uint32(7), u)

	// Past the last field everything is null.
	null, err = r.Null(9)
	require.NoError(t, err)
	require.True(t, null)
}

func TestReader_FormatErrors(t *testing.T) {
	t.Run("type mismatch", func(t *testing.T) {
		r := NewBytesReader([]byte{0xA8, 0x4D, 0x00})
		_, err := r.ReadStr(1)
		require.ErrorIs(t, err, errs.ErrTypeMismatch)
	})

	t.Run("field does not exist", func(t *testing.T) {
		r := NewBytesReader([]byte{0x38, 0x00})
		_, err := r.ReadBool(2)
		require.ErrorIs(t, err, errs.ErrFieldNotFound)
	})

	t.Run("field already read", func(t *testing.T) {
		r := NewBytesReader([]byte{0x38, 0x00})
		_, err := r.ReadBool(1)
		require.NoError(t, err)
		_, err = r.ReadBool(1)
		require.ErrorIs(t, err, errs.ErrFieldAlreadyRead)
	})

	t.Run("truncated value varint", func(t *testing.T) {
		r := NewBytesReader([]byte{0xA8})
		_, err := r.ReadU32(1)
		require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
	})

	t.Run("truncated payload", func(t *testing.T) {
		// str tag claiming 5 bytes with only 2 behind it.
		r := NewBytesReader([]byte{0x88, 0x05, 0x61, 0x62})
		_, err := r.ReadStr(1)
		require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
	})

	t.Run("missing terminator", func(t *testing.T) {
		r := NewBytesReader([]byte{0x38})
		_, err := r.ReadBool(1)
		require.NoError(t, err)
		require.ErrorIs(t, r.End(), errs.ErrUnexpectedEOF)
	})

	t.Run("array end at root", func(t *testing.T) {
		r := NewBytesReader([]byte{0x00})
		require.ErrorIs(t, r.ArrayEnd(), errs.ErrNotInArray)
	})

	t.Run("object end inside array", func(t *testing.T) {
		r := NewBytesReader([]byte{0x10, 0x00, 0x00})
		require.NoError(t, r.ArrayBegin(1))
		require.ErrorIs(t, r.ObjEnd(), errs.ErrNotInObject)
	})
}

func TestReader_EndDrainsOpenFrames(t *testing.T) {
	data := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.ObjBegin(1))
		require.NoError(t, w.ArrayBegin(1))
		require.NoError(t, w.WriteStr(0, "deep"))
		require.NoError(t, w.ArrayEnd())
		require.NoError(t, w.WriteU64(2, 99))
		require.NoError(t, w.ObjEnd())
		require.NoError(t, w.WriteBool(2, true))
	})

	r := NewBytesReader(data)
	require.NoError(t, r.ObjBegin(1))
	require.NoError(t, r.ArrayBegin(1))

	// Abandon both frames and the trailing fields.
	require.NoError(t, r.End())

	// The reader is inert afterwards.
	_, err := r.ReadBool(1)
	require.ErrorIs(t, err, errs.ErrUnexpectedEOF)
}
