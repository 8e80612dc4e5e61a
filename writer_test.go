package pack

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// mustBytes runs ops against a fresh buffer writer, finalizes, and returns
// the encoded pack.
func mustBytes(t *testing.T, ops func(w *Writer)) []byte {
	t.Helper()

	w, err := NewBufferWriter()
	require.NoError(t, err)
	ops(w)
	require.NoError(t, w.End())

	return w.Bytes()
}

func TestWriter_WireVectors(t *testing.T) {
	t.Run("bool true at id 1", func(t *testing.T) {
		got := mustBytes(t, func(w *Writer) {
			require.NoError(t, w.WriteBool(1, true))
		})
		require.Equal(t, []byte{0x38, 0x00}, got)
	})

	t.Run("u32 zero at id 1", func(t *testing.T) {
		got := mustBytes(t, func(w *Writer) {
			require.NoError(t, w.WriteU32(1, 0))
		})
		require.Equal(t, []byte{0xA0, 0x00}, got)
	})

	t.Run("u32 77 at id 1", func(t *testing.T) {
		got := mustBytes(t, func(w *Writer) {
			require.NoError(t, w.WriteU32(1, 77))
		})
		require.Equal(t, []byte{0xA8, 0x4D, 0x00}, got)
	})

	t.Run("empty then non-empty string", func(t *testing.T) {
		got := mustBytes(t, func(w *Writer) {
			require.NoError(t, w.WriteStr(1, ""))
			require.NoError(t, w.WriteStr(2, "ab"))
		})
		require.Equal(t, []byte{0x80, 0x88, 0x02, 0x61, 0x62, 0x00}, got)
	})

	t.Run("object with i32 -1", func(t *testing.T) {
		got := mustBytes(t, func(w *Writer) {
			require.NoError(t, w.ObjBegin(1))
			require.NoError(t, w.WriteI32(1, -1))
			require.NoError(t, w.ObjEnd())
		})
		require.Equal(t, []byte{0x60, 0x44, 0x00, 0x00}, got)
	})

	t.Run("array of three bools", func(t *testing.T) {
		got := mustBytes(t, func(w *Writer) {
			require.NoError(t, w.ArrayBegin(1))
			require.NoError(t, w.WriteBool(0, true))
			require.NoError(t, w.WriteBool(0, false))
			require.NoError(t, w.WriteBool(0, true))
			require.NoError(t, w.ArrayEnd())
		})
		require.Equal(t, []byte{0x10, 0x38, 0x30, 0x38, 0x00, 0x00}, got)
	})
}

func TestWriter_DefaultElision(t *testing.T) {
	got := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.WriteU32Default(1, 0, 0))
		require.NoError(t, w.WriteBoolDefault(2, false, false))
		require.NoError(t, w.WriteStrDefault(3, "", ""))
		require.NoError(t, w.WriteBinDefault(4, nil))
		require.NoError(t, w.WritePtrDefault(5, 0))
	})

	// Every field held its default: only the root terminator remains.
	require.Equal(t, []byte{0x00}, got)
}

func TestWriter_NullCoalescing(t *testing.T) {
	// N explicit nulls followed by a write at the implied id produce the
	// same bytes as one explicit write at last+N+1.
	coalesced := mustBytes(t, func(w *Writer) {
		w.WriteNull()
		w.WriteNull()
		require.NoError(t, w.WriteBool(0, true))
	})

	explicit := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.WriteBool(3, true))
	})

	require.Equal(t, explicit, coalesced)
}

func TestWriter_ImplicitIDs(t *testing.T) {
	implicit := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.WriteU32(0, 10))
		require.NoError(t, w.WriteU32(0, 20))
		require.NoError(t, w.WriteU32(0, 30))
	})

	explicit := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.WriteU32(1, 10))
		require.NoError(t, w.WriteU32(2, 20))
		require.NoError(t, w.WriteU32(3, 30))
	})

	require.Equal(t, explicit, implicit)
}

func TestWriter_Deterministic(t *testing.T) {
	build := func() []byte {
		return mustBytes(t, func(w *Writer) {
			require.NoError(t, w.WriteStr(1, "alpha"))
			require.NoError(t, w.WriteI64(3, -123456))
			require.NoError(t, w.ArrayBegin(4))
			require.NoError(t, w.WriteTime(0, time.Unix(1700000000, 0)))
			require.NoError(t, w.ArrayEnd())
		})
	}

	require.Equal(t, build(), build())
}

func TestWriter_TerminatorDiscipline(t *testing.T) {
	// With payloads chosen to contain no 0x00 byte, the count of zero
	// bytes equals the number of begun containers plus the root.
	got := mustBytes(t, func(w *Writer) {
		require.NoError(t, w.WriteStr(1, "ab"))
		require.NoError(t, w.ObjBegin(2))
		require.NoError(t, w.WriteU32(1, 77))
		require.NoError(t, w.ArrayBegin(2))
		require.NoError(t, w.WriteBool(0, true))
		require.NoError(t, w.ArrayEnd())
		require.NoError(t, w.ObjEnd())
	})

	require.Equal(t, 3, bytes.Count(got, []byte{0x00}))
}

func TestWriter_SinkStaging(t *testing.T) {
	ops := func(w *Writer) {
		require.NoError(t, w.WriteStr(1, "short"))
		require.NoError(t, w.WriteBin(2, bytes.Repeat([]byte{0xAB}, 200)))
		require.NoError(t, w.WriteU64(3, 1<<40))
	}
	want := mustBytes(t, ops)

	t.Run("staging smaller than payload", func(t *testing.T) {
		var sink bytes.Buffer
		w, err := NewWriter(&sink, WithWriterBufferSize(MinBufferSize))
		require.NoError(t, err)
		ops(w)
		require.NoError(t, w.End())
		require.Equal(t, want, sink.Bytes())
		require.Nil(t, w.Bytes())
	})

	t.Run("default staging", func(t *testing.T) {
		var sink bytes.Buffer
		w, err := NewWriter(&sink)
		require.NoError(t, err)
		ops(w)
		require.NoError(t, w.End())
		require.Equal(t, want, sink.Bytes())
	})
}

func TestWriter_BufferSizeValidation(t *testing.T) {
	_, err := NewBufferWriter(WithWriterBufferSize(1))
	require.Error(t, err)
	require.Contains(t, err.Error(), "below minimum")
}

func TestWriter_ContractViolations(t *testing.T) {
	t.Run("id not increasing", func(t *testing.T) {
		w, err := NewBufferWriter()
		require.NoError(t, err)
		require.NoError(t, w.WriteBool(2, true))
		require.Panics(t, func() { _ = w.WriteBool(2, false) })
	})

	t.Run("id swallowed by pending nulls", func(t *testing.T) {
		w, err := NewBufferWriter()
		require.NoError(t, err)
		w.WriteNull()
		w.WriteNull()
		require.Panics(t, func() { _ = w.WriteBool(2, true) })
	})

	t.Run("ending the wrong container kind", func(t *testing.T) {
		w, err := NewBufferWriter()
		require.NoError(t, err)
		require.NoError(t, w.ObjBegin(1))
		require.Panics(t, func() { _ = w.ArrayEnd() })
	})

	t.Run("ending the root", func(t *testing.T) {
		w, err := NewBufferWriter()
		require.NoError(t, err)
		require.Panics(t, func() { _ = w.ObjEnd() })
	})

	t.Run("finishing with open frames", func(t *testing.T) {
		w, err := NewBufferWriter()
		require.NoError(t, err)
		require.NoError(t, w.ArrayBegin(1))
		require.Panics(t, func() { _ = w.End() })
	})

	t.Run("writing after End", func(t *testing.T) {
		w, err := NewBufferWriter()
		require.NoError(t, err)
		require.NoError(t, w.End())
		require.Panics(t, func() { _ = w.WriteBool(1, true) })
	})
}
