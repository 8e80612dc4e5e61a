package hash

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSum64_Stable(t *testing.T) {
	data := []byte("pack digest input")
	require.Equal(t, Sum64(data), Sum64(data))
	require.NotEqual(t, Sum64(data), Sum64(data[:len(data)-1]))
}

func TestWriter_DigestsStream(t *testing.T) {
	data := bytes.Repeat([]byte{0xA8, 0x4D, 0x00}, 100)

	var sink bytes.Buffer
	w := NewWriter(&sink)

	// Write in uneven chunks; the digest must match the one-shot sum.
	for _, chunk := range [][]byte{data[:7], data[7:100], data[100:]} {
		n, err := w.Write(chunk)
		require.NoError(t, err)
		require.Equal(t, len(chunk), n)
	}

	require.Equal(t, data, sink.Bytes())
	require.Equal(t, Sum64(data), w.Sum64())
}

func TestReader_DigestsStream(t *testing.T) {
	data := bytes.Repeat([]byte("field"), 50)

	r := NewReader(bytes.NewReader(data))
	got, err := io.ReadAll(iotestChunker{r})
	require.NoError(t, err)
	require.Equal(t, data, got)
	require.Equal(t, Sum64(data), r.Sum64())
}

// iotestChunker forces small reads through the digesting reader.
type iotestChunker struct{ r io.Reader }

func (c iotestChunker) Read(p []byte) (int, error) {
	if len(p) > 3 {
		p = p[:3]
	}

	return c.r.Read(p)
}
