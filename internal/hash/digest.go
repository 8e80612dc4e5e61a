// Package hash computes xxHash64 digests of packs.
//
// The codec itself never checksums; these helpers let the layers that
// persist or ship packs (manifests, archival sinks) detect corruption
// without re-reading the stream.
package hash

import (
	"io"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of data.
func Sum64(data []byte) uint64 {
	return xxhash.Sum64(data)
}

// Writer wraps an io.Writer and accumulates the xxHash64 of everything
// written through it. Useful as a pack writer sink when the finished pack
// must be recorded alongside its digest.
type Writer struct {
	w io.Writer
	h *xxhash.Digest
}

// NewWriter creates a digesting wrapper around w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, h: xxhash.New()}
}

// Write passes p to the wrapped writer and folds it into the digest.
func (w *Writer) Write(p []byte) (int, error) {
	n, err := w.w.Write(p)
	if n > 0 {
		_, _ = w.h.Write(p[:n]) // xxhash.Digest.Write never fails
	}

	return n, err
}

// Sum64 returns the digest of all bytes written so far.
func (w *Writer) Sum64() uint64 {
	return w.h.Sum64()
}

// Reader wraps an io.Reader and accumulates the xxHash64 of everything
// read through it, so a pack can be verified while it is decoded.
type Reader struct {
	r io.Reader
	h *xxhash.Digest
}

// NewReader creates a digesting wrapper around r.
func NewReader(r io.Reader) *Reader {
	return &Reader{r: r, h: xxhash.New()}
}

// Read reads from the wrapped reader and folds the bytes into the digest.
func (r *Reader) Read(p []byte) (int, error) {
	n, err := r.r.Read(p)
	if n > 0 {
		_, _ = r.h.Write(p[:n])
	}

	return n, err
}

// Sum64 returns the digest of all bytes read so far.
func (r *Reader) Sum64() uint64 {
	return r.h.Sum64()
}
