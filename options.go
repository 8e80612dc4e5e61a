package pack

import (
	"fmt"

	"github.com/packlab/pack/internal/options"
)

// MinBufferSize is the smallest buffer either façade accepts. It leaves
// room for a single maximal tag (tag byte plus two varints, 21 bytes).
const MinBufferSize = 32

type (
	// ReaderOption configures a Reader at construction time.
	ReaderOption = options.Option[*Reader]

	// WriterOption configures a Writer at construction time.
	WriterOption = options.Option[*Writer]
)

// WithReaderBufferSize sets the size of the reader's internal fill buffer.
// Buffers of a non-default size are allocated per instance instead of
// drawn from the shared pool.
func WithReaderBufferSize(size int) ReaderOption {
	return options.New(func(r *Reader) error {
		if size < MinBufferSize {
			return fmt.Errorf("reader buffer size %d below minimum %d", size, MinBufferSize)
		}
		r.bufSize = size

		return nil
	})
}

// WithWriterBufferSize sets the size of the writer's staging buffer when a
// sink is bound, and the initial capacity of the growable buffer when not.
// Buffers of a non-default size are allocated per instance instead of
// drawn from the shared pool.
func WithWriterBufferSize(size int) WriterOption {
	return options.New(func(w *Writer) error {
		if size < MinBufferSize {
			return fmt.Errorf("writer buffer size %d below minimum %d", size, MinBufferSize)
		}
		w.bufSize = size

		return nil
	})
}
