package pack

import (
	"fmt"
	"io"
	"time"

	"github.com/packlab/pack/encoding"
	"github.com/packlab/pack/format"
	"github.com/packlab/pack/internal/options"
	"github.com/packlab/pack/internal/pool"
)

// Writer encodes one pack as a push-mode stream of typed fields.
//
// With a sink bound, encoded bytes accumulate in a fixed-size staging
// buffer that is flushed to the sink when full or at End; a payload larger
// than the staging buffer bypasses it and goes straight to the sink.
// Without a sink the buffer grows as needed and the finished pack is
// returned by Bytes after End.
//
// A Writer serves exactly one pack and is not safe for concurrent use.
type Writer struct {
	sink     io.Writer
	buf      *pool.ByteBuffer
	bufSize  int
	frames   frameStack
	pooled   bool
	finished bool

	// scratch holds one maximal tag: tag byte plus two varints.
	scratch [2*encoding.MaxVarintLen + 1]byte
}

// NewWriter creates a Writer that streams the pack to sink. The sink must
// consume every byte it is given or fail; failures are propagated as-is.
func NewWriter(sink io.Writer, opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		sink:    sink,
		bufSize: pool.PackBufferDefaultSize,
		frames:  newFrameStack(),
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	if w.bufSize == pool.PackBufferDefaultSize {
		w.buf = pool.GetPackBuffer()
		w.pooled = true
	} else {
		w.buf = pool.NewByteBuffer(w.bufSize)
	}

	return w, nil
}

// NewBufferWriter creates a Writer that assembles the pack in memory.
// Retrieve the result with Bytes after End.
func NewBufferWriter(opts ...WriterOption) (*Writer, error) {
	w := &Writer{
		bufSize: pool.PackBufferDefaultSize,
		frames:  newFrameStack(),
	}

	if err := options.Apply(w, opts...); err != nil {
		return nil, err
	}

	w.buf = pool.NewByteBuffer(w.bufSize)

	return w, nil
}

// WriteBool writes a bool field. Pass id 0 to use the next id at the
// current nesting level.
func (w *Writer) WriteBool(id uint32, value bool) error {
	return w.writeTag(format.TypeBool, id, boolBit(value))
}

// WriteBoolDefault writes a bool field, eliding it (zero bytes on the
// wire) when value equals defaultValue. A reader using the same default
// reproduces the value.
func (w *Writer) WriteBoolDefault(id uint32, value, defaultValue bool) error {
	if value == defaultValue {
		return w.writeNull()
	}

	return w.WriteBool(id, value)
}

// WriteI32 writes a zig-zag encoded signed 32-bit field.
func (w *Writer) WriteI32(id uint32, value int32) error {
	return w.writeTag(format.TypeI32, id, encoding.ZigZag(int64(value)))
}

// WriteI32Default writes an i32 field, eliding it when value equals defaultValue.
func (w *Writer) WriteI32Default(id uint32, value, defaultValue int32) error {
	if value == defaultValue {
		return w.writeNull()
	}

	return w.WriteI32(id, value)
}

// WriteI64 writes a zig-zag encoded signed 64-bit field.
func (w *Writer) WriteI64(id uint32, value int64) error {
	return w.writeTag(format.TypeI64, id, encoding.ZigZag(value))
}

// WriteI64Default writes an i64 field, eliding it when value equals defaultValue.
func (w *Writer) WriteI64Default(id uint32, value, defaultValue int64) error {
	if value == defaultValue {
		return w.writeNull()
	}

	return w.WriteI64(id, value)
}

// WriteU32 writes an unsigned 32-bit field.
func (w *Writer) WriteU32(id uint32, value uint32) error {
	return w.writeTag(format.TypeU32, id, uint64(value))
}

// WriteU32Default writes a u32 field, eliding it when value equals defaultValue.
func (w *Writer) WriteU32Default(id uint32, value, defaultValue uint32) error {
	if value == defaultValue {
		return w.writeNull()
	}

	return w.WriteU32(id, value)
}

// WriteU64 writes an unsigned 64-bit field.
func (w *Writer) WriteU64(id uint32, value uint64) error {
	return w.writeTag(format.TypeU64, id, value)
}

// WriteU64Default writes a u64 field, eliding it when value equals defaultValue.
func (w *Writer) WriteU64Default(id uint32, value, defaultValue uint64) error {
	if value == defaultValue {
		return w.writeNull()
	}

	return w.WriteU64(id, value)
}

// WriteTime writes a time field as zig-zag encoded Unix seconds.
// Sub-second precision is not carried on the wire.
func (w *Writer) WriteTime(id uint32, value time.Time) error {
	return w.writeTag(format.TypeTime, id, encoding.ZigZag(value.Unix()))
}

// WriteTimeDefault writes a time field, eliding it when value and
// defaultValue fall on the same Unix second.
func (w *Writer) WriteTimeDefault(id uint32, value, defaultValue time.Time) error {
	if value.Unix() == defaultValue.Unix() {
		return w.writeNull()
	}

	return w.WriteTime(id, value)
}

// WritePtr writes a raw in-process address. Packs carrying ptr fields must
// not be persisted or cross a process boundary.
func (w *Writer) WritePtr(id uint32, value uintptr) error {
	return w.writeTag(format.TypePtr, id, uint64(value))
}

// WritePtrDefault writes a ptr field, eliding it when the address is zero.
func (w *Writer) WritePtrDefault(id uint32, value uintptr) error {
	if value == 0 {
		return w.writeNull()
	}

	return w.WritePtr(id, value)
}

// WriteStr writes a string field. An empty string still occupies a tag
// byte; use WriteStrDefault to elide it entirely.
func (w *Writer) WriteStr(id uint32, value string) error {
	if err := w.writeTag(format.TypeStr, id, boolBit(len(value) > 0)); err != nil {
		return err
	}
	if len(value) == 0 {
		return nil
	}

	if err := w.write(encoding.AppendUvarint(w.scratch[:0], uint64(len(value)))); err != nil {
		return err
	}

	return w.writeString(value)
}

// WriteStrDefault writes a str field, eliding it when value equals defaultValue.
func (w *Writer) WriteStrDefault(id uint32, value, defaultValue string) error {
	if value == defaultValue {
		return w.writeNull()
	}

	return w.WriteStr(id, value)
}

// WriteBin writes a binary field. A nil or empty slice writes only the tag
// byte with the presence bit clear and reads back as nil.
func (w *Writer) WriteBin(id uint32, value []byte) error {
	if err := w.writeTag(format.TypeBin, id, boolBit(len(value) > 0)); err != nil {
		return err
	}
	if len(value) == 0 {
		return nil
	}

	if err := w.write(encoding.AppendUvarint(w.scratch[:0], uint64(len(value)))); err != nil {
		return err
	}

	return w.write(value)
}

// WriteBinDefault writes a bin field, eliding it when value is nil.
func (w *Writer) WriteBinDefault(id uint32, value []byte) error {
	if value == nil {
		return w.writeNull()
	}

	return w.WriteBin(id, value)
}

// WriteNull advances the implicit field position without emitting bytes.
// The gap is folded into the id delta of the next emitted field.
func (w *Writer) WriteNull() {
	w.checkOpen()
	w.frames.top().nullTotal++
}

// ObjBegin opens a nested object field.
func (w *Writer) ObjBegin(id uint32) error {
	if err := w.writeTag(format.TypeObj, id, 0); err != nil {
		return err
	}
	w.frames.push(format.TypeObj)

	return nil
}

// ObjEnd closes the innermost container, which must be an object.
func (w *Writer) ObjEnd() error {
	return w.containerEnd(format.TypeObj)
}

// ArrayBegin opens a nested array field.
func (w *Writer) ArrayBegin(id uint32) error {
	if err := w.writeTag(format.TypeArray, id, 0); err != nil {
		return err
	}
	w.frames.push(format.TypeArray)

	return nil
}

// ArrayEnd closes the innermost container, which must be an array.
func (w *Writer) ArrayEnd() error {
	return w.containerEnd(format.TypeArray)
}

// End finalizes the pack: it emits the root terminator and, with a sink
// bound, flushes the staging buffer. All containers must be closed, or End
// panics. The Writer is unusable afterwards except for Bytes.
func (w *Writer) End() error {
	w.checkOpen()
	if w.frames.depth() != 1 {
		panic(fmt.Sprintf("pack: End with %d unclosed containers", w.frames.depth()-1))
	}

	if err := w.write([]byte{0x00}); err != nil {
		return err
	}
	w.finished = true

	if w.sink == nil {
		return nil
	}

	if err := w.flush(); err != nil {
		return err
	}
	if w.pooled {
		pool.PutPackBuffer(w.buf)
		w.buf = nil
	}

	return nil
}

// Bytes returns the finished pack of a buffer Writer. It is only valid
// after End; for sink-bound writers it returns nil.
func (w *Writer) Bytes() []byte {
	if w.sink != nil || w.buf == nil {
		return nil
	}

	return w.buf.Bytes()
}

// writeNull defers one elided field into the next emitted id delta.
func (w *Writer) writeNull() error {
	w.WriteNull()
	return nil
}

// writeTag resolves the field id, encodes the tag, and appends it to the
// output. value carries the raw wire value per the tag codec's contract.
func (w *Writer) writeTag(typ format.PackType, id uint32, value uint64) error {
	w.checkOpen()
	top := w.frames.top()

	if id == 0 {
		id = top.idLast + top.nullTotal + 1
	} else if id <= top.idLast+top.nullTotal {
		panic(fmt.Sprintf("pack: field id %d not greater than last id %d with %d pending nulls",
			id, top.idLast, top.nullTotal))
	}

	idDelta := uint64(id - top.idLast - 1)
	top.nullTotal = 0
	top.idLast = id

	return w.write(encoding.AppendTag(w.scratch[:0], typ, idDelta, value))
}

// containerEnd emits the terminator for the innermost frame and pops it.
func (w *Writer) containerEnd(typ format.PackType) error {
	w.checkOpen()
	top := w.frames.top()
	if w.frames.depth() == 1 || top.typ != typ {
		panic(fmt.Sprintf("pack: ending %s while innermost container is %s", typ, top.typ))
	}

	if err := w.write([]byte{0x00}); err != nil {
		return err
	}
	w.frames.pop()

	return nil
}

// write appends p to the buffer, spilling to the sink as needed. Staged
// bytes keep their order: a payload too large for the staging buffer
// forces a flush before it is handed to the sink directly.
func (w *Writer) write(p []byte) error {
	if w.sink == nil {
		w.buf.MustWrite(p)
		return nil
	}

	if w.buf.Len()+len(p) > w.bufSize {
		if err := w.flush(); err != nil {
			return err
		}
		if len(p) > w.bufSize {
			_, err := w.sink.Write(p)
			return err
		}
	}
	w.buf.MustWrite(p)

	return nil
}

// writeString is write for string payloads, avoiding a []byte conversion
// on the staged path.
func (w *Writer) writeString(s string) error {
	if w.sink == nil {
		w.buf.B = append(w.buf.B, s...)
		return nil
	}

	if w.buf.Len()+len(s) > w.bufSize {
		if err := w.flush(); err != nil {
			return err
		}
		if len(s) > w.bufSize {
			_, err := io.WriteString(w.sink, s)
			return err
		}
	}
	w.buf.B = append(w.buf.B, s...)

	return nil
}

// flush pushes the staged bytes to the sink.
func (w *Writer) flush() error {
	if w.buf.Len() == 0 {
		return nil
	}

	if _, err := w.buf.WriteTo(w.sink); err != nil {
		return err
	}
	w.buf.Reset()

	return nil
}

func (w *Writer) checkOpen() {
	if w.finished {
		panic("pack: writer already finished")
	}
}

func boolBit(b bool) uint64 {
	if b {
		return 1
	}

	return 0
}
