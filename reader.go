package pack

import (
	"fmt"
	"io"
	"math"
	"time"

	"github.com/packlab/pack/encoding"
	"github.com/packlab/pack/errs"
	"github.com/packlab/pack/format"
	"github.com/packlab/pack/internal/options"
	"github.com/packlab/pack/internal/pool"
)

// IDNone is the id reported once the current container's terminator has
// been reached; no real field ever carries it.
const IDNone = math.MaxUint32

// Reader decodes one pack as a pull-mode stream of typed fields.
//
// The reader keeps a one-slot lookahead: the next undecoded tag is pulled
// into the cache on demand and served when its id is requested. Requests
// for ids beyond the cached one skip intermediate fields; requests for ids
// before it observe a null. Fields must be requested in increasing id
// order within each container.
//
// A Reader serves exactly one pack and is not safe for concurrent use.
type Reader struct {
	src     io.Reader
	bb      *pool.ByteBuffer
	buf     []byte
	pos     int
	max     int
	bufSize int
	pooled  bool
	frames  frameStack

	// One-slot next-tag cache. tagNextID 0 means empty, IDNone means the
	// current container's terminator has been decoded.
	tagNextID    uint32
	tagNextType  format.PackType
	tagNextValue uint64
}

// NewReader creates a Reader that pulls the pack from src. Short reads are
// tolerated; running out of bytes mid-field is a format error.
func NewReader(src io.Reader, opts ...ReaderOption) (*Reader, error) {
	r := &Reader{
		src:     src,
		bufSize: pool.PackBufferDefaultSize,
		frames:  newFrameStack(),
	}

	if err := options.Apply(r, opts...); err != nil {
		return nil, err
	}

	if r.bufSize == pool.PackBufferDefaultSize {
		r.bb = pool.GetPackBuffer()
		r.pooled = true
	} else {
		r.bb = pool.NewByteBuffer(r.bufSize)
	}
	r.buf = r.bb.B[:cap(r.bb.B)]

	return r, nil
}

// NewBytesReader creates a Reader over a pack already held in memory.
// The reader does not copy data; the caller must not modify it while
// reading.
func NewBytesReader(data []byte) *Reader {
	return &Reader{
		buf:    data,
		max:    len(data),
		frames: newFrameStack(),
	}
}

// Next decodes the next field tag into the lookahead cache, if it is not
// already there. It returns false once the current container has no more
// fields; the terminator itself is consumed by the matching end call.
func (r *Reader) Next() (bool, error) {
	if r.tagNextID == 0 {
		if err := r.nextTag(); err != nil {
			return false, err
		}
	}

	return r.tagNextID != IDNone, nil
}

// ID returns the id of the cached next field: IDNone at the container
// terminator, 0 when no tag has been decoded yet.
func (r *Reader) ID() uint32 {
	return r.tagNextID
}

// Type returns the type of the cached next field.
func (r *Reader) Type() format.PackType {
	return r.tagNextType
}

// Null peeks at the pack and reports whether the field at id is absent.
// The field at id is neither consumed nor claimed, though unrequested
// fields before it are skipped to reach it. Pass id 0 to test the next
// field position.
func (r *Reader) Null(id uint32) (bool, error) {
	null, _, err := r.nullInternal(id)
	return null, err
}

// ReadBool reads the bool field at id. Pass id 0 to read the next field.
// An absent field is a format error; use ReadBoolDefault to tolerate it.
func (r *Reader) ReadBool(id uint32) (bool, error) {
	_, v, err := r.consume(id, format.TypeBool)
	return v != 0, err
}

// ReadBoolDefault reads the bool field at id, returning defaultValue if
// the field is absent.
func (r *Reader) ReadBoolDefault(id uint32, defaultValue bool) (bool, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return defaultValue, err
	}

	return r.ReadBool(id)
}

// ReadI32 reads the i32 field at id.
func (r *Reader) ReadI32(id uint32) (int32, error) {
	_, v, err := r.consume(id, format.TypeI32)
	return int32(encoding.UnZigZag(v)), err //nolint:gosec
}

// ReadI32Default reads the i32 field at id, returning defaultValue if the
// field is absent.
func (r *Reader) ReadI32Default(id uint32, defaultValue int32) (int32, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return defaultValue, err
	}

	return r.ReadI32(id)
}

// ReadI64 reads the i64 field at id.
func (r *Reader) ReadI64(id uint32) (int64, error) {
	_, v, err := r.consume(id, format.TypeI64)
	return encoding.UnZigZag(v), err
}

// ReadI64Default reads the i64 field at id, returning defaultValue if the
// field is absent.
func (r *Reader) ReadI64Default(id uint32, defaultValue int64) (int64, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return defaultValue, err
	}

	return r.ReadI64(id)
}

// ReadU32 reads the u32 field at id.
func (r *Reader) ReadU32(id uint32) (uint32, error) {
	_, v, err := r.consume(id, format.TypeU32)
	return uint32(v), err //nolint:gosec
}

// ReadU32Default reads the u32 field at id, returning defaultValue if the
// field is absent.
func (r *Reader) ReadU32Default(id uint32, defaultValue uint32) (uint32, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return defaultValue, err
	}

	return r.ReadU32(id)
}

// ReadU64 reads the u64 field at id.
func (r *Reader) ReadU64(id uint32) (uint64, error) {
	_, v, err := r.consume(id, format.TypeU64)
	return v, err
}

// ReadU64Default reads the u64 field at id, returning defaultValue if the
// field is absent.
func (r *Reader) ReadU64Default(id uint32, defaultValue uint64) (uint64, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return defaultValue, err
	}

	return r.ReadU64(id)
}

// ReadTime reads the time field at id with second precision.
func (r *Reader) ReadTime(id uint32) (time.Time, error) {
	_, v, err := r.consume(id, format.TypeTime)
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(encoding.UnZigZag(v), 0), nil
}

// ReadTimeDefault reads the time field at id, returning defaultValue if
// the field is absent.
func (r *Reader) ReadTimeDefault(id uint32, defaultValue time.Time) (time.Time, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return defaultValue, err
	}

	return r.ReadTime(id)
}

// ReadPtr reads the ptr field at id as the raw address bits. Casting the
// result back to a pointer is the caller's risk; a ptr field is only
// meaningful inside the process that wrote it.
func (r *Reader) ReadPtr(id uint32) (uintptr, error) {
	_, v, err := r.consume(id, format.TypePtr)
	return uintptr(v), err
}

// ReadPtrDefault reads the ptr field at id, returning 0 if the field is
// absent.
func (r *Reader) ReadPtrDefault(id uint32) (uintptr, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return 0, err
	}

	return r.ReadPtr(id)
}

// ReadStr reads the str field at id.
func (r *Reader) ReadStr(id uint32) (string, error) {
	_, v, err := r.consume(id, format.TypeStr)
	if err != nil || v == 0 {
		return "", err
	}

	payload, err := r.readSized()
	if err != nil {
		return "", err
	}

	return string(payload), nil
}

// ReadStrDefault reads the str field at id, returning defaultValue if the
// field is absent.
func (r *Reader) ReadStrDefault(id uint32, defaultValue string) (string, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return defaultValue, err
	}

	return r.ReadStr(id)
}

// ReadBin reads the bin field at id. An empty field reads as nil; an
// absent field is a format error, use ReadBinDefault to tolerate it.
func (r *Reader) ReadBin(id uint32) ([]byte, error) {
	_, v, err := r.consume(id, format.TypeBin)
	if err != nil || v == 0 {
		return nil, err
	}

	return r.readSized()
}

// ReadBinDefault reads the bin field at id, returning nil if the field is
// absent.
func (r *Reader) ReadBinDefault(id uint32) ([]byte, error) {
	null, id, err := r.defaultNull(id)
	if err != nil || null {
		return nil, err
	}

	return r.ReadBin(id)
}

// ObjBegin enters the object field at id. Fields inside it are addressed
// by their own 1-based ids until the matching ObjEnd.
func (r *Reader) ObjBegin(id uint32) error {
	if _, _, err := r.consume(id, format.TypeObj); err != nil {
		return err
	}
	r.frames.push(format.TypeObj)

	return nil
}

// ObjEnd leaves the innermost container, which must be an object, skipping
// any of its fields that were never requested.
func (r *Reader) ObjEnd() error {
	return r.containerEnd(format.TypeObj)
}

// ArrayBegin enters the array field at id.
func (r *Reader) ArrayBegin(id uint32) error {
	if _, _, err := r.consume(id, format.TypeArray); err != nil {
		return err
	}
	r.frames.push(format.TypeArray)

	return nil
}

// ArrayEnd leaves the innermost container, which must be an array,
// skipping any unread elements.
func (r *Reader) ArrayEnd() error {
	return r.containerEnd(format.TypeArray)
}

// End finishes the pack, draining every open frame down to the root
// terminator regardless of what was read. The Reader is unusable
// afterwards.
func (r *Reader) End() error {
	for {
		if err := r.drainFrame(); err != nil {
			return err
		}
		if r.frames.depth() == 1 {
			break
		}
		r.frames.pop()
		r.tagNextID = 0
	}

	r.release()

	return nil
}

// nextTag decodes one tag into the empty lookahead cache.
func (r *Reader) nextTag() error {
	tag, err := encoding.ReadTag((*readerByteSource)(r))
	if err != nil {
		return err
	}

	if tag.Terminator() {
		r.tagNextID = IDNone
		r.tagNextType = format.TypeUnknown
		r.tagNextValue = 0

		return nil
	}

	id := uint64(r.frames.top().idLast) + 1 + tag.IDDelta
	if id >= IDNone {
		return fmt.Errorf("%w: id %d", errs.ErrInvalidIDDelta, id)
	}

	r.tagNextID = uint32(id)
	r.tagNextType = tag.Type
	r.tagNextValue = tag.Value

	return nil
}

// consume advances the stream to the field at id and claims it, enforcing
// the type match and the strict id ordering of the current frame. Fields
// between the cursor and id are skipped wholesale. It returns the resolved
// id and the field's raw wire value.
func (r *Reader) consume(id uint32, typ format.PackType) (uint32, uint64, error) {
	id, err := r.seek(id, false)
	if err != nil {
		return 0, 0, err
	}

	if r.tagNextType != typ {
		return 0, 0, fmt.Errorf("%w: field %d is %s, requested %s", errs.ErrTypeMismatch, id, r.tagNextType, typ)
	}

	value := r.tagNextValue
	r.frames.top().idLast = id
	r.tagNextID = 0

	return id, value, nil
}

// nullInternal resolves id against the frame cursor and peeks whether the
// field is absent, leaving the cursor untouched.
func (r *Reader) nullInternal(id uint32) (bool, uint32, error) {
	id, err := r.seek(id, true)
	if err != nil {
		return false, 0, err
	}

	return id < r.tagNextID, id, nil
}

// defaultNull is nullInternal for the Default read variants: an absent
// field claims its id so the caller can substitute the default and move on.
func (r *Reader) defaultNull(id uint32) (bool, uint32, error) {
	null, id, err := r.nullInternal(id)
	if err == nil && null {
		r.frames.top().idLast = id
	}

	return null, id, err
}

// seek resolves id (0 means next) and skips cached fields until the cache
// holds a field at or beyond it. With peek set, running past id is not an
// error and nothing is claimed.
func (r *Reader) seek(id uint32, peek bool) (uint32, error) {
	top := r.frames.top()
	if id == 0 {
		id = top.idLast + 1
	} else if id <= top.idLast {
		return 0, fmt.Errorf("%w: field %d, cursor at %d", errs.ErrFieldAlreadyRead, id, top.idLast)
	}

	for {
		if r.tagNextID == 0 {
			if err := r.nextTag(); err != nil {
				return 0, err
			}
		}

		if id <= r.tagNextID {
			if id < r.tagNextID && !peek {
				return 0, fmt.Errorf("%w: field %d", errs.ErrFieldNotFound, id)
			}

			return id, nil
		}

		if err := r.skipCached(); err != nil {
			return 0, err
		}
	}
}

// skipCached discards the cached field without surfacing its value:
// length-bearing payloads are consumed, unread containers are drained to
// their terminator, everything else was already fully decoded in the tag.
func (r *Reader) skipCached() error {
	typ := r.tagNextType
	presence := r.tagNextValue
	r.frames.top().idLast = r.tagNextID
	r.tagNextID = 0

	switch {
	case typ.HasSize() && presence > 0:
		size, err := encoding.ReadUvarint((*readerByteSource)(r))
		if err != nil {
			return err
		}

		return r.skipN(size)
	case typ.Container():
		return r.drainContainer()
	}

	return nil
}

// drainFrame skips every remaining field of the current frame, stopping
// with the terminator in the cache.
func (r *Reader) drainFrame() error {
	for {
		if r.tagNextID == 0 {
			if err := r.nextTag(); err != nil {
				return err
			}
		}
		if r.tagNextID == IDNone {
			return nil
		}
		if err := r.skipCached(); err != nil {
			return err
		}
	}
}

// drainContainer consumes a skipped container's nested fields and its
// terminator directly from the stream, tracking nesting depth without
// touching the frame stack.
func (r *Reader) drainContainer() error {
	for depth := 0; ; {
		tag, err := encoding.ReadTag((*readerByteSource)(r))
		if err != nil {
			return err
		}

		switch {
		case tag.Terminator():
			if depth == 0 {
				return nil
			}
			depth--
		case tag.Type.Container():
			depth++
		case tag.Type.HasSize() && tag.Value > 0:
			size, err := encoding.ReadUvarint((*readerByteSource)(r))
			if err != nil {
				return err
			}
			if err := r.skipN(size); err != nil {
				return err
			}
		}
	}
}

// containerEnd drains the innermost frame, verifies its kind, consumes the
// terminator state and restores the parent frame.
func (r *Reader) containerEnd(typ format.PackType) error {
	top := r.frames.top()
	if r.frames.depth() == 1 || top.typ != typ {
		if typ == format.TypeArray {
			return fmt.Errorf("%w: innermost container is %s", errs.ErrNotInArray, top.typ)
		}

		return fmt.Errorf("%w: innermost container is %s", errs.ErrNotInObject, top.typ)
	}

	if err := r.drainFrame(); err != nil {
		return err
	}

	r.frames.pop()
	r.tagNextID = 0

	return nil
}

// readSized reads the size varint and payload of a str/bin field whose
// presence bit was set.
func (r *Reader) readSized() ([]byte, error) {
	size, err := encoding.ReadUvarint((*readerByteSource)(r))
	if err != nil {
		return nil, err
	}

	return r.readPayload(size)
}

// readPayload returns size bytes of payload. In streaming mode the result
// grows in bounded steps so a corrupt size prefix cannot force one huge
// allocation up front.
func (r *Reader) readPayload(size uint64) ([]byte, error) {
	if r.src == nil {
		if size > uint64(r.max-r.pos) {
			return nil, fmt.Errorf("%w: payload of %d bytes", errs.ErrUnexpectedEOF, size)
		}

		out := make([]byte, size)
		copy(out, r.buf[r.pos:r.pos+int(size)])
		r.pos += int(size)

		return out, nil
	}

	const step = 64 * 1024

	out := make([]byte, 0, min(size, step))
	for remaining := size; remaining > 0; {
		n := int(min(remaining, step))
		start := len(out)
		out = append(out, make([]byte, n)...)
		if err := r.readFull(out[start:]); err != nil {
			return nil, err
		}
		remaining -= uint64(n)
	}

	return out, nil
}

// readByte serves the tag and varint codecs one byte at a time.
func (r *Reader) readByte() (byte, error) {
	if r.pos >= r.max {
		if err := r.fill(); err != nil {
			return 0, err
		}
	}

	b := r.buf[r.pos]
	r.pos++

	return b, nil
}

// readFull fills dst exactly, refilling from the source as needed.
func (r *Reader) readFull(dst []byte) error {
	for len(dst) > 0 {
		if r.pos >= r.max {
			if err := r.fill(); err != nil {
				return err
			}
		}
		n := copy(dst, r.buf[r.pos:r.max])
		r.pos += n
		dst = dst[n:]
	}

	return nil
}

// skipN discards n payload bytes.
func (r *Reader) skipN(n uint64) error {
	for n > 0 {
		if r.pos >= r.max {
			if err := r.fill(); err != nil {
				return err
			}
		}
		step := min(n, uint64(r.max-r.pos))
		r.pos += int(step)
		n -= step
	}

	return nil
}

// fill refreshes the buffer from the source. Any short read is accepted;
// end of stream surfaces as errs.ErrUnexpectedEOF because the codec only
// pulls bytes it still needs.
func (r *Reader) fill() error {
	if r.src == nil {
		return errs.ErrUnexpectedEOF
	}

	for {
		n, err := r.src.Read(r.buf)
		if n > 0 {
			r.pos, r.max = 0, n
			return nil
		}
		if err != nil {
			if err == io.EOF {
				return errs.ErrUnexpectedEOF
			}

			return err
		}
	}
}

// release returns pooled resources and leaves the reader inert: any
// further read fails with errs.ErrUnexpectedEOF.
func (r *Reader) release() {
	if r.pooled {
		pool.PutPackBuffer(r.bb)
		r.bb = nil
	}
	r.src = nil
	r.buf = nil
	r.pos, r.max = 0, 0
	r.frames = newFrameStack()
	r.tagNextID = 0
}

// readerByteSource adapts Reader's buffered readByte to io.ByteReader for
// the encoding package.
type readerByteSource Reader

func (s *readerByteSource) ReadByte() (byte, error) {
	return (*Reader)(s).readByte()
}
