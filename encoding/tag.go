package encoding

import (
	"fmt"
	"io"
	"math"

	"github.com/packlab/pack/errs"
	"github.com/packlab/pack/format"
)

// Every pack field starts with a single tag byte that multiplexes the field
// type, the id delta from the previous field in the same container, and,
// where it fits, the value itself. The type always occupies the high
// nibble; the low nibble is packed per type class:
//
//	multi-bit value, small form (value is 0 or 1):
//	+--------+---+---+---+---+
//	|  type  | 0 | v | m | d |   v = value bit, m = more-id, d = delta bit 0
//	+--------+---+---+---+---+   [varint: delta>>1 when m]
//
//	multi-bit value, large form:
//	+--------+---+---+-------+
//	|  type  | 1 | m | delta |   m = more-id, delta = low 2 bits
//	+--------+---+---+-------+   [varint: delta>>2 when m][varint: value]
//
//	single-bit value (bool, str/bin presence):
//	+--------+---+---+-------+
//	|  type  | v | m | delta |   v = value bit, m = more-id
//	+--------+---+---+-------+   [varint: delta>>2 when m]
//
//	container (obj, array):
//	+--------+---+-----------+
//	|  type  | m |   delta   |   m = more-id, delta = low 3 bits
//	+--------+---+-----------+   [varint: delta>>3 when m]
//
// A tag byte of 0x00 is the container terminator. For str/bin with the
// value bit set, a size varint and that many payload bytes follow the tag
// and its id varint; the tag codec leaves those to the caller.

// Tag is the decoded form of a field tag and its trailing id/value varints.
//
// Value holds the inline value bit for single-bit and small-form multi-bit
// types, the full value for large-form multi-bit types, and zero for
// containers. A Tag with Type format.TypeUnknown is the container
// terminator.
type Tag struct {
	Type    format.PackType
	IDDelta uint64
	Value   uint64
}

// Terminator reports whether the tag closes the current container.
func (t Tag) Terminator() bool {
	return t.Type == format.TypeUnknown
}

// terminatorByte closes one container frame.
const terminatorByte = 0x00

// AppendTerminator appends the container terminator to buf.
func AppendTerminator(buf []byte) []byte {
	return append(buf, terminatorByte)
}

// AppendTag encodes a field tag and returns the extended slice.
//
// value must be the raw wire value: post zig-zag for signed types, the
// presence bit for single-bit types, and zero for containers. The small
// form is always preferred for multi-bit values of 0 or 1, keeping the
// encoding canonical.
func AppendTag(buf []byte, typ format.PackType, idDelta uint64, value uint64) []byte {
	tag := uint64(typ) << 4

	switch {
	case typ.ValueMultiBit():
		if value <= 1 {
			tag |= (value & 0x1) << 2
			value >>= 1
			tag |= idDelta & 0x1
			idDelta >>= 1
			if idDelta > 0 {
				tag |= 0x2
			}
		} else {
			tag |= 0x8
			tag |= idDelta & 0x3
			idDelta >>= 2
			if idDelta > 0 {
				tag |= 0x4
			}
		}
	case typ.ValueSingleBit():
		tag |= (value & 0x1) << 3
		value >>= 1
		tag |= idDelta & 0x3
		idDelta >>= 2
		if idDelta > 0 {
			tag |= 0x4
		}
	default: // container
		tag |= idDelta & 0x7
		idDelta >>= 3
		if idDelta > 0 {
			tag |= 0x8
		}
	}

	buf = append(buf, byte(tag))

	// High order bits of the id delta, then the spilled value.
	if idDelta > 0 {
		buf = AppendUvarint(buf, idDelta)
	}
	if value > 0 {
		buf = AppendUvarint(buf, value)
	}

	return buf
}

// ReadTag decodes one tag byte and its trailing id/value varints from r.
//
// The size varint of str/bin fields is not consumed; it only exists when
// the decoded Value is non-zero and the caller decides whether to read or
// skip the payload.
func ReadTag(r io.ByteReader) (Tag, error) {
	b, err := r.ReadByte()
	if err != nil {
		if err == io.EOF {
			err = errs.ErrUnexpectedEOF
		}

		return Tag{}, err
	}

	if b == terminatorByte {
		return Tag{}, nil
	}

	tag := Tag{Type: format.PackType(b >> 4)}
	if !tag.Type.Valid() {
		return Tag{}, fmt.Errorf("%w: 0x%X", errs.ErrInvalidType, b>>4)
	}

	var (
		shift     uint
		moreID    bool
		moreValue bool
	)

	switch {
	case tag.Type.ValueMultiBit():
		if b&0x8 != 0 {
			tag.IDDelta = uint64(b & 0x3)
			shift, moreID = 2, b&0x4 != 0
			moreValue = true
		} else {
			tag.IDDelta = uint64(b & 0x1)
			shift, moreID = 1, b&0x2 != 0
			tag.Value = uint64(b>>2) & 0x1
		}
	case tag.Type.ValueSingleBit():
		tag.IDDelta = uint64(b & 0x3)
		shift, moreID = 2, b&0x4 != 0
		tag.Value = uint64(b>>3) & 0x1
	default: // container
		tag.IDDelta = uint64(b & 0x7)
		shift, moreID = 3, b&0x8 != 0
	}

	if moreID {
		more, err := ReadUvarint(r)
		if err != nil {
			return Tag{}, err
		}
		// Ids are 32-bit; reject deltas that could not name a real field
		// before the shift can wrap.
		if more > math.MaxUint32 {
			return Tag{}, fmt.Errorf("%w: delta continuation %d", errs.ErrInvalidIDDelta, more)
		}
		tag.IDDelta |= more << shift
	}

	if moreValue {
		if tag.Value, err = ReadUvarint(r); err != nil {
			return Tag{}, err
		}
	}

	return tag, nil
}
