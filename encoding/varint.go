package encoding

import (
	"fmt"
	"io"

	"github.com/packlab/pack/errs"
)

// MaxVarintLen is the maximum encoded size of an unsigned 64-bit varint.
// Ten 7-bit groups cover 2^64-1.
const MaxVarintLen = 10

// AppendUvarint appends v to buf in little-endian base-128 form and returns
// the extended slice. The most significant bit of every byte except the
// last is the continuation bit.
func AppendUvarint(buf []byte, v uint64) []byte {
	for v >= 0x80 {
		buf = append(buf, byte(v)|0x80)
		v >>= 7
	}

	return append(buf, byte(v))
}

// UvarintLen returns the number of bytes AppendUvarint emits for v.
// This is a fast inline calculation without a temporary buffer.
func UvarintLen(v uint64) int {
	if v < 1<<7 {
		return 1
	}
	if v < 1<<14 {
		return 2
	}
	if v < 1<<21 {
		return 3
	}
	if v < 1<<28 {
		return 4
	}
	if v < 1<<35 {
		return 5
	}
	if v < 1<<42 {
		return 6
	}
	if v < 1<<49 {
		return 7
	}
	if v < 1<<56 {
		return 8
	}
	if v < 1<<63 {
		return 9
	}

	return MaxVarintLen
}

// ReadUvarint decodes a varint from r one byte at a time.
//
// It fails with errs.ErrUnterminatedVarint when the tenth byte still has
// the continuation bit set, and with errs.ErrUnexpectedEOF when the source
// ends first. Any other error from r is propagated as-is.
func ReadUvarint(r io.ByteReader) (uint64, error) {
	var v uint64
	for i := 0; i < MaxVarintLen; i++ {
		b, err := r.ReadByte()
		if err != nil {
			if err == io.EOF {
				err = errs.ErrUnexpectedEOF
			}

			return 0, err
		}

		v |= uint64(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return v, nil
		}
	}

	return 0, fmt.Errorf("%w: no terminating byte within %d bytes", errs.ErrUnterminatedVarint, MaxVarintLen)
}

// ZigZag maps a signed integer onto an unsigned one so that values of small
// magnitude, negative or positive, encode as short varints:
// 0, -1, 1, -2, ... map to 0, 1, 2, 3, ...
func ZigZag(v int64) uint64 {
	return uint64(v<<1) ^ uint64(v>>63) //nolint:gosec
}

// UnZigZag inverts ZigZag.
func UnZigZag(u uint64) int64 {
	return int64(u>>1) ^ -int64(u&1) //nolint:gosec
}
