// Package errs defines the sentinel errors shared across the pack codec.
//
// Callers match them with errors.Is; call sites wrap them with
// fmt.Errorf("%w: ...") to add context. Malformed wire data and I/O
// failures are returned as errors; caller contract violations on the
// write path panic instead (see the pack package documentation).
package errs

import "errors"

// Format errors: the wire data is malformed. Once one of these is
// returned the remainder of the pack is untrusted.
var (
	// ErrUnexpectedEOF indicates the input ended in the middle of a tag,
	// varint, or length-prefixed payload.
	ErrUnexpectedEOF = errors.New("unexpected end of pack data")

	// ErrUnterminatedVarint indicates a base-128 varint whose tenth byte
	// still has the continuation bit set.
	ErrUnterminatedVarint = errors.New("unterminated base-128 varint")

	// ErrInvalidType indicates a tag byte whose type nibble is outside the
	// closed wire-type set.
	ErrInvalidType = errors.New("invalid field type")

	// ErrTypeMismatch indicates a field whose decoded type differs from the
	// requested type.
	ErrTypeMismatch = errors.New("field type mismatch")

	// ErrFieldAlreadyRead indicates a read for an id at or below the last id
	// consumed in the current container.
	ErrFieldAlreadyRead = errors.New("field id was already read")

	// ErrFieldNotFound indicates a non-peek read for an id that is absent
	// from the current container.
	ErrFieldNotFound = errors.New("field does not exist")

	// ErrInvalidIDDelta indicates a decoded id delta that would push the
	// field id out of range.
	ErrInvalidIDDelta = errors.New("field id delta out of range")

	// ErrNotInArray indicates an array end with no matching array frame open.
	ErrNotInArray = errors.New("not in array")

	// ErrNotInObject indicates an object end with no matching object frame open.
	ErrNotInObject = errors.New("not in object")
)
