// Package encoding implements the leaf codecs of the pack wire format:
// unsigned base-128 varints, the zig-zag mapping for signed integers, and
// the one-byte field tag that multiplexes type, id delta and inline value.
//
// The package is deliberately free of buffering and container state; the
// pack package layers the streaming reader/writer façades on top of it.
package encoding
