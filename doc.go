// Package pack implements a compact, self-describing binary serialization
// format for streams of typed, identified fields.
//
// A pack is a forward-only byte sequence of fields. Each field is an
// (id, type, value) triple; ids are 1-based and strictly increasing within
// a container, and only the delta from the previous id is carried on the
// wire. Small integers and booleans fit entirely inside the one-byte field
// tag; larger values spill into base-128 varints, and strings and binary
// blobs follow as length-prefixed payloads. Objects and arrays nest
// arbitrarily and each is closed by a single 0x00 terminator, as is the
// pack itself.
//
// Readers tolerate schema evolution in both directions: unknown fields are
// skipped by id, and fields a writer elided (because they held their
// default value) read back as defaults. Writers coalesce elided and
// explicitly null fields into the next field's id delta, so omitted fields
// cost zero bytes.
//
// # Writing
//
//	w, _ := pack.NewBufferWriter()
//	_ = w.WriteBool(1, true)
//	_ = w.ObjBegin(2)
//	_ = w.WriteStr(1, "archive-a")
//	_ = w.WriteU64Default(2, 0, 0) // elided, reads back as 0
//	_ = w.ObjEnd()
//	_ = w.End()
//	data := w.Bytes()
//
// # Reading
//
//	r := pack.NewBytesReader(data)
//	ok, _ := r.ReadBool(1)
//	_ = r.ObjBegin(2)
//	name, _ := r.ReadStr(1)
//	size, _ := r.ReadU64Default(2, 0)
//	_ = r.ObjEnd()
//	_ = r.End()
//
// Passing id 0 to any read or write means "the next field": the last id at
// the current nesting level plus one (plus any pending nulls on the write
// side).
//
// # Errors
//
// Malformed wire data and I/O failures are returned as errors; match them
// with errors.Is against the sentinels in the errs package. Contract
// violations by the caller on the write path — emitting an id at or below
// the last one, ending a container of the wrong kind, finishing with open
// frames — are programmer errors and panic.
//
// Reader and Writer instances are single-threaded: each owns its buffer
// and container stack exclusively and must not be shared across goroutines
// without external synchronization. Independent instances are fully
// concurrent.
//
// Packs containing ptr fields hold raw in-process addresses and must never
// be persisted or shipped across a process boundary.
package pack
