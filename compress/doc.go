// Package compress provides compression codecs for finished packs.
//
// The pack wire format deliberately carries no compression of its own; a
// pack that must be stored or shipped is compressed as a whole, after the
// writer has finalized it, and decompressed back to the identical byte
// sequence before a reader opens it.
//
// Four algorithms are built in, selected via format.CompressionType:
//
//   - None: pass-through, for data that is incompressible or latency-bound
//   - Zstd: best ratio, for cold storage and bandwidth-bound transfers
//   - S2: balanced speed and ratio, for hot-path archival
//   - LZ4: fastest decompression, for read-heavy retrieval
//
// The default Zstd implementation is pure Go (klauspost/compress). Builds
// with the gozstd tag switch to the cgo libzstd bindings instead, which
// trade build complexity for throughput.
//
// All codecs are safe for concurrent use.
package compress
