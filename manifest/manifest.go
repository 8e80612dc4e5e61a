// Package manifest carries the sample ManifestFileData payload used by the
// layers built on top of the pack codec, and seals it into a pack together
// with an integrity digest.
package manifest

import (
	"fmt"

	"google.golang.org/protobuf/proto"

	"github.com/packlab/pack"
	"github.com/packlab/pack/internal/hash"
)

// Field ids of a sealed manifest pack.
const (
	fieldData   = 1 // bin: serialized ManifestFileData
	fieldDigest = 2 // u64: xxHash64 of the serialized bytes
)

// Seal serializes m and wraps it in a pack together with the xxHash64
// digest of the serialized bytes.
func Seal(m *ManifestFileData) ([]byte, error) {
	data, err := proto.Marshal(m)
	if err != nil {
		return nil, err
	}

	w, err := pack.NewBufferWriter()
	if err != nil {
		return nil, err
	}
	if err := w.WriteBin(fieldData, data); err != nil {
		return nil, err
	}
	if err := w.WriteU64(fieldDigest, hash.Sum64(data)); err != nil {
		return nil, err
	}
	if err := w.End(); err != nil {
		return nil, err
	}

	return w.Bytes(), nil
}

// Open unwraps a sealed manifest pack, verifies the digest and
// deserializes the message.
func Open(sealed []byte) (*ManifestFileData, error) {
	r := pack.NewBytesReader(sealed)

	data, err := r.ReadBinDefault(fieldData)
	if err != nil {
		return nil, err
	}
	sum, err := r.ReadU64(fieldDigest)
	if err != nil {
		return nil, err
	}
	if err := r.End(); err != nil {
		return nil, err
	}

	if computed := hash.Sum64(data); computed != sum {
		return nil, fmt.Errorf("manifest digest mismatch: stored %016x, computed %016x", sum, computed)
	}

	m := &ManifestFileData{}
	if err := proto.Unmarshal(data, m); err != nil {
		return nil, err
	}

	return m, nil
}
