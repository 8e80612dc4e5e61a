package compress

import (
	"fmt"

	"github.com/packlab/pack/format"
)

// Compressor compresses a finished pack for archival or transport.
//
// The codec itself never compresses; these implementations operate on the
// complete byte sequence a pack writer produced.
//
// Memory management:
//   - Returned slice is owned by the caller; it is newly allocated except
//     for NoOpCompressor, which returns the input slice itself
//   - Input slice is not modified
//   - Internal buffers may be reused for efficiency
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a compressed pack to the exact byte sequence the
// writer produced, so it can be handed to a pack reader.
//
// Implementations validate the compressed framing and return an error if
// the data is corrupted or uses an incompatible format.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
