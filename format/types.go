package format

type (
	// PackType identifies the wire type of a pack field.
	PackType uint8

	// CompressionType identifies the algorithm used to compress a finished pack.
	CompressionType uint8
)

const (
	TypeUnknown PackType = 0x0 // TypeUnknown is the reserved sentinel; never emitted on the wire.
	TypeArray   PackType = 0x1 // TypeArray is a container of positionally identified fields.
	TypeBin     PackType = 0x2 // TypeBin is a length-prefixed byte blob.
	TypeBool    PackType = 0x3 // TypeBool is a boolean carried entirely in the tag byte.
	TypeI32     PackType = 0x4 // TypeI32 is a zig-zag encoded signed 32-bit integer.
	TypeI64     PackType = 0x5 // TypeI64 is a zig-zag encoded signed 64-bit integer.
	TypeObj     PackType = 0x6 // TypeObj is a container of id-addressed fields.
	TypePtr     PackType = 0x7 // TypePtr is a raw in-process address; packs carrying it are not portable.
	TypeStr     PackType = 0x8 // TypeStr is a length-prefixed string.
	TypeTime    PackType = 0x9 // TypeTime is a zig-zag encoded Unix timestamp in seconds.
	TypeU32     PackType = 0xA // TypeU32 is an unsigned 32-bit integer.
	TypeU64     PackType = 0xB // TypeU64 is an unsigned 64-bit integer.

	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

// typeInfo classifies how a PackType packs its value into the field tag.
// At most one of the value categories applies; types with neither set are
// containers.
type typeInfo struct {
	valueSingleBit bool // tag carries only a presence/non-zero flag
	valueMultiBit  bool // tag can inline small values, varint otherwise
	size           bool // a varint length prefix follows when non-empty
}

var typeInfoTable = [TypeU64 + 1]typeInfo{
	TypeBin:  {valueSingleBit: true, size: true},
	TypeBool: {valueSingleBit: true},
	TypeI32:  {valueMultiBit: true},
	TypeI64:  {valueMultiBit: true},
	TypePtr:  {valueMultiBit: true},
	TypeStr:  {valueSingleBit: true, size: true},
	TypeTime: {valueMultiBit: true},
	TypeU32:  {valueMultiBit: true},
	TypeU64:  {valueMultiBit: true},
}

// Valid reports whether t is a member of the closed wire-type set.
// TypeUnknown is not valid; it only appears as the decoded form of the
// container terminator.
func (t PackType) Valid() bool {
	return t > TypeUnknown && t <= TypeU64
}

// ValueSingleBit reports whether the tag byte carries the entire value as a
// single presence bit (bool, and the non-empty flag of bin/str).
func (t PackType) ValueSingleBit() bool {
	return t <= TypeU64 && typeInfoTable[t].valueSingleBit
}

// ValueMultiBit reports whether the type is integer-like: small values are
// inlined into the tag byte, larger ones spill to a trailing varint.
func (t PackType) ValueMultiBit() bool {
	return t <= TypeU64 && typeInfoTable[t].valueMultiBit
}

// HasSize reports whether a non-empty value is followed by a varint length
// prefix and that many payload bytes (bin, str).
func (t PackType) HasSize() bool {
	return t <= TypeU64 && typeInfoTable[t].size
}

// Container reports whether the type opens a nested frame (obj, array).
func (t PackType) Container() bool {
	return t == TypeObj || t == TypeArray
}

func (t PackType) String() string {
	switch t {
	case TypeUnknown:
		return "unknown"
	case TypeArray:
		return "array"
	case TypeBin:
		return "bin"
	case TypeBool:
		return "bool"
	case TypeI32:
		return "i32"
	case TypeI64:
		return "i64"
	case TypeObj:
		return "obj"
	case TypePtr:
		return "ptr"
	case TypeStr:
		return "str"
	case TypeTime:
		return "time"
	case TypeU32:
		return "u32"
	case TypeU64:
		return "u64"
	default:
		return "invalid"
	}
}

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}
