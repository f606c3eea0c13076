package compress

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/arloliu/hoverline/errs"
	"github.com/arloliu/hoverline/format"
)

// Compressor compresses a complete payload.
type Compressor interface {
	// Compress returns a newly allocated compressed copy of data.
	// Empty input yields empty output.
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor of the same algorithm.
type Decompressor interface {
	// Decompress returns the original payload. It fails on corrupted input or
	// input produced by a different algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions.
type Codec interface {
	Compressor
	Decompressor
	// Type returns the algorithm implemented by the codec.
	Type() format.CompressionType
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for a compression type.
//
// Returns errs.ErrUnsupportedCompression for unknown types.
func GetCodec(ct format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[ct]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("%w: %s", errs.ErrUnsupportedCompression, ct)
}

var extensions = map[string]format.CompressionType{
	".zst":  format.CompressionZstd,
	".zstd": format.CompressionZstd,
	".s2":   format.CompressionS2,
	".lz4":  format.CompressionLZ4,
}

// FromExtension detects the compression of a file from its last extension.
//
// It returns the compression type and the path with the compression
// extension removed. Files without a known extension are CompressionNone and
// the path is returned unchanged.
func FromExtension(path string) (format.CompressionType, string) {
	ext := strings.ToLower(filepath.Ext(path))
	if ct, ok := extensions[ext]; ok {
		return ct, path[:len(path)-len(ext)]
	}

	return format.CompressionNone, path
}

// Extension returns the file extension written for a compression type,
// or "" for CompressionNone and unknown types.
func Extension(ct format.CompressionType) string {
	switch ct {
	case format.CompressionZstd:
		return ".zst"
	case format.CompressionS2:
		return ".s2"
	case format.CompressionLZ4:
		return ".lz4"
	default:
		return ""
	}
}
