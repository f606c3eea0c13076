// Package compress provides the codecs used for compressed dataset files.
//
// Supported algorithms:
//   - None: data passes through unchanged
//   - Zstd: klauspost/compress/zstd with pooled encoders and decoders
//   - S2: klauspost/compress/s2 block format
//   - LZ4: pierrec/lz4 frame format
//
// Codecs are looked up by type, or by file extension:
//
//	codec, err := compress.GetCodec(format.CompressionZstd)
//	packed, err := codec.Compress(csvBytes)
//
//	ct, base := compress.FromExtension("cpu.csv.zst") // Zstd, "cpu.csv"
//
// Every codec's output is self-describing, so Decompress needs no size hint.
package compress
