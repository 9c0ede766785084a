package zstdfile

// Compress performs one-shot compression of data at the given zstd level,
// returning a complete frame. Level 0 selects DefaultLevel.
//
// Equivalent to NewCompressor(level).Compress(data). Callers compressing in
// a tight loop should construct one Compressor and reuse it.
func Compress(data []byte, level int) ([]byte, error) {
	return NewCompressor(level).Compress(data)
}

// Decompress performs one-shot decompression of a complete zstd frame. See
// Decompressor.Decompress for maxOutputSize semantics.
//
// Equivalent to NewDecompressor().Decompress(data, maxOutputSize).
func Decompress(data []byte, maxOutputSize int) ([]byte, error) {
	return NewDecompressor().Decompress(data, maxOutputSize)
}

// CompressionRatio returns compressedSize relative to originalSize, where
// lower is better. E.g. 0.5 means the frame is half the original size.
func CompressionRatio(originalSize, compressedSize int64) float64 {
	if originalSize == 0 {
		return 0
	}
	return float64(compressedSize) / float64(originalSize)
}
