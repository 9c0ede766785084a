//go:build cgo_zstd

package zstdfile

import (
	"io"

	"github.com/DataDog/zstd"
)

// Backend identifies the codec implementation compiled into the package.
const Backend = "datadog-cgo"

func newFrameWriter(w io.Writer, level int) (frameWriter, error) {
	return zstd.NewWriterLevel(w, level), nil
}

func newFrameReader(r io.Reader) (io.ReadCloser, error) {
	return zstd.NewReader(r), nil
}

func compressFrame(src []byte, level int) ([]byte, error) {
	return zstd.CompressLevel(nil, src, level)
}

func decompressFrame(src []byte) ([]byte, error) {
	return zstd.Decompress(nil, src)
}
