//go:build !cgo_zstd

package zstdfile

import (
	"io"

	"github.com/klauspost/compress/zstd"
)

// Backend identifies the codec implementation compiled into the package.
const Backend = "klauspost"

func encoderOptions(level int) []zstd.EOption {
	return []zstd.EOption{
		zstd.WithEncoderLevel(zstd.EncoderLevelFromZstd(level)),
		zstd.WithEncoderConcurrency(1),
		// Empty input must still produce a decodable frame.
		zstd.WithZeroFrames(true),
	}
}

func newFrameWriter(w io.Writer, level int) (frameWriter, error) {
	return zstd.NewWriter(w, encoderOptions(level)...)
}

func newFrameReader(r io.Reader) (io.ReadCloser, error) {
	dec, err := zstd.NewReader(r, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	return dec.IOReadCloser(), nil
}

func compressFrame(src []byte, level int) ([]byte, error) {
	// One-shot frames know their input up front and must declare its size in
	// the header, whatever the input length. Without single-segment mode the
	// encoder omits the content-size field for inputs of a window or less.
	opts := append(encoderOptions(level), zstd.WithSingleSegment(true))
	enc, err := zstd.NewWriter(nil, opts...)
	if err != nil {
		return nil, err
	}
	defer enc.Close()
	return enc.EncodeAll(src, make([]byte, 0, enc.MaxEncodedSize(len(src)))), nil
}

func decompressFrame(src []byte) ([]byte, error) {
	dec, err := zstd.NewReader(nil, zstd.WithDecoderConcurrency(1))
	if err != nil {
		return nil, err
	}
	defer dec.Close()
	return dec.DecodeAll(src, nil)
}
