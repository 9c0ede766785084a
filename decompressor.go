package zstdfile

import (
	"fmt"
	"io"
)

// A Decompressor builds one-shot or streaming decompressors. Like
// Compressor it carries no codec state; each call gets fresh decoder state.
type Decompressor struct{}

// NewDecompressor returns a Decompressor with default settings.
func NewDecompressor() *Decompressor {
	return &Decompressor{}
}

// Decompress performs one-shot decompression of a complete zstd frame.
//
// A maxOutputSize of zero trusts the frame's content-size hint or grows the
// output as needed. A nonzero value caps the output: frames that would
// produce more fail with an error wrapping ErrSizeExceeded. Malformed input
// fails with the codec's own error; truncated or garbage output is never
// returned silently.
func (d *Decompressor) Decompress(src []byte, maxOutputSize int) ([]byte, error) {
	p, err := GetFrameParameters(src)
	if err != nil {
		return nil, err
	}
	if maxOutputSize > 0 && p.ContentSize != ContentSizeUnknown && p.ContentSize > int64(maxOutputSize) {
		return nil, fmt.Errorf("%w: frame declares %d bytes, limit %d", ErrSizeExceeded, p.ContentSize, maxOutputSize)
	}
	out, err := decompressFrame(src)
	if err != nil {
		return nil, err
	}
	// The content-size hint is optional and may be absent or wrong; the cap
	// is enforced against the actual output as well.
	if maxOutputSize > 0 && len(out) > maxOutputSize {
		return nil, fmt.Errorf("%w: frame produced %d bytes, limit %d", ErrSizeExceeded, len(out), maxOutputSize)
	}
	return out, nil
}

// StreamReader returns a Reader that lazily decompresses blocks from source
// on demand. closeSource controls whether closing the Reader also closes
// source (when source implements io.Closer).
func (d *Decompressor) StreamReader(source io.Reader, closeSource bool) (*Reader, error) {
	dec, err := newFrameReader(source)
	if err != nil {
		return nil, err
	}
	return &Reader{dec: dec, source: source, closeSource: closeSource}, nil
}
