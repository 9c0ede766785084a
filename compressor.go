package zstdfile

import "io"

// frameWriter is the streaming surface the compiled-in backend provides for
// compression. Close finalizes the frame.
type frameWriter interface {
	io.WriteCloser
	Flush() error
}

// A Compressor holds compression parameters and builds one-shot or
// streaming compressors from them. A Compressor carries no codec state of
// its own; each stream or one-shot call gets fresh encoder state, so a
// single Compressor may be reused freely.
type Compressor struct {
	level int
}

// NewCompressor returns a Compressor producing frames at the given zstd
// compression level (1-22). Level 0 selects DefaultLevel.
func NewCompressor(level int) *Compressor {
	if level == 0 {
		level = DefaultLevel
	}
	return &Compressor{level: level}
}

func (c *Compressor) levelOrDefault() int {
	if c == nil || c.level == 0 {
		return DefaultLevel
	}
	return c.level
}

// Compress performs one-shot compression of src, returning a complete zstd
// frame. The entire input must be materialized in memory; use StreamWriter
// for incremental output.
func (c *Compressor) Compress(src []byte) ([]byte, error) {
	return compressFrame(src, c.levelOrDefault())
}

// StreamWriter returns a Writer that compresses everything written to it
// into sink. closeSink controls whether closing the Writer also closes sink
// (when sink implements io.Closer).
func (c *Compressor) StreamWriter(sink io.Writer, closeSink bool) (*Writer, error) {
	enc, err := newFrameWriter(sink, c.levelOrDefault())
	if err != nil {
		return nil, err
	}
	return &Writer{enc: enc, sink: sink, closeSink: closeSink}, nil
}
