package zstdfile

import (
	"io"
	"io/fs"
	"sync"
)

// Writer is a writable stream that buffers and compresses blocks into an
// underlying sink. It must be closed to emit the closing frame footer;
// an unclosed Writer loses the tail of the compressed output.
type Writer struct {
	enc       frameWriter
	sink      io.Writer
	closeSink bool

	bytesWritten int64
	closed       bool
	mu           sync.Mutex
}

// Write compresses p into the stream. The returned count is of
// uncompressed input bytes.
func (w *Writer) Write(p []byte) (n int, err error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return 0, fs.ErrClosed
	}

	n, err = w.enc.Write(p)
	if n > 0 {
		w.bytesWritten += int64(n)
	}
	return n, err
}

// WriteString writes a string to the stream.
func (w *Writer) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// Read always fails; the stream was opened for writing.
func (w *Writer) Read(p []byte) (int, error) {
	return 0, ErrNotReadable
}

// Flush writes buffered data to the sink as a complete block. The frame
// stays open; only Close finalizes it.
func (w *Writer) Flush() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return fs.ErrClosed
	}
	return w.enc.Flush()
}

// Close finalizes the frame and, if the Writer owns it, closes the
// underlying sink. The sink-closing policy is honored even when finalizing
// the frame fails. Closing twice is a no-op.
func (w *Writer) Close() error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return nil
	}
	w.closed = true

	err := w.enc.Close()
	if w.closeSink {
		if c, ok := w.sink.(io.Closer); ok {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}
	return err
}

// BytesWritten returns the number of uncompressed bytes written so far.
func (w *Writer) BytesWritten() int64 {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bytesWritten
}
