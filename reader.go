package zstdfile

import (
	"io"
	"io/fs"
	"sync"
)

// Reader is a readable stream that pulls and decompresses blocks from an
// underlying source on demand. It is not seekable; each Read continues the
// same frame where the previous one left off.
type Reader struct {
	dec         io.ReadCloser
	source      io.Reader
	closeSource bool

	bytesRead int64
	closed    bool
	mu        sync.Mutex
}

// Read decompresses up to len(p) bytes into p.
func (r *Reader) Read(p []byte) (n int, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return 0, fs.ErrClosed
	}

	n, err = r.dec.Read(p)
	if n > 0 {
		r.bytesRead += int64(n)
		// Defer EOF to the next call, matching file read behavior.
		if err == io.EOF {
			err = nil
		}
	}
	return n, err
}

// Write always fails; the stream was opened for reading.
func (r *Reader) Write(p []byte) (int, error) {
	return 0, ErrNotWritable
}

// Close releases the decoder and, if the Reader owns it, closes the
// underlying source. Closing twice is a no-op.
func (r *Reader) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil
	}
	r.closed = true

	err := r.dec.Close()
	if r.closeSource {
		if c, ok := r.source.(io.Closer); ok {
			if cerr := c.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}
	}
	return err
}

// BytesRead returns the number of decompressed bytes read so far.
func (r *Reader) BytesRead() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bytesRead
}
