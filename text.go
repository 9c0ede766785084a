package zstdfile

import (
	"fmt"
	"io"
	"io/fs"
	"sync"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// textFile layers character decoding on top of a binary stream. It
// exclusively owns the wrapped stream: closing the adapter flushes any
// pending transformed output and closes the stream.
//
// Read returns UTF-8 text decoded from the stream's encoding; Write takes
// UTF-8 text and encodes it before compression.
type textFile struct {
	f File
	r io.Reader         // decode chain, read modes only
	w *transform.Writer // encode chain, write modes only

	closed bool
	mu     sync.Mutex
}

// newTextFile wraps a binary stream per the text options resolved by Open.
// The encoding is resolved by the caller before any resource exists, so
// construction cannot fail.
func newTextFile(f File, readMode bool, enc encoding.Encoding, o options) *textFile {
	tf := &textFile{f: f}
	if readMode {
		ts := []transform.Transformer{enc.NewDecoder()}
		if !o.newlineSet {
			ts = append(ts, newlineNormalizer{})
		}
		tf.r = transform.NewReader(f, transform.Chain(ts...))
		return tf
	}

	var ts []transform.Transformer
	if o.newlineSet && o.newline != "" && o.newline != "\n" {
		ts = append(ts, newlineReplacer{replacement: o.newline})
	}
	e := enc.NewEncoder()
	if o.encodingErrors == EncodingErrorsReplace {
		e = encoding.ReplaceUnsupported(e)
	}
	ts = append(ts, e)
	tf.w = transform.NewWriter(f, transform.Chain(ts...))
	return tf
}

// lookupEncoding resolves an encoding by name, defaulting to UTF-8.
func lookupEncoding(name string) (encoding.Encoding, error) {
	if name == "" {
		return unicode.UTF8, nil
	}
	e, err := htmlindex.Get(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, name)
	}
	return e, nil
}

// Read decodes text from the wrapped stream into p as UTF-8.
func (t *textFile) Read(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, fs.ErrClosed
	}
	if t.r == nil {
		return 0, ErrNotReadable
	}
	return t.r.Read(p)
}

// Write encodes the UTF-8 text in p into the wrapped stream.
func (t *textFile) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return 0, fs.ErrClosed
	}
	if t.w == nil {
		return 0, ErrNotWritable
	}
	return t.w.Write(p)
}

// WriteString writes a string to the stream.
func (t *textFile) WriteString(s string) (int, error) {
	return t.Write([]byte(s))
}

// Close flushes pending encoded output and closes the wrapped stream.
// Closing twice is a no-op.
func (t *textFile) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.closed {
		return nil
	}
	t.closed = true

	var err error
	if t.w != nil {
		err = t.w.Close()
	}
	if cerr := t.f.Close(); cerr != nil && err == nil {
		err = cerr
	}
	return err
}

// newlineNormalizer folds "\r\n" and bare "\r" to "\n" on the read path.
type newlineNormalizer struct {
	transform.NopResetter
}

func (newlineNormalizer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		c := src[nSrc]
		if c != '\r' {
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}
		if nSrc == len(src)-1 && !atEOF {
			// Cannot tell yet whether a \n follows this \r.
			return nDst, nSrc, transform.ErrShortSrc
		}
		dst[nDst] = '\n'
		nDst++
		nSrc++
		if nSrc < len(src) && src[nSrc] == '\n' {
			nSrc++
		}
	}
	return nDst, nSrc, nil
}

// newlineReplacer rewrites "\n" to a configured sequence on the write path.
type newlineReplacer struct {
	transform.NopResetter
	replacement string
}

func (t newlineReplacer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if src[nSrc] == '\n' {
			if nDst+len(t.replacement) > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], t.replacement)
			nSrc++
			continue
		}
		if nDst >= len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		dst[nDst] = src[nSrc]
		nDst++
		nSrc++
	}
	return nDst, nSrc, nil
}
