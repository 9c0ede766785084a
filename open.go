package zstdfile

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
)

// Option configures a call to Open.
type Option interface {
	apply(*options)
}

// options holds the per-call Open configuration.
type options struct {
	cctx            *Compressor
	dctx            *Decompressor
	encoding        string
	encodingErrors  string
	newline         string
	newlineSet      bool
	closeUnderlying bool
}

// optionFunc wraps a function to implement Option.
type optionFunc func(*options)

func (f optionFunc) apply(o *options) { f(o) }

// WithCompressor supplies the Compressor to use in write modes. The caller
// retains ownership. No check is made that the context matches the resolved
// operation; a mismatch surfaces as a codec error downstream.
func WithCompressor(c *Compressor) Option {
	return optionFunc(func(o *options) {
		o.cctx = c
	})
}

// WithDecompressor supplies the Decompressor to use in read modes. The
// caller retains ownership.
func WithDecompressor(d *Decompressor) Option {
	return optionFunc(func(o *options) {
		o.dctx = d
	})
}

// WithEncoding sets the character encoding used in text modes, by IANA or
// WHATWG name ("utf-8", "latin1", "utf-16le", ...). Default is UTF-8.
// Ignored in binary modes.
func WithEncoding(name string) Option {
	return optionFunc(func(o *options) {
		o.encoding = name
	})
}

// Text-mode encoding error policies for WithEncodingErrors.
const (
	EncodingErrorsStrict  = "strict"
	EncodingErrorsReplace = "replace"
)

// WithEncodingErrors sets how text-mode encoding errors are handled:
// EncodingErrorsStrict fails on runes the target encoding cannot represent,
// EncodingErrorsReplace substitutes them. Default is strict. The value is
// passed to the text layer unvalidated; unrecognized values behave as
// strict.
func WithEncodingErrors(policy string) Option {
	return optionFunc(func(o *options) {
		o.encodingErrors = policy
	})
}

// WithNewline sets text-mode newline handling. When unset, reads normalize
// "\r\n" and "\r" to "\n" and writes pass "\n" through unchanged. An empty
// string disables all translation. Any other value is written in place of
// "\n" and disables read normalization.
func WithNewline(nl string) Option {
	return optionFunc(func(o *options) {
		o.newline = nl
		o.newlineSet = true
	})
}

// WithCloseUnderlying controls whether closing the returned stream also
// closes a caller-supplied target. Default is false: the caller owns
// streams it hands in and must opt in to having them closed. For path
// targets the option is ignored; a file the dispatcher opened is always
// closed by the dispatcher's stream.
func WithCloseUnderlying(v bool) Option {
	return optionFunc(func(o *options) {
		o.closeUnderlying = v
	})
}

// Open resolves a target and mode into a stream with zstd compression or
// decompression.
//
// target may be a string path, a []byte path, or an already-open stream:
// an io.Reader for read modes, an io.Writer for write modes. Path targets
// are opened through os.OpenFile with the flags the mode implies (truncate
// for w, append for a, exclusive create for x).
//
// mode is one of r, rb, rt, w, wb, wt, a, ab, at, x, xb, xt. The t (or the
// absence of b) selects text framing. Unrecognized modes fail with
// ErrInvalidMode before any resource is touched; unrecognized targets fail
// with ErrInvalidTarget.
//
// Binary modes return a *Reader or *Writer. Text modes wrap the binary
// stream in a text adapter honoring WithEncoding, WithEncodingErrors and
// WithNewline; closing the adapter closes the wrapped stream.
func Open(target any, mode string, opts ...Option) (File, error) {
	m, err := parseMode(mode)
	if err != nil {
		return nil, err
	}

	var o options
	for _, opt := range opts {
		opt.apply(&o)
	}

	// Text modes resolve their encoding now, while failure is still free of
	// side effects: a failed Open must not open a file or emit a frame.
	var textEnc encoding.Encoding
	if m.text {
		var err error
		textEnc, err = lookupEncoding(o.encoding)
		if err != nil {
			return nil, err
		}
	}

	// Resolve the underlying resource and its closing policy before any
	// codec state is built.
	var (
		src             io.Reader
		dst             io.Writer
		pathOwned       io.Closer
		closeUnderlying = o.closeUnderlying
	)
	switch t := target.(type) {
	case string, []byte:
		path, ok := t.(string)
		if !ok {
			path = string(t.([]byte))
		}
		fh, err := os.OpenFile(path, m.flag, 0o666)
		if err != nil {
			return nil, err
		}
		// A dispatcher-opened file is always dispatcher-closed.
		closeUnderlying = true
		pathOwned = fh
		src, dst = fh, fh
	default:
		r, okR := target.(io.Reader)
		w, okW := target.(io.Writer)
		switch {
		case !okR && !okW:
			return nil, fmt.Errorf("%w: got %T", ErrInvalidTarget, target)
		case !m.write && !okR:
			return nil, fmt.Errorf("%w: mode %q needs an io.Reader, got %T", ErrInvalidTarget, mode, target)
		case m.write && !okW:
			return nil, fmt.Errorf("%w: mode %q needs an io.Writer, got %T", ErrInvalidTarget, mode, target)
		}
		src, dst = r, w
	}

	var f File
	if m.write {
		cctx := o.cctx
		if cctx == nil {
			cctx = NewCompressor(DefaultLevel)
		}
		w, err := cctx.StreamWriter(dst, closeUnderlying)
		if err != nil {
			closeOpened(pathOwned)
			return nil, err
		}
		f = w
	} else {
		dctx := o.dctx
		if dctx == nil {
			dctx = NewDecompressor()
		}
		r, err := dctx.StreamReader(src, closeUnderlying)
		if err != nil {
			closeOpened(pathOwned)
			return nil, err
		}
		f = r
	}

	if m.text {
		return newTextFile(f, !m.write, textEnc, o), nil
	}
	return f, nil
}

// closeOpened closes a file the dispatcher opened itself when stream
// construction fails after the open, keeping the no-leak guarantee.
func closeOpened(c io.Closer) {
	if c != nil {
		c.Close()
	}
}
