package zstdfile

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// DefaultLevel is the zstd compression level used when none is specified.
const DefaultLevel = 3

var (
	ErrInvalidMode     = errors.New("zstdfile: invalid open mode")
	ErrInvalidTarget   = errors.New("zstdfile: target must be a string path, []byte path, io.Reader or io.Writer")
	ErrSizeExceeded    = errors.New("zstdfile: decompressed size exceeds limit")
	ErrNotReadable     = errors.New("zstdfile: stream not opened for reading")
	ErrNotWritable     = errors.New("zstdfile: stream not opened for writing")
	ErrUnknownEncoding = errors.New("zstdfile: unknown text encoding")
)

// File is the object returned by Open: a binary Reader or Writer, or a text
// adapter when a text mode was requested. Calls against the direction the
// stream was not opened for fail with ErrNotReadable or ErrNotWritable.
type File interface {
	Read(p []byte) (int, error)
	Write(p []byte) (int, error)
	Close() error
}

// openMode is the resolved form of a mode string. Text framing is tracked
// separately from the read/write operation so append/exclusive-create
// distinctions survive normalization.
type openMode struct {
	write bool
	text  bool
	flag  int // os.OpenFile flag for path targets
}

// parseMode resolves a mode string before any resource is touched. The mode
// is normalized by stripping the text marker; the normalized token must be
// one of the recognized set.
func parseMode(mode string) (openMode, error) {
	normalized := strings.ReplaceAll(mode, "t", "")

	m := openMode{text: !strings.Contains(normalized, "b")}
	switch normalized {
	case "r", "rb":
		m.write = false
		m.flag = os.O_RDONLY
	case "w", "wb":
		m.write = true
		m.flag = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	case "a", "ab":
		m.write = true
		m.flag = os.O_WRONLY | os.O_CREATE | os.O_APPEND
	case "x", "xb":
		m.write = true
		m.flag = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	default:
		return openMode{}, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return m, nil
}
