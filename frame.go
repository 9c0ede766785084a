package zstdfile

import (
	"bytes"

	"github.com/klauspost/compress/zstd"
)

// frameMagic opens every standard zstd frame.
var frameMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}

// ContentSizeUnknown is reported when a frame header does not declare the
// decompressed size.
const ContentSizeUnknown = -1

// IsZstdFrame reports whether data begins with a zstd frame, standard or
// skippable.
func IsZstdFrame(data []byte) bool {
	if len(data) < 4 {
		return false
	}
	if bytes.Equal(data[:4], frameMagic) {
		return true
	}
	// Skippable frames use little-endian magic 0x184D2A50 through 0x184D2A5F.
	return data[0]&0xf0 == 0x50 && data[1] == 0x2a && data[2] == 0x4d && data[3] == 0x18
}

// FrameParameters describes the header of a zstd frame.
type FrameParameters struct {
	ContentSize int64 // ContentSizeUnknown if the header does not declare it
	WindowSize  uint64
	DictID      uint32
	HasChecksum bool
	Skippable   bool
}

// GetFrameParameters parses the frame header at the start of data.
func GetFrameParameters(data []byte) (FrameParameters, error) {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return FrameParameters{}, err
	}
	p := FrameParameters{
		ContentSize: ContentSizeUnknown,
		WindowSize:  h.WindowSize,
		DictID:      h.DictionaryID,
		HasChecksum: h.HasCheckSum,
		Skippable:   h.Skippable,
	}
	if h.HasFCS {
		p.ContentSize = int64(h.FrameContentSize)
	}
	return p, nil
}

// FrameContentSize returns the decompressed size declared in the frame
// header at the start of data, or ContentSizeUnknown if the header does not
// carry one.
func FrameContentSize(data []byte) (int64, error) {
	p, err := GetFrameParameters(data)
	if err != nil {
		return 0, err
	}
	return p.ContentSize, nil
}

// FrameHeaderSize returns the size in bytes of the frame header at the
// start of data.
func FrameHeaderSize(data []byte) (int, error) {
	var h zstd.Header
	if err := h.Decode(data); err != nil {
		return 0, err
	}
	return h.HeaderSize, nil
}
