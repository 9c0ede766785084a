// Package zstdfile provides a file-object-oriented interface to Zstandard
// (zstd) streaming compression and decompression.
//
// It adapts a zstd codec backend into two shapes: one-shot byte-buffer
// transforms, and file-like streams that wrap an underlying readable or
// writable resource, optionally with text decoding layered on top of the
// binary stream.
//
// # Features
//
//   - Unified Open dispatcher for paths and already-open streams
//   - Familiar open modes: r, rb, rt, w, wb, wt, a, ab, at, x, xb, xt
//   - Explicit ownership of the underlying resource via WithCloseUnderlying
//   - One-shot Compress/Decompress with output-size capping
//   - Text mode with configurable encoding, error policy, and newlines
//   - Frame inspection helpers (magic bytes, content size, header size)
//   - Selectable codec backend (pure Go by default, cgo via build tag)
//
// # Quick Start
//
//	// Write a compressed file.
//	f, _ := zstdfile.Open("data.txt.zst", "wb")
//	f.Write([]byte("Hello, compressed world!"))
//	f.Close()
//
//	// Read it back.
//	f, _ = zstdfile.Open("data.txt.zst", "rb")
//	data, _ := io.ReadAll(f)
//	f.Close()
//
//	// One-shot transforms.
//	frame, _ := zstdfile.Compress([]byte("hello"), 3)
//	orig, _ := zstdfile.Decompress(frame, 0)
//
// # Resource Ownership
//
// When Open is given a path, the file it opens is always closed when the
// returned stream is closed. When Open is given an existing io.Reader or
// io.Writer, the caller keeps ownership: the stream leaves it open unless
// WithCloseUnderlying(true) is passed.
//
// A Writer must be closed to emit the zstd frame footer; an unclosed writer
// produces a truncated, undecodable frame.
//
// # Backends
//
// By default the pure Go codec from github.com/klauspost/compress/zstd is
// compiled in. Building with the cgo_zstd tag switches the codec to the
// libzstd bindings from github.com/DataDog/zstd. The Backend constant
// reports which one is active.
package zstdfile
