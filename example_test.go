package zstdfile_test

import (
	"bytes"
	"fmt"
	"io"
	"log"

	"github.com/hyperlight/zstdfile"
)

func ExampleCompress() {
	frame, err := zstdfile.Compress([]byte("Hello, compressed world!"), 3)
	if err != nil {
		log.Fatal(err)
	}

	data, err := zstdfile.Decompress(frame, 0)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(string(data))
	// Output: Hello, compressed world!
}

func ExampleOpen() {
	var buf bytes.Buffer

	w, err := zstdfile.Open(&buf, "wb")
	if err != nil {
		log.Fatal(err)
	}
	w.Write([]byte("streamed through zstd"))
	w.Close()

	r, err := zstdfile.Open(bytes.NewReader(buf.Bytes()), "rb")
	if err != nil {
		log.Fatal(err)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}
	r.Close()

	fmt.Println(string(data))
	// Output: streamed through zstd
}

func ExampleOpen_textMode() {
	var buf bytes.Buffer

	w, err := zstdfile.Open(&buf, "wt", zstdfile.WithEncoding("latin1"))
	if err != nil {
		log.Fatal(err)
	}
	io.WriteString(w, "café\n")
	w.Close()

	r, err := zstdfile.Open(bytes.NewReader(buf.Bytes()), "rt",
		zstdfile.WithEncoding("latin1"))
	if err != nil {
		log.Fatal(err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		log.Fatal(err)
	}
	r.Close()

	fmt.Print(string(text))
	// Output: café
}

func ExampleDecompressor_Decompress() {
	frame, _ := zstdfile.Compress(bytes.Repeat([]byte("x"), 1000), 1)

	_, err := zstdfile.NewDecompressor().Decompress(frame, 100)
	fmt.Println(err != nil)
	// Output: true
}
