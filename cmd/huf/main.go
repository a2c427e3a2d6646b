// Command huf compresses a file into a .huf archive, or restores the
// original from one.
//
//     huf -c file        writes file.huf
//     huf -d file.huf    writes file-recovered (the original extension,
//                        if any, is kept after the -recovered marker)
//
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bitpatch/huf"
)

const archiveSuffix = ".huf"

func main() {
	compress := flag.Bool("c", false, "compress file using the Huffman codec")
	decompress := flag.Bool("d", false, "decompress a "+archiveSuffix+" archive")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 || *compress == *decompress {
		usage()
		os.Exit(1)
	}

	name := flag.Arg(0)
	var err error
	if *compress {
		err = compressFile(name)
	} else {
		err = decompressFile(name)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "huf:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: huf -c|-d <file>")
	fmt.Fprintln(os.Stderr, "  -c\tcompress <file> into <file>"+archiveSuffix)
	fmt.Fprintln(os.Stderr, "  -d\tdecompress a "+archiveSuffix+" archive")
}

func compressFile(name string) error {
	in, err := os.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(name + archiveSuffix)
	if err != nil {
		return err
	}
	if err := huf.Compress(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

func decompressFile(name string) error {
	if !strings.HasSuffix(name, archiveSuffix) {
		return fmt.Errorf("%s: must be a %s archive", name, archiveSuffix)
	}

	in, err := os.Open(name)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(recoveredName(strings.TrimSuffix(name, archiveSuffix)))
	if err != nil {
		return err
	}
	if err := huf.Decompress(in, out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// recoveredName derives the output name for a restored file: photo.png
// becomes photo-recovered.png, and an extensionless name simply gets
// -recovered appended.
func recoveredName(name string) string {
	if ext := filepath.Ext(name); ext != "" {
		return strings.TrimSuffix(name, ext) + "-recovered" + ext
	}
	return name + "-recovered"
}
