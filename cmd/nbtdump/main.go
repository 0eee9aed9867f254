// nbtdump prints the tag tree of an NBT file as indented text.
//
// Usage:
//
//	nbtdump [--raw] [--max-depth N] FILE
//
// Compressed containers (gzip, zlib, zstd, lz4) are detected and unwrapped
// automatically unless --raw is given.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/voxelio/nbt"
	"github.com/voxelio/nbt/encoding"
	"github.com/voxelio/nbt/tag"
)

func main() {
	raw := pflag.Bool("raw", false, "treat the input as an uncompressed tag stream")
	maxDepth := pflag.Int("max-depth", encoding.DefaultMaxDepth, "maximum nesting depth accepted by the decoder")
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: nbtdump [flags] FILE\n")
		pflag.PrintDefaults()
	}
	pflag.Parse()

	if pflag.NArg() != 1 {
		pflag.Usage()
		os.Exit(2)
	}

	if err := run(pflag.Arg(0), *raw, *maxDepth); err != nil {
		fmt.Fprintf(os.Stderr, "nbtdump: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, raw bool, maxDepth int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	opt := encoding.WithMaxDepth(maxDepth)

	var root tag.Tag
	if raw {
		root, err = nbt.DecodeBytes(data, opt)
	} else {
		root, err = nbt.DecodeCompressed(data, opt)
	}
	if err != nil {
		return err
	}

	fmt.Print(tag.Dump(root))

	return nil
}
