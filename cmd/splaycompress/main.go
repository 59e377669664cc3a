// Command splaycompress compresses or decompresses standard input to
// standard output using the adaptive splay-tree codec.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/BenWiederhake/splaycompress"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run implements the CLI so that it can be exercised in tests without
// touching the real standard streams or calling os.Exit.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("splaycompress", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var decompress bool
	fs.BoolVar(&decompress, "d", false, "decompress instead of compress")
	fs.BoolVar(&decompress, "decompress", false, "decompress instead of compress")

	var flavorName string
	fs.StringVar(&flavorName, "f", "bit8", "symbol flavor: bit8, bit16-be, bit16-le")
	fs.StringVar(&flavorName, "flavor", "bit8", "symbol flavor: bit8, bit16-be, bit16-le")

	if err := fs.Parse(args); err != nil {
		return 2
	}

	flavor, ok := splaycompress.ParseFlavor(flavorName)
	if !ok {
		fmt.Fprintf(stderr, "splaycompress: unknown flavor %q\n", flavorName)
		return 2
	}

	// The semantically obvious wiring: -d selects decompression, the
	// default (false) selects compression.
	op := splaycompress.Compress
	if decompress {
		op = splaycompress.Decompress
	}

	if err := op(flavor, stdin, stdout); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}
