// Package splaycompress implements a general-purpose lossless stream
// codec built on an adaptive splay tree. Each symbol is encoded as the
// descent path through a binary tree covering the whole alphabet, and
// the tree is re-balanced by splaying after every symbol so that
// frequently seen symbols migrate toward the root and acquire shorter
// codes. The same deterministic sequence of mutations on both ends
// keeps encoder and decoder synchronized without any transmitted side
// information, header, or length prefix.
package splaycompress

import (
	"io"

	"github.com/BenWiederhake/splaycompress/internal/splay"
	"github.com/BenWiederhake/splaycompress/internal/symbol"
)

// Flavor selects the symbol width and byte order that a stream is
// encoded with. The codec is not self-describing: the flavor used to
// compress a stream must be known out-of-band to decompress it.
type Flavor int

const (
	// Symbol8 treats the input as a stream of 8-bit symbols (plain bytes).
	Symbol8 Flavor = iota
	// Symbol16BE treats the input as a stream of big-endian 16-bit symbols.
	Symbol16BE
	// Symbol16LE treats the input as a stream of little-endian 16-bit symbols.
	Symbol16LE
)

// String returns the CLI flag spelling of f.
func (f Flavor) String() string {
	switch f {
	case Symbol8:
		return "bit8"
	case Symbol16BE:
		return "bit16-be"
	case Symbol16LE:
		return "bit16-le"
	default:
		return "unknown"
	}
}

// alphabetSize returns the splay arena size this flavor's symbols range over.
func (f Flavor) alphabetSize() int {
	if f == Symbol8 {
		return 256
	}
	return 65536
}

func (f Flavor) newArena() *splay.Arena { return splay.NewArena(f.alphabetSize()) }

func (f Flavor) newSymbolReader(r io.Reader) symbol.Reader {
	switch f {
	case Symbol8:
		return symbol.NewReader8(r)
	case Symbol16BE:
		return symbol.NewReader16BE(r)
	case Symbol16LE:
		return symbol.NewReader16LE(r)
	default:
		panic("splaycompress: unknown flavor")
	}
}

func (f Flavor) newSymbolWriter(w io.Writer) symbol.Writer {
	switch f {
	case Symbol8:
		return symbol.NewWriter8(w)
	case Symbol16BE:
		return symbol.NewWriter16BE(w)
	case Symbol16LE:
		return symbol.NewWriter16LE(w)
	default:
		panic("splaycompress: unknown flavor")
	}
}

// ParseFlavor maps a CLI flag value (bit8, bit16-be, bit16-le) to a Flavor.
func ParseFlavor(s string) (Flavor, bool) {
	switch s {
	case "bit8":
		return Symbol8, true
	case "bit16-be":
		return Symbol16BE, true
	case "bit16-le":
		return Symbol16LE, true
	default:
		return 0, false
	}
}
