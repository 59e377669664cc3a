package splaycompress

import (
	"io"

	"github.com/dsnet/golib/errs"

	"github.com/BenWiederhake/splaycompress/internal/bitio"
	"github.com/BenWiederhake/splaycompress/internal/splay"
)

// Compress reads symbols of the given flavor from r and writes the
// splay-coded bit stream to w. The returned error is nil on success, or
// the first I/O error encountered reading r or writing w (including a
// partial trailing 16-bit symbol, reported as io.ErrUnexpectedEOF).
func Compress(f Flavor, r io.Reader, w io.Writer) (err error) {
	defer errs.Recover(&err)
	compressRaw(f, r, w)
	return nil
}

// Decompress reads a splay-coded bit stream of the given flavor from r
// and writes the recovered symbols to w. The flavor must match the one
// used to compress the stream; the wire format carries no indication of
// which flavor produced it.
func Decompress(f Flavor, r io.Reader, w io.Writer) (err error) {
	defer errs.Recover(&err)
	decompressRaw(f, r, w)
	return nil
}

// compressRaw panics on any I/O error, via errs.Panic, for Compress's
// deferred errs.Recover to turn back into a returned error. A plain
// string panic (not wrapped by errs) signals a structural invariant
// violation instead, and is deliberately left to propagate past Recover
// and crash the process: it indicates a bug in the splay arena or
// walker, not a malformed input.
func compressRaw(f Flavor, r io.Reader, w io.Writer) {
	arena := f.newArena()
	walker := arena.Walker()
	sr := f.newSymbolReader(r)
	bw := bitio.NewWriter(w)

	for {
		sym, ok, err := sr.ReadOne()
		errs.Panic(err)
		if !ok {
			break
		}
		for !walker.IsLeaf() {
			bit := sym > walker.CurrentValue()
			walker.Go(splay.DirectionFromBit(bit))
			errs.Panic(bw.WriteBit(bit))
		}
		if walker.CurrentValue() != sym {
			panic("splaycompress: descent reached the wrong leaf")
		}
		walker.SplayParentOfLeaf()
	}

	if k := bw.PaddingNeeded(); k > 0 {
		goal := walker.FindDeepInternal(k)
		for i := 0; i < k; i++ {
			bit := goal > walker.CurrentValue()
			walker.Go(splay.DirectionFromBit(bit))
			errs.Panic(bw.WriteBit(bit))
			if walker.IsLeaf() {
				panic("splaycompress: padding descent reached a leaf")
			}
		}
	}

	errs.Panic(bw.Flush())
}

// decompressRaw is compressRaw's exact inverse: it drives the same
// walker from the same canonical arena, keyed on the bits it reads
// instead of the symbols it is given, so the tree shapes stay
// bit-identical to the encoder's at every point a symbol is emitted.
func decompressRaw(f Flavor, r io.Reader, w io.Writer) {
	arena := f.newArena()
	walker := arena.Walker()
	br := bitio.NewReader(r)
	sw := f.newSymbolWriter(w)

	for {
		bit, err := br.ReadBit()
		if err == io.EOF {
			break
		}
		errs.Panic(err)

		walker.Go(splay.DirectionFromBit(bit))
		if walker.IsLeaf() {
			errs.Panic(sw.WriteOne(walker.CurrentValue()))
			walker.SplayParentOfLeaf()
		}
	}

	errs.Panic(sw.Flush())
}
