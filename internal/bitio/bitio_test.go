package bitio

import (
	"bytes"
	"io"
	"testing"
)

// Ported directly from the Rust original's bits.rs test_write/test_read:
// the exact bit pattern and expected packed bytes are pinned so the wire
// format can never silently drift.
func TestWriterPinned(t *testing.T) {
	bits := []bool{
		true, false, false, true, true, true, false, false,
		false, false, true, true, true, true, true, false,
	}
	wantPads := []int{7, 6, 5, 4, 3, 2, 1, 0, 7, 6, 5, 4, 3, 2, 1, 0}

	var buf bytes.Buffer
	bw := NewWriter(&buf)
	for i, bit := range bits {
		if got := bw.PaddingNeeded(); i == 0 {
			if got != 0 {
				t.Fatalf("initial PaddingNeeded() = %d, want 0", got)
			}
		}
		if err := bw.WriteBit(bit); err != nil {
			t.Fatalf("WriteBit(%d): %v", i, err)
		}
		if got := bw.PaddingNeeded(); got != wantPads[i] {
			t.Fatalf("after bit %d: PaddingNeeded() = %d, want %d", i, got, wantPads[i])
		}
	}
	if err := bw.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	want := []byte{0b1001_1100, 0b0011_1110}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("packed bytes = %08b, want %08b", buf.Bytes(), want)
	}
}

func TestReaderPinned(t *testing.T) {
	data := []byte{0b1001_1100, 0b0011_1110}
	want := []bool{
		true, false, false, true, true, true, false, false,
		false, false, true, true, true, true, true, false,
	}

	br := NewReader(bytes.NewReader(data))
	for i, wantBit := range want {
		bit, err := br.ReadBit()
		if err != nil {
			t.Fatalf("ReadBit(%d): %v", i, err)
		}
		if bit != wantBit {
			t.Fatalf("ReadBit(%d) = %v, want %v", i, bit, wantBit)
		}
	}
}

func TestFlushWithBufferedBitsPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("Flush with buffered bits did not panic")
		}
	}()
	var buf bytes.Buffer
	bw := NewWriter(&buf)
	_ = bw.WriteBit(true)
	_ = bw.Flush()
}

func TestReaderEOF(t *testing.T) {
	br := NewReader(bytes.NewReader(nil))
	if _, err := br.ReadBit(); err != io.EOF {
		t.Fatalf("ReadBit on empty stream: err = %v, want io.EOF", err)
	}
}

func TestRoundTrip(t *testing.T) {
	var pattern []bool
	for i := 0; i < 256; i++ {
		pattern = append(pattern, i%3 == 0, i%5 == 0)
	}

	var buf bytes.Buffer
	bw := NewWriter(&buf)
	for _, bit := range pattern {
		if err := bw.WriteBit(bit); err != nil {
			t.Fatal(err)
		}
	}
	for bw.PaddingNeeded() > 0 {
		if err := bw.WriteBit(false); err != nil {
			t.Fatal(err)
		}
	}
	if err := bw.Flush(); err != nil {
		t.Fatal(err)
	}

	br := NewReader(bytes.NewReader(buf.Bytes()))
	for i, want := range pattern {
		got, err := br.ReadBit()
		if err != nil {
			t.Fatalf("bit %d: %v", i, err)
		}
		if got != want {
			t.Fatalf("bit %d = %v, want %v", i, got, want)
		}
	}
}
