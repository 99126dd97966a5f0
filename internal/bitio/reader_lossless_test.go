package bitio

import "testing"

func TestLosslessReaderReadBits(t *testing.T) {
	// 0b1010_1100 little-endian LSB-first: first 3 bits read are the 3
	// least-significant bits of byte 0 (0x AC = 1010_1100), i.e. 0,0,1 -> 4.
	br := NewLosslessReader([]byte{0xac, 0x00})
	br.FillBitWindow()
	got := br.ReadBits(3)
	want := uint32(0xac) & 0x7
	if got != want {
		t.Fatalf("got %#x, want %#x", got, want)
	}
}

func TestLosslessReaderSpansBytes(t *testing.T) {
	data := []byte{0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00, 0xff, 0x00}
	br := NewLosslessReader(data)
	total := uint64(0)
	for i := 0; i < 8; i++ {
		br.FillBitWindow()
		total += uint64(br.ReadBits(8))
	}
	// Bytes 0..7 sum to 0xff*4 = 1020.
	if total != 1020 {
		t.Fatalf("got %d, want 1020", total)
	}
}

func TestLosslessReaderEndOfStream(t *testing.T) {
	br := NewLosslessReader([]byte{0x01})
	for i := 0; i < 20; i++ {
		br.FillBitWindow()
		br.ReadBits(8)
	}
	if !br.IsEndOfStream() {
		t.Fatal("expected end-of-stream after exhausting a 1-byte buffer")
	}
}

func TestLosslessReaderSetBitPos(t *testing.T) {
	br := NewLosslessReader([]byte{0xff, 0xff})
	br.FillBitWindow()
	before := br.PrefetchBits()
	br.SetBitPos(4)
	after := br.PrefetchBits()
	if before == after && br.BitPos() == 0 {
		t.Fatal("SetBitPos should move the cursor")
	}
	if br.BitPos() != 4 {
		t.Fatalf("BitPos() = %d, want 4", br.BitPos())
	}
}
