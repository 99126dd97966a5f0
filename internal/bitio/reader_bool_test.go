package bitio

import "testing"

func TestBoolReaderUniformBits(t *testing.T) {
	// All-0xFF input at prob=128 should decode as a run of 1-bits: with an
	// equiprobable split, value >= bigSplit whenever the corresponding
	// input bit is 1, and 0xFF is all 1-bits.
	br := NewBoolReader([]byte{0xff, 0xff, 0xff, 0xff})
	for i := 0; i < 8; i++ {
		if bit := br.GetBit(128); bit != 1 {
			t.Fatalf("bit %d: got %d, want 1", i, bit)
		}
	}
}

func TestBoolReaderZeroInput(t *testing.T) {
	br := NewBoolReader([]byte{0x00, 0x00, 0x00, 0x00})
	for i := 0; i < 8; i++ {
		if bit := br.GetBit(128); bit != 0 {
			t.Fatalf("bit %d: got %d, want 0", i, bit)
		}
	}
}

func TestBoolReaderRangeInvariant(t *testing.T) {
	// §8: after each readBit, 128 <= range <= 255.
	br := NewBoolReader([]byte{0x5a, 0xc3, 0x91, 0x7e, 0x02, 0x44, 0x88, 0xaa})
	probs := []uint8{1, 50, 100, 128, 150, 200, 254}
	for i := 0; i < 200; i++ {
		br.GetBit(probs[i%len(probs)])
		if br.range_ < 128 || br.range_ > 255 {
			t.Fatalf("iteration %d: range=%d out of [128,255]", i, br.range_)
		}
	}
}

func TestBoolReaderEOFTolerance(t *testing.T) {
	br := NewBoolReader([]byte{0x00})
	for i := 0; i < 64; i++ {
		br.GetBit(128)
	}
	if !br.EOF() {
		t.Fatal("expected EOF after reading well past a 1-byte buffer")
	}
}

func TestGetValueDeterministic(t *testing.T) {
	// GetValue(7) on a probability-128 bitstream is produced by GetBit's
	// range arithmetic, not by copying raw input bits, so check that two
	// readers over identical input decode the same value rather than a
	// specific byte.
	br1 := NewBoolReader([]byte{0x3c, 0x99, 0x11, 0x00})
	br2 := NewBoolReader([]byte{0x3c, 0x99, 0x11, 0x00})
	if br1.GetValue(7) != br2.GetValue(7) {
		t.Fatal("identical input must decode identically")
	}
}

func TestGetSignedValue(t *testing.T) {
	// A buffer of all zero bits must decode every magnitude bit as 0 and
	// every sign bit as 0 (positive), regardless of numBits.
	br := NewBoolReader([]byte{0x00, 0x00, 0x00, 0x00, 0x00})
	if v := br.GetSignedValue(4); v != 0 {
		t.Fatalf("got %d, want 0", v)
	}
}
