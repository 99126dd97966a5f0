package lossless

import "testing"

func TestBuildHuffmanTableDegenerate(t *testing.T) {
	// A single nonzero-length symbol is a valid degenerate tree: every
	// lookup returns that symbol consuming zero bits.
	lengths := []int{0, 0, 1, 0}
	table, err := BuildHuffmanTable(HuffmanTableBits, lengths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	value, bits := ReadSymbol(table, 0)
	if value != 2 || bits != 0 {
		t.Fatalf("got value=%d bits=%d, want value=2 bits=0", value, bits)
	}
}

func TestBuildHuffmanTableRejectsAllZero(t *testing.T) {
	_, err := BuildHuffmanTable(HuffmanTableBits, []int{0, 0, 0})
	if err == nil {
		t.Fatal("expected ErrEmptyCodeLengths")
	}
}

func TestBuildHuffmanTableRejectsEmpty(t *testing.T) {
	_, err := BuildHuffmanTable(HuffmanTableBits, nil)
	if err == nil {
		t.Fatal("expected ErrEmptyCodeLengths")
	}
}

func TestBuildHuffmanTableRejectsOversubscribed(t *testing.T) {
	// Three symbols all of length 1 cannot form a valid prefix code (only
	// two length-1 codes exist: 0 and 1).
	_, err := BuildHuffmanTable(HuffmanTableBits, []int{1, 1, 1})
	if err == nil {
		t.Fatal("expected ErrInvalidTree for oversubscribed code")
	}
}

func TestBuildHuffmanTableRoundTrip(t *testing.T) {
	// Canonical code for 4 symbols with lengths {2,2,2,2}: a balanced
	// binary tree where every symbol takes exactly 2 bits.
	lengths := []int{2, 2, 2, 2}
	table, err := BuildHuffmanTable(HuffmanTableBits, lengths)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Canonical codes in symbol order: 00,01,10,11 (MSB-first conceptually,
	// but the table is addressed by the low bits of the prefetch window per
	// VP8L's LSB-first bit order).
	for bits := uint32(0); bits < 4; bits++ {
		value, used := ReadSymbol(table, bits)
		if used != 2 {
			t.Fatalf("bits=%d: consumed %d bits, want 2", bits, used)
		}
		if int(value) >= 4 {
			t.Fatalf("bits=%d: symbol %d out of range", bits, value)
		}
	}
}
