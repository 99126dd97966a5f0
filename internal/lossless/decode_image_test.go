package lossless

import (
	"testing"

	"github.com/Anonyfox/raven-js-sub005/internal/bitio"
)

func TestGetCopyDistanceSmall(t *testing.T) {
	for symbol := 0; symbol < 4; symbol++ {
		got := getCopyDistance(symbol, nil)
		if got != symbol+1 {
			t.Fatalf("getCopyDistance(%d) = %d, want %d", symbol, got, symbol+1)
		}
	}
}

func TestGetCopyDistanceExtraBits(t *testing.T) {
	// symbol=4: extraBits=1, offset=4; one extra bit of 1 -> 4+1+1=6.
	br := bitio.NewLosslessReader([]byte{0b00000001})
	got := getCopyDistance(4, br)
	if got != 6 {
		t.Fatalf("getCopyDistance(4) = %d, want 6", got)
	}
}

func TestGetCopyLengthMatchesDistance(t *testing.T) {
	if getCopyLength(2, nil) != getCopyDistance(2, nil) {
		t.Fatal("getCopyLength should share getCopyDistance's extra-bits decoding")
	}
}

func TestCopyBlock32NonOverlapping(t *testing.T) {
	data := make([]uint32, 8)
	for i := range data {
		data[i] = uint32(i + 1)
	}
	// Copy the 3 pixels starting 4 back into position 5.
	copyBlock32(data, 5, 4, 3)
	want := []uint32{1, 2, 3, 4, 5, 2, 3, 4}
	for i, w := range want {
		if data[i] != w {
			t.Fatalf("data[%d] = %d, want %d (full: %v)", i, data[i], w, data)
		}
	}
}

func TestCopyBlock32Overlapping(t *testing.T) {
	// dist < length makes the copy read pixels it has just written, so the
	// pattern repeats.
	data := []uint32{1, 2, 3, 0, 0, 0}
	copyBlock32(data, 3, 2, 3)
	want := []uint32{1, 2, 3, 2, 3, 2}
	for i, w := range want {
		if data[i] != w {
			t.Fatalf("data[%d] = %d, want %d", i, data[i], w)
		}
	}
}

func TestGetMetaIndexNoSubsampling(t *testing.T) {
	dec := &Decoder{}
	if dec.getMetaIndex(5, 7) != 0 {
		t.Fatal("with huffmanSubsampleBits=0, meta index should always be 0")
	}
}

func TestGetHTreeGroupSelectsByMetaIndex(t *testing.T) {
	dec := &Decoder{}
	dec.hdr.huffmanSubsampleBits = 1
	dec.hdr.huffmanXSize = 2
	dec.hdr.huffmanImage = []uint32{0, 1, 1, 0}
	dec.hdr.htreeGroups = make([]HTreeGroup, 2)
	dec.hdr.htreeGroups[1].HTrees[HuffGreen] = []HuffmanCode{{Value: 42}}

	g := dec.getHTreeGroup(2, 0) // x>>1=1, y>>1=0 -> index huffmanXSize*0+1 = 1
	if g.HTrees[HuffGreen][0].Value != 42 {
		t.Fatal("getHTreeGroup did not select the tile's group")
	}
}
