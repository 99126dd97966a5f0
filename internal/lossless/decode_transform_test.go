package lossless

import "testing"

func TestAddGreenToBlueAndRed(t *testing.T) {
	// green=10, red-after-subtract=5, blue-after-subtract=20; inverse
	// should add green back into both.
	argb := uint32(0xff000000) | (10 << 8) | (5 << 16) | 20
	dst := make([]uint32, 1)
	addGreenToBlueAndRed([]uint32{argb}, 1, dst)

	got := dst[0]
	wantRed := uint32(15)
	wantBlue := uint32(30)
	if (got>>16)&0xff != wantRed {
		t.Fatalf("red = %d, want %d", (got>>16)&0xff, wantRed)
	}
	if got&0xff != wantBlue {
		t.Fatalf("blue = %d, want %d", got&0xff, wantBlue)
	}
	if (got>>8)&0xff != 10 {
		t.Fatalf("green changed: got %d, want 10", (got>>8)&0xff)
	}
}

func TestPredictModes(t *testing.T) {
	left := uint32(0xff112233)
	top := uint32(0xff445566)
	topLeft := uint32(0xff778899)
	topRight := uint32(0xffaabbcc)

	tests := []struct {
		mode int
		want uint32
	}{
		{0, 0xff000000},
		{1, left},
		{2, top},
		{3, topRight},
		{4, topLeft},
	}
	for _, tt := range tests {
		got := predict(tt.mode, left, top, topLeft, topRight)
		if got != tt.want {
			t.Errorf("predict(mode=%d) = %#x, want %#x", tt.mode, got, tt.want)
		}
	}
}

func TestAverage2(t *testing.T) {
	got := average2(0x00000000, 0x00000002)
	if got != 1 {
		t.Fatalf("average2(0,2) = %d, want 1", got)
	}
	got2 := average2(0xff000000, 0xff000002)
	if got2 != 0xff000001 {
		t.Fatalf("average2 per-channel = %#x, want %#x", got2, 0xff000001)
	}
}

func TestPredictorInverseTransformFirstPixelIsBlack(t *testing.T) {
	tr := &Transform{Type: PredictorTransform, Bits: 0, XSize: 2, YSize: 1}
	in := []uint32{0x00000000, 0x00000000}
	out := make([]uint32, 2)
	predictorInverseTransform(tr, 0, 1, in, out)
	if out[0] != 0xff000000 {
		t.Fatalf("out[0] = %#x, want opaque black 0xff000000", out[0])
	}
}

func TestColorIndexInverseTransformFullByte(t *testing.T) {
	colorMap := []uint32{0x11111111, 0x22222222, 0x33333333}
	tr := &Transform{Type: ColorIndexingTransform, Bits: 0, XSize: 3, YSize: 1, Data: colorMap}

	// getARGBIndex reads the index from the green channel (bits 15:8).
	src := []uint32{0 << 8, 1 << 8, 2 << 8}
	dst := make([]uint32, 3)
	colorIndexInverseTransform(tr, 0, 1, src, dst)

	for i, want := range colorMap {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %#x, want %#x", i, dst[i], want)
		}
	}
}

func TestColorIndexInverseTransformPacked(t *testing.T) {
	// Bits=2 -> bitsPerPixel=2, 4 pixels packed per source pixel's green
	// channel.
	colorMap := []uint32{0xA, 0xB, 0xC, 0xD}
	tr := &Transform{Type: ColorIndexingTransform, Bits: 2, XSize: 4, YSize: 1, Data: colorMap}

	packed := uint32(0) | (0 << 0) | (1 << 2) | (2 << 4) | (3 << 6)
	src := []uint32{packed << 8}
	dst := make([]uint32, 4)
	colorIndexInverseTransform(tr, 0, 1, src, dst)

	for i, want := range colorMap {
		if dst[i] != want {
			t.Fatalf("dst[%d] = %#x, want %#x", i, dst[i], want)
		}
	}
}

func TestExpandColorMapDeltaDecodes(t *testing.T) {
	// Palette deltas accumulate byte-wise mod 256 starting from entry 0.
	palette := []uint32{0x01020304, 0x01010101, 0xFFFFFFFF}
	got := expandColorMap(3, 0, palette)

	if got[0] != palette[0] {
		t.Fatalf("got[0] = %#x, want %#x", got[0], palette[0])
	}
	want1 := uint32(byte(0x04+0x01)) | uint32(byte(0x03+0x01))<<8 | uint32(byte(0x02+0x01))<<16 | uint32(byte(0x01+0x01))<<24
	if got[1] != want1 {
		t.Fatalf("got[1] = %#x, want %#x", got[1], want1)
	}
}

func TestGetARGBIndex(t *testing.T) {
	argb := uint32(0xffAA33CC)
	if getARGBIndex(argb) != 0x33 {
		t.Fatalf("getARGBIndex = %#x, want 0x33", getARGBIndex(argb))
	}
}
