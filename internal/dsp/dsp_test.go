package dsp

import "testing"

func TestClip8b(t *testing.T) {
	cases := []struct {
		in   int
		want uint8
	}{
		{-10, 0}, {0, 0}, {128, 128}, {255, 255}, {300, 255},
	}
	for _, c := range cases {
		if got := Clip8b(c.in); got != c.want {
			t.Errorf("Clip8b(%d) = %d, want %d", c.in, got, c.want)
		}
	}
}

func TestTransformDCFlat(t *testing.T) {
	dst := make([]byte, BPS*4)
	in := make([]int16, 16)
	in[0] = 32 // dc=32+4=36, >>3 = 4 (approx) added to 0
	TransformDC(in, dst)
	want := Clip8b((32 + 4) >> 3)
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			if got := dst[row*BPS+col]; got != want {
				t.Fatalf("dst[%d][%d] = %d, want %d", row, col, got, want)
			}
		}
	}
}

func TestYUVToRGBAGray(t *testing.T) {
	// Y=128, U=V=128 (neutral chroma) should be near-neutral gray.
	r, g, b, a := YUVToRGBA(128, 128, 128)
	if a != 255 {
		t.Fatalf("alpha = %d, want 255", a)
	}
	if r != g || g != b {
		t.Fatalf("expected gray output, got (%d,%d,%d)", r, g, b)
	}
}

func TestYUVToRGBABlack(t *testing.T) {
	// The literal formula adds the +128 rounding bias twice (once in y',
	// once per channel), so Y=16 with neutral chroma gives
	// (128+128)>>8 = 1 on every channel.
	r, g, b, _ := YUVToRGBA(16, 128, 128)
	if r != 1 || g != 1 || b != 1 {
		t.Fatalf("Y=16 (black) should map to (1,1,1), got (%d,%d,%d)", r, g, b)
	}
}

func TestUpsampleChromaNearest(t *testing.T) {
	src := []byte{10, 20, 30, 40} // 2x2 chroma plane
	dst := UpsampleChromaNearest(src, 2, 2, 4, 4)
	if len(dst) != 16 {
		t.Fatalf("len(dst) = %d, want 16", len(dst))
	}
	if dst[0] != 10 || dst[1] != 10 || dst[2] != 20 || dst[3] != 20 {
		t.Fatalf("row0 = %v, want [10 10 20 20]", dst[0:4])
	}
	if dst[2*4+0] != 30 {
		t.Fatalf("row2[0] = %d, want 30", dst[2*4+0])
	}
}

func TestPredLuma16DC(t *testing.T) {
	dst := make([]byte, BPS*20)
	off := 4*BPS + 4
	for i := 0; i < 16; i++ {
		dst[off+i-BPS] = 100
		dst[off-1+i*BPS] = 100
	}
	PredLuma16(0, dst, off)
	if dst[off] != 100 {
		t.Fatalf("DC16 = %d, want 100", dst[off])
	}
}

func TestFilterNeedsFilter(t *testing.T) {
	p := make([]byte, BPS*8)
	off := 4 * BPS
	for i := range p {
		p[i] = 128
	}
	if !needsFilter(p, off, BPS, 255) {
		t.Fatal("uniform block should always pass the edge-difference threshold")
	}
}
