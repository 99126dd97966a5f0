package lossy

import "testing"

func TestNzCodeBits(t *testing.T) {
	tests := []struct {
		name     string
		nzCoeffs uint32
		nz       int
		dcNz     int
		want     uint32
	}{
		{"many nonzero", 0, 5, 0, 3},
		{"few nonzero", 0, 2, 0, 2},
		{"dc only set", 0, 0, 1, 1},
		{"dc only clear", 0, 0, 0, 0},
		{"shifts prior state", 1, 5, 0, (1 << 2) | 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nzCodeBits(tt.nzCoeffs, tt.nz, tt.dcNz)
			if got != tt.want {
				t.Fatalf("nzCodeBits(%d,%d,%d) = %d, want %d", tt.nzCoeffs, tt.nz, tt.dcNz, got, tt.want)
			}
		})
	}
}

func TestResetProbaLoadsDefaults(t *testing.T) {
	var p Proba
	ResetProba(&p)

	for _, s := range p.Segments {
		if s != 255 {
			t.Fatalf("segment proba = %d, want 255", s)
		}
	}
	for t_ := 0; t_ < NumTypes; t_++ {
		for b := 0; b < 17; b++ {
			if p.BandsPtr[t_][b] != &p.Bands[t_][KBands[b]] {
				t.Fatalf("BandsPtr[%d][%d] not wired to Bands[%d][KBands[%d]]", t_, b, t_, b)
			}
		}
	}
	if p.Bands[0][0].Probas[0] != CoeffsProba0[0][0][0] {
		t.Fatal("Bands[0][0] not loaded from CoeffsProba0[0][0]")
	}
}
