package lossy

import (
	"github.com/Anonyfox/raven-js-sub005/internal/bitio"
	"github.com/Anonyfox/raven-js-sub005/internal/dsp"
)

// MB holds per-macroblock contextual state carried into the next
// macroblock's (or next row's left-neighbor's) coefficient decode (§3
// "Coefficient block").
type MB struct {
	Nz   uint8 // 4-bit luma + 4-bit chroma non-zero-AC context
	NzDC uint8 // non-zero Y2-DC context (1 bit)
}

// MBData holds one macroblock's fully decoded reconstruction inputs.
type MBData struct {
	Coeffs    [384]int16 // 24 blocks * 16 coefficients: 16 Y, 4 U, 4 V; the Y2 (WHT) output is folded into the Y blocks' DC slots.
	IsI4x4    bool
	IModes    [16]uint8
	UVMode    uint8
	NonZeroY  uint32
	NonZeroUV uint32
	Skip      bool
	Segment   uint8
}

// kCat3456 groups the extra-bit tables used by the large-value branch of
// the coefficient token tree (categories 3..6, i.e. values 11 and up).
var kCat3456 = [4][]uint8{KCat3[:], KCat4[:], KCat5[:], KCat6[:]}

// partitionNearEnd reports whether 8 or fewer bits remain in br (§4.6
// "partition boundary rule"): close enough to the end that the decoder
// should stop emitting further blocks and zero the remainder instead of
// reading garbage past the partition.
func partitionNearEnd(br *bitio.BoolReader) bool {
	return br.RemainingBits() <= 8
}

// getCoeffs decodes up to 16-first coefficients of one 4x4 block starting
// at zig-zag index first, using the token tree described in §4.6. It
// returns the zig-zag position just past the last non-zero coefficient
// (first if the block is empty, 16 if no end-of-block token was seen).
// out must have at least 16 entries and is assumed pre-zeroed by the
// caller.
func getCoeffs(br *bitio.BoolReader, bands *[17]*BandProbas, ctx int, dq0, dq1 int, first int, out []int16) int {
	n := first
	p := bands[n].Probas[ctx][:]
	for n < 16 {
		if br.GetBit(p[0]) == 0 {
			return n // EOB
		}
		for br.GetBit(p[1]) == 0 {
			n++
			if n == 16 {
				return 16
			}
			p = bands[n].Probas[0][:]
		}

		var v int
		if br.GetBit(p[2]) == 0 {
			v = 1
			p = bands[n+1].Probas[1][:]
		} else {
			v = getLargeValue(br, p)
			p = bands[n+1].Probas[2][:]
		}

		dq := dq1
		if n == 0 {
			dq = dq0
		}
		if br.GetBit(128) != 0 {
			v = -v
		}
		out[KZigzag[n]] = int16(v * dq)
		n++
	}
	return 16
}

// getLargeValue decodes the value tree for tokens >= 2 (§4.6 "cat1..cat6").
func getLargeValue(br *bitio.BoolReader, p []uint8) int {
	if br.GetBit(p[3]) == 0 {
		if br.GetBit(p[4]) == 0 {
			return 2
		}
		return 3 + br.GetBit(p[5])
	}
	if br.GetBit(p[6]) == 0 {
		if br.GetBit(p[7]) == 0 {
			return 5 + br.GetBit(159)
		}
		v := 7 + 2*br.GetBit(165)
		return v + br.GetBit(145)
	}
	bit1 := br.GetBit(p[8])
	bit0 := br.GetBit(p[9+bit1])
	cat := 2*bit1 + bit0
	v := 0
	for _, prob := range kCat3456[cat] {
		v = v + v + br.GetBit(prob)
	}
	return v + 3 + (8 << uint(cat))
}

func nzCodeBits(nzCoeffs uint32, nz int, dcNz int) uint32 {
	nzCoeffs <<= 2
	switch {
	case nz > 3:
		nzCoeffs |= 3
	case nz > 1:
		nzCoeffs |= 2
	default:
		nzCoeffs |= uint32(dcNz)
	}
	return nzCoeffs
}

// decodeResiduals decodes all 24 coefficient blocks of one macroblock
// (§4.6 "a macroblock owns... 28 blocks" — Y2 is folded into block.Coeffs'
// Y-DC slots rather than kept as a 25th separate array here). When the
// partition runs low, remaining blocks are left zeroed (graceful
// underflow, §4.6/§9).
func decodeResiduals(br *bitio.BoolReader, proba *Proba, dqm *QuantMatrix, mb, leftMB *MB, block *MBData) {
	for i := range block.Coeffs {
		block.Coeffs[i] = 0
	}
	if partitionNearEnd(br) {
		mb.Nz, leftMB.Nz = 0, 0
		mb.NzDC, leftMB.NzDC = 0, 0
		return
	}

	bands := &proba.BandsPtr
	dst := block.Coeffs[:]

	var nonZeroY, nonZeroUV uint32
	first := 0
	var acProba *[17]*BandProbas

	if !block.IsI4x4 {
		var dc [16]int16
		ctx := int(mb.NzDC) + int(leftMB.NzDC)
		nz := getCoeffs(br, &bands[1], ctx, dqm.Y2Mat[0], dqm.Y2Mat[1], 0, dc[:])
		if nz > 0 {
			mb.NzDC, leftMB.NzDC = 1, 1
		} else {
			mb.NzDC, leftMB.NzDC = 0, 0
		}
		if nz > 1 {
			dsp.TransformWHT(dc[:], dst)
		} else {
			dc0 := int16((int(dc[0]) + 3) >> 3)
			for i := 0; i < 16*16; i += 16 {
				dst[i] = dc0
			}
		}
		first = 1
		acProba = &bands[0]
	} else {
		acProba = &bands[3]
	}

	tnz := mb.Nz & 0x0f
	lnz := leftMB.Nz & 0x0f
	for y := 0; y < 4; y++ {
		l := lnz & 1
		var nzCoeffs uint32
		for x := 0; x < 4; x++ {
			ctx := int(l) + int(tnz&1)
			nz := getCoeffs(br, acProba, ctx, dqm.Y1Mat[0], dqm.Y1Mat[1], first, dst)
			if nz > first {
				l = 1
			} else {
				l = 0
			}
			tnz = (tnz >> 1) | (l << 7)
			dcNz := 0
			if dst[0] != 0 {
				dcNz = 1
			}
			nzCoeffs = nzCodeBits(nzCoeffs, nz, dcNz)
			dst = dst[16:]
		}
		tnz >>= 4
		lnz = (lnz >> 1) | (l << 7)
		nonZeroY = (nonZeroY << 8) | nzCoeffs
	}
	outTNz := tnz
	outLNz := lnz >> 4

	for ch := 0; ch < 4; ch += 2 {
		var nzCoeffs uint32
		tnz = mb.Nz >> uint(4+ch)
		lnz = leftMB.Nz >> uint(4+ch)
		for y := 0; y < 2; y++ {
			l := lnz & 1
			for x := 0; x < 2; x++ {
				ctx := int(l) + int(tnz&1)
				nz := getCoeffs(br, &bands[2], ctx, dqm.UVMat[0], dqm.UVMat[1], 0, dst)
				if nz > 0 {
					l = 1
				} else {
					l = 0
				}
				tnz = (tnz >> 1) | (l << 3)
				dcNz := 0
				if dst[0] != 0 {
					dcNz = 1
				}
				nzCoeffs = nzCodeBits(nzCoeffs, nz, dcNz)
				dst = dst[16:]
			}
			tnz >>= 2
			lnz = (lnz >> 1) | (l << 5)
		}
		nonZeroUV |= nzCoeffs << uint(4*ch)
		outTNz |= (tnz << 4) << uint(ch)
		outLNz |= (lnz & 0xf0) << uint(ch)
	}

	mb.Nz = outTNz
	leftMB.Nz = outLNz
	block.NonZeroY = nonZeroY
	block.NonZeroUV = nonZeroUV
}
