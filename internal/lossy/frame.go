package lossy

import "github.com/Anonyfox/raven-js-sub005/internal/dsp"

// Per-macroblock reconstruction buffer layout (§4.7-§4.9). One yuvB buffer
// is reused across an entire macroblock row: each column's left context is
// produced by rotating in the previous column's right-edge samples rather
// than allocating a fresh buffer per macroblock.
const (
	yOff = dsp.BPS + 4
	ySize = 16*dsp.BPS + 32
	uOff  = yOff + ySize
	uSize = 9*dsp.BPS + 16
	vOff  = uOff + uSize
	vSize = uSize

	yuvSize = vOff + vSize
)

// kScan maps the 16 4x4 luma sub-blocks (raster order) to their byte offset
// within the Y region of yuvB.
var kScan = [16]int{
	0 + 0*dsp.BPS, 4 + 0*dsp.BPS, 8 + 0*dsp.BPS, 12 + 0*dsp.BPS,
	0 + 4*dsp.BPS, 4 + 4*dsp.BPS, 8 + 4*dsp.BPS, 12 + 4*dsp.BPS,
	0 + 8*dsp.BPS, 4 + 8*dsp.BPS, 8 + 8*dsp.BPS, 12 + 8*dsp.BPS,
	0 + 12*dsp.BPS, 4 + 12*dsp.BPS, 8 + 12*dsp.BPS, 12 + 12*dsp.BPS,
}

// TopSamples holds one macroblock column's bottom-row samples, carried
// across rows as the next row's top context (§4.8).
type TopSamples struct {
	Y [16]uint8
	U [8]uint8
	V [8]uint8
}

// FInfo holds one macroblock's precomputed loop-filter strength (§4.9).
type FInfo struct {
	FLimit    uint8
	FILevel   uint8
	FInner    bool
	HevThresh uint8
}

// checkMode substitutes the boundary-limited DC variant when a macroblock
// is missing its top and/or left neighbor (§4.8).
func checkMode(mbX, mbY, mode int) int {
	if mode != DCPred {
		return mode
	}
	switch {
	case mbX == 0 && mbY == 0:
		return BDCPredNoTopLeft
	case mbX == 0:
		return BDCPredNoLeft
	case mbY == 0:
		return BDCPredNoTop
	}
	return mode
}

func fillBytes(dst []byte, v byte, n int) {
	for i := 0; i < n; i++ {
		dst[i] = v
	}
}

// doTransform applies the inverse 4x4 transform for one block when code
// (the block's packed non-zero indicator, 0..3) says it carries any
// coefficients at all; an all-zero block leaves the prediction untouched.
func doTransform(code uint32, src []int16, dst []byte) {
	if code == 0 {
		return
	}
	dsp.TransformOne(src, dst)
}

// reconstructRow predicts, inverse-transforms, and assembles one macroblock
// row into the output row cache (§4.7-§4.8).
func (dec *Decoder) reconstructRow() {
	mbY := dec.mbY
	buf := dec.yuvB

	for j := 0; j < 16; j++ {
		buf[yOff+j*dsp.BPS-1] = 129
	}
	for j := 0; j < 8; j++ {
		buf[uOff+j*dsp.BPS-1] = 129
		buf[vOff+j*dsp.BPS-1] = 129
	}

	if mbY > 0 {
		buf[yOff-dsp.BPS-1] = 129
		buf[uOff-dsp.BPS-1] = 129
		buf[vOff-dsp.BPS-1] = 129
	} else {
		fillBytes(buf[yOff-dsp.BPS-1:], 127, 16+4+1)
		fillBytes(buf[uOff-dsp.BPS-1:], 127, 8+1)
		fillBytes(buf[vOff-dsp.BPS-1:], 127, 8+1)
	}

	for mbX := 0; mbX < dec.mbW; mbX++ {
		block := &dec.mbData[mbX]

		yDst := buf[yOff:]
		uDst := buf[uOff:]
		vDst := buf[vOff:]

		if mbX > 0 {
			for j := -1; j < 16; j++ {
				copy(buf[yOff+j*dsp.BPS-4:yOff+j*dsp.BPS], buf[yOff+j*dsp.BPS+12:yOff+j*dsp.BPS+16])
			}
			for j := -1; j < 8; j++ {
				copy(buf[uOff+j*dsp.BPS-4:uOff+j*dsp.BPS], buf[uOff+j*dsp.BPS+4:uOff+j*dsp.BPS+8])
				copy(buf[vOff+j*dsp.BPS-4:vOff+j*dsp.BPS], buf[vOff+j*dsp.BPS+4:vOff+j*dsp.BPS+8])
			}
		}

		top := &dec.yuvT[mbX]
		if mbY > 0 {
			copy(buf[yOff-dsp.BPS:], top.Y[:])
			copy(buf[uOff-dsp.BPS:], top.U[:])
			copy(buf[vOff-dsp.BPS:], top.V[:])
		}

		coeffs := block.Coeffs[:]
		bits := block.NonZeroY

		if block.IsI4x4 {
			topRight := buf[yOff-dsp.BPS+16:]
			if mbY > 0 {
				if mbX >= dec.mbW-1 {
					fillBytes(topRight, top.Y[15], 4)
				} else {
					copy(topRight[:4], dec.yuvT[mbX+1].Y[:4])
				}
			} else {
				fillBytes(topRight, 127, 4)
			}
			for r := 1; r <= 3; r++ {
				off := r * 4 * dsp.BPS
				copy(topRight[off:off+4], topRight[:4])
			}

			for n := 0; n < 16; n++ {
				blockOff := yOff + kScan[n]
				dsp.PredLuma4(int(block.IModes[n]), buf, blockOff)
				doTransform(bits>>30, coeffs[n*16:], buf[blockOff:])
				bits <<= 2
			}
		} else {
			mode := checkMode(mbX, mbY, int(block.IModes[0]))
			dsp.PredLuma16(mode, buf, yOff)
			for n := 0; n < 16; n++ {
				doTransform(bits>>30, coeffs[n*16:], buf[yOff+kScan[n]:])
				bits <<= 2
			}
		}

		uvMode := checkMode(mbX, mbY, int(block.UVMode))
		dsp.PredChroma8(uvMode, buf, uOff)
		dsp.PredChroma8(uvMode, buf, vOff)

		bitsU := block.NonZeroUV << 24
		bitsV := block.NonZeroUV << 16
		for n := 0; n < 4; n++ {
			off := uOff + (n/2)*4*dsp.BPS + (n%2)*4
			doTransform(bitsU>>30, coeffs[(16+n)*16:], buf[off:])
			bitsU <<= 2
		}
		for n := 0; n < 4; n++ {
			off := vOff + (n/2)*4*dsp.BPS + (n%2)*4
			doTransform(bitsV>>30, coeffs[(20+n)*16:], buf[off:])
			bitsV <<= 2
		}

		if mbY < dec.mbH-1 {
			copy(top.Y[:], yDst[15*dsp.BPS:15*dsp.BPS+16])
			copy(top.U[:], uDst[7*dsp.BPS:7*dsp.BPS+8])
			copy(top.V[:], vDst[7*dsp.BPS:7*dsp.BPS+8])
		}

		yRowOff := mbY * 16 * dec.cacheYStride
		uvRowOff := mbY * 8 * dec.cacheUVStride
		yOut := dec.cacheY[mbX*16+yRowOff:]
		uOut := dec.cacheU[mbX*8+uvRowOff:]
		vOut := dec.cacheV[mbX*8+uvRowOff:]
		for j := 0; j < 16; j++ {
			copy(yOut[j*dec.cacheYStride:j*dec.cacheYStride+16], yDst[j*dsp.BPS:j*dsp.BPS+16])
		}
		for j := 0; j < 8; j++ {
			copy(uOut[j*dec.cacheUVStride:j*dec.cacheUVStride+8], uDst[j*dsp.BPS:j*dsp.BPS+8])
			copy(vOut[j*dec.cacheUVStride:j*dec.cacheUVStride+8], vDst[j*dsp.BPS:j*dsp.BPS+8])
		}
	}
}

// precomputeFilterStrengths derives, per segment and per block-partition
// kind (16x16 vs 4x4), the loop filter's edge limit and sharpness-adjusted
// inner limit (§4.9).
func (dec *Decoder) precomputeFilterStrengths() {
	if dec.filterType == 0 {
		return
	}
	hdr := &dec.filterHdr
	for s := 0; s < NumMBSegments; s++ {
		baseLevel := hdr.Level
		if dec.segHdr.UseSegment {
			if dec.segHdr.AbsoluteDelta {
				baseLevel = int(dec.segHdr.FilterStrength[s])
			} else {
				baseLevel = hdr.Level + int(dec.segHdr.FilterStrength[s])
			}
		}
		for i4x4 := 0; i4x4 <= 1; i4x4++ {
			info := &dec.fstrengths[s][i4x4]
			level := baseLevel
			if hdr.UseLFDelta {
				level += hdr.RefLFDelta[0]
				if i4x4 != 0 {
					level += hdr.ModeLFDelta[0]
				}
			}
			level = clampIdx(level, 63)
			if level > 0 {
				ilevel := level
				if hdr.Sharpness > 0 {
					if hdr.Sharpness > 4 {
						ilevel >>= 2
					} else {
						ilevel >>= 1
					}
					if ilevel > 9-hdr.Sharpness {
						ilevel = 9 - hdr.Sharpness
					}
				}
				if ilevel < 1 {
					ilevel = 1
				}
				info.FILevel = uint8(ilevel)
				info.FLimit = uint8(2*level + ilevel)
				switch {
				case level >= 40:
					info.HevThresh = 2
				case level >= 15:
					info.HevThresh = 1
				default:
					info.HevThresh = 0
				}
			} else {
				info.FLimit = 0
			}
			info.FInner = i4x4 != 0
		}
	}
}

// assignFilterInfo copies the precomputed per-segment strength into the
// per-macroblock filter info slice ahead of filterRow (§4.9). A skipped,
// 16x16-partitioned macroblock carries no residual, so its subblock edges
// need no inner filtering; any other case does.
func (dec *Decoder) assignFilterInfo(mbX int, block *MBData, skip bool) {
	idx := 0
	if block.IsI4x4 {
		idx = 1
	}
	finfo := &dec.fInfo[mbX]
	*finfo = dec.fstrengths[block.Segment][idx]
	finfo.FInner = finfo.FInner || !skip
}

// filterRow applies the in-loop deblocking filter across one macroblock
// row, using the shared filter primitives in internal/dsp (§4.9).
func (dec *Decoder) filterRow() {
	for mbX := 0; mbX < dec.mbW; mbX++ {
		dec.doFilter(mbX, dec.mbY)
	}
}

func (dec *Decoder) doFilter(mbX, mbY int) {
	finfo := &dec.fInfo[mbX]
	limit := int(finfo.FLimit)
	if limit == 0 {
		return
	}
	ilevel := int(finfo.FILevel)
	yBPS := dec.cacheYStride
	yBase := mbY*16*yBPS + mbX*16

	if dec.filterType == 1 {
		if mbX > 0 {
			dsp.SimpleVFilter16(dec.cacheY, yBase, yBPS, limit+4)
		}
		if finfo.FInner {
			dsp.SimpleVFilter16i(dec.cacheY, yBase, yBPS, limit)
		}
		if mbY > 0 {
			dsp.SimpleHFilter16(dec.cacheY, yBase, yBPS, limit+4)
		}
		if finfo.FInner {
			dsp.SimpleHFilter16i(dec.cacheY, yBase, yBPS, limit)
		}
		return
	}

	uvBPS := dec.cacheUVStride
	uvBase := mbY*8*uvBPS + mbX*8
	hevT := int(finfo.HevThresh)

	if mbX > 0 {
		dsp.VFilter16(dec.cacheY, yBase, yBPS, limit+4, ilevel, hevT)
		dsp.VFilter8(dec.cacheU, dec.cacheV, uvBase, uvBPS, limit+4, ilevel, hevT)
	}
	if finfo.FInner {
		dsp.VFilter16i(dec.cacheY, yBase, yBPS, limit, ilevel, hevT)
		dsp.VFilter8i(dec.cacheU, dec.cacheV, uvBase, uvBPS, limit, ilevel, hevT)
	}
	if mbY > 0 {
		dsp.HFilter16(dec.cacheY, yBase, yBPS, limit+4, ilevel, hevT)
		dsp.HFilter8(dec.cacheU, dec.cacheV, uvBase, uvBPS, limit+4, ilevel, hevT)
	}
	if finfo.FInner {
		dsp.HFilter16i(dec.cacheY, yBase, yBPS, limit, ilevel, hevT)
		dsp.HFilter8i(dec.cacheU, dec.cacheV, uvBase, uvBPS, limit, ilevel, hevT)
	}
}
