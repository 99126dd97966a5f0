package lossy

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/Anonyfox/raven-js-sub005/internal/bitio"
)

// Sentinel errors for the §7 `VP8Bitstream` taxonomy.
var (
	ErrTruncated      = errors.New("vp8: truncated bitstream")
	ErrBadStartCode   = errors.New("vp8: bad start code")
	ErrUnsupportedVer = errors.New("vp8: unsupported version")
	ErrInterframe     = errors.New("vp8: non-keyframe bitstream")
	ErrZeroDimension  = errors.New("vp8: zero width or height")
	ErrBadPartition   = errors.New("vp8: invalid partition layout")
	ErrPrematureEOF   = errors.New("vp8: premature end of partition")
	ErrBadToken       = errors.New("vp8: invalid coefficient token")
)

// FrameHeader holds the 3-byte VP8 frame tag plus the keyframe's dimensions
// and scaling bits (§3 "VP8 frame state", §6 wire format).
type FrameHeader struct {
	KeyFrame        bool
	Version         uint8
	Show            bool
	FirstPartSize   uint32
	Width, Height   int
	WidthScale      uint8
	HeightScale     uint8
}

// SegmentHeader describes per-segment quantizer/filter overrides (§3
// "Segmentation").
type SegmentHeader struct {
	UseSegment    bool
	UpdateMap     bool
	AbsoluteDelta bool
	Quantizer     [NumMBSegments]int8
	FilterStrength [NumMBSegments]int8
}

// FilterHeader describes the in-loop deblocking filter parameters (§3
// "LoopFilter").
type FilterHeader struct {
	Simple     bool
	Level      int
	Sharpness  int
	UseLFDelta bool
	RefLFDelta  [NumRefLFDeltas]int
	ModeLFDelta [NumModeLFDeltas]int
}

// parseFrameTag decodes the 3-byte frame tag and the 7-byte keyframe
// picture header (§4.5, §6). Only keyframes are accepted (§3 invariant).
func parseFrameTag(data []byte) (hdr FrameHeader, rest []byte, err error) {
	if len(data) < 10 {
		return hdr, nil, errors.Wrap(ErrTruncated, "frame tag")
	}
	bits := uint32(data[0]) | uint32(data[1])<<8 | uint32(data[2])<<16
	hdr.KeyFrame = (bits & 1) == 0
	hdr.Version = uint8((bits >> 1) & 7)
	hdr.Show = (bits>>4)&1 != 0
	hdr.FirstPartSize = bits >> 5

	if !hdr.KeyFrame {
		return hdr, nil, errors.Wrap(ErrInterframe, "parseFrameTag")
	}
	if hdr.Version > 3 {
		return hdr, nil, errors.Wrapf(ErrUnsupportedVer, "version %d", hdr.Version)
	}

	buf := data[3:]
	if buf[0] != 0x9d || buf[1] != 0x01 || buf[2] != 0x2a {
		return hdr, nil, errors.Wrap(ErrBadStartCode, "parseFrameTag")
	}
	w := binary.LittleEndian.Uint16(buf[3:5])
	h := binary.LittleEndian.Uint16(buf[5:7])
	hdr.Width = int(w & 0x3fff)
	hdr.WidthScale = uint8(w >> 14)
	hdr.Height = int(h & 0x3fff)
	hdr.HeightScale = uint8(h >> 14)

	if hdr.Width == 0 || hdr.Height == 0 {
		return hdr, nil, errors.Wrap(ErrZeroDimension, "parseFrameTag")
	}
	return hdr, buf[7:], nil
}

// parseSegmentHeader reads segmentation parameters from partition 0
// (§4.5).
func parseSegmentHeader(br *bitio.BoolReader, seg *SegmentHeader, proba *Proba) error {
	seg.AbsoluteDelta = true
	seg.UseSegment = br.GetBit(0x80) != 0
	if seg.UseSegment {
		seg.UpdateMap = br.GetBit(0x80) != 0
		if br.GetBit(0x80) != 0 { // update_segment_feature_data
			seg.AbsoluteDelta = br.GetBit(0x80) != 0
			for s := 0; s < NumMBSegments; s++ {
				if br.GetBit(0x80) != 0 {
					seg.Quantizer[s] = int8(br.GetSigned(7))
				} else {
					seg.Quantizer[s] = 0
				}
			}
			for s := 0; s < NumMBSegments; s++ {
				if br.GetBit(0x80) != 0 {
					seg.FilterStrength[s] = int8(br.GetSigned(6))
				} else {
					seg.FilterStrength[s] = 0
				}
			}
		}
		if seg.UpdateMap {
			for s := 0; s < MBFeatureTreeProbs; s++ {
				if br.GetBit(0x80) != 0 {
					proba.Segments[s] = uint8(br.GetValue(8))
				} else {
					proba.Segments[s] = 255
				}
			}
		}
	}
	if br.EOF() {
		return errors.Wrap(ErrPrematureEOF, "segment header")
	}
	return nil
}

// parseFilterHeader reads loop-filter parameters from partition 0 (§4.5,
// §4.9).
func parseFilterHeader(br *bitio.BoolReader, f *FilterHeader) {
	f.Simple = br.GetBit(0x80) != 0
	f.Level = br.GetValue(6)
	f.Sharpness = br.GetValue(3)
	f.UseLFDelta = br.GetBit(0x80) != 0
	if f.UseLFDelta {
		if br.GetBit(0x80) != 0 { // update deltas
			for i := 0; i < NumRefLFDeltas; i++ {
				if br.GetBit(0x80) != 0 {
					f.RefLFDelta[i] = br.GetSigned(6)
				}
			}
			for i := 0; i < NumModeLFDeltas; i++ {
				if br.GetBit(0x80) != 0 {
					f.ModeLFDelta[i] = br.GetSigned(6)
				}
			}
		}
	}
}

// partitions splits tokenData into up to MaxNumPartitions bool-decoder
// streams using the 3-byte little-endian size prefix table (§4.5, §6).
func partitions(br *bitio.BoolReader, tokenData []byte) (parts [MaxNumPartitions]*bitio.BoolReader, numPartsMinus1 uint32, err error) {
	numPartsMinus1 = (1 << uint(br.GetValue(2))) - 1
	last := int(numPartsMinus1)

	sizeTableLen := 3 * last
	if len(tokenData) < sizeTableLen {
		return parts, 0, errors.Wrap(ErrBadPartition, "size table truncated")
	}
	sizes := tokenData[:sizeTableLen]
	body := tokenData[sizeTableLen:]
	remaining := len(body)

	for p := 0; p < last; p++ {
		sz := int(sizes[0]) | int(sizes[1])<<8 | int(sizes[2])<<16
		sizes = sizes[3:]
		if sz > remaining {
			return parts, 0, errors.Wrapf(ErrBadPartition, "partition %d size %d exceeds remaining %d", p, sz, remaining)
		}
		parts[p] = bitio.NewBoolReader(body[:sz])
		body = body[sz:]
		remaining -= sz
	}
	parts[last] = bitio.NewBoolReader(body[:remaining])
	return parts, numPartsMinus1, nil
}

// parseQuant reads the base quantizer and per-plane deltas, then fills one
// QuantMatrix per segment (§4.5, §4.6).
func parseQuant(br *bitio.BoolReader, seg *SegmentHeader, dqm []QuantMatrix) {
	baseQ0 := br.GetValue(7)
	dqy1DC := readOptionalSigned(br, 4)
	dqy2DC := readOptionalSigned(br, 4)
	dqy2AC := readOptionalSigned(br, 4)
	dquvDC := readOptionalSigned(br, 4)
	dquvAC := readOptionalSigned(br, 4)

	for i := 0; i < NumMBSegments; i++ {
		var q int
		if seg.UseSegment {
			q = int(seg.Quantizer[i])
			if !seg.AbsoluteDelta {
				q += baseQ0
			}
		} else if i > 0 {
			dqm[i] = dqm[0]
			continue
		} else {
			q = baseQ0
		}

		m := &dqm[i]
		m.Y1Mat[0] = int(KDcTable[clampIdx(q+dqy1DC, 127)])
		m.Y1Mat[1] = int(KAcTable[clampIdx(q, 127)])

		m.Y2Mat[0] = int(KDcTable[clampIdx(q+dqy2DC, 127)]) * 2
		m.Y2Mat[1] = (int(KAcTable[clampIdx(q+dqy2AC, 127)]) * 101581) >> 16
		if m.Y2Mat[1] < 8 {
			m.Y2Mat[1] = 8
		}

		m.UVMat[0] = int(KDcTable[clampIdx(q+dquvDC, 117)])
		m.UVMat[1] = int(KAcTable[clampIdx(q+dquvAC, 127)])
		m.UVQuant = q + dquvAC
	}
}

func readOptionalSigned(br *bitio.BoolReader, n int) int {
	if br.GetBit(0x80) != 0 {
		return br.GetSigned(n)
	}
	return 0
}

func clampIdx(v, max int) int {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}

// QuantMatrix holds the dequantization factors for one segment (§3
// "Quantization").
type QuantMatrix struct {
	Y1Mat   [2]int
	Y2Mat   [2]int
	UVMat   [2]int
	UVQuant int
}

// parseProba reads coefficient-probability updates from partition 0 (§4.5
// "Mode probabilities"), falling back to CoeffsProba0 per entry.
func parseProba(br *bitio.BoolReader, p *Proba, useSkipProba *bool, skipP *uint8) {
	for t := 0; t < NumTypes; t++ {
		for b := 0; b < NumBands; b++ {
			for c := 0; c < NumCTX; c++ {
				for pp := 0; pp < NumProbas; pp++ {
					if br.GetBit(CoeffsUpdateProba[t][b][c][pp]) != 0 {
						p.Bands[t][b].Probas[c][pp] = uint8(br.GetValue(8))
					}
				}
			}
		}
	}
	*useSkipProba = br.GetBit(0x80) != 0
	if *useSkipProba {
		*skipP = uint8(br.GetValue(8))
	}
}

// parseIntraMode decodes the segment id, skip flag, block-partition size,
// luma mode(s), and chroma mode for one macroblock from partition 0
// (§4.5).
func parseIntraMode(br *bitio.BoolReader, seg *SegmentHeader, proba *Proba, useSkipProba bool, skipP uint8, top []uint8, left []uint8, block *MBData) {
	if seg.UpdateMap {
		if br.GetBit(proba.Segments[0]) == 0 {
			block.Segment = uint8(br.GetBit(proba.Segments[1]))
		} else {
			block.Segment = uint8(br.GetBit(proba.Segments[2])) + 2
		}
	} else {
		block.Segment = 0
	}

	if useSkipProba {
		block.Skip = br.GetBit(skipP) != 0
	}

	block.IsI4x4 = br.GetBit(145) == 0
	if !block.IsI4x4 {
		var ymode uint8
		if br.GetBit(156) != 0 {
			if br.GetBit(128) != 0 {
				ymode = TMPred
			} else {
				ymode = HPred
			}
		} else if br.GetBit(163) != 0 {
			ymode = VPred
		} else {
			ymode = DCPred
		}
		block.IModes[0] = ymode
		for i := 0; i < 4; i++ {
			top[i] = ymode
			left[i] = ymode
		}
	} else {
		modes := block.IModes[:]
		for y := 0; y < 4; y++ {
			ymode := left[y]
			for x := 0; x < 4; x++ {
				prob := KBModesProba[top[x]][ymode][:]
				i := int(KYModesIntra4[br.GetBit(prob[0])])
				for i > 0 {
					i = int(KYModesIntra4[i+br.GetBit(prob[i>>1])])
				}
				ymode = uint8(-i)
				top[x] = ymode
				modes[y*4+x] = ymode
			}
			left[y] = ymode
		}
	}

	if br.GetBit(142) == 0 {
		block.UVMode = DCPred
	} else if br.GetBit(114) == 0 {
		block.UVMode = VPred
	} else if br.GetBit(183) != 0 {
		block.UVMode = TMPred
	} else {
		block.UVMode = HPred
	}
}
