package lossy

import (
	"github.com/pkg/errors"

	"github.com/Anonyfox/raven-js-sub005/internal/bitio"
)

// Decoder holds the mutable state of a single VP8 keyframe decode (§3 "VP8
// frame state", §4.5-§4.9). Decoders are not reused across frames; each
// DecodeFrame call builds a fresh one.
type Decoder struct {
	frmHdr    FrameHeader
	segHdr    SegmentHeader
	filterHdr FilterHeader

	mbW, mbH int
	mbX, mbY int

	br             *bitio.BoolReader
	parts          [MaxNumPartitions]*bitio.BoolReader
	numPartsMinus1 uint32

	proba        Proba
	useSkipProba bool
	skipP        uint8

	dqm [NumMBSegments]QuantMatrix

	filterType int // 0=off, 1=simple, 2=normal
	fstrengths [NumMBSegments][2]FInfo

	intraT []uint8     // top 4x4 mode context, 4 per macroblock column
	intraL [4]uint8    // left 4x4 mode context, reset every row
	yuvT   []TopSamples // top reconstruction samples, one per column
	mbInfo []MB         // index 0: rolling left context; 1..mbW: per-column top context
	fInfo  []FInfo
	mbData []MBData
	yuvB   []byte

	cacheY, cacheU, cacheV      []byte
	cacheYStride, cacheUVStride int
}

// Result is one decoded keyframe's cropped YUV 4:2:0 planes (§4.10).
type Result struct {
	Width, Height     int
	Y, U, V           []byte
	YStride, UVStride int
}

// DecodeFrame decodes a complete VP8 keyframe bitstream and returns its
// cropped YUV planes (§4.5-§4.10). data is the VP8 chunk payload as found in
// a "VP8 " RIFF chunk.
func DecodeFrame(data []byte) (*Result, error) {
	hdr, rest, err := parseFrameTag(data)
	if err != nil {
		return nil, err
	}

	if uint32(len(rest)) < hdr.FirstPartSize {
		return nil, errors.Wrap(ErrTruncated, "partition 0")
	}
	part0 := rest[:hdr.FirstPartSize]
	tokenData := rest[hdr.FirstPartSize:]

	dec := &Decoder{frmHdr: hdr}
	dec.br = bitio.NewBoolReader(part0)
	dec.segHdr.AbsoluteDelta = true
	ResetProba(&dec.proba)

	dec.br.GetBit(0x80) // color_space
	dec.br.GetBit(0x80) // clamping_type

	if err := parseSegmentHeader(dec.br, &dec.segHdr, &dec.proba); err != nil {
		return nil, err
	}
	parseFilterHeader(dec.br, &dec.filterHdr)

	parts, numPartsMinus1, err := partitions(dec.br, tokenData)
	if err != nil {
		return nil, err
	}
	dec.parts = parts
	dec.numPartsMinus1 = numPartsMinus1

	parseQuant(dec.br, &dec.segHdr, dec.dqm[:])
	dec.br.GetBit(0x80) // refresh_entropy_probs: irrelevant to a single-frame still decode
	parseProba(dec.br, &dec.proba, &dec.useSkipProba, &dec.skipP)

	switch {
	case dec.filterHdr.Level == 0:
		dec.filterType = 0
	case dec.filterHdr.Simple:
		dec.filterType = 1
	default:
		dec.filterType = 2
	}

	dec.mbW = (hdr.Width + 15) >> 4
	dec.mbH = (hdr.Height + 15) >> 4

	dec.initFrame()
	dec.precomputeFilterStrengths()
	dec.parseFrame()

	return &Result{
		Width:    hdr.Width,
		Height:   hdr.Height,
		YStride:  dec.cacheYStride,
		UVStride: dec.cacheUVStride,
		Y:        dec.cacheY[:hdr.Height*dec.cacheYStride],
		U:        dec.cacheU[:((hdr.Height+1)/2)*dec.cacheUVStride],
		V:        dec.cacheV[:((hdr.Height+1)/2)*dec.cacheUVStride],
	}, nil
}

// initFrame allocates the per-frame working buffers sized to mbW/mbH.
func (dec *Decoder) initFrame() {
	mbW := dec.mbW

	dec.intraT = make([]uint8, 4*mbW)
	for i := range dec.intraT {
		dec.intraT[i] = BDCPred
	}
	dec.yuvT = make([]TopSamples, mbW)
	dec.mbInfo = make([]MB, mbW+1)
	dec.fInfo = make([]FInfo, mbW)
	dec.mbData = make([]MBData, mbW)
	dec.yuvB = make([]byte, yuvSize)

	dec.cacheYStride = 16 * mbW
	dec.cacheUVStride = 8 * mbW
	dec.cacheY = make([]byte, dec.mbH*16*dec.cacheYStride)
	dec.cacheU = make([]byte, dec.mbH*8*dec.cacheUVStride)
	dec.cacheV = make([]byte, dec.mbH*8*dec.cacheUVStride)
}

// parseFrame walks every macroblock row: partition-0 mode parsing, token
// partition coefficient decoding, reconstruction, and loop filtering
// (§4.5-§4.9).
func (dec *Decoder) parseFrame() {
	for dec.mbY = 0; dec.mbY < dec.mbH; dec.mbY++ {
		tokenBR := dec.parts[uint32(dec.mbY)&dec.numPartsMinus1]

		dec.intraL = [4]uint8{BDCPred, BDCPred, BDCPred, BDCPred}
		dec.mbInfo[0] = MB{}

		for dec.mbX = 0; dec.mbX < dec.mbW; dec.mbX++ {
			top := dec.intraT[dec.mbX*4 : dec.mbX*4+4]
			block := &dec.mbData[dec.mbX]
			parseIntraMode(dec.br, &dec.segHdr, &dec.proba, dec.useSkipProba, dec.skipP, top, dec.intraL[:], block)

			left := &dec.mbInfo[0]
			mb := &dec.mbInfo[dec.mbX+1]

			skip := dec.useSkipProba && block.Skip
			if !skip {
				decodeResiduals(tokenBR, &dec.proba, &dec.dqm[block.Segment], mb, left, block)
			} else {
				mb.Nz, left.Nz = 0, 0
				mb.NzDC, left.NzDC = 0, 0
				block.NonZeroY, block.NonZeroUV = 0, 0
			}

			if dec.filterType > 0 {
				dec.assignFilterInfo(dec.mbX, block, skip)
			}
		}

		dec.reconstructRow()
		if dec.filterType > 0 {
			dec.filterRow()
		}
	}
}
