// Package lossless implements the VP8L bitstream decoder: meta-Huffman
// groups, LZ77 backward references, the color cache, and the four
// reversible image transforms (§4.12-§4.15).
package lossless

const (
	// VP8LMagicByte is the VP8L signature byte.
	VP8LMagicByte = 0x2f

	VP8LVersionBits = 3
	// VP8LVersion is the only version value this decoder accepts.
	VP8LVersion = 0

	VP8LImageSizeBits = 14
	VP8LHeaderSize    = 5

	NumLiteralCodes  = 256
	NumLengthCodes   = 24
	NumDistanceCodes = 40
	CodeLengthCodes  = 19

	MaxAllowedCodeLength = 15
	DefaultCodeLength    = 8

	HuffmanTableBits = 8
	HuffmanTableMask = (1 << HuffmanTableBits) - 1

	LengthsTableBits = 7
	LengthsTableMask = (1 << LengthsTableBits) - 1

	HuffmanPackedBits      = 6
	HuffmanPackedTableSize = 1 << HuffmanPackedBits

	HuffmanCodesPerMetaCode = 5

	MaxCacheBits = 11
	MinCacheBits = 0

	MaxPaletteSize = 256

	NumTransforms    = 4
	TransformPresent = 1

	MinHuffmanBits  = 2
	NumHuffmanBits  = 3
	MinTransformBits = 2
	NumTransformBits = 3

	ARGBBlack = 0xff000000

	CodeToPlaneCodesCount = 120
)

// HuffIndex enumerates the 5 Huffman codes carried by one meta code.
type HuffIndex int

const (
	HuffGreen HuffIndex = iota
	HuffRed
	HuffBlue
	HuffAlpha
	HuffDist
)

// CodeLengthCodeOrder is the order in which code-length codes are
// transmitted in the bitstream.
var CodeLengthCodeOrder = [CodeLengthCodes]int{
	17, 18, 0, 1, 2, 3, 4, 5, 16, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15,
}

// KLiteralMap marks each of the 5 codes as variable-alphabet (0, used by
// green+length and distance) or fixed 256-entry (1, red/blue/alpha).
var KLiteralMap = [HuffmanCodesPerMetaCode]uint8{0, 1, 1, 1, 0}

var kBaseAlphabetSize = [HuffmanCodesPerMetaCode]int{
	NumLiteralCodes + NumLengthCodes,
	NumLiteralCodes,
	NumLiteralCodes,
	NumLiteralCodes,
	NumDistanceCodes,
}

// AlphabetSize returns the alphabet size for huffIndex given the number of
// color-cache bits in effect (cache entries extend the green alphabet).
func AlphabetSize(huffIndex HuffIndex, colorCacheBits int) int {
	size := kBaseAlphabetSize[huffIndex]
	if KLiteralMap[huffIndex] == 0 && huffIndex == HuffGreen && colorCacheBits > 0 {
		size += 1 << colorCacheBits
	}
	return size
}

// CodeToPlane maps a distance code (1-based) to a packed (yoffset,xoffset).
var CodeToPlane = [CodeToPlaneCodesCount]uint8{
	0x18, 0x07, 0x17, 0x19, 0x28, 0x06, 0x27, 0x29, 0x16, 0x1a,
	0x26, 0x2a, 0x38, 0x05, 0x37, 0x39, 0x15, 0x1b, 0x36, 0x3a,
	0x25, 0x2b, 0x48, 0x04, 0x47, 0x49, 0x14, 0x1c, 0x35, 0x3b,
	0x46, 0x4a, 0x24, 0x2c, 0x58, 0x45, 0x4b, 0x34, 0x3c, 0x03,
	0x57, 0x59, 0x13, 0x1d, 0x56, 0x5a, 0x23, 0x2d, 0x44, 0x4c,
	0x55, 0x5b, 0x33, 0x3d, 0x68, 0x02, 0x67, 0x69, 0x12, 0x1e,
	0x66, 0x6a, 0x22, 0x2e, 0x54, 0x5c, 0x43, 0x4d, 0x65, 0x6b,
	0x32, 0x3e, 0x78, 0x01, 0x77, 0x79, 0x53, 0x5d, 0x11, 0x1f,
	0x64, 0x6c, 0x42, 0x4e, 0x76, 0x7a, 0x21, 0x2f, 0x75, 0x7b,
	0x31, 0x3f, 0x63, 0x6d, 0x52, 0x5e, 0x00, 0x74, 0x7c, 0x41,
	0x4f, 0x10, 0x20, 0x62, 0x6e, 0x30, 0x73, 0x7d, 0x51, 0x5f,
	0x40, 0x72, 0x7e, 0x61, 0x6f, 0x50, 0x71, 0x7f, 0x60, 0x70,
}

// PlaneCodeToDistance converts a VP8L distance code to a pixel distance.
func PlaneCodeToDistance(xsize int, planeCode int) int {
	if planeCode <= 0 {
		return 1
	}
	if planeCode > CodeToPlaneCodesCount {
		return planeCode - CodeToPlaneCodesCount
	}
	distCode := CodeToPlane[planeCode-1]
	yoffset := int(distCode >> 4)
	xoffset := 8 - int(distCode&0xf)
	dist := yoffset*xsize + xoffset
	if dist < 1 {
		return 1
	}
	return dist
}

// CodeLengthLiterals is the number of literal code-length values (0..15).
const CodeLengthLiterals = 16

// CodeLengthRepeatCode is the first repeat code (code 16).
const CodeLengthRepeatCode = 16

var CodeLengthExtraBits = [3]uint8{2, 3, 7}
var CodeLengthRepeatOffsets = [3]uint8{3, 3, 11}

// VP8LSubSampleSize returns ceil(size / (1 << samplingBits)).
func VP8LSubSampleSize(size, samplingBits int) int {
	return (size + (1 << samplingBits) - 1) >> samplingBits
}
