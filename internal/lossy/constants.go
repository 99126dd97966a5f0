// Package lossy implements the VP8 keyframe decode pipeline (§4.5-§4.10):
// frame/segmentation/filter/quantizer header parsing, coefficient-token
// decoding with context modeling, the 4x4 IDCT and 4-point WHT, intra
// prediction, and the in-loop deblocking filter. The package produces
// cropped YUV 4:2:0 planes; YUV->RGBA conversion lives in internal/dsp.
package lossy

// Intra prediction mode numbering, shared between the 16x16/8x8 family
// (DC,TM,V,H plus the three boundary-limited DC variants) and the 4x4
// family (DC,TM,V,H,RD,VR,LD,VL,HD,HU), matching dsp.PredLuma16/PredChroma8/
// PredLuma4's switch order.
const (
	DCPred = 0
	TMPred = 1
	VPred  = 2
	HPred  = 3

	BDCPred           = 0
	BTMPred           = 1
	BVEPred           = 2
	BHEPred           = 3
	BRDPred           = 4
	BVRPred           = 5
	BLDPred           = 6
	BVLPred           = 7
	BHDPred           = 8
	BHUPred           = 9
	BDCPredNoTop      = 4
	BDCPredNoLeft     = 5
	BDCPredNoTopLeft  = 6
)

// Structural constants (RFC 6386 §9-§14).
const (
	NumMBSegments      = 4
	MBFeatureTreeProbs = 3
	NumRefLFDeltas     = 4
	NumModeLFDeltas    = 4
	MaxNumPartitions   = 8 // token partitions; partition 0 (header) is separate

	NumTypes  = 4 // 0: Y-after-Y2 (AC only), 1: Y2 (WHT DC), 2: UV, 3: Y-i4 (full)
	NumBands  = 8
	NumCTX    = 3
	NumProbas = 11
)

// KZigzag maps a coefficient's position in decode order to its position in
// the natural (raster) 4x4 block layout (§3 "zig-zag order").
var KZigzag = [16]int{0, 1, 4, 8, 5, 2, 3, 6, 9, 12, 13, 10, 7, 11, 14, 15}

// KBands maps a zig-zag coefficient index (0..15) to its probability band
// (§4.6), with a trailing sentinel entry used by the decode loop when n
// reaches 16.
var KBands = [17]int{0, 1, 2, 3, 6, 4, 5, 6, 6, 6, 6, 6, 6, 6, 6, 7, 0}

// Category extra-bit probabilities for the large-value tail of the token
// tree (RFC 6386 §13.2 Pcat1..Pcat6); each array holds exactly its
// category's extra bits, with no terminating 0 entry.
var (
	KCat1 = [1]uint8{159}
	KCat2 = [2]uint8{165, 145}
	KCat3 = [3]uint8{173, 148, 140}
	KCat4 = [4]uint8{176, 155, 140, 135}
	KCat5 = [5]uint8{180, 157, 141, 134, 130}
	KCat6 = [11]uint8{254, 254, 243, 230, 196, 177, 153, 140, 133, 130, 129}
)

// KDcTable and KAcTable convert a clamped 7-bit quantizer index into the
// actual dequantization multiplier (RFC 6386 §14.1).
var KDcTable = [128]uint16{
	4, 5, 6, 7, 8, 9, 10, 10,
	11, 12, 13, 14, 15, 16, 17, 17,
	18, 19, 20, 20, 21, 21, 22, 22,
	23, 23, 24, 25, 25, 26, 27, 28,
	29, 30, 31, 32, 33, 34, 35, 36,
	37, 37, 38, 39, 40, 41, 42, 43,
	44, 45, 46, 46, 47, 48, 49, 50,
	51, 52, 53, 54, 55, 56, 57, 58,
	59, 60, 61, 62, 63, 64, 65, 66,
	67, 68, 69, 70, 71, 72, 73, 74,
	75, 76, 76, 77, 78, 79, 80, 81,
	82, 83, 84, 85, 86, 87, 88, 89,
	91, 93, 95, 96, 98, 100, 101, 102,
	104, 106, 108, 110, 112, 114, 116, 118,
	122, 124, 126, 128, 130, 132, 134, 136,
	138, 140, 143, 145, 148, 151, 154, 157,
}

var KAcTable = [128]uint16{
	4, 5, 6, 7, 8, 9, 10, 11,
	12, 13, 14, 15, 16, 17, 18, 19,
	20, 21, 22, 23, 24, 25, 26, 27,
	28, 29, 30, 31, 32, 33, 34, 35,
	36, 37, 38, 39, 40, 41, 42, 43,
	44, 45, 46, 47, 48, 49, 50, 51,
	52, 53, 54, 55, 56, 57, 58, 60,
	62, 64, 66, 68, 70, 72, 74, 76,
	78, 80, 82, 84, 86, 88, 90, 92,
	94, 96, 98, 100, 102, 104, 106, 108,
	110, 112, 114, 116, 119, 122, 125, 128,
	131, 134, 137, 140, 143, 146, 149, 152,
	155, 158, 161, 164, 167, 170, 173, 177,
	181, 185, 189, 193, 197, 201, 205, 209,
	213, 217, 221, 225, 229, 234, 239, 245,
	249, 254, 259, 264, 269, 274, 279, 284,
}

// KYModesIntra4 is the binary tree used to decode one 4x4 luma mode (§4.8);
// a non-positive entry is a leaf holding -mode, a positive entry is the
// index of the next node pair. RFC 6386 §11.5 bmode_tree, renumbered to
// this package's BxxxPred constants.
var KYModesIntra4 = [18]int8{
	-BDCPred, 2,
	-BTMPred, 4,
	-BVEPred, 6,
	8, 12,
	-BHEPred, 10,
	-BRDPred, -BVRPred,
	-BLDPred, 14,
	-BVLPred, 16,
	-BHDPred, -BHUPred,
}
