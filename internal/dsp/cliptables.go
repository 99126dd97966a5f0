// Package dsp provides the low-level numeric routines shared by the VP8
// lossy pipeline: clip/abs lookup tables, the 4x4 IDCT and 4-point WHT,
// intra-prediction generators, the in-loop deblocking filter, and the
// YUV->RGB color conversion used by §4.7-§4.10.
package dsp

// Precomputed clip/abs tables used by the inverse transforms and the loop
// filter. Negative-index access is emulated with fixed offsets since Go
// slices cannot be indexed below zero.
var (
	sclip1 [893 + 892 + 1]int8
	sclip2 [112 + 112 + 1]int8
	clip1  [255 + 511 + 1]uint8
	abs0   [255 + 255 + 1]uint8
)

const (
	sclip1Offset = 893
	sclip2Offset = 112
	clip1Offset  = 255
	abs0Offset   = 255
)

// Ksclip1 clips v to [-128, 127].
func Ksclip1(v int) int8 { return sclip1[sclip1Offset+v] }

// Ksclip2 clips v to [-16, 15].
func Ksclip2(v int) int8 { return sclip2[sclip2Offset+v] }

// Kclip1 clips v to [0, 255].
func Kclip1(v int) uint8 { return clip1[clip1Offset+v] }

// Kabs0 returns |v| for v in [-255, 255].
func Kabs0(v int) uint8 { return abs0[abs0Offset+v] }

// Clip8b clips v to [0, 255] via a single unsigned comparison in the
// common case.
func Clip8b(v int) uint8 {
	if uint(v) <= 255 {
		return uint8(v)
	}
	if v < 0 {
		return 0
	}
	return 255
}

func init() {
	for i := -893; i <= 892; i++ {
		v := i
		if v < -128 {
			v = -128
		} else if v > 127 {
			v = 127
		}
		sclip1[sclip1Offset+i] = int8(v)
	}
	for i := -112; i <= 112; i++ {
		v := i
		if v < -16 {
			v = -16
		} else if v > 15 {
			v = 15
		}
		sclip2[sclip2Offset+i] = int8(v)
	}
	for i := -255; i <= 511; i++ {
		v := i
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		clip1[clip1Offset+i] = uint8(v)
	}
	for i := -255; i <= 255; i++ {
		v := i
		if v < 0 {
			v = -v
		}
		abs0[abs0Offset+i] = uint8(v)
	}
}
