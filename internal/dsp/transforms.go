package dsp

// 4x4 inverse DCT and 4-point inverse WHT for VP8 lossy decode (§4.7).
// Constants and structure match RFC 6386 §14.3/§14.4 (the "butterfly"
// formulation also used by libwebp's TransformOne_C/TransformWHT_C).

const (
	c1 = 20091 // (sqrt(2)*cos(pi/8) - 1) * 2^16, fixed-point; mul1 adds a back
	c2 = 35468 // sqrt(2)*sin(pi/8) * 2^16, fixed-point
)

func mul1(a int) int { return ((a * c1) >> 16) + a }
func mul2(a int) int { return (a * c2) >> 16 }

func store(dst []byte, off, x int) {
	dst[off] = Clip8b(int(dst[off]) + (x >> 3))
}

// TransformOne performs a single 4x4 inverse DCT in place against dst at
// stride BPS, adding the result to dst's existing (predicted) contents.
func TransformOne(in []int16, dst []byte) {
	var tmp [16]int

	for col := 0; col < 4; col++ {
		a := int(in[col]) + int(in[8+col])
		b := int(in[col]) - int(in[8+col])
		cc := mul2(int(in[4+col])) - mul1(int(in[12+col]))
		d := mul1(int(in[4+col])) + mul2(int(in[12+col]))
		tmp[col] = a + d
		tmp[4+col] = b + cc
		tmp[8+col] = b - cc
		tmp[12+col] = a - d
	}

	for row := 0; row < 4; row++ {
		r := row * 4
		dc := tmp[r] + 4
		a := dc + tmp[r+2]
		b := dc - tmp[r+2]
		cc := mul2(tmp[r+1]) - mul1(tmp[r+3])
		d := mul1(tmp[r+1]) + mul2(tmp[r+3])
		o := row * BPS
		store(dst, o+0, a+d)
		store(dst, o+1, b+cc)
		store(dst, o+2, b-cc)
		store(dst, o+3, a-d)
	}
}

// TransformDC applies the DC-only fast path (all AC coefficients zero).
func TransformDC(in []int16, dst []byte) {
	dc := int(in[0]) + 4
	for row := 0; row < 4; row++ {
		o := row * BPS
		store(dst, o+0, dc)
		store(dst, o+1, dc)
		store(dst, o+2, dc)
		store(dst, o+3, dc)
	}
}

// TransformWHT performs the inverse 4-point Walsh-Hadamard Transform over
// the 16 Y2 (luma-DC) coefficients, writing the 16 resulting DC values
// into out at stride-16 slots (matching the per-block coefficient layout
// where block i's DC lives at out[i*16]).
func TransformWHT(in []int16, out []int16) {
	var tmp [16]int

	for i := 0; i < 4; i++ {
		a0 := int(in[0+i]) + int(in[12+i])
		a1 := int(in[4+i]) + int(in[8+i])
		a2 := int(in[4+i]) - int(in[8+i])
		a3 := int(in[0+i]) - int(in[12+i])
		tmp[0+i] = a0 + a1
		tmp[8+i] = a0 - a1
		tmp[4+i] = a3 + a2
		tmp[12+i] = a3 - a2
	}

	for i := 0; i < 4; i++ {
		dc := tmp[i*4+0] + 3
		a0 := dc + tmp[i*4+3]
		a1 := tmp[i*4+1] + tmp[i*4+2]
		a2 := tmp[i*4+1] - tmp[i*4+2]
		a3 := dc - tmp[i*4+3]
		base := i * 4 * 16
		out[base+0*16] = int16((a0 + a1) >> 3)
		out[base+1*16] = int16((a3 + a2) >> 3)
		out[base+2*16] = int16((a0 - a1) >> 3)
		out[base+3*16] = int16((a3 - a2) >> 3)
	}
}
