package dsp

// VP8 intra-prediction modes (§4.8).
//
// Convention: each predictor writes into a shared reconstruction buffer
// dst at an offset off such that dst[off] is the block's top-left pixel.
// Reference context lives at negative offsets relative to off:
//   dst[off-BPS+i]   : top row
//   dst[off-1+j*BPS] : left column
//   dst[off-BPS-1]   : top-left corner
// Using an explicit non-negative offset into a shared buffer (rather than
// pointer arithmetic into a per-block array) keeps every slice index
// within bounds for Go's runtime bounds checker.

func avg3(a, b, c uint8) uint8 { return uint8((int(a) + 2*int(b) + int(c) + 2) >> 2) }
func avg2(a, b uint8) uint8    { return uint8((int(a) + int(b) + 1) >> 1) }

// ---------- 16x16 luma ----------

func dc16(dst []byte, off int) {
	dc := 0
	for i := 0; i < 16; i++ {
		dc += int(dst[off+i-BPS])
		dc += int(dst[off-1+i*BPS])
	}
	fill16(dst, off, uint8((dc+16)>>5))
}

func tm16(dst []byte, off int) { tmN(dst, off, 16) }
func ve16(dst []byte, off int) { veN(dst, off, 16) }
func he16(dst []byte, off int) { heN(dst, off, 16) }

func dc16NoTop(dst []byte, off int) {
	dc := 0
	for i := 0; i < 16; i++ {
		dc += int(dst[off-1+i*BPS])
	}
	fill16(dst, off, uint8((dc+8)>>4))
}

func dc16NoLeft(dst []byte, off int) {
	dc := 0
	for i := 0; i < 16; i++ {
		dc += int(dst[off+i-BPS])
	}
	fill16(dst, off, uint8((dc+8)>>4))
}

func dc16NoTopLeft(dst []byte, off int) { fill16(dst, off, 128) }

func fill16(dst []byte, off int, v uint8) {
	for j := 0; j < 16; j++ {
		row := dst[off+j*BPS : off+j*BPS+16]
		for i := range row {
			row[i] = v
		}
	}
}

// ---------- 8x8 chroma ----------

func dc8uv(dst []byte, off int) {
	dc := 0
	for i := 0; i < 8; i++ {
		dc += int(dst[off+i-BPS])
		dc += int(dst[off-1+i*BPS])
	}
	fill8(dst, off, uint8((dc+8)>>4))
}

func tm8uv(dst []byte, off int) { tmN(dst, off, 8) }
func ve8uv(dst []byte, off int) { veN(dst, off, 8) }
func he8uv(dst []byte, off int) { heN(dst, off, 8) }

func dc8uvNoTop(dst []byte, off int) {
	dc := 0
	for i := 0; i < 8; i++ {
		dc += int(dst[off-1+i*BPS])
	}
	fill8(dst, off, uint8((dc+4)>>3))
}

func dc8uvNoLeft(dst []byte, off int) {
	dc := 0
	for i := 0; i < 8; i++ {
		dc += int(dst[off+i-BPS])
	}
	fill8(dst, off, uint8((dc+4)>>3))
}

func dc8uvNoTopLeft(dst []byte, off int) { fill8(dst, off, 128) }

func fill8(dst []byte, off int, v uint8) {
	for j := 0; j < 8; j++ {
		row := dst[off+j*BPS : off+j*BPS+8]
		for i := range row {
			row[i] = v
		}
	}
}

// tmN/veN/heN implement TM/V/H prediction for either block size.
func tmN(dst []byte, off, n int) {
	tl := int(dst[off-1-BPS])
	for j := 0; j < n; j++ {
		left := int(dst[off-1+j*BPS])
		base := left - tl
		row := off + j*BPS
		for i := 0; i < n; i++ {
			dst[row+i] = Clip8b(base + int(dst[off+i-BPS]))
		}
	}
}

func veN(dst []byte, off, n int) {
	for j := 0; j < n; j++ {
		copy(dst[off+j*BPS:off+j*BPS+n], dst[off-BPS:off-BPS+n])
	}
}

func heN(dst []byte, off, n int) {
	for j := 0; j < n; j++ {
		v := dst[off-1+j*BPS]
		row := dst[off+j*BPS : off+j*BPS+n]
		for i := range row {
			row[i] = v
		}
	}
}

// ---------- 4x4 luma ----------

func dc4(dst []byte, off int) {
	dc := 0
	for i := 0; i < 4; i++ {
		dc += int(dst[off+i-BPS])
		dc += int(dst[off-1+i*BPS])
	}
	fill4(dst, off, uint8((dc+4)>>3))
}

func fill4(dst []byte, off int, v uint8) {
	for j := 0; j < 4; j++ {
		row := dst[off+j*BPS : off+j*BPS+4]
		for i := range row {
			row[i] = v
		}
	}
}

func tm4(dst []byte, off int) {
	for j := 0; j < 4; j++ {
		for i := 0; i < 4; i++ {
			v := int(dst[off-1+j*BPS]) + int(dst[off+i-BPS]) - int(dst[off-1-BPS])
			dst[off+i+j*BPS] = Clip8b(v)
		}
	}
}

func ve4(dst []byte, off int) {
	tm1 := dst[off-1-BPS]
	t0 := dst[off+0-BPS]
	t1 := dst[off+1-BPS]
	t2 := dst[off+2-BPS]
	t3 := dst[off+3-BPS]
	t4 := dst[off+4-BPS]
	vals := [4]uint8{avg3(tm1, t0, t1), avg3(t0, t1, t2), avg3(t1, t2, t3), avg3(t2, t3, t4)}
	for j := 0; j < 4; j++ {
		copy(dst[off+j*BPS:off+j*BPS+4], vals[:])
	}
}

func he4(dst []byte, off int) {
	tl := dst[off-1-BPS]
	l0 := dst[off-1+0*BPS]
	l1 := dst[off-1+1*BPS]
	l2 := dst[off-1+2*BPS]
	l3 := dst[off-1+3*BPS]
	vals := [4]uint8{avg3(tl, l0, l1), avg3(l0, l1, l2), avg3(l1, l2, l3), avg3(l2, l3, l3)}
	for j := 0; j < 4; j++ {
		row := dst[off+j*BPS : off+j*BPS+4]
		for i := range row {
			row[i] = vals[j]
		}
	}
}

func rd4(dst []byte, off int) {
	tl := dst[off-1-BPS]
	t0 := dst[off+0-BPS]
	t1 := dst[off+1-BPS]
	t2 := dst[off+2-BPS]
	t3 := dst[off+3-BPS]
	l0 := dst[off-1+0*BPS]
	l1 := dst[off-1+1*BPS]
	l2 := dst[off-1+2*BPS]
	l3 := dst[off-1+3*BPS]

	dst[off+0+3*BPS] = avg3(l3, l2, l1)
	dst[off+0+2*BPS] = avg3(l2, l1, l0)
	dst[off+1+3*BPS] = avg3(l2, l1, l0)
	dst[off+0+1*BPS] = avg3(l1, l0, tl)
	dst[off+1+2*BPS] = avg3(l1, l0, tl)
	dst[off+2+3*BPS] = avg3(l1, l0, tl)
	dst[off+0+0*BPS] = avg3(l0, tl, t0)
	dst[off+1+1*BPS] = avg3(l0, tl, t0)
	dst[off+2+2*BPS] = avg3(l0, tl, t0)
	dst[off+3+3*BPS] = avg3(l0, tl, t0)
	dst[off+1+0*BPS] = avg3(tl, t0, t1)
	dst[off+2+1*BPS] = avg3(tl, t0, t1)
	dst[off+3+2*BPS] = avg3(tl, t0, t1)
	dst[off+2+0*BPS] = avg3(t0, t1, t2)
	dst[off+3+1*BPS] = avg3(t0, t1, t2)
	dst[off+3+0*BPS] = avg3(t1, t2, t3)
}

func vr4(dst []byte, off int) {
	tl := dst[off-1-BPS]
	t0 := dst[off+0-BPS]
	t1 := dst[off+1-BPS]
	t2 := dst[off+2-BPS]
	t3 := dst[off+3-BPS]
	l0 := dst[off-1+0*BPS]
	l1 := dst[off-1+1*BPS]
	l2 := dst[off-1+2*BPS]

	dst[off+0+0*BPS] = avg2(tl, t0)
	dst[off+1+0*BPS] = avg2(t0, t1)
	dst[off+2+0*BPS] = avg2(t1, t2)
	dst[off+3+0*BPS] = avg2(t2, t3)

	dst[off+0+1*BPS] = avg3(l0, tl, t0)
	dst[off+1+1*BPS] = avg3(tl, t0, t1)
	dst[off+2+1*BPS] = avg3(t0, t1, t2)
	dst[off+3+1*BPS] = avg3(t1, t2, t3)

	dst[off+0+2*BPS] = avg3(l1, l0, tl)
	dst[off+1+2*BPS] = dst[off+0+0*BPS]
	dst[off+2+2*BPS] = dst[off+1+0*BPS]
	dst[off+3+2*BPS] = dst[off+2+0*BPS]

	dst[off+0+3*BPS] = avg3(l2, l1, l0)
	dst[off+1+3*BPS] = dst[off+0+1*BPS]
	dst[off+2+3*BPS] = dst[off+1+1*BPS]
	dst[off+3+3*BPS] = dst[off+2+1*BPS]
}

func ld4(dst []byte, off int) {
	a := dst[off+0-BPS]
	b := dst[off+1-BPS]
	c := dst[off+2-BPS]
	d := dst[off+3-BPS]
	e := dst[off+4-BPS]
	f := dst[off+5-BPS]
	g := dst[off+6-BPS]
	h := dst[off+7-BPS]

	dst[off+0+0*BPS] = avg3(a, b, c)
	dst[off+1+0*BPS] = avg3(b, c, d)
	dst[off+0+1*BPS] = avg3(b, c, d)
	dst[off+2+0*BPS] = avg3(c, d, e)
	dst[off+1+1*BPS] = avg3(c, d, e)
	dst[off+0+2*BPS] = avg3(c, d, e)
	dst[off+3+0*BPS] = avg3(d, e, f)
	dst[off+2+1*BPS] = avg3(d, e, f)
	dst[off+1+2*BPS] = avg3(d, e, f)
	dst[off+0+3*BPS] = avg3(d, e, f)
	dst[off+3+1*BPS] = avg3(e, f, g)
	dst[off+2+2*BPS] = avg3(e, f, g)
	dst[off+1+3*BPS] = avg3(e, f, g)
	dst[off+3+2*BPS] = avg3(f, g, h)
	dst[off+2+3*BPS] = avg3(f, g, h)
	dst[off+3+3*BPS] = avg3(g, h, h)
}

func vl4(dst []byte, off int) {
	a := dst[off+0-BPS]
	b := dst[off+1-BPS]
	c := dst[off+2-BPS]
	d := dst[off+3-BPS]
	e := dst[off+4-BPS]
	f := dst[off+5-BPS]
	g := dst[off+6-BPS]
	h := dst[off+7-BPS]

	dst[off+0+0*BPS] = avg2(a, b)
	dst[off+1+0*BPS] = avg2(b, c)
	dst[off+0+2*BPS] = avg2(b, c)
	dst[off+2+0*BPS] = avg2(c, d)
	dst[off+1+2*BPS] = avg2(c, d)
	dst[off+3+0*BPS] = avg2(d, e)
	dst[off+2+2*BPS] = avg2(d, e)

	dst[off+0+1*BPS] = avg3(a, b, c)
	dst[off+1+1*BPS] = avg3(b, c, d)
	dst[off+0+3*BPS] = avg3(b, c, d)
	dst[off+2+1*BPS] = avg3(c, d, e)
	dst[off+1+3*BPS] = avg3(c, d, e)
	dst[off+3+1*BPS] = avg3(d, e, f)
	dst[off+2+3*BPS] = avg3(d, e, f)
	dst[off+3+2*BPS] = avg3(e, f, g)
	dst[off+3+3*BPS] = avg3(f, g, h)
}

func hd4(dst []byte, off int) {
	tl := dst[off-1-BPS]
	t0 := dst[off+0-BPS]
	t1 := dst[off+1-BPS]
	t2 := dst[off+2-BPS]
	l0 := dst[off-1+0*BPS]
	l1 := dst[off-1+1*BPS]
	l2 := dst[off-1+2*BPS]
	l3 := dst[off-1+3*BPS]

	dst[off+0+0*BPS] = avg2(tl, l0)
	dst[off+1+0*BPS] = avg3(l0, tl, t0)
	dst[off+2+0*BPS] = avg3(tl, t0, t1)
	dst[off+3+0*BPS] = avg3(t0, t1, t2)

	dst[off+0+1*BPS] = avg2(l0, l1)
	dst[off+1+1*BPS] = avg3(tl, l0, l1)
	dst[off+2+1*BPS] = dst[off+0+0*BPS]
	dst[off+3+1*BPS] = dst[off+1+0*BPS]

	dst[off+0+2*BPS] = avg2(l1, l2)
	dst[off+1+2*BPS] = avg3(l0, l1, l2)
	dst[off+2+2*BPS] = dst[off+0+1*BPS]
	dst[off+3+2*BPS] = dst[off+1+1*BPS]

	dst[off+0+3*BPS] = avg2(l2, l3)
	dst[off+1+3*BPS] = avg3(l1, l2, l3)
	dst[off+2+3*BPS] = dst[off+0+2*BPS]
	dst[off+3+3*BPS] = dst[off+1+2*BPS]
}

func hu4(dst []byte, off int) {
	l0 := dst[off-1+0*BPS]
	l1 := dst[off-1+1*BPS]
	l2 := dst[off-1+2*BPS]
	l3 := dst[off-1+3*BPS]

	dst[off+0+0*BPS] = avg2(l0, l1)
	dst[off+1+0*BPS] = avg3(l0, l1, l2)
	dst[off+2+0*BPS] = avg2(l1, l2)
	dst[off+3+0*BPS] = avg3(l1, l2, l3)

	dst[off+0+1*BPS] = dst[off+2+0*BPS]
	dst[off+1+1*BPS] = dst[off+3+0*BPS]
	dst[off+2+1*BPS] = avg2(l2, l3)
	dst[off+3+1*BPS] = avg3(l2, l3, l3)

	dst[off+0+2*BPS] = dst[off+2+1*BPS]
	dst[off+1+2*BPS] = dst[off+3+1*BPS]
	dst[off+2+2*BPS] = l3
	dst[off+3+2*BPS] = l3

	dst[off+0+3*BPS] = l3
	dst[off+1+3*BPS] = l3
	dst[off+2+3*BPS] = l3
	dst[off+3+3*BPS] = l3
}

// PredLuma16, PredChroma8, PredLuma4 dispatch by §4.8's closed mode sets.
// Mode indices follow RFC 6386 §11.2/§12.2: 0=DC,1=TM,2=V,3=H for the 16x16
// and 8x8 families, plus the boundary-limited DC variants 4-6 used when
// top and/or left context is unavailable at the frame edge.

func PredLuma16(mode int, dst []byte, off int) {
	switch mode {
	case 0:
		dc16(dst, off)
	case 1:
		tm16(dst, off)
	case 2:
		ve16(dst, off)
	case 3:
		he16(dst, off)
	case 4:
		dc16NoTop(dst, off)
	case 5:
		dc16NoLeft(dst, off)
	case 6:
		dc16NoTopLeft(dst, off)
	}
}

func PredChroma8(mode int, dst []byte, off int) {
	switch mode {
	case 0:
		dc8uv(dst, off)
	case 1:
		tm8uv(dst, off)
	case 2:
		ve8uv(dst, off)
	case 3:
		he8uv(dst, off)
	case 4:
		dc8uvNoTop(dst, off)
	case 5:
		dc8uvNoLeft(dst, off)
	case 6:
		dc8uvNoTopLeft(dst, off)
	}
}

// PredLuma4 dispatches the 4x4 luma prediction modes
// {DC,TM,V,H,RD,VR,LD,VL,HD,HU} in RFC 6386 §12.3 order.
func PredLuma4(mode int, dst []byte, off int) {
	switch mode {
	case 0:
		dc4(dst, off)
	case 1:
		tm4(dst, off)
	case 2:
		ve4(dst, off)
	case 3:
		he4(dst, off)
	case 4:
		rd4(dst, off)
	case 5:
		vr4(dst, off)
	case 6:
		ld4(dst, off)
	case 7:
		vl4(dst, off)
	case 8:
		hd4(dst, off)
	case 9:
		hu4(dst, off)
	}
}
