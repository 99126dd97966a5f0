package dsp

// In-loop deblocking filter (§4.9): simple and normal variants applied
// along macroblock and subblock edges, with high-edge-variance gating for
// the normal filter per RFC 6386 §15. Every entry point takes an explicit
// stride so the same primitives serve both the BPS-strided per-macroblock
// reconstruction buffer and the wider row-cache buffer the filter runs
// against afterward.

func u2s(v uint8) int { return int(v) - 128 }

func needsFilter(p []byte, off, step, thresh2 int) bool {
	p1 := p[off-2*step]
	p0 := p[off-step]
	q0 := p[off]
	q1 := p[off+step]
	return 4*int(Kabs0(int(p0)-int(q0)))+int(Kabs0(int(p1)-int(q1))) <= thresh2
}

func needsFilter2(p []byte, off, step, thresh2, iThresh int) bool {
	p3 := int(p[off-4*step])
	p2 := int(p[off-3*step])
	p1 := int(p[off-2*step])
	p0 := int(p[off-step])
	q0 := int(p[off])
	q1 := int(p[off+step])
	q2 := int(p[off+2*step])
	q3 := int(p[off+3*step])
	if 4*int(Kabs0(p0-q0))+int(Kabs0(p1-q1)) > thresh2 {
		return false
	}
	return int(Kabs0(p3-p2)) <= iThresh && int(Kabs0(p2-p1)) <= iThresh &&
		int(Kabs0(p1-p0)) <= iThresh && int(Kabs0(q3-q2)) <= iThresh &&
		int(Kabs0(q2-q1)) <= iThresh && int(Kabs0(q1-q0)) <= iThresh
}

func hev(p []byte, off, step, thresh int) bool {
	p1 := int(p[off-2*step])
	p0 := int(p[off-step])
	q0 := int(p[off])
	q1 := int(p[off+step])
	return int(Kabs0(p1-p0)) > thresh || int(Kabs0(q1-q0)) > thresh
}

func doFilter2(p []byte, off, step int) {
	p1 := u2s(p[off-2*step])
	p0 := u2s(p[off-step])
	q0 := u2s(p[off])
	q1 := u2s(p[off+step])
	a := 3*(q0-p0) + int(Ksclip1(p1-q1))
	a1 := int(Ksclip2((a + 4) >> 3))
	a2 := int(Ksclip2((a + 3) >> 3))
	p[off-step] = Clip8b(p0 + a2 + 128)
	p[off] = Clip8b(q0 - a1 + 128)
}

func doFilter4(p []byte, off, step int) {
	p1 := u2s(p[off-2*step])
	p0 := u2s(p[off-step])
	q0 := u2s(p[off])
	q1 := u2s(p[off+step])
	a := 3 * (q0 - p0)
	a1 := int(Ksclip2((a + 4) >> 3))
	a2 := int(Ksclip2((a + 3) >> 3))
	a3 := (a1 + 1) >> 1
	p[off-2*step] = Clip8b(p1 + a3 + 128)
	p[off-step] = Clip8b(p0 + a2 + 128)
	p[off] = Clip8b(q0 - a1 + 128)
	p[off+step] = Clip8b(q1 - a3 + 128)
}

func doFilter6(p []byte, off, step int) {
	p2 := u2s(p[off-3*step])
	p1 := u2s(p[off-2*step])
	p0 := u2s(p[off-step])
	q0 := u2s(p[off])
	q1 := u2s(p[off+step])
	q2 := u2s(p[off+2*step])
	a := int(Ksclip1(3*(q0-p0) + int(Ksclip1(p1-q1))))

	a1 := (27*a + 63) >> 7
	a2 := (18*a + 63) >> 7
	a3 := (9*a + 63) >> 7

	p[off-3*step] = Clip8b(p2 + a3 + 128)
	p[off-2*step] = Clip8b(p1 + a2 + 128)
	p[off-step] = Clip8b(p0 + a1 + 128)
	p[off] = Clip8b(q0 - a1 + 128)
	p[off+step] = Clip8b(q1 - a2 + 128)
	p[off+2*step] = Clip8b(q2 - a3 + 128)
}

func filterLoop26(p []byte, off, hStride, vStride, size, thresh2, ithresh, hevThresh int) {
	for size > 0 {
		if needsFilter2(p, off, hStride, thresh2, ithresh) {
			if hev(p, off, hStride, hevThresh) {
				doFilter2(p, off, hStride)
			} else {
				doFilter6(p, off, hStride)
			}
		}
		off += vStride
		size--
	}
}

func filterLoop24(p []byte, off, hStride, vStride, size, thresh2, ithresh, hevThresh int) {
	for size > 0 {
		if needsFilter2(p, off, hStride, thresh2, ithresh) {
			if hev(p, off, hStride, hevThresh) {
				doFilter2(p, off, hStride)
			} else {
				doFilter4(p, off, hStride)
			}
		}
		off += vStride
		size--
	}
}

// Normal filter, macroblock edges (6-tap). stride is the buffer's row width.
func VFilter16(p []byte, off, stride, thresh, ithresh, hevThresh int) {
	filterLoop26(p, off, 1, stride, 16, 2*thresh+1, ithresh, hevThresh)
}
func HFilter16(p []byte, off, stride, thresh, ithresh, hevThresh int) {
	filterLoop26(p, off, stride, 1, 16, 2*thresh+1, ithresh, hevThresh)
}

// Normal filter, subblock edges (4-tap).
func VFilter16i(p []byte, off, stride, thresh, ithresh, hevThresh int) {
	for k := 1; k < 4; k++ {
		filterLoop24(p, off+4*k, 1, stride, 16, 2*thresh+1, ithresh, hevThresh)
	}
}
func HFilter16i(p []byte, off, stride, thresh, ithresh, hevThresh int) {
	for k := 1; k < 4; k++ {
		filterLoop24(p, off+4*k*stride, stride, 1, 16, 2*thresh+1, ithresh, hevThresh)
	}
}

func VFilter8(uData, vData []byte, off, stride, thresh, ithresh, hevThresh int) {
	filterLoop26(uData, off, 1, stride, 8, 2*thresh+1, ithresh, hevThresh)
	filterLoop26(vData, off, 1, stride, 8, 2*thresh+1, ithresh, hevThresh)
}
func HFilter8(uData, vData []byte, off, stride, thresh, ithresh, hevThresh int) {
	filterLoop26(uData, off, stride, 1, 8, 2*thresh+1, ithresh, hevThresh)
	filterLoop26(vData, off, stride, 1, 8, 2*thresh+1, ithresh, hevThresh)
}

func VFilter8i(uData, vData []byte, off, stride, thresh, ithresh, hevThresh int) {
	filterLoop24(uData, off+4, 1, stride, 8, 2*thresh+1, ithresh, hevThresh)
	filterLoop24(vData, off+4, 1, stride, 8, 2*thresh+1, ithresh, hevThresh)
}
func HFilter8i(uData, vData []byte, off, stride, thresh, ithresh, hevThresh int) {
	filterLoop24(uData, off+4*stride, stride, 1, 8, 2*thresh+1, ithresh, hevThresh)
	filterLoop24(vData, off+4*stride, stride, 1, 8, 2*thresh+1, ithresh, hevThresh)
}

// Simple filter, used when the filter-header type selects it (§4.9).
func SimpleVFilter16(p []byte, off, stride, thresh int) {
	simpleLoop(p, off, 1, stride, 16, thresh)
}
func SimpleHFilter16(p []byte, off, stride, thresh int) {
	simpleLoop(p, off, stride, 1, 16, thresh)
}
func SimpleVFilter16i(p []byte, off, stride, thresh int) {
	for k := 1; k < 4; k++ {
		simpleLoop(p, off+4*k, 1, stride, 16, thresh)
	}
}
func SimpleHFilter16i(p []byte, off, stride, thresh int) {
	for k := 1; k < 4; k++ {
		simpleLoop(p, off+4*k*stride, stride, 1, 16, thresh)
	}
}

// simpleLoop applies the 2-tap simple filter across size samples, checking
// each edge at offset step and advancing the loop by loopStride.
func simpleLoop(p []byte, off, step, loopStride, size, thresh int) {
	thresh2 := 2*thresh + 1
	for i := 0; i < size; i++ {
		o := off + i*loopStride
		if needsFilter(p, o, step, thresh2) {
			doFilter2(p, o, step)
		}
	}
}
