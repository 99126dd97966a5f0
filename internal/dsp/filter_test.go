package dsp

import "testing"

// buildEdgeRow returns a row of n bytes split into a low band and a high
// band at splitCol, used to construct filter test buffers with exactly one
// filterable edge.
func buildEdgeRow(n, splitCol int, low, high byte) []byte {
	row := make([]byte, n)
	for i := 0; i < n; i++ {
		if i < splitCol {
			row[i] = low
		} else {
			row[i] = high
		}
	}
	return row
}

// TestVFilter16iFiltersColumnsNotRows pins down the axis VFilter16i must
// filter along: columns 4, 8, 12, scanned down every row. The buffer holds
// one edge at column 8 (so the k=1 and k=3 inner edges see flat data on
// both sides and are no-ops) and is row-invariant, so correct behavior
// changes columns 6-9 identically on every one of the 16 rows a regression
// that filtered along rows instead would either panic (stride too small)
// or leave these columns untouched while corrupting unrelated rows.
func TestVFilter16iFiltersColumnsNotRows(t *testing.T) {
	const stride = 20
	const rows = 16
	p := make([]byte, rows*stride)
	row := buildEdgeRow(stride, 8, 90, 150)
	for r := 0; r < rows; r++ {
		copy(p[r*stride:r*stride+stride], row)
	}

	VFilter16i(p, 0, stride, 150, 0, 1)

	want := buildEdgeRow(stride, 8, 90, 150)
	want[6], want[7], want[8], want[9] = 98, 105, 135, 142

	for r := 0; r < rows; r++ {
		for c := 0; c < stride; c++ {
			if got := p[r*stride+c]; got != want[c] {
				t.Fatalf("row %d col %d = %d, want %d", r, c, got, want[c])
			}
		}
	}
}

// TestHFilter16iFiltersRowsNotColumns mirrors the previous test with the
// edge running in the row direction: HFilter16i must filter rows 4, 8, 12
// scanned across every column.
func TestHFilter16iFiltersRowsNotColumns(t *testing.T) {
	const stride = 16 // columns
	const rows = 20
	p := make([]byte, rows*stride)
	for r := 0; r < rows; r++ {
		v := byte(90)
		if r >= 8 {
			v = 150
		}
		for c := 0; c < stride; c++ {
			p[r*stride+c] = v
		}
	}

	HFilter16i(p, 0, stride, 150, 0, 1)

	wantRow := func(r int) byte {
		switch {
		case r == 6:
			return 98
		case r == 7:
			return 105
		case r == 8:
			return 135
		case r == 9:
			return 142
		case r < 8:
			return 90
		default:
			return 150
		}
	}
	for r := 0; r < rows; r++ {
		want := wantRow(r)
		for c := 0; c < stride; c++ {
			if got := p[r*stride+c]; got != want {
				t.Fatalf("row %d col %d = %d, want %d", r, c, got, want)
			}
		}
	}
}

// TestVFilter8iSingleChromaEdge exercises the one inner edge an 8-wide
// chroma plane has, at column 4.
func TestVFilter8iSingleChromaEdge(t *testing.T) {
	const stride = 16
	const rows = 8
	u := make([]byte, rows*stride)
	v := make([]byte, rows*stride)
	row := buildEdgeRow(stride, 4, 90, 150)
	for r := 0; r < rows; r++ {
		copy(u[r*stride:r*stride+stride], row)
		copy(v[r*stride:r*stride+stride], row)
	}

	VFilter8i(u, v, 0, stride, 150, 0, 1)

	want := buildEdgeRow(stride, 4, 90, 150)
	want[2], want[3], want[4], want[5] = 98, 105, 135, 142

	for r := 0; r < rows; r++ {
		for c := 0; c < stride; c++ {
			if u[r*stride+c] != want[c] {
				t.Fatalf("u row %d col %d = %d, want %d", r, c, u[r*stride+c], want[c])
			}
			if v[r*stride+c] != want[c] {
				t.Fatalf("v row %d col %d = %d, want %d", r, c, v[r*stride+c], want[c])
			}
		}
	}
}

// TestHFilter8iSingleChromaEdge mirrors the previous test along rows.
func TestHFilter8iSingleChromaEdge(t *testing.T) {
	const stride = 8
	const rows = 12
	u := make([]byte, rows*stride)
	v := make([]byte, rows*stride)
	for r := 0; r < rows; r++ {
		val := byte(90)
		if r >= 4 {
			val = 150
		}
		for c := 0; c < stride; c++ {
			u[r*stride+c] = val
			v[r*stride+c] = val
		}
	}

	HFilter8i(u, v, 0, stride, 150, 0, 1)

	wantRow := func(r int) byte {
		switch {
		case r == 2:
			return 98
		case r == 3:
			return 105
		case r == 4:
			return 135
		case r == 5:
			return 142
		case r < 4:
			return 90
		default:
			return 150
		}
	}
	for r := 0; r < rows; r++ {
		want := wantRow(r)
		for c := 0; c < stride; c++ {
			if u[r*stride+c] != want {
				t.Fatalf("u row %d col %d = %d, want %d", r, c, u[r*stride+c], want)
			}
		}
	}
}

// TestSimpleVFilter16EdgeOrientation pins down that the simple
// macroblock-edge filter reads neighbors across columns while scanning
// down rows: the call convention frame.go relies on for mbX>0.
func TestSimpleVFilter16EdgeOrientation(t *testing.T) {
	const stride = 20
	const rows = 16
	p := make([]byte, rows*stride)
	row := buildEdgeRow(stride, 4, 90, 150)
	for r := 0; r < rows; r++ {
		copy(p[r*stride:r*stride+stride], row)
	}

	SimpleVFilter16(p, 4, stride, 150)

	want := buildEdgeRow(stride, 4, 90, 150)
	want[3], want[4] = 105, 135

	for r := 0; r < rows; r++ {
		for c := 0; c < stride; c++ {
			if got := p[r*stride+c]; got != want[c] {
				t.Fatalf("row %d col %d = %d, want %d", r, c, got, want[c])
			}
		}
	}
}

// TestSimpleHFilter16EdgeOrientation mirrors the previous test for the
// mbY>0 call convention: neighbors across rows, scanned across columns.
func TestSimpleHFilter16EdgeOrientation(t *testing.T) {
	const stride = 16 // columns
	const rows = 20
	p := make([]byte, rows*stride)
	for r := 0; r < rows; r++ {
		v := byte(90)
		if r >= 4 {
			v = 150
		}
		for c := 0; c < stride; c++ {
			p[r*stride+c] = v
		}
	}

	SimpleHFilter16(p, 4*stride, stride, 150)

	wantRow := func(r int) byte {
		switch r {
		case 3:
			return 105
		case 4:
			return 135
		}
		if r < 4 {
			return 90
		}
		return 150
	}
	for r := 0; r < rows; r++ {
		want := wantRow(r)
		for c := 0; c < stride; c++ {
			if got := p[r*stride+c]; got != want {
				t.Fatalf("row %d col %d = %d, want %d", r, c, got, want)
			}
		}
	}
}

// TestSimpleVFilter16iFiltersColumns checks the inner simple-filter
// variant's three subblock edges resolve against columns, matching
// SimpleVFilter16's orientation.
func TestSimpleVFilter16iFiltersColumns(t *testing.T) {
	const stride = 20
	const rows = 16
	p := make([]byte, rows*stride)
	row := buildEdgeRow(stride, 8, 90, 150)
	for r := 0; r < rows; r++ {
		copy(p[r*stride:r*stride+stride], row)
	}

	SimpleVFilter16i(p, 0, stride, 150)

	want := buildEdgeRow(stride, 8, 90, 150)
	want[7], want[8] = 105, 135

	for r := 0; r < rows; r++ {
		for c := 0; c < stride; c++ {
			if got := p[r*stride+c]; got != want[c] {
				t.Fatalf("row %d col %d = %d, want %d", r, c, got, want[c])
			}
		}
	}
}

// TestSimpleHFilter16iFiltersRows mirrors the previous test for rows.
func TestSimpleHFilter16iFiltersRows(t *testing.T) {
	const stride = 16
	const rows = 20
	p := make([]byte, rows*stride)
	for r := 0; r < rows; r++ {
		v := byte(90)
		if r >= 8 {
			v = 150
		}
		for c := 0; c < stride; c++ {
			p[r*stride+c] = v
		}
	}

	SimpleHFilter16i(p, 0, stride, 150)

	wantRow := func(r int) byte {
		switch r {
		case 7:
			return 105
		case 8:
			return 135
		}
		if r < 8 {
			return 90
		}
		return 150
	}
	for r := 0; r < rows; r++ {
		want := wantRow(r)
		for c := 0; c < stride; c++ {
			if got := p[r*stride+c]; got != want {
				t.Fatalf("row %d col %d = %d, want %d", r, c, got, want)
			}
		}
	}
}
