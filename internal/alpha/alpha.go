// Package alpha implements the ALPH chunk decoder (§4.16): header parsing,
// raw/VP8L payload dispatch, inverse spatial filtering, and level-reduction
// expansion. The result is a single-byte-per-pixel alpha plane in raster
// order.
package alpha

import (
	"image"

	"github.com/pkg/errors"

	"github.com/Anonyfox/raven-js-sub005/internal/lossless"
)

// Compression and Filter enumerate the ALPH header's two coded fields
// (§4.16, §6 "ALPH: header[1] | payload").
const (
	CompressionNone = 0
	CompressionVP8L = 1

	FilterNone       = 0
	FilterHorizontal = 1
	FilterVertical   = 2
	FilterGradient   = 3
)

// Sentinel errors for the §7 `Alpha` taxonomy.
var (
	ErrTruncatedHeader   = errors.New("alpha: payload too short for header")
	ErrReservedNonZero   = errors.New("alpha: reserved header bits must be zero")
	ErrBadCompression    = errors.New("alpha: unsupported compression mode")
	ErrBadFilter         = errors.New("alpha: unsupported filter mode")
	ErrSizeMismatch      = errors.New("alpha: raw payload length does not match width*height")
	ErrDimensionMismatch = errors.New("alpha: VP8L-decoded alpha image size does not match width/height")
)

// Decode parses an ALPH chunk payload and returns the W*H alpha plane in
// raster order, values in [0,255] (§4.16).
func Decode(data []byte, width, height int) ([]byte, error) {
	if len(data) < 1 {
		return nil, errors.Wrap(ErrTruncatedHeader, "alpha header")
	}
	header := data[0]
	payload := data[1:]

	compression := int(header & 0x01)
	filter := int((header >> 1) & 0x03)
	preprocessing := int((header >> 3) & 0x01)
	reserved := (header >> 4) & 0x0f
	if reserved != 0 {
		return nil, errors.Wrap(ErrReservedNonZero, "alpha header")
	}

	var plane []byte
	switch compression {
	case CompressionNone:
		if len(payload) != width*height {
			return nil, errors.Wrapf(ErrSizeMismatch, "got %d want %d", len(payload), width*height)
		}
		plane = make([]byte, width*height)
		copy(plane, payload)
	case CompressionVP8L:
		img, err := lossless.DecodeVP8L(payload)
		if err != nil {
			return nil, errors.Wrap(err, "alpha: VP8L payload")
		}
		iw, ih := img.Bounds().Dx(), img.Bounds().Dy()
		if iw != width || ih != height {
			return nil, errors.Wrapf(ErrDimensionMismatch, "got %dx%d want %dx%d", iw, ih, width, height)
		}
		plane = extractGreen(img)
	default:
		return nil, errors.Wrapf(ErrBadCompression, "mode %d", compression)
	}

	switch filter {
	case FilterNone:
	case FilterHorizontal:
		unfilterHorizontal(plane, width, height)
	case FilterVertical:
		unfilterVertical(plane, width, height)
	case FilterGradient:
		unfilterGradient(plane, width, height)
	default:
		return nil, errors.Wrapf(ErrBadFilter, "mode %d", filter)
	}

	if preprocessing != 0 {
		expandLevels(plane)
	}

	return plane, nil
}

// extractGreen pulls the green channel out of a decoded VP8L ARGB image
// (§4.16 "decode as an ARGB image... and extract the green channel").
func extractGreen(img *image.NRGBA) []byte {
	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	plane := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			plane[y*w+x] = row[x*4+1]
		}
	}
	return plane
}

// unfilterHorizontal reverses the horizontal spatial filter in place (§4.16:
// p[y,x] = (p[y,x] + p[y,x-1]) mod 256 for x>0).
func unfilterHorizontal(p []byte, width, height int) {
	for y := 0; y < height; y++ {
		row := p[y*width : (y+1)*width]
		for x := 1; x < width; x++ {
			row[x] += row[x-1]
		}
	}
}

// unfilterVertical reverses the vertical spatial filter in place (§4.16:
// p[y,x] = (p[y,x] + p[y-1,x]) mod 256 for y>0).
func unfilterVertical(p []byte, width, height int) {
	for y := 1; y < height; y++ {
		row := p[y*width : (y+1)*width]
		prev := p[(y-1)*width : y*width]
		for x := 0; x < width; x++ {
			row[x] += prev[x]
		}
	}
}

// unfilterGradient reverses the gradient spatial filter in place (§4.16:
// predictor = (L+T-TL) mod 256, out-of-bounds neighbors treated as 0).
func unfilterGradient(p []byte, width, height int) {
	for y := 0; y < height; y++ {
		row := p[y*width : (y+1)*width]
		var prev []byte
		if y > 0 {
			prev = p[(y-1)*width : y*width]
		}
		for x := 0; x < width; x++ {
			var l, t, tl int
			if x > 0 {
				l = int(row[x-1])
			}
			if prev != nil {
				t = int(prev[x])
				if x > 0 {
					tl = int(prev[x-1])
				}
			}
			predictor := byte(l + t - tl)
			row[x] += predictor
		}
	}
}

// expandLevels reverses level-reduction preprocessing in place (§4.16: p =
// (p & 0x0F) * 17).
func expandLevels(p []byte) {
	for i, v := range p {
		p[i] = (v & 0x0f) * 17
	}
}
