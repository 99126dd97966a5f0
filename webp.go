// Package webp decodes still WebP images: simple (VP8/VP8L) and extended
// (VP8X, with optional alpha and metadata) bitstreams, per the component
// pipeline of RIFF parse -> VP8X reconciliation -> primary stream decode ->
// optional alpha decode/composite -> metadata extraction (§4.17).
package webp

import (
	"image"

	"github.com/pkg/errors"

	"github.com/Anonyfox/raven-js-sub005/internal/alpha"
	"github.com/Anonyfox/raven-js-sub005/internal/container"
	"github.com/Anonyfox/raven-js-sub005/internal/dsp"
	"github.com/Anonyfox/raven-js-sub005/internal/lossless"
	"github.com/Anonyfox/raven-js-sub005/internal/lossy"
)

// Options controls decode-time behavior. The zero value is the default
// decode path described by §4.17.
type Options struct {
	// SkipMetadataValidation disables the non-fatal ICCP/EXIF/XMP
	// structural checks of §4.3. Metadata bytes are still extracted.
	SkipMetadataValidation bool
}

// Result is the decoded image plus everything the orchestrator recovered
// from the container (§6 "Output").
type Result struct {
	Pixels        []byte // width*height*4 bytes, R,G,B,A, non-premultiplied
	Width         int
	Height        int
	Metadata      Metadata
	MetadataError []error // non-fatal §4.3 validation anomalies
}

// Decode runs the full orchestration decision tree of §4.17 against a
// complete WebP byte buffer and returns the final pixels plus recovered
// metadata, or the first fatal error encountered.
func Decode(data []byte) (*Result, error) {
	return DecodeWithOptions(data, Options{})
}

// DecodeWithOptions is Decode with explicit Options.
func DecodeWithOptions(data []byte, opts Options) (*Result, error) {
	parsed, err := container.Parse(data)
	if err != nil {
		return nil, wrapTax(TaxContainer, err)
	}
	if len(parsed.Errors) > 0 {
		return nil, wrapTax(TaxContainer, parsed.Errors[0])
	}

	md, mdErrs := extractMetadata(parsed)
	if opts.SkipMetadataValidation {
		mdErrs = nil
	}

	var img *image.NRGBA
	var width, height int

	if parsed.HasVP8X {
		img, width, height, err = decodeExtended(parsed)
	} else {
		img, width, height, err = decodeSimple(parsed)
	}
	if err != nil {
		return nil, err
	}

	return &Result{
		Pixels:        img.Pix,
		Width:         width,
		Height:        height,
		Metadata:      md,
		MetadataError: mdErrs,
	}, nil
}

// decodeSimple handles a simple WebP (no VP8X): exactly one of VP8/VP8L,
// ALPH disallowed; a VP8 stream decodes with opaque alpha, a VP8L stream
// keeps its own alpha channel (§4.17 step 3).
func decodeSimple(parsed *container.Parsed) (*image.NRGBA, int, int, error) {
	if c, ok := parsed.FirstChunk(container.TagVP8L); ok {
		img, err := lossless.DecodeVP8L(c.Data)
		if err != nil {
			return nil, 0, 0, wrapTax(TaxVP8LBitstream, err)
		}
		b := img.Bounds()
		return img, b.Dx(), b.Dy(), nil
	}

	c, ok := parsed.FirstChunk(container.TagVP8)
	if !ok {
		return nil, 0, 0, wrapTax(TaxContainer, ErrMissingPrimary)
	}
	frame, err := lossy.DecodeFrame(c.Data)
	if err != nil {
		return nil, 0, 0, wrapTax(TaxVP8Bitstream, err)
	}
	img := yuvToNRGBA(frame, nil)
	return img, frame.Width, frame.Height, nil
}

// decodeExtended handles a VP8X-headed WebP: parses the extended header,
// reconciles flags against chunk presence, decodes the primary stream,
// decodes and composites alpha if present, and checks the canvas
// dimensions agree with the decoded stream (§4.2, §4.17 step 2).
func decodeExtended(parsed *container.Parsed) (*image.NRGBA, int, int, error) {
	vc, ok := parsed.FirstChunk(container.TagVP8X)
	if !ok {
		return nil, 0, 0, wrapTax(TaxVP8X, errors.New("VP8X marked present but chunk missing"))
	}
	hdr, err := container.ParseVP8X(vc.Data)
	if err != nil {
		return nil, 0, 0, wrapTax(TaxVP8X, err)
	}
	if recErrs := container.ReconcileFlags(hdr, parsed); len(recErrs) > 0 {
		return nil, 0, 0, wrapTax(TaxVP8X, recErrs[0])
	}

	var img *image.NRGBA
	var width, height int

	if c, ok := parsed.FirstChunk(container.TagVP8L); ok {
		img, err = lossless.DecodeVP8L(c.Data)
		if err != nil {
			return nil, 0, 0, wrapTax(TaxVP8LBitstream, err)
		}
		b := img.Bounds()
		width, height = b.Dx(), b.Dy()
	} else if c, ok := parsed.FirstChunk(container.TagVP8); ok {
		frame, err := lossy.DecodeFrame(c.Data)
		if err != nil {
			return nil, 0, 0, wrapTax(TaxVP8Bitstream, err)
		}
		width, height = frame.Width, frame.Height

		var alphaPlane []byte
		if hdr.HasAlpha {
			ac, ok := parsed.FirstChunk(container.TagALPH)
			if !ok {
				return nil, 0, 0, wrapTax(TaxAlpha, ErrMissingAlphaChunk)
			}
			alphaPlane, err = alpha.Decode(ac.Data, width, height)
			if err != nil {
				return nil, 0, 0, wrapTax(TaxAlpha, err)
			}
		}
		img = yuvToNRGBA(frame, alphaPlane)
	} else {
		return nil, 0, 0, wrapTax(TaxContainer, ErrMissingPrimary)
	}

	if width != hdr.CanvasWidth || height != hdr.CanvasHeight {
		return nil, 0, 0, wrapTax(TaxVP8X, ErrDimensionMismatch)
	}
	return img, width, height, nil
}

// yuvToNRGBA converts a decoded VP8 frame's cropped YUV 4:2:0 planes to an
// NRGBA image (§4.10), compositing the given alpha plane (or opaque 255 if
// nil).
func yuvToNRGBA(frame *lossy.Result, alphaPlane []byte) *image.NRGBA {
	w, h := frame.Width, frame.Height
	cw, ch := (w+1)/2, (h+1)/2
	u := dsp.UpsampleChromaNearest(packPlane(frame.U, frame.UVStride, cw, ch), cw, ch, w, h)
	v := dsp.UpsampleChromaNearest(packPlane(frame.V, frame.UVStride, cw, ch), cw, ch, w, h)

	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		yrow := frame.Y[y*frame.YStride : y*frame.YStride+w]
		urow := u[y*w : y*w+w]
		vrow := v[y*w : y*w+w]
		drow := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			r, g, b, a := dsp.YUVToRGBA(yrow[x], urow[x], vrow[x])
			if alphaPlane != nil {
				a = alphaPlane[y*w+x]
			}
			off := x * 4
			drow[off+0] = r
			drow[off+1] = g
			drow[off+2] = b
			drow[off+3] = a
		}
	}
	return img
}

// packPlane copies a strided plane into a tightly packed buffer of width
// cw, height ch (chroma planes carry macroblock padding in their stride).
func packPlane(src []byte, stride, cw, ch int) []byte {
	out := make([]byte, cw*ch)
	for y := 0; y < ch; y++ {
		copy(out[y*cw:y*cw+cw], src[y*stride:y*stride+cw])
	}
	return out
}
