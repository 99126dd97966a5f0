package lossless

import (
	"image"

	"github.com/pkg/errors"

	"github.com/Anonyfox/raven-js-sub005/internal/bitio"
)

// Sentinel errors for the §7 `VP8LBitstream` taxonomy.
var (
	ErrBadSignature = errors.New("lossless: bad VP8L signature")
	ErrBadVersion   = errors.New("lossless: unsupported VP8L version")
	ErrBitstream    = errors.New("lossless: malformed bitstream")
)

// Decoder holds the mutable state of a single VP8L bitstream decode (§3
// "VP8L state types", §4.11-§4.15). Not reused across images.
type Decoder struct {
	br *bitio.LosslessReader

	Width    int
	Height   int
	HasAlpha bool

	// transformWidth is the working width after all transforms read so
	// far, reduced for example by color-indexing pixel packing.
	transformWidth int

	hdr metadata

	transforms     [NumTransforms]Transform
	nextTransform  int
	transformsSeen uint32
}

// metadata holds the Huffman/color-cache state for the current image
// level (top-level image or a recursively-decoded sub-image).
type metadata struct {
	colorCacheSize       int
	colorCache           *ColorCache
	huffmanImage         []uint32
	huffmanSubsampleBits int
	huffmanXSize         int
	huffmanMask          int
	numHTreeGroups       int
	htreeGroups          []HTreeGroup
}

// DecodeVP8L decodes a VP8L bitstream (the payload of a "VP8L" chunk, or
// the payload of an ALPH chunk's VP8L-compressed alpha plane) into an ARGB
// image (§4.11-§4.15).
func DecodeVP8L(data []byte) (*image.NRGBA, error) {
	dec := &Decoder{}

	if err := dec.decodeHeader(data); err != nil {
		return nil, err
	}

	if err := dec.decodeImageStream(dec.Width, dec.Height, true); err != nil {
		return nil, err
	}

	tw := dec.transformWidth
	if tw == 0 {
		tw = dec.Width
	}

	numPixOrig := dec.Width * dec.Height
	numPixTrans := tw * dec.Height
	numAlloc := numPixOrig
	if numPixTrans > numAlloc {
		numAlloc = numPixTrans
	}

	pixels := make([]uint32, numAlloc)
	if err := dec.decodeImageData(pixels[:numPixTrans], tw, dec.Height, dec.Height); err != nil {
		return nil, err
	}

	out := dec.applyInverseTransforms(pixels[:numPixOrig])
	return argbToNRGBA(out, dec.Width, dec.Height), nil
}

// decodeHeader reads the 5-byte VP8L header: signature, width-1, height-1,
// alpha flag, version (§4.11, §6 "VP8L").
func (dec *Decoder) decodeHeader(data []byte) error {
	if len(data) < VP8LHeaderSize {
		return errors.Wrap(ErrBadSignature, "VP8L header")
	}
	if data[0] != VP8LMagicByte {
		return errors.Wrap(ErrBadSignature, "VP8L header")
	}

	dec.br = bitio.NewLosslessReader(data[1:])

	dec.Width = int(dec.br.ReadBits(VP8LImageSizeBits)) + 1
	dec.Height = int(dec.br.ReadBits(VP8LImageSizeBits)) + 1
	dec.HasAlpha = dec.br.ReadBits(1) != 0
	version := dec.br.ReadBits(VP8LVersionBits)
	if version != VP8LVersion {
		return errors.Wrapf(ErrBadVersion, "version %d", version)
	}
	if dec.br.IsEndOfStream() {
		return errors.Wrap(ErrBitstream, "VP8L header")
	}
	return nil
}

// decodeImageStream reads transforms (level-0 only), the color-cache
// configuration, and the Huffman codes for one image level (§4.12-§4.13).
func (dec *Decoder) decodeImageStream(xsize, ysize int, isLevel0 bool) error {
	transformXSize := xsize
	transformYSize := ysize

	if isLevel0 {
		for dec.br.ReadBits(1) == 1 {
			var err error
			transformXSize, err = dec.readTransform(transformXSize, transformYSize)
			if err != nil {
				return err
			}
		}
	}

	colorCacheBits := 0
	if dec.br.ReadBits(1) == 1 {
		colorCacheBits = int(dec.br.ReadBits(4))
		if colorCacheBits < 1 || colorCacheBits > MaxCacheBits {
			return errors.Wrap(ErrBitstream, "color cache bits")
		}
	}

	if err := dec.readHuffmanCodes(transformXSize, transformYSize, colorCacheBits, isLevel0); err != nil {
		return err
	}

	if colorCacheBits > 0 {
		dec.hdr.colorCacheSize = 1 << uint(colorCacheBits)
		dec.hdr.colorCache = NewColorCache(colorCacheBits)
	} else {
		dec.hdr.colorCacheSize = 0
		dec.hdr.colorCache = nil
	}

	dec.updateDecoder(transformXSize, transformYSize)
	return nil
}

// decodeSubImage reads and decodes a complete recursively-encoded
// sub-image (transform parameter data or the meta-Huffman image),
// restoring the parent's Huffman/color-cache state afterward (§4.13,
// §4.15).
func (dec *Decoder) decodeSubImage(xsize, ysize int) ([]uint32, error) {
	savedHdr := dec.hdr
	dec.hdr = metadata{}

	if err := dec.decodeImageStream(xsize, ysize, false); err != nil {
		dec.hdr = savedHdr
		return nil, err
	}

	data := make([]uint32, xsize*ysize)
	if err := dec.decodeImageData(data, xsize, ysize, ysize); err != nil {
		dec.hdr = savedHdr
		return nil, err
	}

	dec.hdr = savedHdr
	return data, nil
}

// updateDecoder records the transform-adjusted working width and derives
// the meta-Huffman tile mask from the subsample precision read earlier.
func (dec *Decoder) updateDecoder(width, height int) {
	dec.transformWidth = width
	numBits := dec.hdr.huffmanSubsampleBits
	dec.hdr.huffmanXSize = VP8LSubSampleSize(width, numBits)
	if numBits == 0 {
		dec.hdr.huffmanMask = ^0
	} else {
		dec.hdr.huffmanMask = (1 << uint(numBits)) - 1
	}
}

// argbToNRGBA converts an ARGB-packed pixel buffer (alpha in bits 31..24,
// red 23..16, green 15..8, blue 7..0) to a standard NRGBA image.
func argbToNRGBA(pixels []uint32, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	pix := img.Pix
	stride := img.Stride

	for y := 0; y < height; y++ {
		row := pixels[y*width : y*width+width]
		dst := pix[y*stride : y*stride+width*4]
		for x, argb := range row {
			off := x * 4
			dst[off+0] = uint8(argb >> 16)
			dst[off+1] = uint8(argb >> 8)
			dst[off+2] = uint8(argb)
			dst[off+3] = uint8(argb >> 24)
		}
	}
	return img
}
