package lossless

// readTransform reads a single transform header from the bitstream and
// decodes its parameter sub-image, if any (§4.15). It returns the
// (possibly narrowed) xsize that subsequent reads from the main image
// stream should use.
func (dec *Decoder) readTransform(xsize, ysize int) (int, error) {
	transformType := TransformType(dec.br.ReadBits(2))

	if dec.transformsSeen&(1<<uint(transformType)) != 0 {
		return 0, ErrBitstream
	}
	dec.transformsSeen |= 1 << uint(transformType)

	t := &dec.transforms[dec.nextTransform]
	t.Type = transformType
	t.XSize = xsize
	t.YSize = ysize
	t.Data = nil
	dec.nextTransform++

	switch transformType {
	case PredictorTransform, CrossColorTransform:
		t.Bits = MinTransformBits + int(dec.br.ReadBits(NumTransformBits))
		subW := VP8LSubSampleSize(t.XSize, t.Bits)
		subH := VP8LSubSampleSize(t.YSize, t.Bits)
		data, err := dec.decodeSubImage(subW, subH)
		if err != nil {
			return 0, err
		}
		t.Data = data

	case ColorIndexingTransform:
		numColors := int(dec.br.ReadBits(8)) + 1
		var bits int
		switch {
		case numColors > 16:
			bits = 0
		case numColors > 4:
			bits = 1
		case numColors > 2:
			bits = 2
		default:
			bits = 3
		}
		t.Bits = bits

		palette, err := dec.decodeSubImage(numColors, 1)
		if err != nil {
			return 0, err
		}
		t.Data = expandColorMap(numColors, bits, palette)
		xsize = VP8LSubSampleSize(t.XSize, bits)

	case SubtractGreenTransform:
		// No parameters to read.
	}

	return xsize, nil
}

// expandColorMap expands a palette sub-image into a full lookup table,
// reversing the encoder's per-byte delta coding of adjacent palette entries
// (§4.15 "color-indexing/palette").
func expandColorMap(numColors, bits int, palette []uint32) []uint32 {
	finalNumColors := 1 << uint(8>>bits)
	newMap := make([]uint32, finalNumColors)
	if len(palette) > 0 {
		newMap[0] = palette[0]
	}

	oldBytes := argbToBytes(palette)
	newBytes := argbToBytes(newMap)

	for i := 4; i < 4*numColors; i++ {
		newBytes[i] = (oldBytes[i] + newBytes[i-4]) & 0xff
	}

	bytesToARGB(newBytes, newMap)
	return newMap
}

func argbToBytes(s []uint32) []uint8 {
	b := make([]uint8, len(s)*4)
	for i, v := range s {
		b[i*4+0] = uint8(v)
		b[i*4+1] = uint8(v >> 8)
		b[i*4+2] = uint8(v >> 16)
		b[i*4+3] = uint8(v >> 24)
	}
	return b
}

func bytesToARGB(b []uint8, s []uint32) {
	for i := range s {
		s[i] = uint32(b[i*4+0]) |
			uint32(b[i*4+1])<<8 |
			uint32(b[i*4+2])<<16 |
			uint32(b[i*4+3])<<24
	}
}

// applyInverseTransforms applies every decoded transform in reverse order
// (§4.15 "applied in reverse of encoding order") and returns the final
// ARGB pixel buffer.
func (dec *Decoder) applyInverseTransforms(pixels []uint32) []uint32 {
	if dec.nextTransform == 0 {
		return pixels
	}

	rows := pixels
	out := make([]uint32, len(pixels))
	for n := dec.nextTransform - 1; n >= 0; n-- {
		t := &dec.transforms[n]
		inverseTransform(t, 0, t.YSize, rows, out)
		rows, out = out, rows
	}
	return rows
}

func inverseTransform(t *Transform, rowStart, rowEnd int, in, out []uint32) {
	width := t.XSize
	switch t.Type {
	case SubtractGreenTransform:
		addGreenToBlueAndRed(in, (rowEnd-rowStart)*width, out)
	case PredictorTransform:
		predictorInverseTransform(t, rowStart, rowEnd, in, out)
	case CrossColorTransform:
		colorSpaceInverseTransform(t, rowStart, rowEnd, in, out)
	case ColorIndexingTransform:
		colorIndexInverseTransform(t, rowStart, rowEnd, in, out)
	}
}

// addGreenToBlueAndRed reverses the subtract-green transform: the encoder
// subtracted green from red and blue, so decode adds it back.
func addGreenToBlueAndRed(src []uint32, numPixels int, dst []uint32) {
	for i := 0; i < numPixels; i++ {
		argb := src[i]
		green := (argb >> 8) & 0xff
		redBlue := argb & 0x00ff00ff
		redBlue += (green << 16) | green
		redBlue &= 0x00ff00ff
		dst[i] = (argb & 0xff00ff00) | redBlue
	}
}

// predictorInverseTransform reverses the spatial predictor transform,
// tiled across the image per t.Bits (§4.15).
func predictorInverseTransform(t *Transform, yStart, yEnd int, in, out []uint32) {
	width := t.XSize
	inOff := 0
	outOff := 0

	if yStart == 0 {
		out[outOff] = addPixels(in[inOff], 0xff000000) // mode 0: black
		for x := 1; x < width; x++ {
			out[outOff+x] = addPixels(in[inOff+x], out[outOff+x-1]) // mode 1: left
		}
		inOff += width
		outOff += width
		yStart = 1
	}

	tileWidth := 1 << uint(t.Bits)
	tileMask := tileWidth - 1
	tilesPerRow := VP8LSubSampleSize(width, t.Bits)

	for y := yStart; y < yEnd; y++ {
		predModeRow := (y >> uint(t.Bits)) * tilesPerRow

		out[outOff] = addPixels(in[inOff], out[outOff-width]) // mode 2: top

		x := 1
		for x < width {
			predMode := int((t.Data[predModeRow+(x>>uint(t.Bits))] >> 8) & 0xf)
			xEnd := (x &^ tileMask) + tileWidth
			if xEnd > width {
				xEnd = width
			}
			for ; x < xEnd; x++ {
				var topRight uint32
				if x < width-1 {
					topRight = out[outOff+x+1-width]
				} else {
					topRight = out[outOff]
				}
				pred := predict(predMode, out[outOff+x-1], out[outOff+x-width], out[outOff+x-1-width], topRight)
				out[outOff+x] = addPixels(in[inOff+x], pred)
			}
		}
		inOff += width
		outOff += width
	}
}

// predict computes one of the 14 VP8L spatial predictors (§4.15).
func predict(mode int, left, top, topLeft, topRight uint32) uint32 {
	switch mode {
	case 0:
		return 0xff000000
	case 1:
		return left
	case 2:
		return top
	case 3:
		return topRight
	case 4:
		return topLeft
	case 5:
		return average2(average2(left, topRight), top)
	case 6:
		return average2(left, topLeft)
	case 7:
		return average2(left, top)
	case 8:
		return average2(topLeft, top)
	case 9:
		return average2(top, topRight)
	case 10:
		return average2(average2(left, topLeft), average2(top, topRight))
	case 11:
		return selectPredictor(left, top, topLeft)
	case 12:
		return clampedAddSubtractFull(left, top, topLeft)
	case 13:
		return clampedAddSubtractHalf(average2(left, top), topLeft)
	default:
		return 0xff000000
	}
}

func addPixels(a, b uint32) uint32 {
	alphaAndGreen := (a & 0xff00ff00) + (b & 0xff00ff00)
	redAndBlue := (a & 0x00ff00ff) + (b & 0x00ff00ff)
	return (alphaAndGreen & 0xff00ff00) | (redAndBlue & 0x00ff00ff)
}

func average2(a, b uint32) uint32 {
	return (((a ^ b) & 0xfefefefe) >> 1) + (a & b)
}

func selectPredictor(left, top, topLeft uint32) uint32 {
	pa := int32(0)
	for shift := uint(0); shift < 32; shift += 8 {
		ac := int32((top>>shift)&0xff) - int32((topLeft>>shift)&0xff)
		bc := int32((left>>shift)&0xff) - int32((topLeft>>shift)&0xff)
		if ac < 0 {
			ac = -ac
		}
		if bc < 0 {
			bc = -bc
		}
		pa += ac - bc
	}
	if pa <= 0 {
		return top
	}
	return left
}

func clampedAddSubtractFull(a, b, c uint32) uint32 {
	var result uint32
	for shift := uint(0); shift < 32; shift += 8 {
		va := int32((a >> shift) & 0xff)
		vb := int32((b >> shift) & 0xff)
		vc := int32((c >> shift) & 0xff)
		v := va + vb - vc
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		result |= uint32(v) << shift
	}
	return result
}

func clampedAddSubtractHalf(avg, c uint32) uint32 {
	var result uint32
	for shift := uint(0); shift < 32; shift += 8 {
		va := int32((avg >> shift) & 0xff)
		vc := int32((c >> shift) & 0xff)
		v := va + (va-vc)/2
		if v < 0 {
			v = 0
		} else if v > 255 {
			v = 255
		}
		result |= uint32(v) << shift
	}
	return result
}

// colorSpaceInverseTransform reverses the tile-based cross-color transform.
func colorSpaceInverseTransform(t *Transform, yStart, yEnd int, src, dst []uint32) {
	width := t.XSize
	tileWidth := 1 << uint(t.Bits)
	tileMask := tileWidth - 1
	safeWidth := width &^ tileMask
	remainingWidth := width - safeWidth
	tilesPerRow := VP8LSubSampleSize(width, t.Bits)

	srcOff := 0
	dstOff := 0

	for y := yStart; y < yEnd; y++ {
		predRow := (y >> uint(t.Bits)) * tilesPerRow
		predIdx := 0

		x := 0
		for x < safeWidth {
			m := colorCodeToMultipliers(t.Data[predRow+predIdx])
			predIdx++
			for i := 0; i < tileWidth; i++ {
				dst[dstOff+x+i] = transformColorInverse(m, src[srcOff+x+i])
			}
			x += tileWidth
		}
		if x < width {
			m := colorCodeToMultipliers(t.Data[predRow+predIdx])
			for i := 0; i < remainingWidth; i++ {
				dst[dstOff+x+i] = transformColorInverse(m, src[srcOff+x+i])
			}
		}

		srcOff += width
		dstOff += width
	}
}

type colorMultipliers struct {
	greenToRed  uint8
	greenToBlue uint8
	redToBlue   uint8
}

func colorCodeToMultipliers(colorCode uint32) colorMultipliers {
	return colorMultipliers{
		greenToRed:  uint8(colorCode),
		greenToBlue: uint8(colorCode >> 8),
		redToBlue:   uint8(colorCode >> 16),
	}
}

func colorTransformDelta(colorPred, clr int8) int32 {
	return (int32(colorPred) * int32(clr)) >> 5
}

func transformColorInverse(m colorMultipliers, argb uint32) uint32 {
	green := int8(argb >> 8)
	red := int32(argb>>16) & 0xff
	blue := int32(argb) & 0xff

	newRed := red + colorTransformDelta(int8(m.greenToRed), green)
	newRed &= 0xff
	newBlue := blue + colorTransformDelta(int8(m.greenToBlue), green)
	newBlue += colorTransformDelta(int8(m.redToBlue), int8(newRed))
	newBlue &= 0xff

	return (argb & 0xff00ff00) | (uint32(newRed) << 16) | uint32(newBlue)
}

// colorIndexInverseTransform reverses the palette transform, unpacking
// sub-byte-packed indices when the palette has 16 or fewer entries.
func colorIndexInverseTransform(t *Transform, yStart, yEnd int, src, dst []uint32) {
	width := t.XSize
	colorMap := t.Data
	bitsPerPixel := 8 >> uint(t.Bits)

	srcOff := 0
	dstOff := 0

	if bitsPerPixel < 8 {
		pixelsPerByte := 1 << uint(t.Bits)
		countMask := pixelsPerByte - 1
		bitMask := uint32((1 << uint(bitsPerPixel)) - 1)

		for y := yStart; y < yEnd; y++ {
			var packedPixels uint32
			for x := 0; x < width; x++ {
				if (x & countMask) == 0 {
					packedPixels = getARGBIndex(src[srcOff])
					srcOff++
				}
				idx := packedPixels & bitMask
				if int(idx) < len(colorMap) {
					dst[dstOff] = colorMap[idx]
				}
				dstOff++
				packedPixels >>= uint(bitsPerPixel)
			}
		}
		return
	}

	for y := yStart; y < yEnd; y++ {
		for x := 0; x < width; x++ {
			idx := getARGBIndex(src[srcOff])
			srcOff++
			if int(idx) < len(colorMap) {
				dst[dstOff] = colorMap[idx]
			}
			dstOff++
		}
	}
}

func getARGBIndex(argb uint32) uint32 {
	return (argb >> 8) & 0xff
}
