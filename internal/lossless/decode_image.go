package lossless

import "github.com/Anonyfox/raven-js-sub005/internal/bitio"

// readHuffmanCodeLengths decodes the code lengths for one Huffman tree,
// themselves Huffman-coded via clTable (§4.12 "code-length code").
func (dec *Decoder) readHuffmanCodeLengths(clTable []HuffmanCode, numSymbols int) ([]int, error) {
	codeLengths := make([]int, numSymbols)
	prevCodeLen := DefaultCodeLength

	maxSymbol := numSymbols
	if dec.br.ReadBits(1) == 1 {
		lengthNbits := 2 + 2*int(dec.br.ReadBits(3))
		maxSymbol = 2 + int(dec.br.ReadBits(lengthNbits))
		if maxSymbol > numSymbols {
			return nil, ErrBitstream
		}
	}

	symbol := 0
	remaining := maxSymbol
	for symbol < numSymbols {
		if remaining == 0 {
			break
		}
		remaining--
		dec.br.FillBitWindow()
		prefetch := dec.br.PrefetchBits()
		entry := clTable[prefetch&LengthsTableMask]
		dec.br.SetBitPos(dec.br.BitPos() + int(entry.Bits))
		codeLen := int(entry.Value)

		if codeLen < CodeLengthLiterals {
			codeLengths[symbol] = codeLen
			symbol++
			if codeLen != 0 {
				prevCodeLen = codeLen
			}
		} else {
			slot := codeLen - CodeLengthLiterals
			extraBits := int(CodeLengthExtraBits[slot])
			repeatOffset := int(CodeLengthRepeatOffsets[slot])
			repeatCount := int(dec.br.ReadBits(extraBits)) + repeatOffset
			if symbol+repeatCount > numSymbols {
				return nil, ErrBitstream
			}
			length := 0
			if codeLen == CodeLengthRepeatCode {
				length = prevCodeLen
			}
			for i := 0; i < repeatCount; i++ {
				codeLengths[symbol] = length
				symbol++
			}
		}
	}

	if dec.br.IsEndOfStream() {
		return nil, ErrBitstream
	}
	return codeLengths, nil
}

// readHuffmanCode reads a single Huffman tree: either a 1-2 symbol simple
// code, or a normal code whose own code-length alphabet is itself
// Huffman-coded (§4.12).
func (dec *Decoder) readHuffmanCode(alphabetSize int) ([]HuffmanCode, error) {
	simpleCode := dec.br.ReadBits(1)

	codeLengths := make([]int, alphabetSize)

	if simpleCode == 1 {
		numSymbols := int(dec.br.ReadBits(1)) + 1
		firstSymbolLenCode := dec.br.ReadBits(1)
		symbolBits := 1
		if firstSymbolLenCode != 0 {
			symbolBits = 8
		}
		symbol := int(dec.br.ReadBits(symbolBits))
		if symbol >= alphabetSize {
			return nil, ErrBitstream
		}
		codeLengths[symbol] = 1
		if numSymbols == 2 {
			symbol2 := int(dec.br.ReadBits(8))
			if symbol2 >= alphabetSize {
				return nil, ErrBitstream
			}
			codeLengths[symbol2] = 1
		}
	} else {
		var clCodeLengths [CodeLengthCodes]int
		numCodes := int(dec.br.ReadBits(4)) + 4
		if numCodes > CodeLengthCodes {
			numCodes = CodeLengthCodes
		}
		for i := 0; i < numCodes; i++ {
			clCodeLengths[CodeLengthCodeOrder[i]] = int(dec.br.ReadBits(3))
		}

		clTable, err := BuildHuffmanTable(LengthsTableBits, clCodeLengths[:])
		if err != nil {
			return nil, err
		}

		decodedLengths, err := dec.readHuffmanCodeLengths(clTable, alphabetSize)
		if err != nil {
			return nil, err
		}
		codeLengths = decodedLengths
	}

	if dec.br.IsEndOfStream() {
		return nil, ErrBitstream
	}

	return BuildHuffmanTable(HuffmanTableBits, codeLengths)
}

// readHuffmanCodes reads the optional meta-Huffman image and every Huffman
// tree group referenced by it (§4.13).
func (dec *Decoder) readHuffmanCodes(xsize, ysize, colorCacheBits int, allowRecursion bool) error {
	numHTreeGroups := 1
	numHTreeGroupsMax := 1
	var huffmanImage []uint32
	var mapping []int

	if allowRecursion && dec.br.ReadBits(1) == 1 {
		huffmanPrecision := MinHuffmanBits + int(dec.br.ReadBits(NumHuffmanBits))
		huffmanXSize := VP8LSubSampleSize(xsize, huffmanPrecision)
		huffmanYSize := VP8LSubSampleSize(ysize, huffmanPrecision)
		huffmanPixs := huffmanXSize * huffmanYSize

		subImage, err := dec.decodeSubImage(huffmanXSize, huffmanYSize)
		if err != nil {
			return err
		}

		dec.hdr.huffmanSubsampleBits = huffmanPrecision
		numHTreeGroupsMax = 1
		for i := 0; i < huffmanPixs; i++ {
			group := int((subImage[i] >> 8) & 0xffff)
			subImage[i] = uint32(group)
			if group+1 > numHTreeGroupsMax {
				numHTreeGroupsMax = group + 1
			}
		}

		if numHTreeGroupsMax > 1000 || numHTreeGroupsMax > xsize*ysize {
			mapping = make([]int, numHTreeGroupsMax)
			for i := range mapping {
				mapping[i] = -1
			}
			numHTreeGroups = 0
			for i := 0; i < huffmanPixs; i++ {
				g := int(subImage[i])
				if mapping[g] == -1 {
					mapping[g] = numHTreeGroups
					numHTreeGroups++
				}
				subImage[i] = uint32(mapping[g])
			}
		} else {
			numHTreeGroups = numHTreeGroupsMax
		}
		huffmanImage = subImage
	}

	if dec.br.IsEndOfStream() {
		return ErrBitstream
	}

	htreeGroups := make([]HTreeGroup, numHTreeGroups)

	for i := 0; i < numHTreeGroupsMax; i++ {
		mapped := i
		if mapping != nil {
			mapped = mapping[i]
		}

		if mapped == -1 {
			for j := 0; j < HuffmanCodesPerMetaCode; j++ {
				alphaSize := AlphabetSize(HuffIndex(j), colorCacheBits)
				if _, err := dec.readHuffmanCode(alphaSize); err != nil {
					return err
				}
			}
			continue
		}

		for j := 0; j < HuffmanCodesPerMetaCode; j++ {
			alphaSize := AlphabetSize(HuffIndex(j), colorCacheBits)
			table, err := dec.readHuffmanCode(alphaSize)
			if err != nil {
				return err
			}
			htreeGroups[mapped].HTrees[j] = table
		}
	}

	dec.hdr.numHTreeGroups = numHTreeGroups
	dec.hdr.htreeGroups = htreeGroups
	dec.hdr.huffmanImage = huffmanImage
	return nil
}

// getMetaIndex returns the Huffman tree group index covering pixel (x,y),
// per the meta-Huffman image's tiling (§4.13).
func (dec *Decoder) getMetaIndex(x, y int) int {
	if dec.hdr.huffmanSubsampleBits == 0 {
		return 0
	}
	return int(dec.hdr.huffmanImage[dec.hdr.huffmanXSize*(y>>uint(dec.hdr.huffmanSubsampleBits))+(x>>uint(dec.hdr.huffmanSubsampleBits))])
}

func (dec *Decoder) getHTreeGroup(x, y int) *HTreeGroup {
	return &dec.hdr.htreeGroups[dec.getMetaIndex(x, y)]
}

// getCopyDistance and getCopyLength decode the extra-bits tail shared by
// both the length and distance code alphabets (§4.14).
func getCopyDistance(symbol int, br *bitio.LosslessReader) int {
	if symbol < 4 {
		return symbol + 1
	}
	extraBits := (symbol - 2) >> 1
	offset := (2 + (symbol & 1)) << uint(extraBits)
	return offset + int(br.ReadBits(extraBits)) + 1
}

func getCopyLength(symbol int, br *bitio.LosslessReader) int {
	return getCopyDistance(symbol, br)
}

func readSymbolFromTree(table []HuffmanCode, br *bitio.LosslessReader) int {
	br.FillBitWindow()
	val, bitsUsed := ReadSymbol(table, br.PrefetchBits())
	br.SetBitPos(br.BitPos() + bitsUsed)
	return int(val)
}

// decodeImageData is the main entropy-decode loop (§4.14): it dispatches on
// the green-channel symbol to a literal pixel, an LZ77 backward reference,
// or a color-cache lookup, filling data[0:width*height] in raster order.
func (dec *Decoder) decodeImageData(data []uint32, width, height, lastRow int) error {
	br := dec.br
	hdr := &dec.hdr

	lenCodeLimit := NumLiteralCodes + NumLengthCodes
	colorCacheLimit := lenCodeLimit + hdr.colorCacheSize
	colorCache := hdr.colorCache
	mask := hdr.huffmanMask

	pos := 0
	lastCached := 0
	row := 0
	col := 0
	srcEnd := width * height
	srcLast := width * lastRow

	flushCache := func() {
		if colorCache == nil {
			return
		}
		for lastCached < pos {
			colorCache.Insert(data[lastCached])
			lastCached++
		}
	}

	htreeGroup := dec.getHTreeGroup(col, row)
	for pos < srcLast {
		if (col & mask) == 0 {
			htreeGroup = dec.getHTreeGroup(col, row)
		}

		code := readSymbolFromTree(htreeGroup.HTrees[HuffGreen], br)
		if br.IsEndOfStream() {
			break
		}

		switch {
		case code < NumLiteralCodes:
			red := readSymbolFromTree(htreeGroup.HTrees[HuffRed], br)
			blue := readSymbolFromTree(htreeGroup.HTrees[HuffBlue], br)
			alpha := readSymbolFromTree(htreeGroup.HTrees[HuffAlpha], br)
			if br.IsEndOfStream() {
				return ErrBitstream
			}
			data[pos] = (uint32(alpha) << 24) | (uint32(red) << 16) | (uint32(code) << 8) | uint32(blue)
			pos++
			col++
			if col >= width {
				col = 0
				row++
				flushCache()
			}

		case code < lenCodeLimit:
			lengthSym := code - NumLiteralCodes
			length := getCopyLength(lengthSym, br)

			distSymbol := readSymbolFromTree(htreeGroup.HTrees[HuffDist], br)
			distCode := getCopyDistance(distSymbol, br)
			dist := PlaneCodeToDistance(width, distCode)

			if br.IsEndOfStream() {
				return ErrBitstream
			}
			if pos < dist || srcEnd-pos < length {
				return ErrBitstream
			}

			copyBlock32(data, pos, dist, length)
			pos += length
			col += length
			for col >= width {
				col -= width
				row++
			}
			if col&mask != 0 {
				htreeGroup = dec.getHTreeGroup(col, row)
			}
			flushCache()

		case code < colorCacheLimit:
			key := code - lenCodeLimit
			if colorCache == nil {
				return ErrBitstream
			}
			flushCache()
			data[pos] = colorCache.Lookup(key)
			pos++
			col++
			if col >= width {
				col = 0
				row++
				flushCache()
			}

		default:
			return ErrBitstream
		}
	}

	if br.IsEndOfStream() && pos < srcEnd {
		return ErrBitstream
	}
	return nil
}

// copyBlock32 copies length uint32 entries from data[pos-dist:] to
// data[pos:], handling the overlapping-copy case where dist < length
// (§4.14 "backward reference").
func copyBlock32(data []uint32, pos, dist, length int) {
	src := pos - dist
	switch {
	case dist >= length:
		copy(data[pos:pos+length], data[src:src+length])
	case dist == 1:
		val := data[src]
		dst := data[pos : pos+length]
		for i := range dst {
			dst[i] = val
		}
	default:
		copy(data[pos:pos+dist], data[src:src+dist])
		copied := dist
		for copied < length {
			n := copied
			if n > length-copied {
				n = length - copied
			}
			copy(data[pos+copied:pos+copied+n], data[pos:pos+n])
			copied += n
		}
	}
}
