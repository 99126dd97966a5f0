package lossless

import "github.com/pkg/errors"

// HuffmanCode is a single entry in a Huffman lookup table. Bits is the
// number of bits consumed; Value is the decoded symbol, or a second-level
// sub-table offset for codes longer than the root table.
type HuffmanCode struct {
	Bits  uint8
	Value uint16
}

// HTreeGroup bundles the 5 Huffman trees needed for one meta-code tile
// (green+length, red, blue, alpha, distance; §4.13).
type HTreeGroup struct {
	// HTrees holds the decoded lookup tables, indexed by HuffIndex.
	HTrees [HuffmanCodesPerMetaCode][]HuffmanCode
}

// Sentinel errors for the §7 `VP8LBitstream` taxonomy (Huffman sub-domain).
var (
	ErrInvalidTree      = errors.New("lossless: invalid Huffman tree")
	ErrEmptyCodeLengths = errors.New("lossless: all code lengths are zero")
)

// BuildHuffmanTable constructs a two-level canonical Huffman lookup table
// from an array of code lengths indexed by symbol (§4.12). rootBits sizes
// the first-level table (HuffmanTableBits). The returned slice holds the
// root table followed by any second-level sub-tables required by codes
// longer than rootBits.
func BuildHuffmanTable(rootBits int, codeLengths []int) ([]HuffmanCode, error) {
	codeLengthsSize := len(codeLengths)
	if codeLengthsSize == 0 {
		return nil, ErrEmptyCodeLengths
	}

	totalSize := buildHuffmanTableSize(rootBits, codeLengths)
	if totalSize == 0 {
		return nil, ErrInvalidTree
	}
	table := make([]HuffmanCode, totalSize)

	sorted := make([]uint16, codeLengthsSize)

	var count [MaxAllowedCodeLength + 1]int
	for _, cl := range codeLengths {
		if cl > MaxAllowedCodeLength {
			return nil, ErrInvalidTree
		}
		count[cl]++
	}
	if count[0] == codeLengthsSize {
		return nil, ErrEmptyCodeLengths
	}

	var offset [MaxAllowedCodeLength + 1]int
	offset[1] = 0
	for l := 1; l < MaxAllowedCodeLength; l++ {
		if count[l] > (1 << uint(l)) {
			return nil, ErrInvalidTree
		}
		offset[l+1] = offset[l] + count[l]
	}
	for symbol, cl := range codeLengths {
		if cl > 0 {
			if offset[cl] >= codeLengthsSize {
				return nil, ErrInvalidTree
			}
			sorted[offset[cl]] = uint16(symbol)
			offset[cl]++
		}
	}

	// Degenerate case: exactly one non-zero-length symbol is a valid tree
	// (§4.12 "degenerate single-symbol trees... are valid").
	if offset[MaxAllowedCodeLength] == 1 {
		code := HuffmanCode{Bits: 0, Value: sorted[0]}
		replicateValue(table, 1, totalSize, code)
		return table, nil
	}

	for i := range count {
		count[i] = 0
	}
	for _, cl := range codeLengths {
		count[cl]++
	}

	rootTable := table
	tableOff := 0
	tableBits := rootBits
	tableSize := 1 << uint(tableBits)

	var low uint32 = 0xffffffff
	mask := uint32(tableSize - 1)
	var key uint32
	numNodes := 1
	numOpen := 1
	symbol := 0

	for l, step := 1, 2; l <= rootBits; l, step = l+1, step<<1 {
		numOpen <<= 1
		numNodes += numOpen
		numOpen -= count[l]
		if numOpen < 0 {
			return nil, ErrInvalidTree
		}
		for ; count[l] > 0; count[l]-- {
			code := HuffmanCode{Bits: uint8(l), Value: sorted[symbol]}
			symbol++
			replicateValue(rootTable[key:], step, tableSize, code)
			key = getNextKey(key, l)
		}
	}

	for l, step := rootBits+1, 2; l <= MaxAllowedCodeLength; l, step = l+1, step<<1 {
		numOpen <<= 1
		numNodes += numOpen
		numOpen -= count[l]
		if numOpen < 0 {
			return nil, ErrInvalidTree
		}
		for ; count[l] > 0; count[l]-- {
			if (key & mask) != low {
				tableOff += tableSize
				tableBits = nextTableBitSize(count[:], l, rootBits)
				tableSize = 1 << uint(tableBits)
				if tableOff+tableSize > totalSize {
					return nil, ErrInvalidTree
				}
				low = key & mask
				rootTable[low] = HuffmanCode{
					Bits:  uint8(tableBits + rootBits),
					Value: uint16(tableOff),
				}
			}
			code := HuffmanCode{
				Bits:  uint8(l - rootBits),
				Value: sorted[symbol],
			}
			symbol++
			off := tableOff + int(key>>uint(rootBits))
			if off >= totalSize {
				return nil, ErrInvalidTree
			}
			replicateValue(table[off:], step, tableSize, code)
			key = getNextKey(key, l)
		}
	}

	if numNodes != 2*offset[MaxAllowedCodeLength]-1 {
		return nil, ErrInvalidTree
	}

	return table, nil
}

// buildHuffmanTableSize computes the total table size (root plus any
// second-level sub-tables) without writing any entries, or returns 0 if
// the code lengths do not form a valid tree.
func buildHuffmanTableSize(rootBits int, codeLengths []int) int {
	codeLengthsSize := len(codeLengths)
	totalSize := 1 << uint(rootBits)

	var count [MaxAllowedCodeLength + 1]int
	for _, cl := range codeLengths {
		if cl > MaxAllowedCodeLength {
			return 0
		}
		count[cl]++
	}
	if count[0] == codeLengthsSize {
		return 0
	}

	var offset [MaxAllowedCodeLength + 1]int
	offset[1] = 0
	for l := 1; l < MaxAllowedCodeLength; l++ {
		if count[l] > (1 << uint(l)) {
			return 0
		}
		offset[l+1] = offset[l] + count[l]
	}
	for _, cl := range codeLengths {
		if cl > 0 {
			if offset[cl] >= codeLengthsSize {
				return 0
			}
			offset[cl]++
		}
	}

	if offset[MaxAllowedCodeLength] == 1 {
		return totalSize
	}

	mask := uint32(totalSize - 1)
	var key uint32
	numNodes := 1
	numOpen := 1

	for l, step := 1, 2; l <= rootBits; l, step = l+1, step<<1 {
		numOpen <<= 1
		numNodes += numOpen
		numOpen -= count[l]
		if numOpen < 0 {
			return 0
		}
		for ; count[l] > 0; count[l]-- {
			key = getNextKey(key, l)
		}
		_ = step
	}

	var low uint32 = 0xffffffff
	for l := rootBits + 1; l <= MaxAllowedCodeLength; l++ {
		numOpen <<= 1
		numNodes += numOpen
		numOpen -= count[l]
		if numOpen < 0 {
			return 0
		}
		for ; count[l] > 0; count[l]-- {
			if (key & mask) != low {
				tableSize := 1 << uint(nextTableBitSize(count[:], l, rootBits))
				totalSize += tableSize
				low = key & mask
			}
			key = getNextKey(key, l)
		}
	}

	if numNodes != 2*offset[MaxAllowedCodeLength]-1 {
		return 0
	}

	return totalSize
}

// getNextKey returns reverse(reverse(key, length) + 1, length): the next
// bit-reversed canonical-code key of the given length.
func getNextKey(key uint32, length int) uint32 {
	step := uint32(1) << uint(length-1)
	for key&step != 0 {
		step >>= 1
	}
	if step != 0 {
		return (key & (step - 1)) + step
	}
	return key
}

// replicateValue fills table[end-step], table[end-2*step], ..., table[0]
// with code.
func replicateValue(table []HuffmanCode, step, end int, code HuffmanCode) {
	for i := end - step; i >= 0; i -= step {
		table[i] = code
	}
}

// nextTableBitSize returns the bit width of the next second-level
// sub-table, sized to cover all remaining codes of length >= length.
func nextTableBitSize(count []int, length, rootBits int) int {
	left := 1 << uint(length-rootBits)
	for length < MaxAllowedCodeLength {
		left -= count[length]
		if left <= 0 {
			break
		}
		length++
		left <<= 1
	}
	return length - rootBits
}

// ReadSymbol decodes the next Huffman symbol from a lookup table given a
// window of prefetched bits, returning the decoded value and the number of
// bits consumed.
func ReadSymbol(table []HuffmanCode, prefetchBits uint32) (value uint16, bitsUsed int) {
	entry := table[prefetchBits&HuffmanTableMask]
	nbits := int(entry.Bits) - HuffmanTableBits
	if nbits > 0 {
		bitsUsed = HuffmanTableBits
		prefetchBits >>= HuffmanTableBits
		idx := int(entry.Value) + int(prefetchBits&((1<<uint(nbits))-1))
		entry = table[idx]
		bitsUsed += int(entry.Bits)
		return entry.Value, bitsUsed
	}
	return entry.Value, int(entry.Bits)
}
