package lossy

// BandProbas holds the 11-node token-tree probabilities for one (type,
// band) pair across its 3 coefficient contexts (§4.6).
type BandProbas struct {
	Probas [NumCTX][NumProbas]uint8
}

// Proba is the full probability state for one VP8 frame: segment-id tree
// probabilities, per-type/band coefficient probabilities, and a flattened
// pointer view (BandsPtr) indexed directly by zig-zag position via KBands.
type Proba struct {
	Segments [MBFeatureTreeProbs]uint8
	Bands    [NumTypes][NumBands]BandProbas
	BandsPtr [NumTypes][17]*BandProbas
}

// ResetProba loads the default coefficient probabilities and wires
// BandsPtr to them; parseProba (header.go) may later overwrite
// entries the bitstream updates.
func ResetProba(p *Proba) {
	for s := range p.Segments {
		p.Segments[s] = 255
	}
	for t := 0; t < NumTypes; t++ {
		for b := 0; b < NumBands; b++ {
			for c := 0; c < NumCTX; c++ {
				copy(p.Bands[t][b].Probas[c][:], CoeffsProba0[t][b][c][:])
			}
		}
		for b := 0; b < 17; b++ {
			p.BandsPtr[t][b] = &p.Bands[t][KBands[b]]
		}
	}
}
