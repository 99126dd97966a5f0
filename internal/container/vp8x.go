package container

import "github.com/pkg/errors"

// VP8XHeader is the decoded extended-header payload (§3, §4.2).
type VP8XHeader struct {
	HasICC   bool
	HasAlpha bool
	HasEXIF  bool
	HasXMP   bool
	HasAnim  bool
	HasTiles bool

	CanvasWidth  int
	CanvasHeight int
}

// ParseVP8X decodes a 10-byte VP8X payload (§4.2, §6 wire format).
func ParseVP8X(payload []byte) (*VP8XHeader, error) {
	if len(payload) != VP8XChunkSize {
		return nil, errors.Wrapf(ErrVP8XSize, "got %d bytes", len(payload))
	}
	flags := payload[0]
	if payload[1] != 0 || payload[2] != 0 || payload[3] != 0 {
		return nil, errors.Wrap(ErrVP8XReservedNonZero, "bytes 1-3")
	}

	width := int(readLE24(payload[4:7])) + 1
	height := int(readLE24(payload[7:10])) + 1
	if width <= 0 || width > MaxCanvasDimension || height <= 0 || height > MaxCanvasDimension {
		return nil, errors.Wrapf(ErrVP8XDimension, "got %dx%d", width, height)
	}

	return &VP8XHeader{
		HasICC:       flags&FlagICC != 0,
		HasAlpha:     flags&FlagAlpha != 0,
		HasEXIF:      flags&FlagEXIF != 0,
		HasXMP:       flags&FlagXMP != 0,
		HasAnim:      flags&FlagAnim != 0,
		HasTiles:     flags&FlagTiles != 0,
		CanvasWidth:  width,
		CanvasHeight: height,
	}, nil
}

// ReconcileFlags checks the bidirectional rule of §4.2: every set flag
// must have a matching chunk, and every matching chunk implies its flag.
// Animation is reconciled against ANIM alone (ANMF sub-frames are a
// non-goal and are not inspected here).
func ReconcileFlags(hdr *VP8XHeader, p *Parsed) []error {
	var errs []error
	check := func(flagSet bool, present bool, name string) {
		if flagSet && !present {
			errs = append(errs, errors.Wrapf(ErrVP8XReconciliation, "%s flag set but chunk missing", name))
		}
		if present && !flagSet {
			errs = append(errs, errors.Wrapf(ErrVP8XReconciliation, "%s chunk present but flag unset", name))
		}
	}
	check(hdr.HasICC, len(p.ChunksByType[TagICCP]) > 0, "ICCP")
	check(hdr.HasEXIF, len(p.ChunksByType[TagEXIF]) > 0, "EXIF")
	check(hdr.HasXMP, len(p.ChunksByType[TagXMP]) > 0, "XMP")
	check(hdr.HasAnim, len(p.ChunksByType[TagANIM]) > 0, "ANIM")
	check(hdr.HasAlpha, len(p.ChunksByType[TagALPH]) > 0, "ALPH")
	return errs
}
