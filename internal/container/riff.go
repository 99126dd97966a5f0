package container

import "github.com/pkg/errors"

// Chunk is one RIFF chunk as laid out in the file: a 4-byte tag, its
// payload, and the absolute byte offset the chunk starts at (§3).
type Chunk struct {
	Type   string
	Offset int
	Size   int
	Data   []byte // alias into the original input; never copied
}

// Parsed is the result of walking a RIFF/WEBP container (§3 "Parsed
// container"). Errors is the non-fatal validation list; a caller that
// wants strict behavior should refuse to proceed when it is non-empty
// (§4.17 step 1).
type Parsed struct {
	RIFFSize     uint32
	Chunks       []Chunk
	ChunksByType map[string][]int // index into Chunks, first occurrence first
	HasVP8X      bool
	OrderValid   bool
	Errors       []error
}

// singletonTypes lists the chunk types that must appear at most once.
var singletonTypes = map[string]bool{
	TagICCP: true, TagEXIF: true, TagXMP: true, TagANIM: true, TagVP8X: true,
}

// Parse walks the RIFF/WEBP container in data (§4.1). It returns a fatal
// error only for a signature mismatch or a header too short to read;
// every other anomaly is appended to Parsed.Errors and the walk continues
// on a best-effort basis so callers can inspect what was recovered.
func Parse(data []byte) (*Parsed, error) {
	if len(data) < RIFFHeaderSize {
		return nil, errors.Wrap(ErrTruncatedHeader, "container.Parse")
	}
	if string(data[0:4]) != TagRIFF || string(data[8:12]) != TagWEBP {
		return nil, errors.Wrap(ErrBadSignature, "container.Parse")
	}

	riffSize := readLE32(data[4:8])
	p := &Parsed{
		RIFFSize:     riffSize,
		ChunksByType: make(map[string][]int),
		OrderValid:   true,
	}

	// The RIFF size covers everything after the 8-byte "RIFF"+size field,
	// so the declared end of file is 8 + riffSize, clamped to what we
	// actually have.
	declaredEnd := int64(8) + int64(riffSize)
	fileLen := int64(len(data))
	if declaredEnd > fileLen {
		p.Errors = append(p.Errors, errors.Wrap(ErrSizeOverflow, "riff size exceeds file length"))
	}

	pos := RIFFHeaderSize
	first := true
	sawVP8X := false
	for pos+ChunkHeaderSize <= len(data) {
		tag := string(data[pos : pos+4])
		size := readLE32(data[pos+4 : pos+8])
		payloadStart := pos + ChunkHeaderSize
		payloadEnd := int64(payloadStart) + int64(size)

		if payloadEnd > int64(len(data)) {
			p.Errors = append(p.Errors, errors.Wrapf(ErrSizeOverflow, "chunk %q at offset %d", tag, pos))
			break
		}

		chunk := Chunk{
			Type:   tag,
			Offset: pos,
			Size:   int(size),
			Data:   data[payloadStart:payloadEnd],
		}
		idx := len(p.Chunks)
		p.Chunks = append(p.Chunks, chunk)

		if singletonTypes[tag] && len(p.ChunksByType[tag]) > 0 {
			p.Errors = append(p.Errors, errors.Wrapf(ErrDuplicateSingle, "chunk %q", tag))
		}
		p.ChunksByType[tag] = append(p.ChunksByType[tag], idx)

		if tag == TagVP8X {
			sawVP8X = true
			if first {
				p.HasVP8X = true
			} else {
				p.OrderValid = false
				p.Errors = append(p.Errors, errors.Wrap(ErrChunkOrder, "VP8X seen after other chunks"))
			}
		}
		first = false

		pos = int(payloadEnd)
		if size&1 != 0 {
			pos++ // pad byte
		}
	}
	_ = sawVP8X

	if !p.HasVP8X {
		vp8n := len(p.ChunksByType[TagVP8])
		vp8ln := len(p.ChunksByType[TagVP8L])
		if vp8n+vp8ln != 1 {
			p.Errors = append(p.Errors, errors.Wrap(ErrPrimaryStreamQty, "simple WebP"))
		}
		if len(p.ChunksByType[TagALPH]) > 0 {
			p.Errors = append(p.Errors, errors.Wrap(ErrAlphaNotAllowed, "simple WebP"))
		}
	}

	return p, nil
}

// FirstChunk returns the first chunk of the given type, or false if none
// was found. Metadata extraction uses first-occurrence semantics even
// when a duplicate singleton was recorded as an error (§4.3).
func (p *Parsed) FirstChunk(tag string) (Chunk, bool) {
	idxs, ok := p.ChunksByType[tag]
	if !ok || len(idxs) == 0 {
		return Chunk{}, false
	}
	return p.Chunks[idxs[0]], true
}
