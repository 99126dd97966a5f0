package webp

import (
	"bytes"
	"unicode/utf8"

	"github.com/pkg/errors"

	"github.com/Anonyfox/raven-js-sub005/internal/container"
)

// UnknownChunk is a chunk type this decoder does not interpret, preserved
// verbatim in original order (§4.3).
type UnknownChunk struct {
	Type string
	Data []byte
}

// Metadata holds the opaque auxiliary chunks extracted from a container
// (§4.3, §6 output). ICC/EXIF/XMP are zero-copy views into the input; they
// are nil when the corresponding chunk is absent.
type Metadata struct {
	ICC           []byte
	EXIF          []byte
	XMP           []byte
	UnknownChunks []UnknownChunk
}

// knownChunkTypes are the chunk types classified by the container walk;
// everything else is "unknown" (§4.1).
var knownChunkTypes = map[string]bool{
	container.TagVP8:  true,
	container.TagVP8L: true,
	container.TagVP8X: true,
	container.TagALPH: true,
	container.TagANIM: true,
	container.TagANMF: true,
	container.TagICCP: true,
	container.TagEXIF: true,
	container.TagXMP:  true,
}

// extractMetadata projects the recognized metadata chunks into a Metadata
// value and runs the non-fatal structural validations of §4.3, returning
// them as a separate error list.
func extractMetadata(p *container.Parsed) (Metadata, []error) {
	var md Metadata
	var errs []error

	if c, ok := p.FirstChunk(container.TagICCP); ok {
		md.ICC = c.Data
		if err := validateICCP(c.Data); err != nil {
			errs = append(errs, err)
		}
	}
	if c, ok := p.FirstChunk(container.TagEXIF); ok {
		md.EXIF = c.Data
		if err := validateEXIF(c.Data); err != nil {
			errs = append(errs, err)
		}
	}
	if c, ok := p.FirstChunk(container.TagXMP); ok {
		md.XMP = c.Data
		if err := validateXMP(c.Data); err != nil {
			errs = append(errs, err)
		}
	}

	for _, c := range p.Chunks {
		if !knownChunkTypes[c.Type] {
			md.UnknownChunks = append(md.UnknownChunks, UnknownChunk{Type: c.Type, Data: c.Data})
		}
	}

	return md, errs
}

// validateICCP checks the ICC.1 profile header (§4.3).
func validateICCP(data []byte) error {
	if len(data) < 128 {
		return errors.Wrap(ErrMetadataICCP, "profile shorter than 128 bytes")
	}
	if string(data[36:40]) != "acsp" {
		return errors.Wrap(ErrMetadataICCP, "missing 'acsp' signature")
	}
	size := uint32(data[0])<<24 | uint32(data[1])<<16 | uint32(data[2])<<8 | uint32(data[3])
	if int(size) != len(data) {
		return errors.Wrapf(ErrMetadataICCP, "declared size %d does not match payload length %d", size, len(data))
	}
	return nil
}

// validateEXIF checks the TIFF header (§4.3).
func validateEXIF(data []byte) error {
	if len(data) < 8 {
		return errors.Wrap(ErrMetadataEXIF, "payload shorter than 8 bytes")
	}
	switch string(data[0:2]) {
	case "II":
		if uint16(data[2])|uint16(data[3])<<8 != 42 {
			return errors.Wrap(ErrMetadataEXIF, "bad little-endian magic")
		}
	case "MM":
		if uint16(data[2])<<8|uint16(data[3]) != 42 {
			return errors.Wrap(ErrMetadataEXIF, "bad big-endian magic")
		}
	default:
		return errors.Wrap(ErrMetadataEXIF, "missing II/MM byte-order marker")
	}
	return nil
}

// validateXMP checks the RDF/XML packet wrapper (§4.3).
func validateXMP(data []byte) error {
	if len(data) == 0 {
		return errors.Wrap(ErrMetadataXMP, "empty payload")
	}
	if !utf8.Valid(data) {
		return errors.Wrap(ErrMetadataXMP, "not valid UTF-8")
	}
	if !bytes.Contains(data, []byte("<?xpacket")) || !bytes.Contains(data, []byte("x:xmpmeta")) {
		return errors.Wrap(ErrMetadataXMP, "missing xpacket/xmpmeta markers")
	}
	return nil
}
