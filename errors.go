package webp

import "github.com/pkg/errors"

// Taxonomy tags a DecodeError with the §7 failure category it belongs to.
type Taxonomy string

const (
	TaxContainer          Taxonomy = "Container"
	TaxVP8X               Taxonomy = "VP8X"
	TaxVP8Bitstream       Taxonomy = "VP8Bitstream"
	TaxVP8LBitstream      Taxonomy = "VP8LBitstream"
	TaxAlpha              Taxonomy = "Alpha"
	TaxMetadataValidation Taxonomy = "MetadataValidation"
	TaxInternal           Taxonomy = "Internal"
)

// DecodeError wraps a decode failure with the taxonomy tag it belongs to
// (§7). Callers that need to branch on failure category should use
// errors.As against this type rather than string-matching Error().
type DecodeError struct {
	Tag   Taxonomy
	cause error
}

func (e *DecodeError) Error() string {
	return string(e.Tag) + ": " + e.cause.Error()
}

func (e *DecodeError) Unwrap() error { return e.cause }

// wrapTax tags err with a taxonomy, or returns nil if err is nil.
func wrapTax(tag Taxonomy, err error) error {
	if err == nil {
		return nil
	}
	return &DecodeError{Tag: tag, cause: err}
}

// Sentinel errors for taxonomy entries not already covered by a more
// specific sentinel in internal/container, internal/lossy, internal/
// lossless, or internal/alpha.
var (
	ErrDimensionMismatch = errors.New("webp: VP8X canvas size does not match decoded stream dimensions")
	ErrMissingAlphaChunk = errors.New("webp: alpha flag set but ALPH chunk absent")
	ErrMissingPrimary    = errors.New("webp: VP8X present but no VP8/VP8L primary stream found")

	ErrMetadataICCP = errors.New("metadata: malformed ICC profile")
	ErrMetadataEXIF = errors.New("metadata: malformed EXIF payload")
	ErrMetadataXMP  = errors.New("metadata: malformed XMP payload")
)
