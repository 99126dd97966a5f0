package container

import "errors"

// Sentinel errors for the §7 `Container` and `VP8X` taxonomies. Callers
// that need the taxonomy tag rather than a specific cause should use
// errors.Is against these, or inspect the wrapping webp.DecodeError.
var (
	ErrBadSignature     = errors.New("container: RIFF/WEBP signature mismatch")
	ErrTruncatedHeader  = errors.New("container: truncated RIFF header")
	ErrSizeOverflow     = errors.New("container: chunk size overflow")
	ErrPrimaryStreamQty = errors.New("container: simple WebP requires exactly one of VP8 or VP8L")
	ErrAlphaNotAllowed  = errors.New("container: ALPH not allowed without VP8X")
	ErrDuplicateSingle  = errors.New("container: duplicate metadata singleton chunk")
	ErrChunkOrder       = errors.New("container: VP8X must be the first chunk when present")

	ErrVP8XSize            = errors.New("vp8x: payload must be exactly 10 bytes")
	ErrVP8XReservedNonZero = errors.New("vp8x: reserved bytes must be zero")
	ErrVP8XDimension       = errors.New("vp8x: width/height must be in [1,16384]")
	ErrVP8XReconciliation  = errors.New("vp8x: feature flag does not match chunk presence")
)
