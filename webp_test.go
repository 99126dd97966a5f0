package webp

import (
	"encoding/binary"
	"testing"

	"github.com/Anonyfox/raven-js-sub005/internal/container"
)

func le32w(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func appendChunk(b []byte, tag string, payload []byte) []byte {
	b = append(b, []byte(tag)...)
	b = append(b, le32w(uint32(len(payload)))...)
	b = append(b, payload...)
	if len(payload)&1 != 0 {
		b = append(b, 0)
	}
	return b
}

func wrapRIFF(chunks []byte) []byte {
	var b []byte
	b = append(b, []byte(container.TagRIFF)...)
	b = append(b, le32w(uint32(4+len(chunks)))...)
	b = append(b, []byte(container.TagWEBP)...)
	b = append(b, chunks...)
	return b
}

func vp8xPayload(width, height int, flags byte) []byte {
	p := make([]byte, container.VP8XChunkSize)
	p[0] = flags
	w, h := uint32(width-1), uint32(height-1)
	p[4], p[5], p[6] = byte(w), byte(w>>8), byte(w>>16)
	p[7], p[8], p[9] = byte(h), byte(h>>8), byte(h>>16)
	return p
}

func TestDecodeBadSignature(t *testing.T) {
	_, err := Decode([]byte("not a webp file at all"))
	if err == nil {
		t.Fatal("expected a signature error")
	}
}

func TestDecodeSimpleMissingPrimaryDirect(t *testing.T) {
	p := &container.Parsed{ChunksByType: map[string][]int{}}
	_, _, _, err := decodeSimple(p)
	if err == nil {
		t.Fatal("expected ErrMissingPrimary")
	}
}

func TestDecodeExtendedMissingPrimary(t *testing.T) {
	chunks := appendChunk(nil, container.TagVP8X, vp8xPayload(2, 2, 0))
	data := wrapRIFF(chunks)

	_, err := Decode(data)
	if err == nil {
		t.Fatal("expected ErrMissingPrimary for a VP8X container with no VP8/VP8L chunk")
	}
}

func TestDecodeExtendedVP8XReconciliationFailure(t *testing.T) {
	// Flag claims an alpha channel, but no ALPH chunk is present and no
	// primary stream chunk either; reconciliation should fail before the
	// missing-primary check is ever reached.
	chunks := appendChunk(nil, container.TagVP8X, vp8xPayload(2, 2, container.FlagAlpha))
	data := wrapRIFF(chunks)

	_, err := Decode(data)
	if err == nil {
		t.Fatal("expected a VP8X reconciliation error")
	}
}

func TestDecodeWithOptionsSkipsMetadataValidation(t *testing.T) {
	badICC := make([]byte, 10) // too short to be a valid ICC profile
	chunks := appendChunk(nil, container.TagVP8X, vp8xPayload(2, 2, container.FlagICC))
	chunks = appendChunk(chunks, container.TagICCP, badICC)
	data := wrapRIFF(chunks)

	_, err := DecodeWithOptions(data, Options{SkipMetadataValidation: true})
	// Still fails, because there is no primary stream. Metadata validation
	// is non-fatal whether or not it is skipped, so this checks only that
	// skipping it does not hide the fatal missing-primary error.
	if err == nil {
		t.Fatal("expected ErrMissingPrimary even with metadata validation skipped")
	}
}
