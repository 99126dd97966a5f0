// Package container implements the RIFF/WEBP container walk, the VP8X
// extended header, and chunk-type classification that feeds the lossy,
// lossless, and alpha decoders their payloads.
package container

import "encoding/binary"

// FourCC chunk tags, stored as their 4 raw bytes for direct comparison
// against the bytes read off the wire (RIFF tags are not numeric, they are
// ASCII and case-sensitive, including the trailing space in "VP8 "/"XMP ").
const (
	TagRIFF = "RIFF"
	TagWEBP = "WEBP"
	TagVP8  = "VP8 "
	TagVP8L = "VP8L"
	TagVP8X = "VP8X"
	TagALPH = "ALPH"
	TagANIM = "ANIM"
	TagANMF = "ANMF"
	TagICCP = "ICCP"
	TagEXIF = "EXIF"
	TagXMP  = "XMP "
)

// VP8X flag bits (byte 0 of the VP8X payload).
const (
	FlagTiles = 1 << 0
	FlagAnim  = 1 << 1
	FlagXMP   = 1 << 2
	FlagEXIF  = 1 << 3
	FlagAlpha = 1 << 4
	FlagICC   = 1 << 5

	AllValidFlags = FlagTiles | FlagAnim | FlagXMP | FlagEXIF | FlagAlpha | FlagICC
)

// Structural sizes.
const (
	ChunkHeaderSize = 8  // tag[4] + size[LE32]
	RIFFHeaderSize  = 12 // "RIFF" + size[LE32] + "WEBP"
	VP8XChunkSize   = 10
)

// Canvas limits (§3: each dimension <= 16384).
const MaxCanvasDimension = 16384

// readLE24 reads a 24-bit little-endian unsigned integer.
func readLE24(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16
}

func readLE32(b []byte) uint32 { return binary.LittleEndian.Uint32(b) }
