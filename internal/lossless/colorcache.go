package lossless

// ColorCache implements the VP8L color cache (§4.14): a hash table of
// recently emitted ARGB pixels, used as a cheap alternative to a literal or
// backward-reference code for colors seen earlier in the image.
type ColorCache struct {
	Colors    []uint32
	HashShift uint
}

const colorCacheHashMul = 0x1e35a7bd

// NewColorCache allocates a color cache with 1<<hashBits entries.
func NewColorCache(hashBits int) *ColorCache {
	return &ColorCache{
		Colors:    make([]uint32, 1<<uint(hashBits)),
		HashShift: 32 - uint(hashBits),
	}
}

// hash maps an ARGB pixel to its slot index via libwebp's multiplicative
// hash (§4.14).
func (c *ColorCache) hash(argb uint32) int {
	return int((argb * colorCacheHashMul) >> c.HashShift)
}

// Lookup returns the color stored at the given hash-table key.
func (c *ColorCache) Lookup(key int) uint32 {
	return c.Colors[key]
}

// Insert stores argb at its hashed slot, overwriting whatever was there.
func (c *ColorCache) Insert(argb uint32) {
	c.Colors[c.hash(argb)] = argb
}
