package dsp

// BPS is the stride used for all macroblock reconstruction buffers passed
// to the predictors, transforms, and loop filter in this package. A fixed
// stride lets a single buffer carry the 1-pixel border of reconstructed
// neighbor context that prediction reads from at negative offsets relative
// to a block's top-left corner.
const BPS = 32
