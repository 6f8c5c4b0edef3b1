// Package chromakey implements the background-color key: parsing the target
// color, deriving clamped per-channel inclusion bounds, and building the
// per-frame alpha mask (inclusion test, morphological cleanup, optional
// Gaussian feathering).
package chromakey
