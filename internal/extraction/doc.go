// Package extraction orchestrates the single sequential pass over a video:
// open, sample via the leaky accumulator, mask, composite, and write numbered
// RGBA PNGs into the output directory.
//
// The run holds a flock inside the output directory for its duration so the
// contiguous frame numbering of two runs can never interleave.
package extraction
