// Package capture wraps OpenCV video decoding behind a sequential Source:
// open, read metadata, iterate frames, release.
package capture
