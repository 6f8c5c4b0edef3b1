// Command ripper extracts frames from a video at a target sampling rate,
// removes a background key color from each sampled frame, and writes the
// results as transparent PNGs.
//
// The root invocation performs the extraction; probe, preflight, and config
// subcommands provide inspection and setup utilities.
package main
