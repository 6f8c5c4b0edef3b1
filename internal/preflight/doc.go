// Package preflight validates operator inputs before any processing begins:
// the input video, the output directory, and the key-color parameters.
//
// The CLI runs Validate before opening the video so a bad flag never touches
// the source, and the preflight command renders RunAll as a pass/fail table.
package preflight
