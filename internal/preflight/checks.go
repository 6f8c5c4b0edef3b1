package preflight

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/sys/unix"

	"ripper/internal/chromakey"
)

// freeSpaceFloorBytes is the threshold below which the output filesystem
// triggers a low-space warning. The warning does not fail the check.
const freeSpaceFloorBytes = 64 << 20

// CheckVideoFile verifies that the input video exists, is a regular file, and
// is readable.
func CheckVideoFile(path string) Result {
	const name = "Input video"
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{Name: name, Detail: "no video path given"}
	}
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: not readable: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: path}
}

// CheckOutputDir verifies that the output directory either exists as a
// writable directory or can be created under a writable ancestor. Low free
// space on the target filesystem is reported as a detail, not a failure.
func CheckOutputDir(path string) Result {
	const name = "Output directory"
	path = strings.TrimSpace(path)
	if path == "" {
		return Result{Name: name, Detail: "no output path given"}
	}

	info, err := os.Stat(path)
	switch {
	case err == nil:
		if !info.IsDir() {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: exists and is not a directory)", path)}
		}
		if err := unix.Access(path, unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: not writable: %v)", path, err)}
		}
		return Result{Name: name, Passed: true, Detail: appendSpaceNote(path, fmt.Sprintf("%s (exists, writable)", path))}
	case os.IsNotExist(err):
		ancestor := nearestExistingAncestor(path)
		if ancestor == "" {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: no existing ancestor directory)", path)}
		}
		if err := unix.Access(ancestor, unix.W_OK|unix.X_OK); err != nil {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, ancestor, err)}
		}
		return Result{Name: name, Passed: true, Detail: appendSpaceNote(ancestor, fmt.Sprintf("%s (will be created)", path))}
	default:
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
}

// CheckColor verifies that the key color parses.
func CheckColor(value string) Result {
	const name = "Key color"
	if strings.TrimSpace(value) == "" {
		return Result{Name: name, Detail: "missing (--color or defaults.color required)"}
	}
	color, err := chromakey.ParseColor(value)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("R=%d G=%d B=%d", color.R, color.G, color.B)}
}

// CheckTolerance verifies the tolerance lies in [0,255].
func CheckTolerance(tolerance int) Result {
	const name = "Tolerance"
	if tolerance < 0 || tolerance > 255 {
		return Result{Name: name, Detail: fmt.Sprintf("%d is outside [0,255]", tolerance)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d", tolerance)}
}

// CheckTargetFPS verifies the target frame rate is positive.
func CheckTargetFPS(fps int) Result {
	const name = "Target fps"
	if fps <= 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%d must be greater than 0", fps)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d", fps)}
}

// CheckFeather verifies the feather radius is not negative.
func CheckFeather(feather int) Result {
	const name = "Feather"
	if feather < 0 {
		return Result{Name: name, Detail: fmt.Sprintf("%d must not be negative", feather)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%d px", feather)}
}

func nearestExistingAncestor(path string) string {
	current := filepath.Clean(path)
	for {
		parent := filepath.Dir(current)
		if parent == current {
			return ""
		}
		if info, err := os.Stat(parent); err == nil && info.IsDir() {
			return parent
		}
		current = parent
	}
}

func appendSpaceNote(fsPath, detail string) string {
	var stat unix.Statfs_t
	if err := unix.Statfs(fsPath, &stat); err != nil {
		return detail
	}
	free := uint64(stat.Bavail) * uint64(stat.Bsize)
	if free < freeSpaceFloorBytes {
		return fmt.Sprintf("%s (warning: only %d MiB free)", detail, free>>20)
	}
	return detail
}
