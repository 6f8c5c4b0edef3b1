package chromakey

import (
	"fmt"
	"strconv"
	"strings"
)

// Color is an 8-bit RGB triple.
type Color struct {
	R uint8
	G uint8
	B uint8
}

// Key pairs a target background color with a symmetric per-channel tolerance.
type Key struct {
	Color     Color
	Tolerance int
}

// ParseColor parses a color given either as "#RRGGBB" hex or as a
// comma-separated "R,G,B" decimal triple with each component in [0,255].
func ParseColor(value string) (Color, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return Color{}, fmt.Errorf("parse color: empty value (expected #RRGGBB or R,G,B)")
	}

	if strings.HasPrefix(trimmed, "#") {
		return parseHex(trimmed)
	}
	if strings.Contains(trimmed, ",") {
		return parseTriple(trimmed)
	}
	return Color{}, fmt.Errorf("parse color %q: expected #RRGGBB or R,G,B", value)
}

func parseHex(value string) (Color, error) {
	digits := value[1:]
	if len(digits) != 6 {
		return Color{}, fmt.Errorf("parse color %q: hex form must be #RRGGBB", value)
	}
	parsed, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: invalid hex digits", value)
	}
	return Color{
		R: uint8(parsed >> 16),
		G: uint8(parsed >> 8),
		B: uint8(parsed),
	}, nil
}

func parseTriple(value string) (Color, error) {
	parts := strings.Split(value, ",")
	if len(parts) != 3 {
		return Color{}, fmt.Errorf("parse color %q: decimal form must be R,G,B", value)
	}
	channels := make([]uint8, 3)
	for i, part := range parts {
		parsed, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return Color{}, fmt.Errorf("parse color %q: component %d is not an integer", value, i+1)
		}
		if parsed < 0 || parsed > 255 {
			return Color{}, fmt.Errorf("parse color %q: component %d out of range [0,255]", value, i+1)
		}
		channels[i] = uint8(parsed)
	}
	return Color{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// Bounds returns the per-channel inclusion band for the key, each channel
// independently clamped to [0,255].
func (k Key) Bounds() (Color, Color) {
	lower := Color{
		R: clampChannel(int(k.Color.R) - k.Tolerance),
		G: clampChannel(int(k.Color.G) - k.Tolerance),
		B: clampChannel(int(k.Color.B) - k.Tolerance),
	}
	upper := Color{
		R: clampChannel(int(k.Color.R) + k.Tolerance),
		G: clampChannel(int(k.Color.G) + k.Tolerance),
		B: clampChannel(int(k.Color.B) + k.Tolerance),
	}
	return lower, upper
}

func clampChannel(value int) uint8 {
	if value < 0 {
		return 0
	}
	if value > 255 {
		return 255
	}
	return uint8(value)
}
