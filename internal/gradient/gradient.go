package gradient

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// hexColorPattern accepts 3 to 6 hex digits with an optional leading '#'.
var hexColorPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{3,6}$`)

// Saturation/brightness presets for derived colors.
const (
	mutedSaturation  = 0.5
	mutedBrightness  = 0.3
	brightSaturation = 1.0
	brightBrightness = 1.0
)

// Spec describes a two-stop linear gradient. A zero Spec (Enabled false)
// means "transparent background, skip compositing".
type Spec struct {
	Color1  string
	Color2  string
	Angle   int
	Enabled bool
}

// HexToAngle maps one hex byte (two hex characters) linearly onto a
// rotation: round(value/255*360). "00" is 0 and "ff" is 360.
func HexToAngle(s string) (int, error) {
	value, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, fmt.Errorf("hex byte %q: %w", s, err)
	}
	return int(math.Round(float64(value) / 255 * 360)), nil
}

// Derive builds the gradient spec for a device.
//
// With no colorful flag, no bright flag, and no explicit color the result
// is disabled. Derived hues use the trailing two hex characters of
// deviceID; the second hue sits 60 degrees below the first, wrapping to
// +300 when that underflows. An explicit angle (0..360) overrides the
// derived rotation but never the derived hues; angle -1 derives.
func Derive(deviceID, color1, color2 string, angle int, colorfulFlag, brightFlag bool) (Spec, error) {
	color1 = strings.TrimSpace(color1)
	color2 = strings.TrimSpace(color2)

	if !colorfulFlag && !brightFlag && color1 == "" {
		return Spec{}, nil
	}

	for _, value := range []string{color1, color2} {
		if value != "" && !hexColorPattern.MatchString(value) {
			return Spec{}, fmt.Errorf("invalid hex color %q", value)
		}
	}

	saturation, brightness := mutedSaturation, mutedBrightness
	if brightFlag {
		saturation, brightness = brightSaturation, brightBrightness
	}

	hue1, err := HexToAngle(trailingHexByte(deviceID))
	if err != nil {
		return Spec{}, fmt.Errorf("derive hue from device id %q: %w", deviceID, err)
	}
	hue2 := hue1 - 60
	if hue2 < 0 {
		hue2 = hue1 + 300
	}

	spec := Spec{Enabled: true, Angle: hue1}
	if angle >= 0 {
		spec.Angle = angle
	}

	switch {
	case color1 != "" && color2 != "":
		// Two explicit stops pass through verbatim, presets do not apply.
		spec.Color1 = normalizeHex(color1)
		spec.Color2 = normalizeHex(color2)
	case color1 != "":
		spec.Color1 = normalizeHex(color1)
		spec.Color2 = hsvHex(hue1, saturation, brightness)
	default:
		spec.Color1 = hsvHex(hue1, saturation, brightness)
		spec.Color2 = hsvHex(hue2, saturation, brightness)
	}

	return spec, nil
}

// trailingHexByte returns the last two characters of a device identifier.
func trailingHexByte(deviceID string) string {
	if len(deviceID) < 2 {
		return deviceID
	}
	return deviceID[len(deviceID)-2:]
}

func hsvHex(hue int, saturation, brightness float64) string {
	h := math.Mod(float64(hue), 360)
	return colorful.Hsv(h, saturation, brightness).Hex()
}

// normalizeHex renders a user-supplied hex color as "#rrggbb". Three
// digits expand in the CSS shorthand manner; four or five are zero-padded.
func normalizeHex(value string) string {
	digits := strings.ToLower(strings.TrimPrefix(value, "#"))
	if len(digits) == 3 {
		expanded := make([]byte, 0, 6)
		for i := 0; i < 3; i++ {
			expanded = append(expanded, digits[i], digits[i])
		}
		digits = string(expanded)
	}
	for len(digits) < 6 {
		digits += "0"
	}
	return "#" + digits
}

// Stops returns the parsed stop colors for rasterization.
func (s Spec) Stops() (colorful.Color, colorful.Color, error) {
	c1, err := colorful.Hex(s.Color1)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, fmt.Errorf("gradient stop 1: %w", err)
	}
	c2, err := colorful.Hex(s.Color2)
	if err != nil {
		return colorful.Color{}, colorful.Color{}, fmt.Errorf("gradient stop 2: %w", err)
	}
	return c1, c2, nil
}
