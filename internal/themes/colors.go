// SPDX-License-Identifier: MIT
package themes

import (
	"fmt"
	"math"
	"regexp"

	"github.com/lucasb-eyer/go-colorful"
)

// RGB is a color in 0-255 channel space. Channels are floats so that
// blended values can be carried before rounding.
type RGB struct {
	R float64
	G float64
	B float64
}

var (
	hexPattern = regexp.MustCompile(`^#?[0-9a-fA-F]{6}$`)

	black = "#000000"
	white = "#ffffff"
)

// HexToRGB parses a six digit hex color with an optional leading '#'.
// Shorthand, alpha and rgba() forms are rejected.
func HexToRGB(hex string) (RGB, bool) {
	if !hexPattern.MatchString(hex) {
		return RGB{}, false
	}
	if hex[0] != '#' {
		hex = "#" + hex
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return RGB{}, false
	}
	r, g, b := c.RGB255()
	return RGB{R: float64(r), G: float64(g), B: float64(b)}, true
}

// RGBToHex clamps and rounds each channel, then encodes as lowercase #rrggbb.
func RGBToHex(rgb RGB) string {
	c := colorful.Color{
		R: channel(rgb.R) / 255,
		G: channel(rgb.G) / 255,
		B: channel(rgb.B) / 255,
	}
	return c.Hex()
}

func channel(v float64) float64 {
	return math.Round(math.Max(0, math.Min(255, v)))
}

// SRGBToLinear converts an 8-bit sRGB channel to linear light.
func SRGBToLinear(channel float64) float64 {
	v := channel / 255
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// RelativeLuminance is the WCAG 2.x relative luminance of rgb.
func RelativeLuminance(rgb RGB) float64 {
	return 0.2126*SRGBToLinear(rgb.R) +
		0.7152*SRGBToLinear(rgb.G) +
		0.0722*SRGBToLinear(rgb.B)
}

// ContrastRatio returns the WCAG contrast ratio between two hex colors.
// If either color cannot be parsed the result is 1, which fails every
// threshold.
func ContrastRatio(fg, bg string) float64 {
	a, ok := HexToRGB(fg)
	if !ok {
		return 1
	}
	b, ok := HexToRGB(bg)
	if !ok {
		return 1
	}
	l1 := RelativeLuminance(a)
	l2 := RelativeLuminance(b)
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// MixColors composites foreground over background at the given alpha:
// fg*alpha + bg*(1-alpha) per channel. Unparseable input returns the
// foreground as given.
func MixColors(background, foreground string, alpha float64) string {
	bg, ok := HexToRGB(background)
	if !ok {
		return foreground
	}
	fg, ok := HexToRGB(foreground)
	if !ok {
		return foreground
	}
	alpha = math.Max(0, math.Min(1, alpha))
	return RGBToHex(RGB{
		R: fg.R*alpha + bg.R*(1-alpha),
		G: fg.G*alpha + bg.G*(1-alpha),
		B: fg.B*alpha + bg.B*(1-alpha),
	})
}

// RGBTriplet formats a hex color as "r, g, b" for rgba(var(--x-rgb), a).
func RGBTriplet(hex string) (string, bool) {
	rgb, ok := HexToRGB(hex)
	if !ok {
		return "", false
	}
	return fmt.Sprintf("%d, %d, %d", int(rgb.R), int(rgb.G), int(rgb.B)), true
}
