package themes

import "errors"

// ColorMode is a light/dark selection. ModeSystem is an instruction to use
// the OS preference rather than a color set of its own.
type ColorMode string

const (
	ModeDark   ColorMode = "dark"
	ModeLight  ColorMode = "light"
	ModeSystem ColorMode = "system"
)

var (
	ErrUnknownTheme = errors.New("unknown theme")
	ErrInvalidMode  = errors.New("invalid color mode")
)

// ParseColorMode accepts exactly dark, light or system.
func ParseColorMode(s string) (ColorMode, bool) {
	switch ColorMode(s) {
	case ModeDark:
		return ModeDark, true
	case ModeLight:
		return ModeLight, true
	case ModeSystem:
		return ModeSystem, true
	}
	return "", false
}

// IsResolved reports whether m names a concrete color set.
func (m ColorMode) IsResolved() bool {
	return m == ModeDark || m == ModeLight
}

// EffectiveMode collapses ModeSystem against the OS preference. An unknown
// preference reads as light.
func EffectiveMode(mode, system ColorMode) ColorMode {
	if mode != ModeSystem {
		return mode
	}
	if system == ModeDark {
		return ModeDark
	}
	return ModeLight
}
