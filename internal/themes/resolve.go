package themes

import "fmt"

// Accent surface tint strength per mode.
const (
	lightSurfaceAlpha = 0.15
	darkSurfaceAlpha  = 0.12
)

// Palette is a theme resolved for one concrete mode, including the
// colors derived to meet MinContrast.
type Palette struct {
	Theme string
	Mode  ColorMode

	Colors Colors
	ModeColors

	AccentSurface string
	AccentInk     string
	PrimaryInk    string
	OnPrimary     string
}

// Resolve derives the palette for theme in a resolved mode (dark or light).
func Resolve(theme *Theme, mode ColorMode) *Palette {
	if mode != ModeDark {
		mode = ModeLight
	}
	mc := theme.ModeColors(mode)

	alpha := lightSurfaceAlpha
	primary := theme.Colors.PrimaryDark
	if mode == ModeDark {
		alpha = darkSurfaceAlpha
		primary = theme.Colors.Primary
	}
	surface := MixColors(mc.BgMain, theme.Colors.Accent, alpha)

	return &Palette{
		Theme:         theme.Name,
		Mode:          mode,
		Colors:        theme.Colors,
		ModeColors:    mc,
		AccentSurface: surface,
		AccentInk:     EnsureContrast(theme.Colors.Accent, surface, MinContrast),
		PrimaryInk:    EnsureContrast(primary, mc.BgMain, MinContrast),
		OnPrimary:     PickOnColor(theme.Colors.Primary, MinContrast),
	}
}

// Resolve is the palette for (themeName, colorMode, systemPreference).
func (r *Registry) Resolve(name string, mode, system ColorMode) (*Palette, error) {
	t := r.Get(name)
	if t == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTheme, name)
	}
	if _, ok := ParseColorMode(string(mode)); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
	return Resolve(t, EffectiveMode(mode, system)), nil
}

// Metadata keys carried alongside the CSS custom properties.
const (
	AttrTheme = "data-theme"
	AttrMode  = "data-mode"
)

// Variables flattens the palette into named output variables: CSS custom
// properties plus the data-theme and data-mode tags.
func (p *Palette) Variables() map[string]string {
	vars := map[string]string{
		"--color-primary":       p.Colors.Primary,
		"--color-primary-light": p.Colors.PrimaryLight,
		"--color-primary-dark":  p.Colors.PrimaryDark,
		"--color-accent":        p.Colors.Accent,
		"--color-accent-teal":   p.Colors.AccentTeal,

		"--color-text-primary":   p.TextPrimary,
		"--color-text-secondary": p.TextSecondary,
		"--color-text-muted":     p.TextMuted,
		"--color-bg-main":        p.BgMain,
		"--color-bg-card":        p.BgCard,
		"--color-bg-card-hover":  p.BgCardHover,
		"--color-border-subtle":  p.BorderSubtle,
		"--color-border-hover":   p.BorderHover,

		"--color-accent-surface": p.AccentSurface,
		"--color-accent-ink":     p.AccentInk,
		"--color-primary-ink":    p.PrimaryInk,
		"--color-on-primary":     p.OnPrimary,

		AttrTheme: p.Theme,
		AttrMode:  string(p.Mode),
	}
	for name, hex := range map[string]string{
		"--color-primary-rgb":     p.Colors.Primary,
		"--color-accent-rgb":      p.Colors.Accent,
		"--color-accent-teal-rgb": p.Colors.AccentTeal,
	} {
		if triplet, ok := RGBTriplet(hex); ok {
			vars[name] = triplet
		}
	}
	return vars
}
