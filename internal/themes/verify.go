package themes

// Pairing is a foreground/background combination that must stay readable.
type Pairing struct {
	Label      string
	Foreground string
	Background string
}

// Failure is a pairing that fell under the required ratio.
type Failure struct {
	Theme      string
	Pairing    string
	Ratio      float64
	Foreground string
	Background string
}

// LightPairings lists the pairings checked for every theme.
func LightPairings(p *Palette) []Pairing {
	return []Pairing{
		{"text-primary on bg-main", p.TextPrimary, p.BgMain},
		{"text-secondary on bg-main", p.TextSecondary, p.BgMain},
		{"text-muted on bg-main", p.TextMuted, p.BgMain},
		{"primary-ink on bg-main", p.PrimaryInk, p.BgMain},
		{"accent-ink on accent-surface", p.AccentInk, p.AccentSurface},
		{"on-primary on primary", p.OnPrimary, p.Colors.Primary},
	}
}

// Verify resolves every theme in reg for mode, exactly as the live engine
// does, and collects the pairings under minRatio.
func Verify(reg *Registry, mode ColorMode, minRatio float64) []Failure {
	if minRatio <= 0 {
		minRatio = MinContrast
	}
	if !mode.IsResolved() {
		mode = ModeLight
	}

	var failures []Failure
	for _, t := range reg.List() {
		p := Resolve(&t, mode)
		for _, pair := range LightPairings(p) {
			ratio := ContrastRatio(pair.Foreground, pair.Background)
			if ratio < minRatio {
				failures = append(failures, Failure{
					Theme:      t.Name,
					Pairing:    pair.Label,
					Ratio:      ratio,
					Foreground: pair.Foreground,
					Background: pair.Background,
				})
			}
		}
	}
	return failures
}
