package themes

// MinContrast is the WCAG AA minimum for normal text.
const MinContrast = 4.5

// 24 halvings resolve the blend fraction well below one 8-bit step.
const solverIterations = 24

// EnsureContrast returns foreground unchanged when it already meets minRatio
// against background. Otherwise it bisects the smallest blend toward black
// (light backgrounds) or white (dark backgrounds) that crosses the
// threshold. If no candidate passes, the original foreground comes back.
func EnsureContrast(foreground, background string, minRatio float64) string {
	if minRatio <= 0 {
		minRatio = MinContrast
	}
	if ContrastRatio(foreground, background) >= minRatio {
		return foreground
	}

	bg, ok := HexToRGB(background)
	if !ok {
		return foreground
	}
	if _, ok := HexToRGB(foreground); !ok {
		return foreground
	}
	target := white
	if RelativeLuminance(bg) > 0.5 {
		target = black
	}

	best := foreground
	lo, hi := 0.0, 1.0
	for i := 0; i < solverIterations; i++ {
		t := (lo + hi) / 2
		candidate := MixColors(foreground, target, t)
		if ContrastRatio(candidate, background) >= minRatio {
			best = candidate
			hi = t
		} else {
			lo = t
		}
	}
	return best
}

// PickOnColor chooses white or black text for the given background.
// A color meeting minRatio with the larger margin wins; if neither meets
// it the higher raw ratio wins. Ties go to white.
func PickOnColor(background string, minRatio float64) string {
	if minRatio <= 0 {
		minRatio = MinContrast
	}
	onWhite := ContrastRatio(white, background)
	onBlack := ContrastRatio(black, background)

	whitePasses := onWhite >= minRatio
	blackPasses := onBlack >= minRatio
	switch {
	case whitePasses && !blackPasses:
		return white
	case blackPasses && !whitePasses:
		return black
	}
	if onBlack > onWhite {
		return black
	}
	return white
}
