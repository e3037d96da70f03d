package themes

import "testing"

const epsilon = 1e-6

func TestEnsureContrastKeepsPassingColor(t *testing.T) {
	pairs := [][2]string{
		{"#101820", "#fdfcf8"},
		{"#ffffff", "#bd3039"},
		{"#f2f4f3", "#0f1a1f"},
		{"#000000", "#ffffff"},
	}
	for _, p := range pairs {
		if ContrastRatio(p[0], p[1]) < MinContrast {
			t.Fatalf("fixture %s on %s should already pass", p[0], p[1])
		}
		if got := EnsureContrast(p[0], p[1], MinContrast); got != p[0] {
			t.Errorf("EnsureContrast(%s, %s) changed a passing color to %s", p[0], p[1], got)
		}
	}
}

func TestEnsureContrastAccentOnTint(t *testing.T) {
	surface := MixColors("#fdfcf8", "#c9b037", 0.15)

	raw := ContrastRatio("#c9b037", surface)
	if raw >= MinContrast {
		t.Fatalf("raw accent on tint should fail, got %.2f", raw)
	}

	got := EnsureContrast("#c9b037", surface, MinContrast)
	if got == "#c9b037" {
		t.Fatal("failing accent should be adjusted")
	}
	if _, ok := HexToRGB(got); !ok {
		t.Fatalf("result %q is not a hex color", got)
	}
	if ratio := ContrastRatio(got, surface); ratio < MinContrast-epsilon {
		t.Errorf("adjusted accent %s only reaches %.3f", got, ratio)
	}
}

func TestEnsureContrastMovesTowardWhiteOnDark(t *testing.T) {
	got := EnsureContrast("#2b7a78", "#0f1a1f", MinContrast)
	before, _ := HexToRGB("#2b7a78")
	after, _ := HexToRGB(got)
	if RelativeLuminance(after) <= RelativeLuminance(before) {
		t.Errorf("expected %s to be lighter than #2b7a78", got)
	}
}

func TestEnsureContrastIsMinimalShift(t *testing.T) {
	surface := MixColors("#fdfcf8", "#c9b037", 0.15)
	got := EnsureContrast("#c9b037", surface, MinContrast)

	// Black on this surface passes by a wide margin; the solver must stop
	// far short of it.
	if got == "#000000" {
		t.Fatal("solver should not jump to the extreme")
	}
	if ContrastRatio(got, surface) > MinContrast+1 {
		t.Errorf("solver overshot: %.2f", ContrastRatio(got, surface))
	}
}

func TestEnsureContrastUnparseableInput(t *testing.T) {
	if got := EnsureContrast("#c9b037", "not-a-color", MinContrast); got != "#c9b037" {
		t.Errorf("bad background should return foreground, got %s", got)
	}
	// An unparseable foreground never passes; the solver gives it back.
	if got := EnsureContrast("#abc", "#ffffff", MinContrast); got != "#abc" {
		t.Errorf("bad foreground should come back unchanged, got %s", got)
	}
}

func TestEnsureContrastUnreachableRatio(t *testing.T) {
	// 22:1 is above the maximum possible ratio, so nothing passes.
	if got := EnsureContrast("#777777", "#ffffff", 22); got != "#777777" {
		t.Errorf("expected original foreground, got %s", got)
	}
}

func TestPickOnColorExtremes(t *testing.T) {
	if got := PickOnColor("#000000", MinContrast); got != "#ffffff" {
		t.Errorf("on black expected white, got %s", got)
	}
	if got := PickOnColor("#ffffff", MinContrast); got != "#000000" {
		t.Errorf("on white expected black, got %s", got)
	}
}

func TestPickOnColorBoSoxRed(t *testing.T) {
	got := PickOnColor("#bd3039", MinContrast)
	if got != "#ffffff" && got != "#000000" {
		t.Fatalf("unexpected on-color %s", got)
	}
	other := "#000000"
	if got == "#000000" {
		other = "#ffffff"
	}
	if ContrastRatio(got, "#bd3039") < ContrastRatio(other, "#bd3039") {
		t.Errorf("%s should have at least the contrast of %s", got, other)
	}
	if PickOnColor("#bd3039", MinContrast) != got {
		t.Error("PickOnColor should be deterministic")
	}
}

func TestPickOnColorTiePrefersWhite(t *testing.T) {
	// Both candidates score 1 against an unparseable background.
	if got := PickOnColor("transparent", MinContrast); got != "#ffffff" {
		t.Errorf("tie should prefer white, got %s", got)
	}
}

func TestSolverConvergesForRegistry(t *testing.T) {
	for _, th := range Builtin().List() {
		for _, mode := range []ColorMode{ModeLight, ModeDark} {
			mc := th.ModeColors(mode)
			candidates := []string{th.Colors.Primary, th.Colors.PrimaryDark, th.Colors.Accent, th.Colors.AccentTeal}
			for _, fg := range candidates {
				got := EnsureContrast(fg, mc.BgMain, MinContrast)
				if ratio := ContrastRatio(got, mc.BgMain); ratio < MinContrast-epsilon {
					t.Errorf("%s/%s: %s adjusted to %s reaches only %.3f", th.Name, mode, fg, got, ratio)
				}
			}
		}
	}
}
