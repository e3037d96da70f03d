package themes

import "testing"

func TestVerifyBuiltinLight(t *testing.T) {
	for _, f := range Verify(Builtin(), ModeLight, MinContrast) {
		t.Errorf("%s: %s is %.2f:1 (%s on %s)", f.Theme, f.Pairing, f.Ratio, f.Foreground, f.Background)
	}
}

func TestVerifyBuiltinDark(t *testing.T) {
	for _, f := range Verify(Builtin(), ModeDark, MinContrast) {
		t.Errorf("%s: %s is %.2f:1 (%s on %s)", f.Theme, f.Pairing, f.Ratio, f.Foreground, f.Background)
	}
}

func TestLightPairingsOrder(t *testing.T) {
	p := Resolve(Builtin().Get("breezy"), ModeLight)
	pairs := LightPairings(p)
	want := []string{
		"text-primary on bg-main",
		"text-secondary on bg-main",
		"text-muted on bg-main",
		"primary-ink on bg-main",
		"accent-ink on accent-surface",
		"on-primary on primary",
	}
	if len(pairs) != len(want) {
		t.Fatalf("expected %d pairings, got %d", len(want), len(pairs))
	}
	for i, pair := range pairs {
		if pair.Label != want[i] {
			t.Errorf("pairing %d = %q, want %q", i, pair.Label, want[i])
		}
	}
}

func TestVerifyCollectsFailures(t *testing.T) {
	weak := *Builtin().Get("breezy")
	weak.Name = "washed-out"
	weak.Light.TextMuted = "#cccccc"
	weak.Light.TextSecondary = "#ccc"

	reg, err := NewRegistry(weak)
	if err != nil {
		t.Fatal(err)
	}

	failures := Verify(reg, ModeLight, MinContrast)
	if len(failures) != 2 {
		t.Fatalf("expected 2 failures, got %d: %+v", len(failures), failures)
	}

	secondary := failures[0]
	if secondary.Theme != "washed-out" || secondary.Pairing != "text-secondary on bg-main" {
		t.Errorf("unexpected failure: %+v", secondary)
	}
	if secondary.Ratio != 1 {
		t.Errorf("unparseable color should report ratio 1, got %f", secondary.Ratio)
	}

	muted := failures[1]
	if muted.Foreground != "#cccccc" || muted.Background != "#fdfcf8" {
		t.Errorf("unexpected colors in failure: %+v", muted)
	}
	if muted.Ratio >= MinContrast {
		t.Errorf("failure ratio should be under threshold, got %.2f", muted.Ratio)
	}
}
