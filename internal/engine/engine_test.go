package engine

import (
	"bytes"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"github.com/thatcatcamp/folio/internal/themes"
)

type fixture struct {
	store  *MemoryStore
	sink   *MemorySink
	prefs  *Preference
	logs   *bytes.Buffer
	engine *Engine
}

func newFixture(t *testing.T, system themes.ColorMode, opts ...Option) *fixture {
	t.Helper()
	f := &fixture{
		store: NewMemoryStore(),
		sink:  &MemorySink{},
		prefs: NewPreference(system),
		logs:  &bytes.Buffer{},
	}
	logger := zerolog.New(f.logs).Level(zerolog.WarnLevel)
	opts = append([]Option{WithLogger(logger)}, opts...)
	f.engine = New(f.store, f.sink, f.prefs, opts...)
	t.Cleanup(f.engine.Close)
	return f
}

func (f *fixture) stored(key string) string {
	v, _ := f.store.Get(key)
	return v
}

func TestStartUsesDefaults(t *testing.T) {
	f := newFixture(t, "")
	f.engine.Start(Params{})

	require.Equal(t, themes.DefaultTheme, f.engine.Theme().Name)
	require.Equal(t, themes.ModeSystem, f.engine.ColorMode())
	require.Equal(t, themes.ModeLight, f.engine.ResolvedMode())
	require.Equal(t, 1, f.sink.Applies())
	require.Equal(t, "breezy", f.sink.Get(themes.AttrTheme))
	require.Equal(t, "breezy", f.stored(KeyThemeName))
	require.Equal(t, "system", f.stored(KeyColorMode))
}

func TestStartPrefersURLOverStore(t *testing.T) {
	f := newFixture(t, themes.ModeLight)
	require.NoError(t, f.store.Set(KeyThemeName, "bosox"))
	require.NoError(t, f.store.Set(KeyColorMode, "dark"))

	f.engine.Start(Params{Theme: "midnight", Mode: "light"})

	require.Equal(t, "midnight", f.engine.Theme().Name)
	require.Equal(t, themes.ModeLight, f.engine.ColorMode())
	require.Equal(t, "midnight", f.stored(KeyThemeName))
	require.Equal(t, "light", f.stored(KeyColorMode))
}

func TestStartInvalidURLFallsThroughToStore(t *testing.T) {
	f := newFixture(t, themes.ModeLight)
	require.NoError(t, f.store.Set(KeyThemeName, "bosox"))
	require.NoError(t, f.store.Set(KeyColorMode, "dark"))

	f.engine.Start(Params{Theme: "nonexistent", Mode: "sepia"})

	require.Equal(t, "bosox", f.engine.Theme().Name)
	require.Equal(t, themes.ModeDark, f.engine.ColorMode())
	require.Contains(t, f.logs.String(), "ignoring unknown theme from URL")
	require.Contains(t, f.logs.String(), "ignoring invalid color mode from URL")
}

func TestStartCorruptStoreFallsBackToDefaults(t *testing.T) {
	f := newFixture(t, themes.ModeDark)
	require.NoError(t, f.store.Set(KeyThemeName, "}{garbage"))
	require.NoError(t, f.store.Set(KeyColorMode, "purple"))

	f.engine.Start(Params{})

	require.Equal(t, themes.DefaultTheme, f.engine.Theme().Name)
	require.Equal(t, themes.DefaultMode, f.engine.ColorMode())
	require.Equal(t, themes.ModeDark, f.engine.ResolvedMode())
	// The corrupt values are overwritten by the first apply.
	require.Equal(t, themes.DefaultTheme, f.stored(KeyThemeName))
}

func TestSystemModeFollowsPreference(t *testing.T) {
	f := newFixture(t, themes.ModeDark)
	f.engine.Start(Params{Mode: "system"})

	require.Equal(t, themes.ModeDark, f.engine.ResolvedMode())
	require.Equal(t, "dark", f.sink.Get(themes.AttrMode))

	f.prefs.Set(themes.ModeLight)

	require.Equal(t, themes.ModeSystem, f.engine.ColorMode())
	require.Equal(t, themes.ModeLight, f.engine.ResolvedMode())
	require.Equal(t, "light", f.sink.Get(themes.AttrMode))
	require.Equal(t, 2, f.sink.Applies())
}

func TestExplicitModeIgnoresPreference(t *testing.T) {
	f := newFixture(t, themes.ModeLight)
	f.engine.Start(Params{Mode: "dark"})

	f.prefs.Set(themes.ModeDark)
	f.prefs.Set(themes.ModeLight)
	require.Equal(t, themes.ModeDark, f.engine.ResolvedMode())
	require.Equal(t, "dark", f.sink.Get(themes.AttrMode))

	require.NoError(t, f.engine.SetColorMode("system"))
	require.Equal(t, themes.ModeLight, f.engine.ResolvedMode())
}

func TestSetThemeUnknownIsNoop(t *testing.T) {
	f := newFixture(t, themes.ModeLight)
	f.engine.Start(Params{Theme: "harbor"})
	applies := f.sink.Applies()

	err := f.engine.SetTheme("nonexistent")

	require.True(t, errors.Is(err, themes.ErrUnknownTheme))
	require.Equal(t, "harbor", f.engine.Theme().Name)
	require.Equal(t, applies, f.sink.Applies())
	require.Contains(t, f.logs.String(), "setTheme called with unknown theme")
	require.Contains(t, f.logs.String(), "nonexistent")
}

func TestSetThemeApplies(t *testing.T) {
	f := newFixture(t, themes.ModeLight)
	f.engine.Start(Params{})

	require.NoError(t, f.engine.SetTheme("bosox"))

	require.Equal(t, "bosox", f.engine.Theme().Name)
	require.Equal(t, "#bd3039", f.sink.Get("--color-primary"))
	require.Equal(t, "bosox", f.stored(KeyThemeName))
}

func TestSetColorModeInvalid(t *testing.T) {
	f := newFixture(t, themes.ModeLight)
	f.engine.Start(Params{Mode: "light"})

	err := f.engine.SetColorMode("auto")

	require.True(t, errors.Is(err, themes.ErrInvalidMode))
	require.Equal(t, themes.ModeLight, f.engine.ColorMode())
	require.Contains(t, f.logs.String(), "setColorMode called with invalid mode")
}

func TestAppliedVariablesMatchPureResolve(t *testing.T) {
	f := newFixture(t, themes.ModeDark)
	f.engine.Start(Params{Theme: "evergreen", Mode: "system"})

	want, err := themes.Builtin().Resolve("evergreen", themes.ModeSystem, themes.ModeDark)
	require.NoError(t, err)
	require.Equal(t, want.Variables(), f.sink.Variables())
	require.Equal(t, want, f.engine.Palette())
}

func TestCloseUnsubscribes(t *testing.T) {
	f := newFixture(t, themes.ModeDark)
	f.engine.Start(Params{Mode: "system"})
	require.Equal(t, 1, f.prefs.Subscribers())

	f.engine.Close()
	require.Equal(t, 0, f.prefs.Subscribers())

	applies := f.sink.Applies()
	f.prefs.Set(themes.ModeLight)
	require.Equal(t, applies, f.sink.Applies())
}

type failingStore struct{ *MemoryStore }

func (failingStore) Set(string, string) error { return errors.New("disk full") }

func TestStoreFailuresAreLoggedNotFatal(t *testing.T) {
	logs := &bytes.Buffer{}
	sink := &MemorySink{}
	store := failingStore{NewMemoryStore()}
	e := New(store, sink, NewPreference(themes.ModeLight), WithLogger(zerolog.New(logs)))
	defer e.Close()

	e.Start(Params{Theme: "sunset"})

	require.Equal(t, "sunset", e.Theme().Name)
	require.Equal(t, 1, sink.Applies())
	require.Contains(t, logs.String(), "failed to persist selection")
}

func TestWithDefaults(t *testing.T) {
	f := newFixture(t, themes.ModeLight, WithDefaults("harbor", themes.ModeDark))
	f.engine.Start(Params{})
	require.Equal(t, "harbor", f.engine.Theme().Name)
	require.Equal(t, themes.ModeDark, f.engine.ColorMode())

	g := newFixture(t, themes.ModeLight, WithDefaults("nope", "sepia"))
	g.engine.Start(Params{})
	require.Equal(t, themes.DefaultTheme, g.engine.Theme().Name)
	require.Equal(t, themes.DefaultMode, g.engine.ColorMode())
}

func TestWithRegistry(t *testing.T) {
	solo := *themes.Builtin().Get("bosox")
	solo.Name = "solo"
	reg, err := themes.NewRegistry(solo)
	require.NoError(t, err)

	f := newFixture(t, themes.ModeLight, WithRegistry(reg))
	f.engine.Start(Params{Theme: "breezy"})

	require.Equal(t, "solo", f.engine.Theme().Name)
	require.Equal(t, "solo", f.sink.Get(themes.AttrTheme))
}
