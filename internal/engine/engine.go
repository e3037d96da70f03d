// Package engine owns the theme selection for one session: it resolves the
// selection against the OS preference, pushes the derived palette to a
// StyleSink and persists the selection.
package engine

import (
	"fmt"

	"github.com/rs/zerolog"
	"github.com/thatcatcamp/folio/internal/themes"
)

// Engine is not safe for concurrent use. The owning session is the single
// writer; preference notifications must arrive on the same logical thread.
type Engine struct {
	logger   zerolog.Logger
	registry *themes.Registry
	store    Store
	sink     StyleSink
	prefs    PreferenceSource

	defaultTheme string
	defaultMode  themes.ColorMode

	themeName string
	colorMode themes.ColorMode
	system    themes.ColorMode
	palette   *themes.Palette

	unsubscribe func()
	started     bool
	closed      bool
}

// Option configures the Engine.
type Option func(*Engine)

// WithLogger sets the logger used for selection warnings.
func WithLogger(logger zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// WithRegistry replaces the built-in theme registry.
func WithRegistry(reg *themes.Registry) Option {
	return func(e *Engine) {
		e.registry = reg
	}
}

// WithDefaults sets the fallback selection. Values the registry does not
// recognise are ignored in favour of the compiled defaults.
func WithDefaults(theme string, mode themes.ColorMode) Option {
	return func(e *Engine) {
		e.defaultTheme = theme
		e.defaultMode = mode
	}
}

// New creates an engine. Call Start before reading state.
func New(store Store, sink StyleSink, prefs PreferenceSource, opts ...Option) *Engine {
	e := &Engine{
		logger:       zerolog.Nop(),
		registry:     themes.Builtin(),
		store:        store,
		sink:         sink,
		prefs:        prefs,
		defaultTheme: themes.DefaultTheme,
		defaultMode:  themes.DefaultMode,
	}
	for _, opt := range opts {
		opt(e)
	}

	if !e.registry.Has(e.defaultTheme) {
		e.logger.Warn().Str("theme", e.defaultTheme).Msg("configured default theme is not registered")
		e.defaultTheme = themes.DefaultTheme
		if !e.registry.Has(e.defaultTheme) {
			e.defaultTheme = e.registry.Names()[0]
		}
	}
	if _, ok := themes.ParseColorMode(string(e.defaultMode)); !ok {
		e.logger.Warn().Str("mode", string(e.defaultMode)).Msg("configured default mode is invalid")
		e.defaultMode = themes.DefaultMode
	}
	return e
}

// Start seeds the selection from params, then the store, then defaults,
// subscribes to preference changes and applies once. Valid URL values are
// written back to the store immediately.
func (e *Engine) Start(params Params) {
	if e.started {
		return
	}
	e.started = true

	e.themeName = e.initialTheme(params.Theme)
	e.colorMode = e.initialMode(params.Mode)
	e.system = e.prefs.Current()
	e.unsubscribe = e.prefs.Subscribe(e.onPreference)

	e.apply()
}

func (e *Engine) initialTheme(fromURL string) string {
	if fromURL != "" {
		if e.registry.Has(fromURL) {
			e.persist(KeyThemeName, fromURL)
			return fromURL
		}
		e.logger.Warn().Str("theme", fromURL).Msg("ignoring unknown theme from URL")
	}
	if stored, ok := e.store.Get(KeyThemeName); ok {
		if e.registry.Has(stored) {
			return stored
		}
		e.logger.Warn().Str("theme", stored).Msg("ignoring unknown stored theme")
	}
	return e.defaultTheme
}

func (e *Engine) initialMode(fromURL string) themes.ColorMode {
	if fromURL != "" {
		if mode, ok := themes.ParseColorMode(fromURL); ok {
			e.persist(KeyColorMode, string(mode))
			return mode
		}
		e.logger.Warn().Str("mode", fromURL).Msg("ignoring invalid color mode from URL")
	}
	if stored, ok := e.store.Get(KeyColorMode); ok {
		if mode, ok := themes.ParseColorMode(stored); ok {
			return mode
		}
		e.logger.Warn().Str("mode", stored).Msg("ignoring invalid stored color mode")
	}
	return e.defaultMode
}

func (e *Engine) onPreference(mode themes.ColorMode) {
	if e.closed || !mode.IsResolved() || mode == e.system {
		return
	}
	e.system = mode
	e.apply()
}

// SetTheme switches to a registered theme. Unknown names leave the state
// untouched and return themes.ErrUnknownTheme.
func (e *Engine) SetTheme(name string) error {
	if !e.registry.Has(name) {
		e.logger.Warn().Str("theme", name).Msg("setTheme called with unknown theme")
		return fmt.Errorf("%w: %q", themes.ErrUnknownTheme, name)
	}
	e.themeName = name
	e.apply()
	return nil
}

// SetColorMode switches between dark, light and system. Anything else
// leaves the state untouched and returns themes.ErrInvalidMode.
func (e *Engine) SetColorMode(mode string) error {
	parsed, ok := themes.ParseColorMode(mode)
	if !ok {
		e.logger.Warn().Str("mode", mode).Msg("setColorMode called with invalid mode")
		return fmt.Errorf("%w: %q", themes.ErrInvalidMode, mode)
	}
	e.colorMode = parsed
	e.apply()
	return nil
}

func (e *Engine) apply() {
	if e.closed {
		return
	}
	palette, err := e.registry.Resolve(e.themeName, e.colorMode, e.system)
	if err != nil {
		// Start and the setters only admit registered values.
		e.logger.Error().Err(err).Msg("resolve palette")
		return
	}
	e.palette = palette
	e.sink.Apply(palette.Variables())

	e.persist(KeyThemeName, e.themeName)
	e.persist(KeyColorMode, string(e.colorMode))
}

func (e *Engine) persist(key, value string) {
	if err := e.store.Set(key, value); err != nil {
		e.logger.Warn().Err(err).Str("key", key).Msg("failed to persist selection")
	}
}

// Theme returns the selected theme.
func (e *Engine) Theme() *themes.Theme {
	return e.registry.Get(e.themeName)
}

// ColorMode returns the mode setting, which may be ModeSystem.
func (e *Engine) ColorMode() themes.ColorMode {
	return e.colorMode
}

// ResolvedMode returns the concrete light or dark mode in effect.
func (e *Engine) ResolvedMode() themes.ColorMode {
	return themes.EffectiveMode(e.colorMode, e.system)
}

// Palette returns the last applied palette.
func (e *Engine) Palette() *themes.Palette {
	return e.palette
}

// Close drops the preference subscription. Later notifications are ignored.
func (e *Engine) Close() {
	if e.closed {
		return
	}
	e.closed = true
	if e.unsubscribe != nil {
		e.unsubscribe()
	}
}
