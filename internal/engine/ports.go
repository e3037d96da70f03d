package engine

import "github.com/thatcatcamp/folio/internal/themes"

// Storage keys for the persisted selection.
const (
	KeyThemeName = "themeName"
	KeyColorMode = "colorMode"
)

// Store persists the selection as string key/value pairs.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// StyleSink receives the full variable set every time the palette is
// applied.
type StyleSink interface {
	Apply(vars map[string]string)
}

// PreferenceSource reports the OS color-scheme preference and notifies on
// change. Current returns "" when the preference is unknown.
type PreferenceSource interface {
	Current() themes.ColorMode
	Subscribe(fn func(themes.ColorMode)) (unsubscribe func())
}

// Params are the optional URL query values read once at start.
type Params struct {
	Theme string
	Mode  string
}
