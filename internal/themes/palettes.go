package themes

import (
	"fmt"

	"github.com/samber/lo"
)

// Colors are the accent colors a theme shares across both modes.
type Colors struct {
	Primary      string
	PrimaryLight string
	PrimaryDark  string
	Accent       string
	AccentTeal   string
}

// ModeColors are the surface and text colors for one mode. Borders may be
// rgba() strings; everything else is #rrggbb.
type ModeColors struct {
	TextPrimary   string
	TextSecondary string
	TextMuted     string
	BgMain        string
	BgCard        string
	BgCardHover   string
	BorderSubtle  string
	BorderHover   string
}

// Theme is a named palette with light and dark surfaces.
type Theme struct {
	Name   string
	Label  string
	Colors Colors
	Dark   ModeColors
	Light  ModeColors
}

// ModeColors returns the color set for a resolved mode.
func (t *Theme) ModeColors(mode ColorMode) ModeColors {
	if mode == ModeDark {
		return t.Dark
	}
	return t.Light
}

const (
	DefaultTheme = "breezy"
	DefaultMode  = ModeSystem
)

// Registry is a read-only, insertion-ordered set of themes.
type Registry struct {
	order  []*Theme
	byName map[string]*Theme
}

// NewRegistry builds a registry. Names must be non-empty and unique.
func NewRegistry(themes ...Theme) (*Registry, error) {
	r := &Registry{byName: make(map[string]*Theme, len(themes))}
	for i := range themes {
		t := themes[i]
		if t.Name == "" {
			return nil, fmt.Errorf("theme at position %d has no name", i)
		}
		if _, dup := r.byName[t.Name]; dup {
			return nil, fmt.Errorf("duplicate theme name: %s", t.Name)
		}
		r.order = append(r.order, &t)
		r.byName[t.Name] = &t
	}
	return r, nil
}

// Get returns a copy of a theme by name, or nil.
func (r *Registry) Get(name string) *Theme {
	t, ok := r.byName[name]
	if !ok {
		return nil
	}
	c := *t
	return &c
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.byName[name]
	return ok
}

// List returns copies of all themes in definition order.
func (r *Registry) List() []Theme {
	return lo.Map(r.order, func(t *Theme, _ int) Theme { return *t })
}

// Names returns theme names in definition order.
func (r *Registry) Names() []string {
	return lo.Map(r.order, func(t *Theme, _ int) string { return t.Name })
}

var builtin = mustRegistry(
	Theme{
		Name:  "breezy",
		Label: "Breezy",
		Colors: Colors{
			Primary:      "#2b7a78",
			PrimaryLight: "#3aafa9",
			PrimaryDark:  "#17504e",
			Accent:       "#c9b037",
			AccentTeal:   "#3aafa9",
		},
		Dark: ModeColors{
			TextPrimary:   "#f2f4f3",
			TextSecondary: "#c5ccd1",
			TextMuted:     "#9aa5ad",
			BgMain:        "#0f1a1f",
			BgCard:        "#16242b",
			BgCardHover:   "#1d2f37",
			BorderSubtle:  "rgba(242, 244, 243, 0.08)",
			BorderHover:   "rgba(58, 175, 169, 0.45)",
		},
		Light: ModeColors{
			TextPrimary:   "#101820",
			TextSecondary: "#3a4651",
			TextMuted:     "#56626c",
			BgMain:        "#fdfcf8",
			BgCard:        "#ffffff",
			BgCardHover:   "#f4f2ea",
			BorderSubtle:  "rgba(16, 24, 32, 0.08)",
			BorderHover:   "rgba(43, 122, 120, 0.40)",
		},
	},
	Theme{
		Name:  "bosox",
		Label: "BoSox",
		Colors: Colors{
			Primary:      "#bd3039",
			PrimaryLight: "#d9545c",
			PrimaryDark:  "#8c1c24",
			Accent:       "#0c2340",
			AccentTeal:   "#4a7a8c",
		},
		Dark: ModeColors{
			TextPrimary:   "#f5f3f0",
			TextSecondary: "#cfcbc4",
			TextMuted:     "#a39e96",
			BgMain:        "#0b1420",
			BgCard:        "#121e2d",
			BgCardHover:   "#1a283a",
			BorderSubtle:  "rgba(245, 243, 240, 0.08)",
			BorderHover:   "rgba(189, 48, 57, 0.50)",
		},
		Light: ModeColors{
			TextPrimary:   "#14161a",
			TextSecondary: "#3b3f47",
			TextMuted:     "#5a5f68",
			BgMain:        "#fbfaf7",
			BgCard:        "#ffffff",
			BgCardHover:   "#f2efe9",
			BorderSubtle:  "rgba(20, 22, 26, 0.08)",
			BorderHover:   "rgba(189, 48, 57, 0.40)",
		},
	},
	Theme{
		Name:  "midnight",
		Label: "Midnight",
		Colors: Colors{
			Primary:      "#6c63ff",
			PrimaryLight: "#9d97ff",
			PrimaryDark:  "#4338ca",
			Accent:       "#f59e0b",
			AccentTeal:   "#2dd4bf",
		},
		Dark: ModeColors{
			TextPrimary:   "#eceefe",
			TextSecondary: "#c0c3dd",
			TextMuted:     "#9296b3",
			BgMain:        "#0b0c1a",
			BgCard:        "#131429",
			BgCardHover:   "#1b1d38",
			BorderSubtle:  "rgba(236, 238, 254, 0.08)",
			BorderHover:   "rgba(108, 99, 255, 0.50)",
		},
		Light: ModeColors{
			TextPrimary:   "#0f1024",
			TextSecondary: "#373a52",
			TextMuted:     "#585b73",
			BgMain:        "#f8f8fc",
			BgCard:        "#ffffff",
			BgCardHover:   "#eeeef8",
			BorderSubtle:  "rgba(15, 16, 36, 0.08)",
			BorderHover:   "rgba(108, 99, 255, 0.40)",
		},
	},
	Theme{
		Name:  "evergreen",
		Label: "Evergreen",
		Colors: Colors{
			Primary:      "#2f855a",
			PrimaryLight: "#48bb78",
			PrimaryDark:  "#1f5c3d",
			Accent:       "#dd6b20",
			AccentTeal:   "#319795",
		},
		Dark: ModeColors{
			TextPrimary:   "#eef5ef",
			TextSecondary: "#c3d3c6",
			TextMuted:     "#95a99a",
			BgMain:        "#0d1710",
			BgCard:        "#142118",
			BgCardHover:   "#1b2b20",
			BorderSubtle:  "rgba(238, 245, 239, 0.08)",
			BorderHover:   "rgba(72, 187, 120, 0.45)",
		},
		Light: ModeColors{
			TextPrimary:   "#112015",
			TextSecondary: "#34473a",
			TextMuted:     "#536357",
			BgMain:        "#f7faf5",
			BgCard:        "#ffffff",
			BgCardHover:   "#edf3ea",
			BorderSubtle:  "rgba(17, 32, 21, 0.08)",
			BorderHover:   "rgba(47, 133, 90, 0.40)",
		},
	},
	Theme{
		Name:  "sunset",
		Label: "Sunset",
		Colors: Colors{
			Primary:      "#e4572e",
			PrimaryLight: "#f08a6c",
			PrimaryDark:  "#a63a1b",
			Accent:       "#7b2cbf",
			AccentTeal:   "#2a9d8f",
		},
		Dark: ModeColors{
			TextPrimary:   "#fbefe9",
			TextSecondary: "#dcc8bf",
			TextMuted:     "#b09c93",
			BgMain:        "#1a0f0b",
			BgCard:        "#241612",
			BgCardHover:   "#2f1d18",
			BorderSubtle:  "rgba(251, 239, 233, 0.08)",
			BorderHover:   "rgba(228, 87, 46, 0.50)",
		},
		Light: ModeColors{
			TextPrimary:   "#1f1410",
			TextSecondary: "#4a3a33",
			TextMuted:     "#665650",
			BgMain:        "#fff9f4",
			BgCard:        "#ffffff",
			BgCardHover:   "#fbefe5",
			BorderSubtle:  "rgba(31, 20, 16, 0.08)",
			BorderHover:   "rgba(228, 87, 46, 0.40)",
		},
	},
	Theme{
		Name:  "harbor",
		Label: "Harbor",
		Colors: Colors{
			Primary:      "#1c7ed6",
			PrimaryLight: "#4dabf7",
			PrimaryDark:  "#1864ab",
			Accent:       "#12b886",
			AccentTeal:   "#15aabf",
		},
		Dark: ModeColors{
			TextPrimary:   "#e9f2fb",
			TextSecondary: "#bfd0e0",
			TextMuted:     "#8fa4b8",
			BgMain:        "#0a1622",
			BgCard:        "#10202f",
			BgCardHover:   "#172a3c",
			BorderSubtle:  "rgba(233, 242, 251, 0.08)",
			BorderHover:   "rgba(77, 171, 247, 0.45)",
		},
		Light: ModeColors{
			TextPrimary:   "#0b1a2a",
			TextSecondary: "#33475b",
			TextMuted:     "#52657a",
			BgMain:        "#f6f9fc",
			BgCard:        "#ffffff",
			BgCardHover:   "#ebf1f7",
			BorderSubtle:  "rgba(11, 26, 42, 0.08)",
			BorderHover:   "rgba(28, 126, 214, 0.40)",
		},
	},
)

// Builtin returns the compiled theme registry.
func Builtin() *Registry {
	return builtin
}

func mustRegistry(themes ...Theme) *Registry {
	r, err := NewRegistry(themes...)
	if err != nil {
		panic(err)
	}
	return r
}
