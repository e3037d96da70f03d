package main

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/folio/internal/themes"
)

var themesMode string

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "Inspect the built-in themes",
}

var themesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List themes with color swatches",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		listThemes(cmd.OutOrStdout(), themes.Builtin())
	},
}

var themesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Show a theme's resolved variables",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := resolveForCLI(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		showPalette(cmd.OutOrStdout(), p)
	},
}

var themesCSSCmd = &cobra.Command{
	Use:   "css <name>",
	Short: "Print a theme's stylesheet for static hosting",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		p, err := resolveForCLI(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprint(cmd.OutOrStdout(), themes.GenerateCSS(p.Variables()))
	},
}

// resolveForCLI resolves name in --mode. There is no OS preference here,
// so system reads as light.
func resolveForCLI(name string) (*themes.Palette, error) {
	mode, ok := themes.ParseColorMode(themesMode)
	if !ok {
		return nil, fmt.Errorf("%w: %q", themes.ErrInvalidMode, themesMode)
	}
	return themes.Builtin().Resolve(name, mode, "")
}

func listThemes(w io.Writer, reg *themes.Registry) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tLABEL\tLIGHT\tDARK")
	for _, t := range reg.List() {
		light := themes.Resolve(&t, themes.ModeLight)
		dark := themes.Resolve(&t, themes.ModeDark)
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n",
			t.Name,
			t.Label,
			swatch("Aa", light.TextPrimary, light.BgMain)+swatch(light.Colors.Primary, light.OnPrimary, light.Colors.Primary),
			swatch("Aa", dark.TextPrimary, dark.BgMain)+swatch(dark.Colors.Primary, dark.OnPrimary, dark.Colors.Primary),
		)
	}
	tw.Flush()
}

func showPalette(w io.Writer, p *themes.Palette) {
	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("%s (%s)", p.Theme, p.Mode)))

	vars := p.Variables()
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, name := range slices.Sorted(maps.Keys(vars)) {
		value := vars[name]
		sample := ""
		if strings.HasPrefix(value, "#") {
			sample = swatch("   ", "", value)
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", name, value, sample)
	}
	tw.Flush()

	fmt.Fprintln(w, faintStyle.Render(fmt.Sprintf(
		"accent-ink %.2f:1 on accent-surface, primary-ink %.2f:1 on bg-main",
		themes.ContrastRatio(p.AccentInk, p.AccentSurface),
		themes.ContrastRatio(p.PrimaryInk, p.BgMain),
	)))
}

func init() {
	for _, c := range []*cobra.Command{themesShowCmd, themesCSSCmd} {
		c.Flags().StringVar(&themesMode, "mode", "light", "color mode (light, dark or system)")
	}
	themesCmd.AddCommand(themesListCmd)
	themesCmd.AddCommand(themesShowCmd)
	themesCmd.AddCommand(themesCSSCmd)
	rootCmd.AddCommand(themesCmd)
}
