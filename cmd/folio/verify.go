package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/thatcatcamp/folio/internal/themes"
)

var (
	verifyMode string
	verifyMin  float64
)

var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Check every theme's text pairings for WCAG contrast",
	Long: `Resolves every built-in theme exactly as the server does and checks
each foreground/background pairing against the minimum contrast ratio.
Exits non-zero when any pairing falls short.`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		mode, ok := themes.ParseColorMode(verifyMode)
		if !ok || !mode.IsResolved() {
			fmt.Fprintf(os.Stderr, "Error: --mode must be light or dark, got %q\n", verifyMode)
			os.Exit(2)
		}

		failures := runVerify(cmd.OutOrStdout(), themes.Builtin(), mode, verifyMin)
		if len(failures) > 0 {
			os.Exit(1)
		}
	},
}

// runVerify prints a per-theme report followed by any failures and returns
// the failures.
func runVerify(w io.Writer, reg *themes.Registry, mode themes.ColorMode, minRatio float64) []themes.Failure {
	if minRatio <= 0 {
		minRatio = themes.MinContrast
	}
	failures := themes.Verify(reg, mode, minRatio)

	failed := make(map[string]int)
	for _, f := range failures {
		failed[f.Theme]++
	}

	fmt.Fprintln(w, titleStyle.Render(fmt.Sprintf("Contrast check: %d themes, %s mode, minimum %.1f:1", len(reg.Names()), mode, minRatio)))
	for _, t := range reg.List() {
		p := themes.Resolve(&t, mode)
		status := passStyle.Render("PASS")
		if n := failed[t.Name]; n > 0 {
			status = failStyle.Render(fmt.Sprintf("FAIL (%d)", n))
		}
		fmt.Fprintf(w, "  %-12s %s %s\n", t.Name, swatch("Aa", p.TextPrimary, p.BgMain), status)
	}

	if len(failures) == 0 {
		fmt.Fprintln(w, passStyle.Render("All pairings pass."))
		return nil
	}

	lines := []string{failStyle.Render(fmt.Sprintf("%d pairing(s) below %.1f:1", len(failures), minRatio))}
	for _, f := range failures {
		lines = append(lines, fmt.Sprintf("%s: %s %.2f:1 (%s on %s)",
			f.Theme, f.Pairing, f.Ratio, f.Foreground, f.Background))
	}
	fmt.Fprintln(w, boxStyle.BorderForeground(lipgloss.Color("196")).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)))
	return failures
}

func init() {
	verifyCmd.Flags().StringVar(&verifyMode, "mode", "light", "mode to resolve themes in (light or dark)")
	verifyCmd.Flags().Float64Var(&verifyMin, "min", themes.MinContrast, "minimum contrast ratio")
	rootCmd.AddCommand(verifyCmd)
}
