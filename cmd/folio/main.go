// SPDX-License-Identifier: MIT
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Folio - themed portfolio server",
	Long: `Folio serves a portfolio site whose color themes are checked for
WCAG contrast. Every visitor picks a theme and a light, dark or system
color mode; derived colors are adjusted until text stays readable.`,
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
