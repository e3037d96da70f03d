package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/folio/internal/db"
)

var visitorCmd = &cobra.Command{
	Use:   "visitor",
	Short: "Manage stored visitor selections",
}

var visitorListCmd = &cobra.Command{
	Use:   "list",
	Short: "List visitors with a stored theme selection",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		visitors, err := db.ListVisitors(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing visitors: %v\n", err)
			os.Exit(1)
		}

		if len(visitors) == 0 {
			fmt.Println("No visitors found")
			return
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "VISITOR\tTHEME\tMODE\tUPDATED")
		for _, v := range visitors {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", v.VisitorID, v.Theme, v.Mode, v.UpdatedAt.Format("2006-01-02 15:04"))
		}
		w.Flush()
	},
}

var visitorForgetCmd = &cobra.Command{
	Use:   "forget <visitor-id>",
	Short: "Delete a visitor's stored selection",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if err := db.DeleteVisitor(db.GetDB(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Forgot visitor %s\n", args[0])
	},
}

func init() {
	visitorCmd.AddCommand(visitorListCmd)
	visitorCmd.AddCommand(visitorForgetCmd)
	rootCmd.AddCommand(visitorCmd)
}
