package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/thatcatcamp/folio/internal/backup"
	"github.com/thatcatcamp/folio/internal/config"
	"github.com/thatcatcamp/folio/internal/db"
)

var backupAssumeYes bool

var backupCmd = &cobra.Command{
	Use:   "backup",
	Short: "Manage preference backups",
	Long:  "Create, list and restore snapshots of stored visitor selections",
}

var backupCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Write a snapshot now",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		name, err := newBackupManager().CreateBackup(db.GetDB())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Backup written: %s\n", name)
	},
}

var backupListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available backups",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfig(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		backups, err := newBackupManager().ListBackups()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		if len(backups) == 0 {
			fmt.Println("No backups found")
			return
		}

		fmt.Println("Available backups:")
		for i, b := range backups {
			fmt.Printf("%d. %s (%s, %s)\n", i+1, b.Name, b.CreatedAt.Format("2006-01-02 15:04:05"), formatBytes(b.Size))
		}
	},
}

var backupRestoreCmd = &cobra.Command{
	Use:   "restore <filename>",
	Short: "Restore visitor selections from a backup",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := initSystemDB(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		filename := args[0]
		if !backupAssumeYes {
			fmt.Printf("WARNING: stored selections for visitors in '%s' will be overwritten.\n", filename)
			fmt.Print("Type 'yes' to confirm: ")

			var confirmation string
			fmt.Scanln(&confirmation)
			if confirmation != "yes" {
				fmt.Println("Restore cancelled.")
				return
			}
		}

		n, err := newBackupManager().RestoreBackup(db.GetDB(), filename)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Restored %d visitor(s) from %s\n", n, filename)
	},
}

func newBackupManager() *backup.BackupManager {
	return backup.NewBackupManager(config.GetString("backups.path"), config.GetInt("backups.keep"))
}

// formatBytes converts bytes to human-readable format
func formatBytes(bytes int64) string {
	units := []string{"B", "KB", "MB", "GB"}
	size := float64(bytes)

	for _, unit := range units {
		if size < 1024.0 {
			return fmt.Sprintf("%.2f %s", size, unit)
		}
		size /= 1024.0
	}

	return fmt.Sprintf("%.2f TB", size)
}

func init() {
	backupRestoreCmd.Flags().BoolVarP(&backupAssumeYes, "yes", "y", false, "skip the confirmation prompt")
	backupCmd.AddCommand(backupCreateCmd)
	backupCmd.AddCommand(backupListCmd)
	backupCmd.AddCommand(backupRestoreCmd)
	rootCmd.AddCommand(backupCmd)
}
