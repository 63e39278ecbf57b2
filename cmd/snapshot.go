package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// backupCmd represents the backup command
var backupCmd = &cobra.Command{
	Use:   "backup <destination>",
	Short: "Copy the session snapshot to a backup file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stateStore, err := GetStore()
		if err != nil {
			HandleFatalError("Error: Could not initialize the state store.", err)
		}
		defer func() { _ = stateStore.Close() }()

		if err := stateStore.Backup(args[0]); err != nil {
			HandleFatalError(fmt.Sprintf("Error: Could not back up the snapshot to '%s'.", args[0]), err)
		}
		fmt.Printf("Snapshot backed up to %s\n", args[0])
	},
}

// restoreCmd represents the restore command
var restoreCmd = &cobra.Command{
	Use:   "restore <source>",
	Short: "Replace the session snapshot with a backup file",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		stateStore, err := GetStore()
		if err != nil {
			HandleFatalError("Error: Could not initialize the state store.", err)
		}
		defer func() { _ = stateStore.Close() }()

		if err := stateStore.Restore(args[0]); err != nil {
			HandleFatalError(fmt.Sprintf("Error: Could not restore the snapshot from '%s'.", args[0]), err)
		}
		fmt.Printf("Snapshot restored from %s\n", args[0])
	},
}

func init() {
	rootCmd.AddCommand(backupCmd)
	rootCmd.AddCommand(restoreCmd)
}
