package cmd

import (
	"fmt"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/spf13/cobra"
)

// entryCmd represents the entry command
var entryCmd = &cobra.Command{
	Use:   "entry [tasks|recommender1|recommender2]",
	Short: "Show or set the session's entry point",
	Long: `Show or set which flow variant this session runs. The entry point
decides where the participant continues after the second cycle's
feedback: plain task-list sessions end, recommender sessions get the
advanced catalog and return to their recommender variant.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withSession(func(m *cycle.Manager) (bool, error) {
			if len(args) == 0 {
				entry := m.State().EntryPoint
				if entry == "" {
					fmt.Println("No entry point set (defaults to the plain task list).")
				} else {
					fmt.Println(entry)
				}
				return false, nil
			}

			if err := m.SetEntryPoint(cycle.EntryPoint(args[0])); err != nil {
				return false, err
			}
			fmt.Printf("Entry point set to '%s'.\n", args[0])
			return true, nil
		})
		if err != nil {
			msg := "Error: Could not read the entry point."
			if len(args) > 0 {
				msg = fmt.Sprintf("Error: Could not set entry point '%s'.", args[0])
			}
			HandleFatalError(msg, err)
		}
	},
}

func init() {
	rootCmd.AddCommand(entryCmd)
}
