package cmd

import (
	"fmt"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var resetYes bool

// resetCmd represents the reset command
var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restart the study from a clean slate",
	Long: `Restart the study. The cycle history, feedback history, skill
selection and recommendation cache are cleared, and every active task
loses its completion, submission and feedback. Registered participants
and the task catalog itself survive.`,
	Run: func(cmd *cobra.Command, args []string) {
		if !resetYes {
			prompt := promptui.Prompt{
				Label:     "This clears all progress and feedback. Continue",
				IsConfirm: true,
			}
			if _, err := prompt.Run(); err != nil {
				if err == promptui.ErrAbort || err == promptui.ErrInterrupt {
					fmt.Println("Reset cancelled.")
					return
				}
				HandleFatalError("Error: Could not get confirmation for the reset.", err)
			}
		}

		err := withSession(func(m *cycle.Manager) (bool, error) {
			m.ResetAll()
			return true, nil
		})
		if err != nil {
			HandleFatalError("Error: Could not reset the session.", err)
		}

		fmt.Println("Session reset. Participants and the task catalog were kept.")
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip the confirmation prompt")
}
