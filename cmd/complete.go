package cmd

import (
	"fmt"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/models"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	completeFile string
	completeText string
)

// completeCmd represents the complete command
var completeCmd = &cobra.Command{
	Use:     "complete [task_ref]",
	Aliases: []string{"done", "d"},
	Short:   "Mark a task as completed",
	Long: `Mark a task as completed, attaching an optional submission. If task_ref
is provided, that task is completed directly. Otherwise, an interactive
list of open tasks is shown. Completing a task unlocks any task that
depends on it.`,
	Example: `  # Interactive mode
  taskcycle complete

  # Complete task 2 with a file submission
  taskcycle complete 2 --file recording.mp3

  # Complete task 5 with a text answer
  taskcycle complete 5 --text "blue, green, red"`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if completeFile != "" && completeText != "" {
			HandleFatalError("Error: --file and --text are mutually exclusive.", nil)
		}

		var sub *models.Submission
		if completeFile != "" {
			sub = &models.Submission{Content: completeFile, Kind: models.SubmissionFile}
		} else if completeText != "" {
			sub = &models.Submission{Content: completeText, Kind: models.SubmissionText}
		}

		err := withSession(func(m *cycle.Manager) (bool, error) {
			ref := ""
			if len(args) > 0 {
				ref = args[0]
			} else {
				openFilter := func(t models.Task) bool {
					return !t.Completed && !t.Locked
				}
				selected, err := selectTaskInteractive(m.Tasks(), openFilter, "Select task to complete")
				if err != nil {
					if err == promptui.ErrInterrupt {
						fmt.Println("Operation cancelled.")
						return false, nil
					}
					if err == ErrNoTasksFound {
						fmt.Println("No open tasks available to complete.")
						return false, nil
					}
					return false, err
				}
				ref = selected.ID
			}

			lockedBefore := lockedNumIDs(m)

			task, err := m.RecordCompletion(ref, sub)
			if err != nil {
				return false, err
			}

			fmt.Printf("🎉 Task '%s' (#%d) completed!\n", task.Name, task.NumID)
			for _, t := range m.Tasks() {
				if lockedBefore[t.NumID] && !t.Locked {
					fmt.Printf("🔓 Unlocked: '%s' (#%d)\n", t.Name, t.NumID)
				}
			}

			if cycle.ShouldCollectFeedback(m.CompletedCount(), m.State().CurrentCycle, cycle.RouteTasks) {
				fmt.Println("\nThree tasks completed. Continue with: taskcycle feedback")
			}
			return true, nil
		})
		if err != nil {
			HandleFatalError(fmt.Sprintf("Error: Could not complete task: %v", err), err)
		}
	},
}

// lockedNumIDs snapshots which tasks are locked, keyed by numeric id.
func lockedNumIDs(m *cycle.Manager) map[int]bool {
	locked := make(map[int]bool)
	for _, t := range m.Tasks() {
		if t.Locked {
			locked[t.NumID] = true
		}
	}
	return locked
}

func init() {
	rootCmd.AddCommand(completeCmd)
	completeCmd.Flags().StringVar(&completeFile, "file", "", "file submission to attach")
	completeCmd.Flags().StringVar(&completeText, "text", "", "text submission to attach")
}
