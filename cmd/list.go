package cmd

import (
	"fmt"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/internal/ui"
	"github.com/spf13/cobra"
)

var listArchived bool

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the active cycle's tasks",
	Long: `List the active cycle's task catalog with lock and completion status.
Recommended tasks are marked with a star. Use --archived to include the
task lists of archived cycles.`,
	Run: func(cmd *cobra.Command, args []string) {
		err := withSession(func(m *cycle.Manager) (bool, error) {
			state := m.State()

			fmt.Println(ui.CycleSummary(state.CurrentCycle, m.CompletedCount(), len(state.Tasks)))
			fmt.Println()
			fmt.Print(ui.TaskTable(m.Tasks(), recommendedNumIDs(m)))

			if cycle.ShouldCollectFeedback(m.CompletedCount(), state.CurrentCycle, cycle.RouteTasks) {
				fmt.Println()
				fmt.Println(ui.StyleWarning.Render("Three tasks completed. Continue with: taskcycle feedback"))
			}

			if listArchived {
				for i, old := range state.OldTaskCycles {
					fmt.Println()
					fmt.Println(ui.StyleSectionTitle.Render(fmt.Sprintf("Archived cycle %d", i+1)))
					fmt.Print(ui.TaskTable(old, nil))
				}
			}
			return false, nil
		})
		if err != nil {
			HandleFatalError("Error: Could not list tasks.", err)
		}
	},
}

// recommendedNumIDs extracts the numeric ids of the cached recommendation
// set for display marking.
func recommendedNumIDs(m *cycle.Manager) []int {
	var ids []int
	for _, r := range m.State().RecommendedTasks {
		ids = append(ids, r.Task)
	}
	return ids
}

func init() {
	rootCmd.AddCommand(listCmd)
	listCmd.Flags().BoolVar(&listArchived, "archived", false, "include archived cycles")
}
