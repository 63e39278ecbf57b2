package cmd

import (
	"fmt"
	"strings"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/internal/ui"
	"github.com/spf13/cobra"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show <task_ref>",
	Short: "Show one task in detail",
	Long: `Show a task's full details, including its instructions, submission
and feedback. The task reference may be the numeric id or the opaque id.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		err := withSession(func(m *cycle.Manager) (bool, error) {
			task, err := m.Task(args[0])
			if err != nil {
				return false, err
			}

			fmt.Println(ui.StyleTitle.Render(fmt.Sprintf("#%d %s", task.NumID, task.Name)))
			fmt.Printf("ID:           %s\n", task.ID)
			fmt.Printf("Type:         %s\n", task.Type)
			fmt.Printf("Price:        $%.2f\n", task.Price)
			if task.Duration > 0 {
				fmt.Printf("Duration:     %d min\n", task.Duration)
			}
			if task.Topic != "" {
				fmt.Printf("Topic:        %s\n", task.Topic)
			}
			if len(task.AcceptedFormats) > 0 {
				fmt.Printf("Formats:      %s\n", strings.Join(task.AcceptedFormats, ", "))
			}
			if len(task.RequiredSkills) > 0 {
				fmt.Printf("Skills:       %s\n", strings.Join(task.RequiredSkills, ", "))
			}
			fmt.Printf("Status:       %s\n", ui.TaskStatus(task))
			if task.Locked && task.DependsOn != "" {
				fmt.Printf("Unlocked by:  task %s\n", task.DependsOn)
			}
			if task.Description != "" {
				fmt.Printf("\n%s\n", task.Description)
			}
			if task.Instructions != "" {
				fmt.Printf("\n%s\n%s\n", ui.StyleSectionTitle.Render("Instructions"), task.Instructions)
			}
			if task.Submission != nil {
				fmt.Printf("\n%s\n%s (%s)\n", ui.StyleSectionTitle.Render("Submission"), task.Submission.Content, task.Submission.Kind)
			}
			if task.Feedback != nil {
				fmt.Printf("\n%s\nRating %d/5", ui.StyleSectionTitle.Render("Feedback"), task.Feedback.Rating)
				if task.Feedback.Comment != "" {
					fmt.Printf(": %s", task.Feedback.Comment)
				}
				fmt.Println()
			}
			return false, nil
		})
		if err != nil {
			HandleFatalError(fmt.Sprintf("Error: Could not find task '%s'.", args[0]), err)
		}
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
