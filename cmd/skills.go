package cmd

import (
	"fmt"
	"strings"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/internal/ui"
	"github.com/cycleworks/taskcycle/models"
	"github.com/spf13/cobra"
)

var skillsSuggest bool

// skillsCmd represents the skills command
var skillsCmd = &cobra.Command{
	Use:   "skills [skill_id...]",
	Short: "Show or set the participant's skills",
	Long: `Show or set the skill selection used by the recommendation service.

Without arguments the current selection is printed. With skill ids as
arguments the selection is replaced. Use --suggest to list the skill
catalog participants can pick from.`,
	Example: `  # Show current selection
  taskcycle skills

  # Replace the selection
  taskcycle skills data_entry image_annotation

  # List the onboarding skill catalog
  taskcycle skills --suggest`,
	Run: func(cmd *cobra.Command, args []string) {
		if skillsSuggest {
			table := &ui.Table{
				Headers:  []string{"ID", "Title", "Description"},
				MaxWidth: 48,
			}
			for _, s := range models.SuggestedSkills() {
				table.Rows = append(table.Rows, []string{s.ID, s.Title, s.Description})
			}
			fmt.Print(table.Render())
			return
		}

		err := withSession(func(m *cycle.Manager) (bool, error) {
			if len(args) == 0 {
				skills := m.State().UserSkills
				if len(skills) == 0 {
					fmt.Println("No skills selected.")
					fmt.Println("See the catalog with: taskcycle skills --suggest")
				} else {
					fmt.Println(strings.Join(skills, ", "))
				}
				return false, nil
			}

			known := make(map[string]bool)
			for _, s := range models.SuggestedSkills() {
				known[s.ID] = true
			}
			for _, id := range args {
				if !known[id] {
					LogError(fmt.Sprintf("skill %q is not in the suggested catalog", id), nil)
				}
			}

			m.SetUserSkills(args)
			fmt.Printf("Skill selection updated: %s\n", strings.Join(args, ", "))
			return true, nil
		})
		if err != nil {
			HandleFatalError("Error: Could not update skills.", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(skillsCmd)
	skillsCmd.Flags().BoolVar(&skillsSuggest, "suggest", false, "list the suggested skill catalog")
}
