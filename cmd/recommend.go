package cmd

import (
	"context"
	"fmt"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/internal/ui"
	"github.com/cycleworks/taskcycle/models"
	"github.com/spf13/cobra"
)

var recommendApply bool

// recommendCmd represents the recommend command
var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Fetch recommendations from the external service",
	Long: `Ask the recommendation service to rank the advanced catalog against
the participant's completed tasks and skills, and print the result.

With --apply, the advanced catalog is installed as the active task list
with only the first three recommended tasks unlocked.`,
	Example: `  # Preview the ranking
  taskcycle recommend

  # Install the recommended catalog
  taskcycle recommend --apply`,
	Run: func(cmd *cobra.Command, args []string) {
		err := withSession(func(m *cycle.Manager) (bool, error) {
			candidates := models.AdvancedCatalog()
			result, err := fetchRecommendations(context.Background(), m, candidates)
			if err != nil {
				return false, err
			}
			if result == nil {
				fmt.Println("No recommendation service configured.")
				fmt.Println("Set recommender.url in your config or TASKCYCLE_RECOMMENDER_URL.")
				return false, nil
			}

			printRecommendations(result)

			if !recommendApply {
				return false, nil
			}

			m.ReplaceCatalog(candidates, result)
			fmt.Println("\nAdvanced catalog installed. See it with: taskcycle list")
			return true, nil
		})
		if err != nil {
			HandleFatalError("Error: Could not fetch recommendations.", err)
		}
	},
}

func printRecommendations(result *models.RecommendationResult) {
	if len(result.Recommended) == 0 {
		fmt.Println("The service returned no recommendations.")
		return
	}

	table := &ui.Table{
		Headers: []string{"#", "Score", "Type", "$/h", "Fair", "Top feature"},
	}
	for _, r := range result.Recommended {
		fair := "yes"
		if !r.IsFair {
			fair = "no"
		}
		table.Rows = append(table.Rows, []string{
			fmt.Sprintf("%d", r.Task),
			fmt.Sprintf("%.2f", r.Score),
			r.Type,
			fmt.Sprintf("%.2f", r.PricePerHour),
			fair,
			r.TopFeature,
		})
	}
	fmt.Println(ui.StyleSectionTitle.Render("Recommended"))
	fmt.Print(table.Render())

	if len(result.Blocked) > 0 {
		var blocked []string
		for _, r := range result.Blocked {
			blocked = append(blocked, fmt.Sprintf("#%d", r.Task))
		}
		fmt.Printf("\n%s %v\n", ui.StyleSubtle.Render("Held back by the fairness filter:"), blocked)
	}
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().BoolVar(&recommendApply, "apply", false, "install the advanced catalog with the recommendation locks")
}
