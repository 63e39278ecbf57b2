package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/models"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	feedbackGeneral       string
	feedbackGeneralRating int
	feedbackSkipRatings   bool
)

// feedbackCmd represents the feedback command
var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Rate the completed tasks and close the cycle",
	Long: `Collect feedback for the completed tasks and archive the cycle.

Each completed task without feedback is rated interactively (1-5 plus an
optional comment), then the cycle is archived: its task list moves to the
history, the cycle counter advances, and the next catalog is installed
according to the session's entry point. On cycles that consult the
recommendation service, the next catalog is locked down to the first
three recommended tasks.`,
	Example: `  # Rate tasks interactively, then close the cycle
  taskcycle feedback

  # Close the cycle with only a general comment
  taskcycle feedback --skip-ratings --general "fun tasks" --general-rating 4`,
	Run: func(cmd *cobra.Command, args []string) {
		err := withSession(func(m *cycle.Manager) (bool, error) {
			if m.CompletedCount() < 3 {
				fmt.Printf("Feedback is collected after three tasks; %d completed so far.\n", m.CompletedCount())
				return false, nil
			}

			if !feedbackSkipRatings {
				if err := collectTaskRatings(m); err != nil {
					if err == promptui.ErrInterrupt {
						fmt.Println("Feedback cancelled. Nothing was saved.")
						return false, nil
					}
					return false, err
				}
			}

			general := &models.Feedback{Comment: feedbackGeneral, Rating: feedbackGeneralRating}
			if general.Rating == 0 {
				rating, comment, err := promptGeneralFeedback()
				if err != nil {
					if err == promptui.ErrInterrupt {
						fmt.Println("Feedback cancelled. Nothing was saved.")
						return false, nil
					}
					return false, err
				}
				general = &models.Feedback{Comment: comment, Rating: rating}
			}

			// The service is consulted before archiving; its ranking decides
			// which tasks of the next catalog start unlocked.
			var rec *models.RecommendationResult
			if cycle.ConsultRecommender(m.State().CurrentCycle) {
				post := cycle.PostFeedbackRoute(m.State().CurrentCycle+1, m.State().EntryPoint)
				if candidates := catalogFor(post.Install); candidates != nil {
					result, err := fetchRecommendations(context.Background(), m, candidates)
					if err != nil {
						// Recommendations are best-effort; the cycle closes
						// without them.
						LogError("recommendation service call failed", err)
						PrintError("Warning: recommendation service unavailable, continuing without recommendations.", err)
					} else {
						rec = result
					}
				}
			}

			m.ArchiveCycle(general)

			post := cycle.PostFeedbackRoute(m.State().CurrentCycle, m.State().EntryPoint)
			if defs := catalogFor(post.Install); defs != nil {
				m.ReplaceCatalog(defs, rec)
			}
			if post.RestartCycle {
				m.SetCurrentCycle(1)
			}

			fmt.Printf("Cycle archived. Thanks for your feedback!\n")
			switch post.Route {
			case cycle.RouteRecommender1, cycle.RouteRecommender2:
				fmt.Printf("\nThe advanced catalog is installed. Continue with: taskcycle recommend\n")
			default:
				fmt.Printf("\nThe session is complete. Save your results with: taskcycle export\n")
			}
			return true, nil
		})
		if err != nil {
			HandleFatalError("Error: Could not record the cycle feedback.", err)
		}
	},
}

// collectTaskRatings prompts for a rating and comment on every completed
// task that has none yet.
func collectTaskRatings(m *cycle.Manager) error {
	for _, t := range m.Tasks() {
		if !t.Completed || t.Feedback != nil {
			continue
		}

		ratingPrompt := promptui.Prompt{
			Label: fmt.Sprintf("Rating for '%s' (1-5)", t.Name),
			Validate: func(input string) error {
				n, err := strconv.Atoi(input)
				if err != nil || n < 1 || n > 5 {
					return fmt.Errorf("rating must be a number between 1 and 5")
				}
				return nil
			},
		}
		ratingStr, err := ratingPrompt.Run()
		if err != nil {
			return err
		}
		rating, _ := strconv.Atoi(ratingStr)

		commentPrompt := promptui.Prompt{
			Label: fmt.Sprintf("Comment for '%s' (optional)", t.Name),
		}
		comment, err := commentPrompt.Run()
		if err != nil {
			return err
		}

		if err := m.AttachFeedback(t.ID, models.Feedback{Comment: comment, Rating: rating}); err != nil {
			return err
		}
	}
	return nil
}

// promptGeneralFeedback asks for the cycle-wide rating and comment.
func promptGeneralFeedback() (int, string, error) {
	ratingPrompt := promptui.Prompt{
		Label: "Overall rating for this cycle (1-5)",
		Validate: func(input string) error {
			n, err := strconv.Atoi(input)
			if err != nil || n < 1 || n > 5 {
				return fmt.Errorf("rating must be a number between 1 and 5")
			}
			return nil
		},
	}
	ratingStr, err := ratingPrompt.Run()
	if err != nil {
		return 0, "", err
	}
	rating, _ := strconv.Atoi(ratingStr)

	commentPrompt := promptui.Prompt{
		Label: "Anything to add? (optional)",
	}
	comment, err := commentPrompt.Run()
	if err != nil {
		return 0, "", err
	}
	return rating, comment, nil
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
	feedbackCmd.Flags().StringVar(&feedbackGeneral, "general", "", "general comment for the whole cycle")
	feedbackCmd.Flags().IntVar(&feedbackGeneralRating, "general-rating", 0, "general rating 1-5 for the whole cycle")
	feedbackCmd.Flags().BoolVar(&feedbackSkipRatings, "skip-ratings", false, "skip the per-task rating prompts")
}
