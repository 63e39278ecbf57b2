package cmd

import (
	"fmt"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/internal/ui"
	"github.com/spf13/cobra"
)

// usersCmd represents the users command
var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "List registered participants",
	Run: func(cmd *cobra.Command, args []string) {
		err := withSession(func(m *cycle.Manager) (bool, error) {
			users := m.State().Users
			if len(users) == 0 {
				fmt.Println("No participants registered yet.")
				fmt.Println("Register one with: taskcycle signup")
				return false, nil
			}

			table := &ui.Table{
				Headers: []string{"Username", "Country", "Language"},
			}
			for _, u := range users {
				table.Rows = append(table.Rows, []string{
					u.Username, u.Country, string(u.MainLanguage),
				})
			}
			fmt.Print(table.Render())
			return false, nil
		})
		if err != nil {
			HandleFatalError("Error: Could not list participants.", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(usersCmd)
}
