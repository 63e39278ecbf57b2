package cmd

import (
	"fmt"
	"strings"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/cycleworks/taskcycle/models"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var (
	signupUsername string
	signupCountry  string
	signupSex      string
	signupLanguage string
)

// signupCmd represents the signup command
var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Register a participant for the session",
	Long: `Register a participant profile for this session. Without flags the
command prompts for each field interactively. The participant list is
append-only; running signup again adds another profile.`,
	Example: `  # Interactive mode
  taskcycle signup

  # Non-interactive
  taskcycle signup --username ada --country uk --language english`,
	Run: func(cmd *cobra.Command, args []string) {
		user, err := collectSignup()
		if err != nil {
			if err == promptui.ErrInterrupt {
				fmt.Println("Signup cancelled.")
				return
			}
			HandleFatalError("Error: Could not collect the signup profile.", err)
		}

		err = withSession(func(m *cycle.Manager) (bool, error) {
			if err := m.AddUser(user); err != nil {
				return false, err
			}
			return true, nil
		})
		if err != nil {
			HandleFatalError("Error: Could not register the participant.", err)
		}

		fmt.Printf("Participant '%s' registered.\n", user.Username)
		fmt.Printf("\nNext steps:\n")
		fmt.Printf("   • Pick your skills:  taskcycle skills\n")
		fmt.Printf("   • See the tasks:     taskcycle list\n")
	},
}

// collectSignup builds a user profile from flags, prompting for anything
// not provided.
func collectSignup() (models.User, error) {
	user := models.User{
		Username:     signupUsername,
		Country:      signupCountry,
		Sex:          signupSex,
		MainLanguage: models.Language(strings.ToLower(signupLanguage)),
	}

	if user.Username == "" {
		prompt := promptui.Prompt{
			Label: "Username",
			Validate: func(input string) error {
				if len(strings.TrimSpace(input)) < 2 {
					return fmt.Errorf("username must be at least 2 characters")
				}
				return nil
			},
		}
		value, err := prompt.Run()
		if err != nil {
			return models.User{}, err
		}
		user.Username = strings.TrimSpace(value)
	}

	if user.Country == "" {
		prompt := promptui.Prompt{
			Label: "Country",
			Validate: func(input string) error {
				if len(strings.TrimSpace(input)) < 2 {
					return fmt.Errorf("country must be at least 2 characters")
				}
				return nil
			},
		}
		value, err := prompt.Run()
		if err != nil {
			return models.User{}, err
		}
		user.Country = strings.TrimSpace(value)
	}

	if user.Sex == "" {
		// Optional field; the original signup form offered exactly these
		// two labels, misspelling included.
		prompt := promptui.Select{
			Label: "Sex (optional)",
			Items: []string{"femenine", "masculine", "skip"},
		}
		_, value, err := prompt.Run()
		if err != nil {
			return models.User{}, err
		}
		if value != "skip" {
			user.Sex = value
		}
	}

	if user.MainLanguage == "" {
		languages := []models.Language{
			models.LangEnglish, models.LangFrench, models.LangSpanish,
			models.LangGerman, models.LangItalian, models.LangPortuguese,
			models.LangChinese, models.LangJapanese,
		}
		prompt := promptui.Select{
			Label: "Main language",
			Items: languages,
		}
		i, _, err := prompt.Run()
		if err != nil {
			return models.User{}, err
		}
		user.MainLanguage = languages[i]
	}

	return user, nil
}

func init() {
	rootCmd.AddCommand(signupCmd)
	signupCmd.Flags().StringVar(&signupUsername, "username", "", "participant username")
	signupCmd.Flags().StringVar(&signupCountry, "country", "", "participant country")
	signupCmd.Flags().StringVar(&signupSex, "sex", "", "participant sex (femenine|masculine)")
	signupCmd.Flags().StringVar(&signupLanguage, "language", "", "main language (english, french, ...)")
}
