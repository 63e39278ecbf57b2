package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/cycleworks/taskcycle/models"
	"github.com/cycleworks/taskcycle/store"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// cfgFile is the path to the configuration file.
	cfgFile string
	// verbose enables verbose output.
	verbose bool
	// ErrNoTasksFound is returned when an interactive selection is attempted but no tasks are available.
	ErrNoTasksFound = errors.New("no tasks found matching your criteria")
	// version is the application version.
	version = "0.3.0"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "taskcycle",
	Short: "TaskCycle runs a task-simulation survey session from the command line.",
	Long: `TaskCycle is the session driver for a task-simulation study.
Participants sign up, work through cycles of micro-tasks, rate what they
completed, and optionally receive a recommended task catalog from an
external service. The whole session state lives in one snapshot file.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			_ = cmd.Help()
			os.Exit(0)
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(InitConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.taskcycle.yaml or ./.taskcycle.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Bind persistent flags to Viper
	_ = viper.BindPFlag("config", rootCmd.PersistentFlags().Lookup("config"))
	_ = viper.BindPFlag("verbose", rootCmd.PersistentFlags().Lookup("verbose"))
}

// GetStateFilePath returns the full path to the session snapshot file
func GetStateFilePath() string {
	config := GetConfig()
	return filepath.Join(config.Project.RootDir, config.Data.File)
}

// GetStore initializes and returns the state store using the unified types.AppConfig.
func GetStore() (store.StateStore, error) {
	s := store.NewFileStateStore()
	config := GetConfig()

	stateFilePath := GetStateFilePath()

	err := s.Initialize(map[string]string{
		"dataFile":       stateFilePath,
		"dataFileFormat": config.Data.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize store at %s: %w", stateFilePath, err)
	}
	return s, nil
}

// selectTaskInteractive presents a prompt to the user to select a task from a list.
// It can be filtered using the provided filter function.
func selectTaskInteractive(tasks []models.Task, filterFn func(models.Task) bool, label string) (models.Task, error) {
	var filtered []models.Task
	for _, t := range tasks {
		if filterFn == nil || filterFn(t) {
			filtered = append(filtered, t)
		}
	}

	if len(filtered) == 0 {
		return models.Task{}, ErrNoTasksFound
	}

	templates := &promptui.SelectTemplates{
		Label:    "{{ . }}?",
		Active:   `> {{ .Name | cyan }} (#{{ .NumID }}, ${{ .Price }})`,
		Inactive: `  {{ .Name | faint }} (#{{ .NumID }}, ${{ .Price }})`,
		Selected: `{{ "✔" | green }} {{ .Name | faint }} (#{{ .NumID }})`,
		Details: `
--------- Task Details ----------
{{ "ID:\t" | faint }} {{ .ID }}
{{ "Name:\t" | faint }} {{ .Name }}
{{ "Description:\t" | faint }} {{ .Description }}
{{ "Type:\t" | faint }} {{ .Type }}
{{ "Price:\t" | faint }} ${{ .Price }}`,
	}

	searcher := func(input string, index int) bool {
		task := filtered[index]
		name := strings.ToLower(task.Name)
		id := strings.ToLower(task.ID)
		input = strings.ToLower(input)
		return strings.Contains(name, input) || strings.Contains(id, input)
	}

	prompt := promptui.Select{
		Label:     label,
		Items:     filtered,
		Templates: templates,
		Searcher:  searcher,
	}

	i, _, err := prompt.Run()
	if err != nil {
		return models.Task{}, err // Return error as is (includes promptui.ErrInterrupt)
	}

	return filtered[i], nil
}
