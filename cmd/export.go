package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cycleworks/taskcycle/cycle"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var exportOutput string

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the session results to a JSON artifact",
	Long: `Write the full session to a JSON artifact: participants, the active
and archived task lists with their submissions, all collected feedback,
the skill selection and the cached recommendations. This is the file the
study collects from each participant at the end.`,
	Example: `  # Write to the configured export directory
  taskcycle export

  # Write to an explicit path
  taskcycle export -o results.json`,
	Run: func(cmd *cobra.Command, args []string) {
		err := withSession(func(m *cycle.Manager) (bool, error) {
			artifact := m.Export(version)

			path := exportOutput
			if path == "" {
				cfg := GetConfig()
				dir := cfg.Project.ExportDir
				if !filepath.IsAbs(dir) {
					dir = filepath.Join(cfg.Project.RootDir, dir)
				}
				if err := os.MkdirAll(dir, 0o755); err != nil {
					return false, fmt.Errorf("create export directory %s: %w", dir, err)
				}
				path = filepath.Join(dir, fmt.Sprintf("session-%s.json", uuid.NewString()))
			}

			data, err := json.MarshalIndent(artifact, "", "  ")
			if err != nil {
				return false, fmt.Errorf("marshal session export: %w", err)
			}
			if err := os.WriteFile(path, data, 0o644); err != nil {
				return false, fmt.Errorf("write export file %s: %w", path, err)
			}

			fmt.Printf("Session exported to %s\n", path)
			return false, nil
		})
		if err != nil {
			HandleFatalError("Error: Could not export the session.", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "output file path (default: a uuid-named file in the export directory)")
}
