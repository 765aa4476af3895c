package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dsatrack/dsatrack/internal/export"
	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/dsatrack/dsatrack/internal/ui"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <file.xlsx>",
	Short: "Export the README question index to a spreadsheet",
	Long: `Write an Excel workbook with a Questions sheet (one row per question) and a
Topics sheet (question and completion counts per topic).

Example:
  dsa export progress.xlsx`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		if !strings.EqualFold(filepath.Ext(path), ".xlsx") {
			return fmt.Errorf("export file %q must end in .xlsx", path)
		}

		ws, err := loadWorkspace()
		if err != nil {
			return err
		}
		idx, err := readme.Load(ws.fs, ws.settings.Resolve(ws.settings.Readme), ws.table)
		if err != nil {
			return err
		}

		if err := export.WriteFile(path, idx); err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).Success("Exported %d questions to %s", len(idx.Questions), path)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
