package cli

import (
	"github.com/dsatrack/dsatrack/internal/scaffold"
	"github.com/dsatrack/dsatrack/internal/ui"
	"github.com/spf13/cobra"
)

var templateForce bool

func init() {
	templateInitCmd.Flags().BoolVar(&templateForce, "force", false, "Replace an existing template")
	templateCmd.AddCommand(templateInitCmd)
	templateCmd.AddCommand(templateShowCmd)
	rootCmd.AddCommand(templateCmd)
}

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the solution template",
}

var templateInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the built-in solution template into the workspace",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}

		sc := scaffold.New(scaffold.Config{
			Topics:       ws.table,
			Fs:           ws.fs,
			Root:         ws.settings.Root,
			TemplatePath: ws.settings.Template,
		})
		path, err := sc.InitTemplate(templateForce)
		if err != nil {
			return err
		}
		ui.NewPrinter(cmd.OutOrStdout()).Success("Created template: %s", path)
		return nil
	},
}

var templateShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the built-in solution template",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(scaffold.DefaultTemplate())
		return err
	},
}
