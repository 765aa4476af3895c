package cli

import (
	"fmt"

	"github.com/dsatrack/dsatrack/internal/config"
	"github.com/dsatrack/dsatrack/internal/doctor"
	"github.com/spf13/cobra"
)

var doctorFix bool

func init() {
	doctorCmd.Flags().BoolVar(&doctorFix, "fix", false, "Create missing topic folders and the solution template")
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Health check for the practice workspace",
	Long:  `Check the topic table, topic folders, solution template and README index.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			// A broken topic file is itself something doctor reports on.
			ws = &workspace{settings: config.Current()}
		}

		sum := doctor.Run(cmd.OutOrStdout(), doctor.Options{
			Fs:       ws.fs,
			Settings: ws.settings,
			Fix:      doctorFix,
		})

		fmt.Fprintf(cmd.OutOrStdout(), "\n%d ok, %d warnings, %d missing, %d failed", sum.OK, sum.Warn, sum.Miss, sum.Fail)
		if sum.Fixed > 0 {
			fmt.Fprintf(cmd.OutOrStdout(), ", %d fixed", sum.Fixed)
		}
		fmt.Fprintln(cmd.OutOrStdout())
		return nil
	},
}
