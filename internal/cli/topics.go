package cli

import (
	"fmt"

	"github.com/dsatrack/dsatrack/internal/topics"
	"github.com/spf13/cobra"
)

var topicsYAML bool

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "Show the active topic table",
	Long: `Print the topic numbers and folders questions are filed under.

With --yaml the table is printed in the format accepted by --topics, which is
a convenient starting point for a custom table.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ws, err := loadWorkspace()
		if err != nil {
			return err
		}

		w := cmd.OutOrStdout()
		if topicsYAML {
			out, err := topics.Marshal(ws.table)
			if err != nil {
				return err
			}
			fmt.Fprint(w, string(out))
			return nil
		}

		for _, tp := range ws.table.All() {
			fmt.Fprintf(w, "  %2d: %-24s %s\n", tp.Number, tp.Folder, tp.Title)
		}
		return nil
	},
}

func init() {
	topicsCmd.Flags().BoolVar(&topicsYAML, "yaml", false, "Print the table as a topic file")
	rootCmd.AddCommand(topicsCmd)
}
