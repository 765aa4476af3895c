package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/dsatrack/dsatrack/internal/ui"
	"github.com/spf13/cobra"
)

var noteCmd = &cobra.Command{
	Use:   "note <topic_number> <question_number> <text>",
	Short: "Add a note to a question in the README index",
	Long: `Append a note under a question's Notes bullet in the README, creating the
bullet when the question has none. Questions are numbered by their position
within the topic, as shown by 'dsa list --topic N'.

Example:
  dsa note 1 2 revisit the sorting key`,
	Args: cobra.MinimumNArgs(3),
	RunE: runNote,
}

func init() {
	rootCmd.AddCommand(noteCmd)
}

func runNote(cmd *cobra.Command, args []string) error {
	topicNum, err := strconv.Atoi(args[0])
	if err != nil {
		return errTopicNotInteger
	}
	question, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("question number %q must be an integer", args[1])
	}
	note := strings.Join(args[2:], " ")

	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	tp, ok := ws.table.Lookup(topicNum)
	if !ok {
		lo, hi := ws.table.Range()
		return fmt.Errorf("invalid topic number %d: must be between %d-%d", topicNum, lo, hi)
	}

	path := ws.settings.Resolve(ws.settings.Readme)
	if err := readme.AddNoteToFile(ws.fs, path, ws.table, topicNum, question, note); err != nil {
		return err
	}
	ui.NewPrinter(cmd.OutOrStdout()).Success("Added note to question %d of %s", question, tp.Title)
	return nil
}
