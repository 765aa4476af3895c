package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/spf13/cobra"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const listSummary = "%d questions, %d completed"

func init() {
	_ = message.Set(language.English, listSummary,
		plural.Selectf(1, "%d",
			"=1", "%[1]d question, %[2]d completed",
			"other", "%[1]d questions, %[2]d completed",
		))
}

var (
	listTopic int
	listJSON  bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List questions recorded in the README",
	Long:  `Parse the README question index and list questions per topic.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().IntVar(&listTopic, "topic", 0, "Only list questions of this topic number")
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	if listTopic != 0 {
		if _, ok := ws.table.Lookup(listTopic); !ok {
			lo, hi := ws.table.Range()
			return fmt.Errorf("invalid topic number %d: must be between %d-%d", listTopic, lo, hi)
		}
	}

	idx, err := readme.Load(ws.fs, ws.settings.Resolve(ws.settings.Readme), ws.table)
	if err != nil {
		return err
	}

	questions := idx.Questions
	if listTopic != 0 {
		questions = idx.ByTopic(listTopic)
	}

	w := cmd.OutOrStdout()
	if listJSON {
		if questions == nil {
			questions = []readme.Question{}
		}
		out, err := json.MarshalIndent(questions, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling questions: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	if len(questions) == 0 {
		fmt.Fprintln(w, "No questions recorded yet.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOPIC\t#\tTITLE\tDIFFICULTY\tDONE")
	done := 0
	for _, q := range questions {
		topic := "-"
		if tp, ok := ws.table.Lookup(q.Topic); ok {
			topic = tp.Title
		}
		mark := " "
		if q.Completed {
			mark = "x"
			done++
		}
		fmt.Fprintf(tw, "%s\t%d\t%s\t%s\t[%s]\n", topic, q.Number, q.Title, q.Difficulty, mark)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, summaryLine(len(questions), done))
	return nil
}

// summaryLine renders the question count with English plural rules.
func summaryLine(total, done int) string {
	return message.NewPrinter(language.English).Sprintf(listSummary, total, done)
}
