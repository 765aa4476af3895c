package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/spf13/cobra"
)

var (
	searchDifficulty string
	searchStatus     string
	searchJSON       bool
)

func init() {
	searchCmd.Flags().StringVar(&searchDifficulty, "difficulty", "", "Filter by difficulty (easy, medium, hard)")
	searchCmd.Flags().StringVar(&searchStatus, "status", "", "Filter by status (done, todo)")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(searchCmd)
}

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search questions in the README index",
	Long: `Search recorded questions by title, key points, edge cases and notes.

Without a query, all questions matching the filters are listed.

Examples:
  dsa search window
  dsa search --difficulty hard --status todo`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSearch,
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := ""
	if len(args) > 0 {
		query = args[0]
	}
	switch strings.ToLower(searchStatus) {
	case "", "done", "todo":
	default:
		return fmt.Errorf("invalid --status %q: must be done or todo", searchStatus)
	}

	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	idx, err := readme.Load(ws.fs, ws.settings.Resolve(ws.settings.Readme), ws.table)
	if err != nil {
		return err
	}

	var results []readme.Question
	for _, q := range idx.Questions {
		if matchesSearch(q, query, searchDifficulty, searchStatus) {
			results = append(results, q)
		}
	}

	w := cmd.OutOrStdout()
	if searchJSON {
		if results == nil {
			results = []readme.Question{}
		}
		out, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling results: %w", err)
		}
		fmt.Fprintln(w, string(out))
		return nil
	}

	if len(results) == 0 {
		fmt.Fprintln(w, "No matching questions found.")
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "TOPIC\tTITLE\tDIFFICULTY\tSOLUTION")
	for _, q := range results {
		topic := "-"
		if tp, ok := ws.table.Lookup(q.Topic); ok {
			topic = tp.Folder
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", topic, q.Title, q.Difficulty, q.SolutionPath)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(w, "\n%d question(s) found\n", len(results))
	return nil
}

// matchesSearch reports whether q passes every non-empty filter.
func matchesSearch(q readme.Question, query, difficulty, status string) bool {
	if difficulty != "" && !strings.EqualFold(q.Difficulty, difficulty) {
		return false
	}

	switch strings.ToLower(status) {
	case "done":
		if !q.Completed {
			return false
		}
	case "todo":
		if q.Completed {
			return false
		}
	}

	// Query is a case-insensitive substring of the title or any note.
	if query != "" {
		needle := strings.ToLower(query)
		if strings.Contains(strings.ToLower(q.Title), needle) {
			return true
		}
		return matchesAny(q.KeyPoints, needle) || matchesAny(q.EdgeCases, needle) || matchesAny(q.Notes, needle)
	}

	return true
}

func matchesAny(items []string, needle string) bool {
	for _, item := range items {
		if strings.Contains(strings.ToLower(item), needle) {
			return true
		}
	}
	return false
}
