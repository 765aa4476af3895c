package cli

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"github.com/dsatrack/dsatrack/internal/branding"
	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/dsatrack/dsatrack/internal/scaffold"
	"github.com/dsatrack/dsatrack/internal/topics"
	"github.com/dsatrack/dsatrack/internal/ui"
	"github.com/spf13/cobra"
)

var errTopicNotInteger = errors.New("Topic number must be an integer")

var (
	createReadme     bool
	createDifficulty string
	createKeyPoints  []string
	createEdgeCases  []string
)

func init() {
	f := rootCmd.Flags()
	f.BoolVar(&createReadme, "readme", false, "Also add the question to the README index")
	f.StringVar(&createDifficulty, "difficulty", "", "Difficulty recorded in the README (default: config 'difficulty')")
	f.StringArrayVar(&createKeyPoints, "key-point", nil, "Key point recorded in the README (repeatable)")
	f.StringArrayVar(&createEdgeCases, "edge-case", nil, "Edge case recorded in the README (repeatable)")
}

func runCreate(cmd *cobra.Command, args []string) error {
	out := ui.NewPrinter(cmd.OutOrStdout())

	if len(args) < 2 {
		table := topics.Default()
		if ws, err := loadWorkspace(); err == nil {
			table = ws.table
		} else {
			slog.Debug("topic table unavailable, listing built-in topics", "error", err)
		}
		printUsage(out, table)
		return ErrUsage
	}

	topicNum, err := strconv.Atoi(args[0])
	if err != nil {
		return errTopicNotInteger
	}
	name := strings.Join(args[1:], " ")

	ws, err := loadWorkspace()
	if err != nil {
		return err
	}

	sc := scaffold.New(scaffold.Config{
		Topics:       ws.table,
		Fs:           ws.fs,
		Root:         ws.settings.Root,
		TemplatePath: ws.settings.Template,
		Logger:       slog.Default(),
	})

	result, err := sc.CreateQuestion(topicNum, name)
	if err != nil {
		return err
	}

	out.Success("Created folder: %s", result.Folder)
	if result.SolutionWritten() {
		out.Success("Created solution template: %s", result.SolutionPath)
	}
	for _, w := range result.Warnings {
		out.Warn("%s", w)
	}

	if createReadme {
		addToReadme(out, ws, result)
	}

	out.Println()
	out.Success("Question folder created successfully!")
	out.Println()
	out.Println("Next steps:")
	out.Printf("1. Edit %s with your solution\n", result.SolutionPath)
	out.Println("2. Update README.md to add this question to the topic section")
	out.Println("3. Update progress.md with today's date")
	return nil
}

// addToReadme records the new question in the README index. Failures are
// warnings: the question folder already exists at this point.
func addToReadme(out *ui.Printer, ws *workspace, result *scaffold.Result) {
	difficulty := createDifficulty
	if difficulty == "" {
		difficulty = ws.settings.Difficulty
	}
	path := ws.settings.Resolve(ws.settings.Readme)

	err := readme.AddToFile(ws.fs, path, ws.table, result.Topic.Number, readme.Entry{
		Title:      result.Name,
		Difficulty: difficulty,
		KeyPoints:  createKeyPoints,
		EdgeCases:  createEdgeCases,
	})
	if err != nil {
		slog.Debug("README update failed", "error", err)
		out.Warn("README not updated: %v", err)
		return
	}
	out.Success("Added to %s under %s", path, result.Topic.Title)
}

func printUsage(out *ui.Printer, table *topics.Table) {
	out.Printf("Usage: %s <topic_number> <question_name>\n", branding.CLIName())
	out.Println()
	out.Heading("Topics:")
	for _, tp := range table.All() {
		out.Printf("  %d: %s\n", tp.Number, tp.Folder)
	}
}
