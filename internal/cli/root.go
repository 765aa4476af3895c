package cli

import (
	"errors"
	"log/slog"

	"github.com/dsatrack/dsatrack/internal/branding"
	"github.com/dsatrack/dsatrack/internal/config"
	"github.com/dsatrack/dsatrack/internal/topics"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// ErrUsage is returned after usage text has been printed; callers should
// exit non-zero without printing anything further.
var ErrUsage = errors.New("usage")

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	flagRoot    string
	flagTopics  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " <topic_number> <question_name>",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates a folder for a new practice question under its topic and
renders solution.md from templates/solution_template.md.

Example:
  ` + branding.CLIName() + ` 1 Two Sum        creates 01-Arrays-Strings/Two-Sum/solution.md`,
	Args:              cobra.ArbitraryArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	RunE:              runCreate,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flagRoot, "root", "", "Workspace root (default: config 'root', else the current directory)")
	pf.StringVar(&flagTopics, "topics", "", "YAML topic table to use instead of the built-in one")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug details to stderr")
}

// setup loads configuration, lets flags override it and installs the logger.
func setup(cmd *cobra.Command, args []string) error {
	config.Load()

	pf := cmd.Root().PersistentFlags()
	if err := viper.BindPFlag(config.KeyRoot, pf.Lookup("root")); err != nil {
		return err
	}
	if err := viper.BindPFlag(config.KeyTopicsFile, pf.Lookup("topics")); err != nil {
		return err
	}

	level := slog.LevelWarn
	if flagVerbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
	slog.Debug("configuration loaded", "file", config.FilePath(), "root", config.Get(config.KeyRoot))
	return nil
}

// workspace bundles what most commands need.
type workspace struct {
	settings config.Settings
	fs       afero.Fs
	table    *topics.Table
}

func loadWorkspace() (*workspace, error) {
	s := config.Current()
	fsys := afero.NewOsFs()

	table, err := topics.Load(fsys, s.Resolve(s.TopicsFile))
	if err != nil {
		return nil, err
	}
	if s.TopicsFile != "" {
		slog.Debug("topic table loaded", "file", s.Resolve(s.TopicsFile), "topics", table.Len())
	}

	return &workspace{settings: s, fs: fsys, table: table}, nil
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}
