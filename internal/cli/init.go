package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/dsatrack/dsatrack/internal/branding"
	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/dsatrack/dsatrack/internal/scaffold"
	"github.com/dsatrack/dsatrack/internal/ui"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var initNoReadme bool

func init() {
	initCmd.Flags().BoolVar(&initNoReadme, "no-readme", false, "Do not create a README index")
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a practice workspace",
	Long: `Initialize the practice workspace in the configured root.

Creates one folder per topic, the solution template and a README index with a
section per topic. Existing files are left untouched, so init is safe to rerun.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	ws, err := loadWorkspace()
	if err != nil {
		return err
	}
	out := ui.NewPrinter(cmd.OutOrStdout())
	root := ws.settings.Root
	out.Printf("Initializing %s workspace in %s\n", branding.DisplayName(), root)

	created := 0
	for _, tp := range ws.table.All() {
		dir := filepath.Join(root, tp.Folder)
		exists, err := afero.DirExists(ws.fs, dir)
		if err != nil {
			return fmt.Errorf("checking %s: %w", dir, err)
		}
		if exists {
			continue
		}
		if err := ws.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating topic folder: %w", err)
		}
		created++
	}
	out.Success("Topic folders: %d created, %d already present", created, ws.table.Len()-created)

	sc := scaffold.New(scaffold.Config{
		Topics:       ws.table,
		Fs:           ws.fs,
		Root:         root,
		TemplatePath: ws.settings.Template,
	})
	path, err := sc.InitTemplate(false)
	switch {
	case errors.Is(err, scaffold.ErrTemplateExists):
		out.Println(out.Faint("Template already present: " + sc.TemplateFile()))
	case err != nil:
		return err
	default:
		out.Success("Created template: %s", path)
	}

	if !initNoReadme {
		if err := initReadme(out, ws); err != nil {
			return err
		}
	}

	out.Println()
	out.Printf("Workspace ready. Create a question with '%s <topic_number> <question_name>'.\n", branding.CLIName())
	return nil
}

func initReadme(out *ui.Printer, ws *workspace) error {
	path := ws.settings.Resolve(ws.settings.Readme)
	exists, err := afero.Exists(ws.fs, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if exists {
		out.Println(out.Faint("README already present: " + path))
		return nil
	}

	content := readme.Skeleton(branding.DisplayName(), ws.table)
	if err := afero.WriteFile(ws.fs, path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	out.Success("Created README index: %s", path)
	return nil
}
