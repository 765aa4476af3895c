package scaffold

import (
	_ "embed"
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
)

//go:embed templates/solution_template.md
var defaultTemplate []byte

// DefaultTemplate returns the built-in solution template.
func DefaultTemplate() []byte {
	out := make([]byte, len(defaultTemplate))
	copy(out, defaultTemplate)
	return out
}

// InitTemplate writes the built-in template to the scaffolder's template
// path, creating parent directories. An existing file is only replaced when
// force is set. It returns the path written.
func (s *Scaffolder) InitTemplate(force bool) (string, error) {
	path := s.TemplateFile()

	exists, err := afero.Exists(s.fs, path)
	if err != nil {
		return "", fmt.Errorf("checking %s: %w", path, err)
	}
	if exists && !force {
		return "", fmt.Errorf("%w at %s; pass --force to replace it", ErrTemplateExists, path)
	}

	if err := s.fs.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("creating template directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, path, defaultTemplate, 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
