package topics

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/spf13/afero"
	"go.yaml.in/yaml/v3"
)

// SupportedVersions is the semver constraint a topic file's version must meet.
const SupportedVersions = "^1.0.0"

// File is the on-disk shape of a topic table override.
type File struct {
	Version string  `yaml:"version"`
	Topics  []Topic `yaml:"topics"`
}

// InvalidFileError reports schema violations in a topic file.
type InvalidFileError struct {
	Path   string
	Issues []ValidationIssue
}

func (e *InvalidFileError) Error() string {
	parts := make([]string, len(e.Issues))
	for i, issue := range e.Issues {
		parts[i] = issue.String()
	}
	return printer.Sprintf("topic file %s has %d schema issue(s): %s", e.Path, len(e.Issues), strings.Join(parts, "; "))
}

// Load reads a YAML topic table from path on fsys. An empty path yields the
// built-in table.
func Load(fsys afero.Fs, path string) (*Table, error) {
	if path == "" {
		return Default(), nil
	}

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading topic file: %w", err)
	}
	return Parse(data, path)
}

// Parse validates and decodes topic file bytes. source names the file in
// error messages.
func Parse(data []byte, source string) (*Table, error) {
	result, err := Validate(data)
	if err != nil {
		return nil, fmt.Errorf("validating topic file %s: %w", source, err)
	}
	if !result.Valid {
		return nil, &InvalidFileError{Path: source, Issues: result.Issues}
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing topic file %s: %w", source, err)
	}

	if err := checkVersion(f.Version); err != nil {
		return nil, fmt.Errorf("topic file %s: %w", source, err)
	}

	t, err := New(f.Topics)
	if err != nil {
		return nil, fmt.Errorf("topic file %s: %w", source, err)
	}
	return t, nil
}

func checkVersion(v string) error {
	ver, err := semver.NewVersion(strings.TrimPrefix(v, "v"))
	if err != nil {
		return fmt.Errorf("parsing version %q: %w", v, err)
	}
	c, err := semver.NewConstraint(SupportedVersions)
	if err != nil {
		return fmt.Errorf("parsing constraint %q: %w", SupportedVersions, err)
	}
	if !c.Check(ver) {
		return fmt.Errorf("unsupported version %s (want %s)", ver, SupportedVersions)
	}
	return nil
}

// Marshal renders t in the topic file format.
func Marshal(t *Table) ([]byte, error) {
	out, err := yaml.Marshal(File{Version: "1.0.0", Topics: t.All()})
	if err != nil {
		return nil, fmt.Errorf("marshaling topic table: %w", err)
	}
	return out, nil
}
