package readme

import (
	"fmt"
	"os"

	"github.com/dsatrack/dsatrack/internal/topics"
	"github.com/spf13/afero"
)

// Load reads and parses the README at path.
func Load(fsys afero.Fs, path string, table *topics.Table) (*Index, error) {
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return Parse(string(data), table), nil
}

// AddToFile appends e under topic n in the README at path, rewriting the
// file in place with its original permissions.
func AddToFile(fsys afero.Fs, path string, table *topics.Table, n int, e Entry) error {
	return editFile(fsys, path, func(content string) (string, error) {
		return AddQuestion(content, table, n, e)
	})
}

// AddNoteToFile adds note to question number question of topic n in the
// README at path.
func AddNoteToFile(fsys afero.Fs, path string, table *topics.Table, n, question int, note string) error {
	return editFile(fsys, path, func(content string) (string, error) {
		return AddNote(content, table, n, question, note)
	})
}

func editFile(fsys afero.Fs, path string, edit func(string) (string, error)) error {
	info, err := fsys.Stat(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	updated, err := edit(string(data))
	if err != nil {
		return fmt.Errorf("updating %s: %w", path, err)
	}

	if err := afero.WriteFile(fsys, path, []byte(updated), perm(info)); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func perm(info os.FileInfo) os.FileMode {
	if p := info.Mode().Perm(); p != 0 {
		return p
	}
	return 0644
}
