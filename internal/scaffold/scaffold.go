package scaffold

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/dsatrack/dsatrack/internal/topics"
	"github.com/spf13/afero"
)

const (
	// Placeholder is replaced with the question name in the template.
	Placeholder = "[Question Title]"
	// DefaultTemplatePath is where the solution template is looked up,
	// relative to the workspace root.
	DefaultTemplatePath = "templates/solution_template.md"
	// SolutionFile is the name of the rendered file inside a question folder.
	SolutionFile = "solution.md"
)

// Config wires a Scaffolder to its topic table and filesystem.
type Config struct {
	Topics       *topics.Table
	Fs           afero.Fs // defaults to the OS filesystem
	Root         string   // workspace root; defaults to "."
	TemplatePath string   // relative to Root unless absolute
	Logger       *slog.Logger
}

// Scaffolder creates question folders inside a workspace.
type Scaffolder struct {
	topics       *topics.Table
	fs           afero.Fs
	root         string
	templatePath string
	log          *slog.Logger
}

// New returns a Scaffolder for cfg, filling unset fields with defaults.
func New(cfg Config) *Scaffolder {
	s := &Scaffolder{
		topics:       cfg.Topics,
		fs:           cfg.Fs,
		root:         cfg.Root,
		templatePath: cfg.TemplatePath,
		log:          cfg.Logger,
	}
	if s.topics == nil {
		s.topics = topics.Default()
	}
	if s.fs == nil {
		s.fs = afero.NewOsFs()
	}
	if s.root == "" {
		s.root = "."
	}
	if s.templatePath == "" {
		s.templatePath = DefaultTemplatePath
	}
	if s.log == nil {
		s.log = slog.Default()
	}
	return s
}

// StepKind classifies the outcome of a best-effort step.
type StepKind int

const (
	StepOK StepKind = iota
	StepWarning
	StepFatal
)

func (k StepKind) String() string {
	switch k {
	case StepOK:
		return "ok"
	case StepWarning:
		return "warning"
	case StepFatal:
		return "fatal"
	default:
		return fmt.Sprintf("StepKind(%d)", int(k))
	}
}

// StepResult is the outcome of the template step. Warnings leave the
// operation successful; fatal results carry the error that aborted it.
type StepResult struct {
	Kind   StepKind
	Reason string
	Err    error
}

func ok() StepResult { return StepResult{Kind: StepOK} }

func warning(reason string) StepResult {
	return StepResult{Kind: StepWarning, Reason: reason}
}

func fatal(err error) StepResult {
	return StepResult{Kind: StepFatal, Reason: err.Error(), Err: err}
}

// Result describes a created question.
type Result struct {
	Topic        topics.Topic
	Name         string
	Folder       string // path of the created question folder
	TemplatePath string // template that was (or would have been) read
	SolutionPath string // path of solution.md, written only when Template.Kind is StepOK
	Template     StepResult
	Warnings     []string
}

// SolutionWritten reports whether solution.md was rendered.
func (r *Result) SolutionWritten() bool {
	return r.Template.Kind == StepOK
}

// QuestionFolder returns the folder a question would be created in,
// without touching the filesystem.
func (s *Scaffolder) QuestionFolder(topic topics.Topic, name string) string {
	return filepath.Join(s.root, topic.Folder, topics.Slug(name))
}

// TemplateFile returns the resolved path of the solution template.
func (s *Scaffolder) TemplateFile() string {
	if filepath.IsAbs(s.templatePath) {
		return s.templatePath
	}
	return filepath.Join(s.root, s.templatePath)
}

// CreateQuestion creates the folder for name under the topic numbered
// topicNumber and renders solution.md into it when a template is present.
//
// Validation and conflict failures leave the filesystem untouched. A missing
// template is reported in Result.Warnings; any other I/O failure is returned.
// The existence check and the directory creation are separate calls, so two
// concurrent invocations for the same question can both pass the check.
func (s *Scaffolder) CreateQuestion(topicNumber int, name string) (*Result, error) {
	topic, found := s.topics.Lookup(topicNumber)
	if !found {
		lo, hi := s.topics.Range()
		return nil, &InvalidTopicError{Number: topicNumber, Min: lo, Max: hi}
	}
	if err := validateName(name); err != nil {
		return nil, err
	}

	folder := s.QuestionFolder(topic, name)
	exists, err := afero.Exists(s.fs, folder)
	if err != nil {
		return nil, fmt.Errorf("checking %s: %w", folder, err)
	}
	if exists {
		return nil, &QuestionExistsError{Path: folder}
	}

	if err := s.fs.MkdirAll(folder, 0755); err != nil {
		return nil, fmt.Errorf("creating question folder %s: %w", folder, err)
	}
	s.log.Debug("created question folder", "topic", topic.Number, "path", folder)

	result := &Result{
		Topic:        topic,
		Name:         name,
		Folder:       folder,
		TemplatePath: s.TemplateFile(),
		SolutionPath: filepath.Join(folder, SolutionFile),
	}

	result.Template = s.renderSolution(result.TemplatePath, result.SolutionPath, name)
	switch result.Template.Kind {
	case StepFatal:
		return nil, result.Template.Err
	case StepWarning:
		s.log.Debug("template step skipped", "reason", result.Template.Reason)
		result.Warnings = append(result.Warnings, result.Template.Reason)
	}

	return result, nil
}

// renderSolution loads the template, substitutes the placeholder and writes
// the solution file. A missing template is a warning, not a failure.
func (s *Scaffolder) renderSolution(templatePath, solutionPath, name string) StepResult {
	raw, err := afero.ReadFile(s.fs, templatePath)
	if errors.Is(err, fs.ErrNotExist) {
		return warning("Template not found at " + templatePath)
	}
	if err != nil {
		return fatal(fmt.Errorf("reading template %s: %w", templatePath, err))
	}

	if err := afero.WriteFile(s.fs, solutionPath, []byte(Render(string(raw), name)), 0644); err != nil {
		return fatal(fmt.Errorf("writing %s: %w", solutionPath, err))
	}
	s.log.Debug("rendered solution", "template", templatePath, "path", solutionPath)
	return ok()
}

// Render replaces every occurrence of Placeholder in text with title.
func Render(text, title string) string {
	return strings.ReplaceAll(text, Placeholder, title)
}

// nameSeparators split a name into nested folders on the host OS.
var nameSeparators = "/" + string(filepath.Separator)

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return ErrEmptyName
	}
	slug := topics.Slug(name)
	if strings.ContainsAny(slug, nameSeparators) || slug == "." || slug == ".." {
		return fmt.Errorf("%w %q: must be a single folder name", ErrInvalidName, name)
	}
	return nil
}
