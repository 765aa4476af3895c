package cli

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/dsatrack/dsatrack/internal/scaffold"
	"github.com/spf13/viper"
)

// resetState clears package-level flag values and viper so each test starts
// from a fresh invocation.
func resetState(t *testing.T) {
	t.Helper()

	viper.Reset()
	t.Setenv("DSA_HOME", t.TempDir())

	flagRoot, flagTopics, flagVerbose = "", "", false
	createReadme, createDifficulty = false, ""
	createKeyPoints, createEdgeCases = nil, nil
	listTopic, listJSON = 0, false
	topicsYAML = false
	templateForce = false
	doctorFix = false
	initNoReadme = false
	searchDifficulty, searchStatus, searchJSON = "", "", false
	versionShort, versionJSON = false, false
}

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	resetState(t)
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
}

func writeTemplate(t *testing.T, root string) {
	t.Helper()
	writeTestFile(t, filepath.Join(root, "templates", "solution_template.md"), "# [Question Title]\n\nNotes on [Question Title].\n")
}

func assertEmptyDir(t *testing.T, dir string) {
	t.Helper()

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("expected %s to be empty, found %d entries", dir, len(entries))
	}
}

func TestUsageWithTooFewArgs(t *testing.T) {
	for _, args := range [][]string{{}, {"1"}} {
		root := t.TempDir()
		out, err := execute(t, append([]string{"--root", root}, args...)...)
		if !errors.Is(err, ErrUsage) {
			t.Fatalf("args %v: error = %v, want ErrUsage", args, err)
		}
		if !strings.Contains(out, "Usage: dsa <topic_number> <question_name>") {
			t.Errorf("args %v: missing usage line:\n%s", args, out)
		}
		if !strings.Contains(out, "1: 01-Arrays-Strings") || !strings.Contains(out, "14: 14-Bit-Manipulation") {
			t.Errorf("args %v: topic list incomplete:\n%s", args, out)
		}
		assertEmptyDir(t, root)
	}
}

func TestUsageWithBrokenTopicFile(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "topics.yaml"), "version: \"1.0.0\"\ntopics: []\n")

	out, err := execute(t, "--root", root, "--topics", "topics.yaml", "1")
	if !errors.Is(err, ErrUsage) {
		t.Fatalf("error = %v, want ErrUsage", err)
	}
	if !strings.Contains(out, "Usage: dsa <topic_number> <question_name>") || !strings.Contains(out, "14: 14-Bit-Manipulation") {
		t.Errorf("expected usage with built-in topics:\n%s", out)
	}
}

func TestNonIntegerTopic(t *testing.T) {
	root := t.TempDir()
	_, err := execute(t, "--root", root, "abc", "Two", "Sum")
	if !errors.Is(err, errTopicNotInteger) {
		t.Fatalf("error = %v, want errTopicNotInteger", err)
	}
	if err.Error() != "Topic number must be an integer" {
		t.Errorf("message = %q", err.Error())
	}
	assertEmptyDir(t, root)
}

func TestCreateQuestion(t *testing.T) {
	root := t.TempDir()
	writeTemplate(t, root)

	out, err := execute(t, "--root", root, "1", "Two", "Sum")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	folder := filepath.Join(root, "01-Arrays-Strings", "Two-Sum")
	solution := filepath.Join(folder, "solution.md")
	for _, want := range []string{
		"✓ Created folder: " + folder,
		"✓ Created solution template: " + solution,
		"✓ Question folder created successfully!",
		"Next steps:",
		"1. Edit " + solution + " with your solution",
		"2. Update README.md to add this question to the topic section",
		"3. Update progress.md with today's date",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	data, err := os.ReadFile(solution)
	if err != nil {
		t.Fatalf("reading solution: %v", err)
	}
	if string(data) != "# Two Sum\n\nNotes on Two Sum.\n" {
		t.Errorf("solution = %q", data)
	}
}

func TestCreateQuestionMissingTemplate(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "--root", root, "5", "Clone Graph")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "⚠ Warning: Template not found at "+filepath.Join(root, "templates", "solution_template.md")) {
		t.Errorf("missing template warning:\n%s", out)
	}
	if strings.Contains(out, "Created solution template") {
		t.Errorf("solution reported as created:\n%s", out)
	}
	if !strings.Contains(out, "Question folder created successfully!") {
		t.Errorf("missing success line:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(root, "05-Graphs", "Clone-Graph")); err != nil {
		t.Errorf("question folder not created: %v", err)
	}
}

func TestCreateQuestionInvalidTopic(t *testing.T) {
	root := t.TempDir()

	for _, topic := range []string{"0", "15", "99"} {
		_, err := execute(t, "--root", root, topic, "Two Sum")
		if !errors.Is(err, scaffold.ErrInvalidTopic) {
			t.Fatalf("topic %s: error = %v, want ErrInvalidTopic", topic, err)
		}
		if want := "invalid topic number " + topic + ": must be between 1-14"; err.Error() != want {
			t.Errorf("topic %s: message = %q, want %q", topic, err.Error(), want)
		}
	}
	assertEmptyDir(t, root)
}

func TestCreateQuestionExists(t *testing.T) {
	root := t.TempDir()

	if _, err := execute(t, "--root", root, "2", "Reverse List"); err != nil {
		t.Fatalf("first create: %v", err)
	}
	_, err := execute(t, "--root", root, "2", "Reverse List")
	if !errors.Is(err, scaffold.ErrQuestionExists) {
		t.Fatalf("error = %v, want ErrQuestionExists", err)
	}
	want := "question folder already exists: " + filepath.Join(root, "02-Linked-Lists", "Reverse-List")
	if err.Error() != want {
		t.Errorf("message = %q, want %q", err.Error(), want)
	}
}

func TestInitCreatesWorkspace(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "--root", root, "init")
	if err != nil {
		t.Fatalf("init: %v", err)
	}
	if !strings.Contains(out, "Topic folders: 14 created, 0 already present") {
		t.Errorf("unexpected init output:\n%s", out)
	}
	for _, p := range []string{
		"01-Arrays-Strings",
		"14-Bit-Manipulation",
		filepath.Join("templates", "solution_template.md"),
		"README.md",
	} {
		if _, err := os.Stat(filepath.Join(root, p)); err != nil {
			t.Errorf("expected %s: %v", p, err)
		}
	}

	// Rerunning keeps existing files.
	writeTestFile(t, filepath.Join(root, "README.md"), "custom")
	out, err = execute(t, "--root", root, "init")
	if err != nil {
		t.Fatalf("second init: %v", err)
	}
	if !strings.Contains(out, "0 created, 14 already present") {
		t.Errorf("unexpected second init output:\n%s", out)
	}
	data, _ := os.ReadFile(filepath.Join(root, "README.md"))
	if string(data) != "custom" {
		t.Errorf("README overwritten: %q", data)
	}
}

func TestCreateWithReadmeThenListAndSearch(t *testing.T) {
	root := t.TempDir()
	if _, err := execute(t, "--root", root, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}

	out, err := execute(t, "--root", root, "--readme", "--difficulty", "Medium", "--key-point", "Hash map", "12", "Longest Substring")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !strings.Contains(out, "Added to "+filepath.Join(root, "README.md")+" under Sliding Window") {
		t.Errorf("missing README line:\n%s", out)
	}

	content, err := os.ReadFile(filepath.Join(root, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{
		"- [ ] Question 1: Longest Substring",
		"  - **Difficulty:** Medium",
		"12-Sliding-Window/Longest-Substring/solution.md",
		"    - Hash map",
		"- **Total Questions Solved:** 1",
	} {
		if !strings.Contains(string(content), want) {
			t.Errorf("README missing %q", want)
		}
	}

	out, err = execute(t, "--root", root, "list", "--json", "--topic", "12")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	var questions []readme.Question
	if err := json.Unmarshal([]byte(out), &questions); err != nil {
		t.Fatalf("list output is not JSON: %v\n%s", err, out)
	}
	if len(questions) != 1 || questions[0].Title != "Longest Substring" || questions[0].Difficulty != "Medium" {
		t.Errorf("questions = %+v", questions)
	}

	out, err = execute(t, "--root", root, "list")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out, "1 question, 0 completed") {
		t.Errorf("missing list summary:\n%s", out)
	}

	out, err = execute(t, "--root", root, "search", "substring", "--status", "todo")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "1 question(s) found") {
		t.Errorf("unexpected search output:\n%s", out)
	}

	out, err = execute(t, "--root", root, "search", "heap")
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if !strings.Contains(out, "No matching questions found.") {
		t.Errorf("unexpected search output:\n%s", out)
	}
}

func TestNoteCommand(t *testing.T) {
	root := t.TempDir()
	if _, err := execute(t, "--root", root, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}
	if _, err := execute(t, "--root", root, "--readme", "13", "Container With Most Water"); err != nil {
		t.Fatalf("create: %v", err)
	}

	out, err := execute(t, "--root", root, "note", "13", "1", "move", "the", "shorter", "side")
	if err != nil {
		t.Fatalf("note: %v", err)
	}
	if !strings.Contains(out, "Added note to question 1 of Two Pointers") {
		t.Errorf("unexpected note output:\n%s", out)
	}
	if _, err := execute(t, "--root", root, "note", "13", "1", "area is width times min height"); err != nil {
		t.Fatalf("second note: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	if err != nil {
		t.Fatal(err)
	}
	want := "  - **Notes:**\n    - move the shorter side\n    - area is width times min height\n"
	if !strings.Contains(string(data), want) {
		t.Errorf("README missing notes block %q:\n%s", want, data)
	}

	_, err = execute(t, "--root", root, "note", "13", "2", "nothing here")
	if !errors.Is(err, readme.ErrQuestionNotFound) {
		t.Errorf("error = %v, want ErrQuestionNotFound", err)
	}
	_, err = execute(t, "--root", root, "note", "x", "1", "text")
	if !errors.Is(err, errTopicNotInteger) {
		t.Errorf("error = %v, want errTopicNotInteger", err)
	}
	_, err = execute(t, "--root", root, "note", "15", "1", "text")
	if err == nil || !strings.Contains(err.Error(), "must be between 1-14") {
		t.Errorf("error = %v", err)
	}
}

func TestCreateWithReadmeMissingWarns(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "--root", root, "--readme", "3", "Min Stack")
	if err != nil {
		t.Fatalf("create should succeed without a README: %v", err)
	}
	if !strings.Contains(out, "⚠ Warning: README not updated:") {
		t.Errorf("missing README warning:\n%s", out)
	}
	if _, err := os.Stat(filepath.Join(root, "03-Stacks-Queues", "Min-Stack")); err != nil {
		t.Errorf("question folder not created: %v", err)
	}
}

func TestListInvalidTopic(t *testing.T) {
	_, err := execute(t, "--root", t.TempDir(), "list", "--topic", "20")
	if err == nil || !strings.Contains(err.Error(), "must be between 1-14") {
		t.Errorf("error = %v", err)
	}
}

func TestTopicsCommand(t *testing.T) {
	out, err := execute(t, "--root", t.TempDir(), "topics")
	if err != nil {
		t.Fatalf("topics: %v", err)
	}
	if !strings.Contains(out, "14-Bit-Manipulation") || !strings.Contains(out, "Dynamic Programming") {
		t.Errorf("unexpected topics output:\n%s", out)
	}

	out, err = execute(t, "--root", t.TempDir(), "topics", "--yaml")
	if err != nil {
		t.Fatalf("topics --yaml: %v", err)
	}
	if !strings.Contains(out, "version: 1.0.0") || !strings.Contains(out, "folder: 01-Arrays-Strings") {
		t.Errorf("unexpected yaml output:\n%s", out)
	}
}

func TestCustomTopicFile(t *testing.T) {
	root := t.TempDir()
	writeTestFile(t, filepath.Join(root, "topics.yaml"), `version: "1.0.0"
topics:
  - number: 1
    folder: 01-Warmup
    title: Warmup
`)

	if _, err := execute(t, "--root", root, "--topics", "topics.yaml", "1", "Fizz Buzz"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "01-Warmup", "Fizz-Buzz")); err != nil {
		t.Errorf("question folder not created: %v", err)
	}

	_, err := execute(t, "--root", root, "--topics", "topics.yaml", "2", "Anything")
	if err == nil || err.Error() != "invalid topic number 2: must be between 1-1" {
		t.Errorf("error = %v", err)
	}
}

func TestExportCommand(t *testing.T) {
	root := t.TempDir()
	if _, err := execute(t, "--root", root, "init"); err != nil {
		t.Fatalf("init: %v", err)
	}

	_, err := execute(t, "--root", root, "export", filepath.Join(root, "progress.csv"))
	if err == nil || !strings.Contains(err.Error(), "must end in .xlsx") {
		t.Errorf("error = %v", err)
	}

	path := filepath.Join(root, "progress.xlsx")
	out, err := execute(t, "--root", root, "export", path)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if !strings.Contains(out, "Exported 0 questions to "+path) {
		t.Errorf("unexpected export output:\n%s", out)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("workbook not written: %v", err)
	}
}

func TestTemplateCommands(t *testing.T) {
	root := t.TempDir()
	path := filepath.Join(root, "templates", "solution_template.md")

	out, err := execute(t, "--root", root, "template", "init")
	if err != nil {
		t.Fatalf("template init: %v", err)
	}
	if !strings.Contains(out, "Created template: "+path) {
		t.Errorf("unexpected output:\n%s", out)
	}

	_, err = execute(t, "--root", root, "template", "init")
	if !errors.Is(err, scaffold.ErrTemplateExists) {
		t.Errorf("second init error = %v, want ErrTemplateExists", err)
	}
	if _, err := execute(t, "--root", root, "template", "init", "--force"); err != nil {
		t.Errorf("forced init: %v", err)
	}

	out, err = execute(t, "template", "show")
	if err != nil {
		t.Fatalf("template show: %v", err)
	}
	if !strings.Contains(out, scaffold.Placeholder) {
		t.Errorf("built-in template lacks placeholder:\n%s", out)
	}
}

func TestDoctorCommand(t *testing.T) {
	root := t.TempDir()

	out, err := execute(t, "--root", root, "doctor", "--fix")
	if err != nil {
		t.Fatalf("doctor: %v", err)
	}
	for _, want := range []string{"Workspace check:", "Topics check:", "Template check:", "README check:", "fixed"} {
		if !strings.Contains(out, want) {
			t.Errorf("doctor output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(root, "templates", "solution_template.md")); err != nil {
		t.Errorf("doctor --fix did not write the template: %v", err)
	}
}

func TestConfigSetGet(t *testing.T) {
	resetState(t)
	home := os.Getenv("DSA_HOME")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"config", "set", "difficulty", "Hard"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config set: %v", err)
	}
	if _, err := os.Stat(filepath.Join(home, "config.yaml")); err != nil {
		t.Fatalf("config file not written: %v", err)
	}

	// Read back through a fresh viper with the same home.
	viper.Reset()
	out.Reset()
	rootCmd.SetArgs([]string{"config", "get", "difficulty"})
	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("config get: %v", err)
	}
	if strings.TrimSpace(out.String()) != "Hard" {
		t.Errorf("config get = %q, want Hard", out.String())
	}

	_, err := execute(t, "config", "get", "nope")
	if err == nil || !strings.Contains(err.Error(), "unknown config key") {
		t.Errorf("error = %v", err)
	}
}

func TestConfigSetKeepsFlagsOutOfFile(t *testing.T) {
	root := t.TempDir()
	if _, err := execute(t, "--root", root, "config", "set", "difficulty", "Hard"); err != nil {
		t.Fatalf("config set: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(os.Getenv("DSA_HOME"), "config.yaml"))
	if err != nil {
		t.Fatalf("reading config file: %v", err)
	}
	if !strings.Contains(string(data), "difficulty: Hard") {
		t.Errorf("config file missing difficulty:\n%s", data)
	}
	if strings.Contains(string(data), "root:") {
		t.Errorf("--root was persisted to the config file:\n%s", data)
	}
}

func TestVersionCommand(t *testing.T) {
	buildVersion, buildCommit, buildDate = "1.2.3", "abc123", "2026-01-01"

	out, err := execute(t, "version", "--short")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if strings.TrimSpace(out) != "1.2.3" {
		t.Errorf("version --short = %q", out)
	}

	out, err = execute(t, "version")
	if err != nil {
		t.Fatalf("version: %v", err)
	}
	if !strings.Contains(out, "dsa version 1.2.3 (commit: abc123, built: 2026-01-01)") {
		t.Errorf("unexpected version output: %q", out)
	}
}
