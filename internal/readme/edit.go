package readme

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/dsatrack/dsatrack/internal/topics"
)

const (
	statusNotStarted = "🔴 Not Started"
	statusInProgress = "🟡 In Progress"
)

var (
	// ErrSectionNotFound is returned when the README has no heading for a topic.
	ErrSectionNotFound = errors.New("topic section not found")
	// ErrQuestionNotFound is returned when a topic section has no question at
	// the requested position.
	ErrQuestionNotFound = errors.New("question not found")
)

// Entry holds what a new README question block records.
type Entry struct {
	Title      string
	Difficulty string // defaults to "Easy"
	KeyPoints  []string
	EdgeCases  []string
}

var (
	sectionEndRe  = regexp.MustCompile(`(?m)^(?:---|###[^#])`)
	entryLineRe   = regexp.MustCompile(`(?m)^- \[[ xX]\]`)
	solvedRe      = regexp.MustCompile(`(?m)^(- \*\*Questions Solved:\*\* )(\d+)`)
	statusRe      = regexp.MustCompile(`(?m)^(- \*\*Status:\*\* )` + regexp.QuoteMeta(statusNotStarted))
	totalSolvedRe = regexp.MustCompile(`(?m)^(- \*\*Total Questions Solved:\*\* )(\d+)`)
)

// BuildEntry renders the README block for question number n of topic tp.
func BuildEntry(e Entry, n int, tp topics.Topic) string {
	difficulty := strings.TrimSpace(e.Difficulty)
	if difficulty == "" {
		difficulty = "Easy"
	}
	solution := topics.SolutionPath(tp, e.Title)

	var b strings.Builder
	fmt.Fprintf(&b, "- [ ] Question %d: %s\n", n, e.Title)
	fmt.Fprintf(&b, "  - **Difficulty:** %s\n", difficulty)
	fmt.Fprintf(&b, "  - **Solution:** [%s](%s)\n", solution, solution)
	writeList(&b, "Key Points", e.KeyPoints)
	writeList(&b, "Edge Cases", e.EdgeCases)
	return b.String()
}

func writeList(b *strings.Builder, label string, items []string) {
	var kept []string
	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}
	if len(kept) == 0 {
		return
	}
	fmt.Fprintf(b, "  - **%s:**\n", label)
	for _, item := range kept {
		fmt.Fprintf(b, "    - %s\n", item)
	}
}

// AddQuestion appends e to the section of topic n in content and returns the
// updated README. The section's solved counter and the overall total are
// incremented, and a "Not Started" status becomes "In Progress".
func AddQuestion(content string, table *topics.Table, n int, e Entry) (string, error) {
	tp, ok := table.Lookup(n)
	if !ok {
		return "", fmt.Errorf("unknown topic %d", n)
	}
	if strings.TrimSpace(e.Title) == "" {
		return "", errors.New("question title is empty")
	}

	start, end, err := findSection(content, tp)
	if err != nil {
		return "", err
	}
	section := content[start:end]

	existing := len(entryLineRe.FindAllStringIndex(section, -1))
	section = strings.TrimRight(section, "\r\n") + "\n\n" + BuildEntry(e, existing+1, tp) + "\n"

	solvedBefore := -1
	section = replaceCounter(solvedRe, section, &solvedBefore)
	if solvedBefore == 0 {
		section = statusRe.ReplaceAllString(section, "${1}"+statusInProgress)
	}

	updated := content[:start] + section + content[end:]
	updated = replaceCounter(totalSolvedRe, updated, nil)
	return updated, nil
}

// findSection returns the byte range of tp's section: from its heading up
// to the next "---" rule or "###" heading, or the end of content.
func findSection(content string, tp topics.Topic) (start, end int, err error) {
	headingRe := regexp.MustCompile(`(?m)^### ` + strconv.Itoa(tp.Number) + `\. ` + regexp.QuoteMeta(tp.Title) + `[ \t]*\r?$`)
	loc := headingRe.FindStringIndex(content)
	if loc == nil {
		return 0, 0, fmt.Errorf("%w: %s", ErrSectionNotFound, tp.Title)
	}

	start, end = loc[0], len(content)
	if next := sectionEndRe.FindStringIndex(content[loc[1]:]); next != nil {
		end = loc[1] + next[0]
	}
	return start, end, nil
}

// AddNote appends note to the question at 1-based position question within
// topic n. The note goes after the question's existing "Notes" items, or a
// new "Notes" bullet is added at the end of the question block.
func AddNote(content string, table *topics.Table, n, question int, note string) (string, error) {
	tp, ok := table.Lookup(n)
	if !ok {
		return "", fmt.Errorf("unknown topic %d", n)
	}
	note = strings.Join(strings.Fields(note), " ")
	if note == "" {
		return "", errors.New("note is empty")
	}

	start, end, err := findSection(content, tp)
	if err != nil {
		return "", err
	}
	section := content[start:end]

	entries := entryLineRe.FindAllStringIndex(section, -1)
	if question < 1 || question > len(entries) {
		return "", fmt.Errorf("%w: %s has %d question(s), got %d", ErrQuestionNotFound, tp.Title, len(entries), question)
	}
	blockStart, blockEnd := entries[question-1][0], len(section)
	if question < len(entries) {
		blockEnd = entries[question][0]
	}

	block := insertNote(section[blockStart:blockEnd], note)
	return content[:start] + section[:blockStart] + block + section[blockEnd:] + content[end:], nil
}

func insertNote(block, note string) string {
	lines := strings.SplitAfter(block, "\n")
	item := "    - " + note + "\n"

	for i, line := range lines {
		if strings.TrimSpace(line) != "- **Notes:**" {
			continue
		}
		at := i + 1
		for at < len(lines) && strings.HasPrefix(lines[at], "    - ") {
			at++
		}
		return joinInsert(lines, at, item)
	}

	last := 0
	for i, line := range lines {
		if strings.TrimSpace(line) != "" {
			last = i
		}
	}
	if !strings.HasSuffix(lines[last], "\n") {
		lines[last] += "\n"
	}
	return joinInsert(lines, last+1, "  - **Notes:**\n"+item)
}

func joinInsert(lines []string, at int, text string) string {
	return strings.Join(lines[:at], "") + text + strings.Join(lines[at:], "")
}

// replaceCounter increments the first counter matched by re. The prior
// value is stored in before when non-nil.
func replaceCounter(re *regexp.Regexp, s string, before *int) string {
	m := re.FindStringSubmatchIndex(s)
	if m == nil {
		return s
	}
	n, err := strconv.Atoi(s[m[4]:m[5]])
	if err != nil {
		return s
	}
	if before != nil {
		*before = n
	}
	return s[:m[4]] + strconv.Itoa(n+1) + s[m[5]:]
}
