// Package readme reads and edits the question index kept in the tracker's
// README.md. Each topic has a "### N. Title" section listing its questions as
// checkbox bullets with difficulty, solution link and note sub-bullets.
package readme

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/dsatrack/dsatrack/internal/topics"
)

// Question is one entry of the README index.
type Question struct {
	Topic        int      `json:"topic"`
	Number       int      `json:"number"`
	Title        string   `json:"title"`
	Completed    bool     `json:"completed"`
	Difficulty   string   `json:"difficulty,omitempty"`
	SolutionPath string   `json:"solution_path,omitempty"`
	KeyPoints    []string `json:"key_points"`
	EdgeCases    []string `json:"edge_cases"`
	Notes        []string `json:"notes"`
}

// Index is the parsed README.
type Index struct {
	Topics    []topics.Topic `json:"topics"`
	Questions []Question     `json:"questions"`
}

// ByTopic returns the questions filed under topic n, in README order.
func (idx *Index) ByTopic(n int) []Question {
	var out []Question
	for _, q := range idx.Questions {
		if q.Topic == n {
			out = append(out, q)
		}
	}
	return out
}

// Completed counts completed questions under topic n; n <= 0 counts all.
func (idx *Index) Completed(n int) int {
	c := 0
	for _, q := range idx.Questions {
		if q.Completed && (n <= 0 || q.Topic == n) {
			c++
		}
	}
	return c
}

// minContentLen is the size below which a README is treated as a stub.
const minContentLen = 100

var (
	topicHeadingRe = regexp.MustCompile(`^###\s+\d+\.\s+(.+)$`)
	questionsRe    = regexp.MustCompile(`(?i)^####\s+Questions?:`)
	questionRe     = regexp.MustCompile(`^- \[([ xX])\]\s*Question\s+(\d+):\s*(.+)$`)
	difficultyRe   = regexp.MustCompile(`\*\*Difficulty:\*\*\s*(.+)`)
	linkRe         = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	subItemRe      = regexp.MustCompile(`^\s{2,}- (.+)$`)
)

type listKey int

const (
	keyNone listKey = iota
	keyPoints
	keyEdgeCases
	keyNotes
)

// Parse extracts the question index from README content. Questions under a
// heading that is not in table are kept with Topic 0.
func Parse(content string, table *topics.Table) *Index {
	idx := &Index{Topics: table.All()}
	if len(strings.TrimSpace(content)) < minContentLen {
		return idx
	}

	var (
		currentTopic int
		current      *Question
		key          listKey
	)
	flush := func() {
		if current != nil {
			idx.Questions = append(idx.Questions, *current)
			current = nil
		}
		key = keyNone
	}

	for _, raw := range strings.Split(content, "\n") {
		raw = strings.TrimRight(raw, "\r")
		line := strings.TrimSpace(raw)

		if m := topicHeadingRe.FindStringSubmatch(line); m != nil {
			flush()
			currentTopic = 0
			if tp, ok := table.ByTitle(m[1]); ok {
				currentTopic = tp.Number
			}
			continue
		}

		if questionsRe.MatchString(line) {
			continue
		}

		if m := questionRe.FindStringSubmatch(line); m != nil {
			flush()
			number, _ := strconv.Atoi(m[2])
			current = &Question{
				Topic:     currentTopic,
				Number:    number,
				Title:     strings.TrimSpace(m[3]),
				Completed: m[1] != " ",
				KeyPoints: []string{},
				EdgeCases: []string{},
				Notes:     []string{},
			}
			continue
		}

		if current == nil {
			continue
		}

		switch {
		case strings.Contains(line, "**Difficulty:**"):
			if m := difficultyRe.FindStringSubmatch(line); m != nil {
				current.Difficulty = strings.TrimSpace(m[1])
			}
		case strings.Contains(line, "**Solution:**"):
			if m := linkRe.FindStringSubmatch(line); m != nil {
				current.SolutionPath = m[2]
			}
		case strings.Contains(line, "**Key Points:**"):
			key = keyPoints
		case strings.Contains(line, "**Edge Cases:**"):
			key = keyEdgeCases
		case strings.Contains(line, "**Notes:**"):
			key = keyNotes
		case strings.HasPrefix(line, "---"):
			flush()
		default:
			if m := subItemRe.FindStringSubmatch(raw); m != nil && key != keyNone {
				current.addItem(key, strings.TrimSpace(m[1]))
			}
		}
	}
	flush()

	return idx
}

func (q *Question) addItem(key listKey, value string) {
	if value == "" || strings.Contains(strings.ToLower(value), "to be updated") {
		return
	}
	switch key {
	case keyPoints:
		q.KeyPoints = append(q.KeyPoints, value)
	case keyEdgeCases:
		q.EdgeCases = append(q.EdgeCases, value)
	case keyNotes:
		q.Notes = append(q.Notes, value)
	}
}
