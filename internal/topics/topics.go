package topics

import (
	"fmt"
	"sort"
	"strings"
)

// Topic is one practice category: its menu number, the folder its questions
// live in, and the heading it carries in the tracker README.
type Topic struct {
	Number int    `yaml:"number" json:"number"`
	Folder string `yaml:"folder" json:"folder"`
	Title  string `yaml:"title" json:"title"`
}

// Table is an immutable, number-ordered set of topics. Build one with
// Default or New and pass it to whatever needs to resolve topic numbers.
type Table struct {
	topics []Topic
	byNum  map[int]Topic
}

var defaultTopics = []Topic{
	{1, "01-Arrays-Strings", "Arrays & Strings"},
	{2, "02-Linked-Lists", "Linked Lists"},
	{3, "03-Stacks-Queues", "Stacks & Queues"},
	{4, "04-Trees", "Trees"},
	{5, "05-Graphs", "Graphs"},
	{6, "06-Dynamic-Programming", "Dynamic Programming"},
	{7, "07-Backtracking", "Backtracking"},
	{8, "08-Greedy-Algorithms", "Greedy Algorithms"},
	{9, "09-Binary-Search", "Binary Search"},
	{10, "10-Hash-Tables", "Hash Tables"},
	{11, "11-Heaps", "Heaps"},
	{12, "12-Sliding-Window", "Sliding Window"},
	{13, "13-Two-Pointers", "Two Pointers"},
	{14, "14-Bit-Manipulation", "Bit Manipulation"},
}

// Default returns the built-in fourteen-topic table.
func Default() *Table {
	t, err := New(defaultTopics)
	if err != nil {
		panic(fmt.Sprintf("built-in topic table is invalid: %v", err))
	}
	return t
}

// New builds a Table from list. Numbers must be positive, and numbers and
// folders must be unique.
func New(list []Topic) (*Table, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("topic table is empty")
	}

	t := &Table{
		topics: make([]Topic, 0, len(list)),
		byNum:  make(map[int]Topic, len(list)),
	}
	folders := make(map[string]int, len(list))

	for _, tp := range list {
		if tp.Number < 1 {
			return nil, fmt.Errorf("topic %q: number must be positive, got %d", tp.Folder, tp.Number)
		}
		if strings.TrimSpace(tp.Folder) == "" {
			return nil, fmt.Errorf("topic %d: folder is empty", tp.Number)
		}
		if _, dup := t.byNum[tp.Number]; dup {
			return nil, fmt.Errorf("duplicate topic number %d", tp.Number)
		}
		if prev, dup := folders[tp.Folder]; dup {
			return nil, fmt.Errorf("folder %q used by topics %d and %d", tp.Folder, prev, tp.Number)
		}
		folders[tp.Folder] = tp.Number
		t.byNum[tp.Number] = tp
		t.topics = append(t.topics, tp)
	}

	sort.Slice(t.topics, func(i, j int) bool { return t.topics[i].Number < t.topics[j].Number })
	return t, nil
}

// Lookup returns the topic registered under n.
func (t *Table) Lookup(n int) (Topic, bool) {
	tp, ok := t.byNum[n]
	return tp, ok
}

// ByTitle finds a topic by its README heading, ignoring surrounding space.
func (t *Table) ByTitle(title string) (Topic, bool) {
	title = strings.TrimSpace(title)
	for _, tp := range t.topics {
		if tp.Title == title {
			return tp, true
		}
	}
	return Topic{}, false
}

// All returns a copy of the topics ordered by number.
func (t *Table) All() []Topic {
	out := make([]Topic, len(t.topics))
	copy(out, t.topics)
	return out
}

// Len reports the number of topics.
func (t *Table) Len() int { return len(t.topics) }

// Range returns the lowest and highest topic numbers.
func (t *Table) Range() (lo, hi int) {
	return t.topics[0].Number, t.topics[len(t.topics)-1].Number
}

// Slug turns a question name into its folder name by replacing every space
// with a dash. Other characters are kept as typed.
func Slug(name string) string {
	return strings.ReplaceAll(name, " ", "-")
}

// SolutionPath returns the slash-separated path of a question's solution
// file relative to the workspace root, as it is linked from the README.
func SolutionPath(tp Topic, name string) string {
	return tp.Folder + "/" + Slug(name) + "/solution.md"
}
