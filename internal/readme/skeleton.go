package readme

import (
	"fmt"
	"strings"

	"github.com/dsatrack/dsatrack/internal/topics"
)

// Skeleton renders an empty README index with one section per topic, in
// the layout Parse and AddQuestion expect.
func Skeleton(title string, table *topics.Table) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	b.WriteString("## Progress\n")
	b.WriteString("- **Total Questions Solved:** 0\n\n")
	b.WriteString("## Topics\n\n")
	for _, tp := range table.All() {
		fmt.Fprintf(&b, "### %d. %s\n", tp.Number, tp.Title)
		fmt.Fprintf(&b, "- **Status:** %s\n", statusNotStarted)
		b.WriteString("- **Questions Solved:** 0\n\n")
		b.WriteString("#### Questions:\n\n")
		b.WriteString("---\n\n")
	}
	return b.String()
}
