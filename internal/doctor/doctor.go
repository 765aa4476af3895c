package doctor

import (
	"fmt"
	"io"
	"strings"

	"github.com/dsatrack/dsatrack/internal/config"
	"github.com/dsatrack/dsatrack/internal/readme"
	"github.com/dsatrack/dsatrack/internal/scaffold"
	"github.com/dsatrack/dsatrack/internal/topics"
	"github.com/spf13/afero"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Options configures a doctor run.
type Options struct {
	Fs       afero.Fs
	Settings config.Settings
	Fix      bool // create missing topic folders and the template
}

// Summary counts check outcomes.
type Summary struct {
	OK, Warn, Miss, Fail, Fixed int
}

// Healthy reports whether no check failed or found something missing.
func (s Summary) Healthy() bool {
	return s.Fail == 0 && s.Miss == 0
}

type run struct {
	w    io.Writer
	opts Options
	sum  Summary
}

func (r *run) ok(format string, args ...interface{}) {
	r.sum.OK++
	fmt.Fprintf(r.w, "  [ OK ] "+format+"\n", args...)
}

func (r *run) warn(format string, args ...interface{}) {
	r.sum.Warn++
	fmt.Fprintf(r.w, "  [WARN] "+format+"\n", args...)
}

func (r *run) miss(format string, args ...interface{}) {
	r.sum.Miss++
	fmt.Fprintf(r.w, "  [MISS] "+format+"\n", args...)
}

func (r *run) fail(format string, args ...interface{}) {
	r.sum.Fail++
	fmt.Fprintf(r.w, "  [FAIL] "+format+"\n", args...)
}

func (r *run) fixed(format string, args ...interface{}) {
	r.sum.Fixed++
	fmt.Fprintf(r.w, "  [FIX ] "+format+"\n", args...)
}

// Run performs every check, writing results to w.
func Run(w io.Writer, opts Options) Summary {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	r := &run{w: w, opts: opts}

	fmt.Fprintln(w, "Workspace check:")
	if !r.checkRoot() {
		return r.sum
	}

	fmt.Fprintln(w, "Topics check:")
	table := r.checkTopics()

	fmt.Fprintln(w, "Template check:")
	r.checkTemplate(table)

	fmt.Fprintln(w, "README check:")
	r.checkReadme(table)

	return r.sum
}

func (r *run) checkRoot() bool {
	root := r.opts.Settings.Root
	isDir, err := afero.DirExists(r.opts.Fs, root)
	if err != nil {
		r.fail("%s: %v", root, err)
		return false
	}
	if !isDir {
		r.fail("workspace root %s is not a directory", root)
		return false
	}
	r.ok("workspace root %s", root)
	return true
}

func (r *run) checkTopics() *topics.Table {
	s := r.opts.Settings
	table, err := topics.Load(r.opts.Fs, s.Resolve(s.TopicsFile))
	if err != nil {
		r.fail("%v", err)
		r.warn("falling back to the built-in topic table")
		table = topics.Default()
	} else if s.TopicsFile == "" {
		r.ok("built-in topic table (%d topics)", table.Len())
	} else {
		r.ok("%s (%d topics)", s.TopicsFile, table.Len())
	}

	missing := 0
	for _, tp := range table.All() {
		path := s.Resolve(tp.Folder)
		isDir, err := afero.DirExists(r.opts.Fs, path)
		if err == nil && isDir {
			continue
		}
		if !r.opts.Fix {
			missing++
			continue
		}
		if err := r.opts.Fs.MkdirAll(path, 0755); err != nil {
			r.fail("could not create %s: %v", path, err)
			continue
		}
		r.fixed("created %s", path)
	}

	switch {
	case missing == 0:
		r.ok("all topic folders present")
	case missing == table.Len():
		r.miss("no topic folders yet (they are created with the first question)")
	default:
		r.warn("%d of %d topic folders missing", missing, table.Len())
	}
	return table
}

func (r *run) checkTemplate(table *topics.Table) {
	s := r.opts.Settings
	sc := scaffold.New(scaffold.Config{
		Topics:       table,
		Fs:           r.opts.Fs,
		Root:         s.Root,
		TemplatePath: s.Template,
	})
	path := sc.TemplateFile()

	data, err := afero.ReadFile(r.opts.Fs, path)
	if err != nil {
		exists, _ := afero.Exists(r.opts.Fs, path)
		if exists {
			r.fail("%s: %v", path, err)
			return
		}
		if !r.opts.Fix {
			r.miss("%s not found (run 'dsa template init')", path)
			return
		}
		if _, err := sc.InitTemplate(false); err != nil {
			r.fail("could not create %s: %v", path, err)
			return
		}
		r.fixed("wrote built-in template to %s", path)
		return
	}

	if !strings.Contains(string(data), scaffold.Placeholder) {
		r.warn("%s has no %s placeholder", path, scaffold.Placeholder)
		return
	}
	r.ok("%s", path)
}

func (r *run) checkReadme(table *topics.Table) {
	path := r.opts.Settings.Resolve(r.opts.Settings.Readme)
	idx, err := readme.Load(r.opts.Fs, path, table)
	if err != nil {
		r.miss("%s not found", path)
		return
	}
	if len(idx.Questions) == 0 {
		r.warn("%s lists no questions", path)
		return
	}
	r.ok("%s", printer.Sprintf("%s lists %d questions (%d completed)", path, len(idx.Questions), idx.Completed(0)))
}
