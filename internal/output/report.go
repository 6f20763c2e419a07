package output

import (
	"time"

	"github.com/alamaby/relnotes/internal/notes"
)

// Compile-time interface conformance checks.
var (
	_ ReportWriter = (*MarkdownWriter)(nil)
	_ ReportWriter = (*ConsoleWriter)(nil)
	_ ReportWriter = (*JSONWriter)(nil)
)

// OutputFormat represents the output format type.
type OutputFormat string

const (
	FormatMarkdown OutputFormat = "markdown"
	FormatConsole  OutputFormat = "console"
	FormatJSON     OutputFormat = "json"
)

// ParseFormat maps a format flag value to an OutputFormat, defaulting
// to Markdown.
func ParseFormat(s string) OutputFormat {
	switch s {
	case "console":
		return FormatConsole
	case "json":
		return FormatJSON
	default:
		return FormatMarkdown
	}
}

// Options control output behavior.
type Options struct {
	// OutputPath is the file to write; empty writes to stdout.
	OutputPath string
}

// Report holds everything needed to render release notes for one tag
// range.
type Report struct {
	RepoPath    string
	StartTag    string
	EndTag      string
	Title       string
	RepoURL     string
	GeneratedAt time.Time
	Commits     []notes.Commit
	Table       notes.Table
}

// Heading returns the release title, defaulting to "Release <end tag>".
func (r *Report) Heading() string {
	if r.Title != "" {
		return r.Title
	}
	return "Release " + r.EndTag
}

// AuthorCount returns the number of distinct commit authors.
func (r *Report) AuthorCount() int {
	seen := make(map[string]struct{}, len(r.Commits))
	for _, c := range r.Commits {
		seen[c.Author] = struct{}{}
	}
	return len(seen)
}

// Groups returns the non-empty category sections of the report.
func (r *Report) Groups() []notes.Group {
	return notes.GroupByCategory(r.Commits, r.Table)
}

// ReportWriter renders a release report.
type ReportWriter interface {
	Write(report *Report, options Options) error
}

// NewReportWriter creates a report writer for the specified format.
func NewReportWriter(format OutputFormat) ReportWriter {
	switch format {
	case FormatConsole:
		return &ConsoleWriter{}
	case FormatJSON:
		return &JSONWriter{}
	default:
		return &MarkdownWriter{}
	}
}
