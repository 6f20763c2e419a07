package output

import (
	"fmt"
	"io"
	"os"
	"strings"
)

const reportDateLayout = "2006-01-02"

// noChangesNotice is rendered in place of the category sections when
// the tag range contains no commits.
const noChangesNotice = "No significant changes.\n\n"

// MarkdownWriter renders release notes as a Markdown document.
type MarkdownWriter struct{}

// Write renders the report and writes it in one shot, so a failure
// never leaves a partial document behind.
func (w *MarkdownWriter) Write(report *Report, options Options) error {
	content := w.Render(report)
	if options.OutputPath == "" {
		_, err := io.WriteString(os.Stdout, content)
		return err
	}
	return os.WriteFile(options.OutputPath, []byte(content), 0644)
}

// Render produces the full Markdown document.
func (w *MarkdownWriter) Render(report *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", report.Heading())
	fmt.Fprintf(&b, "**Release Date:** %s\n\n", report.GeneratedAt.Format(reportDateLayout))
	fmt.Fprintf(&b, "**Tags:** `%s` ... `%s`\n\n", report.StartTag, report.EndTag)

	if len(report.Commits) == 0 {
		b.WriteString(noChangesNotice)
		return b.String()
	}

	fmt.Fprintf(&b, "**Summary:** %d commits by %d authors\n\n", len(report.Commits), report.AuthorCount())

	for _, group := range report.Groups() {
		fmt.Fprintf(&b, "## %s\n\n", group.Title)
		for _, c := range group.Commits {
			scope := ""
			if c.Scope != "" {
				scope = fmt.Sprintf(" **(%s)**", c.Scope)
			}
			fmt.Fprintf(&b, "- %s%s ([`%s`](%s/commit/%s))\n", c.Description, scope, c.SHA, report.RepoURL, c.SHA)
		}
		b.WriteString("\n")
	}

	b.WriteString("## All Commits\n\n")
	for _, c := range report.Commits {
		fmt.Fprintf(&b, "- [`%s`](%s) - %s\n", c.Subject, c.SHA, c.Author)
	}

	return b.String()
}
