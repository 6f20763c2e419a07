package output

import (
	"fmt"

	"github.com/fatih/color"
)

// ConsoleWriter prints a colored summary of the release to stdout.
type ConsoleWriter struct{}

// Write outputs the release report to the console.
func (w *ConsoleWriter) Write(report *Report, _ Options) error {
	color.Green("%s", report.Heading())
	fmt.Printf("Tags: %s ... %s\n", report.StartTag, report.EndTag)
	fmt.Printf("Date: %s\n\n", report.GeneratedAt.Format(reportDateLayout))

	if len(report.Commits) == 0 {
		color.Yellow("No significant changes.")
		return nil
	}

	color.Yellow("%d commits by %d authors", len(report.Commits), report.AuthorCount())
	fmt.Println()

	colorTitle := color.New(color.FgGreen).Add(color.Underline)
	colorSHA := color.New(color.FgYellow)

	for _, group := range report.Groups() {
		colorTitle.Printf("%s (%d)\n", group.Title, len(group.Commits))
		for _, c := range group.Commits {
			fmt.Printf("  - %s", c.Description)
			if c.Scope != "" {
				fmt.Printf(" (%s)", c.Scope)
			}
			colorSHA.Printf("  %s\n", c.SHA)
		}
		fmt.Println()
	}

	return nil
}
