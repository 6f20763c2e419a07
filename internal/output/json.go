package output

import (
	"encoding/json"
	"os"
)

// JSONWriter writes the release report as JSON.
type JSONWriter struct{}

// JSONReport is the JSON output structure for a release.
type JSONReport struct {
	Repo     string        `json:"repo"`
	Title    string        `json:"title"`
	StartTag string        `json:"startTag"`
	EndTag   string        `json:"endTag"`
	Date     string        `json:"date"`
	Commits  int           `json:"commits"`
	Authors  int           `json:"authors"`
	Sections []JSONSection `json:"sections"`
}

// JSONSection is one category section of the JSON report.
type JSONSection struct {
	Key     string       `json:"key"`
	Title   string       `json:"title"`
	Commits []JSONCommit `json:"commits"`
}

// JSONCommit is the JSON output structure for a single commit.
type JSONCommit struct {
	SHA         string `json:"sha"`
	Type        string `json:"type"`
	Scope       string `json:"scope,omitempty"`
	Description string `json:"description"`
	Subject     string `json:"subject"`
	Author      string `json:"author"`
	Date        string `json:"date"`
}

// Write outputs the release report as indented JSON, written in one
// shot like the Markdown document.
func (w *JSONWriter) Write(report *Report, options Options) error {
	jsonReport := JSONReport{
		Repo:     report.RepoPath,
		Title:    report.Heading(),
		StartTag: report.StartTag,
		EndTag:   report.EndTag,
		Date:     report.GeneratedAt.Format(reportDateLayout),
		Commits:  len(report.Commits),
		Authors:  report.AuthorCount(),
		Sections: []JSONSection{},
	}

	for _, group := range report.Groups() {
		section := JSONSection{Key: group.Key, Title: group.Title}
		for _, c := range group.Commits {
			section.Commits = append(section.Commits, JSONCommit{
				SHA:         c.SHA,
				Type:        c.Type,
				Scope:       c.Scope,
				Description: c.Description,
				Subject:     c.Subject,
				Author:      c.Author,
				Date:        c.Date,
			})
		}
		jsonReport.Sections = append(jsonReport.Sections, section)
	}

	data, err := json.MarshalIndent(jsonReport, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	if options.OutputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(options.OutputPath, data, 0644)
}
