// Package notes builds the release notes model: commits enriched with
// their conventional classification, the category table, and the
// grouping of commits into document sections.
package notes

import (
	"github.com/alamaby/relnotes/internal/conventional"
	"github.com/alamaby/relnotes/internal/git"
)

// Commit is a single change enriched with its conventional commit
// classification. The derived fields depend on the subject line alone.
type Commit struct {
	SHA         string
	Subject     string
	Author      string
	Date        string
	Type        string
	Scope       string
	Description string
}

// FromGit classifies a raw commit.
func FromGit(c git.Commit) Commit {
	m := conventional.Parse(c.Subject)
	return Commit{
		SHA:         c.SHA,
		Subject:     c.Subject,
		Author:      c.Author,
		Date:        c.Date,
		Type:        m.Type,
		Scope:       m.Scope,
		Description: m.Description,
	}
}

// FromGitAll classifies a full history range, preserving order.
func FromGitAll(commits []git.Commit) []Commit {
	result := make([]Commit, len(commits))
	for i, c := range commits {
		result[i] = FromGit(c)
	}
	return result
}
