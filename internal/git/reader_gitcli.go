package git

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// tagListFormat yields one "name|ISO-date" line per tag.
const tagListFormat = "%(refname:short)|%(creatordate:iso)"

// commitLogFormat yields one "hash|author|date|subject" line per commit.
const commitLogFormat = "%H|%an|%ad|%s"

// CLIReader reads history through the git command line client.
type CLIReader struct {
	runner Runner
}

// NewCLIReader creates a reader for the repository at repoPath. It
// fails when the path is not inside a Git repository.
func NewCLIReader(ctx context.Context, repoPath string) (*CLIReader, error) {
	r := &CLIReader{runner: CLIRunner{RepoPath: repoPath}}
	if _, err := r.runner.Run(ctx, "rev-parse", "--git-dir"); err != nil {
		return nil, fmt.Errorf("%q is not a Git repository", repoPath)
	}
	return r, nil
}

// Tags lists all tags with their creation dates. When the dated
// listing fails it degrades to a plain `git tag -l` listing; failure
// of the fallback itself is fatal.
func (r *CLIReader) Tags(ctx context.Context) (TagListing, error) {
	out, err := r.runner.Run(ctx, "for-each-ref", "--format="+tagListFormat, "refs/tags")
	if err == nil {
		return TagListing{Tags: parseDatedTagLines(out), Dated: true}, nil
	}

	out, err = r.runner.Run(ctx, "tag", "-l")
	if err != nil {
		return TagListing{}, fmt.Errorf("list tags: %w", err)
	}
	return TagListing{Tags: parsePlainTagLines(out)}, nil
}

// CommitsBetween returns the commits in start..end, newest first.
func (r *CLIReader) CommitsBetween(ctx context.Context, start, end string) ([]Commit, error) {
	out, err := r.runner.Run(ctx, "log", "--oneline", "--pretty=format:"+commitLogFormat, start+".."+end)
	if err != nil {
		return nil, fmt.Errorf("read commits %s..%s: %w", start, end, err)
	}
	return parseCommitLines(out), nil
}

// AncestryOf reports the relation between start and end using
// merge-base queries. Failure of the presence query keeps the result
// unknown; a failing --is-ancestor check means start is not an
// ancestor of end (git signals that through the exit code).
func (r *CLIReader) AncestryOf(ctx context.Context, start, end string) Ancestry {
	base, err := r.runner.Run(ctx, "merge-base", start, end)
	if err != nil {
		return AncestryUnknown
	}
	if base == "" {
		return AncestryUnrelated
	}
	if _, err := r.runner.Run(ctx, "merge-base", "--is-ancestor", start, end); err != nil {
		return AncestryNotAncestor
	}
	return AncestryAncestor
}

func parseDatedTagLines(out string) []Tag {
	var tags []Tag
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !strings.Contains(line, "|") {
			continue
		}
		parts := strings.SplitN(line, "|", 2)
		tag := Tag{Name: parts[0]}
		// The ISO date carries a time and zone; only the calendar day
		// is used for ordering. An unparseable date is a soft failure
		// that leaves the tag undated.
		if fields := strings.Fields(parts[1]); len(fields) > 0 {
			if when, err := time.Parse("2006-01-02", fields[0]); err == nil {
				tag.When = when
				tag.Dated = true
			}
		}
		tags = append(tags, tag)
	}
	return tags
}

func parsePlainTagLines(out string) []Tag {
	var tags []Tag
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		tags = append(tags, Tag{Name: line})
	}
	return tags
}

func parseCommitLines(out string) []Commit {
	var commits []Commit
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "|", 4)
		if len(parts) < 4 {
			continue
		}
		commits = append(commits, Commit{
			SHA:     shortSHA(parts[0]),
			Author:  parts[1],
			Date:    parts[2],
			Subject: parts[3],
		})
	}
	return commits
}
