package git

import (
	"context"
	"fmt"
	"strings"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
)

// gitDateLayout matches git's default author date format.
const gitDateLayout = "Mon Jan 2 15:04:05 2006 -0700"

// GoGitReader reads history through go-git, avoiding the need for a
// git executable on the host.
type GoGitReader struct {
	repo *gogit.Repository
}

// NewGoGitReader opens the repository at repoPath.
func NewGoGitReader(repoPath string) (*GoGitReader, error) {
	repo, err := gogit.PlainOpen(repoPath)
	if err != nil {
		return nil, fmt.Errorf("%q is not a Git repository: %w", repoPath, err)
	}
	return &GoGitReader{repo: repo}, nil
}

// Tags lists all tags with their creation dates. Annotated tags use
// the tagger time, lightweight tags the committer time of the target.
func (g *GoGitReader) Tags(_ context.Context) (TagListing, error) {
	iter, err := g.repo.Tags()
	if err != nil {
		return TagListing{}, fmt.Errorf("list tags: %w", err)
	}

	var tags []Tag
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		when, dated := g.tagTime(ref)
		tags = append(tags, Tag{Name: ref.Name().Short(), When: when, Dated: dated})
		return nil
	})
	if err != nil {
		return TagListing{}, fmt.Errorf("list tags: %w", err)
	}

	return TagListing{Tags: tags, Dated: true}, nil
}

func (g *GoGitReader) tagTime(ref *plumbing.Reference) (time.Time, bool) {
	if tag, err := g.repo.TagObject(ref.Hash()); err == nil {
		return tag.Tagger.When, true
	}
	if commit, err := g.repo.CommitObject(ref.Hash()); err == nil {
		return commit.Committer.When, true
	}
	return time.Time{}, false
}

// CommitsBetween returns the commits in start..end, newest first by
// committer time, excluding start and its ancestry.
func (g *GoGitReader) CommitsBetween(_ context.Context, start, end string) ([]Commit, error) {
	startCommit, err := g.commit(start)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", start, err)
	}
	endCommit, err := g.commit(end)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", end, err)
	}

	// Exclude the whole ancestry of start, not just start itself;
	// otherwise a merged side branch would reach commits below start
	// and the range would disagree with `git log start..end`.
	excluded := make(map[plumbing.Hash]bool)
	ancestry := object.NewCommitPreorderIter(startCommit, nil, nil)
	err = ancestry.ForEach(func(c *object.Commit) error {
		excluded[c.Hash] = true
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read commits %s..%s: %w", start, end, err)
	}

	var commits []Commit
	iter := object.NewCommitIterCTime(endCommit, excluded, nil)
	err = iter.ForEach(func(c *object.Commit) error {
		subject := c.Message
		if idx := strings.IndexByte(subject, '\n'); idx != -1 {
			subject = subject[:idx]
		}
		commits = append(commits, Commit{
			SHA:     shortSHA(c.Hash.String()),
			Subject: subject,
			Author:  c.Author.Name,
			Date:    c.Author.When.Format(gitDateLayout),
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("read commits %s..%s: %w", start, end, err)
	}

	return commits, nil
}

// AncestryOf reports the relation between start and end via
// merge-base. Any query failure is reported as unknown.
func (g *GoGitReader) AncestryOf(_ context.Context, start, end string) Ancestry {
	startCommit, err := g.commit(start)
	if err != nil {
		return AncestryUnknown
	}
	endCommit, err := g.commit(end)
	if err != nil {
		return AncestryUnknown
	}

	bases, err := startCommit.MergeBase(endCommit)
	if err != nil {
		return AncestryUnknown
	}
	if len(bases) == 0 {
		return AncestryUnrelated
	}

	isAncestor, err := startCommit.IsAncestor(endCommit)
	if err != nil {
		return AncestryUnknown
	}
	if !isAncestor {
		return AncestryNotAncestor
	}
	return AncestryAncestor
}

func (g *GoGitReader) commit(rev string) (*object.Commit, error) {
	hash, err := g.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, err
	}
	return g.repo.CommitObject(*hash)
}
