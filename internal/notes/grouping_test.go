package notes

import (
	"testing"

	"github.com/alamaby/relnotes/internal/git"
)

func classified(subjects ...string) []Commit {
	raw := make([]git.Commit, len(subjects))
	for i, s := range subjects {
		raw[i] = git.Commit{SHA: "abcd1234", Subject: s, Author: "Alice"}
	}
	return FromGitAll(raw)
}

func TestGroupByCategory_TwoSections(t *testing.T) {
	commits := classified(
		"refactor(api): improve error handling and logging",
		"fix: resolve bug",
	)

	groups := GroupByCategory(commits, DefaultTable())
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}

	// Table order puts fixes before refactorings.
	if groups[0].Title != "Bug Fixes" || len(groups[0].Commits) != 1 {
		t.Errorf("groups[0] = %q (%d commits), want Bug Fixes with 1", groups[0].Title, len(groups[0].Commits))
	}
	if groups[1].Title != "Code Refactoring" || len(groups[1].Commits) != 1 {
		t.Errorf("groups[1] = %q (%d commits), want Code Refactoring with 1", groups[1].Title, len(groups[1].Commits))
	}
}

func TestGroupByCategory_UnknownTypeFallsBackToOther(t *testing.T) {
	commits := classified("wip: half-finished thing", "just a plain subject")

	groups := GroupByCategory(commits, DefaultTable())
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}
	if groups[0].Key != "other" {
		t.Errorf("group key = %q, want other", groups[0].Key)
	}
	if len(groups[0].Commits) != 2 {
		t.Errorf("other group has %d commits, want 2", len(groups[0].Commits))
	}
}

func TestGroupByCategory_NoEmptyGroupsAndUnionPreserved(t *testing.T) {
	commits := classified(
		"feat: one",
		"feat(ui): two",
		"fix: three",
		"docs: four",
		"feat: five",
	)

	groups := GroupByCategory(commits, DefaultTable())

	total := 0
	for _, g := range groups {
		if len(g.Commits) == 0 {
			t.Errorf("group %q is empty", g.Key)
		}
		total += len(g.Commits)
	}
	if total != len(commits) {
		t.Errorf("grouped %d commits, want %d", total, len(commits))
	}

	// Original order is preserved within a group.
	var feats []Commit
	for _, g := range groups {
		if g.Key == "feat" {
			feats = g.Commits
		}
	}
	if len(feats) != 3 {
		t.Fatalf("feat group has %d commits, want 3", len(feats))
	}
	wantOrder := []string{"one", "two", "five"}
	for i, want := range wantOrder {
		if feats[i].Description != want {
			t.Errorf("feat[%d].Description = %q, want %q", i, feats[i].Description, want)
		}
	}
}

func TestGroupByCategory_Empty(t *testing.T) {
	if groups := GroupByCategory(nil, DefaultTable()); len(groups) != 0 {
		t.Errorf("got %d groups for no commits, want 0", len(groups))
	}
}

func TestFromGit_DerivedFields(t *testing.T) {
	c := FromGit(git.Commit{
		SHA:     "deadbeef",
		Subject: "feat(auth): add login functionality",
		Author:  "Alice",
		Date:    "Mon Mar 1 12:00:00 2023 +0900",
	})

	if c.Type != "feat" || c.Scope != "auth" || c.Description != "add login functionality" {
		t.Errorf("derived triple = (%q, %q, %q)", c.Type, c.Scope, c.Description)
	}
	if c.Subject != "feat(auth): add login functionality" || c.SHA != "deadbeef" {
		t.Errorf("raw fields not preserved: %+v", c)
	}
}
