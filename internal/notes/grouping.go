package notes

import "github.com/alamaby/relnotes/internal/conventional"

// Group is one non-empty category section of the document.
type Group struct {
	Key     string
	Title   string
	Commits []Commit
}

// GroupByCategory buckets commits by category in table order, keeping
// commits in their original order within each bucket and dropping
// empty categories. Types not present in the table land in the
// fallback category.
func GroupByCategory(commits []Commit, table Table) []Group {
	buckets := make(map[string][]Commit)
	for _, c := range commits {
		key := c.Type
		if !table.Has(key) {
			key = conventional.FallbackType
		}
		buckets[key] = append(buckets[key], c)
	}

	var groups []Group
	for _, key := range table.Keys() {
		if len(buckets[key]) == 0 {
			continue
		}
		groups = append(groups, Group{Key: key, Title: table.Title(key), Commits: buckets[key]})
	}
	return groups
}
