package notes

import "strings"

// Category is one key/title pair in a Table.
type Category struct {
	Key   string
	Title string
}

// Table maps lowercase category keys to section titles, in a fixed
// display order. Synonyms ("feat" and "feature") share a title but
// remain distinct keys for grouping. A Table is immutable after
// construction and safe to pass by value.
type Table struct {
	keys   []string
	titles map[string]string
}

// DefaultTable returns the built-in category table.
func DefaultTable() Table {
	return NewTable(defaultCategories())
}

func defaultCategories() []Category {
	return []Category{
		{"feat", "Features"},
		{"feature", "Features"},
		{"fix", "Bug Fixes"},
		{"bugfix", "Bug Fixes"},
		{"perf", "Performance Improvements"},
		{"performance", "Performance Improvements"},
		{"refactor", "Code Refactoring"},
		{"style", "Styling"},
		{"chore", "Chores"},
		{"docs", "Documentation"},
		{"doc", "Documentation"},
		{"test", "Tests"},
		{"testing", "Tests"},
		{"build", "Build System"},
		{"ci", "Continuous Integration"},
		{"revert", "Reverts"},
		{"other", "Other Changes"},
	}
}

// NewTable builds a Table from the given categories. Keys are
// lowercased; a repeated key keeps its first position but takes the
// last title, which lets callers extend the defaults with overrides.
func NewTable(categories []Category) Table {
	t := Table{titles: make(map[string]string, len(categories))}
	for _, c := range categories {
		key := strings.ToLower(strings.TrimSpace(c.Key))
		if key == "" {
			continue
		}
		if _, seen := t.titles[key]; !seen {
			t.keys = append(t.keys, key)
		}
		t.titles[key] = c.Title
	}
	return t
}

// Extend returns a new Table with the given categories appended to or
// overriding this one.
func (t Table) Extend(categories []Category) Table {
	merged := make([]Category, 0, len(t.keys)+len(categories))
	for _, key := range t.keys {
		merged = append(merged, Category{Key: key, Title: t.titles[key]})
	}
	return NewTable(append(merged, categories...))
}

// Keys returns the category keys in display order.
func (t Table) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Has reports whether key is a known category.
func (t Table) Has(key string) bool {
	_, ok := t.titles[key]
	return ok
}

// Title returns the section title for key, falling back to a
// title-cased key for categories not in the table.
func (t Table) Title(key string) string {
	if title, ok := t.titles[key]; ok {
		return title
	}
	return titleCase(key)
}

func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}
