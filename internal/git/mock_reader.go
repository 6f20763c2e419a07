package git

import "context"

// MockHistoryReader is a test double for HistoryReader. It allows
// tests to provide predefined tags, commits and ancestry relations
// without needing a real Git repository.
type MockHistoryReader struct {
	Listing    TagListing
	ListingErr error
	Commits    []Commit
	CommitsErr error
	Relation   Ancestry

	// AncestryCalls records the (start, end) pairs queried.
	AncestryCalls [][2]string
}

// Tags returns the predefined tag listing or error.
func (m *MockHistoryReader) Tags(_ context.Context) (TagListing, error) {
	return m.Listing, m.ListingErr
}

// CommitsBetween returns the predefined commits or error.
func (m *MockHistoryReader) CommitsBetween(_ context.Context, _, _ string) ([]Commit, error) {
	return m.Commits, m.CommitsErr
}

// AncestryOf records the query and returns the predefined relation.
func (m *MockHistoryReader) AncestryOf(_ context.Context, start, end string) Ancestry {
	m.AncestryCalls = append(m.AncestryCalls, [2]string{start, end})
	return m.Relation
}

// Compile-time interface conformance check.
var _ HistoryReader = (*MockHistoryReader)(nil)
