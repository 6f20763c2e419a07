package git

import "context"

// HistoryReader reads tags, commit ranges and ancestry information
// from a repository backend. This abstraction allows for easier
// testing and alternative backend implementations.
type HistoryReader interface {
	// Tags lists all tags, with creation dates when obtainable. When
	// the dated listing fails the implementation degrades to a plain
	// name listing and reports it via TagListing.Dated.
	Tags(ctx context.Context) (TagListing, error)

	// CommitsBetween returns the commits reachable from end but not
	// from start, newest first.
	CommitsBetween(ctx context.Context, start, end string) ([]Commit, error)

	// AncestryOf reports the ancestry relation between start and end.
	// A failing query is reported as AncestryUnknown, never as an
	// error, so callers can fall back to their current ordering.
	AncestryOf(ctx context.Context, start, end string) Ancestry
}

// Compile-time interface conformance checks.
var (
	_ HistoryReader = (*CLIReader)(nil)
	_ HistoryReader = (*GoGitReader)(nil)
)
