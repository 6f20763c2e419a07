package git

import "time"

// Tag is a named reference to a point in history, with its creation
// time when one could be obtained.
type Tag struct {
	Name string
	When time.Time
	// Dated is false when no creation date was available or the date
	// failed to parse. Undated tags sort as the oldest possible.
	Dated bool
}

// TagListing is the result of enumerating repository tags. Dated
// reports whether creation dates were available for the listing as a
// whole; in the degraded fallback (plain name listing) it is false and
// only listing order holds.
type TagListing struct {
	Tags  []Tag
	Dated bool
}

// Commit represents minimal information about one commit in a history
// range. Date is the raw author date string as reported by the
// backend.
type Commit struct {
	SHA     string // short (8-character) hash
	Subject string
	Author  string
	Date    string
}

// Ancestry describes the relation between two references as reported
// by the backend.
type Ancestry int

const (
	// AncestryUnknown means the ancestry query itself failed.
	AncestryUnknown Ancestry = iota
	// AncestryUnrelated means the references share no common ancestor.
	AncestryUnrelated
	// AncestryAncestor means the first reference is an ancestor of the second.
	AncestryAncestor
	// AncestryNotAncestor means a common ancestor exists but the first
	// reference is not an ancestor of the second.
	AncestryNotAncestor
)

// String returns a string representation of the ancestry relation.
func (a Ancestry) String() string {
	switch a {
	case AncestryUnrelated:
		return "unrelated"
	case AncestryAncestor:
		return "ancestor"
	case AncestryNotAncestor:
		return "not-ancestor"
	default:
		return "unknown"
	}
}

// shortHashLen is the length commit hashes are truncated to for display
// and linking.
const shortHashLen = 8

func shortSHA(sha string) string {
	if len(sha) > shortHashLen {
		return sha[:shortHashLen]
	}
	return sha
}
