// Package resolve picks the two tags to diff for a release and
// establishes their chronological order.
package resolve

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/alamaby/relnotes/internal/git"
)

var (
	// ErrNoTags is returned when the repository has no (matching) tags.
	ErrNoTags = errors.New("no tags found in the repository")
	// ErrNotEnoughTags is returned when fewer than two distinct tags
	// are available to diff.
	ErrNotEnoughTags = errors.New("need at least 2 tags to generate release notes between them")
)

// Range is an ordered pair of tags to diff. On the happy path Start is
// chronologically before End; when neither dates nor ancestry
// information are available the pair reflects caller-supplied or
// listing order, a documented limitation of the degraded modes.
type Range struct {
	Start string
	End   string
}

// Options control tag selection.
type Options struct {
	// Start is the explicit start tag; empty selects the second newest.
	Start string
	// End is the explicit end tag; empty selects the newest.
	End string
	// Pattern, when set, restricts candidate tags to names matching
	// this doublestar pattern.
	Pattern string
}

// Resolver selects and orders release tag ranges using a history
// backend for the ancestry cross-check.
type Resolver struct {
	reader git.HistoryReader
}

// New creates a Resolver on top of the given reader.
func New(reader git.HistoryReader) *Resolver {
	return &Resolver{reader: reader}
}

// Resolve determines the tag range to diff. Selection defaults come
// from the date-ordered tag listing; after selection the pair is
// cross-checked against the ancestry relation, since a listing ordered
// by creation date can disagree with history when tags were created
// out of order. The pair is swapped only when a common ancestor exists
// and Start is provably not an ancestor of End; an unrelated pair or a
// failing ancestry query keeps the original order.
func (r *Resolver) Resolve(ctx context.Context, opts Options) (Range, error) {
	listing, err := r.reader.Tags(ctx)
	if err != nil {
		return Range{}, err
	}

	ordered, err := Order(listing, opts.Pattern)
	if err != nil {
		return Range{}, err
	}

	if len(ordered) == 0 {
		return Range{}, ErrNoTags
	}
	if len(ordered) < 2 {
		return Range{}, ErrNotEnoughTags
	}

	rng := Range{Start: opts.Start, End: opts.End}
	if rng.End == "" {
		rng.End = ordered[0].Name
	}
	if rng.Start == "" {
		for _, tag := range ordered[1:] {
			if tag.Name != rng.End {
				rng.Start = tag.Name
				break
			}
		}
		if rng.Start == "" {
			return Range{}, ErrNotEnoughTags
		}
	}

	if r.reader.AncestryOf(ctx, rng.Start, rng.End) == git.AncestryNotAncestor {
		rng.Start, rng.End = rng.End, rng.Start
	}

	return rng, nil
}

// Order returns the listing's tags filtered by pattern and, when dates
// are available, sorted newest first. Undated tags sort as the oldest
// possible; in the degraded name-only mode listing order is kept.
func Order(listing git.TagListing, pattern string) ([]git.Tag, error) {
	tags := listing.Tags
	if pattern != "" {
		filtered := make([]git.Tag, 0, len(tags))
		for _, tag := range tags {
			ok, err := doublestar.Match(pattern, tag.Name)
			if err != nil {
				return nil, fmt.Errorf("invalid tag pattern %q: %w", pattern, err)
			}
			if ok {
				filtered = append(filtered, tag)
			}
		}
		tags = filtered
	}

	if !listing.Dated {
		return tags, nil
	}

	ordered := make([]git.Tag, len(tags))
	copy(ordered, tags)
	// Stable so tags sharing a day keep their listing order; an
	// undated tag has the zero time and therefore sinks to the end.
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].When.After(ordered[j].When)
	})
	return ordered, nil
}
