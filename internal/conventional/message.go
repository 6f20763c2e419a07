// Package conventional parses commit subjects following the
// conventional commit convention, `type(scope): description`.
package conventional

import (
	"regexp"
	"strings"
)

// FallbackType is the category assigned to subjects that do not follow
// the conventional format.
const FallbackType = "other"

// Message is the parsed form of a commit subject.
type Message struct {
	Type        string
	Scope       string
	Description string
}

// subjectPattern matches `type(scope): description` anchored at the
// start of the subject. The scope group requires at least one
// character, so a literal empty scope "()" fails the whole match and
// the subject falls through to the fallback branch.
var subjectPattern = regexp.MustCompile(`^(\w+)(?:\(([^)]+)\))?:\s*(.*)`)

// Parse extracts the type, scope and description from a commit
// subject. It is total and deterministic: any input yields a Message,
// and a subject outside the convention is kept verbatim as the
// description of a FallbackType message. The description is everything
// after the first matching colon, so further colons are preserved as
// written.
func Parse(subject string) Message {
	m := subjectPattern.FindStringSubmatch(subject)
	if m == nil {
		return Message{Type: FallbackType, Description: subject}
	}
	return Message{
		Type:        strings.ToLower(m[1]),
		Scope:       m[2],
		Description: m[3],
	}
}
