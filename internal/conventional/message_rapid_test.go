package conventional

import (
	"testing"

	"pgregory.net/rapid"
)

// Parsing is total and deterministic: no input fails, and the same
// subject always yields the same triple.
func TestParse_TotalAndDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		subject := rapid.String().Draw(t, "subject")

		first := Parse(subject)
		second := Parse(subject)
		if first != second {
			t.Fatalf("Parse(%q) not deterministic: %+v vs %+v", subject, first, second)
		}

		if first.Type == "" {
			t.Fatalf("Parse(%q) yielded empty type: %+v", subject, first)
		}
	})
}

// Well-formed conventional subjects round-trip exactly.
func TestParse_RecoversConventionalSubjects(t *testing.T) {
	typeGen := rapid.StringMatching(`[a-z0-9_]{1,12}`)
	scopeGen := rapid.StringMatching(`[A-Za-z0-9_./-]{1,12}`)
	descGen := rapid.StringMatching(`([!-~][ -~]{0,40})?`)

	rapid.Check(t, func(t *rapid.T) {
		typ := typeGen.Draw(t, "type")
		desc := descGen.Draw(t, "desc")

		var subject string
		var want Message
		if rapid.Bool().Draw(t, "withScope") {
			scope := scopeGen.Draw(t, "scope")
			subject = typ + "(" + scope + "): " + desc
			want = Message{Type: typ, Scope: scope, Description: desc}
		} else {
			subject = typ + ": " + desc
			want = Message{Type: typ, Description: desc}
		}

		if got := Parse(subject); got != want {
			t.Fatalf("Parse(%q) = %+v, want %+v", subject, got, want)
		}
	})
}
