package declension

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Policy governs which words of a multi-word input are inflected.
type Policy int

const (
	// PolicyAuto treats the input as a personal name when IsPersonalName
	// reports true and as a phrase otherwise.
	PolicyAuto Policy = iota
	// PolicyName inflects the parts of a personal name the language declines.
	PolicyName
	// PolicyPhrase inflects only the head word of a title or role phrase.
	PolicyPhrase
)

var policyNames = [...]string{
	PolicyAuto:   "auto",
	PolicyName:   "name",
	PolicyPhrase: "phrase",
}

func (p Policy) String() string {
	if p < 0 || int(p) >= len(policyNames) {
		return fmt.Sprintf("Policy(%d)", int(p))
	}
	return policyNames[p]
}

// ParsePolicy maps "auto", "name" or "phrase" to a Policy. The empty
// string is PolicyAuto.
func ParsePolicy(s string) (Policy, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return PolicyAuto, nil
	}
	for p, name := range policyNames {
		if name == s {
			return Policy(p), nil
		}
	}
	return PolicyAuto, fmt.Errorf("policy %q: %w", s, ErrUnknownPolicy)
}

// Resolve returns the concrete policy for words: PolicyName or
// PolicyPhrase are returned as-is, anything else is decided by
// IsPersonalName.
func (p Policy) Resolve(words []string) Policy {
	if p == PolicyName || p == PolicyPhrase {
		return p
	}
	if IsPersonalName(words) {
		return PolicyName
	}
	return PolicyPhrase
}

// IsPersonalName reports whether words look like a personal name: two to
// four words, each starting with a character equal to its own upper-case
// form (an upper-case letter, digit or punctuation).
func IsPersonalName(words []string) bool {
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		r, _ := utf8.DecodeRuneInString(w)
		if r == utf8.RuneError || unicode.ToUpper(r) != r {
			return false
		}
	}
	return true
}
