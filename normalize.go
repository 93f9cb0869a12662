package declension

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// MatchCase transplants the case of src's first letter onto form.
// A src starting with a character equal to its own upper-case form
// (upper-case letters, digits, punctuation) yields form with its first
// letter upper-cased; otherwise the first letter is lower-cased. The rest
// of form is left untouched.
func MatchCase(src, form string) string {
	s, _ := utf8.DecodeRuneInString(src)
	f, size := utf8.DecodeRuneInString(form)
	if s == utf8.RuneError || f == utf8.RuneError {
		return form
	}
	var want rune
	if unicode.ToUpper(s) == s {
		want = unicode.ToUpper(f)
	} else {
		want = unicode.ToLower(f)
	}
	if want == f {
		return form
	}
	return string(want) + form[size:]
}

// Fields splits text around runs of white space.
func Fields(text string) []string {
	return strings.Fields(text)
}

// HasSpace reports whether s contains any white space.
func HasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}

// LastRune returns the lower-cased final letter of word, or 0 for an
// empty word.
func LastRune(word string) rune {
	r, _ := utf8.DecodeLastRuneInString(word)
	if r == utf8.RuneError {
		return 0
	}
	return unicode.ToLower(r)
}

// TrimLastRune returns word without its final letter.
func TrimLastRune(word string) string {
	_, size := utf8.DecodeLastRuneInString(word)
	return word[:len(word)-size]
}

// HasAnySuffix reports whether the lower-cased word ends in one of suffixes.
func HasAnySuffix(word string, suffixes ...string) bool {
	lower := strings.ToLower(word)
	for _, s := range suffixes {
		if strings.HasSuffix(lower, s) {
			return true
		}
	}
	return false
}
