package declension

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ExceptionTable maps a lower-cased base word to case name to the full
// replacement form used instead of the rule-derived one.
//
// Tables are built once, before an engine is constructed, and are never
// modified afterwards.
type ExceptionTable map[string]map[string]string

// Lookup returns the replacement form of word for caseName. The match is
// exact on the lower-cased word.
func (t ExceptionTable) Lookup(word, caseName string) (string, bool) {
	forms, ok := t[strings.ToLower(word)]
	if !ok {
		return "", false
	}
	form, ok := forms[caseName]
	return form, ok && form != ""
}

// Merge returns a new table with the entries of t overlaid by those of
// other. Neither input is modified.
func (t ExceptionTable) Merge(other ExceptionTable) ExceptionTable {
	out := make(ExceptionTable, len(t)+len(other))
	for _, src := range []ExceptionTable{t, other} {
		for word, forms := range src {
			dst, ok := out[word]
			if !ok {
				dst = make(map[string]string, len(forms))
				out[word] = dst
			}
			for c, form := range forms {
				dst[c] = form
			}
		}
	}
	return out
}

// LoadExceptions parses a YAML exception table:
//
//	путь:
//	  genitive: пути
//	  instrumental: путём
//
// Base words and case names are lower-cased; forms are kept as written.
func LoadExceptions(r io.Reader) (ExceptionTable, error) {
	var raw map[string]map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil && err != io.EOF {
		return nil, fmt.Errorf("decode exceptions: %w", err)
	}
	t := make(ExceptionTable, len(raw))
	for word, forms := range raw {
		key := strings.ToLower(strings.TrimSpace(word))
		if key == "" {
			return nil, fmt.Errorf("decode exceptions: empty base word")
		}
		if HasSpace(key) {
			return nil, fmt.Errorf("decode exceptions: base word %q contains white space", word)
		}
		dst := make(map[string]string, len(forms))
		for c, form := range forms {
			dst[strings.ToLower(strings.TrimSpace(c))] = strings.TrimSpace(form)
		}
		t[key] = dst
	}
	return t, nil
}

// LoadExceptionsFile reads an exception table from path.
func LoadExceptionsFile(path string) (ExceptionTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open exceptions: %w", err)
	}
	defer f.Close()

	t, err := LoadExceptions(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}

// MustLoadExceptions parses data and panics on error. It is meant for
// tables embedded into a language package.
func MustLoadExceptions(data []byte) ExceptionTable {
	t, err := LoadExceptions(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	return t
}

// Validate checks that every case name in t is accepted by valid.
func (t ExceptionTable) Validate(valid func(caseName string) bool) error {
	for word, forms := range t {
		for c := range forms {
			if !valid(c) {
				return fmt.Errorf("exception %q: %w: %q", word, ErrUnknownCase, c)
			}
		}
	}
	return nil
}
