// Package kz declines Kazakh nouns and names by suffixation.
//
// Each oblique case has its own rule (see rules.go). A rule picks a front
// or back affix by vowel harmony and an initial consonant by the sound the
// word ends in. Possessive stems (баласы) and Russian surnames (Иванов)
// get their own branches.
package kz

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/cours-de-latin/declension"
)

//go:embed data/exceptions.yaml
var exceptionsYAML []byte

var builtin = declension.MustLoadExceptions(exceptionsYAML)

// Engine declines Kazakh words. It is immutable once built and safe for
// concurrent use.
type Engine struct {
	exceptions declension.ExceptionTable
}

// Option configures New.
type Option func(*Engine) error

// WithExceptions overlays extra exception entries on the built-in table.
// Case keys must be native case names.
func WithExceptions(t declension.ExceptionTable) Option {
	return func(e *Engine) error {
		if err := t.Validate(func(name string) bool {
			_, ok := rules[caseByName[name]]
			return ok
		}); err != nil {
			return fmt.Errorf("kz: %w", err)
		}
		e.exceptions = e.exceptions.Merge(t)
		return nil
	}
}

// New returns an Engine using the built-in exception table and opts.
func New(opts ...Option) (*Engine, error) {
	e := &Engine{exceptions: builtin}
	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}
	return e, nil
}

var std = &Engine{exceptions: builtin}

// Inflect declines word into c using the built-in exception table.
func Inflect(word string, c Case) (string, error) {
	return std.Inflect(word, c)
}

// InflectGroup declines text using the built-in exception table.
func InflectGroup(text string, c Case, policy declension.Policy) (string, error) {
	return std.InflectGroup(text, c, policy)
}

// Inflect declines a single word into c. Ataw returns word unchanged; a
// value outside the seven cases fails with declension.ErrUnknownCase.
func (e *Engine) Inflect(word string, c Case) (string, error) {
	if word == "" {
		return "", fmt.Errorf("kz: %w", declension.ErrInvalidInput)
	}
	if c == Ataw {
		return word, nil
	}
	apply, ok := rules[c]
	if !ok {
		return "", fmt.Errorf("kz: %w: %s", declension.ErrUnknownCase, c)
	}
	if form, ok := e.exceptions.Lookup(word, c.String()); ok {
		return declension.MatchCase(word, form), nil
	}
	return apply(word), nil
}

// InflectGroup declines a whitespace-separated name or phrase. Kazakh
// phrases are head-final and given names and patronymics stay in the
// nominative, so under every policy only the last word is declined.
func (e *Engine) InflectGroup(text string, c Case, _ declension.Policy) (string, error) {
	words := declension.Fields(text)
	if len(words) == 0 {
		return "", fmt.Errorf("kz: %w", declension.ErrInvalidInput)
	}
	last := len(words) - 1
	out, err := e.Inflect(words[last], c)
	if err != nil {
		return "", err
	}
	words[last] = out
	return strings.Join(words, " "), nil
}

// Language returns e as a declension.Engine addressed by case names.
func (e *Engine) Language() declension.Engine { return language{e} }

type language struct{ e *Engine }

func (language) Code() string { return "kz" }

func (language) CaseNames() []string {
	out := make([]string, len(Cases))
	for i, c := range Cases {
		out[i] = c.String()
	}
	return out
}

func (l language) InflectWord(word, caseName string) (string, error) {
	if word == "" {
		return "", fmt.Errorf("kz: %w", declension.ErrInvalidInput)
	}
	c, err := ParseCase(caseName)
	if err != nil {
		return "", err
	}
	return l.e.Inflect(word, c)
}

func (l language) InflectGroup(text, caseName string, policy declension.Policy) (string, error) {
	c, err := ParseCase(caseName)
	if err != nil {
		return "", err
	}
	return l.e.InflectGroup(text, c, policy)
}
