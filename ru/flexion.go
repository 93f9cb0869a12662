// Package ru declines Russian nouns, personal names and role phrases.
//
// Classification is driven by the final letter of the word (see Classify);
// a small exception table covers nouns the ending tables get wrong, and
// surnames in -ов/-ев get their own instrumental ending.
package ru

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/cours-de-latin/declension"
)

//go:embed data/exceptions.yaml
var exceptionsYAML []byte

// builtin is the exception table shipped with the package.
var builtin = declension.MustLoadExceptions(exceptionsYAML)

// surnameInstrumental maps a surname suffix to the ending appended to the
// whole word in the instrumental case: Иванов → Ивановым.
var surnameInstrumental = []struct{ suffix, ending string }{
	{"ов", "ым"},
	{"ев", "ем"},
}

// Engine declines Russian words. It is immutable once built and safe for
// concurrent use.
type Engine struct {
	exceptions declension.ExceptionTable
}

// Option configures New.
type Option func(*Engine) error

// WithExceptions overlays extra exception entries on the built-in table.
func WithExceptions(t declension.ExceptionTable) Option {
	return func(e *Engine) error {
		if err := t.Validate(func(name string) bool {
			c, ok := ParseCase(name)
			return ok && c != Nominative
		}); err != nil {
			return fmt.Errorf("ru: %w", err)
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

// Inflect declines a single word into c.
//
// Nominative returns word unchanged. The exception table is consulted
// next, then the surname rule for the instrumental, then the ending
// tables. The first letter of the result keeps the case of word's first
// letter.
func (e *Engine) Inflect(word string, c Case) (string, error) {
	if word == "" {
		return "", fmt.Errorf("ru: %w", declension.ErrInvalidInput)
	}
	if c == Nominative {
		return word, nil
	}
	if form, ok := e.exceptions.Lookup(word, c.String()); ok {
		return declension.MatchCase(word, form), nil
	}
	if c == Instrumental {
		lower := strings.ToLower(word)
		for _, s := range surnameInstrumental {
			if strings.HasSuffix(lower, s.suffix) {
				return word + s.ending, nil
			}
		}
	}
	class, stem := Classify(word)
	if class == Indeclinable {
		return word, nil
	}
	return stem + Ending(class, c), nil
}
