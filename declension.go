// Package declension inflects words, personal names and short phrases into a
// requested grammatical case. Each supported language is an Engine; a
// Registry maps language codes to engines and is the single entry point
// used by the command-line tool and the HTTP server.
//
// The language engines live in sub-packages (ru, kz). A Registry is built
// explicitly at startup:
//
//	r, _ := ru.New()
//	k, _ := kz.New()
//	reg, err := declension.NewRegistry(r.Language(), k.Language())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	out, err := reg.InflectWord("Иван Иванович Петров", "ru", "genitive", declension.Options{})
//	// out == "Ивана Ивановича Петрова"
package declension

import (
	"fmt"
	"sort"
	"strings"
)

// Engine is implemented by every language engine.
//
// InflectWord handles a single whitespace-free word; InflectGroup handles a
// whitespace-separated sequence and applies the language's word-selection
// policy. Case names are the engine's own identifiers (see CaseNames).
type Engine interface {
	// Code is the language code the engine registers under (e.g. "ru").
	Code() string
	// CaseNames lists the accepted case identifiers, base case first.
	CaseNames() []string
	InflectWord(word, caseName string) (string, error)
	InflectGroup(text, caseName string, policy Policy) (string, error)
}

// Options tunes a Registry.InflectWord call.
type Options struct {
	// Policy selects which words of a multi-word input are inflected.
	// The zero value is PolicyAuto.
	Policy Policy
}

// Registry maps language codes to engines.
//
// Registration must complete before the first lookup; a Registry is not
// safe for concurrent Register and InflectWord calls. Once populated it is
// read-only and may be shared freely.
type Registry struct {
	engines map[string]Engine
}

// NewRegistry returns a Registry holding engines under their own codes.
func NewRegistry(engines ...Engine) (*Registry, error) {
	r := &Registry{engines: make(map[string]Engine, len(engines))}
	for _, e := range engines {
		if err := r.Register(e.Code(), e); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register adds engine under code. Codes are case-insensitive.
func (r *Registry) Register(code string, engine Engine) error {
	code = strings.ToLower(strings.TrimSpace(code))
	if code == "" {
		return fmt.Errorf("register: empty language code")
	}
	if engine == nil {
		return fmt.Errorf("register %q: nil engine", code)
	}
	if _, dup := r.engines[code]; dup {
		return fmt.Errorf("register %q: language already registered", code)
	}
	r.engines[code] = engine
	return nil
}

// Engine returns the engine registered under code.
func (r *Registry) Engine(code string) (Engine, error) {
	e, ok := r.engines[strings.ToLower(strings.TrimSpace(code))]
	if !ok {
		return nil, fmt.Errorf("language %q: %w", code, ErrUnsupportedLanguage)
	}
	return e, nil
}

// Languages returns the registered language codes in sorted order.
func (r *Registry) Languages() []string {
	out := make([]string, 0, len(r.engines))
	for code := range r.engines {
		out = append(out, code)
	}
	sort.Strings(out)
	return out
}

// InflectWord inflects word (a single word or a multi-word name/phrase)
// into caseName using the engine registered for lang. Inputs containing
// whitespace go through the engine's group inflector with opts.Policy.
func (r *Registry) InflectWord(word, lang, caseName string, opts Options) (string, error) {
	word = strings.TrimSpace(word)
	if word == "" {
		return "", fmt.Errorf("inflect: %w", ErrInvalidInput)
	}
	e, err := r.Engine(lang)
	if err != nil {
		return "", err
	}
	if HasSpace(word) {
		return e.InflectGroup(word, caseName, opts.Policy)
	}
	return e.InflectWord(word, caseName)
}

// InflectText is a convenience loop over the words of a sentence. With
// firstWordOnly set, only the first word is inflected and the rest are
// kept; otherwise every word is inflected on its own, ignoring any name
// policy. Empty text yields an empty result.
func (r *Registry) InflectText(text, lang, caseName string, firstWordOnly bool) (string, error) {
	words := Fields(text)
	if len(words) == 0 {
		return "", nil
	}
	e, err := r.Engine(lang)
	if err != nil {
		return "", err
	}
	for i, w := range words {
		if firstWordOnly && i > 0 {
			break
		}
		out, err := e.InflectWord(w, caseName)
		if err != nil {
			return "", err
		}
		words[i] = out
	}
	return strings.Join(words, " "), nil
}
