package ru

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/declension"
)

// kazakhPatronymics are the patronymic markers of Kazakh names (son of /
// daughter of), in Kazakh and Russian spelling. They do not decline in a
// Russian sentence.
var kazakhPatronymics = []string{"ұлы", "қызы", "улы", "кызы"}

// InflectGroup declines a whitespace-separated name or phrase.
//
// PolicyPhrase declines only the first word (the head of a title such as
// "директор школы"). PolicyName declines every word except Kazakh
// patronymic markers. PolicyAuto picks PolicyName for two to four
// capitalized words and PolicyPhrase otherwise.
func (e *Engine) InflectGroup(text string, c Case, policy declension.Policy) (string, error) {
	words := declension.Fields(text)
	if len(words) == 0 {
		return "", fmt.Errorf("ru: %w", declension.ErrInvalidInput)
	}
	switch policy.Resolve(words) {
	case declension.PolicyName:
		for i, w := range words {
			if declension.HasAnySuffix(w, kazakhPatronymics...) {
				continue
			}
			out, err := e.Inflect(w, c)
			if err != nil {
				return "", err
			}
			words[i] = out
		}
	default:
		out, err := e.Inflect(words[0], c)
		if err != nil {
			return "", err
		}
		words[0] = out
	}
	return strings.Join(words, " "), nil
}

// InflectGroup declines text using the built-in exception table.
func InflectGroup(text string, c Case, policy declension.Policy) (string, error) {
	return std.InflectGroup(text, c, policy)
}

// Language returns e as a declension.Engine addressed by case names.
func (e *Engine) Language() declension.Engine { return language{e} }

type language struct{ e *Engine }

func (language) Code() string { return "ru" }

func (language) CaseNames() []string {
	out := make([]string, len(Cases))
	for i, c := range Cases {
		out[i] = c.String()
	}
	return out
}

// InflectWord declines word into the case named caseName. An unrecognized
// name declines with an empty ending, leaving the bare stem.
func (l language) InflectWord(word, caseName string) (string, error) {
	c, _ := ParseCase(caseName)
	return l.e.Inflect(word, c)
}

func (l language) InflectGroup(text, caseName string, policy declension.Policy) (string, error) {
	c, _ := ParseCase(caseName)
	return l.e.InflectGroup(text, c, policy)
}
