package ru

import (
	"unicode/utf8"

	"github.com/cours-de-latin/declension"
)

// Gender is the grammatical gender implied by a MorphClass.
type Gender byte

const (
	Masculine Gender = 'm'
	Feminine  Gender = 'f'
	Neuter    Gender = 'n'
)

// MorphClass is a declension class derived from a word's final letter.
type MorphClass int

const (
	// Indeclinable covers words shorter than two letters; they are
	// returned unchanged.
	Indeclinable MorphClass = iota
	MasculineHard
	MasculineSoft
	// MasculineSoftConsonant covers stems ending in a hushing consonant
	// (ж ш ч щ). It declines with the MasculineHard endings.
	MasculineSoftConsonant
	FeminineHard
	FeminineSoft
	NeuterHard
	NeuterSoft
)

var classNames = [...]string{
	Indeclinable:           "indeclinable",
	MasculineHard:          "masculine-hard",
	MasculineSoft:          "masculine-soft",
	MasculineSoftConsonant: "masculine-soft-consonant",
	FeminineHard:           "feminine-hard",
	FeminineSoft:           "feminine-soft",
	NeuterHard:             "neuter-hard",
	NeuterSoft:             "neuter-soft",
}

func (m MorphClass) String() string {
	if m < 0 || int(m) >= len(classNames) {
		return "unknown"
	}
	return classNames[m]
}

// Gender returns the gender the class belongs to. Indeclinable words
// report 0.
func (m MorphClass) Gender() Gender {
	switch m {
	case MasculineHard, MasculineSoft, MasculineSoftConsonant:
		return Masculine
	case FeminineHard, FeminineSoft:
		return Feminine
	case NeuterHard, NeuterSoft:
		return Neuter
	}
	return 0
}

// hushing consonants that put a masculine noun in MasculineSoftConsonant.
var hushing = map[rune]bool{'ж': true, 'ш': true, 'ч': true, 'щ': true}

// Classify returns the declension class of word and the stem endings attach
// to. The stem is word without its final letter, except for the two
// masculine consonant classes whose stem is the whole word.
func Classify(word string) (MorphClass, string) {
	if utf8.RuneCountInString(word) < 2 {
		return Indeclinable, word
	}
	last := declension.LastRune(word)
	trimmed := declension.TrimLastRune(word)
	switch last {
	case 'а':
		return FeminineHard, trimmed
	case 'я':
		return FeminineSoft, trimmed
	case 'о':
		return NeuterHard, trimmed
	case 'е':
		return NeuterSoft, trimmed
	case 'ь', 'й':
		return MasculineSoft, trimmed
	}
	if hushing[last] {
		return MasculineSoftConsonant, word
	}
	return MasculineHard, word
}

// endings holds the case endings of each class. Accusative of masculine
// nouns is the bare stem (inanimate reading).
var endings = map[MorphClass]map[Case]string{
	MasculineHard: {
		Genitive:      "а",
		Dative:        "у",
		Accusative:    "",
		Instrumental:  "ом",
		Prepositional: "е",
	},
	MasculineSoft: {
		Genitive:      "я",
		Dative:        "ю",
		Accusative:    "",
		Instrumental:  "ем",
		Prepositional: "е",
	},
	FeminineHard: {
		Genitive:      "ы",
		Dative:        "е",
		Accusative:    "у",
		Instrumental:  "ой",
		Prepositional: "е",
	},
	FeminineSoft: {
		Genitive:      "и",
		Dative:        "е",
		Accusative:    "ю",
		Instrumental:  "ей",
		Prepositional: "е",
	},
	NeuterHard: {
		Genitive:      "а",
		Dative:        "у",
		Accusative:    "о",
		Instrumental:  "ом",
		Prepositional: "е",
	},
	NeuterSoft: {
		Genitive:      "я",
		Dative:        "ю",
		Accusative:    "е",
		Instrumental:  "ем",
		Prepositional: "е",
	},
}

// Ending returns the ending of class m in case c. A case the class has no
// entry for, including the zero Case, yields "".
func Ending(m MorphClass, c Case) string {
	if m == MasculineSoftConsonant {
		m = MasculineHard
	}
	return endings[m][c]
}
