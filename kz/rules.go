package kz

import (
	"unicode/utf8"

	"github.com/cours-de-latin/declension"
)

// rule appends the affix of one case to a word the exception table did not
// cover.
type rule func(word string) string

var rules = map[Case]rule{
	Ilik:     genitive,
	Barys:    dative,
	Tabys:    accusative,
	Jatys:    locative,
	Shygys:   ablative,
	Komektes: instrumental,
}

// possessiveStem strips the possessive vowel from a word ending in ы or і.
// A lone ы or і is a word in its own right, not a possessive ending.
func possessiveStem(word string) (string, bool) {
	if utf8.RuneCountInString(word) < 2 || !possessive[declension.LastRune(word)] {
		return "", false
	}
	return declension.TrimLastRune(word), true
}

func borrowedSurname(word string) bool {
	return declension.HasAnySuffix(word, borrowedSurnames...)
}

// genitive: -ның/-нің, -дың/-дің, -тың/-тің; possessive stems take -ының/-інің.
func genitive(word string) string {
	switch sound := SoundOf(word); {
	case sound == VowelFinal:
		if stem, ok := possessiveStem(word); ok {
			return stem + pick(stem, "інің", "ының")
		}
		return word + pick(word, "нің", "ның")
	case borrowedSurname(word):
		// voiceless affix below
	case sound == SonorantFinal:
		return word + pick(word, "нің", "ның")
	case sound == VoicedFinal:
		return word + pick(word, "дің", "дың")
	}
	return word + pick(word, "тің", "тың")
}

// dative: -ға/-ге, -қа/-ке; possessive stems take -ына/-іне.
func dative(word string) string {
	switch sound := SoundOf(word); {
	case sound == VowelFinal:
		if stem, ok := possessiveStem(word); ok {
			return stem + pick(stem, "іне", "ына")
		}
		return word + pick(word, "ге", "ға")
	case borrowedSurname(word):
		// voiceless affix below
	case sound != VoicelessFinal:
		return word + pick(word, "ге", "ға")
	}
	return word + pick(word, "ке", "қа")
}

// accusative: -ны/-ні, -ды/-ді, -ты/-ті; possessive stems take -ын/-ін.
// Sonorants go with the other voiced consonants here.
func accusative(word string) string {
	switch sound := SoundOf(word); {
	case sound == VowelFinal:
		if stem, ok := possessiveStem(word); ok {
			return stem + pick(stem, "ін", "ын")
		}
		return word + pick(word, "ні", "ны")
	case borrowedSurname(word):
		// voiceless affix below
	case sound != VoicelessFinal:
		return word + pick(word, "ді", "ды")
	}
	return word + pick(word, "ті", "ты")
}

// locative: -да/-де, -та/-те; possessive stems take -ында/-інде.
func locative(word string) string {
	switch sound := SoundOf(word); {
	case sound == VowelFinal:
		if stem, ok := possessiveStem(word); ok {
			return stem + pick(stem, "інде", "ында")
		}
		return word + pick(word, "де", "да")
	case borrowedSurname(word):
		// voiceless affix below
	case sound != VoicelessFinal:
		return word + pick(word, "де", "да")
	}
	return word + pick(word, "те", "та")
}

// ablative: -дан/-ден, -нан/-нен, -тан/-тен; possessive stems take -ынан/-інен.
func ablative(word string) string {
	switch sound := SoundOf(word); {
	case sound == VowelFinal:
		if stem, ok := possessiveStem(word); ok {
			return stem + pick(stem, "інен", "ынан")
		}
		return word + pick(word, "ден", "дан")
	case borrowedSurname(word):
		// voiceless affix below
	case sound == SonorantFinal:
		return word + pick(word, "нен", "нан")
	case sound == VoicedFinal:
		return word + pick(word, "ден", "дан")
	}
	return word + pick(word, "тен", "тан")
}

// instrumental: -мен, -бен, -пен. The affix does not harmonize and
// possessive stems keep their vowel: баласымен.
func instrumental(word string) string {
	sound := SoundOf(word)
	switch {
	case sound == VowelFinal:
		return word + "мен"
	case borrowedSurname(word):
		return word + "пен"
	case sound == SonorantFinal || liquids[declension.LastRune(word)]:
		return word + "мен"
	case sound == VoicedFinal:
		return word + "бен"
	}
	return word + "пен"
}
