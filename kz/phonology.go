package kz

import "github.com/cours-de-latin/declension"

// Harmony is the vowel-harmony row a word's suffixes agree with.
type Harmony int

const (
	Back Harmony = iota
	Front
)

func (h Harmony) String() string {
	if h == Front {
		return "front"
	}
	return "back"
}

// Front vowels include the Russian letters found in loanwords.
var frontVowels = map[rune]bool{
	'е': true, 'ә': true, 'і': true, 'ө': true, 'ү': true,
	'э': true, 'и': true, 'ю': true, 'ё': true,
}

var backVowels = map[rune]bool{
	'а': true, 'о': true, 'ұ': true, 'ы': true, 'у': true, 'я': true,
}

// sonorants take н-initial affixes in the genitive and ablative.
var sonorants = map[rune]bool{'н': true, 'ң': true, 'м': true}

// voiced holds the letters that take д-initial (rather than т-initial)
// affixes. The vowels у ү і ы are listed as well but never reach the
// consonant checks.
var voiced = map[rune]bool{
	'б': true, 'в': true, 'г': true, 'ғ': true, 'д': true, 'ж': true,
	'з': true, 'й': true, 'л': true, 'м': true, 'н': true, 'ң': true,
	'р': true, 'у': true, 'ү': true, 'і': true, 'ы': true,
}

// liquids join the sonorants in the instrumental (көмектес).
var liquids = map[rune]bool{'л': true, 'р': true, 'й': true}

// possessive vowels mark a third-person possessive suffix: баласы, үйі.
var possessive = map[rune]bool{'ы': true, 'і': true}

// borrowedSurnames are Russian surname endings. After them the affixes
// use the voiceless register even though в is voiced: Ивановтың.
var borrowedSurnames = []string{"ов", "ев", "ова", "ева"}

// HarmonyOf scans word backwards for its last vowel and returns the row it
// belongs to. Words without vowels are Back.
func HarmonyOf(word string) Harmony {
	for w := word; w != ""; w = declension.TrimLastRune(w) {
		r := declension.LastRune(w)
		if frontVowels[r] {
			return Front
		}
		if backVowels[r] {
			return Back
		}
	}
	return Back
}

// SoundClass classifies the final letter of a word.
type SoundClass int

const (
	VowelFinal SoundClass = iota
	SonorantFinal
	VoicedFinal
	VoicelessFinal
)

var soundNames = [...]string{
	VowelFinal:     "vowel",
	SonorantFinal:  "sonorant",
	VoicedFinal:    "voiced",
	VoicelessFinal: "voiceless",
}

func (s SoundClass) String() string {
	if s < 0 || int(s) >= len(soundNames) {
		return "unknown"
	}
	return soundNames[s]
}

// SoundOf returns the class of word's final letter.
func SoundOf(word string) SoundClass {
	r := declension.LastRune(word)
	switch {
	case frontVowels[r] || backVowels[r]:
		return VowelFinal
	case sonorants[r]:
		return SonorantFinal
	case voiced[r]:
		return VoicedFinal
	}
	return VoicelessFinal
}

// EndsWithVowel reports whether word ends in a vowel.
func EndsWithVowel(word string) bool {
	return SoundOf(word) == VowelFinal
}

// pick returns front or back according to the harmony of word.
func pick(word, front, back string) string {
	if HarmonyOf(word) == Front {
		return front
	}
	return back
}
