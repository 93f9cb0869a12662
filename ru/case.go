package ru

import "strings"

// Case is a Russian grammatical case.
//
// The zero value is not a case: it stands for an identifier the engine did
// not recognize. No ending table has an entry for it, so inflecting into it
// yields the bare stem instead of an error.
type Case int

const (
	Nominative Case = iota + 1
	Genitive
	Dative
	Accusative
	Instrumental
	Prepositional
)

// Cases lists every case, nominative first.
var Cases = []Case{Nominative, Genitive, Dative, Accusative, Instrumental, Prepositional}

var caseNames = map[Case]string{
	Nominative:    "nominative",
	Genitive:      "genitive",
	Dative:        "dative",
	Accusative:    "accusative",
	Instrumental:  "instrumental",
	Prepositional: "prepositional",
}

func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return "unrecognized"
}

// Valid reports whether c is one of the six cases.
func (c Case) Valid() bool {
	_, ok := caseNames[c]
	return ok
}

// ParseCase maps a case identifier such as "genitive" to a Case. Unknown
// identifiers return the zero Case and false.
func ParseCase(name string) (Case, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range caseNames {
		if n == name {
			return c, true
		}
	}
	return 0, false
}
