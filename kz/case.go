package kz

import (
	"fmt"
	"strings"

	"github.com/cours-de-latin/declension"
)

// Case is a Kazakh grammatical case (септік).
type Case int

const (
	Ataw     Case = iota + 1 // атау, nominative
	Ilik                     // ілік, genitive
	Barys                    // барыс, dative
	Tabys                    // табыс, accusative
	Jatys                    // жатыс, locative
	Shygys                   // шығыс, ablative
	Komektes                 // көмектес, instrumental
)

// Cases lists every case, Ataw first.
var Cases = []Case{Ataw, Ilik, Barys, Tabys, Jatys, Shygys, Komektes}

var caseNames = map[Case]string{
	Ataw:     "ataw",
	Ilik:     "ilik",
	Barys:    "barys",
	Tabys:    "tabys",
	Jatys:    "jatys",
	Shygys:   "shygys",
	Komektes: "komektes",
}

// caseByName is the inverse of caseNames.
var caseByName = func() map[string]Case {
	m := make(map[string]Case, len(caseNames))
	for c, n := range caseNames {
		m[n] = c
	}
	return m
}()

// caseAliases accepts the Latin grammatical names as well.
var caseAliases = map[string]Case{
	"nominative":   Ataw,
	"genitive":     Ilik,
	"dative":       Barys,
	"accusative":   Tabys,
	"locative":     Jatys,
	"ablative":     Shygys,
	"instrumental": Komektes,
}

func (c Case) String() string {
	if name, ok := caseNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Case(%d)", int(c))
}

// Valid reports whether c is one of the seven cases.
func (c Case) Valid() bool {
	_, ok := caseNames[c]
	return ok
}

// ParseCase maps a case identifier to a Case. Both the native names
// ("ilik") and the Latin ones ("genitive") are accepted.
func ParseCase(name string) (Case, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	if c, ok := caseByName[key]; ok {
		return c, nil
	}
	if c, ok := caseAliases[key]; ok {
		return c, nil
	}
	return 0, fmt.Errorf("kz: %w: %q", declension.ErrUnknownCase, name)
}
