package kz

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cours-de-latin/declension"
)

func TestInflectParadigms(t *testing.T) {
	tests := []struct {
		word string
		want map[Case]string
	}{
		{"дос", map[Case]string{
			Ilik: "достың", Barys: "досқа", Tabys: "досты",
			Jatys: "доста", Shygys: "достан", Komektes: "доспен",
		}},
		{"бала", map[Case]string{
			Ilik: "баланың", Barys: "балаға", Tabys: "баланы",
			Jatys: "балада", Shygys: "баладан", Komektes: "баламен",
		}},
		{"әке", map[Case]string{
			Ilik: "әкенің", Barys: "әкеге", Tabys: "әкені",
			Jatys: "әкеде", Shygys: "әкеден", Komektes: "әкемен",
		}},
		{"мектеп", map[Case]string{
			Ilik: "мектептің", Barys: "мектепке", Tabys: "мектепті",
			Jatys: "мектепте", Shygys: "мектептен", Komektes: "мектеппен",
		}},
		{"адам", map[Case]string{
			Ilik: "адамның", Barys: "адамға", Tabys: "адамды",
			Jatys: "адамда", Shygys: "адамнан", Komektes: "адаммен",
		}},
		{"гүл", map[Case]string{
			Ilik: "гүлдің", Barys: "гүлге", Tabys: "гүлді",
			Jatys: "гүлде", Shygys: "гүлден", Komektes: "гүлмен",
		}},
		{"қыз", map[Case]string{
			Ilik: "қыздың", Barys: "қызға", Tabys: "қызды",
			Jatys: "қызда", Shygys: "қыздан", Komektes: "қызбен",
		}},
	}
	for _, tt := range tests {
		for c, want := range tt.want {
			got, err := Inflect(tt.word, c)
			require.NoError(t, err)
			assert.Equal(t, want, got, "Inflect(%q, %s)", tt.word, c)
		}
	}
}

func TestInflectInstrumentalLiquids(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"гүл", "гүлмен"},
		{"бор", "бормен"},
		{"үй", "үймен"},
	}
	for _, tt := range tests {
		got, err := Inflect(tt.word, Komektes)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Inflect(%q, komektes)", tt.word)
	}
}

func TestInflectPossessiveStem(t *testing.T) {
	tests := []struct {
		word string
		c    Case
		want string
	}{
		{"баласы", Ilik, "баласының"},
		{"баласы", Barys, "баласына"},
		{"баласы", Tabys, "баласын"},
		{"баласы", Jatys, "баласында"},
		{"баласы", Shygys, "баласынан"},
		{"баласы", Komektes, "баласымен"},
		{"үйі", Ilik, "үйінің"},
		{"үйі", Barys, "үйіне"},
		{"әкімі", Jatys, "әкімінде"},
		{"Ы", Ilik, "Ының"},
		{"І", Ilik, "Інің"},
		{"Ы", Barys, "Ыға"},
		{"І", Tabys, "Іні"},
		{"Ы", Jatys, "Ыда"},
		{"І", Shygys, "Іден"},
	}
	for _, tt := range tests {
		got, err := Inflect(tt.word, tt.c)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Inflect(%q, %s)", tt.word, tt.c)
	}
}

func TestInflectBorrowedSurname(t *testing.T) {
	tests := []struct {
		word string
		c    Case
		want string
	}{
		{"Иванов", Ilik, "Ивановтың"},
		{"Иванов", Barys, "Ивановқа"},
		{"Иванов", Tabys, "Ивановты"},
		{"Иванов", Jatys, "Ивановта"},
		{"Иванов", Shygys, "Ивановтан"},
		{"Иванов", Komektes, "Ивановпен"},
		{"Әуезов", Ilik, "Әуезовтың"},
		{"Сергеев", Ilik, "Сергеевтің"},
		{"Иванова", Ilik, "Иванованың"},
		{"ров", Ilik, "ровтың"},
		{"бов", Barys, "бовқа"},
	}
	for _, tt := range tests {
		got, err := Inflect(tt.word, tt.c)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Inflect(%q, %s)", tt.word, tt.c)
	}
}

func TestInflectExceptions(t *testing.T) {
	got, err := Inflect("су", Ilik)
	require.NoError(t, err)
	assert.Equal(t, "судың", got)

	got, err = Inflect("Су", Barys)
	require.NoError(t, err)
	assert.Equal(t, "Суға", got)

	got, err = Inflect("Су", Ataw)
	require.NoError(t, err)
	assert.Equal(t, "Су", got)
}

func TestInflectErrors(t *testing.T) {
	_, err := Inflect("", Ilik)
	assert.ErrorIs(t, err, declension.ErrInvalidInput)

	_, err = Inflect("дос", Case(99))
	assert.ErrorIs(t, err, declension.ErrUnknownCase)

	l := mustLanguage(t)
	_, err = l.InflectWord("дос", "bogus")
	assert.ErrorIs(t, err, declension.ErrUnknownCase)

	_, err = l.InflectWord("", "ilik")
	assert.ErrorIs(t, err, declension.ErrInvalidInput)

	_, err = l.InflectGroup("Мұхтар Әуезов", "bogus", declension.PolicyAuto)
	assert.ErrorIs(t, err, declension.ErrUnknownCase)
}

func TestHarmonyOf(t *testing.T) {
	tests := []struct {
		word string
		want Harmony
	}{
		{"дос", Back},
		{"мектеп", Front},
		{"кітап", Back},
		{"үй", Front},
		{"Әуезов", Back},
		{"ӘКЕ", Front},
		{"брт", Back},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, HarmonyOf(tt.word), "HarmonyOf(%q)", tt.word)
	}
}

func TestSoundOf(t *testing.T) {
	tests := []struct {
		word string
		want SoundClass
	}{
		{"бала", VowelFinal},
		{"баласы", VowelFinal},
		{"адам", SonorantFinal},
		{"таң", SonorantFinal},
		{"гүл", VoicedFinal},
		{"қыз", VoicedFinal},
		{"дос", VoicelessFinal},
		{"ДОС", VoicelessFinal},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SoundOf(tt.word), "SoundOf(%q)", tt.word)
	}
	assert.True(t, EndsWithVowel("әке"))
	assert.False(t, EndsWithVowel("мектеп"))
}

func TestInflectGroup(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		c      Case
		policy declension.Policy
		want   string
	}{
		{"auto full name", "Мұхтар Әуезов", Ilik, declension.PolicyAuto, "Мұхтар Әуезовтың"},
		{"three-part name", "Абай Құнанбайұлы Иванов", Barys, declension.PolicyAuto, "Абай Құнанбайұлы Ивановқа"},
		{"phrase declines last word", "қала әкімі", Ilik, declension.PolicyAuto, "қала әкімінің"},
		{"explicit phrase", "Қазақстан Республикасы", Jatys, declension.PolicyPhrase, "Қазақстан Республикасында"},
		{"explicit name", "мұхтар әуезов", Ilik, declension.PolicyName, "мұхтар әуезовтың"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InflectGroup(tt.text, tt.c, tt.policy)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInflectGroupAtawIsIdentity(t *testing.T) {
	for _, text := range []string{"Мұхтар Әуезов", "қала әкімі", "Абай Құнанбайұлы"} {
		got, err := InflectGroup(text, Ataw, declension.PolicyAuto)
		require.NoError(t, err)
		assert.Equal(t, text, got)
	}
}

func TestParseCase(t *testing.T) {
	for _, c := range Cases {
		got, err := ParseCase(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}
	got, err := ParseCase("Genitive")
	require.NoError(t, err)
	assert.Equal(t, Ilik, got)

	_, err = ParseCase("prepositional")
	assert.ErrorIs(t, err, declension.ErrUnknownCase)
}

func TestWithExceptions(t *testing.T) {
	extra, err := declension.LoadExceptions(strings.NewReader("ми:\n  ilik: мидың\n"))
	require.NoError(t, err)

	e, err := New(WithExceptions(extra))
	require.NoError(t, err)

	got, err := e.Inflect("Ми", Ilik)
	require.NoError(t, err)
	assert.Equal(t, "Мидың", got)

	got, err = Inflect("ми", Ilik)
	require.NoError(t, err)
	assert.Equal(t, "минің", got)

	bad, err := declension.LoadExceptions(strings.NewReader("ми:\n  genitive: мидың\n"))
	require.NoError(t, err)
	_, err = New(WithExceptions(bad))
	assert.ErrorIs(t, err, declension.ErrUnknownCase)
}

func mustLanguage(t *testing.T) declension.Engine {
	t.Helper()
	e, err := New()
	require.NoError(t, err)
	return e.Language()
}
