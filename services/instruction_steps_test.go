package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseInstructionStepsObjects(t *testing.T) {
	raw := []byte(`[{"krok":1,"opis":"Umyj warzywa","czas_min":10},{"krok":2,"opis":"Pokrój"}]`)

	steps, err := ParseInstructionSteps(raw)
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.False(t, steps[0].Plain)
	assert.Equal(t, 1, steps[0].Number)
	assert.Equal(t, "Umyj warzywa", steps[0].Description)
	require.NotNil(t, steps[0].TimeMinutes)
	assert.Equal(t, 10, *steps[0].TimeMinutes)

	assert.Equal(t, "Pokrój", steps[1].Display())
	assert.Nil(t, steps[1].TimeMinutes)
}

func TestParseInstructionStepsPlainStrings(t *testing.T) {
	raw := []byte(`["Obierz ziemniaki","Ugotuj do miękkości"]`)

	steps, err := ParseInstructionSteps(raw)
	require.NoError(t, err)
	require.Len(t, steps, 2)

	assert.True(t, steps[0].Plain)
	assert.Equal(t, "Obierz ziemniaki", steps[0].Display())
	assert.Equal(t, "Ugotuj do miękkości", steps[1].Display())
}

func TestParseInstructionStepsMixed(t *testing.T) {
	raw := []byte(`["Rozgrzej piec",{"krok":2,"opis":"Piecz 40 minut","czas_min":40}]`)

	steps, err := ParseInstructionSteps(raw)
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.True(t, steps[0].Plain)
	assert.False(t, steps[1].Plain)
	assert.Equal(t, "Piecz 40 minut", steps[1].Display())
}

func TestParseInstructionStepsInvalid(t *testing.T) {
	cases := map[string][]byte{
		"nil":               nil,
		"pusty string":      []byte(""),
		"null":              []byte("null"),
		"pusta tablica":     []byte("[]"),
		"nie-JSON":          []byte("to nie jest json"),
		"obiekt, nie lista": []byte(`{"krok":1}`),
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := ParseInstructionSteps(raw)
			assert.ErrorIs(t, err, ErrNoInstructions)
		})
	}
}
