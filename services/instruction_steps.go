package services

import (
	"encoding/json"
	"errors"
	"strings"
)

// InstructionStep jeden krok przygotowania z kolumny recipes.kroki.
// W danych historycznych krok bywa zwykłym stringiem, w nowszych obiektem
// {krok, opis, czas_min}; oba warianty są tu sprowadzane do wspólnej postaci.
type InstructionStep struct {
	Plain       bool   // true gdy krok był zwykłym stringiem
	Number      int    `json:"krok"`
	Description string `json:"opis"`
	TimeMinutes *int   `json:"czas_min"`
}

// UnmarshalJSON akceptuje string albo obiekt {krok, opis, czas_min}.
func (s *InstructionStep) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := json.Unmarshal(data, &text); err != nil {
			return err
		}
		s.Plain = true
		s.Description = text
		return nil
	}

	type rawStep struct {
		Number      int    `json:"krok"`
		Description string `json:"opis"`
		TimeMinutes *int   `json:"czas_min"`
	}
	var raw rawStep
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	s.Plain = false
	s.Number = raw.Number
	s.Description = raw.Description
	s.TimeMinutes = raw.TimeMinutes
	return nil
}

// Display tekst kroku pokazywany w zadaniu.
func (s InstructionStep) Display() string {
	return s.Description
}

// ErrNoInstructions receptura nie ma poprawnej, niepustej listy kroków.
// To stan do pominięcia (log + continue), nie błąd żądania.
var ErrNoInstructions = errors.New("receptura nie ma kroków przygotowania")

// ParseInstructionSteps parsuje kolumnę kroki do listy kroków.
// Zwraca ErrNoInstructions gdy kolumna jest pusta, nie jest poprawną
// tablicą JSON albo tablica jest pusta.
func ParseInstructionSteps(raw []byte) ([]InstructionStep, error) {
	if len(raw) == 0 {
		return nil, ErrNoInstructions
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == "null" {
		return nil, ErrNoInstructions
	}

	var steps []InstructionStep
	if err := json.Unmarshal(raw, &steps); err != nil {
		return nil, ErrNoInstructions
	}
	if len(steps) == 0 {
		return nil, ErrNoInstructions
	}
	return steps, nil
}
