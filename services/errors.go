package services

import "fmt"

// PartialFailureError błąd operacji wieloetapowej: część kroków się powiodła,
// późniejszy zawiódł. Step wskazuje krok, na którym operacja stanęła,
// żeby wywołujący mógł zdecydować o sprzątaniu.
type PartialFailureError struct {
	Step string
	Err  error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("operacja częściowo wykonana, błąd na kroku %q: %v", e.Step, e.Err)
}

func (e *PartialFailureError) Unwrap() error { return e.Err }
