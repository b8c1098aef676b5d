package repositories

import "errors"

// ErrNotFound wspólny błąd repozytoriów: rekord nie istnieje.
// Serwisy tłumaczą go na własne błędy domenowe.
var ErrNotFound = errors.New("rekord nie znaleziony")
