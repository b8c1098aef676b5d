package queryparams

// ListParams parametry listowania przekazywane w query stringu.
type ListParams struct {
	Page    int    `query:"page"`
	PerPage int    `query:"per_page"`
	SortBy  string `query:"sort_by"`
	OrderBy string `query:"order_by"` // asc | desc
	Name    string `query:"nazwa"`   // opcjonalny filtr po nazwie
}

const (
	DefaultPage    = 1
	DefaultPerPage = 20
	MaxPerPage     = 100
)

// DefaultListParams zwraca parametry domyślne z podanym polem sortowania.
func DefaultListParams(sortBy string) ListParams {
	return ListParams{
		Page:    DefaultPage,
		PerPage: DefaultPerPage,
		SortBy:  sortBy,
		OrderBy: "asc",
	}
}

// Validate normalizuje wartości spoza dozwolonego zakresu.
func (p *ListParams) Validate() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PerPage <= 0 {
		p.PerPage = DefaultPerPage
	}
	if p.PerPage > MaxPerPage {
		p.PerPage = MaxPerPage
	}
	if p.OrderBy != "asc" && p.OrderBy != "desc" {
		p.OrderBy = "asc"
	}
}

// Offset przesunięcie dla zapytania SQL.
func (p *ListParams) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// PaginationMeta metadane stronicowania zwracane razem z listą.
type PaginationMeta struct {
	CurrentPage int   `json:"strona"`
	PerPage     int   `json:"na_strone"`
	TotalItems  int64 `json:"razem"`
	TotalPages  int   `json:"stron"`
}

// PaginatedResult lista wraz z metadanymi.
type PaginatedResult struct {
	Data interface{}    `json:"dane"`
	Meta PaginationMeta `json:"meta"`
}

// CalculateTotalPages liczba stron dla danej liczby rekordów.
func CalculateTotalPages(totalItems int64, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := int(totalItems) / perPage
	if int(totalItems)%perPage != 0 {
		pages++
	}
	return pages
}
