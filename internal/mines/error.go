package mines

import (
	"errors"
	"fmt"
)

var (
	ErrRaggedRows     = errors.New("rows have unequal length")
	ErrUnknownSymbol  = errors.New("unknown symbol")
	ErrInvalidMarkers = errors.New("invalid markers")
)

type AssertionError struct {
	message string
}

// [AssertionError] implements [error]
func (e AssertionError) Error() string {
	return e.message
}

type RaggedRowError struct {
	Row      int
	Length   int
	Expected int
}

// [RaggedRowError] implements [error]
func (e *RaggedRowError) Error() string {
	return fmt.Sprintf("row %d has length %d, want %d", e.Row, e.Length, e.Expected)
}

func (e *RaggedRowError) Unwrap() error {
	return ErrRaggedRows
}

type SymbolError struct {
	Row, Col int
	Symbol   rune
}

// [SymbolError] implements [error]
func (e *SymbolError) Error() string {
	return fmt.Sprintf("unknown symbol %q at %d:%d", e.Symbol, e.Row, e.Col)
}

func (e *SymbolError) Unwrap() error {
	return ErrUnknownSymbol
}

// IsInvalidInput reports whether err was caused by malformed input rather
// than by the caller's environment.
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrRaggedRows) ||
		errors.Is(err, ErrUnknownSymbol) ||
		errors.Is(err, ErrInvalidMarkers)
}
