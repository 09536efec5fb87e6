package mines

import "strconv"

type CellValue int8

const (
	Foreign CellValue = -3 /* unrecognised symbol, copied through */
	Mine    CellValue = -2
	Empty   CellValue = -1
	/*
	 * Values 0 to 8 are the annotated form of an empty cell: the
	 * number of mines among its neighbours.
	 */
)

// Number returns the value of an annotated empty cell with n adjacent
// mines.
func Number(n int) CellValue {
	return CellValue(n)
}

func (v CellValue) IsNumber() bool {
	return 0 <= v && v <= 8
}

func (v CellValue) String() string {
	switch {
	case v == Foreign:
		return "foreign"
	case v == Mine:
		return "mine"
	case v == Empty:
		return "empty"
	case v.IsNumber():
		return strconv.Itoa(int(v))
	default:
		return "!"
	}
}

type Cell struct {
	row, col int
	Value    CellValue
	symbol   rune
}

func (c Cell) Row() int { return c.row }
func (c Cell) Col() int { return c.col }

// Symbol is the rune c renders as.
func (c Cell) Symbol(m Markers) rune {
	switch {
	case c.Value == Mine:
		return m.Mine
	case c.Value == Foreign:
		return c.symbol
	case c.Value == Empty || c.Value == 0:
		return m.Empty
	case c.Value.IsNumber():
		return rune('0' + c.Value)
	default:
		return 0
	}
}
