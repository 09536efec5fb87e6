package mines

import (
	"iter"
	"strings"
)

// Minefield is a row-major grid of cells addressed by (row, col). Rows
// are stored back to back, so a ragged grid holds exactly as many cells
// as its input has symbols.
type Minefield struct {
	rows, cols int /* cols is the widest row */
	cells      []Cell
	offsets    []int /* row y occupies cells[offsets[y]:offsets[y+1]] */
	markers    Markers
}

func NewMinefield(rows, cols int) *Minefield {
	return newMinefield(repeat(cols, rows), DefaultMarkers())
}

func newMinefield(widths []int, markers Markers) *Minefield {
	f := &Minefield{
		rows:    len(widths),
		offsets: make([]int, len(widths)+1),
		markers: markers,
	}
	for y, w := range widths {
		f.offsets[y+1] = f.offsets[y] + w
		f.cols = max(f.cols, w)
	}
	f.cells = make([]Cell, f.offsets[f.rows])
	for y := range f.rows {
		for x := range widths[y] {
			f.cells[f.offsets[y]+x] = Cell{row: y, col: x, Value: Empty}
		}
	}
	return f
}

// ParseMinefield builds a grid from text rows. In strict mode every row
// must match the first row's length and contain only the two markers.
// Otherwise rows keep their own lengths and unknown symbols are kept as
// foreign cells.
func ParseMinefield(rows []string, markers Markers, strict bool) (*Minefield, error) {
	if err := markers.Validate(); err != nil {
		return nil, err
	}

	runes := make([][]rune, len(rows))
	widths := make([]int, len(rows))
	for i, row := range rows {
		runes[i] = []rune(row)
		widths[i] = len(runes[i])
		if strict && i > 0 && widths[i] != widths[0] {
			return nil, &RaggedRowError{Row: i, Length: widths[i], Expected: widths[0]}
		}
	}

	f := newMinefield(widths, markers)
	for y, row := range runes {
		for x, r := range row {
			switch r {
			case markers.Mine:
				f.MarkMine(y, x)
			case markers.Empty:
			default:
				if strict {
					return nil, &SymbolError{Row: y, Col: x, Symbol: r}
				}
				c := &f.cells[f.offsets[y]+x]
				c.Value, c.symbol = Foreign, r
			}
		}
	}
	return f, nil
}

func (f *Minefield) Rows() int { return f.rows }
func (f *Minefield) Cols() int { return f.cols }

// Width is the length of row, which may be shorter than Cols.
func (f *Minefield) Width(row int) int {
	if row < 0 || row >= f.rows {
		return 0
	}
	return f.offsets[row+1] - f.offsets[row]
}

func (f *Minefield) inBounds(row, col int) bool {
	return 0 <= col && col < f.Width(row)
}

func (f *Minefield) At(row, col int) (*Cell, bool) {
	if !f.inBounds(row, col) {
		return nil, false
	}
	return &f.cells[f.offsets[row]+col], true
}

func (f *Minefield) MarkMine(row, col int) {
	if c, ok := f.At(row, col); ok {
		c.Value = Mine
	}
}

// Neighbours yields the up to 8 cells around (row, col), clipped at the
// grid edges and at the ends of shorter rows.
func (f *Minefield) Neighbours(row, col int) iter.Seq[*Cell] {
	return func(yield func(*Cell) bool) {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				if dx == 0 && dy == 0 {
					continue
				}
				if c, ok := f.At(row+dy, col+dx); ok {
					if !yield(c) {
						return
					}
				}
			}
		}
	}
}

// CountAdjacent replaces every empty cell with the number of mines
// around it.
func (f *Minefield) CountAdjacent() {
	for i := range f.cells {
		c := &f.cells[i]
		if c.Value != Empty {
			continue
		}
		n := 0
		for nb := range f.Neighbours(c.row, c.col) {
			n += iif(nb.Value == Mine, 1, 0)
		}
		c.Value = Number(n)
	}
}

func (f *Minefield) Render() []string {
	out := make([]string, f.rows)
	var b strings.Builder
	for y := range f.rows {
		b.Reset()
		for _, c := range f.cells[f.offsets[y]:f.offsets[y+1]] {
			b.WriteRune(c.Symbol(f.markers))
		}
		out[y] = b.String()
	}
	return out
}

func (f *Minefield) String() string {
	return strings.Join(f.Render(), "\n")
}

type Stats struct {
	Rows     int `json:"rows"`
	Cols     int `json:"cols"`
	Mines    int `json:"mines"`
	Numbered int `json:"numbered"`
}

func (f *Minefield) Stats() Stats {
	s := Stats{Rows: f.rows, Cols: f.cols}
	for _, c := range f.cells {
		switch {
		case c.Value == Mine:
			s.Mines++
		case c.Value > 0 && c.Value.IsNumber():
			s.Numbered++
		}
	}
	return s
}
