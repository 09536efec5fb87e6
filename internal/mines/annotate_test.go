package mines

import (
	"errors"
	"runtime"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Log.SetLevel(logrus.TraceLevel)
	Log.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})
	m.Run()
}

func TestAnnotate(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "no rows",
			input: []string{},
			want:  []string{},
		},
		{
			name:  "no columns",
			input: []string{"", ""},
			want:  []string{"", ""},
		},
		{
			name:  "single mine",
			input: []string{"*"},
			want:  []string{"*"},
		},
		{
			name:  "single empty",
			input: []string{" "},
			want:  []string{" "},
		},
		{
			name:  "no mines",
			input: []string{"   ", "   ", "   "},
			want:  []string{"   ", "   ", "   "},
		},
		{
			name:  "only mines",
			input: []string{"***", "***", "***"},
			want:  []string{"***", "***", "***"},
		},
		{
			name:  "mine surrounded by spaces",
			input: []string{"   ", " * ", "   "},
			want:  []string{"111", "1*1", "111"},
		},
		{
			name:  "space surrounded by mines",
			input: []string{"***", "* *", "***"},
			want:  []string{"***", "*8*", "***"},
		},
		{
			name:  "mines in corners",
			input: []string{"* *", "   ", "* *"},
			want:  []string{"*2*", "242", "*2*"},
		},
		{
			name:  "horizontal line",
			input: []string{" * * "},
			want:  []string{"1*2*1"},
		},
		{
			name:  "horizontal line, mines at edges",
			input: []string{"*   *"},
			want:  []string{"*1 1*"},
		},
		{
			name:  "vertical line",
			input: []string{" ", "*", " ", "*", " "},
			want:  []string{"1", "*", "2", "*", "1"},
		},
		{
			name:  "cross",
			input: []string{"  *  ", "  *  ", "*****", "  *  ", "  *  "},
			want:  []string{" 2*2 ", "25*52", "*****", "25*52", " 2*2 "},
		},
		{
			name: "large minefield",
			input: []string{
				" *  * ",
				"  *   ",
				"    * ",
				"   * *",
				" *  * ",
				"      ",
			},
			want: []string{
				"1*22*1",
				"12*322",
				" 123*2",
				"112*4*",
				"1*22*2",
				"111111",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.want, Annotate(test.input))
		})
	}
}

func TestAnnotateKeepsDimensions(t *testing.T) {
	input := []string{"* *  *", "   *  ", "*     ", "  * * "}
	out := Annotate(input)
	require.Len(t, out, len(input))
	for i := range input {
		assert.Len(t, out[i], len(input[i]))
		for j := range input[i] {
			if input[i][j] == '*' {
				assert.Equal(t, byte('*'), out[i][j], "mine at %d:%d", i, j)
			} else {
				assert.NotEqual(t, byte('*'), out[i][j], "empty at %d:%d", i, j)
			}
		}
	}
}

func TestAnnotateDeterministic(t *testing.T) {
	input := []string{" *  ", "*  *", "  * "}
	assert.Equal(t, Annotate(input), Annotate(input))
}

func TestAnnotateDoesNotModifyInput(t *testing.T) {
	input := []string{" * ", "   "}
	Annotate(input)
	assert.Equal(t, []string{" * ", "   "}, input)
}

func TestAnnotateLenient(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{
			name:  "short row",
			input: []string{"   ", "*", "   "},
			want:  []string{"11 ", "*", "11 "},
		},
		{
			name:  "long row",
			input: []string{" ", "  *", " "},
			want:  []string{" ", " 1*", " "},
		},
		{
			name:  "foreign symbols pass through",
			input: []string{" x ", " * ", "#  "},
			want:  []string{"1x1", "1*1", "#11"},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out, err := NewAnnotator().Annotate(test.input)
			require.NoError(t, err)
			assert.Equal(t, test.want, out)
		})
	}
}

func TestAnnotateStrict(t *testing.T) {
	a := NewAnnotator()
	a.Strict = true

	out, err := a.Annotate([]string{"* ", " *"})
	require.NoError(t, err)
	assert.Equal(t, []string{"*2", "2*"}, out)

	_, err = a.Annotate([]string{"   ", "* ", "   "})
	require.ErrorIs(t, err, ErrRaggedRows)
	var rre *RaggedRowError
	require.True(t, errors.As(err, &rre))
	assert.Equal(t, RaggedRowError{Row: 1, Length: 2, Expected: 3}, *rre)
	assert.True(t, IsInvalidInput(err))

	_, err = a.Annotate([]string{"  ", " x"})
	require.ErrorIs(t, err, ErrUnknownSymbol)
	var se *SymbolError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, SymbolError{Row: 1, Col: 1, Symbol: 'x'}, *se)
	assert.True(t, IsInvalidInput(err))
}

func TestAnnotateCustomMarkers(t *testing.T) {
	a := &Annotator{Markers: Markers{Mine: 'X', Empty: '.'}, Strict: true}
	out, err := a.Annotate([]string{"...", ".X.", "..."})
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "1X1", "111"}, out)

	out, err = a.Annotate([]string{"X..", "..."})
	require.NoError(t, err)
	assert.Equal(t, []string{"X1.", "11."}, out)

	_, err = a.Annotate([]string{"* "})
	assert.ErrorIs(t, err, ErrUnknownSymbol)
}

func TestAnnotateInvalidMarkers(t *testing.T) {
	for _, m := range []Markers{
		{Mine: '*', Empty: '*'},
		{Mine: '3', Empty: ' '},
		{Mine: '*', Empty: '\n'},
	} {
		_, err := (&Annotator{Markers: m}).Annotate([]string{"*"})
		assert.ErrorIs(t, err, ErrInvalidMarkers, "markers %q/%q", m.Mine, m.Empty)
	}
}

func TestAnnotateUnicodeMarkers(t *testing.T) {
	a := &Annotator{Markers: Markers{Mine: '💣', Empty: '·'}}
	out, err := a.Annotate([]string{"·💣", "··"})
	require.NoError(t, err)
	assert.Equal(t, []string{"1💣", "11"}, out)
	assert.Equal(t, 2, len([]rune(out[0])))
}

func TestAnnotatorMinefieldStats(t *testing.T) {
	f, err := NewAnnotator().Minefield([]string{"* *", "   ", "* *"})
	require.NoError(t, err)
	assert.Equal(t, Stats{Rows: 3, Cols: 3, Mines: 4, Numbered: 5}, f.Stats())
	assert.Equal(t, strings.Join([]string{"*2*", "242", "*2*"}, "\n"), f.String())
}

func TestAnnotatorZeroValue(t *testing.T) {
	out, err := (&Annotator{Strict: true}).Annotate([]string{"   ", " * ", "   "})
	require.NoError(t, err)
	assert.Equal(t, []string{"111", "1*1", "111"}, out)
}

func TestAnnotateRaggedMemoryIsLinear(t *testing.T) {
	const n = 4000
	rows := append(repeat("", n-1), strings.Repeat(" ", n))

	var before, after runtime.MemStats
	runtime.GC()
	runtime.ReadMemStats(&before)
	out := Annotate(rows)
	runtime.ReadMemStats(&after)

	require.Len(t, out, n)
	assert.Equal(t, strings.Repeat(" ", n), out[n-1])
	// a padded n*n grid would need hundreds of megabytes
	assert.Less(t, after.TotalAlloc-before.TotalAlloc, uint64(4<<20))
}

func TestAnnotateRaggedNeighbours(t *testing.T) {
	f, err := NewAnnotator().Minefield([]string{"*  ", "", " *", "    "})
	require.NoError(t, err)
	assert.Equal(t, 4, f.Cols())
	assert.Equal(t, []int{3, 0, 2, 4}, []int{f.Width(0), f.Width(1), f.Width(2), f.Width(3)})
	_, ok := f.At(2, 2)
	assert.False(t, ok)
	assert.Equal(t, []string{"*1 ", "", "1*", "111 "}, f.Render())
}
