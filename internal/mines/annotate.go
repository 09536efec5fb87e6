package mines

import "github.com/sirupsen/logrus"

var Log = logrus.New()

// Annotator is ready to use as a zero value, which annotates with
// [DefaultMarkers].
type Annotator struct {
	Markers Markers
	Strict  bool
}

func NewAnnotator() *Annotator {
	return &Annotator{Markers: DefaultMarkers()}
}

// Annotate returns rows with every empty cell replaced by its adjacent
// mine count, or by the empty marker when there are none.
func (a *Annotator) Annotate(rows []string) ([]string, error) {
	f, err := a.Minefield(rows)
	if err != nil {
		return nil, err
	}
	return f.Render(), nil
}

// Minefield parses and counts rows, leaving the grid for inspection.
func (a *Annotator) Minefield(rows []string) (*Minefield, error) {
	markers := a.Markers
	if markers == (Markers{}) {
		markers = DefaultMarkers()
	}
	f, err := ParseMinefield(rows, markers, a.Strict)
	if err != nil {
		Log.WithError(err).Debug("rejected minefield")
		return nil, err
	}
	f.CountAdjacent()
	Log.WithFields(logrus.Fields{
		"rows": f.rows,
		"cols": f.cols,
	}).Trace("annotated minefield")
	return f, nil
}

// Annotate uses '*' for mines and ' ' for empty cells. Ragged rows and
// unknown symbols are handled leniently, so it never fails.
func Annotate(rows []string) []string {
	out, err := NewAnnotator().Annotate(rows)
	if err != nil {
		panic(AssertionError{"lenient annotation failed: " + err.Error()})
	}
	return out
}
