package mines

import (
	"iter"
	"strings"
)

func byPiece(s string, sep string) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		found := true
		var piece string
		for found {
			piece, s, found = strings.Cut(s, sep)
			if !yield(i, piece) {
				return
			}
			i += 1
		}
	}
}

// SplitRows turns newline-separated text into rows. A single trailing
// newline does not start a new row, and "\r\n" endings are accepted.
func SplitRows(text string) []string {
	if text == "" {
		return []string{}
	}
	text = strings.TrimSuffix(text, "\n")
	var rows []string
	for _, row := range byPiece(text, "\n") {
		rows = append(rows, strings.TrimSuffix(row, "\r"))
	}
	return rows
}

func JoinRows(rows []string) string {
	if len(rows) == 0 {
		return ""
	}
	return strings.Join(rows, "\n") + "\n"
}
