// Package parser decodes the tables of a simulation result file.
package parser

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ukaji3/omplot-go/pkg/omplot/matfile"
)

// NameLayout identifies how a name table is stored.
type NameLayout int

const (
	// LayoutText stores names as space or NUL padded character text.
	LayoutText NameLayout = iota
	// LayoutCodes stores names as rows of numeric character codes.
	LayoutCodes
)

func (l NameLayout) String() string {
	switch l {
	case LayoutText:
		return "text"
	case LayoutCodes:
		return "codes"
	}
	return "unknown"
}

// NameTable is a stored variable-name table. Which fields are set depends on Layout.
type NameTable struct {
	Layout NameLayout
	// Lines holds one entry per stored text row (LayoutText).
	Lines []string
	// Transposed reports that Lines hold parallel character columns, i.e. the
	// i-th name is made of the i-th character of every line (LayoutText).
	Transposed bool
	// Codes holds one row of character codes per name (LayoutCodes).
	Codes [][]float64
}

// NewNameTable builds a NameTable from a decoded matrix. Text matrices use the
// text layout; transposed selects the OpenModelica binTrans orientation.
// Numeric matrices hold one code row per name, including single-column
// matrices whose names are one character long.
func NewNameTable(m *matfile.Matrix, transposed bool) NameTable {
	if m.Kind == matfile.KindText {
		return NameTable{Layout: LayoutText, Lines: m.Lines(), Transposed: transposed}
	}
	codes := make([][]float64, m.Rows)
	for r := range codes {
		codes[r] = m.Row(r)
	}
	return NameTable{Layout: LayoutCodes, Codes: codes}
}

// DecodeNames returns the names stored in t, in table order. The result only
// depends on t, so decoding the same table twice yields the same names.
func DecodeNames(t NameTable) []string {
	var raw []string
	switch t.Layout {
	case LayoutText:
		if t.Transposed {
			raw = transposeLines(t.Lines)
		} else {
			raw = t.Lines
		}
	case LayoutCodes:
		raw = make([]string, len(t.Codes))
		for i, row := range t.Codes {
			raw[i] = decodeCodes(row)
		}
	}

	names := make([]string, len(raw))
	for i, s := range raw {
		names[i] = normalizeName(s)
	}
	return names
}

// transposeLines right-pads every line to the longest one and joins the
// characters of each column into a string.
func transposeLines(lines []string) []string {
	width := 0
	for _, s := range lines {
		width = max(width, utf8.RuneCountInString(s))
	}

	grid := make([][]rune, len(lines))
	for i, s := range lines {
		row := []rune(s)
		for len(row) < width {
			row = append(row, ' ')
		}
		grid[i] = row
	}

	columns := make([]string, width)
	for c := 0; c < width; c++ {
		var sb strings.Builder
		for _, row := range grid {
			sb.WriteRune(row[c])
		}
		columns[c] = sb.String()
	}
	return columns
}

// decodeCodes maps non-zero character codes to characters; zeros are padding.
func decodeCodes(row []float64) string {
	var sb strings.Builder
	for _, c := range row {
		if c == 0 {
			continue
		}
		sb.WriteRune(rune(int(c)))
	}
	return sb.String()
}

func normalizeName(s string) string {
	return strings.TrimFunc(s, func(r rune) bool {
		return r == 0 || unicode.IsSpace(r)
	})
}
