// Package matfile reads and writes MATLAB level-4 MAT files, the container
// OpenModelica uses for its simulation result files.
//
// A level-4 file is a flat sequence of matrix records. Each record starts with
// five 32-bit header words (type, rows, cols, imagf, namlen), followed by the
// NUL-terminated variable name and the column-major real part of the matrix.
package matfile

import (
	"strings"
)

// Kind is the T digit of a record's type word.
type Kind int

const (
	// KindNumeric is a full numeric matrix.
	KindNumeric Kind = 0
	// KindText is a character matrix; each element is a character code.
	KindText Kind = 1
	// KindSparse is a sparse matrix. Not supported.
	KindSparse Kind = 2
)

func (k Kind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	case KindSparse:
		return "sparse"
	}
	return "unknown"
}

// Precision is the P digit of a record's type word.
type Precision int

const (
	Float64 Precision = 0
	Float32 Precision = 1
	Int32   Precision = 2
	Int16   Precision = 3
	Uint16  Precision = 4
	Uint8   Precision = 5
)

// Size returns the width of one element in bytes, or 0 for an unknown precision.
func (p Precision) Size() int {
	switch p {
	case Float64:
		return 8
	case Float32, Int32:
		return 4
	case Int16, Uint16:
		return 2
	case Uint8:
		return 1
	}
	return 0
}

// Machine format digits (M) of the type word.
const (
	machineLittleEndian = 0
	machineBigEndian    = 1
)

// maxElements bounds a single record so a corrupt header cannot force a huge allocation.
const maxElements = 1 << 28

// Matrix is one decoded record. Data holds the real part in column-major order.
type Matrix struct {
	// Name is the variable name (without the NUL terminator).
	Name string
	// Rows is the number of matrix rows.
	Rows int
	// Cols is the number of matrix columns.
	Cols int
	// Kind is numeric or text.
	Kind Kind
	// Precision is the stored element type.
	Precision Precision
	// Data holds Rows*Cols values, column-major.
	Data []float64
}

// At returns the element at row r, column c.
func (m *Matrix) At(r, c int) float64 {
	return m.Data[c*m.Rows+r]
}

// Row returns a copy of row r.
func (m *Matrix) Row(r int) []float64 {
	row := make([]float64, m.Cols)
	for c := 0; c < m.Cols; c++ {
		row[c] = m.At(r, c)
	}
	return row
}

// Lines returns one string per matrix row, treating every element as a
// character code. Padding is kept as stored.
func (m *Matrix) Lines() []string {
	lines := make([]string, m.Rows)
	for r := 0; r < m.Rows; r++ {
		var sb strings.Builder
		for c := 0; c < m.Cols; c++ {
			sb.WriteRune(rune(int(m.At(r, c))))
		}
		lines[r] = sb.String()
	}
	return lines
}

// File is a decoded level-4 MAT file.
type File struct {
	// Matrices holds the records in file order.
	Matrices []*Matrix
	index    map[string]*Matrix
}

// Get returns the matrix with the given name. If the file repeats a name, the
// last record wins.
func (f *File) Get(name string) (*Matrix, bool) {
	m, ok := f.index[name]
	return m, ok
}

// Names returns the variable names in file order.
func (f *File) Names() []string {
	names := make([]string, len(f.Matrices))
	for i, m := range f.Matrices {
		names[i] = m.Name
	}
	return names
}

func (f *File) add(m *Matrix) {
	if f.index == nil {
		f.index = make(map[string]*Matrix)
	}
	f.Matrices = append(f.Matrices, m)
	f.index[m.Name] = m
}
