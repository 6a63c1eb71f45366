package matfile

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"unicode/utf8"
)

// Encoder writes level-4 records.
type Encoder struct {
	w     io.Writer
	order binary.ByteOrder
}

// NewEncoder returns a little-endian encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w, order: binary.LittleEndian}
}

// NewEncoderOrder returns an encoder using the given byte order.
func NewEncoderOrder(w io.Writer, order binary.ByteOrder) *Encoder {
	return &Encoder{w: w, order: order}
}

// Encode writes m as one record. Only the real part is written.
func (e *Encoder) Encode(m *Matrix) error {
	if len(m.Data) != m.Rows*m.Cols {
		return fmt.Errorf("matrix %q: %d values for %dx%d", m.Name, len(m.Data), m.Rows, m.Cols)
	}
	size := m.Precision.Size()
	if size == 0 {
		return fmt.Errorf("matrix %q: %w: precision %d", m.Name, ErrUnsupported, m.Precision)
	}
	if m.Kind != KindNumeric && m.Kind != KindText {
		return fmt.Errorf("matrix %q: %w: %s matrix", m.Name, ErrUnsupported, m.Kind)
	}

	machine := machineLittleEndian
	if e.order == binary.BigEndian {
		machine = machineBigEndian
	}
	mopt := machine*1000 + int(m.Precision)*10 + int(m.Kind)

	name := append([]byte(m.Name), 0)
	buf := make([]byte, headerSize, headerSize+len(name)+len(m.Data)*size)
	e.order.PutUint32(buf[0:], uint32(mopt))
	e.order.PutUint32(buf[4:], uint32(m.Rows))
	e.order.PutUint32(buf[8:], uint32(m.Cols))
	e.order.PutUint32(buf[12:], 0)
	e.order.PutUint32(buf[16:], uint32(len(name)))
	buf = append(buf, name...)

	elem := make([]byte, size)
	for _, v := range m.Data {
		switch m.Precision {
		case Float64:
			e.order.PutUint64(elem, math.Float64bits(v))
		case Float32:
			e.order.PutUint32(elem, math.Float32bits(float32(v)))
		case Int32:
			e.order.PutUint32(elem, uint32(int32(v)))
		case Int16:
			e.order.PutUint16(elem, uint16(int16(v)))
		case Uint16:
			e.order.PutUint16(elem, uint16(v))
		case Uint8:
			elem[0] = uint8(v)
		}
		buf = append(buf, elem...)
	}

	_, err := e.w.Write(buf)
	return err
}

// NewNumeric builds a float64 matrix from row-major rows. All rows must have
// the same length.
func NewNumeric(name string, rows [][]float64) *Matrix {
	m := &Matrix{Name: name, Rows: len(rows), Kind: KindNumeric, Precision: Float64}
	if len(rows) > 0 {
		m.Cols = len(rows[0])
	}
	m.Data = make([]float64, m.Rows*m.Cols)
	for r, row := range rows {
		for c := 0; c < m.Cols && c < len(row); c++ {
			m.Data[c*m.Rows+r] = row[c]
		}
	}
	return m
}

// NewText builds a character matrix with one string per row, padded with
// spaces to the longest string.
func NewText(name string, lines []string) *Matrix {
	width := 0
	for _, s := range lines {
		width = max(width, utf8.RuneCountInString(s))
	}
	m := &Matrix{Name: name, Rows: len(lines), Cols: width, Kind: KindText, Precision: Uint8}
	m.Data = make([]float64, m.Rows*m.Cols)
	for r, s := range lines {
		runes := []rune(s)
		for c := 0; c < width; c++ {
			ch := ' '
			if c < len(runes) {
				ch = runes[c]
			}
			m.Data[c*m.Rows+r] = float64(ch)
		}
	}
	return m
}

// NewTextColumns builds a character matrix with one string per column, the
// transposed layout OpenModelica writes for its name and description tables.
// Short strings are padded with NUL.
func NewTextColumns(name string, columns []string) *Matrix {
	height := 0
	for _, s := range columns {
		height = max(height, utf8.RuneCountInString(s))
	}
	m := &Matrix{Name: name, Rows: height, Cols: len(columns), Kind: KindText, Precision: Uint8}
	m.Data = make([]float64, m.Rows*m.Cols)
	for c, s := range columns {
		for r, ch := range []rune(s) {
			m.Data[c*m.Rows+r] = float64(ch)
		}
	}
	return m
}
