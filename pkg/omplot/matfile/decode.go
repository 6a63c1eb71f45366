package matfile

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
)

// ErrUnsupported indicates a MAT variant this package does not read
// (level 5, VAX/Cray number formats, sparse or unknown element types).
var ErrUnsupported = errors.New("unsupported MAT format")

// ErrTruncated indicates the file ended inside a record.
var ErrTruncated = errors.New("truncated MAT record")

// ErrCorrupt indicates a record header with impossible values.
var ErrCorrupt = errors.New("corrupt MAT record header")

// level5Magic is the start of the descriptive text of a level-5 MAT header.
var level5Magic = []byte("MATLAB 5.0")

const headerSize = 20

// Open reads and decodes a level-4 MAT file from disk.
func Open(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads level-4 records from r until EOF.
func Decode(r io.Reader) (*File, error) {
	br := bufio.NewReader(r)

	if head, _ := br.Peek(len(level5Magic)); bytes.Equal(head, level5Magic) {
		return nil, fmt.Errorf("%w: level 5 file", ErrUnsupported)
	}

	file := &File{}
	for {
		m, err := readMatrix(br)
		if err == io.EOF {
			return file, nil
		}
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", len(file.Matrices), err)
		}
		file.add(m)
	}
}

// readMatrix reads one record. It returns io.EOF only when r is exhausted
// exactly at a record boundary.
func readMatrix(r io.Reader) (*Matrix, error) {
	var hdr [headerSize]byte
	if _, err := io.ReadFull(r, hdr[:]); err != nil {
		if err == io.ErrUnexpectedEOF {
			return nil, ErrTruncated
		}
		return nil, err
	}

	order, mopt, err := detectByteOrder(hdr[0:4])
	if err != nil {
		return nil, err
	}

	rows := int32(order.Uint32(hdr[4:8]))
	cols := int32(order.Uint32(hdr[8:12]))
	imagf := int32(order.Uint32(hdr[12:16]))
	namlen := int32(order.Uint32(hdr[16:20]))
	if rows < 0 || cols < 0 || namlen < 1 {
		return nil, fmt.Errorf("%w: rows=%d cols=%d namlen=%d", ErrCorrupt, rows, cols, namlen)
	}
	n := int64(rows) * int64(cols)
	if n > maxElements {
		return nil, fmt.Errorf("%w: %dx%d matrix exceeds %d elements", ErrCorrupt, rows, cols, maxElements)
	}

	prec := Precision((mopt / 10) % 10)
	kind := Kind(mopt % 10)

	name, err := readBytes(r, int64(namlen))
	if err != nil {
		return nil, err
	}
	if i := bytes.IndexByte(name, 0); i >= 0 {
		name = name[:i]
	}

	data, err := readElements(r, order, prec, int(n))
	if err != nil {
		return nil, fmt.Errorf("%q: %w", name, err)
	}
	if imagf != 0 {
		if _, err := io.CopyN(io.Discard, r, n*int64(prec.Size())); err != nil {
			return nil, fmt.Errorf("%q: %w", name, truncated(err))
		}
	}

	return &Matrix{
		Name:      string(name),
		Rows:      int(rows),
		Cols:      int(cols),
		Kind:      kind,
		Precision: prec,
		Data:      data,
	}, nil
}

// detectByteOrder interprets the type word little-endian first and falls back
// to big-endian, then validates the MOPT digits against the chosen order.
func detectByteOrder(word []byte) (binary.ByteOrder, int, error) {
	var order binary.ByteOrder = binary.LittleEndian
	mopt := int32(order.Uint32(word))
	if mopt < 0 || mopt > 4052 {
		order = binary.BigEndian
		mopt = int32(order.Uint32(word))
	}

	m := mopt / 1000
	o := (mopt / 100) % 10
	p := (mopt / 10) % 10
	t := mopt % 10

	switch {
	case mopt < 0 || mopt > 4052:
		return nil, 0, fmt.Errorf("%w: type word %#x", ErrCorrupt, word)
	case m == machineLittleEndian && order == binary.LittleEndian:
	case m == machineBigEndian && order == binary.BigEndian:
	case m == machineLittleEndian || m == machineBigEndian:
		return nil, 0, fmt.Errorf("%w: machine digit %d does not match byte order", ErrCorrupt, m)
	default:
		return nil, 0, fmt.Errorf("%w: machine format %d", ErrUnsupported, m)
	}
	if o != 0 {
		return nil, 0, fmt.Errorf("%w: O digit %d", ErrCorrupt, o)
	}
	if Precision(p).Size() == 0 {
		return nil, 0, fmt.Errorf("%w: precision %d", ErrUnsupported, p)
	}
	if Kind(t) != KindNumeric && Kind(t) != KindText {
		return nil, 0, fmt.Errorf("%w: %s matrix", ErrUnsupported, Kind(t))
	}
	return order, int(mopt), nil
}

func readElements(r io.Reader, order binary.ByteOrder, prec Precision, n int) ([]float64, error) {
	size := prec.Size()
	buf, err := readBytes(r, int64(n)*int64(size))
	if err != nil {
		return nil, err
	}

	data := make([]float64, n)
	for i := range data {
		b := buf[i*size:]
		switch prec {
		case Float64:
			data[i] = math.Float64frombits(order.Uint64(b))
		case Float32:
			data[i] = float64(math.Float32frombits(order.Uint32(b)))
		case Int32:
			data[i] = float64(int32(order.Uint32(b)))
		case Int16:
			data[i] = float64(int16(order.Uint16(b)))
		case Uint16:
			data[i] = float64(order.Uint16(b))
		case Uint8:
			data[i] = float64(b[0])
		}
	}
	return data, nil
}

// readBytes reads exactly n bytes. The buffer grows with the data actually
// read, so a header claiming a huge record cannot force a huge allocation.
func readBytes(r io.Reader, n int64) ([]byte, error) {
	var buf bytes.Buffer
	if _, err := io.CopyN(&buf, r, n); err != nil {
		return nil, truncated(err)
	}
	return buf.Bytes(), nil
}

func truncated(err error) error {
	if err == io.EOF || err == io.ErrUnexpectedEOF {
		return ErrTruncated
	}
	return err
}
