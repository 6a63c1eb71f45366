package parser

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/ukaji3/omplot-go/pkg/omplot/matfile"
)

func TestDecodeNames(t *testing.T) {
	tests := []struct {
		name     string
		table    NameTable
		expected []string
	}{
		{
			name: "transposed text columns",
			table: NameTable{
				Layout:     LayoutText,
				Transposed: true,
				Lines:      []string{"tnx", "ie", "mt", "e"},
			},
			expected: []string{"time", "net", "x"},
		},
		{
			name: "transposed text with NUL padding",
			table: NameTable{
				Layout:     LayoutText,
				Transposed: true,
				Lines:      []string{"ab", "c\x00"},
			},
			expected: []string{"ac", "b"},
		},
		{
			name: "full string entries",
			table: NameTable{
				Layout: LayoutText,
				Lines:  []string{"time   ", "  netPower", "T_exhaust\x00\x00"},
			},
			expected: []string{"time", "netPower", "T_exhaust"},
		},
		{
			name: "code rows skip zero padding",
			table: NameTable{
				Layout: LayoutCodes,
				Codes: [][]float64{
					{'t', 'i', 'm', 'e', 0, 0},
					{'x', 0, 0, 0, 0, 0},
					{0, 'y', 0, 'z', 0, 0},
				},
			},
			expected: []string{"time", "x", "yz"},
		},
		{
			name:     "single code per row",
			table:    NameTable{Layout: LayoutCodes, Codes: [][]float64{{'t'}, {0}, {'x'}}},
			expected: []string{"t", "", "x"},
		},
		{
			name:     "empty table",
			table:    NameTable{Layout: LayoutText, Transposed: true},
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := DecodeNames(tt.table)
			if diff := cmp.Diff(tt.expected, got); diff != "" {
				t.Errorf("DecodeNames mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeNamesIdempotent(t *testing.T) {
	table := NewNameTable(matfile.NewTextColumns("name", []string{"time", "netPower", "fuelFlow"}), true)

	first := DecodeNames(table)
	second := DecodeNames(table)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("second decode differs (-first +second):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"time", "netPower", "fuelFlow"}, first); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}

func TestNewNameTable(t *testing.T) {
	tests := []struct {
		name       string
		matrix     *matfile.Matrix
		transposed bool
		layout     NameLayout
		expected   []string
	}{
		{
			name:       "binTrans text",
			matrix:     matfile.NewTextColumns("name", []string{"time", "loadPercent"}),
			transposed: true,
			layout:     LayoutText,
			expected:   []string{"time", "loadPercent"},
		},
		{
			name:     "binNormal text",
			matrix:   matfile.NewText("name", []string{"time", "loadPercent"}),
			layout:   LayoutText,
			expected: []string{"time", "loadPercent"},
		},
		{
			name: "numeric codes",
			matrix: matfile.NewNumeric("name", [][]float64{
				{'f', 'u', 'e', 'l'},
				{'T', 0, 0, 0},
			}),
			layout:   LayoutCodes,
			expected: []string{"fuel", "T"},
		},
		{
			name:     "numeric single column",
			matrix:   matfile.NewNumeric("name", [][]float64{{'t'}, {'x'}}),
			layout:   LayoutCodes,
			expected: []string{"t", "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			table := NewNameTable(tt.matrix, tt.transposed)
			if table.Layout != tt.layout {
				t.Errorf("layout = %v, expected %v", table.Layout, tt.layout)
			}
			if diff := cmp.Diff(tt.expected, DecodeNames(table)); diff != "" {
				t.Errorf("names mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildSeries(t *testing.T) {
	data := matfile.NewNumeric("data_2", [][]float64{
		{0, 1, 2},
		{10, 11, 12},
		{20, 21, 22},
	})

	t.Run("extra rows dropped", func(t *testing.T) {
		series := BuildSeries([]string{"time", "a"}, data)
		if len(series) != 2 {
			t.Fatalf("got %d series, expected 2", len(series))
		}
		if diff := cmp.Diff([]float64{10, 11, 12}, series["a"]); diff != "" {
			t.Errorf("a mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("extra names dropped", func(t *testing.T) {
		series := BuildSeries([]string{"time", "a", "b", "c", "d"}, data)
		if diff := cmp.Diff([]string{"a", "b", "time"}, series.Names()); diff != "" {
			t.Errorf("names mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty names", func(t *testing.T) {
		if series := BuildSeries(nil, data); len(series) != 0 {
			t.Errorf("expected empty SeriesMap, got %d entries", len(series))
		}
	})

	t.Run("rows are copies", func(t *testing.T) {
		series := BuildSeries([]string{"time"}, data)
		series["time"][0] = 99
		if data.At(0, 0) != 0 {
			t.Errorf("mutating a series changed the source matrix")
		}
	})
}

func TestParseClass(t *testing.T) {
	tests := []struct {
		lines      []string
		layout     string
		transposed bool
	}{
		{[]string{"Atrajectory", "1.1", "", "binTrans"}, "binTrans", true},
		{[]string{"Atrajectory", "1.1", "", "binNormal"}, "binNormal", false},
		{[]string{"Atrajectory"}, "", true},
	}

	for _, tt := range tests {
		class := ParseClass(matfile.NewText("Aclass", tt.lines))
		if class.Name != TrajectoryClass {
			t.Errorf("class name = %q, expected %q", class.Name, TrajectoryClass)
		}
		if class.Layout != tt.layout {
			t.Errorf("layout = %q, expected %q", class.Layout, tt.layout)
		}
		if got := NamesTransposed(class); got != tt.transposed {
			t.Errorf("NamesTransposed(%q) = %v, expected %v", tt.layout, got, tt.transposed)
		}
	}
}
