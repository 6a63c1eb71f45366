package omplot

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ukaji3/omplot-go/pkg/omplot/matfile"
	"github.com/ukaji3/omplot-go/pkg/omplot/models"
	"github.com/ukaji3/omplot-go/pkg/omplot/parser"
	"go.uber.org/zap"
)

// Field names of an OpenModelica result file.
const (
	FieldClass = "Aclass"
	FieldNames = "name"
	FieldData  = "data_2"
)

// Load reads a result file and pairs its variable names with data rows.
func Load(path string, opts Options) (*models.ResultData, error) {
	log := opts.logger()

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return nil, &IOError{Op: "open", Path: path, Err: ErrFileNotFound}
	}

	mf, err := matfile.Open(path)
	if err != nil {
		var pathErr *fs.PathError
		if errors.As(err, &pathErr) {
			return nil, &IOError{Op: "open", Path: path, Err: err}
		}
		return nil, NewFormatError(path, "", err)
	}

	var class models.ResultClass
	if m, ok := mf.Get(FieldClass); ok {
		class = parser.ParseClass(m)
		if class.Name != parser.TrajectoryClass {
			log.Warn("unexpected result class", zap.String("file", path), zap.String("class", class.Name))
		}
	}

	nameMatrix, ok := mf.Get(FieldNames)
	if !ok {
		return nil, NewFormatError(path, FieldNames, errors.New("field missing"))
	}
	data, ok := mf.Get(FieldData)
	if !ok {
		return nil, NewFormatError(path, FieldData, errors.New("field missing"))
	}
	if data.Kind != matfile.KindNumeric {
		return nil, NewFormatError(path, FieldData, fmt.Errorf("expected numeric matrix, got %s", data.Kind))
	}

	table := parser.NewNameTable(nameMatrix, parser.NamesTransposed(class))
	names := parser.DecodeNames(table)
	series := parser.BuildSeries(names, data)

	if len(names) != data.Rows {
		log.Debug("name and data row counts differ",
			zap.Int("names", len(names)),
			zap.Int("rows", data.Rows),
		)
	}
	log.Debug("loaded result file",
		zap.String("file", path),
		zap.String("layout", table.Layout.String()),
		zap.Int("variables", len(series)),
		zap.Int("samples", data.Cols),
	)

	return &models.ResultData{
		FileName: filepath.Base(path),
		Class:    class,
		Names:    names,
		DataRows: data.Rows,
		Samples:  data.Cols,
		Series:   series,
	}, nil
}
