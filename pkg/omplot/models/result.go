package models

// ResultClass is the header stored in an OpenModelica result file's Aclass matrix.
type ResultClass struct {
	// Name is the file class, "Atrajectory" for trajectory results.
	Name string `json:"name,omitempty"`
	// Version is the format version (e.g., "1.1").
	Version string `json:"version,omitempty"`
	// Layout is "binTrans" or "binNormal".
	Layout string `json:"layout,omitempty"`
}

// ResultData represents one decoded simulation result file.
type ResultData struct {
	// FileName is the result file name (no path).
	FileName string `json:"file_name"`
	// Class is the Aclass header, zero if the file has none.
	Class ResultClass `json:"class"`
	// Names lists the decoded variable names in table order.
	Names []string `json:"names"`
	// DataRows is the row count of the data table.
	DataRows int `json:"data_rows"`
	// Samples is the number of recorded instants (data table columns).
	Samples int `json:"samples"`
	// Series maps variable name to samples.
	Series SeriesMap `json:"-"`
}
