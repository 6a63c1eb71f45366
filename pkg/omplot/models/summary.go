package models

// SeriesSummary holds descriptive statistics for one series.
type SeriesSummary struct {
	Name    string  `json:"name"`
	Samples int     `json:"samples"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Mean    float64 `json:"mean"`
	StdDev  float64 `json:"std_dev"`
}

// ResultSummary is the per-file report printed by the info command.
type ResultSummary struct {
	FileName  string          `json:"file_name"`
	Class     ResultClass     `json:"class"`
	Variables int             `json:"variables"`
	Samples   int             `json:"samples"`
	Series    []SeriesSummary `json:"series"`
}
