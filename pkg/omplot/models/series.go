// Package models defines data structures for simulation result reporting.
package models

import "sort"

// SeriesMap maps a variable name to its samples, one per recorded instant.
type SeriesMap map[string][]float64

// Get returns the samples for name.
func (s SeriesMap) Get(name string) ([]float64, bool) {
	v, ok := s[name]
	return v, ok
}

// Names returns the variable names in sorted order.
func (s SeriesMap) Names() []string {
	names := make([]string, 0, len(s))
	for name := range s {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
