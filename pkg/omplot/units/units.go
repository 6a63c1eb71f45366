// Package units provides the fixed unit conversions applied to report series.
package units

// WattsPerMegawatt is the number of watts in one megawatt.
const WattsPerMegawatt = 1e6

// PercentPerFraction scales a 0..1 fraction to percent.
const PercentPerFraction = 100

// KelvinOffset is the Celsius value of 0 K negated.
// T[°C] = T[K] - 273.15
const KelvinOffset = 273.15

// Conversion is a pure element-wise transform between two display units.
type Conversion struct {
	// From is the unit of the stored samples.
	From string
	// To is the unit of the converted samples.
	To string
	fn func(float64) float64
}

var (
	// Identity leaves samples unchanged.
	Identity = Conversion{fn: func(v float64) float64 { return v }}
	// WattsToMegawatts divides by 1,000,000.
	WattsToMegawatts = Conversion{From: "W", To: "MW", fn: func(v float64) float64 { return v / WattsPerMegawatt }}
	// FractionToPercent multiplies by 100.
	FractionToPercent = Conversion{From: "1", To: "%", fn: func(v float64) float64 { return v * PercentPerFraction }}
	// KelvinToCelsius subtracts 273.15.
	KelvinToCelsius = Conversion{From: "K", To: "°C", fn: func(v float64) float64 { return v - KelvinOffset }}
)

// Convert converts a single sample.
func (c Conversion) Convert(v float64) float64 {
	if c.fn == nil {
		return v
	}
	return c.fn(v)
}

// Apply returns a new slice with every sample converted. The input is not modified.
func (c Conversion) Apply(samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = c.Convert(v)
	}
	return out
}
