package genetic

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarizes the tour lengths of one evaluated population.
type Stats struct {
	Size   int
	Min    float64
	Max    float64
	Mean   float64
	StdDev float64 // population standard deviation
}

// summarize computes Stats over lengths. An empty input yields the zero Stats.
func summarize(lengths []float64) Stats {
	if len(lengths) == 0 {
		return Stats{}
	}
	mean, std := stat.PopMeanStdDev(lengths, nil)

	return Stats{
		Size:   len(lengths),
		Min:    floats.Min(lengths),
		Max:    floats.Max(lengths),
		Mean:   mean,
		StdDev: std,
	}
}
