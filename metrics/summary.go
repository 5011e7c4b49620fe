package metrics

import (
	"github.com/montanaflynn/stats"
)

// Summary holds descriptive statistics for a score column.
type Summary struct {
	N      int     `json:"n"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	StdDev float64 `json:"std_dev"`
}

// Summarize computes descriptive statistics over the given values. An empty
// input yields a zero Summary.
func Summarize(values []float64) (Summary, error) {
	data := stats.Float64Data(values)
	if data.Len() < 1 {
		return Summary{}, nil
	}

	out := Summary{N: data.Len()}

	var err error
	if out.Min, err = data.Min(); err != nil {
		return Summary{}, err
	}
	if out.Max, err = data.Max(); err != nil {
		return Summary{}, err
	}
	if out.Mean, err = data.Mean(); err != nil {
		return Summary{}, err
	}
	if out.Median, err = data.Median(); err != nil {
		return Summary{}, err
	}
	if out.StdDev, err = data.StandardDeviation(); err != nil {
		return Summary{}, err
	}

	return out, nil
}
