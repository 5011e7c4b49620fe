package enhancer

import (
	"github.com/regbench/regbench/metrics"
	"github.com/regbench/regbench/tab"
)

// Metrics holds the ranking metrics of a score column against the derived
// labels.
type Metrics struct {
	AUROC float64 `json:"AUROC"`
	AUPRC float64 `json:"AUPRC"`
}

// Score evaluates how well the named score column ranks positive pairs above
// negative ones. Rows with a missing score or label are excluded pairwise.
func Score(t *tab.Table, scoreColumn string) (Metrics, error) {
	scoreIdx, ok := t.ColumnIndex(scoreColumn)
	if !ok {
		return Metrics{}, &ColumnNotFoundError{Column: scoreColumn}
	}
	labelIdx, ok := t.ColumnIndex("labels")
	if !ok {
		return Metrics{}, ErrLabelsNotFound
	}

	var scores []float64
	var labels []int
	for row := 0; row < t.NumRows(); row++ {
		score, okScore := tab.ParseFloat(t.CellAt(row, scoreIdx))
		label, okLabel := tab.ParseFloat(t.CellAt(row, labelIdx))
		if !okScore || !okLabel {
			continue
		}
		scores = append(scores, score)
		labels = append(labels, int(label))
	}

	auroc, err := metrics.AUROC(scores, labels)
	if err != nil {
		return Metrics{}, err
	}
	auprc, err := metrics.AveragePrecision(scores, labels)
	if err != nil {
		return Metrics{}, err
	}

	return Metrics{AUROC: auroc, AUPRC: auprc}, nil
}

// Distribution tallies the labels column. Every row counts toward the total,
// but only rows with an observed label enter the counts.
func Distribution(t *tab.Table) (metrics.Distribution, error) {
	labelIdx, ok := t.ColumnIndex("labels")
	if !ok {
		return metrics.Distribution{}, ErrLabelsNotFound
	}

	var labels []int
	for row := 0; row < t.NumRows(); row++ {
		label, okLabel := tab.ParseFloat(t.CellAt(row, labelIdx))
		if !okLabel {
			continue
		}
		labels = append(labels, int(label))
	}

	return metrics.LabelDistribution(t.NumRows(), labels), nil
}

// ScoreSummary computes descriptive statistics over the parseable values of
// the named score column.
func ScoreSummary(t *tab.Table, scoreColumn string) (metrics.Summary, error) {
	scoreIdx, ok := t.ColumnIndex(scoreColumn)
	if !ok {
		return metrics.Summary{}, &ColumnNotFoundError{Column: scoreColumn}
	}

	var values []float64
	for row := 0; row < t.NumRows(); row++ {
		if v, okValue := tab.ParseFloat(t.CellAt(row, scoreIdx)); okValue {
			values = append(values, v)
		}
	}

	return metrics.Summarize(values)
}
