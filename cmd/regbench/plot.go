package main

import (
	"bytes"
	"fmt"
	"os"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/regbench/regbench/metrics"
	"github.com/regbench/regbench/tab"
	"github.com/wcharczuk/go-chart/v2"
)

// printDistanceHistogram draws the distribution of enhancer to TSS distances
// on stdout.
func printDistanceHistogram(result *tab.Table) error {
	values, err := columnValues(result, "distance")
	if err != nil {
		return err
	}
	if len(values) == 0 {
		return fmt.Errorf("no distances available to plot")
	}

	hist := histogram.Hist(25, values)

	return histogram.Fprint(os.Stdout, hist, histogram.Linear(40))
}

// renderROC writes the ROC curve of the score column against the labels to a
// PNG file, with the chance diagonal for reference.
func renderROC(result *tab.Table, scoreColumn, filename string) error {
	scoreIdx, ok := result.ColumnIndex(scoreColumn)
	if !ok {
		return fmt.Errorf("column not found in data: %s", scoreColumn)
	}
	labelIdx, ok := result.ColumnIndex("labels")
	if !ok {
		return fmt.Errorf("labels column not found in data")
	}

	var scores []float64
	var labels []int
	for row := 0; row < result.NumRows(); row++ {
		score, okScore := tab.ParseFloat(result.CellAt(row, scoreIdx))
		label, okLabel := tab.ParseFloat(result.CellAt(row, labelIdx))
		if !okScore || !okLabel {
			continue
		}
		scores = append(scores, score)
		labels = append(labels, int(label))
	}

	fpr, tpr, err := metrics.ROCCurve(scores, labels)
	if err != nil {
		return err
	}

	graph := chart.Chart{
		Width:  512,
		Height: 512,
		XAxis: chart.XAxis{
			Name: "False positive rate",
		},
		YAxis: chart.YAxis{
			Name: "True positive rate",
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				XValues: fpr,
				YValues: tpr,
			},
			chart.ContinuousSeries{
				Style: chart.Style{
					StrokeDashArray: []float64{5.0, 5.0},
				},
				XValues: []float64{0, 1},
				YValues: []float64{0, 1},
			},
		},
	}

	// Render to a byte buffer
	buffer := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buffer); err != nil {
		return err
	}

	outFile, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer outFile.Close()

	if _, err := buffer.WriteTo(outFile); err != nil {
		return err
	}

	return nil
}

func columnValues(result *tab.Table, column string) ([]float64, error) {
	cells, ok := result.Column(column)
	if !ok {
		return nil, fmt.Errorf("column not found in data: %s", column)
	}

	var values []float64
	for _, cell := range cells {
		if v, okValue := tab.ParseFloat(cell); okValue {
			values = append(values, v)
		}
	}

	return values, nil
}
