package enhancer

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/regbench/regbench/datasets"
	"github.com/regbench/regbench/tab"
)

// ComputeFeatures derives the distance and labels columns from a normalized
// table. The distance is measured from the midpoint of the enhancer interval
// to the gene's TSS, with the midpoint rounded down. Rows whose coordinates
// are missing or unparseable get a missing distance, and rows with a missing
// raw label get a missing label.
func ComputeFeatures(t *tab.Table, d datasets.Descriptor) (*tab.Table, error) {
	startIdx, ok := t.ColumnIndex("start")
	if !ok {
		return nil, fmt.Errorf("start column not found in data")
	}
	endIdx, ok := t.ColumnIndex("end")
	if !ok {
		return nil, fmt.Errorf("end column not found in data")
	}
	tssIdx, ok := t.ColumnIndex("gene_tss")
	if !ok {
		return nil, fmt.Errorf("gene_tss column not found in data")
	}

	if d.LabelColumn == "" {
		return nil, fmt.Errorf("dataset %s/%s does not configure a label column", d.Task, d.Name)
	}
	labelIdx, ok := t.ColumnIndex(d.LabelColumn)
	if !ok {
		return nil, fmt.Errorf("label column %q not found in data", d.LabelColumn)
	}

	distance := make([]string, t.NumRows())
	labels := make([]string, t.NumRows())
	for row := 0; row < t.NumRows(); row++ {
		start, okStart := tab.ParseFloat(t.CellAt(row, startIdx))
		end, okEnd := tab.ParseFloat(t.CellAt(row, endIdx))
		tss, okTSS := tab.ParseFloat(t.CellAt(row, tssIdx))
		if okStart && okEnd && okTSS {
			center := math.Floor((start + end) / 2)
			distance[row] = strconv.FormatFloat(math.Abs(center-tss), 'f', -1, 64)
		}

		raw := t.CellAt(row, labelIdx)
		if !tab.IsMissing(raw) {
			if labelValue(raw) == labelValue(d.PositiveLabel) {
				labels[row] = "1"
			} else {
				labels[row] = "0"
			}
		}
	}

	withDistance, err := t.WithColumn("distance", distance)
	if err != nil {
		return nil, err
	}

	return withDistance.WithColumn("labels", labels)
}

// labelValue reduces the spellings of a raw label to a comparable form, so
// that TRUE, true, 1 and 1.0 all denote the same positive indicator.
func labelValue(s string) string {
	s = strings.TrimSpace(s)
	if b, err := strconv.ParseBool(s); err == nil {
		if b {
			return "1"
		}
		return "0"
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}

	return s
}
