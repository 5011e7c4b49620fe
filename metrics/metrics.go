// Package metrics computes ranking and distribution statistics for binary
// regulatory labels scored by a continuous predictor.
package metrics

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/integrate"
	"gonum.org/v1/gonum/stat"
)

// ErrSingleClass indicates that the labels contain only positives or only
// negatives, leaving the requested metric undefined.
var ErrSingleClass = errors.New("only one class present in labels")

// ROCCurve returns the receiver operating characteristic for the given
// scores against binary labels, ordered from the (0,0) to the (1,1) corner.
// Scores must be free of NaN.
func ROCCurve(scores []float64, labels []int) (fpr, tpr []float64, err error) {
	if len(scores) != len(labels) {
		return nil, nil, fmt.Errorf("%d scores against %d labels", len(scores), len(labels))
	}

	classes := make([]bool, len(labels))
	var pos, neg int
	for i, label := range labels {
		if label == 1 {
			classes[i] = true
			pos++
		} else {
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, nil, ErrSingleClass
	}

	y := append([]float64{}, scores...)
	stat.SortWeightedLabeled(y, classes, nil)
	tpr, fpr, _ = stat.ROC(nil, y, classes, nil)

	return fpr, tpr, nil
}

// AUROC returns the area under the ROC curve. Tied scores contribute half
// wins, matching the rank-based formulation.
func AUROC(scores []float64, labels []int) (float64, error) {
	fpr, tpr, err := ROCCurve(scores, labels)
	if err != nil {
		return 0, err
	}

	return integrate.Trapezoidal(fpr, tpr), nil
}

// AveragePrecision returns the area under the precision-recall curve using
// the step-wise sum over distinct score cutoffs, i.e. sum((Rn - Rn-1) * Pn).
// Tied scores enter as a single cutoff.
func AveragePrecision(scores []float64, labels []int) (float64, error) {
	if len(scores) != len(labels) {
		return 0, fmt.Errorf("%d scores against %d labels", len(scores), len(labels))
	}

	var pos int
	for _, label := range labels {
		if label == 1 {
			pos++
		}
	}
	if pos == 0 {
		return 0, ErrSingleClass
	}

	order := make([]int, len(scores))
	for i := range order {
		order[i] = i
	}
	sort.Slice(order, func(a, b int) bool {
		return scores[order[a]] > scores[order[b]]
	})

	var ap, prevRecall float64
	var tp, fp int
	for i := 0; i < len(order); {
		// Advance over the whole run of equal scores before evaluating.
		j := i
		for j < len(order) && scores[order[j]] == scores[order[i]] {
			if labels[order[j]] == 1 {
				tp++
			} else {
				fp++
			}
			j++
		}

		recall := float64(tp) / float64(pos)
		precision := float64(tp) / float64(tp+fp)
		ap += (recall - prevRecall) * precision
		prevRecall = recall
		i = j
	}

	return ap, nil
}
