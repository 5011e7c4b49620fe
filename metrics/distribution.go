package metrics

// Distribution summarizes how binary labels are spread across a dataset.
// TotalSamples counts every row including those with a missing label, while
// counts and percentages cover only the labeled rows.
type Distribution struct {
	TotalSamples          int             `json:"total_samples"`
	LabelCounts           map[int]int     `json:"label_counts"`
	LabelPercentages      map[int]float64 `json:"label_percentages"`
	PositiveNegativeRatio float64         `json:"positive_negative_ratio"`
}

// LabelDistribution tallies the observed labels. The ratio of positives to
// negatives is zero whenever either class is absent.
func LabelDistribution(totalSamples int, labels []int) Distribution {
	counts := make(map[int]int)
	for _, label := range labels {
		counts[label]++
	}

	percentages := make(map[int]float64, len(counts))
	for label, count := range counts {
		percentages[label] = float64(count) / float64(len(labels)) * 100
	}

	var ratio float64
	if counts[0] > 0 && counts[1] > 0 {
		ratio = float64(counts[1]) / float64(counts[0])
	}

	return Distribution{
		TotalSamples:          totalSamples,
		LabelCounts:           counts,
		LabelPercentages:      percentages,
		PositiveNegativeRatio: ratio,
	}
}
