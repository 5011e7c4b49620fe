package enhancer

import (
	"github.com/regbench/regbench/datasets"
)

const (
	modeDefault = iota
	modeNoLimit
	modeExplicit
)

// Threshold selects how far an enhancer may sit from its gene's TSS before
// the pair is dropped. The zero value defers to the dataset's configured
// cutoff, and NoLimit disables filtering outright.
type Threshold struct {
	mode int
	bp   int64
}

// BP limits pairs to at most v base pairs of distance, overriding the
// dataset's configured cutoff.
func BP(v int64) Threshold {
	return Threshold{mode: modeExplicit, bp: v}
}

// NoLimit disables distance filtering even when the dataset configures a
// cutoff.
func NoLimit() Threshold {
	return Threshold{mode: modeNoLimit}
}

// limit resolves the threshold against a dataset. The second return is false
// when no filtering should happen at all.
func (th Threshold) limit(d datasets.Descriptor) (int64, bool) {
	switch th.mode {
	case modeExplicit:
		return th.bp, true
	case modeNoLimit:
		return 0, false
	}

	if d.DistanceThreshold != 0 {
		return d.DistanceThreshold, true
	}

	return 0, false
}
