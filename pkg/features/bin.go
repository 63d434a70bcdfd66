// Package features merges feature-importance records reported by multiple
// independently trained binned activity models into a consensus report.
// Two models rarely report the exact same value range for a feature, so
// ranges that intersect are folded into one entry whose support counts the
// contributing models.
package features

import "errors"

// ErrFormat marks an importance record that does not parse. Individual
// malformed records are skipped with a warning; they never fail a run.
var ErrFormat = errors.New("malformed importance record")

// Bin is one feature's importance record: the feature name, the value range
// it was reported for, the likelihood ratio, and the number of models whose
// reported range has been folded into this entry.
type Bin struct {
	Name     string
	Interval Interval
	Ratio    float64
	Support  int
}

// MergedSet is the running cross-model collection of feature bins.
// It grows as each model's records are folded in and never shrinks.
type MergedSet struct {
	bins []*Bin
}

func NewMergedSet() *MergedSet {
	return &MergedSet{bins: make([]*Bin, 0)}
}

// Bins returns the entries in insertion order.
func (s *MergedSet) Bins() []*Bin {
	return s.bins
}

func (s *MergedSet) Len() int {
	return len(s.bins)
}

// Merge folds one model's records into the set. Each incoming record is
// matched against every existing entry with the same feature name and an
// overlapping interval; every match widens to the union interval, adds the
// incoming ratio, and bumps the support count. Matching continues past the
// first hit, so one incoming record can update several entries and the
// result depends on the order models are merged in. Records that match
// nothing are appended as new entries.
func (s *MergedSet) Merge(incoming []*Bin) {
	for _, in := range incoming {
		matched := false
		for _, have := range s.bins {
			if have.Name != in.Name || !have.Interval.Overlaps(in.Interval) {
				continue
			}
			have.Interval = have.Interval.Union(in.Interval)
			have.Ratio += in.Ratio
			have.Support++
			matched = true
		}
		if !matched {
			s.bins = append(s.bins, in)
		}
	}
}
