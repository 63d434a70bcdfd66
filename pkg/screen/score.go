package screen

import (
	"fmt"
	"math"

	"github.com/bayscreen/bayscreen/pkg/model"
)

// ScoreVector computes the log-likelihood ratio score of one normalized
// feature vector, prior log-odds included. Pure function of its inputs.
func ScoreVector(v []float64, m *model.Model) (float64, error) {
	if len(v) != len(m.FeatureNames) {
		return 0, fmt.Errorf("%w: vector has %d values for %d features", ErrDomain, len(v), len(m.FeatureNames))
	}

	score := 0.0
	for ix, fv := range v {
		b, err := Bin(fv, m.CntBins)
		if err != nil {
			return 0, fmt.Errorf("feature %s: %w", m.FeatureNames[ix], err)
		}

		active := m.Probabilities.Actives[ix][b]
		inactive := m.Probabilities.Inactives[ix][b]
		if active <= 0 || inactive <= 0 {
			return 0, fmt.Errorf("%w: feature %s bin %d: %v/%v", ErrNumeric, m.FeatureNames[ix], b, active, inactive)
		}
		score += math.Log(active / inactive)
	}

	if m.Probabilities.Active <= 0 || m.Probabilities.Inactive <= 0 {
		return 0, fmt.Errorf("%w: class priors %v/%v", ErrNumeric, m.Probabilities.Active, m.Probabilities.Inactive)
	}
	return score + math.Log(m.Probabilities.Active/m.Probabilities.Inactive), nil
}
