package screen

import (
	"fmt"
	"log/slog"
	"math"

	"github.com/bayscreen/bayscreen/pkg/chem"
	"github.com/bayscreen/bayscreen/pkg/model"
)

// Normalize computes the normalized feature vector for every fragment in
// the descriptor table. Features are selected from the table by name, in
// model feature order; missing or unparseable values take the model's
// imputation value, and everything is clipped into the training range
// before min-max scaling into [0,1].
func Normalize(table *chem.DescriptorTable, m *model.Model) (map[string][]float64, error) {
	norm := m.Normalization

	// -1 marks a feature the table has no column for: every fragment
	// gets the imputation value there.
	cols := make([]int, len(m.FeatureNames))
	for ix, name := range m.FeatureNames {
		if norm.Maxs[ix] == norm.Mins[ix] {
			return nil, fmt.Errorf("%w: feature %s has degenerate range [%v,%v]", ErrDomain, name, norm.Mins[ix], norm.Maxs[ix])
		}
		col, ok := table.Column(name)
		if !ok {
			slog.Warn("descriptor column missing, imputing", "feature", name)
			col = -1
		}
		cols[ix] = col
	}

	vectors := make(map[string][]float64, table.Len())
	for _, key := range table.Keys() {
		vec := make([]float64, len(m.FeatureNames))
		for ix := range m.FeatureNames {
			raw := table.Value(key, cols[ix])
			if math.IsNaN(raw) {
				raw = norm.Imputation[ix]
			}
			raw = math.Min(math.Max(raw, norm.Mins[ix]), norm.Maxs[ix])
			vec[ix] = (raw - norm.Mins[ix]) / (norm.Maxs[ix] - norm.Mins[ix])
		}
		vectors[key] = vec
	}

	return vectors, nil
}
