// Package model loads the trained activity model artifacts consumed by the
// screening pipeline.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalid indicates a model artifact whose shape is not coherent.
var ErrInvalid = errors.New("invalid model")

// Model is a trained binned Bayes activity classifier. Feature order is
// positional: the probability tables and normalization parameters line up
// with FeatureNames index by index.
type Model struct {
	FeatureNames  []string      `json:"features_names"`
	CntBins       int           `json:"cnt_bins"`
	Probabilities Probabilities `json:"probabilities"`
	Normalization Normalization `json:"normalization"`

	// Toolchain settings recorded at training time, passed through to the
	// fragment and descriptor generators.
	FragmentTypes []string `json:"fragment_types"`
	Generator     string   `json:"features_generator"`
	PadelPath     string   `json:"path_to_padel"`
}

// Probabilities holds the per-feature bin likelihood tables (rows are
// features, columns are bins) and the class priors.
type Probabilities struct {
	Actives   [][]float64 `json:"feature_value_in_actives"`
	Inactives [][]float64 `json:"feature_value_in_inactives"`
	Active    float64     `json:"active"`
	Inactive  float64     `json:"inactive"`
}

// Normalization holds the train-set scaling bounds and the per-feature
// fill-in values for missing descriptors.
type Normalization struct {
	Mins       []float64 `json:"mins"`
	Maxs       []float64 `json:"maxs"`
	Imputation []float64 `json:"imputation_values"`
}

// Load reads a model artifact from a JSON file and validates its shape.
func Load(path string) (*Model, error) {
	if path == "" {
		return nil, errors.New("model path required")
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening model: %s: %w", path, err)
	}
	defer f.Close()

	var m Model
	if err := json.NewDecoder(f).Decode(&m); err != nil {
		return nil, fmt.Errorf("error parsing model: %s: %w", path, err)
	}

	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("model %s: %w", path, err)
	}

	return &m, nil
}

// Validate checks that every feature has exactly CntBins likelihoods per
// class and one normalization triple. Probability values themselves are
// checked at scoring time, where a zero likelihood is a fatal model error.
func (m *Model) Validate() error {
	n := len(m.FeatureNames)
	if n == 0 {
		return fmt.Errorf("%w: no feature names", ErrInvalid)
	}
	if m.CntBins < 1 {
		return fmt.Errorf("%w: cnt_bins must be positive, got %d", ErrInvalid, m.CntBins)
	}
	if got := len(m.Probabilities.Actives); got != n {
		return fmt.Errorf("%w: %d active likelihood rows for %d features", ErrInvalid, got, n)
	}
	if got := len(m.Probabilities.Inactives); got != n {
		return fmt.Errorf("%w: %d inactive likelihood rows for %d features", ErrInvalid, got, n)
	}
	for ix := range m.FeatureNames {
		if got := len(m.Probabilities.Actives[ix]); got != m.CntBins {
			return fmt.Errorf("%w: feature %s has %d active bins, want %d", ErrInvalid, m.FeatureNames[ix], got, m.CntBins)
		}
		if got := len(m.Probabilities.Inactives[ix]); got != m.CntBins {
			return fmt.Errorf("%w: feature %s has %d inactive bins, want %d", ErrInvalid, m.FeatureNames[ix], got, m.CntBins)
		}
	}
	if got := len(m.Normalization.Mins); got != n {
		return fmt.Errorf("%w: %d mins for %d features", ErrInvalid, got, n)
	}
	if got := len(m.Normalization.Maxs); got != n {
		return fmt.Errorf("%w: %d maxs for %d features", ErrInvalid, got, n)
	}
	if got := len(m.Normalization.Imputation); got != n {
		return fmt.Errorf("%w: %d imputation values for %d features", ErrInvalid, got, n)
	}
	return nil
}
