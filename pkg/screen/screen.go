// Package screen scores candidate molecules against a trained activity
// model. Raw per-fragment descriptors are normalized into [0,1],
// discretized into bins, and summed into log-likelihood ratio scores; a
// molecule's score is the mean over its distinct fragments.
package screen

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bayscreen/bayscreen/pkg/chem"
	"github.com/bayscreen/bayscreen/pkg/model"
)

var (
	// ErrDomain indicates a feature value outside the normalized [0,1]
	// domain, or a feature whose training range has zero width.
	ErrDomain = errors.New("value outside normalized domain")

	// ErrNumeric indicates a model probability the log-likelihood cannot
	// take. The model artifact is corrupt; the run must stop.
	ErrNumeric = errors.New("model probability not positive")
)

// Result is one scored molecule.
type Result struct {
	Molecule string  `json:"molecule"`
	Score    float64 `json:"score"`
}

// Screen scores every molecule, keeping dataset order. Within a molecule
// each distinct fragment is scored once; fragments without a descriptor
// vector are skipped; a molecule left with no scorable fragment yields no
// result at all.
func Screen(mols []*chem.Molecule, vectors map[string][]float64, m *model.Model) ([]*Result, error) {
	results := make([]*Result, 0, len(mols))

	for _, mol := range mols {
		seen := make(map[string]bool, len(mol.Fragments))
		sum := 0.0
		cnt := 0

		for _, frag := range mol.Fragments {
			if seen[frag.SMILES] {
				continue
			}
			seen[frag.SMILES] = true

			v, ok := vectors[frag.SMILES]
			if !ok {
				slog.Debug("fragment has no descriptors", "molecule", mol.Name, "smiles", frag.SMILES)
				continue
			}

			score, err := ScoreVector(v, m)
			if err != nil {
				return nil, fmt.Errorf("molecule %s fragment %s: %w", mol.Name, frag.SMILES, err)
			}
			sum += score
			cnt++
		}

		if cnt == 0 {
			slog.Warn("molecule has no scorable fragments", "molecule", mol.Name)
			continue
		}
		results = append(results, &Result{Molecule: mol.Name, Score: sum / float64(cnt)})
	}

	return results, nil
}

// SortByScore orders results from most to least active.
func SortByScore(results []*Result) {
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
}
