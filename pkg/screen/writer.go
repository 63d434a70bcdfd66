package screen

import (
	"fmt"
	"io"
)

// WriteResults renders one "name: score" line per molecule.
func WriteResults(w io.Writer, results []*Result) error {
	for _, r := range results {
		if _, err := fmt.Fprintf(w, "%s: %v\n", r.Molecule, r.Score); err != nil {
			return fmt.Errorf("error writing results: %w", err)
		}
	}
	return nil
}
