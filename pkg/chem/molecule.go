// Package chem bridges the screening pipeline to its chemistry
// collaborators: the fragment extraction and descriptor generation tools,
// and the files they produce.
package chem

import (
	"encoding/json"
	"fmt"
	"os"
)

// Fragment is a molecular substructure keyed by its canonical SMILES.
type Fragment struct {
	SMILES string `json:"smiles"`
}

// Molecule is one dataset entry with its extracted fragments, in
// extraction order. The same SMILES may appear more than once.
type Molecule struct {
	Name      string     `json:"name"`
	Fragments []Fragment `json:"fragments"`
}

// ReadMolecules parses the fragment extraction output file.
func ReadMolecules(path string) ([]*Molecule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening fragments: %s: %w", path, err)
	}
	defer f.Close()

	var mols []*Molecule
	if err := json.NewDecoder(f).Decode(&mols); err != nil {
		return nil, fmt.Errorf("error parsing fragments: %s: %w", path, err)
	}
	return mols, nil
}
