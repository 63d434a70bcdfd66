package chem

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DescriptorTable is the raw descriptor matrix produced by the descriptor
// generator: first column holds the fragment SMILES, remaining columns one
// descriptor each. Values that fail to parse are kept as NaN so the
// normalization step can impute them.
type DescriptorTable struct {
	columns map[string]int
	keys    []string
	values  map[string][]float64
}

// ReadDescriptors parses a descriptor CSV file. The first non-empty row is
// the header; rows may be ragged.
func ReadDescriptors(path string) (*DescriptorTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening descriptors: %s: %w", path, err)
	}
	defer f.Close()

	t := &DescriptorTable{
		columns: make(map[string]int),
		values:  make(map[string][]float64),
	}

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	for {
		row, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error reading descriptors: %s: %w", path, err)
		}
		if len(row) == 0 {
			continue
		}

		if len(t.columns) == 0 {
			for ix, name := range row {
				t.columns[name] = ix
			}
			continue
		}

		key := row[0]
		vals := make([]float64, len(row))
		for ix, field := range row {
			v, err := strconv.ParseFloat(strings.TrimSpace(field), 64)
			if err != nil {
				v = math.NaN()
			}
			vals[ix] = v
		}
		if _, ok := t.values[key]; !ok {
			t.keys = append(t.keys, key)
		}
		t.values[key] = vals
	}

	return t, nil
}

// Column returns the header index of a descriptor by name.
func (t *DescriptorTable) Column(name string) (int, bool) {
	ix, ok := t.columns[name]
	return ix, ok
}

// Keys returns the fragment keys in file order, without duplicates.
func (t *DescriptorTable) Keys() []string {
	return t.keys
}

// Value returns the raw descriptor at a column for a fragment, or NaN when
// the fragment is unknown or its row is too short.
func (t *DescriptorTable) Value(key string, col int) float64 {
	row, ok := t.values[key]
	if !ok || col < 0 || col >= len(row) {
		return math.NaN()
	}
	return row[col]
}

// Len returns the number of fragment rows.
func (t *DescriptorTable) Len() int {
	return len(t.keys)
}
