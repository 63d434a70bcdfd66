package features

import (
	"bufio"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// SectionMarker introduces the feature-importance section of an analyzed
// model report. Everything before it is ignored.
const SectionMarker = "Features values importance"

// recordFields is the comma-separated shape of an importance record:
// ratio, feature name, feature value, interval.
const recordFields = 4

type parseState int

const (
	beforeSection parseState = iota
	inSection
)

// ReadReport reads the leading top feature records from one analyzed model
// report. Records are the first comma-separated 4-field lines after the
// section marker, taken in file order until top records have been collected;
// the report's own ordering decides which records count, not the ratios.
// Lines in the section that do not match the record shape, or whose fields
// do not parse, are skipped with a warning.
func ReadReport(path string, top int) ([]*Bin, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("error opening report: %s: %w", path, err)
	}
	defer f.Close()

	bins := make([]*Bin, 0, top)
	state := beforeSection
	line := 0

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line++
		text := scanner.Text()

		if strings.Contains(text, SectionMarker) {
			state = inSection
		}
		if state != inSection {
			continue
		}

		fields := strings.Split(text, ",")
		if len(fields) != recordFields {
			continue
		}

		bin, err := parseRecord(fields)
		if err != nil {
			slog.Warn("skipping importance record", "file", path, "line", line, "error", err)
			continue
		}

		bins = append(bins, bin)
		if len(bins) >= top {
			break
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading report: %s: %w", path, err)
	}

	return bins, nil
}

// parseRecord converts the 4 fields of a report line into a Bin with
// support 1. The third field (the raw feature value) is not used; ranges,
// not point values, identify a feature across models.
func parseRecord(fields []string) (*Bin, error) {
	ratio, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return nil, fmt.Errorf("%w: ratio %q: %v", ErrFormat, fields[0], err)
	}

	name := strings.TrimSpace(fields[1])
	if name == "" {
		return nil, fmt.Errorf("%w: empty feature name", ErrFormat)
	}

	interval, err := ParseInterval(fields[3])
	if err != nil {
		return nil, err
	}

	return &Bin{
		Name:     name,
		Interval: interval,
		Ratio:    ratio,
		Support:  1,
	}, nil
}

// FindReports walks dir recursively and returns every report file carrying
// the given suffix (without the dot), in lexical path order. The fixed order
// keeps the order-sensitive merge reproducible across runs.
func FindReports(dir, suffix string) ([]string, error) {
	pattern := "*." + suffix

	paths := make([]string, 0)
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ok, err := filepath.Match(pattern, d.Name())
		if err != nil {
			return err
		}
		if ok {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning report directory: %s: %w", dir, err)
	}

	return paths, nil
}
