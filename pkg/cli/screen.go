package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/bayscreen/bayscreen/pkg/chem"
	"github.com/bayscreen/bayscreen/pkg/model"
	"github.com/bayscreen/bayscreen/pkg/screen"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	modelFlag = &cli.StringFlag{
		Name:     "model",
		Aliases:  []string{"m"},
		Usage:    "Path to the trained model JSON file",
		Required: true,
	}

	datasetFlag = &cli.StringFlag{
		Name:     "dataset",
		Aliases:  []string{"d"},
		Usage:    "Molecules in SDF or SMILES format to rank",
		Required: true,
	}

	outputFlag = &cli.StringFlag{
		Name:     "output",
		Aliases:  []string{"o"},
		Usage:    "Output file for the resulting ranking (use - for stdout)",
		Required: true,
	}

	cleanFlag = &cli.BoolFlag{
		Name:    "clean",
		Aliases: []string{"c"},
		Usage:   "Delete the intermediate fragment and feature files",
	}

	sortFlag = &cli.BoolFlag{
		Name:  "sort",
		Usage: "Sort results by score, most active first",
	}

	formatFlag = &cli.StringFlag{
		Name:  "format",
		Usage: "Output format [text, json, yaml]",
		Value: formatText,
	}

	screenCmd = &cli.Command{
		Name:    "screen",
		Aliases: []string{"s"},
		Usage:   "Score molecules in a dataset against a trained model",
		Action:  cmdScreen,
		Flags: []cli.Flag{
			modelFlag,
			datasetFlag,
			outputFlag,
			cleanFlag,
			sortFlag,
			formatFlag,
		},
	}
)

func cmdScreen(c *cli.Context) error {
	cfg := getConfig(c)

	m, err := model.Load(c.String(modelFlag.Name))
	if err != nil {
		return fmt.Errorf("failed to load model: %w", err)
	}
	slog.Info("model loaded", "features", len(m.FeatureNames), "bins", m.CntBins)

	tc := &chem.Toolchain{
		FragmentsCmd:   cfg.Conf.FragmentsCmd,
		DescriptorsCmd: cfg.Conf.DescriptorsCmd,
	}

	dataset := c.String(datasetFlag.Name)
	fragments, err := tc.ExtractFragments(c.Context, dataset, m.FragmentTypes)
	if err != nil {
		return fmt.Errorf("failed to extract fragments: %w", err)
	}
	slog.Info("fragments extracted", "file", fragments)

	descriptors, err := tc.GenerateDescriptors(c.Context, fragments, m.Generator, m.PadelPath)
	if err != nil {
		return fmt.Errorf("failed to generate descriptors: %w", err)
	}
	slog.Info("descriptors generated", "file", descriptors)

	table, err := chem.ReadDescriptors(descriptors)
	if err != nil {
		return err
	}

	vectors, err := screen.Normalize(table, m)
	if err != nil {
		return fmt.Errorf("failed to normalize features: %w", err)
	}

	mols, err := chem.ReadMolecules(fragments)
	if err != nil {
		return err
	}

	results, err := screen.Screen(mols, vectors, m)
	if err != nil {
		return fmt.Errorf("failed to score molecules: %w", err)
	}
	if c.Bool(sortFlag.Name) {
		screen.SortByScore(results)
	}

	if err := writeResults(c.String(outputFlag.Name), c.String(formatFlag.Name), results); err != nil {
		return err
	}
	slog.Info("screening done", "molecules", len(mols), "scored", len(results))

	if c.Bool(cleanFlag.Name) {
		if err := chem.Cleanup(fragments, descriptors); err != nil {
			slog.Warn("error cleaning intermediate files", "error", err)
		}
	}
	return nil
}

func writeResults(path, format string, results []*screen.Result) error {
	var w io.Writer = os.Stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("error creating output file: %s: %w", path, err)
		}
		defer f.Close()
		w = f
	}

	switch format {
	case formatJSON:
		e := json.NewEncoder(w)
		e.SetIndent("", "  ")
		return e.Encode(results)
	case formatYAML, "yml":
		return yaml.NewEncoder(w).Encode(results)
	default:
		return screen.WriteResults(w, results)
	}
}
