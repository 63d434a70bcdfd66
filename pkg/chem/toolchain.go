package chem

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Artifact suffixes for the intermediate files the toolchain leaves next
// to the dataset.
const (
	FragmentsSuffix   = ".fragments.json"
	DescriptorsSuffix = ".features.csv"
)

// Placeholders recognized in toolchain command templates.
const (
	placeholderInput     = "{input}"
	placeholderOutput    = "{output}"
	placeholderTypes     = "{types}"
	placeholderGenerator = "{generator}"
	placeholderTool      = "{tool}"
)

// Toolchain runs the external fragment and descriptor generators. Each
// command is an argv template; {input}, {output}, {types}, {generator}
// and {tool} occurring in any argument are substituted per run.
type Toolchain struct {
	FragmentsCmd   []string
	DescriptorsCmd []string
}

// ExtractFragments runs the fragment extraction tool on a dataset and
// returns the path of the fragment file it produced.
func (tc *Toolchain) ExtractFragments(ctx context.Context, dataset string, types []string) (string, error) {
	if len(tc.FragmentsCmd) == 0 {
		return "", errors.New("fragments command not configured")
	}

	output := artifactPath(dataset, FragmentsSuffix)
	args := expand(tc.FragmentsCmd, map[string]string{
		placeholderInput:  dataset,
		placeholderOutput: output,
		placeholderTypes:  strings.Join(types, ","),
	})

	if err := run(ctx, args); err != nil {
		return "", fmt.Errorf("fragment extraction failed: %w", err)
	}
	if _, err := os.Stat(output); err != nil {
		return "", fmt.Errorf("fragment extraction produced no output: %s: %w", output, err)
	}
	return output, nil
}

// GenerateDescriptors runs the descriptor generator on an extracted
// fragment file and returns the path of the descriptor table it produced.
func (tc *Toolchain) GenerateDescriptors(ctx context.Context, fragments, generator, tool string) (string, error) {
	if len(tc.DescriptorsCmd) == 0 {
		return "", errors.New("descriptors command not configured")
	}

	output := artifactPath(fragments, DescriptorsSuffix)
	args := expand(tc.DescriptorsCmd, map[string]string{
		placeholderInput:     fragments,
		placeholderOutput:    output,
		placeholderGenerator: generator,
		placeholderTool:      tool,
	})

	if err := run(ctx, args); err != nil {
		return "", fmt.Errorf("descriptor generation failed: %w", err)
	}
	if _, err := os.Stat(output); err != nil {
		return "", fmt.Errorf("descriptor generation produced no output: %s: %w", output, err)
	}
	return output, nil
}

// Cleanup removes intermediate artifact files. Missing files are not an
// error.
func Cleanup(paths ...string) error {
	var errs []error
	for _, p := range paths {
		if p == "" {
			continue
		}
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			errs = append(errs, fmt.Errorf("error removing %s: %w", p, err))
		}
	}
	return errors.Join(errs...)
}

// artifactPath derives an artifact name from its input: the dataset
// extension (or a previous artifact suffix) is replaced by the new suffix,
// so mols.smi yields mols.fragments.json and then mols.features.csv.
func artifactPath(input, suffix string) string {
	base := strings.TrimSuffix(input, FragmentsSuffix)
	if base == input {
		base = strings.TrimSuffix(input, filepath.Ext(input))
	}
	return base + suffix
}

func expand(args []string, repl map[string]string) []string {
	out := make([]string, 0, len(args))
	for _, a := range args {
		for ph, v := range repl {
			a = strings.ReplaceAll(a, ph, v)
		}
		out = append(out, a)
	}
	return out
}

func run(ctx context.Context, args []string) error {
	slog.Debug("running toolchain command", "cmd", strings.Join(args, " "))
	out, err := exec.CommandContext(ctx, args[0], args[1:]...).CombinedOutput()
	if err != nil {
		if len(out) > 0 {
			return fmt.Errorf("%s: %w: %s", args[0], err, strings.TrimSpace(string(out)))
		}
		return fmt.Errorf("%s: %w", args[0], err)
	}
	return nil
}
