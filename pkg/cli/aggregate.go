package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/bayscreen/bayscreen/pkg/features"
)

var (
	reportDirFlag = &cli.StringFlag{
		Name:     "dir",
		Aliases:  []string{"d"},
		Usage:    "Directory to scan for per-model importance reports",
		Required: true,
	}

	topFlag = &cli.IntFlag{
		Name:    "top",
		Aliases: []string{"t"},
		Usage:   "Number of records read from each report (default: from config)",
	}

	aggregateCmd = &cli.Command{
		Name:    "aggregate",
		Aliases: []string{"a"},
		Usage:   "Merge feature importance reports from multiple models into one ranking",
		Action:  cmdAggregate,
		Flags: []cli.Flag{
			reportDirFlag,
			topFlag,
		},
	}
)

func cmdAggregate(c *cli.Context) error {
	cfg := getConfig(c)

	top := cfg.Conf.TopFeatures
	if c.IsSet(topFlag.Name) {
		top = c.Int(topFlag.Name)
	}
	if top < 1 {
		return fmt.Errorf("top must be positive, got %d", top)
	}

	dir := c.String(reportDirFlag.Name)
	paths, err := features.FindReports(dir, cfg.Conf.ReportSuffix)
	if err != nil {
		return fmt.Errorf("failed to scan reports: %w", err)
	}
	if len(paths) == 0 {
		slog.Warn("no reports found", "dir", dir, "suffix", cfg.Conf.ReportSuffix)
	}
	slog.Info("aggregating reports", "dir", dir, "count", len(paths), "top", top)

	set := features.NewMergedSet()
	for _, path := range paths {
		bins, err := features.ReadReport(path, top)
		if err != nil {
			return fmt.Errorf("failed to read report: %w", err)
		}
		slog.Debug("report read", "file", path, "records", len(bins))
		set.Merge(bins)
	}

	grouped := features.GroupBySupport(set)
	if err := grouped.Write(os.Stdout); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
