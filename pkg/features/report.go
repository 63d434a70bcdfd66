package features

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/google/btree"
)

const groupingDegree = 2

// group collects every merged bin sharing one support count.
type group struct {
	support int
	bins    []*Bin
}

func (g *group) Less(than btree.Item) bool {
	return g.support < than.(*group).support
}

// Grouped arranges a merged set for reporting: an ordered mapping from
// support count to that group's bins, iterated highest support first so the
// most cross-model-consistent features lead the report.
type Grouped struct {
	tree *btree.BTree
}

// GroupBySupport groups the merged set by support count and sorts each
// group by summed ratio, descending. The sort is stable: bins with equal
// ratios keep their merge order.
func GroupBySupport(set *MergedSet) *Grouped {
	tree := btree.New(groupingDegree)

	for _, b := range set.Bins() {
		probe := &group{support: b.Support}
		if have := tree.Get(probe); have != nil {
			g := have.(*group)
			g.bins = append(g.bins, b)
			continue
		}
		probe.bins = append(probe.bins, b)
		tree.ReplaceOrInsert(probe)
	}

	tree.Ascend(func(i btree.Item) bool {
		g := i.(*group)
		sort.SliceStable(g.bins, func(a, b int) bool {
			return g.bins[a].Ratio > g.bins[b].Ratio
		})
		return true
	})

	return &Grouped{tree: tree}
}

// Write renders the grouped report: for each support count, descending, the
// count on its own line, one "name(lo;hi): average" line per bin, and a
// blank line; then the "Compressed:" line with the one-line summary.
// The in-group order follows the raw summed ratio, but the displayed value
// is the per-model average, ratio/support.
func (g *Grouped) Write(w io.Writer) error {
	var err error
	pr := func(format string, args ...any) {
		if err == nil {
			_, err = fmt.Fprintf(w, format, args...)
		}
	}

	g.tree.Descend(func(i btree.Item) bool {
		grp := i.(*group)
		pr("%d\n", grp.support)
		for _, b := range grp.bins {
			pr("%s(%v;%v): %v\n", b.Name, b.Interval.Lo, b.Interval.Hi, b.Ratio/float64(b.Support))
		}
		pr("\n")
		return err == nil
	})

	pr("Compressed:\n%s\n", g.Compressed())
	return err
}

// Compressed returns the one-line summary: one token per bin in report
// order, "name-width (support - average)", with the interval width to one
// decimal place and the average ratio to two.
func (g *Grouped) Compressed() string {
	tokens := make([]string, 0)

	g.tree.Descend(func(i btree.Item) bool {
		grp := i.(*group)
		for _, b := range grp.bins {
			tokens = append(tokens, fmt.Sprintf("%s-%.1f (%d - %.2f)",
				b.Name, b.Interval.Width(), grp.support, b.Ratio/float64(b.Support)))
		}
		return true
	})

	return strings.Join(tokens, ", ")
}
