package formatter

import (
	"strings"

	"github.com/alexanderramin/hebdo/internal/budget"
)

// TreeRow is one flattened, display-ready row of the activity tree.
type TreeRow struct {
	Name         string // activity name prefixed with tree connectors
	Plain        string // activity name without connectors
	HoursPerDay  string
	DaysPerWeek  string
	HoursPerWeek string
}

const (
	treeBranch = "├─ "
	treeCorner = "└─ "
	treePipe   = "│  "
	treeBlank  = "   "
)

// TreeRows flattens a projected tree into rows, parent before children,
// using box-drawing connectors for the nesting structure.
func TreeRows(t *budget.Tree) []TreeRow {
	var rows []TreeRow
	var trail []bool // per-depth: is the ancestor at that depth the last sibling?

	t.Walk(func(n *budget.Node, depth int, isLast bool) {
		trail = append(trail[:depth], isLast)

		var prefix strings.Builder
		for d := 1; d < depth; d++ {
			if trail[d] {
				prefix.WriteString(treeBlank)
			} else {
				prefix.WriteString(treePipe)
			}
		}
		if depth > 0 {
			if isLast {
				prefix.WriteString(treeCorner)
			} else {
				prefix.WriteString(treeBranch)
			}
		}

		rows = append(rows, TreeRow{
			Name:         prefix.String() + n.Name,
			Plain:        n.Name,
			HoursPerDay:  n.HoursPerDay,
			DaysPerWeek:  n.DaysPerWeek,
			HoursPerWeek: n.HoursPerWeek,
		})
	})
	return rows
}

// HoursTable renders the flattened tree as the standard four-column table.
func HoursTable(rows []TreeRow) string {
	headers := []string{"activity", "hours per day", "days per week", "hours per week"}
	cells := make([][]string, len(rows))
	for i, r := range rows {
		cells[i] = []string{r.Name, r.HoursPerDay, r.DaysPerWeek, r.HoursPerWeek}
	}
	return RenderTable(headers, cells)
}
