package budget

import (
	"fmt"
	"strconv"

	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/alexanderramin/hebdo/internal/store"
)

// Node is one display row of the projected activity tree. Hours values are
// pre-formatted with trailing zeros trimmed ("3", not "3.0").
type Node struct {
	Name         string
	HoursPerDay  string
	DaysPerWeek  string
	HoursPerWeek string
	Children     []*Node
}

// Tree is the display-ready projection of the whole store, parent-first.
type Tree struct {
	Roots []*Node
}

// BuildTree projects the store into an ordered tree. Records are attached in
// store iteration order; a record whose parent has not been inserted yet is
// deferred and retried until the set reaches a fixpoint, so forward
// references are fine regardless of file order. O(n²) worst case, which is
// acceptable at the tens-of-activities scale this tool sees.
//
// Records that never resolve (missing parent, or a parent loop) are left
// out and reported through a joined ErrDanglingParent / ErrCycleDetected
// error. The returned tree is always usable; the error is a warning.
func BuildTree(s *store.Store) (*Tree, error) {
	t := &Tree{}
	nodes := make(map[string]*Node)
	var deferred []*domain.Activity
	var buildErr error

	attach := func(a *domain.Activity) (bool, error) {
		var siblings *[]*Node
		if a.Parent == "" {
			siblings = &t.Roots
		} else if p, ok := nodes[a.Parent]; ok {
			siblings = &p.Children
		} else {
			return false, nil
		}

		h, err := Effective(s, a.Name)
		if err != nil {
			return false, err
		}
		n := &Node{
			Name:         a.Name,
			HoursPerDay:  FormatHours(h.PerDay),
			DaysPerWeek:  FormatHours(h.DaysPerWeek),
			HoursPerWeek: FormatHours(h.PerWeek),
		}
		nodes[a.Name] = n
		*siblings = append(*siblings, n)
		return true, nil
	}

	for _, name := range s.Names() {
		a, err := s.Get(name)
		if err != nil {
			continue
		}
		ok, err := attach(a)
		if err != nil {
			buildErr = joinWarning(buildErr, err)
			continue
		}
		if !ok {
			deferred = append(deferred, a)
		}
	}

	for len(deferred) > 0 {
		progress := false
		next := deferred[:0]
		for _, a := range deferred {
			ok, err := attach(a)
			if err != nil {
				buildErr = joinWarning(buildErr, err)
				progress = true
				continue
			}
			if ok {
				progress = true
			} else {
				next = append(next, a)
			}
		}
		deferred = next
		if !progress {
			// Fixpoint with leftovers: their parents will never materialize.
			for _, a := range deferred {
				buildErr = joinWarning(buildErr, fmt.Errorf("%q under %q: %w", a.Name, a.Parent, domain.ErrDanglingParent))
			}
			break
		}
	}

	return t, buildErr
}

func joinWarning(acc, err error) error {
	if acc == nil {
		return err
	}
	return fmt.Errorf("%v; %w", acc, err)
}

// Walk visits every node depth-first, parent before children, with the
// node's depth. Used by renderers to flatten the tree into rows.
func (t *Tree) Walk(fn func(n *Node, depth int, isLast bool)) {
	var walk func(n *Node, depth int, isLast bool)
	walk = func(n *Node, depth int, isLast bool) {
		fn(n, depth, isLast)
		for i, c := range n.Children {
			walk(c, depth+1, i == len(n.Children)-1)
		}
	}
	for i, r := range t.Roots {
		walk(r, 0, i == len(t.Roots)-1)
	}
}

// Len returns the number of nodes in the projection.
func (t *Tree) Len() int {
	n := 0
	t.Walk(func(*Node, int, bool) { n++ })
	return n
}

// FormatHours renders an hours value without trailing zeros: 3 not 3.0,
// 2.5 not 2.50. Six significant digits also absorb float noise like
// 0.43000000000000004 from summing per-child rounded values.
func FormatHours(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}
