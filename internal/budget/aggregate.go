// Package budget is the core of hebdo: effective-hours aggregation over the
// activity hierarchy, the mutation operations that keep it consistent, and
// the display-ready tree projection.
package budget

import (
	"fmt"
	"math"

	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/alexanderramin/hebdo/internal/store"
)

// Hours is the effective weekly time cost of an activity.
type Hours struct {
	PerDay      float64
	DaysPerWeek float64
	PerWeek     float64
}

// Effective computes the effective hours for the named activity.
//
// A leaf returns its own values with PerWeek = PerDay * DaysPerWeek. An
// aggregator sums its children: PerWeek is the exact sum of the children's
// PerWeek values, while PerDay is the sum of each child's PerWeek spread over
// 7 days and rounded to 2 decimals per child. The per-child rounding is the
// tool's historical display convention, so an aggregator's PerDay * 7 may
// differ slightly from its PerWeek.
//
// An aggregator with no children yields (0, 7, 0). An unknown name yields
// ErrNotFound; a parent loop yields ErrCycleDetected instead of recursing
// forever.
func Effective(s *store.Store, name string) (Hours, error) {
	return effective(s, name, make(map[string]bool))
}

func effective(s *store.Store, name string, seen map[string]bool) (Hours, error) {
	if seen[name] {
		return Hours{}, fmt.Errorf("%q: %w", name, domain.ErrCycleDetected)
	}
	seen[name] = true

	a, err := s.Get(name)
	if err != nil {
		return Hours{}, err
	}

	if a.IsLeaf() {
		hpd, dpw := *a.HoursPerDay, *a.DaysPerWeek
		return Hours{PerDay: hpd, DaysPerWeek: dpw, PerWeek: hpd * dpw}, nil
	}

	var avgPerDay, totalPerWeek float64
	for _, child := range s.Children(name) {
		ch, err := effective(s, child.Name, seen)
		if err != nil {
			return Hours{}, err
		}
		avgPerDay += round2(ch.PerWeek / domain.DaysInWeek)
		totalPerWeek += ch.PerWeek
	}
	return Hours{PerDay: avgPerDay, DaysPerWeek: domain.DaysInWeek, PerWeek: totalPerWeek}, nil
}

// Available returns the hours left in a 168-hour week after every leaf
// activity's weekly hours. Aggregators contribute nothing directly; their
// time is already counted through their leaf descendants.
func Available(s *store.Store) float64 {
	total := 0.0
	for _, name := range s.Names() {
		if a, err := s.Get(name); err == nil {
			total += a.OwnHoursPerWeek()
		}
	}
	return domain.WeekHours - total
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
