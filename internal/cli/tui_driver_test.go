package cli

import (
	"testing"

	"github.com/alexanderramin/hebdo/internal/budget"
	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/alexanderramin/hebdo/internal/persist"
	"github.com/alexanderramin/hebdo/internal/teatest"
	"github.com/alexanderramin/hebdo/internal/testutil"
)

// testApp builds an App over a seeded in-memory store backed by a temp file.
func testApp(t *testing.T, activities ...*domain.Activity) *App {
	t.Helper()
	s := testutil.SeedStore(activities...)
	f := persist.NewFile(testutil.TempHoursFile(t))
	return &App{
		Budget:        budget.NewService(s, f),
		IsInteractive: func() bool { return true },
	}
}

// upsertLeaf builds the upsert input for a brand new leaf activity.
func upsertLeaf(name, hpd, dpw, parent string) budget.UpsertInput {
	return budget.UpsertInput{
		NewName:     name,
		HoursPerDay: hpd,
		DaysPerWeek: dpw,
		Parent:      parent,
	}
}

// newTestDriver starts the TUI under the synchronous test driver.
func newTestDriver(t *testing.T, app *App) *teatest.Driver {
	t.Helper()
	d := teatest.New(t, newAppModel(app), 120, 40)
	d.DrainInit()
	return d
}
