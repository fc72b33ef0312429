package cli

import (
	"testing"

	"github.com/alexanderramin/hebdo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTUI_StartupRendersTreeAndAvailableHours(t *testing.T) {
	app := testApp(t,
		testutil.Aggregator("Health", ""),
		testutil.Leaf("Exercise", 1, 3, "Health"),
		testutil.Leaf("Work", 8, 5, ""),
	)
	d := newTestDriver(t, app)

	view := d.View()
	assert.Contains(t, view, "Weekly hours")
	assert.Contains(t, view, "Health")
	assert.Contains(t, view, "Exercise")
	assert.Contains(t, view, "Work")
	assert.Contains(t, view, "Available weekly hours:")
	// 168 - 3 - 40
	assert.Contains(t, view, "125")
}

func TestTUI_EmptyStoreShowsHint(t *testing.T) {
	d := newTestDriver(t, testApp(t))

	assert.Contains(t, d.View(), "No activities yet.")
	assert.Contains(t, d.View(), "168")
}

func TestTUI_CtrlCQuitsImmediately(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)

	// Make the budget dirty; ctrl+c must still exit without a prompt.
	require.NoError(t, app.Budget.Upsert(upsertLeaf("Read", "1", "7", "")))
	d.PressCtrlC()

	assert.True(t, d.Quitting)
}

func TestTUI_QuitWhenCleanNeedsNoConfirmation(t *testing.T) {
	d := newTestDriver(t, testApp(t, testutil.Leaf("Work", 8, 5, "")))

	d.PressKey('q')

	assert.True(t, d.Quitting)
}

func TestTUI_QuitWhenDirtyAsksForConfirmation(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)
	require.NoError(t, app.Budget.Upsert(upsertLeaf("Read", "1", "7", "")))

	d.PressKey('q')
	assert.False(t, d.Quitting)
	assert.Contains(t, d.View(), "lose any unsaved changes")

	// OK is focused; enter confirms and quits without saving.
	d.PressEnter()
	assert.True(t, d.Quitting)
}

func TestTUI_QuitConfirmationCanBeDismissed(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)
	require.NoError(t, app.Budget.Upsert(upsertLeaf("Read", "1", "7", "")))

	d.PressKey('q')
	d.PressEsc()

	assert.False(t, d.Quitting)
	assert.Contains(t, d.View(), "Work")
}

func TestTUI_SaveAndCloseWritesFileAndQuits(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)
	require.NoError(t, app.Budget.Upsert(upsertLeaf("Read", "1", "7", "")))

	d.PressKey('s')

	assert.True(t, d.Quitting)
	assert.False(t, app.Budget.Dirty())
}

func TestTUI_NewActivityFlow(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)

	d.PressKey('n')
	assert.Contains(t, d.View(), "New activity")

	d.Type("Read")
	d.PressEnter() // name -> hours per day
	d.Type("1")
	d.PressEnter() // -> days per week
	d.Type("7")
	d.PressEnter() // -> parent
	d.PressEnter() // submit

	view := d.View()
	assert.Contains(t, view, "Weekly hours")
	assert.Contains(t, view, "Read")
	assert.True(t, app.Budget.Dirty())

	a, err := app.Budget.Get("Read")
	require.NoError(t, err)
	assert.Equal(t, 7.0, a.OwnHoursPerWeek())
}

func TestTUI_NewActivityCanBeCancelled(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)

	d.PressKey('n')
	d.Type("Abandoned")
	d.PressEsc()

	assert.Contains(t, d.View(), "Weekly hours")
	assert.NotContains(t, d.View(), "Abandoned")
	assert.False(t, app.Budget.Dirty())
}

func TestTUI_EditPrefillsAndRenames(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)
	original, err := app.Budget.Get("Work")
	require.NoError(t, err)

	d.PressKey('e')
	view := d.View()
	assert.Contains(t, view, "Edit activity")
	assert.Contains(t, view, "Work")
	assert.Contains(t, view, "8")

	// Append to the prefilled name, keep the other fields as they are.
	d.Type("shop")
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()

	assert.Contains(t, d.View(), "Workshop")
	renamed, err := app.Budget.Get("Workshop")
	require.NoError(t, err)
	assert.Equal(t, original.ID, renamed.ID)
}

func TestTUI_EditWithoutSelectionShowsStatus(t *testing.T) {
	d := newTestDriver(t, testApp(t))

	d.PressKey('e')

	assert.Contains(t, d.View(), "Select an activity to edit.")
}

func TestTUI_DeleteWithoutSelectionShowsStatus(t *testing.T) {
	d := newTestDriver(t, testApp(t))

	d.PressKey('x')

	assert.Contains(t, d.View(), "Select an activity to delete.")
}

func TestTUI_UnknownParentReopensForm(t *testing.T) {
	app := testApp(t)
	d := newTestDriver(t, app)

	d.PressKey('n')
	d.Type("Read")
	d.PressEnter()
	d.PressEnter()
	d.PressEnter()
	d.Type("Nowhere")
	d.PressEnter()

	view := d.View()
	assert.Contains(t, view, "Chosen parent activity does not exist.")
	assert.Contains(t, view, "Read")
	assert.Equal(t, 0, app.Budget.Len())
}

func TestTUI_DeleteLeafAfterConfirm(t *testing.T) {
	app := testApp(t,
		testutil.Leaf("Work", 8, 5, ""),
		testutil.Leaf("Read", 1, 7, ""),
	)
	d := newTestDriver(t, app)

	d.PressKey('x')
	view := d.View()
	assert.Contains(t, view, `Ready to delete "Work".`)
	assert.NotContains(t, view, "subactivities")

	d.PressEnter()

	assert.NotContains(t, d.View(), "Work")
	assert.Contains(t, d.View(), "Read")
	assert.Equal(t, 1, app.Budget.Len())
}

func TestTUI_DeleteParentCascades(t *testing.T) {
	app := testApp(t,
		testutil.Aggregator("Health", ""),
		testutil.Leaf("Exercise", 1, 3, "Health"),
		testutil.Leaf("Work", 8, 5, ""),
	)
	d := newTestDriver(t, app)

	d.PressKey('x')
	assert.Contains(t, d.View(), "and all of its subactivities")

	d.PressEnter()

	view := d.View()
	assert.NotContains(t, view, "Health")
	assert.NotContains(t, view, "Exercise")
	assert.Contains(t, view, "Work")
	assert.Equal(t, 1, app.Budget.Len())
}

func TestTUI_DeleteCanBeCancelled(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)

	d.PressKey('x')
	d.PressEsc()

	assert.Contains(t, d.View(), "Work")
	assert.Equal(t, 1, app.Budget.Len())
}

func TestTUI_CursorMovesSelection(t *testing.T) {
	app := testApp(t,
		testutil.Leaf("Work", 8, 5, ""),
		testutil.Leaf("Read", 1, 7, ""),
	)
	d := newTestDriver(t, app)

	d.PressDown()
	d.PressKey('x')

	assert.Contains(t, d.View(), `Ready to delete "Read".`)
}

func TestTUI_RefreshReloadsProjection(t *testing.T) {
	app := testApp(t, testutil.Leaf("Work", 8, 5, ""))
	d := newTestDriver(t, app)

	// Mutate behind the view's back, then refresh.
	require.NoError(t, app.Budget.Upsert(upsertLeaf("Read", "1", "7", "")))
	assert.NotContains(t, d.View(), "Read")

	d.PressKey('r')

	assert.Contains(t, d.View(), "Read")
}
