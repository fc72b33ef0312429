package budget

import (
	"testing"

	"github.com/alexanderramin/hebdo/internal/domain"
	"github.com/alexanderramin/hebdo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEffective_LeafReturnsOwnHours(t *testing.T) {
	s := testutil.SeedStore(testutil.Leaf("Work", 8, 5, ""))

	h, err := Effective(s, "Work")
	require.NoError(t, err)
	assert.Equal(t, Hours{PerDay: 8, DaysPerWeek: 5, PerWeek: 40}, h)
}

func TestEffective_AggregatorAveragesOverSevenDays(t *testing.T) {
	// Exercise is 1h x 3d = 3 hours per week; the Health aggregate spreads
	// that over 7 days: round(3/7, 2) = 0.43.
	s := testutil.SeedStore(
		testutil.Leaf("Exercise", 1, 3, "Health"),
		testutil.Aggregator("Health", ""),
	)

	h, err := Effective(s, "Health")
	require.NoError(t, err)
	assert.Equal(t, Hours{PerDay: 0.43, DaysPerWeek: 7, PerWeek: 3}, h)
}

func TestEffective_PerWeekIsExactSumNotRoundedAverage(t *testing.T) {
	// Per-child rounding applies to PerDay only: 3/7 -> 0.43 and 4/7 -> 0.57
	// sum to 1.0, while PerWeek stays the exact 7.
	s := testutil.SeedStore(
		testutil.Aggregator("Stuff", ""),
		testutil.Leaf("A", 1, 3, "Stuff"),
		testutil.Leaf("B", 1, 4, "Stuff"),
	)

	h, err := Effective(s, "Stuff")
	require.NoError(t, err)
	assert.Equal(t, 7.0, h.PerWeek)
	assert.InDelta(t, 1.0, h.PerDay, 1e-9)
}

func TestEffective_NestedAggregators(t *testing.T) {
	s := testutil.SeedStore(
		testutil.Aggregator("Life", ""),
		testutil.Aggregator("Health", "Life"),
		testutil.Leaf("Exercise", 1, 3, "Health"),
		testutil.Leaf("Chores", 0.5, 6, "Life"),
	)

	h, err := Effective(s, "Life")
	require.NoError(t, err)
	// Health contributes its exact 3 hours per week; Chores 3 more.
	assert.Equal(t, 6.0, h.PerWeek)
	assert.Equal(t, 7.0, h.DaysPerWeek)
}

func TestEffective_EmptyAggregator(t *testing.T) {
	s := testutil.SeedStore(testutil.Aggregator("Someday", ""))

	h, err := Effective(s, "Someday")
	require.NoError(t, err)
	assert.Equal(t, Hours{PerDay: 0, DaysPerWeek: 7, PerWeek: 0}, h)
}

func TestEffective_UnknownName(t *testing.T) {
	s := testutil.SeedStore()

	_, err := Effective(s, "Ghost")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestEffective_CycleFailsInsteadOfRecursing(t *testing.T) {
	// A cycle can only come from a hand-edited file; Upsert rejects them.
	s := testutil.SeedStore(
		testutil.Aggregator("A", "B"),
		testutil.Aggregator("B", "A"),
	)

	_, err := Effective(s, "A")
	assert.ErrorIs(t, err, domain.ErrCycleDetected)
}

func TestAvailable_SubtractsLeafHoursFromWeek(t *testing.T) {
	s := testutil.SeedStore(
		testutil.Leaf("Work", 8, 5, ""),
		testutil.Leaf("Sleep", 8, 7, ""),
	)

	assert.Equal(t, 72.0, Available(s))
}

func TestAvailable_AggregatorsNotDoubleCounted(t *testing.T) {
	// Leaves under an aggregator count once; the aggregator itself adds 0.
	s := testutil.SeedStore(
		testutil.Aggregator("Health", ""),
		testutil.Leaf("Exercise", 1, 3, "Health"),
		testutil.Leaf("Sleep", 8, 7, "Health"),
	)

	assert.Equal(t, 168.0-3-56, Available(s))
}

func TestAvailable_EmptyStoreIsFullWeek(t *testing.T) {
	assert.Equal(t, 168.0, Available(testutil.SeedStore()))
}
