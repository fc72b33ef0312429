package budget

import (
	"testing"

	"github.com/alexanderramin/hebdo/internal/persist"
	"github.com/alexanderramin/hebdo/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	s := testutil.SeedStore(
		testutil.Leaf("Work", 8, 5, ""),
		testutil.Leaf("Sleep", 8, 7, ""),
	)
	return NewService(s, persist.NewFile(testutil.TempHoursFile(t)))
}

func TestService_StartsClean(t *testing.T) {
	svc := setupService(t)
	assert.False(t, svc.Dirty())
}

func TestService_MutationsMarkDirtyAndSaveClears(t *testing.T) {
	svc := setupService(t)

	require.NoError(t, svc.Upsert(UpsertInput{NewName: "Exercise", HoursPerDay: "1", DaysPerWeek: "3"}))
	assert.True(t, svc.Dirty())

	require.NoError(t, svc.Save())
	assert.False(t, svc.Dirty())

	require.NoError(t, svc.Delete("Exercise"))
	assert.True(t, svc.Dirty())
}

func TestService_FailedUpsertStaysClean(t *testing.T) {
	svc := setupService(t)

	err := svc.Upsert(UpsertInput{NewName: "Standup", Parent: "Meetings"})
	assert.Error(t, err)
	assert.False(t, svc.Dirty())
}

func TestService_SaveThenReloadReproducesStore(t *testing.T) {
	file := persist.NewFile(testutil.TempHoursFile(t))
	svc := NewService(testutil.SeedStore(), file)

	require.NoError(t, svc.Upsert(UpsertInput{NewName: "Health"}))
	require.NoError(t, svc.Upsert(UpsertInput{NewName: "Exercise", HoursPerDay: "1", DaysPerWeek: "3", Parent: "Health"}))
	require.NoError(t, svc.Save())

	loaded, err := file.Load()
	require.NoError(t, err)
	reloaded := NewService(loaded, file)

	h, err := reloaded.Effective("Health")
	require.NoError(t, err)
	assert.Equal(t, Hours{PerDay: 0.43, DaysPerWeek: 7, PerWeek: 3}, h)
	assert.Equal(t, 165.0, reloaded.Available())
}

func TestService_TreeAndAvailable(t *testing.T) {
	svc := setupService(t)

	tree, err := svc.Tree()
	require.NoError(t, err)
	assert.Equal(t, 2, tree.Len())
	assert.Equal(t, 72.0, svc.Available())
}
