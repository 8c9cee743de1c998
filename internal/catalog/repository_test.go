package catalog_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/foodking/internal/catalog"
	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/store"
	"github.com/talkincode/foodking/pkg/ids"
)

func newTestRepo(t *testing.T) *catalog.BoltRepository {
	t.Helper()
	s, err := store.Open(filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return catalog.NewBoltRepository(s, ids.NewSequence(1000))
}

func TestCreateAndGetDish(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.CreateDish(domain.Dish{Name: "Thali", Price: 250, Category: "North Indian"})
	require.NoError(t, err)
	assert.Equal(t, int64(1001), created.ID)

	got, err := repo.GetDish(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, created, *got)

	absent, err := repo.GetDish(987654)
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestCreateDishIgnoresCallerID(t *testing.T) {
	repo := newTestRepo(t)

	created, err := repo.CreateDish(domain.Dish{ID: 3, Name: "Clone", Price: 10})
	require.NoError(t, err)
	// ids always come from the generator so seeded ids are never reused
	assert.Equal(t, int64(1001), created.ID)
}

func TestUpdateDishPatch(t *testing.T) {
	repo := newTestRepo(t)

	price := 35.0
	updated, err := repo.UpdateDish(11, domain.DishPatch{Price: &price})
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, "Samosa", updated.Name) // untouched
	assert.Equal(t, 35.0, updated.Price)

	missing, err := repo.UpdateDish(424242, domain.DishPatch{Price: &price})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestDeleteDish(t *testing.T) {
	repo := newTestRepo(t)

	removed, err := repo.DeleteDish(11)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.DeleteDish(11)
	require.NoError(t, err)
	assert.False(t, removed)

	got, err := repo.GetDish(11)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSearchCaseInsensitive(t *testing.T) {
	repo := newTestRepo(t)

	byName, err := repo.Search("samosa")
	require.NoError(t, err)
	require.NotEmpty(t, byName)
	assert.Equal(t, "Samosa", byName[0].Name)

	byCategory, err := repo.Search("BIRYANI")
	require.NoError(t, err)
	// matches dish names and the Biryani category
	assert.GreaterOrEqual(t, len(byCategory), 3)

	none, err := repo.Search("sushi")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestListByCategory(t *testing.T) {
	repo := newTestRepo(t)

	seafood, err := repo.ListByCategory("Seafood")
	require.NoError(t, err)
	require.Len(t, seafood, 2)
	for _, d := range seafood {
		assert.Equal(t, "Seafood", d.Category)
	}
}

func TestCategorySetSemantics(t *testing.T) {
	repo := newTestRepo(t)

	initial, err := repo.ListCategories()
	require.NoError(t, err)

	withNew, err := repo.AddCategory("Tandoor")
	require.NoError(t, err)
	assert.Len(t, withNew, len(initial)+1)

	// adding again is a no-op returning the current set
	again, err := repo.AddCategory("Tandoor")
	require.NoError(t, err)
	assert.Equal(t, withNew, again)

	afterDelete, err := repo.DeleteCategory("Tandoor")
	require.NoError(t, err)
	assert.Len(t, afterDelete, len(initial))
	assert.NotContains(t, afterDelete, "Tandoor")
}
