package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/talkincode/foodking/internal/domain"
)

func TestExportImportRoundTrip(t *testing.T) {
	src := openTestStore(t)

	require.NoError(t, src.Write(domain.KeyOrders, []domain.Order{{
		ID: 1, Customer: "Ravi", Table: "4", Status: domain.OrderStatusPending,
		Cart: []domain.CartLine{{Dish: domain.Dish{ID: 11, Name: "Samosa", Price: 30}, Qty: 3}},
	}}))
	require.NoError(t, src.Write(domain.KeyFavorites, []domain.FavoriteEntry{{
		Dish: domain.Dish{ID: 5, Name: "Dal Makhani", Price: 180},
	}}))

	snap, err := src.Export()
	require.NoError(t, err)
	assert.False(t, snap.ExportDate.IsZero())
	require.NotNil(t, snap.Settings)

	dst, err := Open(filepath.Join(t.TempDir(), "fresh.db"))
	require.NoError(t, err)
	defer dst.Close()
	require.NoError(t, dst.Import(snap))

	restored, err := dst.Export()
	require.NoError(t, err)
	assert.Equal(t, snap.Orders, restored.Orders)
	assert.Equal(t, snap.Dishes, restored.Dishes)
	assert.Equal(t, snap.Categories, restored.Categories)
	assert.Equal(t, snap.Favorites, restored.Favorites)
	assert.Equal(t, snap.Settings, restored.Settings)
}

func TestImportAbsentFieldsUntouched(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Write(domain.KeyOrders, []domain.Order{{ID: 42, Customer: "Asha"}}))

	// snapshot carrying only dishes must not clobber orders or settings
	err := s.Import(domain.Snapshot{
		Dishes: []domain.Dish{{ID: 1, Name: "Momos", Price: 300}},
	})
	require.NoError(t, err)

	var orders []domain.Order
	require.NoError(t, s.Read(domain.KeyOrders, &orders))
	require.Len(t, orders, 1)
	assert.Equal(t, "Asha", orders[0].Customer)

	var dishes []domain.Dish
	require.NoError(t, s.Read(domain.KeyDishes, &dishes))
	require.Len(t, dishes, 1)
	assert.Equal(t, "Momos", dishes[0].Name)
}

func TestBackupRestore(t *testing.T) {
	src := openTestStore(t)
	require.NoError(t, src.Write(domain.KeyCategories, []string{"Tandoor"}))

	backup, err := src.CreateBackup()
	require.NoError(t, err)
	assert.Equal(t, domain.BackupVersion, backup.Version)
	assert.False(t, backup.Timestamp.IsZero())

	dst, err := Open(filepath.Join(t.TempDir(), "restore.db"))
	require.NoError(t, err)
	defer dst.Close()
	require.NoError(t, dst.RestoreBackup(backup))

	var categories []string
	require.NoError(t, dst.Read(domain.KeyCategories, &categories))
	assert.Equal(t, []string{"Tandoor"}, categories)
}

func TestSaveLoadBackup(t *testing.T) {
	s := openTestStore(t)

	loaded, err := s.LoadBackup()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	backup, err := s.CreateBackup()
	require.NoError(t, err)
	require.NoError(t, s.SaveBackup(backup))

	loaded, err = s.LoadBackup()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, backup.Version, loaded.Version)
}

func TestClearAllReseeds(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Write(domain.KeyOrders, []domain.Order{{ID: 1}}))
	require.NoError(t, s.Write(domain.KeyDishes, []domain.Dish{}))

	require.NoError(t, s.ClearAll())

	var orders []domain.Order
	require.NoError(t, s.Read(domain.KeyOrders, &orders))
	assert.Empty(t, orders)

	var dishes []domain.Dish
	require.NoError(t, s.Read(domain.KeyDishes, &dishes))
	assert.Len(t, dishes, 54)
}
