package domain

// Storage keys for the five top-level JSON documents.
const (
	KeyOrders     = "orders"
	KeyFavorites  = "favorites"
	KeyDishes     = "dishes"
	KeyCategories = "categories"
	KeySettings   = "settings"

	// KeyBackup holds the rolling auto-save backup, outside the
	// exported snapshot.
	KeyBackup = "backup"
)

// DataKeys lists the keys seeded on first open and covered by
// snapshot export/import.
var DataKeys = []string{
	KeyOrders,
	KeyFavorites,
	KeyDishes,
	KeyCategories,
	KeySettings,
}
