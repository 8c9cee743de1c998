package domain

import "time"

// FavoriteEntry is a dish bookmarked by id, independent of ordering.
type FavoriteEntry struct {
	Dish
	DateAdded time.Time `json:"dateAdded"`
}
