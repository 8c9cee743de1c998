package domain

import "time"

// Snapshot is the whole-store export document. On import every field
// is independently optional: a nil field leaves the stored document
// untouched, an empty one overwrites it.
type Snapshot struct {
	Orders     []Order         `json:"orders,omitempty"`
	Dishes     []Dish          `json:"dishes,omitempty"`
	Categories []string        `json:"categories,omitempty"`
	Favorites  []FavoriteEntry `json:"favorites,omitempty"`
	Settings   *Settings       `json:"settings,omitempty"`
	ExportDate time.Time       `json:"exportDate"`
}

// Backup wraps a snapshot with bookkeeping metadata.
type Backup struct {
	Data      Snapshot  `json:"data"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

// BackupVersion is written into every backup wrapper.
const BackupVersion = "1.0"
