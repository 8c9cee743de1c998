package store

import (
	"time"

	"github.com/talkincode/foodking/internal/domain"
)

// Export assembles the whole-store snapshot document.
func (s *Store) Export() (domain.Snapshot, error) {
	snap := domain.Snapshot{
		Orders:     []domain.Order{},
		Dishes:     []domain.Dish{},
		Categories: []string{},
		Favorites:  []domain.FavoriteEntry{},
		ExportDate: time.Now(),
	}
	if err := s.Read(domain.KeyOrders, &snap.Orders); err != nil {
		return snap, err
	}
	if err := s.Read(domain.KeyDishes, &snap.Dishes); err != nil {
		return snap, err
	}
	if err := s.Read(domain.KeyCategories, &snap.Categories); err != nil {
		return snap, err
	}
	if err := s.Read(domain.KeyFavorites, &snap.Favorites); err != nil {
		return snap, err
	}
	cfg, err := s.Settings()
	if err != nil {
		return snap, err
	}
	snap.Settings = &cfg
	return snap, nil
}

// Import restores snapshot fields wholesale. Nil fields leave the
// stored document untouched.
func (s *Store) Import(snap domain.Snapshot) error {
	if snap.Orders != nil {
		if err := s.Write(domain.KeyOrders, snap.Orders); err != nil {
			return err
		}
	}
	if snap.Dishes != nil {
		if err := s.Write(domain.KeyDishes, snap.Dishes); err != nil {
			return err
		}
	}
	if snap.Categories != nil {
		if err := s.Write(domain.KeyCategories, snap.Categories); err != nil {
			return err
		}
	}
	if snap.Favorites != nil {
		if err := s.Write(domain.KeyFavorites, snap.Favorites); err != nil {
			return err
		}
	}
	if snap.Settings != nil {
		if err := s.Write(domain.KeySettings, *snap.Settings); err != nil {
			return err
		}
	}
	return nil
}

// CreateBackup wraps the current snapshot with timestamp and version.
func (s *Store) CreateBackup() (domain.Backup, error) {
	snap, err := s.Export()
	if err != nil {
		return domain.Backup{}, err
	}
	return domain.Backup{
		Data:      snap,
		Timestamp: time.Now(),
		Version:   domain.BackupVersion,
	}, nil
}

// RestoreBackup imports the wrapped snapshot. A zero-value backup is
// rejected.
func (s *Store) RestoreBackup(b domain.Backup) error {
	return s.Import(b.Data)
}

// SaveBackup persists a backup under its dedicated key, outside the
// exported snapshot. Used by the auto-save job.
func (s *Store) SaveBackup(b domain.Backup) error {
	return s.Write(domain.KeyBackup, b)
}

// LoadBackup reads the persisted rolling backup, nil when absent.
func (s *Store) LoadBackup() (*domain.Backup, error) {
	found, err := s.has(domain.KeyBackup)
	if err != nil || !found {
		return nil, err
	}
	var b domain.Backup
	if err := s.Read(domain.KeyBackup, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

// ClearAll wipes the five domain documents and reseeds defaults.
func (s *Store) ClearAll() error {
	for _, key := range domain.DataKeys {
		if err := s.Delete(key); err != nil {
			return err
		}
	}
	return s.seedDefaults()
}
