// Package favorites provides the bookmarked-dish set, keyed by dish id.
package favorites

import (
	"time"

	"github.com/asaskevich/EventBus"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/store"
)

// TopicFavoriteAdded is published with the new entry after a dish is
// bookmarked.
const TopicFavoriteAdded = "favorite.added"

// Repository handles the favorites set.
type Repository interface {
	// List returns all favorite entries.
	List() ([]domain.FavoriteEntry, error)

	// Add stores the dish with the current timestamp. Returns nil when
	// the dish id is already present; callers treat that as a no-op
	// signal, not an error.
	Add(dish domain.Dish) (*domain.FavoriteEntry, error)

	// Remove deletes by dish id, reporting whether it was present.
	Remove(id int64) (bool, error)

	// Contains reports whether the dish id is bookmarked.
	Contains(id int64) (bool, error)
}

// BoltRepository is the document-store implementation of Repository.
type BoltRepository struct {
	store *store.Store
	bus   EventBus.Bus
}

// NewBoltRepository creates a favorites repository over the given store.
// bus is optional; nil disables event publication.
func NewBoltRepository(s *store.Store, bus EventBus.Bus) *BoltRepository {
	return &BoltRepository{store: s, bus: bus}
}

var _ Repository = (*BoltRepository)(nil)

func (r *BoltRepository) List() ([]domain.FavoriteEntry, error) {
	favorites := []domain.FavoriteEntry{}
	err := r.store.Read(domain.KeyFavorites, &favorites)
	return favorites, err
}

func (r *BoltRepository) Add(dish domain.Dish) (*domain.FavoriteEntry, error) {
	favorites, err := r.List()
	if err != nil {
		return nil, err
	}
	for _, f := range favorites {
		if f.ID == dish.ID {
			return nil, nil
		}
	}
	entry := domain.FavoriteEntry{Dish: dish, DateAdded: time.Now()}
	favorites = append(favorites, entry)
	if err := r.store.Write(domain.KeyFavorites, favorites); err != nil {
		return nil, err
	}
	if r.bus != nil {
		r.bus.Publish(TopicFavoriteAdded, entry)
	}
	return &entry, nil
}

func (r *BoltRepository) Remove(id int64) (bool, error) {
	favorites, err := r.List()
	if err != nil {
		return false, err
	}
	kept := favorites[:0]
	for _, f := range favorites {
		if f.ID != id {
			kept = append(kept, f)
		}
	}
	if len(kept) == len(favorites) {
		return false, nil
	}
	if err := r.store.Write(domain.KeyFavorites, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (r *BoltRepository) Contains(id int64) (bool, error) {
	favorites, err := r.List()
	if err != nil {
		return false, err
	}
	for _, f := range favorites {
		if f.ID == id {
			return true, nil
		}
	}
	return false, nil
}
