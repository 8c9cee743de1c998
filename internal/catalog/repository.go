// Package catalog provides dish and category data access over the
// keyed document store.
package catalog

import (
	"strings"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/store"
	"github.com/talkincode/foodking/pkg/ids"
)

// Repository handles dish and category data access.
type Repository interface {
	// ListDishes returns every dish in the catalog.
	ListDishes() ([]domain.Dish, error)

	// GetDish returns the dish with the given id, nil when absent.
	GetDish(id int64) (*domain.Dish, error)

	// CreateDish stores data under a freshly generated id.
	CreateDish(data domain.Dish) (domain.Dish, error)

	// UpdateDish applies the patch, nil when the id is absent.
	UpdateDish(id int64, patch domain.DishPatch) (*domain.Dish, error)

	// DeleteDish removes a dish, reporting whether it existed.
	DeleteDish(id int64) (bool, error)

	// ListByCategory returns dishes with an exact category match.
	ListByCategory(category string) ([]domain.Dish, error)

	// Search returns dishes whose name or category contains the query,
	// case-insensitive.
	Search(query string) ([]domain.Dish, error)

	// ListCategories returns the category set.
	ListCategories() ([]string, error)

	// AddCategory appends a category unless present and returns the
	// current set.
	AddCategory(name string) ([]string, error)

	// DeleteCategory removes a category and returns the remaining set.
	DeleteCategory(name string) ([]string, error)
}

// BoltRepository is the document-store implementation of Repository.
type BoltRepository struct {
	store *store.Store
	idgen ids.Generator
}

// NewBoltRepository creates a catalog repository over the given store.
func NewBoltRepository(s *store.Store, idgen ids.Generator) *BoltRepository {
	return &BoltRepository{store: s, idgen: idgen}
}

var _ Repository = (*BoltRepository)(nil)

func (r *BoltRepository) ListDishes() ([]domain.Dish, error) {
	dishes := []domain.Dish{}
	err := r.store.Read(domain.KeyDishes, &dishes)
	return dishes, err
}

func (r *BoltRepository) GetDish(id int64) (*domain.Dish, error) {
	dishes, err := r.ListDishes()
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		if dishes[i].ID == id {
			return &dishes[i], nil
		}
	}
	return nil, nil
}

func (r *BoltRepository) CreateDish(data domain.Dish) (domain.Dish, error) {
	dishes, err := r.ListDishes()
	if err != nil {
		return domain.Dish{}, err
	}
	data.ID = r.idgen.NextID()
	dishes = append(dishes, data)
	if err := r.store.Write(domain.KeyDishes, dishes); err != nil {
		return domain.Dish{}, err
	}
	return data, nil
}

func (r *BoltRepository) UpdateDish(id int64, patch domain.DishPatch) (*domain.Dish, error) {
	dishes, err := r.ListDishes()
	if err != nil {
		return nil, err
	}
	for i := range dishes {
		if dishes[i].ID != id {
			continue
		}
		patch.Apply(&dishes[i])
		if err := r.store.Write(domain.KeyDishes, dishes); err != nil {
			return nil, err
		}
		return &dishes[i], nil
	}
	return nil, nil
}

func (r *BoltRepository) DeleteDish(id int64) (bool, error) {
	dishes, err := r.ListDishes()
	if err != nil {
		return false, err
	}
	kept := dishes[:0]
	for _, d := range dishes {
		if d.ID != id {
			kept = append(kept, d)
		}
	}
	if len(kept) == len(dishes) {
		return false, nil
	}
	if err := r.store.Write(domain.KeyDishes, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (r *BoltRepository) ListByCategory(category string) ([]domain.Dish, error) {
	dishes, err := r.ListDishes()
	if err != nil {
		return nil, err
	}
	matched := []domain.Dish{}
	for _, d := range dishes {
		if d.Category == category {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (r *BoltRepository) Search(query string) ([]domain.Dish, error) {
	dishes, err := r.ListDishes()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(query)
	matched := []domain.Dish{}
	for _, d := range dishes {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Category), q) {
			matched = append(matched, d)
		}
	}
	return matched, nil
}

func (r *BoltRepository) ListCategories() ([]string, error) {
	categories := []string{}
	err := r.store.Read(domain.KeyCategories, &categories)
	return categories, err
}

func (r *BoltRepository) AddCategory(name string) ([]string, error) {
	categories, err := r.ListCategories()
	if err != nil {
		return nil, err
	}
	for _, c := range categories {
		if c == name {
			return categories, nil
		}
	}
	categories = append(categories, name)
	if err := r.store.Write(domain.KeyCategories, categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *BoltRepository) DeleteCategory(name string) ([]string, error) {
	categories, err := r.ListCategories()
	if err != nil {
		return nil, err
	}
	kept := []string{}
	for _, c := range categories {
		if c != name {
			kept = append(kept, c)
		}
	}
	if err := r.store.Write(domain.KeyCategories, kept); err != nil {
		return nil, err
	}
	return kept, nil
}
