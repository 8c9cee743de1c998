// Package orders provides order persistence, queries and the derived
// analytics views.
package orders

import (
	"strings"
	"time"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/store"
	"github.com/talkincode/foodking/pkg/ids"
)

// Repository handles order data access.
type Repository interface {
	// List returns every stored order in placement sequence.
	List() ([]domain.Order, error)

	// Get returns the order with the given id, nil when absent.
	Get(id int64) (*domain.Order, error)

	// Create assigns id and creation time, defaults status to pending
	// and appends the order to the sequence.
	Create(draft domain.OrderDraft) (domain.Order, error)

	// Update applies the patch, nil when the id is absent.
	Update(id int64, patch domain.OrderPatch) (*domain.Order, error)

	// Delete removes an order. Always reports true, even for absent
	// ids, so repeated deletes stay idempotent.
	Delete(id int64) (bool, error)

	// ByStatus returns orders with an exact status match.
	ByStatus(status string) ([]domain.Order, error)

	// ByCustomer returns orders whose customer contains the given
	// substring, case-insensitive.
	ByCustomer(name string) ([]domain.Order, error)

	// ByTable returns orders with an exact table match.
	ByTable(table string) ([]domain.Order, error)

	// Statistics recomputes the aggregate order view.
	Statistics() (domain.OrderStatistics, error)

	// PopularDishes ranks dish names by total ordered quantity.
	PopularDishes(limit int) ([]domain.DishCount, error)

	// RevenueByDate buckets revenue per calendar day for the last days
	// days, including today.
	RevenueByDate(days int) (map[string]float64, error)
}

// BoltRepository is the document-store implementation of Repository.
type BoltRepository struct {
	store *store.Store
	idgen ids.Generator
}

// NewBoltRepository creates an order repository over the given store.
func NewBoltRepository(s *store.Store, idgen ids.Generator) *BoltRepository {
	return &BoltRepository{store: s, idgen: idgen}
}

var _ Repository = (*BoltRepository)(nil)

func (r *BoltRepository) List() ([]domain.Order, error) {
	orders := []domain.Order{}
	err := r.store.Read(domain.KeyOrders, &orders)
	return orders, err
}

func (r *BoltRepository) Get(id int64) (*domain.Order, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i], nil
		}
	}
	return nil, nil
}

func (r *BoltRepository) Create(draft domain.OrderDraft) (domain.Order, error) {
	orders, err := r.List()
	if err != nil {
		return domain.Order{}, err
	}
	id := draft.ID
	if id == 0 {
		id = r.idgen.NextID()
	}
	order := domain.Order{
		ID:        id,
		Customer:  draft.Customer,
		Table:     draft.Table,
		Cart:      append([]domain.CartLine{}, draft.Cart...),
		CreatedAt: time.Now(),
		Time:      draft.Time,
		Status:    domain.OrderStatusPending,
		Completed: false,
	}
	orders = append(orders, order)
	if err := r.store.Write(domain.KeyOrders, orders); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}

func (r *BoltRepository) Update(id int64, patch domain.OrderPatch) (*domain.Order, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	for i := range orders {
		if orders[i].ID != id {
			continue
		}
		patch.Apply(&orders[i])
		if err := r.store.Write(domain.KeyOrders, orders); err != nil {
			return nil, err
		}
		return &orders[i], nil
	}
	return nil, nil
}

func (r *BoltRepository) Delete(id int64) (bool, error) {
	orders, err := r.List()
	if err != nil {
		return false, err
	}
	kept := orders[:0]
	for _, o := range orders {
		if o.ID != id {
			kept = append(kept, o)
		}
	}
	if err := r.store.Write(domain.KeyOrders, kept); err != nil {
		return false, err
	}
	return true, nil
}

func (r *BoltRepository) ByStatus(status string) ([]domain.Order, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	matched := []domain.Order{}
	for _, o := range orders {
		if o.Status == status {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (r *BoltRepository) ByCustomer(name string) ([]domain.Order, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	q := strings.ToLower(name)
	matched := []domain.Order{}
	for _, o := range orders {
		if o.Customer != "" && strings.Contains(strings.ToLower(o.Customer), q) {
			matched = append(matched, o)
		}
	}
	return matched, nil
}

func (r *BoltRepository) ByTable(table string) ([]domain.Order, error) {
	orders, err := r.List()
	if err != nil {
		return nil, err
	}
	matched := []domain.Order{}
	for _, o := range orders {
		if o.Table == table {
			matched = append(matched, o)
		}
	}
	return matched, nil
}
