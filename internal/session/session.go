// Package session holds the single active cart and turns it into a
// persisted order.
package session

import (
	"context"
	"fmt"

	"github.com/asaskevich/EventBus"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/talkincode/foodking/internal/domain"
	"github.com/talkincode/foodking/internal/orderapi"
	"github.com/talkincode/foodking/internal/orders"
)

// TopicOrderPlaced is published with the new order after a successful
// placement.
const TopicOrderPlaced = "order.placed"

// ErrEmptyCart is returned when PlaceOrder runs against an empty cart.
var ErrEmptyCart = errors.New("cart is empty")

// ValidationError reports a missing required session input.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required field: %s", e.Field)
}

// Session is the in-memory cart plus customer/table context. Line
// identity is the dish id, so two dishes sharing a name never merge.
// All methods are synchronous; the session is owned by one caller.
type Session struct {
	customer string
	table    string
	lines    []domain.CartLine

	repo   orders.Repository
	remote *orderapi.Client
	bus    EventBus.Bus
}

// New creates a session over the order repository. remote and bus are
// optional; nil disables remote submission and event publication.
func New(repo orders.Repository, remote *orderapi.Client, bus EventBus.Bus) *Session {
	return &Session{repo: repo, remote: remote, bus: bus}
}

// SetCustomer records the customer name for subsequent items.
func (s *Session) SetCustomer(name string) {
	s.customer = name
}

// SetTable records the table identifier for subsequent items.
func (s *Session) SetTable(table string) {
	s.table = table
}

// AddItem puts a dish in the cart. Customer and table must be set
// first; the same dish id increments its quantity instead of adding a
// duplicate line.
func (s *Session) AddItem(dish domain.Dish) error {
	if s.customer == "" {
		return &ValidationError{Field: "customer"}
	}
	if s.table == "" {
		return &ValidationError{Field: "table"}
	}
	for i := range s.lines {
		if s.lines[i].ID == dish.ID {
			s.lines[i].Qty++
			return nil
		}
	}
	s.lines = append(s.lines, domain.CartLine{Dish: dish, Qty: 1})
	return nil
}

// RemoveItem drops the line for the given dish id, if present.
func (s *Session) RemoveItem(dishID int64) {
	kept := s.lines[:0]
	for _, line := range s.lines {
		if line.ID != dishID {
			kept = append(kept, line)
		}
	}
	s.lines = kept
}

// SetQuantity sets a line's quantity; qty <= 0 removes the line.
func (s *Session) SetQuantity(dishID int64, qty int) {
	if qty <= 0 {
		s.RemoveItem(dishID)
		return
	}
	for i := range s.lines {
		if s.lines[i].ID == dishID {
			s.lines[i].Qty = qty
			return
		}
	}
}

// Lines returns a copy of the current cart lines.
func (s *Session) Lines() []domain.CartLine {
	return append([]domain.CartLine{}, s.lines...)
}

// Total sums qty*price across all lines.
func (s *Session) Total() float64 {
	var total float64
	for _, line := range s.lines {
		total += line.Amount()
	}
	return total
}

// Clear empties the cart without placing an order.
func (s *Session) Clear() {
	s.lines = nil
}

// PlaceOrder finalizes the cart. When a remote client is configured
// the draft is first offered to the collaborator; on any remote
// failure the order is committed locally instead, so the user-visible
// flow never fails because the kitchen API is down. The cart is
// cleared exactly once on success and never on failure.
func (s *Session) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	if len(s.lines) == 0 {
		return nil, ErrEmptyCart
	}

	draft := domain.OrderDraft{
		Customer: s.customer,
		Table:    s.table,
		Cart:     append([]domain.CartLine{}, s.lines...),
	}
	if draft.Customer == "" {
		draft.Customer = "Anonymous"
	}
	if draft.Table == "" {
		draft.Table = "Takeaway"
	}

	if s.remote != nil {
		res := s.remote.PlaceOrder(ctx, draft)
		if res.OK {
			draft.ID = res.OrderID
		} else {
			zap.L().Warn("remote order submit failed, committing locally",
				zap.Error(res.Err))
		}
	}

	order, err := s.repo.Create(draft)
	if err != nil {
		return nil, err
	}
	s.lines = nil

	if s.bus != nil {
		s.bus.Publish(TopicOrderPlaced, order)
	}
	return &order, nil
}
