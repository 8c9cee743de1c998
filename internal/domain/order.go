package domain

import "time"

// Order status values
const (
	OrderStatusPending   = "pending"
	OrderStatusCompleted = "completed"
)

// CartLine is one dish entry in a cart with its quantity.
// Quantity is always >= 1; a quantity reaching zero removes the line.
type CartLine struct {
	Dish
	Qty int `json:"qty"`
}

// Amount returns the line total.
func (l CartLine) Amount() float64 {
	return float64(l.Qty) * l.Price
}

// Order is a finalized, persisted record of a placed cart plus
// customer/table context. The Cart slice is a snapshot taken at
// placement time and is never mutated afterwards.
type Order struct {
	ID        int64      `json:"id"`
	Customer  string     `json:"customer"`
	Table     string     `json:"table"`
	Cart      []CartLine `json:"cart"`
	CreatedAt time.Time  `json:"createdAt"`
	// Time is the legacy human-readable timestamp carried by orders
	// imported from older snapshots; CreatedAt takes precedence.
	Time      string `json:"time,omitempty"`
	Status    string `json:"status"`
	Completed bool   `json:"completed"`
}

// Done reports whether the order counts as completed, either by the
// status field or the legacy completed flag.
func (o Order) Done() bool {
	return o.Completed || o.Status == OrderStatusCompleted
}

// Revenue returns the order total across all cart lines.
func (o Order) Revenue() float64 {
	var sum float64
	for _, line := range o.Cart {
		sum += line.Amount()
	}
	return sum
}

// OrderDraft carries the fields a caller supplies when creating an
// order. ID is optional; when zero the repository assigns one from its
// generator (a remote collaborator may have assigned one already).
type OrderDraft struct {
	ID       int64      `json:"id,omitempty"`
	Customer string     `json:"customer"`
	Table    string     `json:"table"`
	Cart     []CartLine `json:"cart"`
	Time     string     `json:"time,omitempty"`
}

// OrderPatch is a partial update for an Order. Cart snapshots are
// deliberately not patchable.
type OrderPatch struct {
	Customer  *string `json:"customer,omitempty"`
	Table     *string `json:"table,omitempty"`
	Status    *string `json:"status,omitempty"`
	Completed *bool   `json:"completed,omitempty"`
}

// Apply merges the patch into o, patch fields take precedence.
func (p OrderPatch) Apply(o *Order) {
	if p.Customer != nil {
		o.Customer = *p.Customer
	}
	if p.Table != nil {
		o.Table = *p.Table
	}
	if p.Status != nil {
		o.Status = *p.Status
	}
	if p.Completed != nil {
		o.Completed = *p.Completed
	}
}

// OrderStatistics is the aggregate view over all stored orders,
// recomputed on demand.
type OrderStatistics struct {
	TotalOrders     int     `json:"totalOrders"`
	CompletedOrders int     `json:"completedOrders"`
	PendingOrders   int     `json:"pendingOrders"`
	TotalRevenue    float64 `json:"totalRevenue"`
	CompletionRate  float64 `json:"completionRate"` // percentage, 2 decimals
}

// DishCount is one entry of the popular-dishes ranking. Aggregation is
// keyed by dish name, matching the historical order snapshots.
type DishCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}
