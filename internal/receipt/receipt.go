// Package receipt derives printable receipt views from orders.
package receipt

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/talkincode/foodking/internal/domain"
)

// TaxRate is the fixed GST applied to every receipt.
const TaxRate = 0.05

// Format computes the receipt view for an order: display id, line
// items, subtotal, 5% tax and grand total. The order is not mutated.
func Format(order domain.Order) domain.ReceiptView {
	view := domain.ReceiptView{
		DisplayID: displayID(order),
		Customer:  order.Customer,
		Table:     order.Table,
		PlacedAt:  order.CreatedAt,
		Lines:     make([]domain.ReceiptLine, 0, len(order.Cart)),
	}
	for _, line := range order.Cart {
		view.Lines = append(view.Lines, domain.ReceiptLine{
			Name:   line.Name,
			Qty:    line.Qty,
			Amount: line.Amount(),
		})
		view.Subtotal += line.Amount()
	}
	view.Tax = view.Subtotal * TaxRate
	view.GrandTotal = view.Subtotal * (1 + TaxRate)
	return view
}

// displayID builds the cosmetic "SG" order number: the last six digits
// of the placement timestamp plus a random 3-digit suffix. Collisions
// are possible and accepted; it is never used as a lookup key.
func displayID(order domain.Order) string {
	at := order.CreatedAt
	if at.IsZero() {
		at = time.Now()
	}
	millis := fmt.Sprintf("%d", at.UnixMilli())
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return fmt.Sprintf("SG%s%03d", millis, rand.Intn(1000))
}
