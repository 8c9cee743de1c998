package domain

import "time"

// ReceiptLine is one printed line item.
type ReceiptLine struct {
	Name   string  `json:"name"`
	Qty    int     `json:"qty"`
	Amount float64 `json:"amount"`
}

// ReceiptView is a derived, read-only presentation of an Order with
// computed tax and totals. DisplayID is cosmetic only and never used
// as a lookup key.
type ReceiptView struct {
	DisplayID  string        `json:"orderId"`
	Customer   string        `json:"customer"`
	Table      string        `json:"table"`
	PlacedAt   time.Time     `json:"placedAt"`
	Lines      []ReceiptLine `json:"items"`
	Subtotal   float64       `json:"subtotal"`
	Tax        float64       `json:"tax"`
	GrandTotal float64       `json:"grandTotal"`
}
