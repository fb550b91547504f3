package domain

import "time"

// Order represents a customer's committed purchase, pending until an admin
// marks it complete.
type Order struct {
	ID         int64
	CustomerID int64
	FullName   string
	Address    string
	Phone      string
	TotalCents int64
	Completed  bool
	PlacedAt   time.Time
}

// OrderLine is a price-and-quantity snapshot of one product within an order.
// Price and subtotal are captured from the cart at placement time and never
// change afterwards, even if the product is repriced.
type OrderLine struct {
	ID            int64
	OrderID       int64
	ProductID     int64
	PriceCents    int64
	Qty           int
	SubtotalCents int64
}

// OrderDetail is the read-model row for one line of an order, joined with the
// product's current name and price.
type OrderDetail struct {
	ID            int64
	Qty           int
	SubtotalCents int64
	ProductName   string
	ProductPrice  int64
}

// SnapshotCart converts a customer's cart lines into order lines bound to
// orderID. An empty cart yields an empty slice, not an error.
func SnapshotCart(orderID int64, lines []CartLine) []OrderLine {
	out := make([]OrderLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, OrderLine{
			OrderID:       orderID,
			ProductID:     line.ProductID,
			PriceCents:    line.PriceCents,
			Qty:           line.Qty,
			SubtotalCents: line.SubtotalCents,
		})
	}
	return out
}
