package domain

// Product is a sellable catalog item. Its price may change over time; placed
// orders keep the price they were snapshotted with.
type Product struct {
	ID         int64
	Name       string
	PriceCents int64
}

// CartLine is a pending, pre-checkout product selection owned by exactly one
// customer. Cart lines are consumed and deleted when the customer places an
// order.
type CartLine struct {
	ID            int64
	CustomerID    int64
	ProductID     int64
	PriceCents    int64
	Qty           int
	SubtotalCents int64
}
