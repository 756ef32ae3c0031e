package entity

// OrderStatus represents the lifecycle state of a coffee order.
type OrderStatus string

const (
	// OrderStatusOpen marks an order that has not been settled yet.
	OrderStatusOpen OrderStatus = "Open"
	// OrderStatusClosed marks an order captured by a receipt.
	OrderStatusClosed OrderStatus = "Closed"
)

// String returns the string representation of the OrderStatus.
func (s OrderStatus) String() string {
	return string(s)
}

// IsValid checks if the OrderStatus is a valid value.
func (s OrderStatus) IsValid() bool {
	switch s {
	case OrderStatusOpen, OrderStatusClosed:
		return true
	default:
		return false
	}
}
