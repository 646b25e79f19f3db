package order

// OrderStatus is the lifecycle state of an order.
type OrderStatus string

const (
	OrderStatusActive    OrderStatus = "ACTIVE"
	OrderStatusCompleted OrderStatus = "COMPLETED"
	OrderStatusCancelled OrderStatus = "CANCELLED"
)

func (os OrderStatus) String() string {
	return string(os)
}

func (os OrderStatus) IsValid() bool {
	switch os {
	case OrderStatusActive, OrderStatusCompleted, OrderStatusCancelled:
		return true
	default:
		return false
	}
}

// IsTerminal returns true if the order has been closed out. Terminal states
// never revert to ACTIVE.
func (os OrderStatus) IsTerminal() bool {
	return os == OrderStatusCompleted || os == OrderStatusCancelled
}

// GetAllOrderStatuses returns all valid order statuses
func GetAllOrderStatuses() []OrderStatus {
	return []OrderStatus{
		OrderStatusActive,
		OrderStatusCompleted,
		OrderStatusCancelled,
	}
}
