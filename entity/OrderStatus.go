package entity

type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderReady      OrderStatus = "ready"
	OrderServed     OrderStatus = "served"
	OrderCancelled  OrderStatus = "cancelled"
)

// statusRank orders the happy path; cancelled sits outside it.
var statusRank = map[OrderStatus]int{
	OrderPending:    0,
	OrderProcessing: 1,
	OrderReady:      2,
	OrderServed:     3,
}

func (s OrderStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok || s == OrderCancelled
}

func (s OrderStatus) Terminal() bool {
	return s == OrderServed || s == OrderCancelled
}

// CanTransitionTo permits forward moves along pending -> processing ->
// ready -> served, plus cancellation from any non-terminal state.
// Regressions and repeats are rejected.
func (s OrderStatus) CanTransitionTo(next OrderStatus) bool {
	if s == OrderCancelled {
		return false
	}
	if next == OrderCancelled {
		return !s.Terminal()
	}
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}
