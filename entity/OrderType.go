package entity

type OrderType string

const (
	DineIn   OrderType = "dine-in"
	TakeAway OrderType = "take-away"
	Delivery OrderType = "delivery"
)

func (t OrderType) Valid() bool {
	switch t {
	case DineIn, TakeAway, Delivery:
		return true
	}
	return false
}
