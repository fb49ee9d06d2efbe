package entity

import (
	"time"

	"gorm.io/gorm"
)

type Order struct {
	gorm.Model
	OrderNumber string      `json:"orderNumber" gorm:"uniqueIndex"`
	Type        OrderType   `json:"orderType"`
	Status      OrderStatus `json:"status" gorm:"default:pending;index"`

	TableID *uint `json:"tableId,omitempty"`
	ChefID  *uint `json:"chefId,omitempty"`

	Items []OrderItem `json:"items"`

	CustomerName    string `json:"customerName"`
	CustomerPhone   string `json:"customerPhone"`
	CustomerAddress string `json:"customerAddress"`

	Subtotal       float64 `json:"subtotal"`
	Tax            float64 `json:"tax"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	Discount       float64 `json:"discount"`
	Total          float64 `json:"total"`

	OrderedAt        time.Time  `json:"orderedAt"`
	AcceptedAt       *time.Time `json:"acceptedAt,omitempty"`
	StartedCookingAt *time.Time `json:"startedCookingAt,omitempty"`
	ReadyAt          *time.Time `json:"readyAt,omitempty"`
	ServedAt         *time.Time `json:"servedAt,omitempty"`

	CookingInstructions string `json:"cookingInstructions"`
	IsActive            bool   `json:"isActive" gorm:"default:true"`
}

// CookingDuration is readyAt - startedCookingAt, nil until both are stamped.
func (o *Order) CookingDuration() *time.Duration {
	if o.StartedCookingAt == nil || o.ReadyAt == nil {
		return nil
	}
	d := o.ReadyAt.Sub(*o.StartedCookingAt)
	return &d
}

// TotalDuration is servedAt - orderedAt, nil until the order is served.
func (o *Order) TotalDuration() *time.Duration {
	if o.ServedAt == nil {
		return nil
	}
	d := o.ServedAt.Sub(o.OrderedAt)
	return &d
}
