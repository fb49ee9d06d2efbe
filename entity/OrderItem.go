package entity

import (
	"encoding/json"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID    uint `json:"orderId" gorm:"index"`
	MenuItemID uint `json:"menuItemId"`

	// Name, price and category are captured at order time so later menu
	// edits never change an existing order.
	Name     string       `json:"name"`
	Price    float64      `json:"price"`
	Category MenuCategory `json:"category"`
	Quantity int          `json:"quantity"`

	Customizations      datatypes.JSON `json:"customizations,omitempty"` // []Customization
	SpecialInstructions string         `json:"specialInstructions"`
}

type Customization struct {
	Name            string  `json:"name"`
	Value           string  `json:"value"`
	AdditionalPrice float64 `json:"additionalPrice"`
}

func (i *OrderItem) CustomizationList() []Customization {
	if len(i.Customizations) == 0 {
		return nil
	}
	var out []Customization
	if err := json.Unmarshal(i.Customizations, &out); err != nil {
		return nil
	}
	return out
}

// LineTotal is price*quantity plus every customization surcharge.
func (i *OrderItem) LineTotal() float64 {
	total := i.Price * float64(i.Quantity)
	for _, c := range i.CustomizationList() {
		total += c.AdditionalPrice
	}
	return total
}
