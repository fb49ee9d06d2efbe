package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Price       float64      `json:"price"`
	Category    MenuCategory `json:"category" gorm:"index"`

	IsAvailable     bool       `json:"isAvailable" gorm:"default:true"`
	AvailableFrom   string     `json:"availableFrom"`  // HH:MM, empty means no window
	AvailableUntil  string     `json:"availableUntil"` // HH:MM
	OutOfStockUntil *time.Time `json:"outOfStockUntil,omitempty"`

	PreparationMinutes int `json:"preparationMinutes" gorm:"default:15"`

	// Customization options offered for this item, as captured from staff setup.
	Customizations datatypes.JSON `json:"customizations,omitempty"`

	OrderCount    int        `json:"orderCount" gorm:"default:0"`
	LastOrderedAt *time.Time `json:"lastOrderedAt,omitempty"`

	IsActive bool `json:"isActive" gorm:"default:true"`

	OrderItems []OrderItem `json:"-"`
}

// CurrentlyAvailable reports whether the item can be ordered right now:
// it must be flagged available and active, not out of stock, and inside
// its serving window when one is configured.
func (m *MenuItem) CurrentlyAvailable(now time.Time) bool {
	if !m.IsAvailable || !m.IsActive {
		return false
	}
	if m.OutOfStockUntil != nil && now.Before(*m.OutOfStockUntil) {
		return false
	}
	if m.AvailableFrom != "" && m.AvailableUntil != "" {
		hm := now.Format("15:04")
		if hm < m.AvailableFrom || hm > m.AvailableUntil {
			return false
		}
	}
	return true
}
