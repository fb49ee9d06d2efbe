package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Table struct {
	gorm.Model
	TableNumber string      `json:"tableNumber" gorm:"uniqueIndex"`
	Name        string      `json:"name"`
	Chairs      int         `json:"chairs" gorm:"default:4"`
	Status      TableStatus `json:"status" gorm:"default:available;index"`

	// Order currently occupying the table. Occupied implies non-nil,
	// available implies nil.
	CurrentOrderID *uint `json:"currentOrderId,omitempty"`

	ReservationDetails datatypes.JSON `json:"reservationDetails,omitempty"`

	LastCleanedAt *time.Time `json:"lastCleanedAt,omitempty"`
	IsActive      bool       `json:"isActive" gorm:"default:true"`
}

// Reservation is the payload stored in ReservationDetails.
type Reservation struct {
	CustomerName    string     `json:"customerName"`
	CustomerPhone   string     `json:"customerPhone"`
	ReservationTime *time.Time `json:"reservationTime,omitempty"`
	PartySize       int        `json:"partySize"`
	SpecialRequests string     `json:"specialRequests,omitempty"`
}
