package entity

import (
	"time"

	"gorm.io/gorm"
)

// ChefAssignment is one entry in a chef's current-orders list.
type ChefAssignment struct {
	gorm.Model
	ChefID     uint      `json:"chefId" gorm:"index"`
	OrderID    uint      `json:"orderId" gorm:"index"`
	AssignedAt time.Time `json:"assignedAt"`
	Priority   Priority  `json:"priority" gorm:"default:medium"`
}
