package entity

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Chef struct {
	gorm.Model
	Name     string       `json:"name"`
	Email    string       `json:"email" gorm:"uniqueIndex"`
	Phone    string       `json:"phone"`
	Position ChefPosition `json:"position" gorm:"default:line-cook"`

	Specialties datatypes.JSON `json:"specialties,omitempty"` // []MenuCategory
	Shift       Shift          `json:"shift" gorm:"default:full-time"`

	CurrentStatus       ChefStatus `json:"currentStatus" gorm:"default:available;index"`
	MaxConcurrentOrders int        `json:"maxConcurrentOrders" gorm:"default:3"`

	OrdersCompleted      int     `json:"ordersCompleted" gorm:"default:0"`
	AvgCompletionMinutes float64 `json:"avgCompletionMinutes" gorm:"default:0"`
	RatingAvg            float64 `json:"ratingAvg" gorm:"default:0"`
	RatingCount          int     `json:"ratingCount" gorm:"default:0"`

	HiredAt  *time.Time `json:"hiredAt,omitempty"`
	IsActive bool       `json:"isActive" gorm:"default:true"`

	Assignments []ChefAssignment `json:"assignments,omitempty"`
}

func (c *Chef) SpecialtySet() []MenuCategory {
	if len(c.Specialties) == 0 {
		return nil
	}
	var out []MenuCategory
	if err := json.Unmarshal(c.Specialties, &out); err != nil {
		return nil
	}
	return out
}

func (c *Chef) HasSpecialty(cat MenuCategory) bool {
	for _, s := range c.SpecialtySet() {
		if s == cat {
			return true
		}
	}
	return false
}

// Workload is the number of orders currently assigned. Assignments must
// be loaded for this to be meaningful.
func (c *Chef) Workload() int { return len(c.Assignments) }
