package entity

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftEvening   Shift = "evening"
	ShiftNight     Shift = "night"
	ShiftFullTime  Shift = "full-time"
)

func (s Shift) Valid() bool {
	switch s {
	case ShiftMorning, ShiftAfternoon, ShiftEvening, ShiftNight, ShiftFullTime:
		return true
	}
	return false
}
