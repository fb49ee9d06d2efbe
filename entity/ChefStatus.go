package entity

type ChefStatus string

const (
	ChefAvailable ChefStatus = "available"
	ChefBusy      ChefStatus = "busy"
	ChefOnBreak   ChefStatus = "on-break"
	ChefOffDuty   ChefStatus = "off-duty"
)

func (s ChefStatus) Valid() bool {
	switch s {
	case ChefAvailable, ChefBusy, ChefOnBreak, ChefOffDuty:
		return true
	}
	return false
}
