package entity

type TableStatus string

const (
	TableAvailable   TableStatus = "available"
	TableReserved    TableStatus = "reserved"
	TableOccupied    TableStatus = "occupied"
	TableMaintenance TableStatus = "maintenance"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableAvailable, TableReserved, TableOccupied, TableMaintenance:
		return true
	}
	return false
}
